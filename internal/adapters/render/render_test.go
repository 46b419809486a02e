package render

import (
    "bytes"
    "encoding/csv"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "dialscope/internal/domain"
)

func sampleReport() domain.AnalysisReport {
    yes := true
    no := false
    return domain.AnalysisReport{
        Input: "+14155552671",
        Number: domain.CanonicalNumber{
            CountryCode:    1,
            NationalNumber: "4155552671",
            Region:         "US",
            IsValid:        true,
            IsPossible:     true,
            LineType:       domain.LineFixedOrMobile,
            Formats: domain.Formats{
                E164:          "+14155552671",
                International: "+1 415-555-2671",
                National:      "(415) 555-2671",
            },
            Timezones: []string{"America/Los_Angeles"},
        },
        Artifacts: []domain.ArtifactRecord{
            {Category: domain.CategorySocialLink, Label: "Facebook", Payload: "https://facebook.example/p", Verified: &yes},
            {Category: domain.CategoryMessagingLink, Label: "WhatsApp", Payload: "https://wa.me/14155552671", Verified: &no},
            {Category: domain.CategoryBreachLookupLink, Label: "HIBP", Payload: "https://hibp.example/p", Note: "requires manual check"},
            {Category: domain.CategorySearchQuery, Payload: `intext:"14155552671"`},
        },
        Risk: domain.RiskAssessment{
            Score:   30,
            Level:   domain.RiskMedium,
            Factors: []string{"VoIP number - potentially disposable/temporary"},
        },
        GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
    }
}

func TestTextReport(t *testing.T) {
    var buf bytes.Buffer
    require.NoError(t, Text(&buf, sampleReport()))
    out := buf.String()

    assert.Contains(t, out, "PHONE NUMBER INTELLIGENCE REPORT")
    assert.Contains(t, out, "Target:    +1 415-555-2671")
    assert.Contains(t, out, "Carrier:         unknown")
    assert.Contains(t, out, "Location:        unknown")
    assert.Contains(t, out, "Timezones:       America/Los_Angeles")
    assert.Contains(t, out, "- Facebook: https://facebook.example/p [verified]")
    assert.Contains(t, out, "- WhatsApp: https://wa.me/14155552671 [not present]")
    assert.Contains(t, out, "- HIBP: https://hibp.example/p [requires manual check]")
    assert.Contains(t, out, "Score: 30/100")
    assert.Contains(t, out, "Level: MEDIUM")
    assert.Contains(t, out, "- VoIP number - potentially disposable/temporary")

    // Sections with no artifacts still render, with a placeholder.
    assert.Contains(t, out, "PUBLIC RECORDS\n"+rule+"\nnone")
}

func TestTextReportSectionOrder(t *testing.T) {
    var buf bytes.Buffer
    require.NoError(t, Text(&buf, sampleReport()))
    out := buf.String()

    last := -1
    for _, heading := range []string{
        "SOCIAL MEDIA & PLATFORM CHECKS",
        "MESSAGING APPS",
        "PUBLIC RECORDS",
        "BREACH LOOKUPS",
        "SEARCH DORKS",
        "PATTERN FLAGS",
        "RISK ASSESSMENT",
    } {
        idx := strings.Index(out, heading)
        require.Greater(t, idx, last, "section %s out of order", heading)
        last = idx
    }
}

func TestTextReportNoFactors(t *testing.T) {
    r := sampleReport()
    r.Risk = domain.RiskAssessment{Level: domain.RiskLow, Factors: []string{}}

    var buf bytes.Buffer
    require.NoError(t, Text(&buf, r))
    assert.Contains(t, buf.String(), "Factors: none")
}

func TestJSONKeyOrder(t *testing.T) {
    var buf bytes.Buffer
    require.NoError(t, JSON(&buf, sampleReport()))
    out := buf.String()

    assert.True(t, strings.HasPrefix(out, "{\n  \"input\": \"+14155552671\","))
    last := -1
    for _, key := range []string{`"input"`, `"number"`, `"artifacts"`, `"risk"`, `"generatedAt"`} {
        idx := strings.Index(out, key)
        require.Greater(t, idx, last, "key %s out of order", key)
        last = idx
    }
}

func TestCSVRows(t *testing.T) {
    var buf bytes.Buffer
    require.NoError(t, CSV(&buf, sampleReport()))

    rows, err := csv.NewReader(&buf).ReadAll()
    require.NoError(t, err)
    require.Len(t, rows, 5)

    assert.Equal(t, []string{"category", "label", "payload", "note", "verified"}, rows[0])
    assert.Equal(t, []string{"SOCIAL_LINK", "Facebook", "https://facebook.example/p", "", "true"}, rows[1])
    assert.Equal(t, []string{"MESSAGING_LINK", "WhatsApp", "https://wa.me/14155552671", "", "false"}, rows[2])
    assert.Equal(t, []string{"BREACH_LOOKUP_LINK", "HIBP", "https://hibp.example/p", "requires manual check", ""}, rows[3])
    assert.Equal(t, []string{"SEARCH_QUERY", "", `intext:"14155552671"`, "", ""}, rows[4])
}
