package domain

import (
    "encoding/json"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestArtifactKeyTrimsPayloadOnly(t *testing.T) {
    a := ArtifactRecord{Category: CategorySocialLink, Label: "Facebook", Payload: "  https://example.com/x  "}
    b := ArtifactRecord{Category: CategorySocialLink, Label: "Other", Payload: "https://example.com/x"}

    assert.Equal(t, a.Key(), b.Key(), "label must not contribute to identity")

    // No case folding or URL canonicalization.
    c := ArtifactRecord{Category: CategorySocialLink, Payload: "https://EXAMPLE.com/x"}
    assert.NotEqual(t, a.Key(), c.Key())

    d := ArtifactRecord{Category: CategorySearchQuery, Payload: "https://example.com/x"}
    assert.NotEqual(t, a.Key(), d.Key(), "category is part of identity")
}

func TestLevelForScoreThresholds(t *testing.T) {
    assert.Equal(t, RiskLow, LevelForScore(0))
    assert.Equal(t, RiskLow, LevelForScore(29))
    assert.Equal(t, RiskMedium, LevelForScore(30))
    assert.Equal(t, RiskMedium, LevelForScore(59))
    assert.Equal(t, RiskHigh, LevelForScore(60))
    assert.Equal(t, RiskHigh, LevelForScore(100))
}

func TestRiskAssessmentMarshalCapsScore(t *testing.T) {
    r := RiskAssessment{Score: 145, Level: RiskHigh}

    raw, err := json.Marshal(r)
    require.NoError(t, err)

    var out struct {
        Score   int      `json:"score"`
        Factors []string `json:"factors"`
    }
    require.NoError(t, json.Unmarshal(raw, &out))
    assert.Equal(t, 100, out.Score)
    assert.NotNil(t, out.Factors, "factors must serialize as [], not null")
    assert.Equal(t, 145, r.Score, "raw sum stays uncapped")
    assert.Equal(t, 100, r.DisplayScore())
}

func TestReportJSONKeyOrder(t *testing.T) {
    report := AnalysisReport{Input: "+14155552671"}

    raw, err := json.Marshal(report)
    require.NoError(t, err)

    s := string(raw)
    order := []string{`"input"`, `"number"`, `"artifacts"`, `"risk"`, `"generatedAt"`}
    last := -1
    for _, key := range order {
        idx := strings.Index(s, key)
        require.Greater(t, idx, last, "key %s out of order in %s", key, s)
        last = idx
    }
}

func TestLineTypeDescriptionFallback(t *testing.T) {
    assert.Equal(t, "Voice over IP (internet phone)", LineVoIP.Description())
    assert.Equal(t, "Unknown type", LineType("BOGUS").Description())
}
