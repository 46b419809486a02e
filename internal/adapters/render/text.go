package render

import (
    "fmt"
    "io"
    "strings"
    "time"

    "dialscope/internal/domain"
)

var sectionOrder = []struct {
    category domain.Category
    heading  string
}{
    {domain.CategorySocialLink, "SOCIAL MEDIA & PLATFORM CHECKS"},
    {domain.CategoryMessagingLink, "MESSAGING APPS"},
    {domain.CategoryPublicRecordLink, "PUBLIC RECORDS"},
    {domain.CategoryBreachLookupLink, "BREACH LOOKUPS"},
    {domain.CategorySearchQuery, "SEARCH DORKS"},
    {domain.CategoryRiskFlag, "PATTERN FLAGS"},
}

const rule = "----------------------------------------------------------------"

// Text writes a plain investigator-facing report.
func Text(w io.Writer, r domain.AnalysisReport) error {
    var b strings.Builder

    b.WriteString("PHONE NUMBER INTELLIGENCE REPORT\n")
    b.WriteString(rule + "\n")
    fmt.Fprintf(&b, "Target:    %s\n", r.Number.Formats.International)
    fmt.Fprintf(&b, "Input:     %s\n", r.Input)
    fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339))

    b.WriteString("BASIC INFORMATION\n")
    b.WriteString(rule + "\n")
    fmt.Fprintf(&b, "Country Code:    +%d\n", r.Number.CountryCode)
    fmt.Fprintf(&b, "National Number: %s\n", r.Number.NationalNumber)
    fmt.Fprintf(&b, "Region:          %s\n", orEmpty(r.Number.Region, "unknown"))
    fmt.Fprintf(&b, "Line Type:       %s (%s)\n", r.Number.LineType, r.Number.LineType.Description())
    fmt.Fprintf(&b, "Carrier:         %s\n", orEmpty(r.Number.Carrier, "unknown"))
    fmt.Fprintf(&b, "Location:        %s\n", orEmpty(r.Number.Location, "unknown"))
    fmt.Fprintf(&b, "Timezones:       %s\n", orEmpty(strings.Join(r.Number.Timezones, ", "), "none"))
    fmt.Fprintf(&b, "E.164:           %s\n\n", r.Number.Formats.E164)

    byCategory := make(map[domain.Category][]domain.ArtifactRecord)
    for _, a := range r.Artifacts {
        byCategory[a.Category] = append(byCategory[a.Category], a)
    }

    for _, section := range sectionOrder {
        arts := byCategory[section.category]
        b.WriteString(section.heading + "\n")
        b.WriteString(rule + "\n")
        if len(arts) == 0 {
            b.WriteString("none\n\n")
            continue
        }
        for _, a := range arts {
            line := a.Payload
            if a.Label != "" { line = a.Label + ": " + line }
            if a.Note != "" { line += " [" + a.Note + "]" }
            if a.Verified != nil {
                if *a.Verified {
                    line += " [verified]"
                } else {
                    line += " [not present]"
                }
            }
            b.WriteString("- " + line + "\n")
        }
        b.WriteString("\n")
    }

    b.WriteString("RISK ASSESSMENT\n")
    b.WriteString(rule + "\n")
    fmt.Fprintf(&b, "Score: %d/100\n", r.Risk.DisplayScore())
    fmt.Fprintf(&b, "Level: %s\n", r.Risk.Level)
    if len(r.Risk.Factors) == 0 {
        b.WriteString("Factors: none\n")
    } else {
        b.WriteString("Factors:\n")
        for _, f := range r.Risk.Factors {
            b.WriteString("- " + f + "\n")
        }
    }

    _, err := io.WriteString(w, b.String())
    return err
}
