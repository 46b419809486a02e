package render

import (
    "encoding/csv"
    "io"

    "dialscope/internal/domain"
)

// CSV writes one row per artifact, preceded by a header row. The verified
// column is empty when no probe produced a definite answer.
func CSV(w io.Writer, r domain.AnalysisReport) error {
    cw := csv.NewWriter(w)
    if err := cw.Write([]string{"category", "label", "payload", "note", "verified"}); err != nil {
        return err
    }
    for _, a := range r.Artifacts {
        verified := ""
        if a.Verified != nil {
            if *a.Verified {
                verified = "true"
            } else {
                verified = "false"
            }
        }
        if err := cw.Write([]string{string(a.Category), a.Label, a.Payload, a.Note, verified}); err != nil {
            return err
        }
    }
    cw.Flush()
    return cw.Error()
}
