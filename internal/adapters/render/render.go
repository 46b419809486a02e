// Package render projects a finished report into output formats. Renderers
// never compute data: they are pure consumers of the report shape, so adding
// a format never touches the analysis core.
package render

import (
    "encoding/json"
    "io"

    "dialscope/internal/domain"
)

// JSON writes the report as an indented JSON document. Key order is fixed by
// the domain struct layout.
func JSON(w io.Writer, r domain.AnalysisReport) error {
    enc := json.NewEncoder(w)
    enc.SetIndent("", "  ")
    return enc.Encode(r)
}

// orEmpty substitutes the explicit placeholder for absent metadata; missing
// carrier or location is a normal outcome, never rendered as a blank.
func orEmpty(s, placeholder string) string {
    if s == "" { return placeholder }
    return s
}
