package ports

import (
    "context"

    "dialscope/internal/domain"
)

// NumberResolver parses a raw string (plus optional region hint) into a
// canonical number via an external numbering-plan database. Any compliant
// numbering-plan library can sit behind this.
type NumberResolver interface {
    Resolve(raw string, regionHint string) (domain.CanonicalNumber, error)
}

// Analyzer produces a complete report for one number.
type Analyzer interface {
    Analyze(ctx context.Context, raw string, regionHint string) (domain.AnalysisReport, error)
}

// Prober performs a best-effort presence check against a URL. known is false
// whenever the probe could not reach a definite answer (bad scheme, timeout,
// connection error, non-2xx); that is never an error condition.
type Prober interface {
    Probe(ctx context.Context, url string) (present bool, known bool)
}
