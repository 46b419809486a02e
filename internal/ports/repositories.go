package ports

import (
    "context"

    "dialscope/internal/domain"
)

// AnalysisRepository stores finished reports and fetches them by id.
type AnalysisRepository interface {
    Save(ctx context.Context, report domain.AnalysisReport) (id string, err error)
    Get(ctx context.Context, id string) (report domain.AnalysisReport, found bool, err error)
}
