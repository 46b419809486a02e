package ports

import (
    "context"

    "dialscope/internal/domain"
)

// ProbeJob is one queued presence check for a stored report's artifact.
type ProbeJob struct {
    ID         string
    AnalysisID string
    Category   domain.Category
    Payload    string
}

// ProbeResult is a finished probe with a definite answer. Jobs that degraded
// to unknown produce no result row, leaving the artifact unverified.
type ProbeResult struct {
    Category domain.Category
    Payload  string
    Present  bool
}

// ProbeJobRepository supports enqueueing, claiming and finishing probe jobs.
type ProbeJobRepository interface {
    Enqueue(ctx context.Context, analysisID string, artifacts []domain.ArtifactRecord) error
    ClaimNext(ctx context.Context) (job ProbeJob, found bool, err error)
    MarkCompleted(ctx context.Context, jobID string, present bool) error
    MarkFailed(ctx context.Context, jobID string, reason string) error
    ResultsByAnalysis(ctx context.Context, analysisID string) ([]ProbeResult, error)
}
