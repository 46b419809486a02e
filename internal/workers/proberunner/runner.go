package proberunner

import (
    "context"
    "log"
    "time"

    "dialscope/internal/ports"
)

// ProbeProcessor runs the presence check for one claimed job.
type ProbeProcessor interface {
    Process(ctx context.Context, job ports.ProbeJob) error
}

// HTTPProcessor probes the job payload and records the outcome. An unknown
// answer is recorded as a failed job, which simply leaves the artifact
// unverified.
type HTTPProcessor struct {
    Repo   ports.ProbeJobRepository
    Prober ports.Prober
}

func (p HTTPProcessor) Process(ctx context.Context, job ports.ProbeJob) error {
    present, known := p.Prober.Probe(ctx, job.Payload)
    if !known {
        return p.Repo.MarkFailed(ctx, job.ID, "probe inconclusive")
    }
    return p.Repo.MarkCompleted(ctx, job.ID, present)
}

// Run starts worker goroutines that claim probe jobs and process them.
func Run(ctx context.Context, repo ports.ProbeJobRepository, processor ProbeProcessor, concurrency int, pollInterval time.Duration) {
    if concurrency < 1 { return }
    jobsCh := make(chan ports.ProbeJob, concurrency)

    // dispatcher loop
    go func() {
        ticker := time.NewTicker(pollInterval)
        defer ticker.Stop()
        for {
            select {
            case <-ctx.Done():
                close(jobsCh)
                return
            case <-ticker.C:
                for {
                    job, found, err := repo.ClaimNext(ctx)
                    if err != nil {
                        log.Printf("probe claim error: %v", err)
                        break
                    }
                    if !found { break }
                    jobsCh <- job
                }
            }
        }
    }()

    // workers
    for i := 0; i < concurrency; i++ {
        go func(idx int) {
            for job := range jobsCh {
                if err := processor.Process(ctx, job); err != nil {
                    log.Printf("probe worker %d: job %s: %v", idx, job.ID, err)
                }
            }
        }(i)
    }
}
