package postgres

import (
    "context"
    "errors"
    "strings"
    "time"

    "github.com/jackc/pgx/v5"

    "dialscope/internal/domain"
    "dialscope/internal/ports"
)

// probeworthy limits the queue to links a GET can say anything about: social
// and messaging artifacts with an http(s) payload.
func probeworthy(a domain.ArtifactRecord) bool {
    if a.Category != domain.CategorySocialLink && a.Category != domain.CategoryMessagingLink {
        return false
    }
    return strings.HasPrefix(a.Payload, "http://") || strings.HasPrefix(a.Payload, "https://")
}

// Enqueue creates one queued probe job per probeworthy artifact.
func (db *DB) Enqueue(ctx context.Context, analysisID string, artifacts []domain.ArtifactRecord) error {
    for _, a := range artifacts {
        if !probeworthy(a) { continue }
        _, err := db.Pool.Exec(ctx, `
            INSERT INTO probe_jobs (analysis_id, category, payload)
            VALUES ($1, $2, $3)
        `, analysisID, string(a.Category), a.Payload)
        if err != nil {
            return err
        }
    }
    return nil
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.ProbeJob, found bool, err error) {
    tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
    if err != nil { return job, false, err }
    defer func() {
        if err != nil { _ = tx.Rollback(ctx) } else { _ = tx.Commit(ctx) }
    }()

    var category string
    err = tx.QueryRow(ctx, `
        SELECT id, analysis_id, category, payload FROM probe_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.AnalysisID, &category, &job.Payload)
    if errors.Is(err, pgx.ErrNoRows) {
        err = nil
        return job, false, nil
    }
    if err != nil { return job, false, err }
    job.Category = domain.Category(category)

    if _, err = tx.Exec(ctx, `
        UPDATE probe_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
        return job, false, err
    }
    return job, true, nil
}

// MarkCompleted records a definite probe answer.
func (db *DB) MarkCompleted(ctx context.Context, jobID string, present bool) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    _, err := db.Pool.Exec(ctx, `
        UPDATE probe_jobs SET status='completed', present=$2, finished_at=now() WHERE id=$1
    `, jobID, present)
    return err
}

// MarkFailed ends a job whose probe stayed unknown. The affected artifact
// keeps no verified flag; failure never propagates further.
func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    _, err := db.Pool.Exec(ctx, `
        UPDATE probe_jobs SET status='failed', reason=$2, finished_at=now() WHERE id=$1
    `, jobID, reason)
    return err
}

// ResultsByAnalysis returns the definite answers recorded for an analysis.
func (db *DB) ResultsByAnalysis(ctx context.Context, analysisID string) ([]ports.ProbeResult, error) {
    rows, err := db.Pool.Query(ctx, `
        SELECT category, payload, present FROM probe_jobs
        WHERE analysis_id = $1 AND status = 'completed'
        ORDER BY queued_at
    `, analysisID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []ports.ProbeResult
    for rows.Next() {
        var res ports.ProbeResult
        var category string
        if err := rows.Scan(&category, &res.Payload, &res.Present); err != nil {
            return nil, err
        }
        res.Category = domain.Category(category)
        out = append(out, res)
    }
    return out, rows.Err()
}
