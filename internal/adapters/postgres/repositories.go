package postgres

import (
    "context"
    "encoding/json"
    "errors"

    "github.com/jackc/pgx/v5"

    "dialscope/internal/domain"
)

// AnalysisRepository

// Save stores a finished report as JSONB and returns the row id. The report
// itself is the source of truth; the e164 column only exists for lookups.
func (db *DB) Save(ctx context.Context, report domain.AnalysisReport) (string, error) {
    payload, err := json.Marshal(report)
    if err != nil {
        return "", err
    }
    var id string
    err = db.Pool.QueryRow(ctx, `
        INSERT INTO analyses (input, e164, report)
        VALUES ($1, $2, $3)
        RETURNING id
    `, report.Input, report.Number.Formats.E164, payload).Scan(&id)
    return id, err
}

func (db *DB) Get(ctx context.Context, id string) (domain.AnalysisReport, bool, error) {
    var payload []byte
    err := db.Pool.QueryRow(ctx, `SELECT report FROM analyses WHERE id = $1`, id).Scan(&payload)
    if errors.Is(err, pgx.ErrNoRows) {
        return domain.AnalysisReport{}, false, nil
    }
    if err != nil {
        return domain.AnalysisReport{}, false, err
    }
    var report domain.AnalysisReport
    if err := json.Unmarshal(payload, &report); err != nil {
        return domain.AnalysisReport{}, false, err
    }
    return report, true, nil
}
