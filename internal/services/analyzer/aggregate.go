package analyzer

import (
    "time"

    "dialscope/internal/domain"
)

// Aggregate flattens generator outputs into one report: artifacts are
// deduplicated by (category, trimmed payload) keeping the first occurrence,
// the risk assessment is computed from the fixed weight table, and the
// timestamp is stamped exactly once.
func Aggregate(input string, number domain.CanonicalNumber, outputs [][]domain.ArtifactRecord, weights Weights, at time.Time) domain.AnalysisReport {
    var total int
    for _, batch := range outputs { total += len(batch) }

    seen := make(map[domain.ArtifactKey]bool, total)
    merged := make([]domain.ArtifactRecord, 0, total)
    for _, batch := range outputs {
        for _, a := range batch {
            key := a.Key()
            if seen[key] { continue }
            seen[key] = true
            merged = append(merged, a)
        }
    }

    return domain.AnalysisReport{
        Input:       input,
        Number:      number,
        Artifacts:   merged,
        Risk:        assess(number, merged, weights),
        GeneratedAt: at,
    }
}
