package analyzer

import (
    "context"
    "time"

    lru "github.com/hashicorp/golang-lru/v2"

    "dialscope/internal/domain"
    "dialscope/internal/ports"
    "dialscope/internal/services/artifacts"
)

// Service runs the full pipeline: resolve the number once, run every
// generator against the canonical form, then aggregate.
type Service struct {
    resolver ports.NumberResolver
    gens     []artifacts.Generator
    weights  Weights
    cache    *lru.Cache[string, domain.AnalysisReport]
    now      func() time.Time
}

type Option func(*Service)

// WithWeights overrides the default risk weight table.
func WithWeights(w Weights) Option {
    return func(s *Service) { s.weights = w }
}

// WithCache keeps the most recent reports in memory, keyed by input and
// region hint. Reports are deterministic for identical input, so serving a
// cached copy is indistinguishable from re-running the pipeline.
func WithCache(size int) Option {
    return func(s *Service) {
        if size <= 0 { return }
        c, err := lru.New[string, domain.AnalysisReport](size)
        if err != nil { return }
        s.cache = c
    }
}

func New(resolver ports.NumberResolver, gens []artifacts.Generator, opts ...Option) *Service {
    s := &Service{
        resolver: resolver,
        gens:     gens,
        weights:  DefaultWeights(),
        now:      time.Now,
    }
    for _, opt := range opts { opt(s) }
    return s
}

// Analyze resolves raw into a canonical number and expands it into a report.
// It fails only when resolution fails; generation and aggregation have no
// failure modes of their own.
func (s *Service) Analyze(ctx context.Context, raw string, regionHint string) (domain.AnalysisReport, error) {
    cacheKey := raw + "\x00" + regionHint
    if s.cache != nil {
        if report, ok := s.cache.Get(cacheKey); ok { return report, nil }
    }

    number, err := s.resolver.Resolve(raw, regionHint)
    if err != nil {
        return domain.AnalysisReport{}, err
    }

    outputs := make([][]domain.ArtifactRecord, 0, len(s.gens))
    for _, g := range s.gens {
        outputs = append(outputs, g.Generate(number))
    }

    report := Aggregate(raw, number, outputs, s.weights, s.now())
    if s.cache != nil { s.cache.Add(cacheKey, report) }
    return report, nil
}
