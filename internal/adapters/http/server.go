package httpadapter

import (
    "context"
    "errors"
    "log"

    "github.com/go-chi/chi/v5"

    "dialscope/internal/api"
    "dialscope/internal/domain"
    "dialscope/internal/ports"
)

// Server implements the generated StrictServerInterface.
type Server struct {
    analyzer ports.Analyzer
    reports  ports.AnalysisRepository
    jobs     ports.ProbeJobRepository
}

func New(analyzer ports.Analyzer, reports ports.AnalysisRepository, jobs ports.ProbeJobRepository) *Server {
    return &Server{analyzer: analyzer, reports: reports, jobs: jobs}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
    r := chi.NewRouter()
    handler := api.NewStrictHandler(s, nil)
    api.HandlerFromMux(handler, r)
    return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
    ok := "ok"
    return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) PostAnalyses(ctx context.Context, req api.PostAnalysesRequestObject) (api.PostAnalysesResponseObject, error) {
    region := ""
    if req.Body.Region != nil { region = *req.Body.Region }

    report, err := s.analyzer.Analyze(ctx, req.Body.Number, region)
    if errors.Is(err, domain.ErrInvalidNumber) {
        return api.PostAnalyses422JSONResponse{Error: err.Error()}, nil
    }
    if errors.Is(err, domain.ErrResolverUnavailable) {
        return api.PostAnalyses503JSONResponse{Error: err.Error()}, nil
    }
    if err != nil {
        return nil, err
    }

    id, err := s.reports.Save(ctx, report)
    if err != nil {
        return nil, err
    }

    if req.Params.Verify != nil && *req.Params.Verify {
        if err := s.jobs.Enqueue(ctx, id, report.Artifacts); err != nil {
            // Probes are best-effort; the stored report stands on its own.
            log.Printf("probe enqueue for analysis %s: %v", id, err)
        }
    }

    return api.PostAnalyses200JSONResponse(api.Analysis{Id: id, Report: toAPIReport(report)}), nil
}

func (s *Server) GetAnalysesId(ctx context.Context, req api.GetAnalysesIdRequestObject) (api.GetAnalysesIdResponseObject, error) {
    report, found, err := s.reports.Get(ctx, req.Id)
    if err != nil {
        return nil, err
    }
    if !found {
        return api.GetAnalysesId404Response{}, nil
    }

    results, err := s.jobs.ResultsByAnalysis(ctx, req.Id)
    if err != nil {
        return nil, err
    }
    report = withProbeResults(report, results)

    return api.GetAnalysesId200JSONResponse(api.Analysis{Id: req.Id, Report: toAPIReport(report)}), nil
}

// withProbeResults attaches finished probe answers to the matching artifacts
// of a copy of the stored report.
func withProbeResults(report domain.AnalysisReport, results []ports.ProbeResult) domain.AnalysisReport {
    if len(results) == 0 { return report }

    byKey := make(map[domain.ArtifactKey]bool, len(results))
    for _, res := range results {
        probe := domain.ArtifactRecord{Category: res.Category, Payload: res.Payload}
        byKey[probe.Key()] = res.Present
    }

    out := report
    out.Artifacts = make([]domain.ArtifactRecord, len(report.Artifacts))
    copy(out.Artifacts, report.Artifacts)
    for i, a := range out.Artifacts {
        if present, ok := byKey[a.Key()]; ok {
            v := present
            out.Artifacts[i].Verified = &v
        }
    }
    return out
}

func toAPIReport(r domain.AnalysisReport) api.AnalysisReport {
    arts := make([]api.ArtifactRecord, 0, len(r.Artifacts))
    for _, a := range r.Artifacts {
        rec := api.ArtifactRecord{
            Category: string(a.Category),
            Payload:  a.Payload,
            Verified: a.Verified,
        }
        if a.Label != "" {
            label := a.Label
            rec.Label = &label
        }
        if a.Note != "" {
            note := a.Note
            rec.Note = &note
        }
        arts = append(arts, rec)
    }

    factors := r.Risk.Factors
    if factors == nil { factors = []string{} }

    return api.AnalysisReport{
        Input:     r.Input,
        Number:    toAPINumber(r.Number),
        Artifacts: arts,
        Risk: api.RiskAssessment{
            Score:   r.Risk.DisplayScore(),
            Level:   string(r.Risk.Level),
            Factors: factors,
        },
        GeneratedAt: r.GeneratedAt,
    }
}

func toAPINumber(n domain.CanonicalNumber) api.CanonicalNumber {
    out := api.CanonicalNumber{
        CountryCallingCode: n.CountryCode,
        NationalNumber:     n.NationalNumber,
        IsValid:            n.IsValid,
        IsPossible:         n.IsPossible,
        LineType:           string(n.LineType),
        Formats: api.Formats{
            E164:          n.Formats.E164,
            International: n.Formats.International,
            National:      n.Formats.National,
        },
    }
    if n.Region != "" {
        region := n.Region
        out.Region = &region
    }
    if n.Carrier != "" {
        carrier := n.Carrier
        out.Carrier = &carrier
    }
    if n.Location != "" {
        location := n.Location
        out.Location = &location
    }
    if len(n.Timezones) > 0 {
        tz := n.Timezones
        out.Timezones = &tz
    }
    return out
}
