package analyzer

import (
    "context"
    "encoding/json"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "dialscope/internal/domain"
    "dialscope/internal/services/artifacts"
)

type stubResolver struct {
    number domain.CanonicalNumber
    err    error
    calls  int
}

func (s *stubResolver) Resolve(raw string, regionHint string) (domain.CanonicalNumber, error) {
    s.calls++
    if s.err != nil {
        return domain.CanonicalNumber{}, s.err
    }
    return s.number, nil
}

func usNumber() domain.CanonicalNumber {
    return domain.CanonicalNumber{
        CountryCode:    1,
        NationalNumber: "4155552671",
        Region:         "US",
        IsValid:        true,
        IsPossible:     true,
        LineType:       domain.LineFixedOrMobile,
        Formats: domain.Formats{
            E164:          "+14155552671",
            International: "+1 415-555-2671",
            National:      "(415) 555-2671",
        },
        Carrier:   "Pacific Bell",
        Location:  "California",
        Timezones: []string{"America/Los_Angeles"},
    }
}

func TestAnalyzeProducesReport(t *testing.T) {
    resolver := &stubResolver{number: usNumber()}
    svc := New(resolver, artifacts.Default())

    report, err := svc.Analyze(context.Background(), "+14155552671", "")
    require.NoError(t, err)

    assert.Equal(t, "+14155552671", report.Input)
    assert.Equal(t, usNumber(), report.Number)
    assert.False(t, report.GeneratedAt.IsZero())
    assert.NotEmpty(t, report.Artifacts)

    var records int
    for _, a := range report.Artifacts {
        if a.Category == domain.CategoryPublicRecordLink { records++ }
    }
    assert.Equal(t, 5, records, "NANP number must include public-record artifacts")
}

func TestAnalyzeValidityGate(t *testing.T) {
    resolver := &stubResolver{err: domain.ErrInvalidNumber}
    svc := New(resolver, artifacts.Default())

    _, err := svc.Analyze(context.Background(), "not-a-number", "")
    require.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestAnalyzeDeterministicExceptTimestamp(t *testing.T) {
    resolver := &stubResolver{number: usNumber()}
    svc := New(resolver, artifacts.Default())

    first, err := svc.Analyze(context.Background(), "+14155552671", "")
    require.NoError(t, err)
    second, err := svc.Analyze(context.Background(), "+14155552671", "")
    require.NoError(t, err)

    second.GeneratedAt = first.GeneratedAt
    a, err := json.Marshal(first)
    require.NoError(t, err)
    b, err := json.Marshal(second)
    require.NoError(t, err)
    assert.Equal(t, string(a), string(b))
}

func TestAggregateDedupIdempotence(t *testing.T) {
    n := usNumber()
    single := [][]domain.ArtifactRecord{}
    for _, g := range artifacts.Default() {
        single = append(single, g.Generate(n))
    }
    doubled := append(append([][]domain.ArtifactRecord{}, single...), single...)

    at := time.Now()
    once := Aggregate("+14155552671", n, single, DefaultWeights(), at)
    twice := Aggregate("+14155552671", n, doubled, DefaultWeights(), at)

    assert.Equal(t, once, twice, "aggregating two copies of the same output must equal one copy")

    seen := map[domain.ArtifactKey]bool{}
    for _, a := range once.Artifacts {
        assert.False(t, seen[a.Key()], "duplicate artifact survived: %+v", a)
        seen[a.Key()] = true
    }
}

func TestAggregateKeepsFirstOccurrence(t *testing.T) {
    n := usNumber()
    outputs := [][]domain.ArtifactRecord{
        {{Category: domain.CategorySocialLink, Label: "First", Payload: "https://example.com/p"}},
        {{Category: domain.CategorySocialLink, Label: "Second", Payload: " https://example.com/p "}},
    }

    report := Aggregate("x", n, outputs, DefaultWeights(), time.Now())
    require.Len(t, report.Artifacts, 1)
    assert.Equal(t, "First", report.Artifacts[0].Label)
}

func TestRiskNoTriggers(t *testing.T) {
    report := Aggregate("x", usNumber(), nil, DefaultWeights(), time.Now())

    assert.Equal(t, 0, report.Risk.Score)
    assert.Equal(t, domain.RiskLow, report.Risk.Level)
    assert.Empty(t, report.Risk.Factors)
}

func TestRiskFactorOrderAndWeights(t *testing.T) {
    n := usNumber()
    n.LineType = domain.LineVoIP
    n.Carrier = "Acme PREPAID Wireless"
    n.CountryCode = 7
    n.NationalNumber = "9001234567"

    outputs := [][]domain.ArtifactRecord{artifacts.Patterns{}.Generate(n)}
    report := Aggregate("x", n, outputs, DefaultWeights(), time.Now())

    assert.Equal(t, 30+20+15+25, report.Risk.Score)
    assert.Equal(t, domain.RiskHigh, report.Risk.Level)
    assert.Equal(t, []string{
        "VoIP number - potentially disposable/temporary",
        "Prepaid number - lower accountability",
        "Number from high-risk region",
        "Matches known scam number pattern",
    }, report.Risk.Factors)
}

func TestRiskMonotonicity(t *testing.T) {
    base := usNumber()
    baseline := Aggregate("x", base, nil, DefaultWeights(), time.Now())

    voip := base
    voip.LineType = domain.LineVoIP
    escalated := Aggregate("x", voip, nil, DefaultWeights(), time.Now())

    assert.Greater(t, escalated.Risk.Score, baseline.Risk.Score)
    assert.Equal(t, 30, escalated.Risk.Score)
    assert.Equal(t, domain.RiskMedium, escalated.Risk.Level)
}

func TestRiskScamScenario(t *testing.T) {
    n := usNumber()
    n.NationalNumber = "9001234567"

    outputs := [][]domain.ArtifactRecord{artifacts.Patterns{}.Generate(n)}
    report := Aggregate("x", n, outputs, DefaultWeights(), time.Now())

    var scamFlagged bool
    for _, a := range report.Artifacts {
        if a.Category == domain.CategoryRiskFlag && a.Label == artifacts.LabelScamPrefix {
            scamFlagged = true
        }
    }
    assert.True(t, scamFlagged)
    assert.GreaterOrEqual(t, report.Risk.Score, 25)
}

func TestRiskConfigurableRegionSet(t *testing.T) {
    n := usNumber()
    n.CountryCode = 44

    w := DefaultWeights()
    w.HighRiskCodes = []int{44}
    report := Aggregate("x", n, nil, w, time.Now())

    assert.Equal(t, 15, report.Risk.Score)
    assert.Equal(t, []string{"Number from high-risk region"}, report.Risk.Factors)
}

func TestAnalyzeCacheServesRepeatInput(t *testing.T) {
    resolver := &stubResolver{number: usNumber()}
    svc := New(resolver, artifacts.Default(), WithCache(16))

    first, err := svc.Analyze(context.Background(), "+14155552671", "")
    require.NoError(t, err)
    second, err := svc.Analyze(context.Background(), "+14155552671", "")
    require.NoError(t, err)

    assert.Equal(t, 1, resolver.calls, "repeat input must come from cache")
    assert.Equal(t, first, second)

    _, err = svc.Analyze(context.Background(), "4155552671", "US")
    require.NoError(t, err)
    assert.Equal(t, 2, resolver.calls, "distinct input bypasses the cache")
}
