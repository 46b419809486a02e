package probe

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "dialscope/internal/domain"
)

func TestProbeSuccess(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
        w.Write([]byte("<html><body><h1>Profile</h1></body></html>"))
    }))
    defer srv.Close()

    present, known := New(time.Second).Probe(context.Background(), srv.URL)
    assert.True(t, known)
    assert.True(t, present)
}

func TestProbeNotFoundBody(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        // Soft 404: 200 status, "not found" in the page text.
        w.Write([]byte("<html><body>Sorry, page Not Found</body></html>"))
    }))
    defer srv.Close()

    present, known := New(time.Second).Probe(context.Background(), srv.URL)
    assert.True(t, known)
    assert.False(t, present)
}

func TestProbeIgnoresScriptText(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`<html><head><script>var x = "not found";</script></head><body>ok</body></html>`))
    }))
    defer srv.Close()

    present, known := New(time.Second).Probe(context.Background(), srv.URL)
    assert.True(t, known)
    assert.True(t, present, "markers inside script tags are not page text")
}

func TestProbeServerErrorIsUnknown(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusInternalServerError)
    }))
    defer srv.Close()

    present, known := New(time.Second).Probe(context.Background(), srv.URL)
    assert.False(t, known)
    assert.False(t, present)
}

func TestProbeTimeoutIsUnknown(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        time.Sleep(500 * time.Millisecond)
    }))
    defer srv.Close()

    present, known := New(50 * time.Millisecond).Probe(context.Background(), srv.URL)
    assert.False(t, known)
    assert.False(t, present)
}

func TestProbeNonHTTPScheme(t *testing.T) {
    present, known := New(time.Second).Probe(context.Background(), "viber://add?number=14155552671")
    assert.False(t, known)
    assert.False(t, present)
}

type fixedProber struct {
    present, known bool
    urls           []string
}

func (f *fixedProber) Probe(ctx context.Context, url string) (bool, bool) {
    f.urls = append(f.urls, url)
    return f.present, f.known
}

func sampleReport() domain.AnalysisReport {
    return domain.AnalysisReport{
        Input: "+14155552671",
        Artifacts: []domain.ArtifactRecord{
            {Category: domain.CategorySocialLink, Label: "Facebook", Payload: "https://facebook.example/p"},
            {Category: domain.CategoryMessagingLink, Label: "WhatsApp", Payload: "https://wa.me/14155552671"},
            {Category: domain.CategoryBreachLookupLink, Label: "HIBP", Payload: "https://hibp.example/p", Note: "requires manual check"},
            {Category: domain.CategorySearchQuery, Payload: `intext:"14155552671"`},
        },
    }
}

func TestApplyDecoratesLinkArtifacts(t *testing.T) {
    prober := &fixedProber{present: true, known: true}
    report := sampleReport()

    out := Apply(context.Background(), prober, report)

    assert.Equal(t, []string{"https://facebook.example/p", "https://wa.me/14155552671"}, prober.urls,
        "only social and messaging links are probed")
    require.NotNil(t, out.Artifacts[0].Verified)
    assert.True(t, *out.Artifacts[0].Verified)
    require.NotNil(t, out.Artifacts[1].Verified)
    assert.Nil(t, out.Artifacts[2].Verified, "breach lookups stay manual")
    assert.Nil(t, out.Artifacts[3].Verified)

    // The input report is never mutated.
    for _, a := range report.Artifacts {
        assert.Nil(t, a.Verified)
    }
}

func TestApplyLeavesUnknownNil(t *testing.T) {
    prober := &fixedProber{present: false, known: false}

    out := Apply(context.Background(), prober, sampleReport())
    for _, a := range out.Artifacts {
        assert.Nil(t, a.Verified)
    }
}

func TestApplyRecordsAbsence(t *testing.T) {
    prober := &fixedProber{present: false, known: true}

    out := Apply(context.Background(), prober, sampleReport())
    require.NotNil(t, out.Artifacts[0].Verified)
    assert.False(t, *out.Artifacts[0].Verified)
}
