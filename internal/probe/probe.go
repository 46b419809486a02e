package probe

import (
    "context"
    "io"
    "net/http"
    "net/url"
    "strings"
    "time"

    "golang.org/x/net/html"

    "dialscope/internal/domain"
    "dialscope/internal/ports"
)

const (
    // Browser-like UA: several of the probed sites return interstitials to
    // obvious bot agents.
    userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
    maxBodySize = 1 << 20
)

// Client performs bounded-time HTTP GET presence checks. Success heuristic:
// 2xx status and page text not containing "not found" (case-insensitive).
// Every failure degrades to unknown; a probe can never abort an analysis.
type Client struct {
    http    *http.Client
    timeout time.Duration
}

func New(timeout time.Duration) *Client {
    if timeout <= 0 { timeout = 5 * time.Second }
    return &Client{
        http:    &http.Client{Timeout: timeout},
        timeout: timeout,
    }
}

func (c *Client) Probe(ctx context.Context, rawurl string) (present bool, known bool) {
    u, err := url.Parse(rawurl)
    if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
        return false, false
    }

    ctx, cancel := context.WithTimeout(ctx, c.timeout)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
    if err != nil { return false, false }
    req.Header.Set("User-Agent", userAgent)

    resp, err := c.http.Do(req)
    if err != nil { return false, false }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return false, false
    }

    body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
    if err != nil { return false, false }

    text := pageText(body)
    if strings.Contains(strings.ToLower(text), "not found") {
        return false, true
    }
    return true, true
}

// pageText extracts the visible text of an HTML document, falling back to the
// raw bytes when the body is not HTML.
func pageText(body []byte) string {
    doc, err := html.Parse(strings.NewReader(string(body)))
    if err != nil { return string(body) }

    var sb strings.Builder
    var walk func(*html.Node)
    walk = func(n *html.Node) {
        if n.Type == html.TextNode {
            sb.WriteString(n.Data)
            sb.WriteByte(' ')
        }
        if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
            return
        }
        for child := n.FirstChild; child != nil; child = child.NextSibling {
            walk(child)
        }
    }
    walk(doc)
    return sb.String()
}

// probeable categories for the decorator. Breach lookups are deliberately
// excluded: they are always-manual artifacts with no meaningful liveness
// signal.
var probeCategories = map[domain.Category]bool{
    domain.CategorySocialLink:    true,
    domain.CategoryMessagingLink: true,
}

// Apply decorates a finished report with probe results and returns a new
// report, leaving the input untouched. Artifacts whose probes stay unknown
// keep a nil Verified.
func Apply(ctx context.Context, p ports.Prober, report domain.AnalysisReport) domain.AnalysisReport {
    decorated := report
    decorated.Artifacts = make([]domain.ArtifactRecord, len(report.Artifacts))
    copy(decorated.Artifacts, report.Artifacts)

    for i, a := range decorated.Artifacts {
        if !probeCategories[a.Category] { continue }
        if present, known := p.Probe(ctx, a.Payload); known {
            v := present
            decorated.Artifacts[i].Verified = &v
        }
    }
    return decorated
}
