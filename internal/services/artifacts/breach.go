package artifacts

import (
    "net/url"

    "dialscope/internal/domain"
)

// NoteManualCheck marks artifacts that have no live backing service: the
// breach sites listed here require an interactive lookup by the investigator.
const NoteManualCheck = "requires manual check"

// BreachLookups emits one URL per breach/leak-checking service, templated
// with the E.164 form. No live lookup is performed; these services have no
// unauthenticated phone-number API.
type BreachLookups struct{}

func (BreachLookups) Name() string { return "breach-lookups" }

func (BreachLookups) Generate(n domain.CanonicalNumber) []domain.ArtifactRecord {
    esc := url.QueryEscape(n.Formats.E164)

    services := []struct{ name, link string }{
        {"HaveIBeenPwned", "https://haveibeenpwned.com/account/" + esc},
        {"BreachDirectory", "https://breachdirectory.org/check?phone=" + esc},
        {"Dehashed", "https://dehashed.com/search?query=" + esc},
        {"Snusbase", "https://snusbase.com/search?term=" + esc},
    }

    out := make([]domain.ArtifactRecord, 0, len(services))
    for _, s := range services {
        out = append(out, domain.ArtifactRecord{
            Category: domain.CategoryBreachLookupLink,
            Label:    s.name,
            Payload:  s.link,
            Note:     NoteManualCheck,
        })
    }
    return out
}
