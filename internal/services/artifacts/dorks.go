package artifacts

import (
    "fmt"
    "strconv"
    "strings"

    "dialscope/internal/domain"
)

// Search-engine query templates. Each takes one number variation; %[1]s lets
// a template reference the variation more than once.
var dorkTemplates = []string{
    `intext:"%s" site:facebook.com`,
    `intext:"%s" site:twitter.com`,
    `intext:"%s" site:instagram.com`,
    `intext:"%s" site:linkedin.com`,
    `intext:"%s" site:whatsapp.com`,
    `intext:"%s" site:telegram.org`,
    `intext:"%s" site:github.com`,
    `intext:"%s" site:pastebin.com`,
    `intext:"%s" "contact" OR "phone"`,
    `"%s" filetype:pdf OR filetype:doc OR filetype:xls`,
    `inurl:"%[1]s" OR intitle:"%[1]s"`,
    `"%s" "sign up" OR "register" OR "account"`,
    `"%s" "recovery" OR "verification" OR "security"`,
    `"%s" "leak" OR "breach" OR "database"`,
    `site:haveibeenpwned.com "%s"`,
}

// Dorks builds the cross product of deduplicated number-string variations
// with the fixed template set, plus a few platform-specific queries.
type Dorks struct{}

func (Dorks) Name() string { return "search-dorks" }

func (Dorks) Generate(n domain.CanonicalNumber) []domain.ArtifactRecord {
    cc := strconv.Itoa(n.CountryCode)
    variations := []string{
        n.Formats.E164,
        n.Formats.International,
        n.NationalNumber,
        cc + n.NationalNumber,
        "+" + cc + n.NationalNumber,
        cc + " " + n.NationalNumber,
    }

    // Variations are normalized (no plus sign, no spaces) and deduplicated
    // preserving first-occurrence order, so identical variations never
    // duplicate templates.
    seen := make(map[string]bool, len(variations))
    uniq := make([]string, 0, len(variations))
    for _, v := range variations {
        v = strings.NewReplacer("+", "", " ", "").Replace(v)
        if v == "" || seen[v] { continue }
        seen[v] = true
        uniq = append(uniq, v)
    }

    out := make([]domain.ArtifactRecord, 0, len(uniq)*len(dorkTemplates)+4)
    for _, v := range uniq {
        for _, tmpl := range dorkTemplates {
            out = append(out, domain.ArtifactRecord{
                Category: domain.CategorySearchQuery,
                Payload:  fmt.Sprintf(tmpl, v),
            })
        }
    }

    for _, q := range []string{
        fmt.Sprintf(`site:facebook.com "mobile" "%s"`, n.NationalNumber),
        fmt.Sprintf(`site:twitter.com "phone" "%s"`, cc),
        fmt.Sprintf(`site:linkedin.com "contact" "%s"`, n.Formats.E164),
        fmt.Sprintf(`site:instagram.com "phone" "%s"`, n.NationalNumber),
    } {
        out = append(out, domain.ArtifactRecord{Category: domain.CategorySearchQuery, Payload: q})
    }
    return out
}
