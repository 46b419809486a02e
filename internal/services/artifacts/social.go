package artifacts

import (
    "fmt"
    "net/url"
    "strings"

    "dialscope/internal/domain"
)

// SocialLinks emits deep-link and search URLs for a fixed roster of social
// platforms and caller-ID lookup sites.
type SocialLinks struct{}

func (SocialLinks) Name() string { return "social-links" }

func (SocialLinks) Generate(n domain.CanonicalNumber) []domain.ArtifactRecord {
    e164 := n.Formats.E164
    esc := url.QueryEscape(e164)
    bare := strings.TrimPrefix(e164, "+")
    ccnsn := fmt.Sprintf("%d%s", n.CountryCode, n.NationalNumber)
    nsn := n.NationalNumber

    entries := []struct {
        platform string
        urls     []string
    }{
        {"Facebook", []string{
            "https://www.facebook.com/search/top?q=" + esc,
            "https://www.facebook.com/login/identify?ctx=recover&lwv=110&email=" + esc,
        }},
        {"Twitter", []string{"https://twitter.com/search?q=" + esc + "&src=typed_query"}},
        {"Instagram", []string{"https://www.instagram.com/accounts/account_recovery/?phone_number=" + ccnsn}},
        {"LinkedIn", []string{"https://www.linkedin.com/search/results/all/?keywords=" + esc}},
        {"Telegram", []string{
            "https://t.me/" + bare,
            "https://t.me/+" + ccnsn,
        }},
        {"WhatsApp", []string{"https://wa.me/" + ccnsn}},
        {"Signal", []string{"signal.me/#p/+" + ccnsn}},
        {"Snapchat", []string{"https://www.snapchat.com/add/" + nsn}},
        {"TikTok", []string{"https://www.tiktok.com/search?q=" + nsn}},
        {"Pinterest", []string{"https://www.pinterest.com/search/pins/?q=" + nsn}},
        {"Reddit", []string{"https://www.reddit.com/search/?q=" + nsn}},
        {"YouTube", []string{"https://www.youtube.com/results?search_query=" + nsn}},
        {"Truecaller", []string{fmt.Sprintf("https://www.truecaller.com/search/%d/%s", n.CountryCode, nsn)}},
        {"Whitepages", []string{"https://www.whitepages.com/phone/" + bare}},
        {"SpyDialer", []string{"https://www.spydialer.com/default.aspx?phone=" + ccnsn}},
        {"FastPeopleSearch", []string{"https://www.fastpeoplesearch.com/" + ccnsn}},
    }

    var out []domain.ArtifactRecord
    for _, e := range entries {
        for _, u := range e.urls {
            out = append(out, domain.ArtifactRecord{
                Category: domain.CategorySocialLink,
                Label:    e.platform,
                Payload:  u,
            })
        }
    }
    return out
}
