package artifacts

import (
    "fmt"
    "net/url"

    "dialscope/internal/domain"
)

// MessagingLinks emits one deep link per chat/calling app. Some apps only
// expose custom URL schemes; those are still useful leads for manual checks
// even though they can never be probed over HTTP.
type MessagingLinks struct{}

func (MessagingLinks) Name() string { return "messaging-links" }

func (MessagingLinks) Generate(n domain.CanonicalNumber) []domain.ArtifactRecord {
    ccnsn := fmt.Sprintf("%d%s", n.CountryCode, n.NationalNumber)
    nsn := n.NationalNumber
    esc := url.QueryEscape(n.Formats.E164)

    apps := []struct{ name, link string }{
        {"WhatsApp", "https://wa.me/" + ccnsn},
        {"Telegram", "https://t.me/+" + ccnsn},
        {"Signal", "signal.me/#p/+" + ccnsn},
        {"Viber", "viber://add?number=" + ccnsn},
        {"WeChat", "weixin.qq.com/search?query=" + esc},
        {"Line", "line.me/R/ti/p/~" + ccnsn},
        {"Facebook Messenger", "m.me/" + nsn},
        {"Skype", "skype:" + nsn + "?call"},
        {"Discord", "discord.com/search?q=" + nsn},
    }

    out := make([]domain.ArtifactRecord, 0, len(apps))
    for _, a := range apps {
        out = append(out, domain.ArtifactRecord{
            Category: domain.CategoryMessagingLink,
            Label:    a.name,
            Payload:  a.link,
        })
    }
    return out
}
