package artifacts

import (
    "strings"

    "dialscope/internal/domain"
)

// PublicRecords emits lookup links for public-record aggregators. These sites
// only index the North American numbering plan, so any other country calling
// code yields an empty sequence.
type PublicRecords struct{}

func (PublicRecords) Name() string { return "public-records" }

func (PublicRecords) Generate(n domain.CanonicalNumber) []domain.ArtifactRecord {
    if n.CountryCode != 1 { return nil }

    e164 := n.Formats.E164
    bare := strings.TrimPrefix(e164, "+")

    sites := []struct{ name, link string }{
        {"InstantCheckmate", "https://www.instantcheckmate.com/search/phone/" + n.NationalNumber},
        {"Intelius", "https://www.intelius.com/phone/" + bare},
        {"ThatsThem", "https://thatsthem.com/phone/" + e164},
        {"ZabaSearch", "https://www.zabasearch.com/phone/" + e164 + "/"},
        {"411.com", "https://www.411.com/phone/" + e164},
    }

    out := make([]domain.ArtifactRecord, 0, len(sites))
    for _, s := range sites {
        out = append(out, domain.ArtifactRecord{
            Category: domain.CategoryPublicRecordLink,
            Label:    s.name,
            Payload:  s.link,
        })
    }
    return out
}
