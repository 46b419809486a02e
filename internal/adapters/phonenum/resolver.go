package phonenum

import (
    "fmt"
    "strings"

    "github.com/nyaruka/phonenumbers"

    "dialscope/internal/domain"
)

// Resolver adapts the libphonenumber port to the NumberResolver port. The
// integer line-type codes of the underlying library are translated to the
// domain enum here and nowhere else.
type Resolver struct {
    lang string
}

// New returns a resolver with the fixed "en" locale, keeping geographic and
// carrier descriptions deterministic.
func New() *Resolver { return &Resolver{lang: "en"} }

var lineTypes = map[phonenumbers.PhoneNumberType]domain.LineType{
    phonenumbers.FIXED_LINE:           domain.LineFixed,
    phonenumbers.MOBILE:               domain.LineMobile,
    phonenumbers.FIXED_LINE_OR_MOBILE: domain.LineFixedOrMobile,
    phonenumbers.TOLL_FREE:            domain.LineTollFree,
    phonenumbers.PREMIUM_RATE:         domain.LinePremiumRate,
    phonenumbers.SHARED_COST:          domain.LineSharedCost,
    phonenumbers.VOIP:                 domain.LineVoIP,
    phonenumbers.PERSONAL_NUMBER:      domain.LinePersonal,
    phonenumbers.PAGER:                domain.LinePager,
    phonenumbers.UAN:                  domain.LineUniversalAccess,
    phonenumbers.VOICEMAIL:            domain.LineVoicemail,
    phonenumbers.UNKNOWN:              domain.LineUnknown,
}

// Resolve parses raw into a canonical number. Input without a leading plus is
// first tried as a national number of the hinted region; that pass is
// best-effort and falls back to the raw string. Only validity gates success:
// a merely "possible" number is still rejected, with possibility carried
// through as metadata.
func (r *Resolver) Resolve(raw string, regionHint string) (domain.CanonicalNumber, error) {
    parsed, err := r.parse(raw, regionHint)
    if err != nil {
        return domain.CanonicalNumber{}, fmt.Errorf("%w: %v", domain.ErrInvalidNumber, err)
    }
    if !phonenumbers.IsValidNumber(parsed) {
        return domain.CanonicalNumber{}, fmt.Errorf("%w: %s", domain.ErrInvalidNumber, raw)
    }

    carrier, err := phonenumbers.GetCarrierForNumber(parsed, r.lang)
    if err != nil {
        return domain.CanonicalNumber{}, fmt.Errorf("%w: carrier data: %v", domain.ErrResolverUnavailable, err)
    }
    location, err := phonenumbers.GetGeocodingForNumber(parsed, r.lang)
    if err != nil {
        return domain.CanonicalNumber{}, fmt.Errorf("%w: geocoding data: %v", domain.ErrResolverUnavailable, err)
    }
    timezones, err := phonenumbers.GetTimezonesForNumber(parsed)
    if err != nil {
        return domain.CanonicalNumber{}, fmt.Errorf("%w: timezone data: %v", domain.ErrResolverUnavailable, err)
    }

    lineType, ok := lineTypes[phonenumbers.GetNumberType(parsed)]
    if !ok { lineType = domain.LineUnknown }

    return domain.CanonicalNumber{
        CountryCode:    int(parsed.GetCountryCode()),
        NationalNumber: phonenumbers.GetNationalSignificantNumber(parsed),
        Region:         phonenumbers.GetRegionCodeForNumber(parsed),
        IsValid:        true,
        IsPossible:     phonenumbers.IsPossibleNumber(parsed),
        LineType:       lineType,
        Formats: domain.Formats{
            E164:          phonenumbers.Format(parsed, phonenumbers.E164),
            International: phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
            National:      phonenumbers.Format(parsed, phonenumbers.NATIONAL),
        },
        Carrier:   carrier,
        Location:  location,
        Timezones: timezones,
    }, nil
}

func (r *Resolver) parse(raw string, regionHint string) (*phonenumbers.PhoneNumber, error) {
    trimmed := strings.TrimSpace(raw)
    if !strings.HasPrefix(trimmed, "+") && regionHint != "" {
        if p, err := phonenumbers.Parse(trimmed, strings.ToUpper(regionHint)); err == nil {
            return p, nil
        }
        // fall through: interpret the raw string unmodified
    }
    return phonenumbers.Parse(trimmed, "")
}
