package domain

import (
    "encoding/json"
    "strings"
    "time"
)

// Core domain models. Everything here is a value type: a report is built once
// per analysis and never mutated after it is returned. Re-analysis produces a
// fresh report.

// LineType classifies a number within its numbering plan.
type LineType string

const (
    LineFixed           LineType = "FIXED_LINE"
    LineMobile          LineType = "MOBILE"
    LineFixedOrMobile   LineType = "FIXED_OR_MOBILE"
    LineTollFree        LineType = "TOLL_FREE"
    LinePremiumRate     LineType = "PREMIUM_RATE"
    LineSharedCost      LineType = "SHARED_COST"
    LineVoIP            LineType = "VOIP"
    LinePersonal        LineType = "PERSONAL"
    LinePager           LineType = "PAGER"
    LineUniversalAccess LineType = "UNIVERSAL_ACCESS"
    LineVoicemail       LineType = "VOICEMAIL"
    LineUnknown         LineType = "UNKNOWN"
)

var lineTypeDescriptions = map[LineType]string{
    LineFixed:           "Landline telephone line",
    LineMobile:          "Mobile/cellular phone",
    LineFixedOrMobile:   "Could be either landline or mobile",
    LineTollFree:        "Toll-free number (caller doesn't pay)",
    LinePremiumRate:     "Premium rate service (high cost)",
    LineSharedCost:      "Shared cost service",
    LineVoIP:            "Voice over IP (internet phone)",
    LinePersonal:        "Personal numbering",
    LinePager:           "Pager service",
    LineUniversalAccess: "Universal access number",
    LineVoicemail:       "Voicemail service",
    LineUnknown:         "Unknown type",
}

// Description returns a human-readable explanation of the line type.
func (t LineType) Description() string {
    if d, ok := lineTypeDescriptions[t]; ok { return d }
    return lineTypeDescriptions[LineUnknown]
}

// Formats holds the canonical string renderings of a number. E164 carries no
// separators; the other two include locale-appropriate separators supplied by
// the numbering-plan resolver.
type Formats struct {
    E164          string `json:"e164"`
    International string `json:"international"`
    National      string `json:"national"`
}

// CanonicalNumber is the structured representation of one parsed number.
// All fields, including the derived metadata, come from a single resolver
// call at construction time.
type CanonicalNumber struct {
    CountryCode    int      `json:"countryCallingCode"`
    NationalNumber string   `json:"nationalNumber"`
    Region         string   `json:"region,omitempty"`
    IsValid        bool     `json:"isValid"`
    IsPossible     bool     `json:"isPossible"`
    LineType       LineType `json:"lineType"`
    Formats        Formats  `json:"formats"`
    Carrier        string   `json:"carrier,omitempty"`
    Location       string   `json:"location,omitempty"`
    Timezones      []string `json:"timezones,omitempty"`
}

// Category names one kind of investigation artifact.
type Category string

const (
    CategorySearchQuery      Category = "SEARCH_QUERY"
    CategorySocialLink       Category = "SOCIAL_LINK"
    CategoryMessagingLink    Category = "MESSAGING_LINK"
    CategoryPublicRecordLink Category = "PUBLIC_RECORD_LINK"
    CategoryBreachLookupLink Category = "BREACH_LOOKUP_LINK"
    CategoryRiskFlag         Category = "RISK_FLAG"
)

// ArtifactRecord is one generated investigation lead. Verified is nil unless
// a best-effort presence probe ran and produced a definite answer; it is never
// required for correctness.
type ArtifactRecord struct {
    Category Category `json:"category"`
    Label    string   `json:"label,omitempty"`
    Payload  string   `json:"payload"`
    Note     string   `json:"note,omitempty"`
    Verified *bool    `json:"verified,omitempty"`
}

// ArtifactKey is the identity used for deduplication: two records with the
// same key are the same artifact regardless of which generator emitted them.
type ArtifactKey struct {
    Category Category
    Payload  string
}

// Key normalizes the payload by trimming surrounding whitespace only. No URL
// canonicalization is performed.
func (a ArtifactRecord) Key() ArtifactKey {
    return ArtifactKey{Category: a.Category, Payload: strings.TrimSpace(a.Payload)}
}

// RiskLevel buckets a risk score.
type RiskLevel string

const (
    RiskLow    RiskLevel = "LOW"
    RiskMedium RiskLevel = "MEDIUM"
    RiskHigh   RiskLevel = "HIGH"
)

// LevelForScore applies the fixed thresholds: <30 LOW, <60 MEDIUM, else HIGH.
func LevelForScore(score int) RiskLevel {
    switch {
    case score < 30:
        return RiskLow
    case score < 60:
        return RiskMedium
    default:
        return RiskHigh
    }
}

// RiskAssessment is the weighted-heuristic verdict for a number. Score holds
// the raw sum of triggered weights; Factors is ordered by evaluation order.
type RiskAssessment struct {
    Score   int       `json:"score"`
    Level   RiskLevel `json:"level"`
    Factors []string  `json:"factors"`
}

// DisplayScore caps the raw sum at 100 for presentation.
func (r RiskAssessment) DisplayScore() int {
    if r.Score > 100 { return 100 }
    return r.Score
}

// MarshalJSON reports the capped score; the raw sum stays internal.
func (r RiskAssessment) MarshalJSON() ([]byte, error) {
    type assessment RiskAssessment
    out := assessment(r)
    out.Score = r.DisplayScore()
    if out.Factors == nil { out.Factors = []string{} }
    return json.Marshal(out)
}

// AnalysisReport is the aggregate produced by one analysis run. Field order
// here fixes the JSON key order: input, number, artifacts, risk, generatedAt.
type AnalysisReport struct {
    Input       string           `json:"input"`
    Number      CanonicalNumber  `json:"number"`
    Artifacts   []ArtifactRecord `json:"artifacts"`
    Risk        RiskAssessment   `json:"risk"`
    GeneratedAt time.Time        `json:"generatedAt"`
}
