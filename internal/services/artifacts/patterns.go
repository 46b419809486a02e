package artifacts

import (
    "fmt"
    "strings"

    "dialscope/internal/domain"
)

// Fixed labels for the digit-pattern heuristics. The scam label is matched by
// the risk scorer, so it is exported.
const (
    LabelRepeatingDigits  = "Repeating digits"
    LabelSequentialDigits = "Sequential digits"
    LabelTollFreePrefix   = "Toll-free prefix"
    LabelScamPrefix       = "Scam prefix"
)

var (
    tollFreePrefixes = []string{"800", "888", "877", "866", "855", "844"}
    // Prefixes historically tied to premium-rate and regional phone scams
    // (Jamaica, Dominican Republic, British Virgin Islands, Grenada).
    scamPrefixes = []string{"900", "876", "809", "284", "473"}
)

// Patterns evaluates independent boolean heuristics over the national digit
// string and emits one RISK_FLAG per trigger. No trigger means no records.
type Patterns struct{}

func (Patterns) Name() string { return "digit-patterns" }

func (Patterns) Generate(n domain.CanonicalNumber) []domain.ArtifactRecord {
    nsn := n.NationalNumber
    var out []domain.ArtifactRecord

    flag := func(label, payload string) {
        out = append(out, domain.ArtifactRecord{
            Category: domain.CategoryRiskFlag,
            Label:    label,
            Payload:  payload,
        })
    }

    if hasRepeatingRun(nsn, 4) {
        flag(LabelRepeatingDigits, "national number contains a run of 4 or more identical digits")
    }
    if hasAscendingRun(nsn, 3) {
        flag(LabelSequentialDigits, "national number contains 3 or more sequential ascending digits")
    }
    if p := matchPrefix(nsn, tollFreePrefixes); p != "" {
        flag(LabelTollFreePrefix, fmt.Sprintf("national number starts with toll-free/business prefix %s", p))
    }
    if p := matchPrefix(nsn, scamPrefixes); p != "" {
        flag(LabelScamPrefix, fmt.Sprintf("national number starts with scam-associated prefix %s", p))
    }
    return out
}

// hasRepeatingRun reports whether s contains a run of length >= min of the
// same digit.
func hasRepeatingRun(s string, min int) bool {
    run := 0
    var prev byte
    for i := 0; i < len(s); i++ {
        if i > 0 && s[i] == prev {
            run++
        } else {
            run = 1
            prev = s[i]
        }
        if run >= min { return true }
    }
    return false
}

// hasAscendingRun reports whether s contains min consecutive digits where
// each digit is exactly one greater than the previous.
func hasAscendingRun(s string, min int) bool {
    run := 1
    for i := 1; i < len(s); i++ {
        if s[i] >= '1' && s[i] == s[i-1]+1 {
            run++
        } else {
            run = 1
        }
        if run >= min { return true }
    }
    return false
}

func matchPrefix(s string, prefixes []string) string {
    for _, p := range prefixes {
        if strings.HasPrefix(s, p) { return p }
    }
    return ""
}
