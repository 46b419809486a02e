package analyzer

import (
    "strings"

    "dialscope/internal/domain"
    "dialscope/internal/services/artifacts"
)

// Weights is the risk heuristic table. Each weight is added independently;
// the score is the plain sum of triggered weights.
type Weights struct {
    VoIP           int
    PrepaidCarrier int
    HighRiskRegion int
    ScamPattern    int
    // HighRiskCodes is the country-calling-code set for the region check.
    HighRiskCodes []int
}

func DefaultWeights() Weights {
    return Weights{
        VoIP:           30,
        PrepaidCarrier: 20,
        HighRiskRegion: 15,
        ScamPattern:    25,
        HighRiskCodes:  []int{7, 380, 375, 92, 91},
    }
}

// assess runs the heuristics in a fixed order (VoIP, prepaid, region,
// pattern) so the factor list is reproducible for identical input.
func assess(n domain.CanonicalNumber, arts []domain.ArtifactRecord, w Weights) domain.RiskAssessment {
    score := 0
    factors := []string{}

    if n.LineType == domain.LineVoIP {
        score += w.VoIP
        factors = append(factors, "VoIP number - potentially disposable/temporary")
    }
    if strings.Contains(strings.ToLower(n.Carrier), "prepaid") {
        score += w.PrepaidCarrier
        factors = append(factors, "Prepaid number - lower accountability")
    }
    for _, code := range w.HighRiskCodes {
        if n.CountryCode == code {
            score += w.HighRiskRegion
            factors = append(factors, "Number from high-risk region")
            break
        }
    }
    for _, a := range arts {
        if a.Category == domain.CategoryRiskFlag && a.Label == artifacts.LabelScamPrefix {
            score += w.ScamPattern
            factors = append(factors, "Matches known scam number pattern")
            break
        }
    }

    return domain.RiskAssessment{
        Score:   score,
        Level:   domain.LevelForScore(score),
        Factors: factors,
    }
}
