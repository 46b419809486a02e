package artifacts

import "dialscope/internal/domain"

// Generator turns a canonical number into one category of investigation
// artifact. Generators are pure: no state, no ordering dependency between
// them, identical output for identical input. Adding a platform means adding
// a generator, not touching the others.
type Generator interface {
    Name() string
    Generate(n domain.CanonicalNumber) []domain.ArtifactRecord
}

// Default returns the full generator roster in report order.
func Default() []Generator {
    return []Generator{
        Dorks{},
        SocialLinks{},
        MessagingLinks{},
        PublicRecords{},
        BreachLookups{},
        Patterns{},
    }
}
