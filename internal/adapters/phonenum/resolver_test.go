package phonenum

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "dialscope/internal/domain"
)

func TestResolveInternationalInput(t *testing.T) {
    n, err := New().Resolve("+14155552671", "")
    require.NoError(t, err)

    assert.Equal(t, 1, n.CountryCode)
    assert.Equal(t, "4155552671", n.NationalNumber)
    assert.Equal(t, "US", n.Region)
    assert.True(t, n.IsValid)
    assert.True(t, n.IsPossible)
    assert.Equal(t, "+14155552671", n.Formats.E164)
    assert.Equal(t, "+1 415-555-2671", n.Formats.International)
    assert.Equal(t, "(415) 555-2671", n.Formats.National)
    assert.NotEmpty(t, n.Timezones)
}

func TestResolveRegionHint(t *testing.T) {
    n, err := New().Resolve("4155552671", "US")
    require.NoError(t, err)
    assert.Equal(t, "+14155552671", n.Formats.E164)

    // Lowercase hints are accepted.
    n, err = New().Resolve("020 7946 0958", "gb")
    require.NoError(t, err)
    assert.Equal(t, 44, n.CountryCode)
    assert.Equal(t, "GB", n.Region)
}

func TestResolveRejectsGarbage(t *testing.T) {
    _, err := New().Resolve("not-a-number", "")
    require.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestResolveRejectsImpossibleNational(t *testing.T) {
    // Parses fine but fails validation: 123 is not a diallable US area code.
    _, err := New().Resolve("+11234567890", "")
    require.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestResolveNationalWithoutHint(t *testing.T) {
    // No plus sign and no region hint leaves the country code undetermined.
    _, err := New().Resolve("4155552671", "")
    require.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestResolveTrimsWhitespace(t *testing.T) {
    n, err := New().Resolve("  +14155552671  ", "")
    require.NoError(t, err)
    assert.Equal(t, "+14155552671", n.Formats.E164)
}

func TestResolveLineTypeMapping(t *testing.T) {
    n, err := New().Resolve("+18005551212", "")
    require.NoError(t, err)
    assert.Equal(t, domain.LineTollFree, n.LineType)
}
