package styles

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, theme.Matches)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.NotNil(t, s.Theme())
}

func TestStyles_MatchClasses(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, len(DefaultTheme().Matches), s.MatchClasses())
}

func TestStyles_MatchStyleNeutralClass(t *testing.T) {
	s := DefaultStyles()

	// Class 0 is reserved for non-matching tokens.
	assert.Equal(t, s.Normal, s.MatchStyle(0))
}

func TestStyles_MatchStyleOutOfRange(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Normal, s.MatchStyle(-1))
	assert.Equal(t, s.Normal, s.MatchStyle(s.MatchClasses()+1))
}

func TestStyles_MatchStylesAreDistinct(t *testing.T) {
	s := DefaultStyles()

	seen := make(map[string]bool)
	for class := 1; class <= s.MatchClasses(); class++ {
		colour := fmt.Sprintf("%v", s.MatchStyle(class).GetForeground())
		assert.False(t, seen[colour], "duplicate colour for class %d", class)
		seen[colour] = true
	}
}
