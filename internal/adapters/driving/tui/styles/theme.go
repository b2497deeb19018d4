// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Matches are the highlight colours cycled across query terms. Their
	// count fixes the number of distinct highlight classes.
	Matches []lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Matches: []lipgloss.Color{
			lipgloss.Color("#F9E2AF"), // Yellow
			lipgloss.Color("#A6E3A1"), // Green
			lipgloss.Color("#89B4FA"), // Blue
			lipgloss.Color("#FAB387"), // Peach
			lipgloss.Color("#F5C2E7"), // Pink
			lipgloss.Color("#94E2D5"), // Teal
		},
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted candidate row.
	Selected lipgloss.Style

	// Notice style for synthetic candidate rows.
	Notice lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for the query input.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style

	// matches holds one style per highlight class, class 1 first.
	matches []lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	matches := make([]lipgloss.Style, 0, len(theme.Matches))
	for _, colour := range theme.Matches {
		matches = append(matches, lipgloss.NewStyle().Bold(true).Foreground(colour))
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Notice: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Secondary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		matches: matches,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// MatchClasses returns the number of distinct highlight classes.
func (s *Styles) MatchClasses() int {
	return len(s.matches)
}

// MatchStyle returns the style for a highlight class. Class 0 and classes
// beyond the palette render with the normal text style.
func (s *Styles) MatchStyle(class int) lipgloss.Style {
	if class < 1 || class > len(s.matches) {
		return s.Normal
	}
	return s.matches[class-1]
}
