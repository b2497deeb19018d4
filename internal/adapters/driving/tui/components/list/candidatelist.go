// Package list provides the candidate list component for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/styles"
	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

// CandidateList displays the live candidate list of a search run.
type CandidateList struct {
	candidates []domain.Candidate
	query      string
	generation uint64
	selected   int
	styles     *styles.Styles
	width      int
	height     int
}

// NewCandidateList creates a new candidate list component.
func NewCandidateList(s *styles.Styles) *CandidateList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CandidateList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the candidate list.
func (c *CandidateList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *CandidateList) Update(msg tea.Msg) (*CandidateList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			c.MoveUp()
		case tea.KeyDown:
			c.MoveDown()
		default:
		}
	}
	return c, nil
}

// SetCandidates replaces the list with a fresh publication. Within the same
// run the selection follows the record it was on; a new run resets it to
// the top.
func (c *CandidateList) SetCandidates(generation uint64, query string, candidates []domain.Candidate) {
	keepID := ""
	if generation == c.generation {
		if sel := c.SelectedCandidate(); sel != nil && !sel.IsNotice() {
			keepID = sel.Record.ID
		}
	}

	c.candidates = candidates
	c.query = query
	c.generation = generation
	c.selected = 0

	if keepID != "" {
		for i, cand := range candidates {
			if !cand.IsNotice() && cand.Record.ID == keepID {
				c.selected = i
				break
			}
		}
	}
}

// View renders the candidate list.
func (c *CandidateList) View() string {
	if len(c.candidates) == 0 {
		return c.styles.Muted.Render("No matches")
	}

	lines := make([]string, 0, len(c.candidates)+2)

	visibleCount := c.height - 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if c.selected >= visibleCount {
		start = c.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(c.candidates) {
		end = len(c.candidates)
	}

	for i := start; i < end; i++ {
		line, ok := c.renderCandidate(i, c.candidates[i])
		if !ok {
			continue
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderCandidate formats a single row. Records that cannot be split into
// an identifier and a free-text field are unrenderable and reported false.
func (c *CandidateList) renderCandidate(index int, cand domain.Candidate) (string, bool) {
	indicator := "  "
	if index == c.selected {
		indicator = "> "
	}

	if cand.IsNotice() {
		return c.styles.Notice.Render(indicator + cand.Notice), true
	}

	text, ok := cand.Record.Text()
	if !ok {
		return "", false
	}
	text = truncate(text, c.width-4)

	if index == c.selected {
		return c.styles.Selected.Render(indicator + text), true
	}

	spans := domain.HighlightSpans(text, c.query, c.styles.MatchClasses())
	rendered := make([]string, 0, len(spans))
	for _, span := range spans {
		rendered = append(rendered, c.styles.MatchStyle(span.Class).Render(span.Token))
	}
	return c.styles.Normal.Render(indicator) + strings.Join(rendered, " "), true
}

func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// Clear empties the list without disturbing generation tracking, so that
// late publications from a cancelled run stay ignorable.
func (c *CandidateList) Clear() {
	c.candidates = nil
	c.query = ""
	c.selected = 0
}

// Candidates returns the current candidates.
func (c *CandidateList) Candidates() []domain.Candidate {
	return c.candidates
}

// Generation returns the run generation the list displays.
func (c *CandidateList) Generation() uint64 {
	return c.generation
}

// Selected returns the index of the selected row.
func (c *CandidateList) Selected() int {
	return c.selected
}

// SelectedCandidate returns the currently selected candidate, or nil.
func (c *CandidateList) SelectedCandidate() *domain.Candidate {
	if len(c.candidates) == 0 || c.selected < 0 || c.selected >= len(c.candidates) {
		return nil
	}
	return &c.candidates[c.selected]
}

// MoveUp moves selection up.
func (c *CandidateList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves selection down.
func (c *CandidateList) MoveDown() {
	if c.selected < len(c.candidates)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *CandidateList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of candidates.
func (c *CandidateList) Count() int {
	return len(c.candidates)
}

// IsEmpty returns whether the list is empty.
func (c *CandidateList) IsEmpty() bool {
	return len(c.candidates) == 0
}
