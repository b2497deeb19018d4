// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/keymap"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/styles"
	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

// Bar displays the run state, live hit count, and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   domain.RunState
	message string
	hits    int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  domain.RunIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (b *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := b.width - b.styles.StatusBar.GetHorizontalFrameSize() - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the run state and hit count.
func (b *Bar) renderLeft() string {
	switch b.state {
	case domain.RunRunning:
		return b.styles.Muted.Render(fmt.Sprintf("Searching... %d hits", b.hits))
	case domain.RunFailed:
		if b.message != "" {
			return b.styles.Error.Render(b.message)
		}
		return b.styles.Error.Render("Search failed")
	case domain.RunFinished:
		return b.styles.Normal.Render(fmt.Sprintf("%d hits", b.hits))
	case domain.RunIdle:
		return b.styles.Muted.Render("Ready")
	}
	return b.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	bindings := b.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the run state.
func (b *Bar) SetState(state domain.RunState) {
	b.state = state
}

// State returns the run state.
func (b *Bar) State() domain.RunState {
	return b.state
}

// SetMessage sets a failure message shown while the state is Failed.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetHits sets the live hit count.
func (b *Bar) SetHits(hits int) {
	b.hits = hits
}

// Hits returns the live hit count.
func (b *Bar) Hits() int {
	return b.hits
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the status bar to the idle state.
func (b *Bar) Clear() {
	b.state = domain.RunIdle
	b.message = ""
	b.hits = 0
}
