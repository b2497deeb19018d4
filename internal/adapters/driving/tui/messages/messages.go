// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driving"
)

// CandidatesPublished carries one candidate-list publication from an
// active search run into the model.
type CandidatesPublished struct {
	Update driving.SearchUpdate
}

// CandidateOpened signals that opening a candidate in the external viewer
// completed.
type CandidateOpened struct {
	ID  string
	Err error
}

// HistoryLoaded carries recalled history entries.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the incremental search view.
	ViewSearch ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
