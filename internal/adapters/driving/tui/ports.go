// Package tui provides the interactive incremental search interface for
// mailseek. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search drives asynchronous incremental search runs.
	Search driving.IncrementalSearch

	// Action performs actions on a chosen candidate.
	Action driving.CandidateActionService

	// History recalls past search runs. Optional; when nil the history
	// overlay is unavailable.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.IncrementalSearch,
	action driving.CandidateActionService,
	history driving.HistoryService,
) *Ports {
	return &Ports{
		Search:  search,
		Action:  action,
		History: history,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Action == nil {
		return ErrMissingActionService
	}
	return nil
}
