package driving

import (
	"context"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

// SearchUpdate is one publication of the live candidate list to the UI
// layer. Every update carries the generation of the run that produced it;
// consumers drop updates whose generation they no longer display.
type SearchUpdate struct {
	// Generation identifies the run this update belongs to.
	Generation uint64

	// Query is the run's query text.
	Query string

	// Candidates is the current candidate list, oldest first. The slice is
	// a snapshot owned by the receiver.
	Candidates []domain.Candidate

	// Count is the number of decoded records so far (notices excluded).
	Count int

	// State reports the run lifecycle; Final is true exactly once per run,
	// when State is Finished or Failed.
	State domain.RunState
	Final bool
}

// UpdateSink receives candidate-list publications. Implementations bridge
// into whatever scheduling mechanism the host interaction loop requires;
// the sink is invoked from the run's consume goroutine.
type UpdateSink func(SearchUpdate)

// IncrementalSearch drives asynchronous, restartable search runs. Starting
// a run cancels any run still in flight for the session and invalidates its
// candidate list.
type IncrementalSearch interface {
	// Start begins a run for query. Queries below the configured minimum
	// length publish a placeholder prompt without spawning a process. The
	// only synchronous failure is domain.ErrToolNotFound; everything later
	// is reported through the update sink.
	Start(ctx context.Context, query string) error

	// Stop cancels the active run, if any, and reaps its process.
	Stop()

	// SetUpdateSink registers the receiver of candidate-list publications.
	// It must be called before the first Start.
	SetUpdateSink(UpdateSink)
}

// OneShotSearch runs a query to completion and returns the final candidate
// list. It is the synchronous convenience used by the non-interactive CLI.
type OneShotSearch interface {
	Find(ctx context.Context, query string) ([]domain.Candidate, error)
}
