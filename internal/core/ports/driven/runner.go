package driven

import (
	"context"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

// ProcessEvent is one ordered event from a running search process: either
// a chunk of stdout bytes or the terminal exit event. Events for one run
// are delivered by a single producer in arrival order.
type ProcessEvent struct {
	// Chunk is a slice of stdout bytes; nil on the exit event. The slice is
	// owned by the receiver.
	Chunk []byte

	// Exited is true on the final event of the run.
	Exited bool

	// ExitCode is the process exit status, meaningful only when Exited.
	// Cancellation-induced kills report a non-zero code.
	ExitCode int

	// Err carries an I/O or wait failure, if any, on the exit event.
	Err error
}

// ProcessRunner owns the external process lifecycle. Start spawns the
// command and returns the event channel; the channel is closed after the
// exit event. Cancelling the context kills the process best-effort and
// still produces the exit event.
type ProcessRunner interface {
	// Start spawns cmd. It fails synchronously with domain.ErrToolNotFound
	// when the executable cannot be resolved on the execution path.
	Start(ctx context.Context, cmd domain.Command) (<-chan ProcessEvent, error)
}
