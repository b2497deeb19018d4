package domain

import "fmt"

// RunState is the lifecycle state of one search invocation.
type RunState int

const (
	// RunIdle means no search is in flight.
	RunIdle RunState = iota

	// RunRunning means the search process has been spawned and its output
	// is being consumed.
	RunRunning

	// RunFinished means the process exited cleanly and final results were
	// published.
	RunFinished

	// RunFailed means the process exited with a non-zero code.
	RunFailed
)

// String returns the string representation of the run state.
func (s RunState) String() string {
	switch s {
	case RunIdle:
		return "idle"
	case RunRunning:
		return "running"
	case RunFinished:
		return "finished"
	case RunFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExitTable maps search tool exit codes to human-readable messages.
type ExitTable map[int]string

// DefaultExitTable returns the exit codes documented for the default tool.
func DefaultExitTable() ExitTable {
	return ExitTable{
		1:  "general error",
		2:  "no matches found",
		4:  "database needs a rebuild; run the indexer",
		11: "database is locked by another process",
	}
}

// Message resolves an exit code to its configured message. Unknown codes
// render as a generic "error code N" string.
func (t ExitTable) Message(code int) string {
	if msg, ok := t[code]; ok {
		return msg
	}
	return fmt.Sprintf("error code %d", code)
}
