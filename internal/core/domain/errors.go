package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrToolNotFound indicates the external search executable could not be
	// resolved on the execution path. This is the only failure that aborts
	// a run before any asynchronous work begins.
	ErrToolNotFound = errors.New("search tool not found")

	// ErrQueryTooShort indicates the query is below the minimum length.
	// Callers surface this as a prompt for more input, not as a failure.
	ErrQueryTooShort = errors.New("query too short")

	// ErrInvalidSelection indicates a selected value carried no field
	// delimiter, so no stable identifier could be extracted. Only values
	// that never passed through the record parser can trigger this.
	ErrInvalidSelection = errors.New("selection has no identifier field")
)
