package domain

import "time"

// HistoryEntry records one finished search run for recall.
type HistoryEntry struct {
	// ID is a unique identifier for the entry.
	ID string

	// Query is the search text that ran.
	Query string

	// Hits is the final candidate count of the run.
	Hits int

	// SearchedAt is when the run finished.
	SearchedAt time.Time
}
