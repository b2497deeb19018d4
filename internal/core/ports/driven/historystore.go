package driven

import (
	"context"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

// HistoryStore persists finished search runs.
type HistoryStore interface {
	// Add records one entry.
	Add(ctx context.Context, entry domain.HistoryEntry) error

	// Recent returns up to limit entries, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Close releases the underlying store.
	Close() error
}
