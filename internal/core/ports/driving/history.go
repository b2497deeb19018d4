package driving

import (
	"context"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

// HistoryService exposes past search runs for recall.
type HistoryService interface {
	// Recent returns up to limit entries, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}
