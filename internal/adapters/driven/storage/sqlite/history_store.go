package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Add records one entry.
func (h *historyStore) Add(ctx context.Context, entry domain.HistoryEntry) error {
	searchedAt := entry.SearchedAt
	if searchedAt.IsZero() {
		searchedAt = time.Now()
	}

	_, err := h.store.db.ExecContext(ctx, `
		INSERT INTO history (id, query, hits, searched_at)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Query, entry.Hits, searchedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recent first.
func (h *historyStore) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	rows, err := h.store.db.QueryContext(ctx, `
		SELECT id, query, hits, searched_at
		FROM history
		ORDER BY searched_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Query, &entry.Hits, &entry.SearchedAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}

// Close closes the underlying store.
func (h *historyStore) Close() error {
	return h.store.Close()
}
