package ports

import (
	"context"

	"matchreview/internal/domain"
)

// SelectionStore persists the selection set under a fixed key.
// No other component reads or writes the underlying store.
type SelectionStore interface {
	// Load returns the persisted records in insertion order.
	// A missing key or unparseable value yields an empty slice; Load never fails.
	Load(ctx context.Context) []domain.SelectionRecord

	// Save replaces the persisted records with the given ones in a single write
	Save(ctx context.Context, records []domain.SelectionRecord) error
}
