package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"matchreview/internal/domain"
	"matchreview/internal/ports"
)

// Manager owns the selection set for the lifetime of a session.
// Toggle and Clear are the only mutation paths and both persist the full
// set right after mutating it. All methods are safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	store  ports.SelectionStore
	set    *domain.SelectionSet
	logger *slog.Logger
}

// NewManager loads the persisted selections once and returns a manager
// that mirrors every later mutation to store.
func NewManager(ctx context.Context, store ports.SelectionStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	records := store.Load(ctx)
	logger.Debug("selections loaded", "count", len(records))
	return &Manager{
		store:  store,
		set:    domain.NewSelectionSet(records),
		logger: logger,
	}
}

// Toggle removes the record with the same identity if it is selected,
// otherwise appends it.
//
// The set is saved after the mutation. A failed save is returned wrapped in
// a *StoreError but the in-memory change is kept, and the result is valid.
func (m *Manager) Toggle(ctx context.Context, r domain.SelectionRecord) (ToggleResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	outcome := m.set.Toggle(r)
	result := ToggleResult{Outcome: outcome, Record: r, Count: m.set.Len()}
	m.logger.Debug("selection toggled",
		"outcome", outcome.String(),
		"object_number", r.ObjectNumber,
		"match_file", r.MatchFile,
		"count", result.Count,
	)

	return result, m.saveLocked(ctx)
}

// Clear empties the set after confirm approves it.
//
// An empty set returns ErrNothingToClear without asking or writing. A
// declined confirmation leaves everything untouched.
func (m *Manager) Clear(ctx context.Context, confirm ports.Confirmer) (ClearResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.set.Len()
	if n == 0 {
		return ClearResult{}, ErrNothingToClear
	}

	if !confirm.Confirm(ClearPrompt(n)) {
		return ClearResult{Declined: true}, nil
	}

	cleared := m.set.Clear()
	m.logger.Info("selections cleared", "count", cleared)
	return ClearResult{Cleared: cleared}, m.saveLocked(ctx)
}

// ClearPrompt is the confirmation question for clearing n selections
func ClearPrompt(n int) string {
	return fmt.Sprintf("Clear all %d selections?", n)
}

// Count returns the number of selections
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set.Len()
}

// All returns a snapshot of the selections in insertion order
func (m *Manager) All() []domain.SelectionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set.Records()
}

// IsSelected reports whether the identity is currently selected
func (m *Manager) IsSelected(k domain.SelectionKey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set.Contains(k)
}

// SelectedFor returns how many matches of one item are selected
func (m *Manager) SelectedFor(objectNumber, sourceFile string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, r := range m.set.Records() {
		if r.ObjectNumber == objectNumber && r.SourceFile == sourceFile {
			n++
		}
	}
	return n
}

func (m *Manager) saveLocked(ctx context.Context) error {
	if err := m.store.Save(ctx, m.set.Records()); err != nil {
		m.logger.Error("failed to save selections", "error", err, "count", m.set.Len())
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}
