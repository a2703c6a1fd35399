package application

import "matchreview/internal/domain"

// Re-export domain types for use by adapters
type (
	SelectionRecord = domain.SelectionRecord
	SelectionKey    = domain.SelectionKey
	Catalog         = domain.Catalog
	Item            = domain.Item
	Match           = domain.Match
)

// ToggleResult reports the outcome of a toggle
type ToggleResult struct {
	Outcome domain.ToggleOutcome
	Record  domain.SelectionRecord
	Count   int // set size after the toggle
}

// ClearResult reports the outcome of a clear
type ClearResult struct {
	Cleared  int
	Declined bool
}

// ExportResult reports a written export document
type ExportResult struct {
	Path  string
	Count int
}
