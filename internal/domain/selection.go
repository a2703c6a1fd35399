package domain

import "slices"

// SelectionRecord is a user's decision that one match is chosen for one item.
// Similarity is copied from the catalog at selection time and never recomputed.
type SelectionRecord struct {
	ObjectNumber string  `json:"objectNumber"`
	SourceFile   string  `json:"sourceFile"`
	MatchFile    string  `json:"matchFile"`
	MatchBase    string  `json:"matchBase"`
	Similarity   float64 `json:"similarity"`
}

// SelectionKey is the identity of a SelectionRecord.
type SelectionKey struct {
	ObjectNumber string
	SourceFile   string
	MatchFile    string
}

// Key returns the identifying triple of the record
func (r SelectionRecord) Key() SelectionKey {
	return SelectionKey{
		ObjectNumber: r.ObjectNumber,
		SourceFile:   r.SourceFile,
		MatchFile:    r.MatchFile,
	}
}

// ToggleOutcome tells whether a toggle added or removed a record
type ToggleOutcome int

const (
	ToggleAdded ToggleOutcome = iota
	ToggleRemoved
)

func (o ToggleOutcome) String() string {
	if o == ToggleRemoved {
		return "removed"
	}
	return "added"
}

// SelectionSet is an insertion-ordered sequence of records, unique by key.
// The zero value is an empty set ready to use.
type SelectionSet struct {
	records []SelectionRecord
}

// NewSelectionSet builds a set from previously persisted records.
// Later duplicates of a key are dropped so the uniqueness invariant holds
// even for hand-edited store contents.
func NewSelectionSet(records []SelectionRecord) *SelectionSet {
	s := &SelectionSet{records: make([]SelectionRecord, 0, len(records))}
	for _, r := range records {
		if s.indexOf(r.Key()) >= 0 {
			continue
		}
		s.records = append(s.records, r)
	}
	return s
}

// Toggle removes the record with the same key if present, otherwise appends it.
func (s *SelectionSet) Toggle(r SelectionRecord) ToggleOutcome {
	if i := s.indexOf(r.Key()); i >= 0 {
		s.records = slices.Delete(s.records, i, i+1)
		return ToggleRemoved
	}
	s.records = append(s.records, r)
	return ToggleAdded
}

// Clear empties the set and returns how many records were removed
func (s *SelectionSet) Clear() int {
	n := len(s.records)
	s.records = s.records[:0]
	return n
}

// Contains reports whether a record with the key exists
func (s *SelectionSet) Contains(k SelectionKey) bool {
	return s.indexOf(k) >= 0
}

// Len returns the number of records
func (s *SelectionSet) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in insertion order
func (s *SelectionSet) Records() []SelectionRecord {
	return slices.Clone(s.records)
}

func (s *SelectionSet) indexOf(k SelectionKey) int {
	return slices.IndexFunc(s.records, func(r SelectionRecord) bool {
		return r.Key() == k
	})
}
