package domain

import (
	"fmt"
	"reflect"
	"testing"
)

func rec(obj, src, match string) SelectionRecord {
	return SelectionRecord{
		ObjectNumber: obj,
		SourceFile:   src,
		MatchFile:    match,
		MatchBase:    "B" + match,
		Similarity:   0.5,
	}
}

func TestSelectionSet_Toggle(t *testing.T) {
	s := &SelectionSet{}
	r := SelectionRecord{ObjectNumber: "1", SourceFile: "a.jpg", MatchFile: "m1.jpg", MatchBase: "M1", Similarity: 0.95}

	if got := s.Toggle(r); got != ToggleAdded {
		t.Fatalf("first toggle = %v, want added", got)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Len())
	}
	if !s.Contains(r.Key()) {
		t.Error("expected set to contain the toggled key")
	}

	if got := s.Toggle(r); got != ToggleRemoved {
		t.Fatalf("second toggle = %v, want removed", got)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty set, got %d records", s.Len())
	}
}

func TestSelectionSet_ToggleMatchesOnKeyOnly(t *testing.T) {
	s := &SelectionSet{}
	s.Toggle(SelectionRecord{ObjectNumber: "1", SourceFile: "a.jpg", MatchFile: "m1.jpg", MatchBase: "M1", Similarity: 0.9})

	// Same triple, different payload: still the same selection
	got := s.Toggle(SelectionRecord{ObjectNumber: "1", SourceFile: "a.jpg", MatchFile: "m1.jpg", MatchBase: "other", Similarity: 0.1})
	if got != ToggleRemoved {
		t.Errorf("toggle with same key = %v, want removed", got)
	}
}

func TestSelectionSet_EvenTogglesAreIdentity(t *testing.T) {
	base := []SelectionRecord{rec("1", "a.jpg", "m1.jpg"), rec("2", "b.jpg", "m2.jpg")}

	for n := 0; n <= 6; n += 2 {
		t.Run(fmt.Sprintf("%d toggles", n), func(t *testing.T) {
			s := NewSelectionSet(base)
			r := rec("3", "c.jpg", "m3.jpg")
			for i := 0; i < n; i++ {
				s.Toggle(r)
			}
			if !reflect.DeepEqual(s.Records(), base) {
				t.Errorf("records = %v, want %v", s.Records(), base)
			}
		})
	}
}

func TestSelectionSet_NeverDuplicatesKeys(t *testing.T) {
	keys := []SelectionRecord{
		rec("1", "a.jpg", "m1.jpg"),
		rec("1", "a.jpg", "m2.jpg"),
		rec("2", "a.jpg", "m1.jpg"),
		rec("1", "b.jpg", "m1.jpg"),
	}
	// Interleave toggles: every key toggled 1..4 times in rotating order
	s := &SelectionSet{}
	for round := 0; round < 4; round++ {
		for i, r := range keys {
			if round <= i {
				s.Toggle(r)
			}
		}
	}

	seen := make(map[SelectionKey]bool)
	for _, r := range s.Records() {
		if seen[r.Key()] {
			t.Fatalf("duplicate key %v", r.Key())
		}
		seen[r.Key()] = true
	}
	// keys[0] toggled once, keys[1] twice, keys[2] three times, keys[3] four times
	want := []SelectionRecord{keys[0], keys[2]}
	if !reflect.DeepEqual(s.Records(), want) {
		t.Errorf("records = %v, want %v", s.Records(), want)
	}
}

func TestSelectionSet_PreservesInsertionOrder(t *testing.T) {
	s := &SelectionSet{}
	a, b, c := rec("1", "a.jpg", "m1.jpg"), rec("2", "b.jpg", "m2.jpg"), rec("3", "c.jpg", "m3.jpg")
	s.Toggle(a)
	s.Toggle(b)
	s.Toggle(c)
	s.Toggle(b)
	s.Toggle(b)

	want := []SelectionRecord{a, c, b}
	if got := s.Records(); !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}
}

func TestNewSelectionSet_DropsDuplicates(t *testing.T) {
	first := rec("1", "a.jpg", "m1.jpg")
	dup := first
	dup.Similarity = 0.1

	s := NewSelectionSet([]SelectionRecord{first, dup, rec("2", "b.jpg", "m2.jpg")})
	if s.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Len())
	}
	if s.Records()[0].Similarity != first.Similarity {
		t.Error("expected the first occurrence to win")
	}
}

func TestSelectionSet_RecordsIsACopy(t *testing.T) {
	s := NewSelectionSet([]SelectionRecord{rec("1", "a.jpg", "m1.jpg")})
	got := s.Records()
	got[0].ObjectNumber = "changed"

	if s.Records()[0].ObjectNumber != "1" {
		t.Error("mutating the snapshot changed the set")
	}
}

func TestSelectionSet_Clear(t *testing.T) {
	s := NewSelectionSet([]SelectionRecord{rec("1", "a.jpg", "m1.jpg"), rec("2", "b.jpg", "m2.jpg")})
	if n := s.Clear(); n != 2 {
		t.Errorf("Clear() = %d, want 2", n)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty set after clear, got %d", s.Len())
	}
	if n := s.Clear(); n != 0 {
		t.Errorf("Clear() on empty set = %d, want 0", n)
	}
}
