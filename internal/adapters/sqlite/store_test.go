package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"matchreview/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "selections.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func putRaw(t *testing.T, s *Store, value string) {
	t.Helper()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, SelectionsKey, value)
	if err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
}

func TestStore_LoadAbsentKey(t *testing.T) {
	s := openTestStore(t)

	got := s.Load(context.Background())
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	records := []domain.SelectionRecord{
		{ObjectNumber: "NK1-a", SourceFile: "1a.jpg", MatchFile: "m1.jpg", MatchBase: "M1", Similarity: 0.93},
		{ObjectNumber: "NK2", SourceFile: "2.jpg", MatchFile: "m2.jpg", MatchBase: "M2", Similarity: 0.1},
	}
	if err := s.Save(ctx, records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := s.Load(ctx)
	if !reflect.DeepEqual(got, records) {
		t.Errorf("Load() = %+v, want %+v", got, records)
	}

	raw, ok, err := s.Raw(ctx)
	if err != nil || !ok {
		t.Fatalf("Raw() ok=%v err=%v", ok, err)
	}
	want := `[{"objectNumber":"NK1-a","sourceFile":"1a.jpg","matchFile":"m1.jpg","matchBase":"M1","similarity":0.93},` +
		`{"objectNumber":"NK2","sourceFile":"2.jpg","matchFile":"m2.jpg","matchBase":"M2","similarity":0.1}]`
	if string(raw) != want {
		t.Errorf("stored value = %s\nwant %s", raw, want)
	}
}

func TestStore_RoundTripIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	err := s.Save(ctx, []domain.SelectionRecord{
		{ObjectNumber: "1", SourceFile: "a.jpg", MatchFile: "b.jpg", MatchBase: "B", Similarity: 0.123456789},
		{ObjectNumber: "ü", SourceFile: "<a>&.jpg", MatchFile: "c,d.jpg", Similarity: 1e-7},
	})
	if err != nil {
		t.Fatal(err)
	}
	before, _, _ := s.Raw(ctx)

	if err := s.Save(ctx, s.Load(ctx)); err != nil {
		t.Fatal(err)
	}
	after, _, _ := s.Raw(ctx)

	if !bytes.Equal(before, after) {
		t.Errorf("round trip changed stored bytes:\n%s\n%s", before, after)
	}
}

func TestStore_SaveEmpty(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.Save(ctx, nil); err != nil {
		t.Fatal(err)
	}
	raw, ok, _ := s.Raw(ctx)
	if !ok || string(raw) != "[]" {
		t.Errorf("expected [] to be stored, got %q (ok=%v)", raw, ok)
	}
}

func TestStore_LoadInvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not json", value: "{{{"},
		{name: "object instead of list", value: `{"objectNumber":"1"}`},
		{name: "wrong field type", value: `[{"objectNumber":1}]`},
		{name: "null", value: "null"},
		{name: "empty", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			putRaw(t, s, tt.value)

			got := s.Load(context.Background())
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty list, got %#v", got)
			}
		})
	}
}

func TestStore_SaveAfterClose(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "selections.db"), nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if err := s.Save(context.Background(), nil); err == nil {
		t.Error("expected write error on closed store")
	}
}

func TestStore_Lock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selections.db")

	first, err := Open(path, nil)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}

	if _, err := Open(path, nil); !errors.Is(err, ErrStoreLocked) {
		t.Fatalf("expected ErrStoreLocked, got %v", err)
	}

	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open after Close failed: %v", err)
	}
	second.Close()
}
