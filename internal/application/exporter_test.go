package application

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"matchreview/internal/domain"
)

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	e := NewExporter(dir, nil)
	e.now = func() time.Time { return time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC) }

	records := []domain.SelectionRecord{
		{ObjectNumber: "1", SourceFile: "a.jpg", MatchFile: "m1.jpg", MatchBase: "M1", Similarity: 0.95},
		{ObjectNumber: "2", SourceFile: "b.jpg", MatchFile: "m2.jpg", MatchBase: "M2", Similarity: 0.5},
	}

	res, err := e.Export(context.Background(), records)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if res.Count != 2 {
		t.Errorf("Count = %d, want 2", res.Count)
	}
	if want := filepath.Join(dir, "selected_matches_2025-11-02.csv"); res.Path != want {
		t.Errorf("Path = %q, want %q", res.Path, want)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), data)
	}
	if lines[1] != "1,a.jpg,m1.jpg,M1,0.95" || lines[2] != "2,b.jpg,m2.jpg,M2,0.5" {
		t.Errorf("rows out of insertion order: %q", lines[1:])
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the export file in %s, found %d entries", dir, len(entries))
	}
}

func TestExporter_EmptySelection(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, nil)

	_, err := e.Export(context.Background(), nil)
	if !errors.Is(err, ErrEmptyExport) {
		t.Fatalf("expected ErrEmptyExport, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("no file should be produced, found %d entries", len(entries))
	}
}
