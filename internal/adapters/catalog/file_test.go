package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalog = `[
  {"index": 0, "source_path": "../nk/NK2-a.jpg", "source_filename": "NK2-a.jpg",
   "object_number": "NK2-a", "obj_num_base": "NK2", "obj_metadata": "schilderij (40x50)",
   "obj_NK_url": "https://example.org/doc/nk/NK2",
   "matches": [
     {"path": "../dhm/1001_1.jpg", "filename": "1001_1.jpg", "base": "1001", "similarity": 0.912, "url": "https://example.org/1001"},
     {"path": "../dhm/1002_1.jpg", "filename": "1002_1.jpg", "base": "1002", "similarity": 0.8, "url": "https://example.org/1002"}
   ]},
  {"index": 1, "source_path": "../nk/NK1.jpg", "source_filename": "NK1.jpg",
   "object_number": "NK1", "obj_num_base": "NK1", "obj_metadata": "",
   "obj_NK_url": "https://example.org/doc/nk/NK1", "matches": []},
  {"index": 2, "source_path": "/abs/NK2-b.jpg", "object_number": "NK2-b", "matches": []}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "run")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "run_matches.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFile_LoadCatalog(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)

	cat, err := NewFile(path).LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if cat.Name != "run" {
		t.Errorf("Name = %q, want run", cat.Name)
	}
	if len(cat.Pages) != 2 || cat.Pages[0].Base != "NK1" || cat.Pages[1].Base != "NK2" {
		t.Fatalf("unexpected pages %+v", cat.Pages)
	}

	nk2 := cat.Pages[1].Items
	if len(nk2) != 2 {
		t.Fatalf("expected 2 items on NK2, got %d", len(nk2))
	}
	first := nk2[0]
	if first.ObjectNumber != "NK2-a" || first.Metadata != "schilderij (40x50)" {
		t.Errorf("unexpected item %+v", first)
	}
	wantSource := filepath.Join(filepath.Dir(filepath.Dir(path)), "nk", "NK2-a.jpg")
	if first.SourcePath != wantSource {
		t.Errorf("SourcePath = %q, want %q", first.SourcePath, wantSource)
	}
	if len(first.Matches) != 2 || first.Matches[0].Base != "1001" || first.Matches[0].Similarity != 0.912 {
		t.Errorf("unexpected matches %+v", first.Matches)
	}

	// Missing base and filename are derived
	second := nk2[1]
	if second.ObjectBase != "NK2" || second.SourceFile != "NK2-b.jpg" || second.SourcePath != "/abs/NK2-b.jpg" {
		t.Errorf("unexpected derived fields %+v", second)
	}
}

func TestFile_LoadCatalogErrors(t *testing.T) {
	if _, err := NewFile(filepath.Join(t.TempDir(), "missing_matches.json")).LoadCatalog(); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeCatalog(t, `{"not": "a list"}`)
	if _, err := NewFile(path).LoadCatalog(); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestName(t *testing.T) {
	tests := map[string]string{
		"/out/run1/run1_matches.json": "run1",
		"catalog.json":                "catalog",
		"plain":                       "plain",
	}
	for in, want := range tests {
		if got := Name(in); got != want {
			t.Errorf("Name(%q) = %q, want %q", in, got, want)
		}
	}
}
