package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"matchreview/internal/domain"
	"matchreview/internal/ports"
)

// Suffix is the file name suffix the matcher pipeline writes
const Suffix = "_matches.json"

// File implements ports.CatalogSource over a pipeline match file.
// Relative image paths in the file are resolved against its directory.
type File struct {
	path string
}

// Ensure File implements CatalogSource
var _ ports.CatalogSource = (*File)(nil)

// NewFile creates a catalog source for the given match file
func NewFile(path string) *File {
	return &File{path: path}
}

type matchEntry struct {
	Path       string  `json:"path"`
	Filename   string  `json:"filename"`
	Base       string  `json:"base"`
	Similarity float64 `json:"similarity"`
	URL        string  `json:"url"`
}

type itemEntry struct {
	Index          int          `json:"index"`
	SourcePath     string       `json:"source_path"`
	SourceFilename string       `json:"source_filename"`
	ObjectNumber   string       `json:"object_number"`
	ObjectBase     string       `json:"obj_num_base"`
	Metadata       string       `json:"obj_metadata"`
	URL            string       `json:"obj_NK_url"`
	Matches        []matchEntry `json:"matches"`
}

// LoadCatalog reads and groups the match file
func (f *File) LoadCatalog() (*domain.Catalog, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var entries []itemEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	items := make([]domain.Item, 0, len(entries))
	for _, e := range entries {
		it := domain.Item{
			Index:        e.Index,
			ObjectNumber: e.ObjectNumber,
			ObjectBase:   e.ObjectBase,
			SourceFile:   e.SourceFilename,
			SourcePath:   resolve(dir, e.SourcePath),
			Metadata:     e.Metadata,
			URL:          e.URL,
			Matches:      make([]domain.Match, 0, len(e.Matches)),
		}
		if it.SourceFile == "" && e.SourcePath != "" {
			it.SourceFile = filepath.Base(e.SourcePath)
		}
		for _, m := range e.Matches {
			mt := domain.Match{
				Filename:   m.Filename,
				Path:       resolve(dir, m.Path),
				Base:       m.Base,
				Similarity: m.Similarity,
				URL:        m.URL,
			}
			if mt.Base == "" {
				mt.Base = domain.MatchBase(mt.Filename)
			}
			it.Matches = append(it.Matches, mt)
		}
		items = append(items, it)
	}

	return domain.NewCatalog(Name(f.path), items), nil
}

// Name derives the catalog name from the match file name
func Name(path string) string {
	name := filepath.Base(path)
	if trimmed, ok := strings.CutSuffix(name, Suffix); ok {
		return trimmed
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, filepath.FromSlash(p))
}
