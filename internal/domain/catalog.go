package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// Match is a candidate image proposed for an item
type Match struct {
	Filename   string  // e.g., "12345_2.jpg"
	Path       string  // Path to the image file
	Base       string  // External reference key derived from the filename
	Similarity float64 // Opaque score from the matcher
	URL        string  // Link to the external record for Base
}

// Item is a unit under review: a source image and its candidate matches
type Item struct {
	Index        int
	ObjectNumber string // e.g., "NK1234-a"
	ObjectBase   string // e.g., "NK1234"
	SourceFile   string
	SourcePath   string
	Metadata     string // Free text shown next to the object number
	URL          string
	Matches      []Match
}

// RecordFor extracts the selection fields for a match of an item.
// This is the only place catalog fields become selection identity.
func RecordFor(item Item, match Match) SelectionRecord {
	return SelectionRecord{
		ObjectNumber: item.ObjectNumber,
		SourceFile:   item.SourceFile,
		MatchFile:    match.Filename,
		MatchBase:    match.Base,
		Similarity:   match.Similarity,
	}
}

// Page groups the items sharing one object base
type Page struct {
	Base  string
	Items []Item
}

// Catalog is the full set of reviewable items, grouped into pages
type Catalog struct {
	Name  string
	Pages []Page
}

// NewCatalog groups items by ObjectBase into pages sorted by base.
// Items keep their relative order inside a page.
func NewCatalog(name string, items []Item) *Catalog {
	groups := make(map[string][]Item)
	var bases []string
	for _, it := range items {
		base := it.ObjectBase
		if base == "" {
			base = ObjectBase(it.ObjectNumber)
			it.ObjectBase = base
		}
		if _, ok := groups[base]; !ok {
			bases = append(bases, base)
		}
		groups[base] = append(groups[base], it)
	}
	sort.Strings(bases)

	c := &Catalog{Name: name, Pages: make([]Page, 0, len(bases))}
	for _, b := range bases {
		c.Pages = append(c.Pages, Page{Base: b, Items: groups[b]})
	}
	return c
}

// ObjectBase returns the part of an object number before the first dash
func ObjectBase(objectNumber string) string {
	base, _, _ := strings.Cut(objectNumber, "-")
	return base
}

// MatchBase returns the external reference key of a match file name:
// the name without extension, up to the first underscore.
func MatchBase(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	base, _, _ := strings.Cut(stem, "_")
	return base
}

// ItemCount returns the number of items across all pages
func (c *Catalog) ItemCount() int {
	n := 0
	for _, p := range c.Pages {
		n += len(p.Items)
	}
	return n
}

// PageIndex returns the index of the page with the given base, or -1
func (c *Catalog) PageIndex(base string) int {
	for i, p := range c.Pages {
		if p.Base == base {
			return i
		}
	}
	return -1
}
