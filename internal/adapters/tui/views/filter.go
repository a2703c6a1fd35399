package views

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"matchreview/internal/domain"
)

// FilterConfig bundles tuning parameters for the item filter.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
}

// DefaultFilterConfig is used by the review view
var DefaultFilterConfig = FilterConfig{MinCoverage: 1, MaxSpread: 40}

// filterText is the searchable text of an item
func filterText(it domain.Item) string {
	return strings.ToLower(it.ObjectNumber + " " + it.SourceFile + " " + it.Metadata)
}

// filterItems returns the indices of items matching q, in their original
// order. An empty query keeps every item.
func filterItems(items []domain.Item, q string, cfg FilterConfig) []int {
	q = strings.ToLower(strings.TrimSpace(q))
	idx := make([]int, 0, len(items))
	if q == "" {
		for i := range items {
			idx = append(idx, i)
		}
		return idx
	}

	base := make([]string, len(items))
	for i, it := range items {
		base[i] = filterText(it)
	}

	// Substring hits first; fall back to fuzzy matching
	for i, s := range base {
		if strings.Contains(s, q) {
			idx = append(idx, i)
		}
	}
	if len(idx) > 0 {
		return idx
	}
	return filterByFuzzy(q, base, cfg)
}

// filterByFuzzy applies fuzzy matching and drops weak matches, keeping the
// original item order.
func filterByFuzzy(q string, base []string, cfg FilterConfig) []int {
	matches := fuzzy.Find(q, base)

	keep := make([]bool, len(base))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		keep[mt.Index] = true
	}

	idx := make([]int, 0, len(matches))
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	return idx
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the distance between the first and last matched index.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}
