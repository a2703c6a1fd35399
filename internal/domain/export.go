package domain

import (
	"io"
	"strconv"
	"strings"
	"time"
)

// ExportHeader is the first line of every export document
const ExportHeader = "object_number,source_image,match_image,match_id,similarity"

const (
	exportPrefix    = "selected_matches_"
	exportExtension = ".csv"
)

// FormatExport renders records as the export document.
//
// Fields are joined with commas without any quoting, so identifiers that
// contain a comma make the document ambiguous. Lines are separated by "\n"
// and the document has no trailing newline.
func FormatExport(records []SelectionRecord) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, ExportHeader)
	for _, r := range records {
		lines = append(lines, strings.Join([]string{
			r.ObjectNumber,
			r.SourceFile,
			r.MatchFile,
			r.MatchBase,
			FormatSimilarity(r.Similarity),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// WriteExport writes the export document for records to w
func WriteExport(w io.Writer, records []SelectionRecord) error {
	_, err := io.WriteString(w, FormatExport(records))
	return err
}

// FormatSimilarity formats a score with the fewest digits that round-trip
func FormatSimilarity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportFilename returns the download name for an export made at t.
// The date is taken in UTC.
func ExportFilename(t time.Time) string {
	return exportPrefix + t.UTC().Format(time.DateOnly) + exportExtension
}
