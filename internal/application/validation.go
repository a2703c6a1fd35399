package application

import (
	"fmt"
	"math"
	"strings"

	"matchreview/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "objectNumber" -> "object number")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"objectNumber": "object number",
		"sourceFile":   "source file",
		"matchFile":    "match file",
		"matchBase":    "match base",
		"similarity":   "similarity",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateRecord checks a record built outside the catalog (e.g. from CLI
// arguments). The identity triple is required; similarity must be a
// finite number so the record can be persisted.
func ValidateRecord(r domain.SelectionRecord) error {
	if err := ValidateRequired("objectNumber", r.ObjectNumber); err != nil {
		return err
	}
	if err := ValidateRequired("sourceFile", r.SourceFile); err != nil {
		return err
	}
	if err := ValidateRequired("matchFile", r.MatchFile); err != nil {
		return err
	}
	if math.IsNaN(r.Similarity) || math.IsInf(r.Similarity, 0) {
		return &ValidationError{
			Field:   "similarity",
			Message: fmt.Sprintf("similarity must be a finite number, got: %v", r.Similarity),
		}
	}
	return nil
}
