package application

import (
	"errors"
	"math"
	"testing"

	"matchreview/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "objectNumber",
			value:     "NK1234",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "objectNumber",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "matchFile",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateRecord(t *testing.T) {
	valid := domain.SelectionRecord{ObjectNumber: "1", SourceFile: "a.jpg", MatchFile: "m1.jpg", Similarity: 0.9}

	tests := []struct {
		name      string
		mutate    func(r *domain.SelectionRecord)
		wantField string
	}{
		{name: "valid", mutate: func(*domain.SelectionRecord) {}},
		{name: "missing object number", mutate: func(r *domain.SelectionRecord) { r.ObjectNumber = "" }, wantField: "objectNumber"},
		{name: "missing source file", mutate: func(r *domain.SelectionRecord) { r.SourceFile = " " }, wantField: "sourceFile"},
		{name: "missing match file", mutate: func(r *domain.SelectionRecord) { r.MatchFile = "" }, wantField: "matchFile"},
		{name: "empty base is fine", mutate: func(r *domain.SelectionRecord) { r.MatchBase = "" }},
		{name: "nan similarity", mutate: func(r *domain.SelectionRecord) { r.Similarity = math.NaN() }, wantField: "similarity"},
		{name: "infinite similarity", mutate: func(r *domain.SelectionRecord) { r.Similarity = math.Inf(1) }, wantField: "similarity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := ValidateRecord(r)

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Field != tt.wantField {
				t.Errorf("field = %s, want %s", valErr.Field, tt.wantField)
			}
		})
	}
}
