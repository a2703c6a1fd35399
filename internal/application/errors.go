package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrStoreRead      = errors.New("store read failed")
	ErrStoreWrite     = errors.New("store write failed")
	ErrEmptyExport    = errors.New("no selections to download")
	ErrNothingToClear = errors.New("no selections to clear")
	ErrNotFound       = errors.New("not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StoreError represents a failed store operation
type StoreError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s selections: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	switch target {
	case ErrStoreWrite:
		return e.Op == "save"
	case ErrStoreRead:
		return e.Op == "load"
	}
	return false
}
