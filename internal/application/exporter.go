package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"matchreview/internal/domain"
)

// Exporter writes the selection report into a directory
type Exporter struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

// NewExporter creates an exporter writing into dir
func NewExporter(dir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{dir: dir, now: time.Now, logger: logger}
}

// Export writes records as selected_matches_<date>.csv and returns its path.
//
// The document is first written to a temporary file in the same directory
// and renamed into place; the temporary file never outlives the call.
func (e *Exporter) Export(ctx context.Context, records []domain.SelectionRecord) (ExportResult, error) {
	if len(records) == 0 {
		return ExportResult{}, ErrEmptyExport
	}
	if err := ctx.Err(); err != nil {
		return ExportResult{}, err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(e.dir, ".selected_matches_*.tmp")
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return ExportResult{}, fmt.Errorf("failed to create export file: %w", err)
	}
	if err := domain.WriteExport(tmp, records); err != nil {
		tmp.Close()
		return ExportResult{}, fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write export: %w", err)
	}

	path := filepath.Join(e.dir, domain.ExportFilename(e.now()))
	if err := os.Rename(tmpPath, path); err != nil {
		return ExportResult{}, fmt.Errorf("failed to finalize export: %w", err)
	}

	e.logger.Info("selections exported", "path", path, "count", len(records))
	return ExportResult{Path: path, Count: len(records)}, nil
}
