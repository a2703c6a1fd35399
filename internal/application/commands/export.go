package commands

import (
	"context"
	"fmt"

	"matchreview/internal/application"
)

// ExportSelectionsResult contains the result of an export
type ExportSelectionsResult struct {
	application.ExportResult
	Message string
}

// ExportSelectionsCommand writes the current selections to the export directory
type ExportSelectionsCommand struct {
	manager  *application.Manager
	exporter *application.Exporter
}

// NewExportSelectionsCommand creates a new ExportSelectionsCommand
func NewExportSelectionsCommand(manager *application.Manager, exporter *application.Exporter) *ExportSelectionsCommand {
	return &ExportSelectionsCommand{
		manager:  manager,
		exporter: exporter,
	}
}

// Execute runs the export command. An empty set returns
// application.ErrEmptyExport and writes nothing.
func (c *ExportSelectionsCommand) Execute(ctx context.Context) (*ExportSelectionsResult, error) {
	res, err := c.exporter.Export(ctx, c.manager.All())
	if err != nil {
		return nil, err
	}

	return &ExportSelectionsResult{
		ExportResult: res,
		Message:      fmt.Sprintf("Downloaded %d selections", res.Count),
	}, nil
}
