package commands

import (
	"context"

	"matchreview/internal/application"
	"matchreview/internal/domain"
)

// ToggleSelectionResult contains the result of a toggle
type ToggleSelectionResult struct {
	application.ToggleResult
	Message string
}

// ToggleSelectionCommand adds or removes one selection
type ToggleSelectionCommand struct {
	manager *application.Manager
	Record  domain.SelectionRecord
}

// NewToggleSelectionCommand creates a new ToggleSelectionCommand
func NewToggleSelectionCommand(manager *application.Manager, record domain.SelectionRecord) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{
		manager: manager,
		Record:  record,
	}
}

// NewToggleMatchCommand toggles the selection for one match of a catalog item
func NewToggleMatchCommand(manager *application.Manager, item domain.Item, match domain.Match) *ToggleSelectionCommand {
	return NewToggleSelectionCommand(manager, domain.RecordFor(item, match))
}

// Validate checks that the record has a complete identity
func (c *ToggleSelectionCommand) Validate() error {
	return application.ValidateRecord(c.Record)
}

// Execute runs the toggle command.
// When saving fails the result is still returned along with the error.
func (c *ToggleSelectionCommand) Execute(ctx context.Context) (*ToggleSelectionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	res, err := c.manager.Toggle(ctx, c.Record)
	out := &ToggleSelectionResult{ToggleResult: res, Message: "Selection added"}
	if res.Outcome == domain.ToggleRemoved {
		out.Message = "Selection removed"
	}
	return out, err
}
