package commands

import (
	"context"

	"matchreview/internal/application"
	"matchreview/internal/ports"
)

// ClearSelectionsResult contains the result of a clear
type ClearSelectionsResult struct {
	application.ClearResult
	Message string
}

// ClearSelectionsCommand empties the selection set after confirmation
type ClearSelectionsCommand struct {
	manager *application.Manager
	confirm ports.Confirmer
}

// NewClearSelectionsCommand creates a new ClearSelectionsCommand.
// A nil confirmer approves without asking.
func NewClearSelectionsCommand(manager *application.Manager, confirm ports.Confirmer) *ClearSelectionsCommand {
	if confirm == nil {
		confirm = ports.Approved
	}
	return &ClearSelectionsCommand{
		manager: manager,
		confirm: confirm,
	}
}

// Execute runs the clear command. An empty set returns
// application.ErrNothingToClear.
func (c *ClearSelectionsCommand) Execute(ctx context.Context) (*ClearSelectionsResult, error) {
	res, err := c.manager.Clear(ctx, c.confirm)
	if err != nil && res.Cleared == 0 {
		return nil, err
	}

	out := &ClearSelectionsResult{ClearResult: res}
	if !res.Declined {
		out.Message = "All selections cleared"
	}
	return out, err
}
