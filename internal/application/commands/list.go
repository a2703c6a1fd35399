package commands

import (
	"context"
	"fmt"

	"matchreview/internal/application"
	"matchreview/internal/domain"
	"matchreview/internal/ports"
)

// ListSelectionsCommand lists the selections in insertion order
type ListSelectionsCommand struct {
	manager      *application.Manager
	ObjectNumber string // optional, restricts the list to one item
}

// NewListSelectionsCommand creates a new ListSelectionsCommand
func NewListSelectionsCommand(manager *application.Manager, objectNumber string) *ListSelectionsCommand {
	return &ListSelectionsCommand{
		manager:      manager,
		ObjectNumber: objectNumber,
	}
}

// Execute runs the list selections command
func (c *ListSelectionsCommand) Execute(ctx context.Context) ([]domain.SelectionRecord, error) {
	all := c.manager.All()
	if c.ObjectNumber == "" {
		return all, nil
	}

	filtered := make([]domain.SelectionRecord, 0, len(all))
	for _, r := range all {
		if r.ObjectNumber == c.ObjectNumber {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// PageSummary describes one catalog page
type PageSummary struct {
	Base     string
	Items    int
	Matches  int
	Selected int
}

// ListPagesCommand summarizes the pages of a catalog
type ListPagesCommand struct {
	source  ports.CatalogSource
	manager *application.Manager
	Base    string // optional, restricts the list to one page
}

// NewListPagesCommand creates a new ListPagesCommand.
// manager may be nil, in which case Selected is always 0.
func NewListPagesCommand(source ports.CatalogSource, manager *application.Manager, base string) *ListPagesCommand {
	return &ListPagesCommand{
		source:  source,
		manager: manager,
		Base:    base,
	}
}

// Execute runs the list pages command
func (c *ListPagesCommand) Execute(ctx context.Context) ([]PageSummary, error) {
	cat, err := c.source.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	pages := cat.Pages
	if c.Base != "" {
		i := cat.PageIndex(c.Base)
		if i < 0 {
			return nil, fmt.Errorf("page %s: %w", c.Base, application.ErrNotFound)
		}
		pages = pages[i : i+1]
	}

	summaries := make([]PageSummary, 0, len(pages))
	for _, p := range pages {
		s := PageSummary{Base: p.Base, Items: len(p.Items)}
		for _, it := range p.Items {
			s.Matches += len(it.Matches)
			if c.manager != nil {
				s.Selected += c.manager.SelectedFor(it.ObjectNumber, it.SourceFile)
			}
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
