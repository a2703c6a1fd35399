package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"matchreview/internal/adapters/tui/styles"
	"matchreview/internal/domain"
)

// screen returns the terminal size, with a fallback before the first
// WindowSizeMsg arrives.
func (m *ReviewModel) screen() (int, int) {
	w, h := m.Width, m.Height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

func (m *ReviewModel) layout() layout {
	w, h := m.screen()
	item, match, _ := m.nav.Position()
	return computeLayout(m.visible, item, match, w, h)
}

// View renders the review view
func (m *ReviewModel) View() string {
	w, h := m.screen()
	l := m.layout()

	lines := []string{m.renderTitle(), m.renderStatus(), ""}
	if len(l.rows) == 0 {
		lines = append(lines, RenderMuted(m.emptyText()))
	}
	for i, r := range l.rows {
		for k := 0; i > 0 && k < blockSpacing; k++ {
			lines = append(lines, "")
		}
		lines = append(lines, m.renderRow(r))
	}

	body := strings.Split(strings.Join(lines, "\n"), "\n")
	for len(body) < h-footerHeight {
		body = append(body, "")
	}
	if len(body) > h-footerHeight {
		body = body[:max(h-footerHeight, 0)]
	}
	body = append(body, m.toast.View(), m.renderHelp())
	out := strings.Join(body, "\n")

	if m.modal != nil {
		box := m.modalRect()
		return overlayAt(out, m.renderModal(box), box.X, box.Y, w, h)
	}
	if m.hovering && !m.filtering {
		if hv := l.hitTest(m.pointer.X, m.pointer.Y); hv.kind != hitNone {
			if panel := m.renderHover(hv); panel != "" {
				pos := domain.PlacePreview(hv.rect,
					domain.Size{Width: w, Height: h},
					domain.Size{Width: hoverWidth, Height: hoverHeight},
					hoverGap, hoverMargin)
				return overlayAt(out, panel, pos.X, pos.Y, w, h)
			}
		}
	}
	return out
}

func (m *ReviewModel) emptyText() string {
	switch {
	case len(m.catalog.Pages) == 0:
		return "Catalog is empty"
	case m.filter.Value() != "":
		return "No items match the filter"
	default:
		return "No items on this page"
	}
}

func (m *ReviewModel) renderTitle() string {
	title := RenderTitle("Match Review")
	if m.catalog.Name != "" {
		title += "  " + styles.Subtitle.Render(m.catalog.Name)
	}
	return title
}

func (m *ReviewModel) renderStatus() string {
	if m.filtering {
		return m.filter.View()
	}

	count := 0
	if m.manager != nil {
		count = m.manager.Count()
	}
	status := styles.StatusKey.Render(fmt.Sprintf("Selected: %d", count))

	if total := m.pages.Total(); total > 0 {
		base := m.catalog.Pages[m.pages.Page()].Base
		page := fmt.Sprintf("page %d/%d %s", m.pages.Page()+1, total, base)
		if m.pages.HasPrev() {
			page = "‹ " + page
		}
		if m.pages.HasNext() {
			page += " ›"
		}
		status += styles.StatusText.Render(page)
	}
	if q := m.filter.Value(); q != "" {
		status += styles.StatusText.Render("  filter ") +
			styles.SearchMatch.Render(q) +
			styles.StatusText.Render(fmt.Sprintf(" (%d items)", m.visible.VisibleItemCount()))
	}
	return styles.StatusBar.Render(status)
}

func (m *ReviewModel) renderRow(r rowLayout) string {
	it, _ := m.visible.Item(r.item)
	item, match, focused := m.nav.Position()
	rowFocused := focused && item == r.item

	parts := []string{m.renderSource(it, rowFocused)}
	for j := r.matchStart; j < r.matchEnd; j++ {
		parts = append(parts, strings.Repeat(" ", cardGap))
		parts = append(parts, m.renderCard(it, it.Matches[j], rowFocused && match == j))
	}
	if len(it.Matches) == 0 {
		parts = append(parts, " ", RenderMuted("no matches"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *ReviewModel) renderSource(it domain.Item, focused bool) string {
	inner := sourceWidth - 4 // border and padding
	style := styles.Source
	if focused {
		style = styles.SourceFocused
	}

	third := RenderMuted(truncate(it.Metadata, inner))
	if n := m.selectedFor(it); n > 0 {
		third = styles.SelectedMark.Render(truncate(fmt.Sprintf("✓ %d selected", n), inner))
	}
	content := strings.Join([]string{
		styles.ObjectNumber.Render(truncate(it.ObjectNumber, inner)),
		truncate(it.SourceFile, inner),
		third,
	}, "\n")
	return style.Width(sourceWidth - 2).Height(blockHeight - 2).Render(content)
}

func (m *ReviewModel) renderCard(it domain.Item, mt domain.Match, focused bool) string {
	inner := cardWidth - 2
	selected := m.isSelected(domain.RecordFor(it, mt).Key())

	style := styles.Card
	switch {
	case focused && selected:
		style = styles.CardFocusedSelected
	case focused:
		style = styles.CardFocused
	case selected:
		style = styles.CardSelected
	}

	name := truncate(mt.Filename, inner)
	if selected {
		name = styles.SelectedMark.Render("✓ ") + truncate(mt.Filename, inner-2)
	}
	sim := lipgloss.NewStyle().
		Foreground(styles.SimilarityColor(mt.Similarity)).
		Render(truncate("sim "+domain.FormatSimilarity(mt.Similarity), inner))

	content := strings.Join([]string{
		name,
		sim,
		styles.CardLink.Render(truncate(mt.Base, inner)),
	}, "\n")
	return style.Width(inner).Height(blockHeight - 2).Render(content)
}

func (m *ReviewModel) renderHover(h hit) string {
	inner := hoverWidth - 4
	var lines []string

	switch h.kind {
	case hitSource:
		it, ok := m.visible.Item(h.item)
		if !ok {
			return ""
		}
		lines = []string{
			styles.ObjectNumber.Render(truncate(it.ObjectNumber, inner)),
			truncate(it.SourceFile, inner),
			RenderMuted(truncate(it.Metadata, inner)),
			RenderMuted(truncate(it.SourcePath, inner)),
		}
	case hitCard, hitLink:
		_, mt, ok := m.visible.Match(h.item, h.match)
		if !ok {
			return ""
		}
		lines = []string{
			styles.ObjectNumber.Render(truncate(mt.Filename, inner)),
			truncate("id "+mt.Base, inner),
			truncate("similarity "+domain.FormatSimilarity(mt.Similarity), inner),
			RenderMuted(truncate(mt.Path, inner)),
		}
	default:
		return ""
	}
	return styles.HoverPanel.Width(hoverWidth - 2).Render(strings.Join(lines, "\n"))
}

func (m *ReviewModel) renderModal(box domain.Rect) string {
	inner := box.Width - 4 // border and padding
	closer := styles.ModalClose.Render("[x]")
	title := fit(m.modal.title, inner-3)

	lines := []string{styles.ObjectNumber.Render(title) + closer, ""}
	for _, ln := range m.modal.lines {
		lines = append(lines, lipgloss.NewStyle().MaxWidth(inner).Render(ln))
	}
	lines = append(lines, "", RenderHelpLine(ReviewKeys.Open, ReviewKeys.Close))
	return styles.Modal.Width(box.Width - 2).Render(strings.Join(lines, "\n"))
}

func (m *ReviewModel) renderHelp() string {
	if m.filtering {
		return RenderHelpLine(
			keyHelp("enter", "apply"),
			keyHelp("esc", "clear"),
		)
	}
	return RenderHelpLine(
		ReviewKeys.Toggle,
		ReviewKeys.Export,
		ReviewKeys.Clear,
		ReviewKeys.Filter,
		ReviewKeys.Help,
		ReviewKeys.Quit,
	)
}

func (m *ReviewModel) selectedFor(it domain.Item) int {
	if m.manager == nil {
		return 0
	}
	return m.manager.SelectedFor(it.ObjectNumber, it.SourceFile)
}

func (m *ReviewModel) isSelected(k domain.SelectionKey) bool {
	return m.manager != nil && m.manager.IsSelected(k)
}
