package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"matchreview/internal/domain"
)

// pendingClick is a single click on a match card that waits out the
// double-click window before it toggles.
type pendingClick struct {
	active bool
	seq    int
	item   int
	match  int
	record domain.SelectionRecord
}

// clickTimeoutMsg fires when the double-click window of a click closed
type clickTimeoutMsg struct {
	seq int
}

// previewModal shows one image enlarged, as details in the terminal
type previewModal struct {
	title  string
	lines  []string
	target string // path opened by the external viewer
}

func newSourceModal(it domain.Item) *previewModal {
	lines := []string{
		RenderLabelValue("Object", it.ObjectNumber),
		RenderLabelValue("File", it.SourceFile),
		RenderLabelValue("Path", it.SourcePath),
	}
	if it.Metadata != "" {
		lines = append(lines, RenderLabelValue("Info", it.Metadata))
	}
	return &previewModal{title: it.ObjectNumber, lines: lines, target: it.SourcePath}
}

func newMatchModal(it domain.Item, mt domain.Match) *previewModal {
	return &previewModal{
		title: mt.Filename,
		lines: []string{
			RenderLabelValue("Match", mt.Base),
			RenderLabelValue("Similarity", domain.FormatSimilarity(mt.Similarity)),
			RenderLabelValue("Path", mt.Path),
			RenderLabelValue("For", it.ObjectNumber),
		},
		target: mt.Path,
	}
}

// modalRect is the screen rectangle of the open modal box
func (m *ReviewModel) modalRect() domain.Rect {
	w, h := m.screen()
	bw := max(min(64, w-4), 24)
	bh := len(m.modal.lines) + 6 // border, title, blank, lines, blank, help, border
	return domain.Rect{
		X:      max((w-bw)/2, 0),
		Y:      max((h-bh)/2, 0),
		Width:  bw,
		Height: bh,
	}
}

// closeRect is where the [x] control sits inside box
func closeRect(box domain.Rect) domain.Rect {
	return domain.Rect{X: box.X + box.Width - 5, Y: box.Y + 1, Width: 3, Height: 1}
}

func (m *ReviewModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.modal != nil {
		m.hovering = false
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			box := m.modalRect()
			if closeRect(box).Contains(msg.X, msg.Y) || !box.Contains(msg.X, msg.Y) {
				m.modal = nil
			}
		}
		return nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone:
		m.pointer = domain.Point{X: msg.X, Y: msg.Y}
		m.hovering = !m.filtering && m.layout().hitTest(msg.X, msg.Y).kind != hitNone
		return nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		m.nav.PrevItem(m.visible)
		return nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		m.nav.NextItem(m.visible)
		return nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.handleClick(msg.X, msg.Y)
	}

	return nil
}

func (m *ReviewModel) handleClick(x, y int) tea.Cmd {
	h := m.layout().hitTest(x, y)

	switch h.kind {
	case hitSource:
		it, ok := m.visible.Item(h.item)
		if !ok {
			return nil
		}
		m.hovering = false
		m.modal = newSourceModal(it)
		return nil

	case hitLink:
		_, mt, ok := m.visible.Match(h.item, h.match)
		if !ok {
			return nil
		}
		return m.openExternal(mt.URL)

	case hitCard:
		it, mt, ok := m.visible.Match(h.item, h.match)
		if !ok {
			return nil
		}
		if m.pending.active && m.pending.item == h.item && m.pending.match == h.match {
			// Second press inside the window: preview instead of toggling
			m.pending = pendingClick{}
			m.hovering = false
			m.modal = newMatchModal(it, mt)
			return nil
		}

		var flush tea.Cmd
		if m.pending.active {
			flush = m.toggle(m.pending.record)
		}
		m.clickSeq++
		m.pending = pendingClick{
			active: true,
			seq:    m.clickSeq,
			item:   h.item,
			match:  h.match,
			record: domain.RecordFor(it, mt),
		}
		seq := m.clickSeq
		wait := tea.Tick(m.doubleClick, func(time.Time) tea.Msg {
			return clickTimeoutMsg{seq: seq}
		})
		return tea.Batch(flush, wait)
	}

	return nil
}

// firePendingClick toggles the pending click if seq still refers to it
func (m *ReviewModel) firePendingClick(seq int) tea.Cmd {
	if !m.pending.active || m.pending.seq != seq {
		return nil
	}
	rec := m.pending.record
	m.pending = pendingClick{}
	return m.toggle(rec)
}
