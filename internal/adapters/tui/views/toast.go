package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"matchreview/internal/adapters/tui/styles"
)

// ToastDuration is how long a toast stays visible
const ToastDuration = 2 * time.Second

// ToastLevel is the severity of a toast
type ToastLevel int

const (
	ToastSuccess ToastLevel = iota
	ToastError
	ToastInfo
)

// toastExpiredMsg hides the toast with the same sequence number
type toastExpiredMsg struct {
	seq int
}

// Toast is a short-lived status message. A new toast replaces the current
// one; each carries a sequence number so stale timers are ignored.
type Toast struct {
	Text  string
	Level ToastLevel
	// Duration overrides ToastDuration when positive.
	Duration time.Duration
	seq      int
	visible  bool
}

// Show displays text and returns the command that hides it later
func (t *Toast) Show(text string, level ToastLevel) tea.Cmd {
	t.seq++
	t.Text = text
	t.Level = level
	t.visible = true

	d := t.Duration
	if d <= 0 {
		d = ToastDuration
	}
	seq := t.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Expire hides the toast if msg belongs to the one currently shown
func (t *Toast) Expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.visible = false
	}
}

// Visible reports whether a toast is showing
func (t *Toast) Visible() bool {
	return t.visible
}

// View renders the toast, or an empty string when hidden
func (t *Toast) View() string {
	if !t.visible {
		return ""
	}
	switch t.Level {
	case ToastError:
		return styles.ErrorMsg.Render("✗ " + t.Text)
	case ToastInfo:
		return styles.Success.Render("• " + t.Text)
	default:
		return styles.Success.Render("✓ " + t.Text)
	}
}
