package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"matchreview/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToReviewMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Match Review Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Pick the right match for every source image"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("↑ / ↓ / wheel", "Previous / next item"))
	b.WriteString(helpLine("← / →", "Previous / next match"))
	b.WriteString(helpLine("[ / ]", "Previous / next page"))
	b.WriteString(helpLine("home / end", "First / last page"))
	b.WriteString(helpLine("/", "Filter items (esc in the box clears)"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Selections"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter / space", "Select or unselect the focused match"))
	b.WriteString(helpLine("d", "Download selections as CSV"))
	b.WriteString(helpLine("x", "Clear all selections"))
	b.WriteString(helpLine("e", "Open the last download in $EDITOR"))
	b.WriteString(helpLine("c", "Copy the focused match id"))
	b.WriteString(helpLine("o", "Open the focused image"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Mouse"))
	b.WriteString("\n")
	b.WriteString(helpLine("click card", "Select or unselect"))
	b.WriteString(helpLine("double click", "Preview the match"))
	b.WriteString(helpLine("click id", "Open the match record"))
	b.WriteString(helpLine("click source", "Preview the source image"))
	b.WriteString(helpLine("[x] / outside", "Close the preview"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("esc", "Close preview"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(fit(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}
