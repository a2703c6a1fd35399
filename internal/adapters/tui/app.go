package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"matchreview/internal/adapters/tui/views"
	"matchreview/internal/application"
	"matchreview/internal/application/commands"
	"matchreview/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewReview ViewState = iota
	ViewConfirm
	ViewHelp
)

// App is the main TUI application model
type App struct {
	manager *application.Manager
	editor  ports.EditorOpener
	logger  *slog.Logger

	state   ViewState
	review  *views.ReviewModel
	confirm *views.ConfirmationModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. ed may be nil, which disables
// opening exports in the editor.
func NewApp(deps views.ReviewDeps, ed ports.EditorOpener) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		manager: deps.Manager,
		editor:  ed,
		logger:  logger,
		state:   ViewReview,
		review:  views.NewReviewModel(deps),
		confirm: views.NewConfirmationModel(),
		help:    views.NewHelpModel(),
	}
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.review.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.review.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToReviewMsg:
		a.state = ViewReview
		return a, nil

	case views.RequestClearMsg:
		a.state = ViewConfirm
		a.confirm.SetPrompt(msg.Prompt)
		return a, nil

	case views.ClearConfirmedMsg:
		a.state = ViewReview
		_, err := commands.NewClearSelectionsCommand(a.manager, ports.Approved).Execute(context.Background())
		return a, a.review.ClearDone(err)

	case views.OpenEditorMsg:
		a.state = ViewReview
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.logger.Warn("editor exited with error", "error", msg.err)
		}
		return a, nil
	}

	// Review timers fire regardless of the view on screen
	if views.IsReviewTimer(msg) {
		_, cmd := a.review.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewReview:
		_, cmd = a.review.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.review.View()
	}
}
