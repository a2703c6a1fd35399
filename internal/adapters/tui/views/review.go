package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"matchreview/internal/application"
	"matchreview/internal/application/commands"
	"matchreview/internal/domain"
	"matchreview/internal/ports"
)

// DefaultDoubleClick is the double-click window when none is configured
const DefaultDoubleClick = 300 * time.Millisecond

// ReviewKeyMap defines key bindings for the review view
type ReviewKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Close     key.Binding
	Export    key.Binding
	Clear     key.Binding
	Filter    key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Open      key.Binding
	Copy      key.Binding
	Edit      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var ReviewKeys = ReviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "prev item"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next item"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev match"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next match"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Export: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "download"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last page"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open image"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy id"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit export"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ReviewDeps are the collaborators of the review view
type ReviewDeps struct {
	Catalog     *domain.Catalog
	Manager     *application.Manager
	Exporter    *application.Exporter
	Viewer      ports.ImageViewer
	Logger      *slog.Logger
	DoubleClick time.Duration
	// ToastDuration defaults to the package ToastDuration.
	ToastDuration time.Duration
	// Copy writes text to the system clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error
}

// ReviewModel is the model for the match review view
type ReviewModel struct {
	ViewState

	catalog     *domain.Catalog
	manager     *application.Manager
	exporter    *application.Exporter
	viewer      ports.ImageViewer
	logger      *slog.Logger
	copy        func(string) error
	doubleClick time.Duration

	pages     *Paginator
	visible   visibleSet
	nav       domain.Navigator
	filter    textinput.Model
	filtering bool

	toast      Toast
	hovering   bool
	pointer    domain.Point
	modal      *previewModal
	pending    pendingClick
	clickSeq   int
	lastExport string
}

// NewReviewModel creates a new review model
func NewReviewModel(deps ReviewDeps) *ReviewModel {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Copy == nil {
		deps.Copy = clipboard.WriteAll
	}
	if deps.DoubleClick <= 0 {
		deps.DoubleClick = DefaultDoubleClick
	}
	if deps.Catalog == nil {
		deps.Catalog = &domain.Catalog{}
	}

	ti := textinput.New()
	ti.Placeholder = "object number, file or metadata"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	m := &ReviewModel{
		catalog:     deps.Catalog,
		manager:     deps.Manager,
		exporter:    deps.Exporter,
		viewer:      deps.Viewer,
		logger:      deps.Logger.With("component", "review"),
		copy:        deps.Copy,
		doubleClick: deps.DoubleClick,
		pages:       NewPaginator(len(deps.Catalog.Pages)),
		filter:      ti,
		toast:       Toast{Duration: deps.ToastDuration},
	}
	m.refreshVisible()
	return m
}

// Init initializes the review view
func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review view
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case toastExpiredMsg:
		m.toast.Expire(msg)
		return m, nil

	case clickTimeoutMsg:
		return m, m.firePendingClick(msg.seq)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.filtering {
			return m, m.handleFilterKey(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *ReviewModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.modal != nil {
		if handled, cmd := m.handleModalKey(msg); handled {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, ReviewKeys.Quit):
		return tea.Quit

	case key.Matches(msg, ReviewKeys.Up):
		m.nav.PrevItem(m.visible)
		return nil

	case key.Matches(msg, ReviewKeys.Down):
		m.nav.NextItem(m.visible)
		return nil

	case key.Matches(msg, ReviewKeys.Left):
		m.nav.PrevMatch(m.visible)
		return nil

	case key.Matches(msg, ReviewKeys.Right):
		m.nav.NextMatch(m.visible)
		return nil

	case key.Matches(msg, ReviewKeys.Toggle):
		item, match, ok := m.focusedMatch()
		if !ok {
			return nil
		}
		return m.toggle(domain.RecordFor(item, match))

	case key.Matches(msg, ReviewKeys.Export):
		return m.export()

	case key.Matches(msg, ReviewKeys.Clear):
		n := m.manager.Count()
		if n == 0 {
			return m.toast.Show("No selections to clear", ToastInfo)
		}
		return func() tea.Msg {
			return RequestClearMsg{Prompt: application.ClearPrompt(n)}
		}

	case key.Matches(msg, ReviewKeys.Filter):
		m.filtering = true
		m.hovering = false
		return m.filter.Focus()

	case key.Matches(msg, ReviewKeys.PrevPage):
		m.changePage(m.pages.PrevPage())
		return nil

	case key.Matches(msg, ReviewKeys.NextPage):
		m.changePage(m.pages.NextPage())
		return nil

	case key.Matches(msg, ReviewKeys.FirstPage):
		m.changePage(m.pages.FirstPage())
		return nil

	case key.Matches(msg, ReviewKeys.LastPage):
		m.changePage(m.pages.LastPage())
		return nil

	case key.Matches(msg, ReviewKeys.Open):
		return m.openFocused()

	case key.Matches(msg, ReviewKeys.Copy):
		_, match, ok := m.focusedMatch()
		if !ok {
			return nil
		}
		if err := m.copy(match.Base); err != nil {
			m.logger.Warn("clipboard write failed", "error", err)
			return m.toast.Show("Clipboard unavailable", ToastError)
		}
		return m.toast.Show("Copied "+match.Base, ToastSuccess)

	case key.Matches(msg, ReviewKeys.Edit):
		if m.lastExport == "" {
			return m.toast.Show("Nothing downloaded yet", ToastError)
		}
		path := m.lastExport
		return func() tea.Msg {
			return OpenEditorMsg{Path: path}
		}

	case key.Matches(msg, ReviewKeys.Help):
		return func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return nil
}

// handleModalKey handles the keys that act on the open preview. Every
// other key keeps its review meaning.
func (m *ReviewModel) handleModalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, ReviewKeys.Close):
		m.modal = nil
		return true, nil
	case key.Matches(msg, ReviewKeys.Open):
		return true, m.openExternal(m.modal.target)
	}
	return false, nil
}

func (m *ReviewModel) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.setFilter("")
		return nil
	case tea.KeyCtrlC:
		return tea.Quit
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refreshVisible()
		m.nav.Revalidate(m.visible)
	}
	return cmd
}

func (m *ReviewModel) setFilter(q string) {
	m.filter.SetValue(q)
	m.refreshVisible()
	m.nav.Revalidate(m.visible)
}

func (m *ReviewModel) changePage(changed bool) {
	if !changed {
		return
	}
	m.refreshVisible()
	m.nav.Reset()
	m.hovering = false
	m.pending = pendingClick{}
}

// refreshVisible recomputes the visible items of the current page
func (m *ReviewModel) refreshVisible() {
	if m.pages.Total() == 0 {
		m.visible = visibleSet{}
		return
	}
	items := m.catalog.Pages[m.pages.Page()].Items
	m.visible = visibleSet{
		items: items,
		idx:   filterItems(items, m.filter.Value(), DefaultFilterConfig),
	}
}

func (m *ReviewModel) focusedMatch() (domain.Item, domain.Match, bool) {
	i, j, ok := m.nav.Current(m.visible)
	if !ok {
		return domain.Item{}, domain.Match{}, false
	}
	return m.visible.Match(i, j)
}

func (m *ReviewModel) toggle(rec domain.SelectionRecord) tea.Cmd {
	res, err := commands.NewToggleSelectionCommand(m.manager, rec).Execute(context.Background())
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return m.toast.Show(verr.Error(), ToastError)
		}
		m.logger.Error("selection save failed", "error", err, "object", rec.ObjectNumber)
		if res != nil {
			return m.toast.Show("Failed to save selections", ToastError)
		}
		return m.toast.Show(err.Error(), ToastError)
	}
	m.logger.Debug("selection toggled",
		"object", rec.ObjectNumber,
		"match", rec.MatchFile,
		"outcome", res.Outcome.String(),
		"count", res.Count,
	)
	return m.toast.Show(res.Message, ToastSuccess)
}

func (m *ReviewModel) export() tea.Cmd {
	res, err := commands.NewExportSelectionsCommand(m.manager, m.exporter).Execute(context.Background())
	if errors.Is(err, application.ErrEmptyExport) {
		return m.toast.Show("No selections to download", ToastError)
	}
	if err != nil {
		m.logger.Error("export failed", "error", err)
		return m.toast.Show("Download failed", ToastError)
	}

	m.lastExport = res.Path
	if err := m.copy(res.Path); err != nil {
		m.logger.Debug("clipboard write failed", "error", err)
	}
	m.logger.Info("selections exported", "path", res.Path, "count", res.Count)
	return m.toast.Show(res.Message, ToastSuccess)
}

// ClearDone reports the outcome of a confirmed clear
func (m *ReviewModel) ClearDone(err error) tea.Cmd {
	if err != nil {
		if errors.Is(err, application.ErrNothingToClear) {
			return m.toast.Show("No selections to clear", ToastInfo)
		}
		m.logger.Error("clear failed", "error", err)
		return m.toast.Show("Failed to save selections", ToastError)
	}
	return m.toast.Show("All selections cleared", ToastSuccess)
}

func (m *ReviewModel) openFocused() tea.Cmd {
	i, j, ok := m.nav.Current(m.visible)
	if !ok {
		return nil
	}
	_, match, _ := m.visible.Match(i, j)
	return m.openExternal(match.Path)
}

func (m *ReviewModel) openExternal(target string) tea.Cmd {
	if target == "" {
		return m.toast.Show("No link available", ToastError)
	}
	if m.viewer == nil {
		return m.toast.Show("No viewer configured", ToastError)
	}
	if err := m.viewer.Open(target); err != nil {
		m.logger.Warn("viewer failed", "target", target, "error", err)
		return m.toast.Show(fmt.Sprintf("Cannot open %s", target), ToastError)
	}
	return nil
}

// SetSize updates the view dimensions
func (m *ReviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.filter.Width = max(width-4, 10)
}
