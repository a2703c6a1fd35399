package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Link      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Backdrop  = lipgloss.Color("#1F2937")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Source cell (the item's own image)
	Source = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	SourceFocused = Source.
			BorderForeground(Primary)

	ObjectNumber = lipgloss.NewStyle().
			Bold(true)

	// Match cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted)

	CardFocused = Card.
			BorderForeground(Primary)

	CardSelected = Card.
			BorderForeground(Secondary)

	CardFocusedSelected = Card.
				Border(lipgloss.DoubleBorder()).
				BorderForeground(Secondary)

	CardLink = lipgloss.NewStyle().
			Foreground(Link).
			Underline(true)

	SelectedMark = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Floating panels
	HoverPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Warning).
			Background(Backdrop).
			Padding(0, 1)

	Modal = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	ModalClose = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(Backdrop).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Toasts
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// SimilarityColor grades a similarity score for display
func SimilarityColor(similarity float64) lipgloss.Color {
	switch {
	case similarity >= 0.9:
		return Secondary
	case similarity >= 0.75:
		return Warning
	default:
		return Muted
	}
}
