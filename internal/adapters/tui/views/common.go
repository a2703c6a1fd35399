package views

import tea "github.com/charmbracelet/bubbletea"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height handling.
type ViewState struct {
	Width  int
	Height int
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SwitchToHelpMsg asks the app to show the help view
type SwitchToHelpMsg struct{}

// SwitchToReviewMsg asks the app to return to the review view
type SwitchToReviewMsg struct{}

// RequestClearMsg asks the app to confirm clearing all selections
type RequestClearMsg struct {
	Prompt string
}

// ClearConfirmedMsg is sent when the user approved clearing
type ClearConfirmedMsg struct{}

// OpenEditorMsg asks the app to open a file in the editor
type OpenEditorMsg struct {
	Path string
}

// IsReviewTimer reports whether msg is a timer fired by the review view.
// Timers must reach the review view even while another view is shown.
func IsReviewTimer(msg tea.Msg) bool {
	switch msg.(type) {
	case toastExpiredMsg, clickTimeoutMsg:
		return true
	}
	return false
}
