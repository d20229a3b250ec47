package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/voiceintake/internal/tui/theme"
)

// SuccessScreen shows the completion screen with New Form/Exit buttons.
type SuccessScreen struct {
	business  string
	savedPath string
	hookNote  string
	width     int
	buttonBar *ButtonBar
}

// NewSuccessScreen creates the screen shown after a submission succeeds.
func NewSuccessScreen(business string) *SuccessScreen {
	bar := NewButtonBar([]Button{
		{Label: "Create New Form", State: ButtonNormal, Action: ActionNewForm},
		{Label: "Exit", State: ButtonNormal, Action: ActionExit},
	})
	bar.FocusFirst() // Auto-focus buttons on entry
	return &SuccessScreen{
		business:  business,
		width:     minModalWidth - modalChrome,
		buttonBar: bar,
	}
}

// SetSavedPath records where the local copy was written.
func (s *SuccessScreen) SetSavedPath(path string) { s.savedPath = path }

// SetHookNote records a one-line post-submit hook status.
func (s *SuccessScreen) SetHookNote(note string) { s.hookNote = note }

// SetWidth updates the width of the screen.
func (s *SuccessScreen) SetWidth(width int) {
	s.width = width
	s.buttonBar.SetWidth(width)
}

// Update handles button navigation and returns the activated action.
func (s *SuccessScreen) Update(msg tea.Msg) ButtonAction {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return ActionNone
	}
	switch key.String() {
	case "tab", "right", "l":
		if !s.buttonBar.FocusNext() {
			s.buttonBar.FocusFirst()
		}
	case "shift+tab", "left", "h":
		if !s.buttonBar.FocusPrev() {
			s.buttonBar.FocusLast()
		}
	case "enter", " ", "space":
		return s.buttonBar.FocusedButton()
	case "n":
		return ActionNewForm
	case "q", "esc":
		return ActionExit
	}
	return ActionNone
}

// View renders the success screen.
func (s *SuccessScreen) View() string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(st.Success.Render("✓ Form Submitted Successfully!"))
	b.WriteString("\n\n")

	if s.business != "" {
		b.WriteString(st.FieldValue.Render("Thank you! The intake for " + s.business + " has been sent."))
	} else {
		b.WriteString(st.FieldValue.Render("Thank you! Your intake has been sent."))
	}
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("The generated document will be emailed to the contact address."))
	b.WriteString("\n\n")

	if s.savedPath != "" {
		b.WriteString(st.Subtitle.Render("Copy saved to: "))
		b.WriteString(st.HeaderTitle.Render(s.savedPath))
		b.WriteString("\n\n")
	}
	if s.hookNote != "" {
		b.WriteString(st.Subtitle.Render(s.hookNote))
		b.WriteString("\n\n")
	}

	b.WriteString(s.buttonBar.Render())
	b.WriteString("\n")
	b.WriteString(renderHintBar("tab/←→", "choose", "enter", "select", "n", "new form", "q", "exit"))
	return b.String()
}
