package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/voiceintake/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonAction identifies what a button does when activated.
type ButtonAction int

const (
	ActionNone ButtonAction = iota
	ActionBack
	ActionNext
	ActionSend
	ActionNewForm
	ActionExit
)

// Button represents a single button in the button bar.
type Button struct {
	Label  string
	State  ButtonState
	Action ButtonAction
}

// ButtonBar manages a set of buttons with consistent styling.
// focus is -1 when the bar itself is not focused.
type ButtonBar struct {
	buttons []Button
	focus   int
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   minModalWidth,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Len returns the number of buttons.
func (b *ButtonBar) Len() int { return len(b.buttons) }

// Focused reports whether any button holds focus.
func (b *ButtonBar) Focused() bool { return b.focus >= 0 }

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() {
	b.focus = -1
	b.FocusNext()
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() {
	b.focus = len(b.buttons)
	b.FocusPrev()
}

// FocusNext moves focus to the next enabled button. It returns false, and
// leaves focus unchanged, when there is none.
func (b *ButtonBar) FocusNext() bool {
	for i := b.focus + 1; i < len(b.buttons); i++ {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	if b.focus >= len(b.buttons) {
		b.focus = -1
	}
	return false
}

// FocusPrev moves focus to the previous enabled button. It returns false,
// and leaves focus unchanged, when there is none.
func (b *ButtonBar) FocusPrev() bool {
	for i := b.focus - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	if b.focus >= len(b.buttons) {
		b.focus = -1
	}
	return false
}

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() { b.focus = -1 }

// FocusedButton returns the action of the focused button, or ActionNone.
func (b *ButtonBar) FocusedButton() ButtonAction {
	if b.focus < 0 || b.focus >= len(b.buttons) {
		return ActionNone
	}
	return b.buttons[b.focus].Action
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(b.buttons))
	for i, btn := range b.buttons {
		switch {
		case btn.State == ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case i == b.focus || btn.State == ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateBackNextButtons creates the standard navigation pair.
// The forward button sends instead of advancing when send is true.
func CreateBackNextButtons(backEnabled bool, nextLabel string, send bool) []Button {
	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	next := Button{Label: nextLabel, State: ButtonNormal, Action: ActionNext}
	if send {
		next.Action = ActionSend
	}
	return []Button{
		{Label: "← Back", State: backState, Action: ActionBack},
		next,
	}
}
