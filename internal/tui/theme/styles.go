package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	Subtitle    lipgloss.Style

	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style

	// Form fields
	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	FieldRequired     lipgloss.Style
	FieldError        lipgloss.Style
	FieldValue        lipgloss.Style
	Option            lipgloss.Style
	OptionCursor      lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	// Progress markers
	StepDone    lipgloss.Style
	StepCurrent lipgloss.Style
	StepPending lipgloss.Style
	StepCursor  lipgloss.Style

	// Status
	Banner  lipgloss.Style
	Success lipgloss.Style

	// Hints
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style
}
