package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/mark3labs/voiceintake/internal/tui/theme"
)

// FieldPanel renders the fields of one step and writes every edit through
// to the registry. Conditional fields are shown only while their trigger
// holds the matching answer; hiding a field clears its answer.
type FieldPanel struct {
	step   form.Step
	reg    *form.Registry
	inputs []*fieldInput
	focus  int // index into inputs, -1 when no field is focused
	width  int

	// focusLine is the first line of the focused field in the last render.
	focusLine int
}

// NewFieldPanel builds the widgets for a step and loads current answers.
func NewFieldPanel(step form.Step, reg *form.Registry) *FieldPanel {
	p := &FieldPanel{
		step:  step,
		reg:   reg,
		focus: -1,
		width: minModalWidth - modalChrome,
	}
	for _, f := range step.Fields {
		p.inputs = append(p.inputs, newFieldInput(f))
	}
	p.Load()
	return p
}

// Step returns the step the panel renders.
func (p *FieldPanel) Step() form.Step { return p.step }

// Load refreshes every widget from the registry.
func (p *FieldPanel) Load() {
	for _, in := range p.inputs {
		in.load(p.reg)
	}
}

// SetWidth resizes the text widgets.
func (p *FieldPanel) SetWidth(w int) {
	p.width = w
	for _, in := range p.inputs {
		in.setWidth(w)
	}
}

func (p *FieldPanel) visible(i int) bool {
	return p.reg.Visible(p.inputs[i].field)
}

// FocusFirst focuses the first visible field.
func (p *FieldPanel) FocusFirst() tea.Cmd {
	p.Blur()
	return p.moveFocus(-1, 1)
}

// FocusLast focuses the last visible field.
func (p *FieldPanel) FocusLast() tea.Cmd {
	p.Blur()
	return p.moveFocus(len(p.inputs), -1)
}

// FocusNext moves to the next visible field. ok is false when focus left
// the panel past its last field.
func (p *FieldPanel) FocusNext() (cmd tea.Cmd, ok bool) {
	from := p.focus
	p.blurCurrent()
	cmd = p.moveFocus(from, 1)
	return cmd, p.focus >= 0
}

// FocusPrev moves to the previous visible field. ok is false when focus
// left the panel before its first field.
func (p *FieldPanel) FocusPrev() (cmd tea.Cmd, ok bool) {
	from := p.focus
	if from < 0 {
		from = len(p.inputs)
	}
	p.blurCurrent()
	cmd = p.moveFocus(from, -1)
	return cmd, p.focus >= 0
}

func (p *FieldPanel) moveFocus(from, dir int) tea.Cmd {
	for i := from + dir; i >= 0 && i < len(p.inputs); i += dir {
		if p.visible(i) {
			p.focus = i
			return p.inputs[i].focus()
		}
	}
	p.focus = -1
	return nil
}

func (p *FieldPanel) blurCurrent() {
	if p.focus >= 0 {
		p.inputs[p.focus].blur()
	}
	p.focus = -1
}

// FocusFirstError focuses the first visible field with an error, falling
// back to the first field.
func (p *FieldPanel) FocusFirstError() tea.Cmd {
	p.Blur()
	for i, in := range p.inputs {
		if p.visible(i) && p.reg.ErrorFor(in.field.Key) != "" {
			p.focus = i
			return in.focus()
		}
	}
	return p.moveFocus(-1, 1)
}

// HasErrors reports whether any visible field has an error.
func (p *FieldPanel) HasErrors() bool {
	for i, in := range p.inputs {
		if p.visible(i) && p.reg.ErrorFor(in.field.Key) != "" {
			return true
		}
	}
	return false
}

// Blur removes focus from every field.
func (p *FieldPanel) Blur() { p.blurCurrent() }

// Focused reports whether a field holds focus.
func (p *FieldPanel) Focused() bool { return p.focus >= 0 }

// FocusedField returns the field holding focus.
func (p *FieldPanel) FocusedField() (form.Field, bool) {
	if p.focus < 0 {
		return form.Field{}, false
	}
	return p.inputs[p.focus].field, true
}

// FocusLine returns the line offset of the focused field in the last View.
func (p *FieldPanel) FocusLine() int { return p.focusLine }

// Update routes msg to the focused field. It returns consumed=false for
// keys the panel leaves to its owner (navigation between fields).
func (p *FieldPanel) Update(msg tea.Msg) (cmd tea.Cmd, consumed bool) {
	if p.focus < 0 {
		return nil, false
	}
	in := p.inputs[p.focus]

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			return nil, false
		case "enter":
			if !in.isArea() {
				return nil, false
			}
		case "up", "down":
			if !in.isArea() && !in.field.Kind.IsChoice() {
				return nil, false
			}
		}
	}

	changed, consumed, cmd := in.update(msg)
	if changed {
		p.reg.Set(in.field.Key, in.value())
		p.syncConditionals(in.field.Key)
	}
	return cmd, consumed
}

// SetValue replaces a field's answer, e.g. after an external edit.
func (p *FieldPanel) SetValue(key, value string) {
	for _, in := range p.inputs {
		if in.field.Key == key {
			p.reg.Set(key, value)
			in.load(p.reg)
			p.syncConditionals(key)
			return
		}
	}
}

// syncConditionals clears answers of fields that trigger no longer shows.
func (p *FieldPanel) syncConditionals(trigger string) {
	for _, in := range p.inputs {
		cond := in.field.ShowWhen
		if cond == nil || cond.Key != trigger || p.reg.Visible(in.field) {
			continue
		}
		p.reg.Set(in.field.Key, nil)
		in.load(p.reg)
	}
}

// View renders every visible field with its current error.
func (p *FieldPanel) View() string {
	s := theme.Current().S()
	var sections []string
	if p.step.Description != "" {
		sections = append(sections, s.Subtitle.Render(p.step.Description))
	}

	line := 0
	for _, sec := range sections {
		line += strings.Count(sec, "\n") + 2
	}
	for i, in := range p.inputs {
		if !p.visible(i) {
			continue
		}
		if i == p.focus {
			p.focusLine = line
		}
		rendered := in.view(i == p.focus, p.reg.ErrorFor(in.field.Key))
		sections = append(sections, rendered)
		line += strings.Count(rendered, "\n") + 2
	}
	return strings.Join(sections, "\n\n")
}
