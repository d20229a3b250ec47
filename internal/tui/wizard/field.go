package wizard

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/mark3labs/voiceintake/internal/tui/theme"
)

const (
	textCharLimit = 500
	areaCharLimit = 5000
	areaHeight    = 5
)

// fieldInput is the widget for one form field. Exactly one of text, area
// or options is in use, depending on the field kind.
type fieldInput struct {
	field   form.Field
	text    textinput.Model
	area    textarea.Model
	options OptionList
}

func newFieldInput(f form.Field) *fieldInput {
	in := &fieldInput{field: f}
	switch {
	case f.Kind.IsChoice():
		in.options = NewOptionList(f.Options, f.Kind == form.KindCheckbox)
	case f.Kind == form.KindTextArea:
		ta := textarea.New()
		ta.Placeholder = f.Placeholder
		ta.CharLimit = areaCharLimit
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.SetWidth(minModalWidth - modalChrome)
		ta.SetHeight(areaHeight)
		in.area = ta
	default:
		ti := textinput.New()
		ti.Placeholder = placeholderFor(f)
		ti.CharLimit = textCharLimit
		ti.Prompt = "> "
		ti.SetWidth(minModalWidth - modalChrome)
		in.text = ti
	}
	return in
}

func placeholderFor(f form.Field) string {
	if f.Placeholder != "" {
		return f.Placeholder
	}
	switch f.Kind {
	case form.KindEmail:
		return "name@example.com"
	case form.KindURL:
		return "www.example.com"
	case form.KindPhone:
		return "(555) 123-4567"
	case form.KindDate:
		return "YYYY-MM-DD"
	}
	return ""
}

func (in *fieldInput) isArea() bool { return in.field.Kind == form.KindTextArea }

func (in *fieldInput) focus() tea.Cmd {
	switch {
	case in.field.Kind.IsChoice():
		in.options.Focus()
		return nil
	case in.isArea():
		return in.area.Focus()
	default:
		return in.text.Focus()
	}
}

func (in *fieldInput) blur() {
	switch {
	case in.field.Kind.IsChoice():
		in.options.Blur()
	case in.isArea():
		in.area.Blur()
	default:
		in.text.Blur()
	}
}

// value returns the widget content in registry form.
func (in *fieldInput) value() any {
	switch {
	case in.field.Kind == form.KindCheckbox:
		return in.options.SelectedValues()
	case in.field.Kind == form.KindRadio:
		if v := in.options.SelectedValues(); len(v) > 0 {
			return v[0]
		}
		return ""
	case in.isArea():
		return in.area.Value()
	default:
		return in.text.Value()
	}
}

// load copies the registry answer into the widget.
func (in *fieldInput) load(reg *form.Registry) {
	key := in.field.Key
	switch {
	case in.field.Kind == form.KindCheckbox:
		in.options.Select(reg.Strings(key)...)
	case in.field.Kind == form.KindRadio:
		if v := reg.String(key); v != "" {
			in.options.Select(v)
		} else {
			in.options.Select()
		}
	case in.isArea():
		in.area.SetValue(reg.String(key))
	default:
		in.text.SetValue(reg.String(key))
	}
}

// update forwards msg to the widget. changed reports an edited value;
// consumed reports that the panel must not treat the key as navigation.
func (in *fieldInput) update(msg tea.Msg) (changed, consumed bool, cmd tea.Cmd) {
	switch {
	case in.field.Kind.IsChoice():
		changed, consumed = in.options.Update(msg)
		return changed, consumed, nil
	case in.isArea():
		before := in.area.Value()
		in.area, cmd = in.area.Update(msg)
		return in.area.Value() != before, true, cmd
	default:
		before := in.text.Value()
		in.text, cmd = in.text.Update(msg)
		return in.text.Value() != before, true, cmd
	}
}

func (in *fieldInput) setWidth(w int) {
	switch {
	case in.field.Kind.IsChoice():
	case in.isArea():
		in.area.SetWidth(w)
	default:
		in.text.SetWidth(w)
	}
}

// view renders label, widget and error message.
func (in *fieldInput) view(focused bool, errMsg string) string {
	s := theme.Current().S()

	labelStyle := s.FieldLabel
	if focused {
		labelStyle = s.FieldLabelFocused
	}
	label := labelStyle.Render(in.field.Label)
	if in.field.Required {
		label += s.FieldRequired.Render(" *")
	}

	var widget string
	switch {
	case in.field.Kind.IsChoice():
		widget = in.options.View()
	case in.isArea():
		widget = in.area.View()
	default:
		widget = in.text.View()
	}

	lines := []string{label, widget}
	if errMsg != "" {
		lines = append(lines, s.FieldError.Render("  "+errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
