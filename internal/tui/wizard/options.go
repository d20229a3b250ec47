package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/mark3labs/voiceintake/internal/tui/theme"
)

// OptionItem represents a single option with selection state.
type OptionItem struct {
	value    string
	label    string
	selected bool
}

// OptionList manages radio or checkbox selection with keyboard navigation.
type OptionList struct {
	items       []OptionItem
	cursor      int
	multiSelect bool
	focused     bool
}

// NewOptionList creates an option list for a choice field.
func NewOptionList(opts []form.Option, multiSelect bool) OptionList {
	items := make([]OptionItem, len(opts))
	for i, o := range opts {
		label := o.Label
		if label == "" {
			label = o.Value
		}
		items[i] = OptionItem{value: o.Value, label: label}
	}
	return OptionList{items: items, multiSelect: multiSelect}
}

// CursorUp moves cursor up. It returns false at the top.
func (o *OptionList) CursorUp() bool {
	if o.cursor > 0 {
		o.cursor--
		return true
	}
	return false
}

// CursorDown moves cursor down. It returns false at the bottom.
func (o *OptionList) CursorDown() bool {
	if o.cursor < len(o.items)-1 {
		o.cursor++
		return true
	}
	return false
}

// Toggle toggles selection of the current option. Single-select lists keep
// exactly one option selected.
func (o *OptionList) Toggle() {
	if len(o.items) == 0 {
		return
	}
	if o.multiSelect {
		o.items[o.cursor].selected = !o.items[o.cursor].selected
		return
	}
	for i := range o.items {
		o.items[i].selected = i == o.cursor
	}
}

// Select marks the given values as selected and everything else as not.
func (o *OptionList) Select(values ...string) {
	want := make(map[string]bool, len(values))
	for _, v := range values {
		want[v] = true
	}
	for i := range o.items {
		o.items[i].selected = want[o.items[i].value]
	}
}

// SelectedValues returns the values of all selected options in list order.
func (o OptionList) SelectedValues() []string {
	var values []string
	for _, item := range o.items {
		if item.selected {
			values = append(values, item.value)
		}
	}
	return values
}

// Focus focuses the option list.
func (o *OptionList) Focus() { o.focused = true }

// Blur blurs the option list.
func (o *OptionList) Blur() { o.focused = false }

// Update handles keys for the option list. It returns whether the
// selection changed and whether the key was consumed; up/down at the edges
// are left for the panel so focus can move to the neighbouring field.
func (o *OptionList) Update(msg tea.Msg) (changed, consumed bool) {
	if !o.focused {
		return false, false
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return false, false
	}
	switch key.String() {
	case "up", "k":
		return false, o.CursorUp()
	case "down", "j":
		return false, o.CursorDown()
	case " ", "space", "x":
		o.Toggle()
		return true, true
	}
	return false, false
}

// View renders the option list.
func (o OptionList) View() string {
	s := theme.Current().S()
	var b strings.Builder
	for i, item := range o.items {
		indicator := "○"
		if o.multiSelect {
			indicator = "☐"
			if item.selected {
				indicator = "☑"
			}
		} else if item.selected {
			indicator = "●"
		}

		cursor := "  "
		style := s.Option
		if i == o.cursor && o.focused {
			cursor = "▶ "
			style = s.OptionCursor
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style.Render(cursor + indicator + " " + item.label))
	}
	return b.String()
}
