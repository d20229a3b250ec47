package wizard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// plain drops styling so assertions see the visible text.
func plain(s string) string { return ansi.Strip(s) }

func press(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+s", "ctrl+p", "ctrl+t", "ctrl+c", "ctrl+e", "ctrl+r":
		return tea.KeyPressMsg{Code: rune(key[len(key)-1]), Mod: tea.ModCtrl}
	}
	return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
}

func TestButtonBar_Focus(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(false, "Next →", false))
	assert.False(t, bar.Focused())
	assert.Equal(t, ActionNone, bar.FocusedButton())

	// Back is disabled so the first focusable button is Next.
	bar.FocusFirst()
	assert.Equal(t, ActionNext, bar.FocusedButton())
	assert.False(t, bar.FocusNext())
	assert.False(t, bar.FocusPrev())
	assert.Equal(t, ActionNext, bar.FocusedButton())

	bar.Blur()
	assert.False(t, bar.Focused())
}

func TestButtonBar_SendAction(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(true, "Send", true))
	bar.FocusLast()
	assert.Equal(t, ActionSend, bar.FocusedButton())
	require.True(t, bar.FocusPrev())
	assert.Equal(t, ActionBack, bar.FocusedButton())

	out := plain(bar.Render())
	assert.Contains(t, out, "Send")
	assert.Contains(t, out, "Back")
}

func TestProgressIndicator_Picker(t *testing.T) {
	var picked []int
	p := NewProgressIndicator([]string{"One", "Two", "Three"}, func(i int) { picked = append(picked, i) })
	p.SetCurrent(1)

	assert.False(t, p.Update(press("left")), "ignores keys while blurred")

	p.Focus()
	assert.True(t, p.Update(press("left")))
	assert.Contains(t, plain(p.View(60)), "Go to: One")
	assert.True(t, p.Update(press("enter")))

	assert.Equal(t, []int{0}, picked)
	assert.False(t, p.Focused())
	assert.Equal(t, 1, p.Current(), "picking does not move the indicator")
}

func TestProgressIndicator_View(t *testing.T) {
	p := NewProgressIndicator([]string{"One", "Two", "Three"}, nil)
	p.SetCurrent(1)

	view := plain(p.View(60))
	assert.Contains(t, view, "Step 2 of 3")
	assert.Contains(t, view, "Two")
	assert.Contains(t, view, "[✓]─[2]─[3]")

	p.SetCompact(true)
	view = plain(p.View(30))
	assert.NotContains(t, view, "[2]")
	assert.Contains(t, view, "█")
}

func TestProgressIndicator_HandleClick(t *testing.T) {
	var picked []int
	p := NewProgressIndicator([]string{"One", "Two", "Three"}, func(i int) { picked = append(picked, i) })
	p.View(60) // records marker extents

	// "[1]─[2]─[3]": the second marker spans columns 4..6.
	assert.True(t, p.HandleClick(5))
	assert.False(t, p.HandleClick(3), "separator is not a marker")
	assert.Equal(t, []int{1}, picked)
}

func TestOptionList(t *testing.T) {
	opts := []form.Option{{Value: "a"}, {Value: "b", Label: "Bee"}, {Value: "c"}}

	tests := []struct {
		name  string
		multi bool
		keys  []string
		want  []string
	}{
		{name: "radio keeps one", multi: false, keys: []string{"space", "down", "space"}, want: []string{"b"}},
		{name: "checkbox keeps many", multi: true, keys: []string{"space", "down", "down", "x"}, want: []string{"a", "c"}},
		{name: "checkbox untoggles", multi: true, keys: []string{"space", "space"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOptionList(opts, tt.multi)
			o.Focus()
			for _, k := range tt.keys {
				o.Update(press(k))
			}
			assert.Equal(t, tt.want, o.SelectedValues())
		})
	}
}

func TestOptionList_EdgesNotConsumed(t *testing.T) {
	o := NewOptionList([]form.Option{{Value: "a"}, {Value: "b"}}, false)
	o.Focus()

	_, consumed := o.Update(press("up"))
	assert.False(t, consumed, "up at the top leaves the list")
	_, consumed = o.Update(press("down"))
	assert.True(t, consumed)
	_, consumed = o.Update(press("down"))
	assert.False(t, consumed, "down at the bottom leaves the list")
}

func testPanel(t *testing.T) (*FieldPanel, *form.Registry) {
	t.Helper()
	c := form.MustCatalog([]form.Step{{
		Title: "Basics",
		Fields: []form.Field{
			{Key: "name", Label: "Name", Kind: form.KindText, Required: true},
			{Key: "coverage", Label: "Coverage", Kind: form.KindRadio, Required: true,
				Options: []form.Option{{Value: "Day"}, {Value: form.OtherOption}}},
			{Key: "otherCoverage", Label: "Other coverage", Kind: form.KindText, Required: true,
				ShowWhen: &form.Condition{Key: "coverage", Value: form.OtherOption}},
		},
	}})
	reg, err := form.NewRegistry(c)
	require.NoError(t, err)
	return NewFieldPanel(c.Step(0), reg), reg
}

func TestFieldPanel_TypingWritesThrough(t *testing.T) {
	p, reg := testPanel(t)
	p.FocusFirst()

	for _, r := range "Acme" {
		p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "Acme", reg.String("name"))
}

func TestFieldPanel_NavigationKeysNotConsumed(t *testing.T) {
	p, _ := testPanel(t)
	p.FocusFirst()

	for _, k := range []string{"tab", "shift+tab", "enter", "up", "down"} {
		_, consumed := p.Update(press(k))
		assert.False(t, consumed, k)
	}
}

func TestFieldPanel_ConditionalField(t *testing.T) {
	p, reg := testPanel(t)
	p.FocusFirst()

	// Hidden fields are skipped by focus.
	_, ok := p.FocusNext()
	require.True(t, ok)
	f, _ := p.FocusedField()
	assert.Equal(t, "coverage", f.Key)
	_, ok = p.FocusNext()
	assert.False(t, ok)
	assert.NotContains(t, plain(p.View()), "Other coverage")

	// Choosing Other reveals the follow-up field.
	p.FocusLast()
	p.Update(press("down"))
	p.Update(press("space"))
	assert.Equal(t, form.OtherOption, reg.String("coverage"))
	assert.Contains(t, plain(p.View()), "Other coverage")

	p.SetValue("otherCoverage", "Nights")
	assert.Equal(t, "Nights", reg.String("otherCoverage"))

	// Switching away clears the hidden answer.
	p.FocusFirst()
	p.FocusNext()
	p.Update(press("up"))
	p.Update(press("space"))
	assert.Equal(t, "Day", reg.String("coverage"))
	assert.Empty(t, reg.String("otherCoverage"))
}

func TestFieldPanel_FocusFirstError(t *testing.T) {
	p, reg := testPanel(t)
	reg.Set("name", "Acme")
	p.Load()

	assert.False(t, p.HasErrors())
	require.False(t, reg.Validate(p.Step().Keys()))
	assert.True(t, p.HasErrors())

	p.FocusFirstError()
	f, ok := p.FocusedField()
	require.True(t, ok)
	assert.Equal(t, "coverage", f.Key)
	assert.True(t, strings.Contains(plain(p.View()), reg.ErrorFor("coverage")))
}
