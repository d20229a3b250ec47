package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/voiceintake/internal/tui/theme"
)

// ProgressIndicator shows the position in the questionnaire and lets the
// user pick a step. Picking only invokes OnSelect; whether the move happens
// is up to the controller.
type ProgressIndicator struct {
	titles  []string
	current int
	cursor  int
	focused bool
	compact bool

	// OnSelect is called with the index of a picked step marker.
	OnSelect func(index int)

	// markers holds the horizontal extent [start, end) of each marker in
	// the last expanded render, for click hit-testing.
	markers [][2]int
}

// NewProgressIndicator creates an indicator for the given step titles.
func NewProgressIndicator(titles []string, onSelect func(int)) *ProgressIndicator {
	return &ProgressIndicator{
		titles:   append([]string(nil), titles...),
		OnSelect: onSelect,
	}
}

// Current returns the highlighted step index.
func (p *ProgressIndicator) Current() int { return p.current }

// Total returns the number of steps.
func (p *ProgressIndicator) Total() int { return len(p.titles) }

// Titles returns the step titles.
func (p *ProgressIndicator) Titles() []string { return append([]string(nil), p.titles...) }

// SetCurrent moves the highlight and the picker cursor to index.
func (p *ProgressIndicator) SetCurrent(index int) {
	p.current = index
	p.cursor = index
}

// SetCompact switches between the compact bar and the titled markers.
func (p *ProgressIndicator) SetCompact(compact bool) { p.compact = compact }

// Compact reports whether the compact bar is shown.
func (p *ProgressIndicator) Compact() bool { return p.compact }

// Focus enables keyboard picking.
func (p *ProgressIndicator) Focus() {
	p.focused = true
	p.cursor = p.current
}

// Blur disables keyboard picking.
func (p *ProgressIndicator) Blur() { p.focused = false }

// Focused reports whether the picker has keyboard focus.
func (p *ProgressIndicator) Focused() bool { return p.focused }

// Update handles picker keys while focused. It returns true when the key
// was consumed.
func (p *ProgressIndicator) Update(msg tea.Msg) bool {
	if !p.focused {
		return false
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return false
	}
	switch key.String() {
	case "left", "h":
		if p.cursor > 0 {
			p.cursor--
		}
	case "right", "l":
		if p.cursor < len(p.titles)-1 {
			p.cursor++
		}
	case "home":
		p.cursor = 0
	case "end":
		p.cursor = len(p.titles) - 1
	case "enter", " ", "space":
		p.focused = false
		p.selectStep(p.cursor)
	case "esc", "ctrl+p":
		p.focused = false
	default:
		return false
	}
	return true
}

// HandleClick picks the marker at column x of the last render. It returns
// true when a marker was hit.
func (p *ProgressIndicator) HandleClick(x int) bool {
	for i, m := range p.markers {
		if x >= m[0] && x < m[1] {
			p.selectStep(i)
			return true
		}
	}
	return false
}

func (p *ProgressIndicator) selectStep(index int) {
	if p.OnSelect != nil {
		p.OnSelect(index)
	}
}

// View renders the indicator within width columns.
func (p *ProgressIndicator) View(width int) string {
	if len(p.titles) == 0 {
		return ""
	}
	s := theme.Current().S()

	header := s.Subtitle.Render(fmt.Sprintf("Step %d of %d", p.current+1, len(p.titles)))
	title := s.HeaderTitle.Render(p.titles[p.current])
	if p.focused {
		title = s.HeaderTitle.Render("Go to: " + p.titles[p.cursor])
	}

	var line string
	if p.compact {
		line = p.renderBar(width)
	} else {
		line = p.renderMarkers()
	}
	return strings.Join([]string{header + "  " + title, line}, "\n")
}

// renderMarkers draws one numbered marker per step and records their
// extents for mouse picking.
func (p *ProgressIndicator) renderMarkers() string {
	s := theme.Current().S()
	p.markers = p.markers[:0]

	var b strings.Builder
	col := 0
	for i := range p.titles {
		label := fmt.Sprintf("%d", i+1)
		var style lipgloss.Style
		switch {
		case p.focused && i == p.cursor:
			style = s.StepCursor
		case i < p.current:
			style = s.StepDone
			label = "✓"
		case i == p.current:
			style = s.StepCurrent
		default:
			style = s.StepPending
		}
		cell := "[" + label + "]"
		if i > 0 {
			b.WriteString(s.StepPending.Render("─"))
			col++
		}
		w := lipgloss.Width(cell)
		p.markers = append(p.markers, [2]int{col, col + w})
		col += w
		b.WriteString(style.Render(cell))
	}
	return b.String()
}

// renderBar draws a filled bar blending from the secondary to the primary
// color as the user progresses.
func (p *ProgressIndicator) renderBar(width int) string {
	t := theme.Current()
	if width < 10 {
		width = 10
	}
	p.markers = p.markers[:0]

	filled := width * (p.current + 1) / len(p.titles)
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			pos := float64(i) / float64(width)
			c := theme.InterpolateColor(t.Secondary, t.Primary, pos)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("█"))
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface1)).Render("░"))
	}
	return b.String()
}
