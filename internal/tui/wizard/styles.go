package wizard

import (
	"strings"

	"github.com/mark3labs/voiceintake/internal/tui/theme"
)

// Layout bounds for the modal container.
const (
	minModalWidth = 60
	maxModalWidth = 100
	modalChrome   = 6 // border + padding on each side
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("tab", "next field", "enter", "select")
// Returns: "tab next field • enter select"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// modalWidth clamps the modal width to the terminal.
func modalWidth(termWidth int) int {
	w := termWidth - 10
	if w < minModalWidth {
		w = minModalWidth
	}
	if w > maxModalWidth {
		w = maxModalWidth
	}
	return w
}
