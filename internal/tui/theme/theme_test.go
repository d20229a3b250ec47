package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent_DefaultsToMocha(t *testing.T) {
	SetCurrent(nil)
	t.Cleanup(func() { SetCurrent(nil) })

	th := Current()
	assert.Equal(t, NewCatppuccinMocha().Primary, th.Primary)
	assert.Same(t, th.S(), th.S(), "styles are built once")
}

func TestSetCurrent(t *testing.T) {
	t.Cleanup(func() { SetCurrent(nil) })

	custom := NewCatppuccinMocha()
	custom.Primary = "#ff0000"
	SetCurrent(custom)
	assert.Equal(t, "#ff0000", Current().Primary)
}

func TestInterpolateColor(t *testing.T) {
	tests := []struct {
		name string
		pos  float64
		want string
	}{
		{name: "start", pos: 0, want: "#000000"},
		{name: "middle", pos: 0.5, want: "#7f7f7f"},
		{name: "end", pos: 1, want: "#ffffff"},
		{name: "clamped low", pos: -1, want: "#000000"},
		{name: "clamped high", pos: 2, want: "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpolateColor("#000000", "#ffffff", tt.pos))
		})
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#89b4fa")
	assert.Equal(t, "#89b4fa", FormatHexColor(r, g, b))

	r, g, b = ParseHexColor("bad")
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestApplyGradient(t *testing.T) {
	assert.Empty(t, ApplyGradient("", "#000000", "#ffffff"))
	out := ApplyGradient("ab", "#000000", "#ffffff")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}
