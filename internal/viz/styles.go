package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles derived from one theme.
type styles struct {
	theme   Theme
	panel   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	key     lipgloss.Style
	active  lipgloss.Style
	warning lipgloss.Style
	status  map[string]lipgloss.Style
	bar     lipgloss.Style
	compare lipgloss.Style
	swap    lipgloss.Style
	sorted  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		theme: t,
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		key:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		active:  lipgloss.NewStyle().Foreground(t.Background()).Background(t.Accent).Bold(true),
		warning: lipgloss.NewStyle().Foreground(t.Warning),
		status: map[string]lipgloss.Style{
			"idle":     lipgloss.NewStyle().Foreground(t.Muted).Bold(true),
			"stepping": lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
			"playing":  lipgloss.NewStyle().Foreground(t.Sorted).Bold(true),
			"finished": lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		},
		bar:     lipgloss.NewStyle().Foreground(t.Bar),
		compare: lipgloss.NewStyle().Foreground(t.Compare).Bold(true),
		swap:    lipgloss.NewStyle().Foreground(t.Swap).Bold(true),
		sorted:  lipgloss.NewStyle().Foreground(t.Sorted),
	}
}

// Background is the text colour used on top of the accent colour.
func (t Theme) Background() lipgloss.Color { return lipgloss.Color("#0a0a0a") }

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(text)

	for i, c := range text {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b))).Bold(true)
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// ProgressBar renders playback progress in the theme's colours.
func (s styles) ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	done := strings.Repeat("█", filled)
	rest := strings.Repeat("░", width-filled)
	if percent >= 1 {
		return s.sorted.Render(done + rest)
	}
	return s.bar.Render(done) + s.muted.Render(rest)
}

// Sparkline renders a mini chart of values, sampled to width.
func (s styles) Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return s.muted.Render(strings.Repeat("─", width))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var out strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / span
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		out.WriteRune(chars[idx])
	}
	return s.swap.Render(out.String())
}

func (s styles) Separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return ""
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.muted.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
