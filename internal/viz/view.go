package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/catalog"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	barHeight = 10
	barWidth  = 4
)

func (m Model) View() string {
	d := m.board.Snapshot()
	st := m.session.State()
	s := m.styles

	var b strings.Builder
	b.WriteString(GradientText("SORTVIZ", m.theme.Primary, m.theme.Secondary))
	b.WriteString("  " + s.value.Render(m.session.Algorithm().Name()+" sort"))
	b.WriteString("  " + s.muted.Render(fmt.Sprintf("%dx", m.session.Multiplier())))
	b.WriteString("  " + m.statusText(st) + "\n\n")

	b.WriteString(renderBars(d, s))
	b.WriteString("\n")

	b.WriteString(s.label.Render("Original") + s.value.Render(originalLabel(d.Original)) + "\n")
	b.WriteString(s.label.Render("Sorted") + s.value.Render(sortedLabel(d, st)) + "\n")
	b.WriteString(counters(d, s) + "\n")
	b.WriteString(s.label.Render("Progress") + s.ProgressBar(st.Progress(), 30) +
		s.muted.Render(fmt.Sprintf(" %d/%d", st.Cursor, st.Length)) + "\n")
	b.WriteString(s.label.Render("Swaps") + s.Sparkline(d.SwapHistory, 30) + "\n\n")

	b.WriteString(m.codePanel(d) + "\n")

	if m.editing {
		b.WriteString(s.key.Render("array> ") + s.value.Render(m.editBuf+"_") + "\n")
	}
	if m.notice != "" {
		b.WriteString(s.warning.Render(m.notice) + "\n")
	}

	b.WriteString(s.Separator(50) + "\n")
	if m.showHelp {
		b.WriteString(m.helpText())
	} else {
		b.WriteString(m.hint("space", "play/pause") + m.hint("n", "step") + m.hint("r", "reset") +
			m.hint("e", "edit") + m.hint("?", "help") + m.hint("q", "quit"))
	}
	return b.String()
}

func (m Model) statusText(st player.PlaybackState) string {
	style, ok := m.styles.status[st.State.String()]
	if !ok {
		style = m.styles.muted
	}
	return style.Render(strings.ToUpper(st.State.String()))
}

func (m Model) hint(key, desc string) string {
	return m.styles.key.Render(key) + m.styles.muted.Render(" "+desc+"  ")
}

func (m Model) helpText() string {
	rows := [][2]string{
		{"space", "play / pause"},
		{"n, →", "single step"},
		{"r", "reset"},
		{"g", "random array"},
		{"e", "edit array (comma-separated, enter to load)"},
		{"a", "switch algorithm"},
		{"c", "code view: " + string(m.view)},
		{"+ / -", "speed"},
		{"t", "theme: " + m.theme.Name},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(m.styles.key.Width(8).Render(r[0]) + m.styles.muted.Render(r[1]) + "\n")
	}
	return b.String()
}

func (m Model) codePanel(d Display) string {
	entry := m.board.Entry()
	if entry == nil {
		return ""
	}
	if m.view != catalog.ViewPseudo {
		code := entry.Code[m.view]
		return m.styles.panel.Render(m.styles.muted.Render(string(m.view)) + "\n" + code)
	}
	lines := make([]string, len(entry.Pseudocode))
	for i, l := range entry.Pseudocode {
		if i == d.Line {
			lines[i] = m.styles.active.Render(l)
		} else {
			lines[i] = m.styles.muted.Render(l)
		}
	}
	return m.styles.panel.Render(strings.Join(lines, "\n"))
}

func renderBars(d Display, s styles) string {
	if len(d.Array) == 0 {
		return s.muted.Render("  (empty array: press g or e)") + "\n"
	}
	peak := d.Array.Max()
	if peak <= 0 {
		peak = 1
	}

	cols := make([]string, len(d.Array))
	for i, v := range d.Array {
		style := barStyle(d, s, i)
		h := int(v) * barHeight / int(peak)
		if h < 1 && v > 0 {
			h = 1
		}
		cell := strings.Repeat("█", barWidth-1) + " "
		empty := strings.Repeat(" ", barWidth)
		var col strings.Builder
		for row := barHeight; row >= 1; row-- {
			if row <= h {
				col.WriteString(style.Render(cell))
			} else {
				col.WriteString(empty)
			}
			col.WriteString("\n")
		}
		col.WriteString(style.Render(fmt.Sprintf("%-*d", barWidth, v)))
		cols[i] = col.String()
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...) + "\n"
}

func barStyle(d Display, s styles, i int) lipgloss.Style {
	switch {
	case d.Finished:
		return s.sorted
	case i == d.Swap[0] || i == d.Swap[1]:
		return s.swap
	case i == d.Compare[0] || i == d.Compare[1]:
		return s.compare
	}
	return s.bar
}

func counters(d Display, s styles) string {
	idx := func(v int) string {
		if v < 0 {
			return "-"
		}
		return fmt.Sprint(v)
	}
	return s.label.Render("Pass") + s.value.Render(idx(d.Pass)) + "   " +
		s.muted.Render("i ") + s.value.Render(idx(d.I)) + "   " +
		s.muted.Render("j ") + s.value.Render(idx(d.J)) + "   " +
		s.muted.Render("swaps ") + s.value.Render(fmt.Sprint(d.Swaps))
}

func originalLabel(a sorting.Array) string {
	if len(a) == 0 {
		return "empty"
	}
	return a.String()
}

func sortedLabel(d Display, st player.PlaybackState) string {
	switch {
	case d.Finished:
		if len(d.Sorted) == 0 {
			return "empty"
		}
		return d.Sorted.String()
	case st.Loaded && st.Cursor > 0:
		return "sorting..."
	}
	return "-"
}
