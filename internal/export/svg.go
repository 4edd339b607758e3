// Package export renders recordings as static SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

type Options struct {
	BarWidth    float64
	FrameHeight float64
	Gap         float64
	Background  string
	Bar         string
	Swapped     string
}

func DefaultOptions() Options {
	return Options{
		BarWidth:    24,
		FrameHeight: 80,
		Gap:         12,
		Background:  "#0a0a0a",
		Bar:         "#00ffff",
		Swapped:     "#ff00ff",
	}
}

// FrameSVG draws a single array as a bar chart. Positions listed in hot
// use the Swapped colour.
func FrameSVG(a sorting.Array, opts Options, hot ...int) string {
	width := float64(len(a)) * opts.BarWidth
	var sb strings.Builder
	writeHeader(&sb, width, opts.FrameHeight, opts.Background)
	writeBars(&sb, a, 0, a.Max(), opts, hot)
	sb.WriteString("</svg>")
	return sb.String()
}

// RecordingSVG draws every frame of the recording, one row per swap,
// with the two swapped bars highlighted.
func RecordingSVG(rec sorting.Recording, opts Options) (string, error) {
	frames, err := sorting.Frames(rec.Steps, rec.Original)
	if err != nil {
		return "", err
	}

	var swaps [][2]int
	for _, st := range rec.Steps {
		if st.Kind == sorting.KindSwap {
			swaps = append(swaps, [2]int{st.I, st.J})
		}
	}

	n := len(rec.Original)
	width := float64(n) * opts.BarWidth
	if width == 0 {
		width = opts.BarWidth
	}
	rowHeight := opts.FrameHeight + opts.Gap
	height := float64(len(frames)) * rowHeight

	var sb strings.Builder
	writeHeader(&sb, width, height, opts.Background)
	sb.WriteString(fmt.Sprintf("<title>%s %s</title>\n", rec.Algorithm, rec.Original))

	peak := rec.Original.Max()
	for i, frame := range frames {
		var hot []int
		if i > 0 {
			hot = swaps[i-1][:]
		}
		writeBars(&sb, frame, float64(i)*rowHeight, peak, opts, hot)
	}
	sb.WriteString("</svg>")
	return sb.String(), nil
}

func writeHeader(sb *strings.Builder, width, height float64, bg string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg))
}

func writeBars(sb *strings.Builder, a sorting.Array, top float64, peak sorting.Value, opts Options, hot []int) {
	if peak <= 0 {
		peak = 1
	}
	sb.WriteString(fmt.Sprintf("<g transform=\"translate(0,%.1f)\">\n", top))
	for i, v := range a {
		h := float64(v) / float64(peak) * opts.FrameHeight
		if h < 1 {
			h = 1
		}
		fill := opts.Bar
		for _, k := range hot {
			if k == i {
				fill = opts.Swapped
			}
		}
		x := float64(i) * opts.BarWidth
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x+1, opts.FrameHeight-h, opts.BarWidth-2, h, fill))
	}
	sb.WriteString("</g>\n")
}
