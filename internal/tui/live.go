// Package tui renders playback as plain ANSI frames for non-interactive
// terminals and pipes.
package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/san-kum/sortviz/internal/catalog"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	height      = 8
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer implements player.Renderer by writing one frame per call.
// It keeps its own copy of the array and applies swaps as they arrive.
type LiveRenderer struct {
	w       io.Writer
	entry   *catalog.Entry
	palette Palette
	clear   bool

	arr   sorting.Array
	step  int
	last  sorting.Step
	swaps int

	done     chan struct{}
	doneOnce sync.Once
}

func NewLiveRenderer(w io.Writer, entry *catalog.Entry, color bool) *LiveRenderer {
	return &LiveRenderer{
		w:       w,
		entry:   entry,
		palette: NewPalette(color),
		clear:   color,
		done:    make(chan struct{}),
	}
}

// Done is closed after the first finished frame.
func (r *LiveRenderer) Done() <-chan struct{} { return r.done }

func (r *LiveRenderer) RenderIdle(a sorting.Array) {
	r.arr = a.Clone()
	r.step = 0
	r.swaps = 0
	r.last = sorting.Step{}
	r.frame("ready", nil)
}

func (r *LiveRenderer) RenderStep(st sorting.Step) {
	r.step++
	r.last = st
	var hot []int
	switch st.Kind {
	case sorting.KindCompare:
		hot = []int{st.I, st.J}
	case sorting.KindSwap:
		if st.I < len(r.arr) && st.J < len(r.arr) {
			r.arr[st.I], r.arr[st.J] = r.arr[st.J], r.arr[st.I]
		}
		r.swaps++
		hot = []int{st.I, st.J}
	}
	r.frame(st.String(), hot)
}

func (r *LiveRenderer) RenderFinished(a sorting.Array) {
	r.arr = a.Clone()
	r.frame("sorted", nil)
	r.doneOnce.Do(func() { close(r.done) })
}

func (r *LiveRenderer) Start() {
	if r.clear {
		fmt.Fprint(r.w, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.clear {
		fmt.Fprint(r.w, showCursor)
	}
}

func (r *LiveRenderer) frame(status string, hot []int) {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(&b, "  %s  step %d  swaps %d  %s\n",
		r.palette.Bold(r.entry.Name), r.step, r.swaps, r.palette.Dim(status))

	finished := status == "sorted"
	peak := r.arr.Max()
	if peak <= 0 {
		peak = 1
	}
	for row := height; row >= 1; row-- {
		b.WriteString("  ")
		for i, v := range r.arr {
			cell := "   "
			if int(v)*height >= row*int(peak) {
				cell = "██ "
			}
			b.WriteString(r.colour(cell, i, hot, finished))
		}
		b.WriteString("\n")
	}
	b.WriteString("  ")
	for i, v := range r.arr {
		b.WriteString(r.colour(fmt.Sprintf("%-3d", v), i, hot, finished))
	}
	b.WriteString("\n")

	if line := r.entry.Line(r.last); line >= 0 && !finished {
		fmt.Fprintf(&b, "  > %s\n", strings.TrimSpace(r.entry.Pseudocode[line]))
	}
	fmt.Fprint(r.w, b.String())
}

func (r *LiveRenderer) colour(s string, i int, hot []int, finished bool) string {
	if finished {
		return r.palette.Sorted(s)
	}
	for _, k := range hot {
		if k == i {
			if r.last.Kind == sorting.KindSwap {
				return r.palette.Swap(s)
			}
			return r.palette.Compare(s)
		}
	}
	return s
}
