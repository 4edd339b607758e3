package player

import "github.com/san-kum/sortviz/internal/sorting"

// Renderer mirrors playback into a display.
type Renderer interface {
	// RenderStep applies the visual effect of one step. Highlights from the
	// previous step are expected to be cleared.
	RenderStep(step sorting.Step)
	// RenderIdle shows arr without highlights and clears all counters.
	RenderIdle(arr sorting.Array)
	// RenderFinished shows the terminal sorted state.
	RenderFinished(sorted sorting.Array)
}

// NopRenderer discards everything.
type NopRenderer struct{}

func (NopRenderer) RenderStep(sorting.Step)      {}
func (NopRenderer) RenderIdle(sorting.Array)     {}
func (NopRenderer) RenderFinished(sorting.Array) {}
