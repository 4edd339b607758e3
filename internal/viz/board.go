package viz

import (
	"sync"

	"github.com/san-kum/sortviz/internal/catalog"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Display is a copy of the board state at one instant.
type Display struct {
	Array    sorting.Array
	Original sorting.Array
	Sorted   sorting.Array
	Finished bool

	// Compare and Swap hold the highlighted positions, or -1.
	Compare [2]int
	Swap    [2]int

	Pass  int
	I, J  int
	Swaps int
	Steps int
	Line  int

	// SwapHistory is the running swap count after each rendered step.
	SwapHistory []float64
}

// Board implements player.Renderer for the interactive UI. All methods
// are safe to call from the player's timer goroutine.
type Board struct {
	mu    sync.Mutex
	entry *catalog.Entry
	d     Display
}

func NewBoard(entry *catalog.Entry) *Board {
	b := &Board{entry: entry}
	b.resetLocked(nil)
	return b
}

// SetEntry changes the pseudocode the line numbers refer to.
func (b *Board) SetEntry(e *catalog.Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entry = e
	b.d.Line = -1
}

func (b *Board) Entry() *catalog.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entry
}

func (b *Board) RenderIdle(a sorting.Array) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetLocked(a)
}

func (b *Board) RenderStep(st sorting.Step) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.d.Steps++
	b.d.Compare = [2]int{-1, -1}
	b.d.Swap = [2]int{-1, -1}

	switch st.Kind {
	case sorting.KindCompare:
		b.d.Compare = [2]int{st.I, st.J}
		b.d.Pass = st.Pass
		b.d.I, b.d.J = st.I, st.J
		b.d.Swaps = st.Swaps
	case sorting.KindSwap:
		if st.I < len(b.d.Array) && st.J < len(b.d.Array) {
			b.d.Array[st.I], b.d.Array[st.J] = b.d.Array[st.J], b.d.Array[st.I]
		}
		b.d.Swap = [2]int{st.I, st.J}
		b.d.Swaps++
	}
	if b.entry != nil {
		b.d.Line = b.entry.Line(st)
	}
	b.d.SwapHistory = append(b.d.SwapHistory, float64(b.d.Swaps))
}

func (b *Board) RenderFinished(a sorting.Array) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.d.Array = a.Clone()
	b.d.Sorted = a.Clone()
	b.d.Finished = true
	b.d.Compare = [2]int{-1, -1}
	b.d.Swap = [2]int{-1, -1}
	b.d.Line = -1
}

// Snapshot returns a deep copy of the display state.
func (b *Board) Snapshot() Display {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.d
	d.Array = b.d.Array.Clone()
	d.Original = b.d.Original.Clone()
	d.Sorted = b.d.Sorted.Clone()
	d.SwapHistory = append([]float64(nil), b.d.SwapHistory...)
	return d
}

func (b *Board) resetLocked(a sorting.Array) {
	b.d = Display{
		Array:    a.Clone(),
		Original: a.Clone(),
		Compare:  [2]int{-1, -1},
		Swap:     [2]int{-1, -1},
		I:        -1,
		J:        -1,
		Line:     -1,
	}
}
