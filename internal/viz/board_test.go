package viz

import (
	"testing"

	"github.com/san-kum/sortviz/internal/catalog"
	"github.com/san-kum/sortviz/internal/sorting"
)

func bubbleEntry(t *testing.T) *catalog.Entry {
	t.Helper()
	e, err := catalog.NewRegistry().Get("bubble")
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestBoardFollowsRecording(t *testing.T) {
	b := NewBoard(bubbleEntry(t))
	rec := sorting.NewRecording(sorting.Bubble{}, sorting.Array{5, 3, 8, 1})

	b.RenderIdle(rec.Original)
	for _, st := range rec.Steps {
		b.RenderStep(st)
	}

	d := b.Snapshot()
	if !d.Array.Equal(rec.Sorted) {
		t.Errorf("expected board array %s, got %s", rec.Sorted, d.Array)
	}
	if d.Swaps != 4 {
		t.Errorf("expected 4 swaps, got %d", d.Swaps)
	}
	if d.Steps != rec.Len() || len(d.SwapHistory) != rec.Len() {
		t.Errorf("expected %d steps, got %d (history %d)", rec.Len(), d.Steps, len(d.SwapHistory))
	}
	if d.Finished {
		t.Error("not finished until RenderFinished")
	}

	b.RenderFinished(rec.Sorted)
	d = b.Snapshot()
	if !d.Finished || !d.Sorted.Equal(rec.Sorted) || d.Line != -1 {
		t.Errorf("unexpected finished state %+v", d)
	}
}

func TestBoardHighlights(t *testing.T) {
	b := NewBoard(bubbleEntry(t))
	b.RenderIdle(sorting.Array{2, 1})

	b.RenderStep(sorting.Compare(0, 1, 0, 0))
	d := b.Snapshot()
	if d.Compare != [2]int{0, 1} || d.Swap != [2]int{-1, -1} {
		t.Errorf("expected compare highlight, got %v %v", d.Compare, d.Swap)
	}
	if d.Line != 2 {
		t.Errorf("expected pseudocode line 2, got %d", d.Line)
	}

	b.RenderStep(sorting.Swap(0, 1))
	d = b.Snapshot()
	if d.Swap != [2]int{0, 1} || d.Compare != [2]int{-1, -1} {
		t.Errorf("expected swap highlight, got %v %v", d.Compare, d.Swap)
	}
	if !d.Array.Equal(sorting.Array{1, 2}) {
		t.Errorf("expected swapped array, got %s", d.Array)
	}
	if !d.Original.Equal(sorting.Array{2, 1}) {
		t.Errorf("original must not change, got %s", d.Original)
	}
}

func TestBoardIdleClears(t *testing.T) {
	b := NewBoard(bubbleEntry(t))
	b.RenderIdle(sorting.Array{3, 2, 1})
	b.RenderStep(sorting.Compare(0, 1, 0, 0))
	b.RenderFinished(sorting.Array{1, 2, 3})

	b.RenderIdle(sorting.Array{3, 2, 1})
	d := b.Snapshot()
	if d.Finished || d.Steps != 0 || d.Line != -1 || len(d.SwapHistory) != 0 {
		t.Errorf("expected clean idle state, got %+v", d)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	b := NewBoard(bubbleEntry(t))
	b.RenderIdle(sorting.Array{1, 2})
	d := b.Snapshot()
	d.Array[0] = 99
	if b.Snapshot().Array[0] != 1 {
		t.Error("snapshot shares memory with the board")
	}
}
