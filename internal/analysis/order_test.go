package analysis

import (
	"errors"
	"testing"

	"github.com/san-kum/sortviz/internal/sorting"
)

func TestInversions(t *testing.T) {
	tests := []struct {
		name string
		in   sorting.Array
		want int
	}{
		{"empty", sorting.Array{}, 0},
		{"sorted", sorting.Array{1, 2, 3, 4}, 0},
		{"reversed", sorting.Array{4, 3, 2, 1}, 6},
		{"duplicates", sorting.Array{2, 2, 2}, 0},
		{"sample", sorting.Array{5, 3, 8, 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inversions(tt.in); got != tt.want {
				t.Errorf("expected %d inversions, got %d", tt.want, got)
			}
		})
	}
}

func TestSamePermutation(t *testing.T) {
	if !SamePermutation(sorting.Array{3, 1, 3}, sorting.Array{1, 3, 3}) {
		t.Error("expected permutation")
	}
	if SamePermutation(sorting.Array{3, 1, 3}, sorting.Array{1, 1, 3}) {
		t.Error("expected different multisets")
	}
	if SamePermutation(sorting.Array{1}, sorting.Array{1, 1}) {
		t.Error("expected length mismatch to fail")
	}
}

func TestCheck(t *testing.T) {
	for _, alg := range sorting.Algorithms() {
		rec := sorting.NewRecording(alg, sorting.Array{9, 4, 7, 1, 1, 3})
		if err := Check(rec); err != nil {
			t.Errorf("%s: %v", alg.Name(), err)
		}
	}
}

func TestCheck_Tampered(t *testing.T) {
	rec := sorting.NewRecording(sorting.Bubble{}, sorting.Array{3, 2, 1})
	rec.Sorted = sorting.Array{1, 3, 2}
	if err := Check(rec); !errors.Is(err, ErrReplayMismatch) {
		t.Errorf("expected replay mismatch, got %v", err)
	}

	rec = sorting.NewRecording(sorting.Bubble{}, sorting.Array{3, 2, 1})
	rec.Steps = append(rec.Steps, sorting.Swap(0, 7))
	if err := Check(rec); !errors.Is(err, sorting.ErrIndexOutOfRange) {
		t.Errorf("expected index error, got %v", err)
	}
}
