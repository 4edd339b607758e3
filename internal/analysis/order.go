package analysis

import (
	"errors"
	"fmt"

	"github.com/san-kum/sortviz/internal/sorting"
)

var (
	ErrNotSorted      = errors.New("analysis: result is not non-decreasing")
	ErrNotPermutation = errors.New("analysis: result is not a permutation of the input")
	ErrReplayMismatch = errors.New("analysis: replayed steps do not reproduce the sorted result")
)

// Inversions counts pairs i < j with a[i] > a[j].
func Inversions(a sorting.Array) int {
	n := 0
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			if a[i] > a[j] {
				n++
			}
		}
	}
	return n
}

func IsSorted(a sorting.Array) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}

// SamePermutation reports whether a and b hold the same multiset of values.
func SamePermutation(a, b sorting.Array) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[sorting.Value]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// Check verifies a recording: its steps are in range, replaying them
// reproduces Sorted, and Sorted is an ordered permutation of Original.
func Check(rec sorting.Recording) error {
	replayed, err := sorting.Replay(rec.Steps, rec.Original)
	if err != nil {
		return err
	}
	if !replayed.Equal(rec.Sorted) {
		return fmt.Errorf("%w: got %s, want %s", ErrReplayMismatch, replayed, rec.Sorted)
	}
	if !SamePermutation(rec.Original, rec.Sorted) {
		return fmt.Errorf("%w: %s vs %s", ErrNotPermutation, rec.Original, rec.Sorted)
	}
	if !IsSorted(rec.Sorted) {
		return fmt.Errorf("%w: %s", ErrNotSorted, rec.Sorted)
	}
	return nil
}
