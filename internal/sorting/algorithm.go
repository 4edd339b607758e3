package sorting

import (
	"fmt"
	"strings"
)

// Algorithm is a comparison sort that narrates its own execution.
// Steps sorts work in place and returns the steps a viewer needs to follow it.
type Algorithm interface {
	Name() string
	Steps(work Array) Sequence
}

// Bubble is adaptive bubble sort: it stops after the first pass without swaps.
type Bubble struct{}

func (Bubble) Name() string { return "bubble" }

// Steps runs at most n-1 passes, each bracketed by PassStart and PassEnd
// markers, with a SwapDecision marker before every swap.
func (Bubble) Steps(a Array) Sequence {
	n := len(a)
	var steps Sequence
	swaps := 0
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		steps = append(steps, Marker(LabelPassStart))
		for k := 0; k < n-pass-1; k++ {
			steps = append(steps, Marker(LabelCompare), Compare(k, k+1, pass, swaps))
			if a[k] > a[k+1] {
				steps = append(steps, Marker(LabelSwapDecision), Swap(k, k+1))
				a[k], a[k+1] = a[k+1], a[k]
				swaps++
				swapped = true
				steps = append(steps, Marker(LabelSwapDone))
			}
		}
		steps = append(steps, Marker(LabelPassEnd))
		if !swapped {
			break
		}
	}
	return steps
}

// Selection is selection sort. A position that already holds its minimum
// produces no swap step.
type Selection struct{}

func (Selection) Name() string { return "selection" }

// Steps emits a ScanStart marker per position and a NewMinimum marker
// whenever the scan finds a smaller value.
func (Selection) Steps(a Array) Sequence {
	n := len(a)
	var steps Sequence
	swaps := 0
	for i := 0; i < n; i++ {
		steps = append(steps, Marker(LabelScanStart))
		minIdx := i
		for j := i + 1; j < n; j++ {
			steps = append(steps, Marker(LabelCompare), Compare(i, j, i, swaps))
			if a[j] < a[minIdx] {
				steps = append(steps, Marker(LabelNewMinimum))
				minIdx = j
			}
		}
		if minIdx != i {
			steps = append(steps, Marker(LabelSwapDecision), Swap(i, minIdx))
			a[i], a[minIdx] = a[minIdx], a[i]
			swaps++
		}
	}
	return steps
}

var algorithms = []Algorithm{Bubble{}, Selection{}}

// Algorithms returns the supported algorithms in display order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Names returns the algorithm names in display order.
func Names() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.Name()
	}
	return names
}

// Lookup finds an algorithm by case-insensitive name.
func Lookup(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if strings.EqualFold(a.Name(), strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

// Next returns the algorithm after alg in display order, wrapping around.
func Next(alg Algorithm) Algorithm {
	for i, a := range algorithms {
		if a.Name() == alg.Name() {
			return algorithms[(i+1)%len(algorithms)]
		}
	}
	return algorithms[0]
}
