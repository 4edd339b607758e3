package metrics

import "github.com/san-kum/sortviz/internal/sorting"

type Metric interface {
	Name() string
	Observe(st sorting.Step)
	Value() float64
	Reset()
}

type Comparisons struct{ n int }

func NewComparisons() *Comparisons { return &Comparisons{} }

func (c *Comparisons) Name() string { return "comparisons" }

func (c *Comparisons) Observe(st sorting.Step) {
	if st.Kind == sorting.KindCompare {
		c.n++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.n) }
func (c *Comparisons) Reset()         { c.n = 0 }

type Swaps struct{ n int }

func NewSwaps() *Swaps { return &Swaps{} }

func (s *Swaps) Name() string { return "swaps" }

func (s *Swaps) Observe(st sorting.Step) {
	if st.Kind == sorting.KindSwap {
		s.n++
	}
}

func (s *Swaps) Value() float64 { return float64(s.n) }
func (s *Swaps) Reset()         { s.n = 0 }

// Passes counts outer iterations: bubble passes and selection scans.
type Passes struct{ n int }

func NewPasses() *Passes { return &Passes{} }

func (p *Passes) Name() string { return "passes" }

func (p *Passes) Observe(st sorting.Step) {
	if st.Kind == sorting.KindMarker && (st.Label == sorting.LabelPassStart || st.Label == sorting.LabelScanStart) {
		p.n++
	}
}

func (p *Passes) Value() float64 { return float64(p.n) }
func (p *Passes) Reset()         { p.n = 0 }

type Markers struct{ n int }

func NewMarkers() *Markers { return &Markers{} }

func (m *Markers) Name() string { return "markers" }

func (m *Markers) Observe(st sorting.Step) {
	if st.Kind == sorting.KindMarker {
		m.n++
	}
}

func (m *Markers) Value() float64 { return float64(m.n) }
func (m *Markers) Reset()         { m.n = 0 }

// SwapRatio is swaps per comparison.
type SwapRatio struct {
	cmp, swp int
}

func NewSwapRatio() *SwapRatio { return &SwapRatio{} }

func (r *SwapRatio) Name() string { return "swap_ratio" }

func (r *SwapRatio) Observe(st sorting.Step) {
	switch st.Kind {
	case sorting.KindCompare:
		r.cmp++
	case sorting.KindSwap:
		r.swp++
	}
}

func (r *SwapRatio) Value() float64 {
	if r.cmp == 0 {
		return 0
	}
	return float64(r.swp) / float64(r.cmp)
}

func (r *SwapRatio) Reset() { r.cmp, r.swp = 0, 0 }

// Default returns a fresh set of the standard counters.
func Default() []Metric {
	return []Metric{NewComparisons(), NewSwaps(), NewPasses(), NewMarkers(), NewSwapRatio()}
}
