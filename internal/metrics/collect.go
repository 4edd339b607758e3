package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Collect resets ms, feeds every step of seq through them and returns the
// final values keyed by metric name.
func Collect(seq sorting.Sequence, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, st := range seq {
		for _, m := range ms {
			m.Observe(st)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Series returns the running value of m after each step of seq.
func Series(seq sorting.Sequence, m Metric) []float64 {
	m.Reset()
	out := make([]float64, len(seq))
	for i, st := range seq {
		m.Observe(st)
		out[i] = m.Value()
	}
	return out
}

// Stats is a summary over many runs of one metric.
type Stats struct {
	Min, Max, Mean float64
	N              int
}

func Summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{Min: values[0], Max: values[0], N: len(values)}
	sum := 0.0
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))
	return s
}
