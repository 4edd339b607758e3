// Package experiment runs recordings in bulk: randomized ensembles that
// check the sorting properties on every run, and YAML scenarios with
// expected outcomes.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/san-kum/sortviz/internal/analysis"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

var (
	ErrSwapCount = errors.New("experiment: swap count differs from inversion count")
	ErrRunCount  = errors.New("experiment: invalid ensemble size")
)

type Ensemble struct {
	alg     sorting.Algorithm
	numRuns int
	length  int
	seed    int64
	bounds  sorting.Bounds
	workers int
}

func NewEnsemble(alg sorting.Algorithm, numRuns, length int, seed int64) *Ensemble {
	return &Ensemble{
		alg:     alg,
		numRuns: numRuns,
		length:  length,
		seed:    seed,
		bounds:  sorting.DefaultBounds(),
		workers: 8,
	}
}

func (e *Ensemble) WithBounds(b sorting.Bounds) *Ensemble {
	e.bounds = b
	return e
}

func (e *Ensemble) WithWorkers(n int) *Ensemble {
	if n > 0 {
		e.workers = n
	}
	return e
}

// Run is one randomized recording and its verdict.
type Run struct {
	Seed      int64
	Recording sorting.Recording
	Metrics   map[string]float64
	Err       error
}

// Run records numRuns random arrays concurrently. Run i uses seed+i, so
// results are reproducible regardless of scheduling. Property failures are
// reported per run; the returned error is set when ctx is cancelled or the
// run count or length is negative.
func (e *Ensemble) Run(ctx context.Context) ([]Run, error) {
	if e.numRuns < 0 {
		return nil, fmt.Errorf("%w: %d runs", ErrRunCount, e.numRuns)
	}
	if e.length < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrRunCount, e.length)
	}
	results := make([]Run, e.numRuns)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = e.one(e.seed + int64(idx))
			}
		}()
	}

	var err error
feed:
	for i := 0; i < e.numRuns; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Ensemble) one(seed int64) Run {
	rng := rand.New(rand.NewSource(seed))
	arr := input.Random(rng, e.length, e.bounds)
	rec := sorting.NewRecording(e.alg, arr)

	r := Run{Seed: seed, Recording: rec, Metrics: metrics.Collect(rec.Steps)}
	if err := analysis.Check(rec); err != nil {
		r.Err = err
		return r
	}
	if _, ok := e.alg.(sorting.Bubble); ok {
		inv := analysis.Inversions(arr)
		if int(r.Metrics["swaps"]) != inv {
			r.Err = fmt.Errorf("%w: %v swaps, %d inversions", ErrSwapCount, r.Metrics["swaps"], inv)
		}
	}
	return r
}

// Failures returns the runs whose property checks failed.
func Failures(runs []Run) []Run {
	var out []Run
	for _, r := range runs {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Summarize aggregates every metric over runs, keyed by metric name.
func Summarize(runs []Run) map[string]metrics.Stats {
	values := make(map[string][]float64)
	for _, r := range runs {
		for name, v := range r.Metrics {
			values[name] = append(values[name], v)
		}
	}
	out := make(map[string]metrics.Stats, len(values))
	for name, vs := range values {
		out[name] = metrics.Summarize(vs)
	}
	return out
}

// MetricNames returns the keys of a summary in sorted order.
func MetricNames(summary map[string]metrics.Stats) []string {
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
