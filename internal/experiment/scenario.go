package experiment

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/analysis"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Scenario is a scripted list of recordings with expected outcomes.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

type Case struct {
	Name      string        `yaml:"name"`
	Algorithm string        `yaml:"algorithm"`
	Array     sorting.Array `yaml:"array"`
	Expect    Expectation   `yaml:"expect"`
}

// Expectation fields left unset are not checked.
type Expectation struct {
	Sorted      sorting.Array `yaml:"sorted,omitempty"`
	Swaps       *int          `yaml:"swaps,omitempty"`
	Comparisons *int          `yaml:"comparisons,omitempty"`
	Passes      *int          `yaml:"passes,omitempty"`
	Steps       *int          `yaml:"steps,omitempty"`
}

type CaseResult struct {
	Case      Case
	Recording sorting.Recording
	Metrics   map[string]float64
	Failures  []string
}

func (r CaseResult) Passed() bool { return len(r.Failures) == 0 }

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Cases) == 0 {
		return nil, fmt.Errorf("scenario %q has no cases", sc.Name)
	}
	return &sc, nil
}

// RunScenario records every case in order. An unknown algorithm aborts the
// run; failed expectations are collected in the results.
func RunScenario(ctx context.Context, sc *Scenario) ([]CaseResult, error) {
	results := make([]CaseResult, 0, len(sc.Cases))
	for i, c := range sc.Cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		alg, err := sorting.Lookup(c.Algorithm)
		if err != nil {
			return results, fmt.Errorf("case %d: %w", i+1, err)
		}

		rec := sorting.NewRecording(alg, c.Array)
		res := CaseResult{Case: c, Recording: rec, Metrics: metrics.Collect(rec.Steps)}
		if err := analysis.Check(rec); err != nil {
			res.Failures = append(res.Failures, err.Error())
		}
		res.Failures = append(res.Failures, c.Expect.check(rec, res.Metrics)...)
		results = append(results, res)
	}
	return results, nil
}

func (e Expectation) check(rec sorting.Recording, m map[string]float64) []string {
	var out []string
	if e.Sorted != nil && !e.Sorted.Equal(rec.Sorted) {
		out = append(out, fmt.Sprintf("sorted: expected %s, got %s", e.Sorted, rec.Sorted))
	}
	counts := []struct {
		name string
		want *int
		got  int
	}{
		{"swaps", e.Swaps, int(m["swaps"])},
		{"comparisons", e.Comparisons, int(m["comparisons"])},
		{"passes", e.Passes, int(m["passes"])},
		{"steps", e.Steps, rec.Len()},
	}
	for _, c := range counts {
		if c.want != nil && *c.want != c.got {
			out = append(out, fmt.Sprintf("%s: expected %d, got %d", c.name, *c.want, c.got))
		}
	}
	return out
}
