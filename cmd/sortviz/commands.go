package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/analysis"
	"github.com/san-kum/sortviz/internal/catalog"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, alg, closeLog, err := setup(cmd, args, true)
	if err != nil {
		return err
	}
	defer closeLog()

	view, err := catalog.ParseView(cfg.CodeView)
	if err != nil {
		return err
	}

	reg := catalog.NewRegistry()
	board := viz.NewBoard(reg.For(alg))
	p := player.New(board, player.WithSpeed(cfg.GetTick()))
	s := session.New(p, alg, cfg.Array,
		session.WithBounds(cfg.Bounds),
		session.WithRand(rand.New(rand.NewSource(cfg.Seed))),
	)
	slog.Info("starting tui", "algorithm", alg.Name(), "array", cfg.Array.String(), "tick", cfg.GetTick())
	return viz.Run(viz.NewModel(s, board, reg, viz.WithTheme(cfg.Theme), viz.WithCodeView(view)))
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, alg, closeLog, err := setup(cmd, args, false)
	if err != nil {
		return err
	}
	defer closeLog()

	rec := sorting.NewRecording(alg, cfg.Array)
	pal := tui.NewPalette(tui.ColorEnabled(os.Stdout))

	fmt.Printf("algorithm: %s\n", rec.Algorithm)
	fmt.Printf("input:     %s\n\n", rec.Original)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tI\tJ\tPASS\tSWAPS\tSTEP")
	for idx, st := range rec.Steps {
		i, j, pass, swaps := "", "", "", ""
		if st.Indexed() {
			i, j = fmt.Sprint(st.I), fmt.Sprint(st.J)
		}
		if st.Kind == sorting.KindCompare {
			pass, swaps = fmt.Sprint(st.Pass), fmt.Sprint(st.Swaps)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", idx, i, j, pass, swaps, describe(st, pal))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	m := metrics.Collect(rec.Steps)
	fmt.Printf("\nsorted:      %s\n", pal.Sorted(rec.Sorted.String()))
	fmt.Printf("steps:       %d\n", rec.Len())
	fmt.Printf("comparisons: %.0f\n", m["comparisons"])
	fmt.Printf("swaps:       %.0f\n", m["swaps"])
	fmt.Printf("passes:      %.0f\n", m["passes"])
	fmt.Printf("inversions:  %d\n", analysis.Inversions(rec.Original))
	return nil
}

func describe(st sorting.Step, pal tui.Palette) string {
	switch st.Kind {
	case sorting.KindCompare:
		return pal.Compare("compare")
	case sorting.KindSwap:
		return pal.Swap("swap")
	}
	return pal.Dim(st.Label.String())
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, alg, closeLog, err := setup(cmd, args, false)
	if err != nil {
		return err
	}
	defer closeLog()

	return playHeadless(cmd.Context(), sorting.NewRecording(alg, cfg.Array), cfg.GetTick())
}

// playHeadless drives a real-clock player until the recording finishes or
// the user interrupts.
func playHeadless(ctx context.Context, rec sorting.Recording, tick time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	alg, err := sorting.Lookup(rec.Algorithm)
	if err != nil {
		return err
	}
	r := tui.NewLiveRenderer(os.Stdout, catalog.NewRegistry().For(alg), tui.ColorEnabled(os.Stdout))
	r.Start()
	defer r.Stop()

	p := player.New(r, player.WithSpeed(tick))
	p.Load(rec)
	p.Play()

	select {
	case <-r.Done():
		return nil
	case <-ctx.Done():
		p.Pause()
		return ctx.Err()
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, _, closeLog, err := setup(cmd, nil, false)
	if err != nil {
		return err
	}
	defer closeLog()

	algs := sorting.Algorithms()
	if len(args) > 0 {
		algs = algs[:0]
		for _, name := range args {
			alg, err := sorting.Lookup(name)
			if err != nil {
				return err
			}
			algs = append(algs, alg)
		}
	}

	fmt.Printf("input: %s\n\n", cfg.Array)
	for _, alg := range algs {
		steps, _ := sorting.Record(alg, cfg.Array)
		if len(steps) < 2 {
			fmt.Printf("%s: %d steps, nothing to plot\n\n", alg.Name(), len(steps))
			continue
		}
		for _, m := range []metrics.Metric{metrics.NewSwaps(), metrics.NewComparisons()} {
			graph := asciigraph.Plot(metrics.Series(steps, m),
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.Caption(fmt.Sprintf("%s: cumulative %s per step", alg.Name(), m.Name())),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}
	return nil
}

// openOutput returns stdout unless -o names a file.
func openOutput() (io.Writer, func() error, error) {
	if output == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func runExport(cmd *cobra.Command, args []string, write func(io.Writer, sorting.Recording) error) error {
	cfg, alg, closeLog, err := setup(cmd, args, false)
	if err != nil {
		return err
	}
	defer closeLog()

	rec := sorting.NewRecording(alg, cfg.Array)
	w, closeOut, err := openOutput()
	if err != nil {
		return err
	}
	if err := write(w, rec); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	if output != "" {
		slog.Info("exported", "file", output, "algorithm", rec.Algorithm, "steps", rec.Len())
	}
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	if output == "" {
		return runExport(cmd, args, trace.WriteJSON)
	}
	cfg, alg, closeLog, err := setup(cmd, args, false)
	if err != nil {
		return err
	}
	defer closeLog()

	rec := sorting.NewRecording(alg, cfg.Array)
	if err := trace.WriteJSONFile(output, rec); err != nil {
		return err
	}
	slog.Info("exported", "file", output, "algorithm", rec.Algorithm, "steps", rec.Len())
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	return runExport(cmd, args, trace.WriteCSV)
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	return runExport(cmd, args, func(w io.Writer, rec sorting.Recording) error {
		svg, err := export.RecordingSVG(rec, export.DefaultOptions())
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, svg)
		return err
	})
}

func runReplay(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	rec, err := trace.ReadJSONFile(args[0], cfg.Bounds)
	if err != nil {
		return fmt.Errorf("failed to load trace: %w", err)
	}
	if err := analysis.Check(rec); err != nil {
		return fmt.Errorf("trace does not sort its input: %w", err)
	}
	slog.Info("trace loaded", "algorithm", rec.Algorithm, "steps", rec.Len())

	return playHeadless(cmd.Context(), rec, cfg.GetTick())
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, alg, closeLog, err := setup(cmd, args, false)
	if err != nil {
		return err
	}
	defer closeLog()

	bounds := cfg.Bounds
	if length > bounds.MaxLen {
		bounds.MaxLen = length
	}

	fmt.Printf("benchmarking %s: %d arrays of length %d\n\n", alg.Name(), runs, length)
	start := time.Now()
	results, err := experiment.NewEnsemble(alg, runs, length, cfg.Seed).
		WithBounds(bounds).
		WithWorkers(workers).
		Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	summary := experiment.Summarize(results)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMIN\tMEAN\tMAX")
	for _, name := range experiment.MetricNames(summary) {
		s := summary[name]
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", name, s.Min, s.Mean, s.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	failures := experiment.Failures(results)
	fmt.Printf("\n%d runs in %v, %d failed\n", len(results), elapsed.Round(time.Millisecond), len(failures))
	for _, f := range failures {
		slog.Error("property check failed", "seed", f.Seed, "input", f.Recording.Original.String(), "err", f.Err)
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d runs failed", len(failures), len(results))
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	sc, err := experiment.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := experiment.RunScenario(ctx, sc)
	if err != nil {
		return err
	}

	pal := tui.NewPalette(tui.ColorEnabled(os.Stdout))
	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	failed := 0
	for i, r := range results {
		name := r.Case.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		if r.Passed() {
			fmt.Printf("  %s %s (%s %s)\n", pal.Sorted("PASS"), name, r.Recording.Algorithm, r.Recording.Original)
			continue
		}
		failed++
		fmt.Printf("  %s %s (%s %s)\n", pal.Err("FAIL"), name, r.Recording.Algorithm, r.Recording.Original)
		for _, f := range r.Failures {
			fmt.Printf("       %s\n", f)
		}
	}
	fmt.Printf("\n%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d case(s) failed", failed)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGORITHM\tARRAY")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, p.Algorithm, p.Array)
	}
	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := catalog.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, alg := range sorting.Algorithms() {
		fmt.Fprintf(w, "%s\t%s\n", alg.Name(), reg.For(alg).Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\ncode views: %s\n", strings.Join(viewNames(), ", "))
	return nil
}

func viewNames() []string {
	var names []string
	for _, v := range catalog.Views() {
		names = append(names, string(v))
	}
	return names
}
