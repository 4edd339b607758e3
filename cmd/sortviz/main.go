package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/sorting"
)

var (
	arrayText  string
	preset     string
	configFile string
	saveConfig string
	seed       int64
	speed      int
	tick       time.Duration
	logLevel   string
	logFile    string
	output     string
	// bench
	runs    int
	length  int
	workers int
)

// sampleArray is shown when neither flags, preset nor config name an array.
var sampleArray = sorting.Array{5, 3, 8, 1}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "step-by-step sorting algorithm visualizer",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&arrayText, "array", "", "comma-separated values to sort")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&saveConfig, "save-config", "", "write the resolved configuration to this file")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	pf.IntVar(&speed, "speed", config.DefaultSpeed, "playback speed multiplier (1-4)")
	pf.DurationVar(&tick, "tick", 0, "explicit tick duration, overrides --speed")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	recordCmd := &cobra.Command{
		Use:   "record [algorithm]",
		Short: "print the step trace of a recording",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecord,
	}

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play a recording to completion in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm...]",
		Short: "plot cumulative swaps and comparisons per step",
		RunE:  runPlot,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export a recording as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportJSON,
	}
	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export a recording as csv",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCSV,
	}
	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "export the frames of a recording as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportSVG,
	}
	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd, exportSVGCmd} {
		c.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	}

	replayCmd := &cobra.Command{
		Use:   "replay [trace.json]",
		Short: "validate a json trace and play it back",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "record many random arrays and check every result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 1000, "number of random arrays")
	benchCmd.Flags().IntVar(&length, "length", input.DefaultRandomLen, "array length")
	benchCmd.Flags().IntVar(&workers, "workers", 8, "concurrent workers")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "run a yaml scenario and check its expectations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	rootCmd.AddCommand(recordCmd, playCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd,
		replayCmd, benchCmd, scenarioCmd, presetsCmd, algorithmsCmd)
	return rootCmd
}

// setupLogger installs the default slog logger. With tui set and no log
// file, logs are discarded so they do not tear the screen.
func setupLogger(tui bool) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case tui:
		w = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

// resolveConfig layers preset, config file and flags, in that order. Flags
// only override when set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" && loaded.Array == nil {
			loaded.Array = cfg.Array
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("array") {
		arr, notice, ok := input.Parse(arrayText, cfg.Bounds)
		if !ok {
			return nil, fmt.Errorf("--array %q contains no valid numbers", arrayText)
		}
		if !notice.Empty() {
			slog.Warn("array input repaired", "notice", notice.String())
		}
		cfg.Array = arr
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("tick") {
		cfg.Tick = tick
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cfg.Array == nil {
		cfg.Array = sampleArray.Clone()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveAlgorithm prefers the positional argument over the config.
func resolveAlgorithm(cfg *config.Config, args []string) (sorting.Algorithm, error) {
	if len(args) > 0 {
		return sorting.Lookup(args[0])
	}
	return cfg.GetAlgorithm(), nil
}

// persistConfig writes cfg when --save-config is set. The positional
// algorithm, if any, is what gets saved.
func persistConfig(cfg *config.Config, alg sorting.Algorithm) error {
	if saveConfig == "" {
		return nil
	}
	out := *cfg
	out.Algorithm = alg.Name()
	if err := config.Save(saveConfig, &out); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	slog.Info("config saved", "file", saveConfig)
	return nil
}

// setup is the common preamble of every command that records something.
func setup(cmd *cobra.Command, args []string, tui bool) (*config.Config, sorting.Algorithm, func(), error) {
	closeLog, err := setupLogger(tui)
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		closeLog()
		return nil, nil, nil, err
	}
	alg, err := resolveAlgorithm(cfg, args)
	if err != nil {
		closeLog()
		return nil, nil, nil, err
	}
	if err := persistConfig(cfg, alg); err != nil {
		closeLog()
		return nil, nil, nil, err
	}
	return cfg, alg, closeLog, nil
}
