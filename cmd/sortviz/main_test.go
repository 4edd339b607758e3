package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/trace"
)

func parse(t *testing.T, name string, flags ...string) *cobra.Command {
	t.Helper()
	cmd, _, err := newRootCmd().Find([]string{name})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(parse(t, "record"))
	require.NoError(t, err)

	assert.Equal(t, sampleArray, cfg.Array)
	assert.Equal(t, config.DefaultAlgorithm, cfg.Algorithm)
	assert.Equal(t, 400*time.Millisecond, cfg.GetTick())
}

func TestResolveConfigFlagsOverridePreset(t *testing.T) {
	cmd := parse(t, "record", "--preset", "selection-showcase", "--array", "9, 1, x", "--speed", "2")
	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "selection", cfg.Algorithm)
	assert.Equal(t, sorting.Array{9, 1}, cfg.Array)
	assert.Equal(t, 800*time.Millisecond, cfg.GetTick())
}

func TestResolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "algorithm: selection\narray: [4, 2]\nspeed: 1\ntick: 50ms\nseed: 9\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := resolveConfig(parse(t, "record", "--config", path))
	require.NoError(t, err)
	assert.Equal(t, sorting.Array{4, 2}, cfg.Array)
	assert.Equal(t, 50*time.Millisecond, cfg.GetTick())
	assert.Equal(t, int64(9), cfg.Seed)

	cfg, err = resolveConfig(parse(t, "record", "--config", path, "--tick", "20ms", "--seed", "3"))
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, cfg.GetTick())
	assert.Equal(t, int64(3), cfg.Seed)
}

func TestResolveConfigErrors(t *testing.T) {
	_, err := resolveConfig(parse(t, "record", "--preset", "nope"))
	assert.Error(t, err)

	_, err = resolveConfig(parse(t, "record", "--array", "a,b"))
	assert.Error(t, err)

	_, err = resolveConfig(parse(t, "record", "--speed", "9"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestResolveAlgorithm(t *testing.T) {
	cfg := config.DefaultConfig()
	alg, err := resolveAlgorithm(cfg, []string{"Selection"})
	require.NoError(t, err)
	assert.Equal(t, "selection", alg.Name())

	alg, err = resolveAlgorithm(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "bubble", alg.Name())

	_, err = resolveAlgorithm(cfg, []string{"quick"})
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func execute(args ...string) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestSetupSavesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cmd := parse(t, "record", "--array", "3,1,2", "--speed", "2", "--save-config", path)

	_, alg, closeLog, err := setup(cmd, []string{"selection"}, false)
	require.NoError(t, err)
	closeLog()
	assert.Equal(t, "selection", alg.Name())

	saved, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "selection", saved.Algorithm)
	assert.Equal(t, sorting.Array{3, 1, 2}, saved.Array)
	assert.Equal(t, 2, saved.Speed)
}

func TestExportJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, execute("export-json", "selection", "--array", "4,1,3", "-o", path))

	rec, err := trace.ReadJSONFile(path, sorting.DefaultBounds())
	require.NoError(t, err)
	assert.Equal(t, "selection", rec.Algorithm)
	assert.Equal(t, sorting.Array{1, 3, 4}, rec.Sorted)
}

func TestReplayRejectsOutOfBoundsTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	data := `{"algorithm":"bubble","original":[500,-7],"sorted":[-7,500],"steps":[{"kind":"swap","i":0,"j":1}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	err := execute("replay", path)
	assert.ErrorIs(t, err, trace.ErrMalformed)
}

func TestBenchRejectsNegativeRuns(t *testing.T) {
	assert.Error(t, execute("bench", "--runs", "-1"))
}
