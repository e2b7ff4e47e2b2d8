package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/salesman/config"
	"github.com/stretchr/testify/require"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvConfig, config.EnvLogLevel, config.EnvAlgorithm,
		config.EnvTwoOptEps, config.EnvTwoOptMaxPasses,
		config.EnvGeneratorSeed, config.EnvReportPath,
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)
	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
	require.Equal(t, "info", c.Logging.Level)
	require.Equal(t, "mst", c.Solver.Algorithm)
	require.Equal(t, 1e-12, c.Solver.TwoOptEps)
}

func TestLoad_EnvOverrides(t *testing.T) {
	unsetAll(t)
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvAlgorithm, "nn")
	t.Setenv(config.EnvTwoOptEps, "0.001")
	t.Setenv(config.EnvTwoOptMaxPasses, "3")
	t.Setenv(config.EnvGeneratorSeed, "42")
	t.Setenv(config.EnvReportPath, "out.json")

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "debug", c.Logging.Level)
	require.Equal(t, "nn", c.Solver.Algorithm)
	require.Equal(t, 0.001, c.Solver.TwoOptEps)
	require.Equal(t, 3, c.Solver.TwoOptMaxPasses)
	require.Equal(t, uint64(42), c.Generator.Seed)
	require.Equal(t, "out.json", c.Output.Report)
}

func TestLoad_BadEnvNumbersIgnored(t *testing.T) {
	unsetAll(t)
	t.Setenv(config.EnvTwoOptEps, "-1")
	t.Setenv(config.EnvTwoOptMaxPasses, "many")

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.Default().Solver, c.Solver)
}

func TestLoadFile_YAML(t *testing.T) {
	unsetAll(t)
	path := filepath.Join(t.TempDir(), "salesman.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: warn
  pretty: true
solver:
  algorithm: dijkstra
  two_opt_max_passes: 5
generator:
  count: 12
`), 0o644))

	c, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "warn", c.Logging.Level)
	require.True(t, c.Logging.Pretty)
	require.Equal(t, "dijkstra", c.Solver.Algorithm)
	require.Equal(t, 5, c.Solver.TwoOptMaxPasses)
	require.Equal(t, 1e-12, c.Solver.TwoOptEps, "unset keys keep defaults")
	require.Equal(t, 12, c.Generator.Count)

	// Env still wins over the file.
	t.Setenv(config.EnvConfig, path)
	t.Setenv(config.EnvAlgorithm, "mst")
	c, err = config.Load()
	require.NoError(t, err)
	require.Equal(t, "mst", c.Solver.Algorithm)
}

func TestLoadFile_Errors(t *testing.T) {
	unsetAll(t)
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrReadConfig)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("solver: [1, 2"), 0o644))
	_, err = config.LoadFile(bad)
	require.ErrorIs(t, err, config.ErrReadConfig)

	neg := filepath.Join(t.TempDir(), "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("solver:\n  two_opt_eps: -0.5\n"), 0o644))
	_, err = config.LoadFile(neg)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestMarshal_RoundTripsThroughLoadFile(t *testing.T) {
	unsetAll(t)
	want := config.Default()
	want.Solver.Algorithm = "nn"
	b, err := want.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	got, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
