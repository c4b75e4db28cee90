package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/stats"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// TestRoot_SingleSite checks the exact report for N=1, T=1.
func TestRoot_SingleSite(t *testing.T) {
	out, _, err := execute(t, "1", "1", "--seed", "1")
	require.NoError(t, err)
	assert.Equal(t,
		"mean = 1.0\n"+
			"stddev = NaN\n"+
			"95% confidence interval = NaN, NaN\n",
		out)
}

// TestRoot_ReportShape checks the three report lines for a real run.
func TestRoot_ReportShape(t *testing.T) {
	out, _, err := execute(t, "10", "20", "--seed", "5", "--workers", "2", "--strategy", "shuffle")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "mean = "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "stddev = "), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "95% confidence interval = "), lines[2])
	assert.Contains(t, lines[2], ", ")
}

// TestRoot_Reproducible verifies that the same seed prints the same report.
func TestRoot_Reproducible(t *testing.T) {
	a, _, err := execute(t, "8", "15", "--seed", "3", "--workers", "1")
	require.NoError(t, err)
	b, _, err := execute(t, "8", "15", "--seed", "3", "--workers", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRoot_BadArguments rejects non-integer, non-positive and missing args.
func TestRoot_BadArguments(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"NonIntegerN", []string{"x", "5"}},
		{"NonIntegerT", []string{"5", "2.5"}},
		{"ZeroN", []string{"0", "5"}},
		{"NegativeT", []string{"5", "--", "-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.ErrorIs(t, err, errBadArgument)
			assert.Empty(t, out)
		})
	}

	_, _, err := execute(t, "5")
	assert.Error(t, err, "T is required")
}

// TestRoot_OversizedN rejects a lattice whose site count overflows int
// before any work is done.
func TestRoot_OversizedN(t *testing.T) {
	out, _, err := execute(t, strconv.Itoa(percolation.MaxSize+1), "1")
	require.ErrorIs(t, err, stats.ErrInvalidArgument)
	assert.Empty(t, out)
}

// TestFormatDouble keeps a fractional part on integral values.
func TestFormatDouble(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{0.5, "0.5"},
		{0.5927, "0.5927"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDouble(tc.in), "formatDouble(%v)", tc.in)
	}
}

// TestRoot_BadFlags rejects unknown strategies and log levels.
func TestRoot_BadFlags(t *testing.T) {
	_, _, err := execute(t, "3", "3", "--strategy", "bogus")
	assert.Error(t, err)

	_, _, err = execute(t, "3", "3", "--log-level", "loud")
	assert.Error(t, err)
}

// TestRoot_ConfigAndMetrics loads settings from YAML, overrides one by flag
// and checks the metrics file.
func TestRoot_ConfigAndMetrics(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "out.prom")
	cfgPath := filepath.Join(dir, "percstats.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"seed: 11\n"+
			"workers: 2\n"+
			"strategy: shuffle\n"+
			"log_level: info\n"+
			"metrics_file: "+metrics+"\n"), 0o600))

	out, logs, err := execute(t, "6", "9", "--config", cfgPath, "--strategy", "rejection")
	require.NoError(t, err)
	assert.Contains(t, out, "mean = ")
	assert.Contains(t, logs, "monte carlo run complete")
	assert.Contains(t, logs, "rejection", "flag overrides file")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "percolation_trials_total 9")

	again, _, err := execute(t, "6", "9", "--seed", "11", "--strategy", "rejection")
	require.NoError(t, err)
	assert.Equal(t, again, out, "file seed behaves like --seed")
}

// TestLoadConfig_UnknownKey rejects typos in the config file.
func TestLoadConfig_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seeed: 1\n"), 0o600))

	_, err := loadConfig(path)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	cfg, err := loadConfig(empty)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}
