package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	for _, flag := range []string{"--version", "--v"} {
		var stdout, stderr bytes.Buffer
		code := run([]string{flag}, &stdout, &stderr)
		require.Zero(t, code)
		require.Contains(t, stdout.String(), "lbt")
	}
}

func TestRun_Info(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Zero(t, run([]string{"--info"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "collision")
}

func TestRun_ConvertNotImplemented(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--convert", "step_100.bin"}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "not implemented")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run([]string{"--no-such-flag"}, &stdout, &stderr))
}

func TestRun_UnknownCollision(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--collision", "mrt"}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "unknown collision strategy")
}

func TestRun_RejectsOddNT(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--nt", "101"}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "must be even")
}

// TestRun_SmallBenchmark drives the whole binary path on a toy grid:
// geometry, recorder, driver, VTK frames and convergence chart.
func TestRun_SmallBenchmark(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"--nx", "24", "--ny", "16", "--nz", "16",
		"--nt", "8", "--interval", "4",
		"--re", "100", "--l", "8",
		"--collision", "trt",
		"--workers", "2",
		"--out", dir,
	}, &stdout, &stderr)
	require.Zero(t, code, "stderr: %s", stderr.String())

	for _, name := range []string{"parameters.json", "metrics.db", "convergence.html", "step_8.vtk", "population.bin"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "missing artifact %s", name)
	}
	require.Contains(t, stderr.String(), "done:")
}
