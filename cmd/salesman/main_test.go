package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/config"
)

func TestRun_Defaults(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--seed", "1", "--log-level", "error", "5"}, &stdout, &stderr)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout.String(), "Nodes:\n"))
	require.Contains(t, stdout.String(), "Best route (brute force):")
}

func TestRun_InvalidNodeCount(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"zero"}, &stdout, &stderr)
	require.ErrorIs(t, err, config.ErrInvalidNodeCount)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "node count")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--bogus"}, &stdout, &stderr)
	require.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--help"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "--cooling-rate")
}

func TestRun_MatrixFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- [0, 2, 3]\n- [2, 0, 4]\n- [3, 4, 0]\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--matrix", path, "--log-level", "error"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "3 stops from a cost matrix")
	require.Contains(t, stdout.String(), "Best route (brute force):\n[0, 1, 2] distance=9.00\n")
}
