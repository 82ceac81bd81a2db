//go:build unix

package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestExecRunnerRunCapturesOutput(t *testing.T) {
	path := writeScript(t, "echo out; echo err >&2; exit 3")

	stdout, stderr, code, err := ExecRunner{}.Run(path)
	require.Error(t, err)
	assert.Equal(t, int32(3), code)
	assert.Equal(t, "out\n", string(stdout))
	assert.Equal(t, "err\n", string(stderr))
}

func TestExecRunnerRunMissingBinary(t *testing.T) {
	_, _, code, err := ExecRunner{}.Run(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, int32(127), code)
}

func TestExecRunnerRunAttachedExitCodes(t *testing.T) {
	ctx := context.Background()

	code, err := ExecRunner{}.RunAttached(ctx, writeScript(t, "exit 0"))
	require.NoError(t, err)
	assert.Equal(t, int32(0), code)

	code, err = ExecRunner{}.RunAttached(ctx, writeScript(t, "exit 7"))
	require.NoError(t, err)
	assert.Equal(t, int32(7), code)
}

func TestExecRunnerRunAttachedSpawnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-exec")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644))

	_, err := ExecRunner{}.RunAttached(context.Background(), path)
	require.Error(t, err)
}
