package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfiggenWriteThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devtools.toml")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--output", path})
	require.NoError(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"--output", path})
	require.Error(t, cmd.Execute(), "existing file without --force")

	cmd = newRootCmd()
	cmd.SetArgs([]string{"--validate", "--input", path})
	require.NoError(t, cmd.Execute())

	require.NoError(t, os.WriteFile(path, []byte("[randstrings]\nlength = -1\n"), 0o644))
	cmd = newRootCmd()
	cmd.SetArgs([]string{"--validate", "--input", path})
	require.Error(t, cmd.Execute())
}
