//go:build unix

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/devtools/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTest(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(tools.ExecRunner{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunTestsDefaultDir(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)
	bin := filepath.Join("tests", "bin")
	require.NoError(t, os.MkdirAll(bin, 0o755))
	writeTest(t, bin, "ok", "exit 0")

	out, err := execute(t)
	require.NoError(t, err)
	want := "Running Test: tests/bin/ok\nTest tests/bin/ok Passed\n1 out of 1 Tests Succeeded\n"
	assert.Equal(t, want, out)
}

func TestRunTestsFailuresDoNotFailTheRun(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	writeTest(t, dir, "one", "exit 0")
	writeTest(t, dir, "two", "exit 1")
	writeTest(t, dir, "three", "exit 0")

	out, err := execute(t, "--dir", dir, "--color", "off")
	require.NoError(t, err)
	assert.Contains(t, out, "Test "+filepath.Join(dir, "two")+" Failed\n")
	assert.Contains(t, out, "2 out of 3 Tests Succeeded\n")
}

func TestRunTestsConfigDir(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)
	require.NoError(t, os.MkdirAll("suite", 0o755))
	writeTest(t, "suite", "bad", "exit 2")
	require.NoError(t, os.WriteFile("devtools.toml", []byte("[runtests]\ndir = \"suite\"\n"), 0o644))

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Test suite/bad Failed\n")
	assert.Contains(t, out, "0 out of 1 Tests Succeeded\n")
}

func TestRunTestsErrors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t)
	require.Error(t, err, "missing tests/bin")

	_, err = execute(t, "extra")
	require.Error(t, err)

	_, err = execute(t, "--dir", t.TempDir(), "--color", "sometimes")
	require.Error(t, err)
}

func TestColorEnabled(t *testing.T) {
	on, err := colorEnabled("on", &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, on)

	auto, err := colorEnabled("auto", &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, auto)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}
