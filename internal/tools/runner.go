package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"fortio.org/safecast"
)

// CommandRunner abstracts process execution for the tools.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, []byte, int32, error)
	RunAttached(ctx context.Context, name string, args ...string) (int32, error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct{}

// Run executes name with captured stdout and stderr.
func (r ExecRunner) Run(name string, args ...string) ([]byte, []byte, int32, error) {
	cmd := exec.Command(name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), stderr.Bytes(), 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), exitCode(exitErr), err
	}

	code := int32(1)
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		code = 127
	}
	return stdout.Bytes(), stderr.Bytes(), code, err
}

// RunAttached executes name with the parent's stdin, stdout and stderr and
// waits for it. A non-zero exit status is reported through the exit code
// with a nil error; only a failure to start or wait is an error.
func (r ExecRunner) RunAttached(ctx context.Context, name string, args ...string) (int32, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr), nil
	}
	return -1, fmt.Errorf("run %s: %w", name, err)
}

// exitCode narrows the platform exit status. Signalled processes report -1.
func exitCode(exitErr *exec.ExitError) int32 {
	code, err := safecast.Conv[int32](exitErr.ExitCode())
	if err != nil {
		return 1
	}
	return code
}
