package testrunner

import (
	"context"
	"fmt"
	"io"

	"github.com/danmuck/devtools/internal/tools"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Dir string
	// Memcheck asks for every test to run under MemcheckTool. It only takes
	// effect when MemcheckAvailable was established by ProbeMemcheck.
	Memcheck          bool
	MemcheckTool      string
	MemcheckAvailable bool
	Color             bool
}

func DefaultOptions() Options {
	return Options{
		Dir:          DefaultDir,
		MemcheckTool: DefaultMemcheckTool,
	}
}

type Summary struct {
	Run       int
	Succeeded int
}

func (s Summary) Failed() int {
	return s.Run - s.Succeeded
}

func (s Summary) String() string {
	return fmt.Sprintf("%d out of %d Tests Succeeded", s.Succeeded, s.Run)
}

type Runner struct {
	Out     io.Writer
	Exec    tools.CommandRunner
	Options Options

	passed *color.Color
	failed *color.Color
}

func NewRunner(out io.Writer, exec tools.CommandRunner, opts Options) *Runner {
	r := &Runner{
		Out:     out,
		Exec:    exec,
		Options: opts,
		passed:  color.New(color.FgGreen),
		failed:  color.New(color.FgRed),
	}
	if opts.Color {
		r.passed.EnableColor()
		r.failed.EnableColor()
	} else {
		r.passed.DisableColor()
		r.failed.DisableColor()
	}
	return r
}

// Run executes every discovered test in listing order and prints the
// running status and final summary. Test failures are counted, not
// returned; an error means the run itself was aborted.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	paths, err := Discover(r.Options.Dir)
	if err != nil {
		return summary, err
	}
	log.Debug().Str("dir", r.Options.Dir).Int("tests", len(paths)).Msg("discovered tests")

	memcheck := r.memcheckEnabled()
	for _, path := range paths {
		summary.Run++
		if _, err := fmt.Fprintf(r.Out, "Running Test: %s\n", path); err != nil {
			return summary, err
		}

		code, err := r.exec(ctx, path, memcheck)
		if err != nil {
			return summary, fmt.Errorf("test %s: %w", path, err)
		}

		if code == 0 {
			summary.Succeeded++
			_, err = fmt.Fprintf(r.Out, "Test %s %s\n", path, r.passed.Sprint("Passed"))
		} else {
			log.Debug().Str("path", path).Int32("code", code).Msg("test failed")
			_, err = fmt.Fprintf(r.Out, "Test %s %s\n", path, r.failed.Sprint("Failed"))
		}
		if err != nil {
			return summary, err
		}
	}

	if _, err := fmt.Fprintln(r.Out, summary.String()); err != nil {
		return summary, err
	}
	return summary, nil
}

func (r *Runner) memcheckEnabled() bool {
	if !r.Options.Memcheck {
		return false
	}
	if !r.Options.MemcheckAvailable {
		log.Warn().Str("tool", r.Options.MemcheckTool).Msg("memcheck requested but tool unavailable; running tests directly")
		return false
	}
	return true
}

func (r *Runner) exec(ctx context.Context, path string, memcheck bool) (int32, error) {
	if memcheck {
		return r.Exec.RunAttached(ctx, r.Options.MemcheckTool, memcheckArgs(path)...)
	}
	return r.Exec.RunAttached(ctx, path)
}
