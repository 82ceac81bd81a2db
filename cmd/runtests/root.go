package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/devtools/internal/config"
	"github.com/danmuck/devtools/internal/testrunner"
	"github.com/danmuck/devtools/internal/tools"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath   string
	dir          string
	memcheck     bool
	memcheckTool string
	color        string
}

func newRootCmd(exec tools.CommandRunner) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "runtests",
		Short: "Run every executable in the test directory and report results",
		Long: `runtests executes each executable regular file found directly inside the
test directory, one at a time, and prints a pass/fail line per test and a
final summary. Its own exit status does not reflect test failures.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, exec, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default devtools.toml if present)")
	cmd.Flags().StringVar(&opts.dir, "dir", testrunner.DefaultDir, "directory holding test executables")
	cmd.Flags().BoolVar(&opts.memcheck, "memcheck", false, "run each test under the memory-checking tool when it is available")
	cmd.Flags().StringVar(&opts.memcheckTool, "memcheck-tool", testrunner.DefaultMemcheckTool, "memory-checking tool")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "colorize results (auto|on|off)")
	return cmd
}

func run(cmd *cobra.Command, exec tools.CommandRunner, opts options) error {
	runOpts, err := resolve(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	runOpts.Color, err = colorEnabled(opts.color, out)
	if err != nil {
		return err
	}
	runOpts.MemcheckAvailable = testrunner.ProbeMemcheck(exec, runOpts.MemcheckTool)

	summary, err := testrunner.NewRunner(out, exec, runOpts).Run(context.Background())
	if err != nil {
		return err
	}
	log.Debug().Int("run", summary.Run).Int("failed", summary.Failed()).Msg("test run complete")
	return nil
}

// resolve layers defaults, the config file and the command line.
func resolve(cmd *cobra.Command, opts options) (testrunner.Options, error) {
	full, err := config.Load(opts.configPath)
	if err != nil {
		return testrunner.Options{}, err
	}
	cfg := full.RunTests

	if cmd.Flags().Changed("dir") {
		cfg.Dir = opts.dir
	}
	if cmd.Flags().Changed("memcheck") {
		cfg.Memcheck = opts.memcheck
	}
	if cmd.Flags().Changed("memcheck-tool") {
		cfg.MemcheckTool = opts.memcheckTool
	}
	if err := config.ValidateRunTests(cfg); err != nil {
		return testrunner.Options{}, err
	}

	return testrunner.Options{
		Dir:          cfg.Dir,
		Memcheck:     cfg.Memcheck,
		MemcheckTool: cfg.MemcheckTool,
	}, nil
}

func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (supported: auto, on, off)", mode)
	}
}
