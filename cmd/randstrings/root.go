package main

import (
	"fmt"
	"strconv"

	"github.com/danmuck/devtools/internal/config"
	"github.com/danmuck/devtools/internal/fixtures"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath  string
	source      string
	maxAttempts int
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "randstrings [iterations] [length]",
		Short: "Print unique random uppercase strings as a quoted literal list",
		Long: `randstrings draws bytes from an entropy source, maps each into A-Z and
prints distinct fixed-length strings, one per line, ready to paste into
source code as test data.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default devtools.toml if present)")
	cmd.Flags().StringVar(&opts.source, "source", fixtures.DefaultSource, "entropy source path")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", fixtures.DefaultMaxAttempts, "draws allowed per string before giving up")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	cfg, err := resolve(cmd, args, opts)
	if err != nil {
		return err
	}

	src, err := fixtures.OpenEntropySource(cfg.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	log.Debug().
		Int("iterations", cfg.Iterations).
		Int("length", cfg.Length).
		Str("source", cfg.Source).
		Msg("generating strings")

	gen := fixtures.NewGenerator(src)
	gen.MaxAttempts = cfg.MaxAttempts
	return gen.WriteList(cmd.OutOrStdout(), cfg.Iterations, cfg.Length)
}

// resolve layers defaults, the config file and the command line.
func resolve(cmd *cobra.Command, args []string, opts options) (config.RandStringsConfig, error) {
	full, err := config.Load(opts.configPath)
	if err != nil {
		return config.RandStringsConfig{}, err
	}
	cfg := full.RandStrings

	if len(args) > 0 {
		if cfg.Iterations, err = parseCount("iterations", args[0]); err != nil {
			return cfg, err
		}
	}
	if len(args) > 1 {
		if cfg.Length, err = parseCount("length", args[1]); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("source") {
		cfg.Source = opts.source
	}
	if cmd.Flags().Changed("max-attempts") {
		cfg.MaxAttempts = opts.maxAttempts
	}
	if err := config.ValidateRandStrings(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseCount(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return n, nil
}
