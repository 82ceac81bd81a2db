package main

import (
	"fmt"
	"os"

	"github.com/danmuck/devtools/internal/config"
	"github.com/danmuck/devtools/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	logging.ConfigureRuntime("configgen")
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "configgen: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output   string
		input    string
		validate bool
		force    bool
	)
	cmd := &cobra.Command{
		Use:           "configgen",
		Short:         "Write or validate a devtools.toml config file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if validate {
				if _, err := config.Load(input); err != nil {
					return err
				}
				log.Info().Str("path", input).Msg("validated config")
				return nil
			}
			if err := config.WriteTemplate(output, force); err != nil {
				return err
			}
			log.Info().Str("path", output).Msg("wrote config template")
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", config.DefaultPath, "output path for config template")
	cmd.Flags().StringVar(&input, "input", config.DefaultPath, "config path for validation")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate an existing config file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")
	return cmd
}
