package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Agurato/overcast/internal/business"
	"github.com/Agurato/overcast/internal/infrastructure"
)

type commandContext struct {
	envFile string
	cfg     *config
}

func (ctx *commandContext) ensureConfig() (*config, error) {
	if ctx.cfg != nil {
		return ctx.cfg, nil
	}
	var envFiles []string
	if ctx.envFile != "" {
		envFiles = append(envFiles, ctx.envFile)
	}
	cfg, err := loadConfig(envFiles...)
	if err != nil {
		return nil, err
	}
	cfg.setupLogging(os.Stderr)
	ctx.cfg = cfg
	return cfg, nil
}

// comparisonManager wires the catalog into the comparison pipeline
func (ctx *commandContext) comparisonManager() (*business.ComparisonManager, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.TMDBAPIKey == "" {
		return nil, errors.New(EnvTMDBAPIKey + " is not set")
	}
	metadata, err := infrastructure.NewMetadataWrapper(cfg.TMDBAPIKey, cfg.TMDBRateLimit)
	if err != nil {
		return nil, err
	}
	return business.NewComparisonManager(
		metadata,
		business.NewTitleResolver(),
		business.NewCastAggregator(metadata),
		business.NewCastIntersector(metadata),
	), nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "overcast",
		Short:         "Find the performers two movies or shows have in common",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.envFile, "env-file", "", "Path to a .env file (defaults to ./.env)")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newCompareCommand(ctx))

	return rootCmd
}
