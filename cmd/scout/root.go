package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/founder-scout/internal/config"
	"github.com/feral-file/founder-scout/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

type rootOptions struct {
	configFile string
	envPath    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "scout",
		Short: "Founder Scout operator CLI",
		Long: `scout runs and inspects the Founder Scout analytics pipeline.

It shares configuration with the pipeline daemon and the API server:
config.yaml plus SCOUT_* environment variables.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.envPath, "env", "config/", "Path to environment files")

	cmd.AddCommand(
		newRunCmd(opts),
		newMigrateCmd(opts),
		newScoreCmd(opts),
		newThemesCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load reads the configuration and initializes the logger
func (o *rootOptions) load() (*config.CLIConfig, error) {
	cfg, err := config.LoadCLIConfig(o.configFile, o.envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "scout-cli",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scout %s\n", version)
		},
	}
}

func flushLogger() {
	logger.Flush(2 * time.Second)
}
