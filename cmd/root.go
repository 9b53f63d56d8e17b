package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/sunar87/foodgram/foodgram"
	"github.com/sunar87/foodgram/foodgram/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "foodgram",
	Short:         "Foodgram recipe service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.LogError("Command failed", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and installs the configured logger as
// the process default.
func loadConfig() (*foodgram.Config, error) {
	cfg, err := foodgram.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger.New(os.Stdout, cfg.Log.Format, cfg.Log.Level, cfg.Log.AddSource))
	logger.LogSystem("Configuration loaded", slog.String("path", configPath))
	return cfg, nil
}
