package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/sunar87/foodgram/backend"
	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/foodgram/logger"
	"github.com/sunar87/foodgram/internal/gateways/database"
	"github.com/sunar87/foodgram/internal/gateways/storage"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger.LogSystem("Starting Foodgram API",
			slog.String("version", version),
			slog.String("commit", commit))

		ctx := cmd.Context()
		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			return err
		}

		images, err := storage.New(ctx, cfg.Spaces, cfg.Media, cfg.Web.BaseURL)
		if err != nil {
			return err
		}

		webApp := backend.NewWebApp(db.BunDB(), images, cfg.Web, cfg.Auth)
		webApp.Version = version
		webApp.Commit = commit

		opts := backend.Options{
			ProxyHeader:    cfg.Web.ProxyHeader,
			TrustedProxies: cfg.Web.TrustedProxies,
		}
		if cfg.Spaces.Bucket == "" {
			opts.MediaDir = cfg.Media.Dir
			opts.MediaPrefix = cfg.Media.URLPrefix
		}
		app := backend.NewApp(webApp, opts)

		address := cfg.Web.Address()
		serveErr := make(chan error, 1)
		go func() {
			logger.LogSystem("Starting backend server", slog.String("address", address))
			serveErr <- app.Listen(address)
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serveErr:
			if err != nil {
				return err
			}
			return errors.New("server stopped unexpectedly")
		case <-stop:
		}

		logger.LogSystem("Shutting down backend server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.LogError("Server shutdown error", err)
		}
		logger.LogSystem("Backend server shutdown complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCMD)
}
