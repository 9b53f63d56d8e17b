package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/sunar87/foodgram/foodgram/logger"
	"github.com/sunar87/foodgram/internal/gateways/database"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "create tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		start := time.Now()

		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			return err
		}

		logger.LogSystem("Migration completed successfully",
			slog.Duration("took", time.Since(start)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCMD)
}
