package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/sunar87/foodgram/foodgram/logger"
	"github.com/sunar87/foodgram/internal/domain/catalog"
	"github.com/sunar87/foodgram/internal/gateways/database"
	"github.com/sunar87/foodgram/internal/gateways/database/repositories"
)

var loadKind string

var loadDataCMD = &cobra.Command{
	Use:   "load-data <csv>",
	Short: "import ingredients or tags from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if loadKind != "ingredients" && loadKind != "tags" {
			return fmt.Errorf("unknown kind %q, want ingredients or tags", loadKind)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		ctx := cmd.Context()
		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		service := catalog.NewService(repositories.NewCatalogRepository(db.BunDB()))

		var result catalog.ImportResult
		if loadKind == "tags" {
			result, err = service.ImportTags(ctx, file)
		} else {
			result, err = service.ImportIngredients(ctx, file)
		}
		if err != nil {
			return err
		}

		logger.LogSystem("Catalog import finished",
			slog.String("kind", loadKind),
			slog.String("file", args[0]),
			slog.Int("read", result.Read),
			slog.Int64("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped))
		return nil
	},
}

func init() {
	loadDataCMD.Flags().StringVar(&loadKind, "kind", "ingredients", "what the file holds: ingredients or tags")
	rootCmd.AddCommand(loadDataCMD)
}
