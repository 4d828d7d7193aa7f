package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/videochef/recipe-api/internal/database"
	"github.com/videochef/recipe-api/internal/models"
	"github.com/videochef/recipe-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Recipe Extraction API.

Runs GORM auto-migration for all models against the configured database.
Safe to run repeatedly; only missing columns and indexes are added.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Recipe{}); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database schema is up to date (%s)\n", cfg.Database.Path)
	return nil
}
