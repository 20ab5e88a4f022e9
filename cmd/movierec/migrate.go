package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/movie-recommender/internal/db"
	"github.com/spf13/cobra"
)

var migrateReset bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateReset, "reset", false, "Drop and recreate the schema (destroys all data)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if migrateReset {
		if err := database.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema reset complete")
		return nil
	}

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Migration complete")
	return nil
}
