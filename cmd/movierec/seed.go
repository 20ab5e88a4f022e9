package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/movie-recommender/internal/db"
	"github.com/jonathan/movie-recommender/internal/ingestion"
	"github.com/jonathan/movie-recommender/internal/types"
	"github.com/spf13/cobra"
)

var (
	seedMoviesPath  string
	seedCreditsPath string
	seedSample      bool
	seedReplace     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load movies into the catalog",
	Long: `Load the catalog from the TMDB 5000 dataset CSV files (--movies and
--credits), or load a small built-in fixture with --sample.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedMoviesPath, "movies", "", "Path to the movies CSV file")
	seedCmd.Flags().StringVar(&seedCreditsPath, "credits", "", "Path to the credits CSV file")
	seedCmd.Flags().BoolVar(&seedSample, "sample", false, "Load the built-in sample catalog instead of CSV files")
	seedCmd.Flags().BoolVar(&seedReplace, "replace", false, "Delete existing movies before loading")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	var movies []types.Movie
	if seedSample {
		movies = ingestion.SampleMovies()
	} else {
		if seedMoviesPath == "" || seedCreditsPath == "" {
			return fmt.Errorf("either --sample or both --movies and --credits are required")
		}
		loaded, err := ingestion.LoadDataset(seedMoviesPath, seedCreditsPath)
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}
		movies = loaded
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if seedReplace {
		if err := database.DeleteAllMovies(ctx); err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}
	}

	inserted := 0
	for i := range movies {
		if _, err := database.InsertMovie(ctx, &movies[i]); err != nil {
			return fmt.Errorf("failed to insert %q: %w", movies[i].Title, err)
		}
		inserted++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d movies\n", inserted)
	return nil
}
