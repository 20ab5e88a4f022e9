package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/jonathan/movie-recommender/internal/db"
	"github.com/jonathan/movie-recommender/internal/recommend"
	"github.com/jonathan/movie-recommender/internal/types"
	"github.com/spf13/cobra"
)

var (
	scoreSeeds     []int64
	scoreCandidate int64
	scoreTop       int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print per-factor score breakdowns for debugging",
	Long: `Score the catalog against the given seed movies and print the genre,
director, writer, actor and year contributions for each candidate. With
--candidate, only that movie is scored.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Int64SliceVar(&scoreSeeds, "seeds", nil, "Seed movie IDs (1 to 3, comma separated)")
	scoreCmd.Flags().Int64Var(&scoreCandidate, "candidate", 0, "Score only this movie ID")
	scoreCmd.Flags().IntVar(&scoreTop, "top", 20, "Number of candidates to print")
	_ = scoreCmd.MarkFlagRequired("seeds")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if len(scoreSeeds) == 0 || len(scoreSeeds) > 3 {
		return fmt.Errorf("between 1 and 3 seed IDs are required")
	}

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

	seeds, err := database.GetMoviesByIDs(ctx, scoreSeeds)
	if err != nil {
		return fmt.Errorf("failed to load seeds: %w", err)
	}
	if len(seeds) == 0 {
		return fmt.Errorf("none of the seed IDs exist: %v", scoreSeeds)
	}

	var candidates []types.Movie
	if scoreCandidate != 0 {
		movie, err := database.GetMovieByID(ctx, scoreCandidate)
		if err != nil {
			return fmt.Errorf("failed to load candidate: %w", err)
		}
		if movie == nil {
			return fmt.Errorf("movie not found: %d", scoreCandidate)
		}
		candidates = []types.Movie{*movie}
	} else {
		candidates, err = database.ListMoviesExcluding(ctx, scoreSeeds)
		if err != nil {
			return fmt.Errorf("failed to load candidates: %w", err)
		}
	}

	breakdowns := make([]*recommend.Breakdown, 0, len(candidates))
	for _, c := range candidates {
		b, err := recommend.Explain(seeds, c)
		if err != nil {
			return err
		}
		breakdowns = append(breakdowns, b)
	}

	// Highest totals first, catalog order on ties. Gated candidates sink to
	// the bottom with their flag visible.
	sortBreakdowns(breakdowns)
	if scoreCandidate == 0 && scoreTop > 0 && len(breakdowns) > scoreTop {
		breakdowns = breakdowns[:scoreTop]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tGENRE\tDIRECTOR\tWRITER\tACTORS\tYEAR\tTOTAL")
	for _, b := range breakdowns {
		total := fmt.Sprintf("%.1f", b.Total)
		if b.Gated {
			total = "0.0 (gated)"
		}
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n",
			b.MovieID, b.Title, b.Genre, b.Director, b.Writer, b.Actors, b.Year, total)
	}
	return w.Flush()
}

func sortBreakdowns(breakdowns []*recommend.Breakdown) {
	sort.SliceStable(breakdowns, func(i, j int) bool {
		return breakdowns[i].Total > breakdowns[j].Total
	})
}
