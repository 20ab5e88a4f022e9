package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/jonathan/movie-recommender/internal/db"
	"github.com/jonathan/movie-recommender/internal/tmdb"
	"github.com/jonathan/movie-recommender/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	enrichLimit   int
	enrichAll     bool
	enrichAPIKey  string
	enrichWorkers int
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Backfill movie metadata from TMDB",
	Long: `Look up catalog movies on TMDB and fill in posters, genres, credits and
vote statistics. By default only movies without a real poster are processed;
--all re-enriches every movie.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 50, "Maximum number of movies to process (0 for no limit)")
	enrichCmd.Flags().BoolVar(&enrichAll, "all", false, "Process every movie, not just those missing posters")
	enrichCmd.Flags().StringVar(&enrichAPIKey, "api-key", "", "TMDB API key (optional, defaults to TMDB_API_KEY env var)")
	enrichCmd.Flags().IntVar(&enrichWorkers, "workers", 4, "Number of concurrent TMDB lookups")
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	apiKey := enrichAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("TMDB_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("TMDB API key is required (--api-key or TMDB_API_KEY)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	var movies []types.Movie
	if enrichAll {
		movies, err = database.ListMovies(ctx, enrichLimit, 0)
	} else {
		movies, err = database.ListMoviesMissingPoster(ctx, enrichLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}
	if len(movies) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to enrich")
		return nil
	}

	client := tmdb.NewClient(apiKey, nil)

	var enriched, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichWorkers)

	for i := range movies {
		movie := movies[i]
		g.Go(func() error {
			ok, err := enrichOne(gctx, database, client, &movie)
			if err != nil {
				return err
			}
			if ok {
				enriched.Add(1)
			} else {
				skipped.Add(1)
				log.Printf("no TMDB match for %q (%d)", movie.Title, movie.ID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Enriched %d movies, %d without a match\n",
		enriched.Load(), skipped.Load())
	return nil
}

// enrichOne resolves a movie on TMDB and overwrites its metadata columns.
// Returns false when no TMDB match exists.
func enrichOne(ctx context.Context, database *db.DB, client *tmdb.Client, movie *types.Movie) (bool, error) {
	tmdbID := movie.TMDBID
	if tmdbID == nil {
		year := 0
		if movie.Year != nil {
			year = *movie.Year
		}
		matches, err := client.SearchMovie(ctx, movie.Title, year)
		if err != nil {
			return false, fmt.Errorf("search %q: %w", movie.Title, err)
		}
		best := tmdb.BestMatch(matches, movie.Title, year)
		if best == nil {
			return false, nil
		}
		tmdbID = &best.ID
	}

	details, err := client.GetMovie(ctx, *tmdbID)
	if err != nil {
		return false, fmt.Errorf("fetch movie %d: %w", *tmdbID, err)
	}

	movie.TMDBID = tmdbID
	if details.IMDBID != "" {
		imdbID := details.IMDBID
		movie.IMDBID = &imdbID
	}
	if poster := details.PosterURL(); poster != "" {
		movie.PosterURL = poster
	}
	movie.Genre = strings.Join(details.GenreNames(), ", ")
	if director := details.Director(); director != "" {
		movie.Director = director
	}
	if writers := details.Writers(); len(writers) > 0 {
		movie.Writer = strings.Join(writers, ", ")
	}
	if cast := details.TopCast(types.LeadActorCount); len(cast) > 0 {
		movie.Actors = strings.Join(cast, ", ")
	}
	if year := details.Year(); year > 0 {
		movie.Year = &year
	}
	voteAverage := details.VoteAverage
	voteCount := details.VoteCount
	movie.VoteAverage = &voteAverage
	movie.VoteCount = &voteCount

	if err := database.UpdateMovieMetadata(ctx, movie); err != nil {
		return false, err
	}
	return true, nil
}
