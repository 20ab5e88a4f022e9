package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/movie-recommender/internal/types"
)

const movieColumns = `id, title, description, poster_url, tmdb_id, imdb_id,
	genre, director, writer, year, actors, vote_average, vote_count,
	created_at, updated_at`

func scanMovie(row pgx.Row) (*types.Movie, error) {
	var m types.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.PosterURL, &m.TMDBID,
		&m.IMDBID, &m.Genre, &m.Director, &m.Writer, &m.Year, &m.Actors,
		&m.VoteAverage, &m.VoteCount, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMovies(rows pgx.Rows) ([]types.Movie, error) {
	defer rows.Close()

	var movies []types.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movies: %w", err)
	}
	return movies, nil
}

// GetMovieByID retrieves a movie by id. Returns nil when not found.
func (db *DB) GetMovieByID(ctx context.Context, id int64) (*types.Movie, error) {
	m, err := scanMovie(db.pool.QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return m, nil
}

// GetMoviesByIDs retrieves the movies whose ids appear in ids, in id order.
// Missing ids are silently absent from the result.
func (db *DB) GetMoviesByIDs(ctx context.Context, ids []int64) ([]types.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get movies by ids: %w", err)
	}
	return collectMovies(rows)
}

// ListMoviesExcluding retrieves every movie whose id is not in excludeIDs, in
// id order. This is the candidate set for a scoring run; exclusion prevents
// self-recommendation.
func (db *DB) ListMoviesExcluding(ctx context.Context, excludeIDs []int64) ([]types.Movie, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id != ALL($1) ORDER BY id`, excludeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate movies: %w", err)
	}
	return collectMovies(rows)
}

// ListMovies retrieves a page of the catalog in id order.
func (db *DB) ListMovies(ctx context.Context, limit, offset int) ([]types.Movie, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return collectMovies(rows)
}

// CountMovies returns the catalog size.
func (db *DB) CountMovies(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

// escapeLike escapes LIKE/ILIKE metacharacters in a user-supplied query.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// SearchMoviesByTitle retrieves movies whose title contains query,
// case-insensitively, up to limit rows.
func (db *DB) SearchMoviesByTitle(ctx context.Context, query string, limit int) ([]types.Movie, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE title ILIKE $1 ORDER BY id LIMIT $2`,
		"%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return collectMovies(rows)
}

// InsertMovie inserts a movie row and returns its generated id.
func (db *DB) InsertMovie(ctx context.Context, m *types.Movie) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO movies (title, description, poster_url, tmdb_id, imdb_id,
		        genre, director, writer, year, actors, vote_average, vote_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		m.Title, m.Description, m.PosterURL, m.TMDBID, m.IMDBID,
		m.Genre, m.Director, m.Writer, m.Year, m.Actors, m.VoteAverage, m.VoteCount,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert movie: %w", err)
	}
	return id, nil
}

// UpdateMovieMetadata overwrites the enrichable columns of an existing movie.
// Used by the TMDB backfill.
func (db *DB) UpdateMovieMetadata(ctx context.Context, m *types.Movie) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE movies
		 SET poster_url = $2, tmdb_id = $3, imdb_id = $4, genre = $5,
		     director = $6, writer = $7, year = $8, actors = $9,
		     vote_average = $10, vote_count = $11, updated_at = NOW()
		 WHERE id = $1`,
		m.ID, m.PosterURL, m.TMDBID, m.IMDBID, m.Genre,
		m.Director, m.Writer, m.Year, m.Actors, m.VoteAverage, m.VoteCount)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", m.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie not found: %d", m.ID)
	}
	return nil
}

// ListMoviesMissingPoster retrieves movies without a real poster URL, in id
// order, up to limit rows (0 means no limit). Placeholder posters count as
// missing.
func (db *DB) ListMoviesMissingPoster(ctx context.Context, limit int) ([]types.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies
		 WHERE poster_url = '' OR poster_url LIKE '%No+Image%'
		 ORDER BY id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies missing posters: %w", err)
	}
	return collectMovies(rows)
}

// DeleteAllMovies removes every catalog row. Used before re-seeding.
func (db *DB) DeleteAllMovies(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM movies`); err != nil {
		return fmt.Errorf("failed to delete movies: %w", err)
	}
	return nil
}
