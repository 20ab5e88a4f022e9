// Package ingestion loads the TMDB 5000 dataset CSVs into catalog rows.
package ingestion

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/movie-recommender/internal/types"
)

// PlaceholderPosterURL is used for rows without a poster.
const PlaceholderPosterURL = "https://via.placeholder.com/500x750.png?text=No+Image"

const imageBaseURL = "https://image.tmdb.org/t/p/w500"

// namedItem is the {"id": ..., "name": ...} shape used by the dataset's
// embedded JSON columns.
type namedItem struct {
	Name string `json:"name"`
}

// crewItem is one crew credit in the embedded crew column.
type crewItem struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// creditsRow holds the cast and crew blobs for one movie id.
type creditsRow struct {
	cast string
	crew string
}

// LoadDataset merges the movies and credits CSVs on movie id and converts
// each row into a catalog movie. Rows with malformed embedded JSON keep their
// parseable fields; nothing is fatal except unreadable files.
func LoadDataset(moviesPath, creditsPath string) ([]types.Movie, error) {
	credits, err := loadCredits(creditsPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open movies csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // dataset rows occasionally vary

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read movies csv header: %w", err)
	}
	col := columnIndex(header)

	var movies []types.Movie
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read movies csv row: %w", err)
		}

		id := field(record, col, "id")
		movie := types.Movie{
			Title:       field(record, col, "title"),
			Description: field(record, col, "overview"),
			Genre:       strings.Join(parseNames(field(record, col, "genres")), ", "),
		}
		if movie.Title == "" {
			continue
		}

		if year := yearOf(field(record, col, "release_date")); year > 0 {
			movie.Year = &year
		}
		if avg, err := strconv.ParseFloat(field(record, col, "vote_average"), 64); err == nil {
			movie.VoteAverage = &avg
		}
		if count, err := strconv.Atoi(field(record, col, "vote_count")); err == nil {
			movie.VoteCount = &count
		}

		movie.PosterURL = PlaceholderPosterURL
		if poster := field(record, col, "poster_path"); poster != "" {
			movie.PosterURL = imageBaseURL + poster
		}

		if credit, ok := credits[id]; ok {
			director, writers := parseCrew(credit.crew)
			movie.Director = director
			movie.Writer = strings.Join(writers, ", ")
			movie.Actors = strings.Join(parseCast(credit.cast, types.LeadActorCount), ", ")
		}

		movies = append(movies, movie)
	}

	return movies, nil
}

// loadCredits indexes the credits CSV by movie id.
func loadCredits(path string) (map[string]creditsRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credits csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read credits csv header: %w", err)
	}
	col := columnIndex(header)

	credits := make(map[string]creditsRow)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read credits csv row: %w", err)
		}

		id := field(record, col, "movie_id")
		if id == "" {
			continue
		}
		credits[id] = creditsRow{
			cast: field(record, col, "cast"),
			crew: field(record, col, "crew"),
		}
	}

	return credits, nil
}

// columnIndex maps header names to positions.
func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	return col
}

// field returns the named column of a record, or "" when absent.
func field(record []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseNames extracts the name of each item in an embedded JSON list.
// Malformed blobs yield nil.
func parseNames(blob string) []string {
	if blob == "" {
		return nil
	}
	var items []namedItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil
	}
	var names []string
	for _, item := range items {
		if item.Name != "" {
			names = append(names, item.Name)
		}
	}
	return names
}

// parseCrew extracts the director and the writing credits from an embedded
// crew blob.
func parseCrew(blob string) (director string, writers []string) {
	if blob == "" {
		return "", nil
	}
	var crew []crewItem
	if err := json.Unmarshal([]byte(blob), &crew); err != nil {
		return "", nil
	}

	for _, item := range crew {
		if item.Name == "" {
			continue
		}
		if director == "" && item.Job == "Director" {
			director = item.Name
			continue
		}
		job := strings.ToLower(item.Job)
		if strings.Contains(job, "writer") || strings.Contains(job, "screenplay") ||
			strings.Contains(job, "author") || strings.Contains(job, "story") {
			writers = append(writers, item.Name)
		}
	}
	return director, writers
}

// parseCast extracts the first n cast names from an embedded cast blob.
func parseCast(blob string, n int) []string {
	if blob == "" {
		return nil
	}
	var cast []namedItem
	if err := json.Unmarshal([]byte(blob), &cast); err != nil {
		return nil
	}
	var names []string
	for _, item := range cast {
		if len(names) >= n {
			break
		}
		if item.Name != "" {
			names = append(names, item.Name)
		}
	}
	return names
}

func yearOf(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
