package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()

	moviesCSV := writeFile(t, dir, "movies.csv",
		`id,title,overview,genres,release_date,vote_average,vote_count
603,The Matrix,A hacker learns the truth.,"[{""id"": 28, ""name"": ""Action""}, {""id"": 878, ""name"": ""Science Fiction""}]",1999-03-30,8.2,25000
604,No Credits Row,Orphan movie.,"[{""id"": 18, ""name"": ""Drama""}]",,,
`)

	creditsCSV := writeFile(t, dir, "credits.csv",
		`movie_id,cast,crew
603,"[{""name"": ""Keanu Reeves""}, {""name"": ""Laurence Fishburne""}, {""name"": ""Carrie-Anne Moss""}, {""name"": ""Hugo Weaving""}]","[{""name"": ""Lana Wachowski"", ""job"": ""Director""}, {""name"": ""Lilly Wachowski"", ""job"": ""Screenplay""}]"
`)

	movies, err := LoadDataset(moviesCSV, creditsCSV)
	require.NoError(t, err)
	require.Len(t, movies, 2)

	matrix := movies[0]
	assert.Equal(t, "The Matrix", matrix.Title)
	assert.Equal(t, "Action, Science Fiction", matrix.Genre)
	assert.Equal(t, "Lana Wachowski", matrix.Director)
	assert.Equal(t, "Lilly Wachowski", matrix.Writer)
	// Only the top three cast entries survive.
	assert.Equal(t, "Keanu Reeves, Laurence Fishburne, Carrie-Anne Moss", matrix.Actors)
	require.NotNil(t, matrix.Year)
	assert.Equal(t, 1999, *matrix.Year)
	require.NotNil(t, matrix.VoteAverage)
	assert.InDelta(t, 8.2, *matrix.VoteAverage, 1e-9)
	assert.Equal(t, PlaceholderPosterURL, matrix.PosterURL)

	orphan := movies[1]
	assert.Equal(t, "No Credits Row", orphan.Title)
	assert.Empty(t, orphan.Director)
	assert.Empty(t, orphan.Actors)
	assert.Nil(t, orphan.Year)
}

func TestLoadDataset_MalformedEmbeddedJSON(t *testing.T) {
	dir := t.TempDir()

	moviesCSV := writeFile(t, dir, "movies.csv",
		`id,title,overview,genres,release_date,vote_average,vote_count
1,Broken Blob,Still loads.,not-json,2005-01-01,,
`)
	creditsCSV := writeFile(t, dir, "credits.csv",
		`movie_id,cast,crew
1,not-json,also-not-json
`)

	movies, err := LoadDataset(moviesCSV, creditsCSV)
	require.NoError(t, err)
	require.Len(t, movies, 1)

	m := movies[0]
	assert.Equal(t, "Broken Blob", m.Title)
	assert.Empty(t, m.Genre)
	assert.Empty(t, m.Director)
	assert.Empty(t, m.Actors)
	require.NotNil(t, m.Year)
	assert.Equal(t, 2005, *m.Year)
}

func TestLoadDataset_SkipsUntitledRows(t *testing.T) {
	dir := t.TempDir()

	moviesCSV := writeFile(t, dir, "movies.csv",
		`id,title,overview,genres,release_date,vote_average,vote_count
1,,No title here.,[],2001-01-01,,
2,Kept,Has a title.,[],2002-01-01,,
`)
	creditsCSV := writeFile(t, dir, "credits.csv",
		`movie_id,cast,crew
`)

	movies, err := LoadDataset(moviesCSV, creditsCSV)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Kept", movies[0].Title)
}

func TestSampleMovies(t *testing.T) {
	movies := SampleMovies()
	require.Len(t, movies, 12)
	for _, m := range movies {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Genre)
		assert.Equal(t, PlaceholderPosterURL, m.PosterURL)
	}
}
