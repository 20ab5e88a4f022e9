package recommend

import (
	"testing"

	"github.com/jonathan/movie-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRank_NoSeeds(t *testing.T) {
	_, err := Rank(nil, []types.Movie{{ID: 1, Genre: "Drama"}})
	assert.ErrorIs(t, err, ErrNoSeeds)
}

func TestRank_SortedDescendingWithStableTies(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Drama, Crime", Director: "Frank Darabont"},
	}
	// Candidates 20 and 30 earn identical scores; 20 comes first in catalog
	// order and must stay first.
	candidates := []types.Movie{
		{ID: 10, Genre: "Drama, Crime", Director: "Frank Darabont"},
		{ID: 20, Genre: "Drama"},
		{ID: 30, Genre: "Drama"},
		{ID: 40, Genre: "Crime", Director: "Frank Darabont"},
	}

	ranked, err := Rank(seeds, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	assert.Equal(t, int64(10), ranked[0].MovieID)
	// 40 scores 40*(1/2)+20 = 40, above the tied 20-point pair.
	assert.Equal(t, int64(40), ranked[1].MovieID)
	assert.Equal(t, int64(20), ranked[2].MovieID)
	assert.Equal(t, int64(30), ranked[3].MovieID)
	assert.Equal(t, ranked[2].Score, ranked[3].Score)
}

func TestRank_ZeroScoresDropped(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Sci-Fi, Action"},
	}
	candidates := []types.Movie{
		{ID: 10, Genre: "Romance"},
		{ID: 20, Genre: "Action"},
	}

	ranked, err := Rank(seeds, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, int64(20), ranked[0].MovieID)
}

func TestRank_SingleGenreGate(t *testing.T) {
	// Seed genre union has exactly one label, so any candidate lacking it is
	// forced to zero regardless of other matches.
	seeds := []types.Movie{
		{ID: 1, Genre: "Horror", Director: "John Carpenter"},
		{ID: 2, Genre: "Horror"},
	}
	candidates := []types.Movie{
		{ID: 10, Genre: "Horror, Comedy", Director: "John Carpenter"},
		{ID: 20, Genre: "Comedy", Director: "John Carpenter"},
	}

	ranked, err := Rank(seeds, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, int64(10), ranked[0].MovieID)
	// 40 * (1/1) for the genre plus 20 for the director.
	assert.InDelta(t, 60.0, ranked[0].Score, 1e-9)
}

func TestRank_GenreProportional(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Sci-Fi, Thriller"},
		{ID: 2, Genre: "Sci-Fi, Action"},
	}
	// Union is {Sci-Fi, Thriller, Action}; candidate shares two of three.
	candidates := []types.Movie{
		{ID: 10, Genre: "Sci-Fi, Action"},
	}

	ranked, err := Rank(seeds, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 40.0*2.0/3.0, ranked[0].Score, 1e-9)
}

func TestRank_ActorThresholdTable(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Drama", Actors: "A, B, C"},
	}

	tests := []struct {
		name   string
		actors string
		want   float64
	}{
		{"three shared", "A, B, C", 20.0},
		{"two shared is exactly 15", "A, B, D", 15.0},
		{"one shared is exactly 8", "A, D, E", 8.0},
		{"none shared", "D, E, F", 0.0},
		{"shared actor beyond lead cutoff ignored", "D, E, F, A", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := types.Movie{ID: 10, Genre: "Drama", Actors: tt.actors}
			profile := buildSeedProfile(seeds)
			assert.InDelta(t, tt.want, profile.actorScore(&candidate), 1e-9)
		})
	}
}

func TestRank_YearLinearDecay(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Drama", Year: intPtr(2010)},
	}
	profile := buildSeedProfile(seeds)

	within := types.Movie{ID: 10, Year: intPtr(2012)}
	assert.InDelta(t, 6.0, profile.yearScore(&within), 1e-9)

	exact := types.Movie{ID: 11, Year: intPtr(2010)}
	assert.InDelta(t, 10.0, profile.yearScore(&exact), 1e-9)

	outside := types.Movie{ID: 12, Year: intPtr(2020)}
	assert.Zero(t, profile.yearScore(&outside))

	missing := types.Movie{ID: 13}
	assert.Zero(t, profile.yearScore(&missing))
}

func TestRank_YearMeanNotRounded(t *testing.T) {
	// Mean of 2010 and 2013 is 2011.5; a 2012 candidate sits 0.5 away.
	seeds := []types.Movie{
		{ID: 1, Genre: "Drama", Year: intPtr(2010)},
		{ID: 2, Genre: "Drama", Year: intPtr(2013)},
	}
	profile := buildSeedProfile(seeds)

	candidate := types.Movie{ID: 10, Year: intPtr(2012)}
	assert.InDelta(t, 10.0*(1-0.5/5.0), profile.yearScore(&candidate), 1e-9)
}

func TestRank_MissingOptionalFieldsAreNotErrors(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Drama, War"},
	}
	candidates := []types.Movie{
		{ID: 10, Genre: "Drama"}, // no director, writer, actors or year
	}

	ranked, err := Rank(seeds, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 20.0, ranked[0].Score, 1e-9)
}

func TestRank_WriterUnionMatch(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Drama, Crime", Writer: "Aaron Sorkin, Paul Attanasio"},
		{ID: 2, Genre: "Drama, Thriller", Writer: "Gillian Flynn"},
	}
	profile := buildSeedProfile(seeds)

	match := types.Movie{ID: 10, Writer: "Someone Else, Gillian Flynn"}
	assert.InDelta(t, 10.0, profile.writerScore(&match), 1e-9)

	noMatch := types.Movie{ID: 11, Writer: "Someone Else"}
	assert.Zero(t, profile.writerScore(&noMatch))
}

func TestRank_DirectorTrimmedExactMatch(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Drama", Director: "  Christopher Nolan "},
	}
	profile := buildSeedProfile(seeds)

	match := types.Movie{ID: 10, Director: "Christopher Nolan"}
	assert.InDelta(t, 20.0, profile.directorScore(&match), 1e-9)

	partial := types.Movie{ID: 11, Director: "Christopher"}
	assert.Zero(t, profile.directorScore(&partial))
}

func TestExplain_Breakdown(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Action, Sci-Fi", Director: "Jon Favreau", Actors: "Robert Downey Jr., Gwyneth Paltrow, Jeff Bridges", Year: intPtr(2008)},
	}
	candidate := types.Movie{
		ID: 10, Title: "Iron Man 2", Genre: "Action, Sci-Fi",
		Director: "Jon Favreau", Actors: "Robert Downey Jr., Gwyneth Paltrow, Don Cheadle",
		Year: intPtr(2010),
	}

	b, err := Explain(seeds, candidate)
	require.NoError(t, err)
	assert.False(t, b.Gated)
	assert.InDelta(t, 40.0, b.Genre, 1e-9)
	assert.InDelta(t, 20.0, b.Director, 1e-9)
	assert.Zero(t, b.Writer)
	assert.InDelta(t, 15.0, b.Actors, 1e-9)
	assert.InDelta(t, 6.0, b.Year, 1e-9)
	assert.InDelta(t, 81.0, b.Total, 1e-9)
}

func TestExplain_GatedCandidate(t *testing.T) {
	seeds := []types.Movie{
		{ID: 1, Genre: "Horror"},
	}
	candidate := types.Movie{ID: 10, Title: "Airplane!", Genre: "Comedy", Director: "Jim Abrahams"}

	b, err := Explain(seeds, candidate)
	require.NoError(t, err)
	assert.True(t, b.Gated)
	assert.Zero(t, b.Total)
}
