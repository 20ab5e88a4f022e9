package recommend

import (
	"github.com/jonathan/movie-recommender/internal/types"
)

// Breakdown holds the per-term contributions for a single candidate. It backs
// the `score` debug subcommand; Rank itself never allocates one.
type Breakdown struct {
	MovieID  int64   `json:"movie_id"`
	Title    string  `json:"title"`
	Genre    float64 `json:"genre"`
	Director float64 `json:"director"`
	Writer   float64 `json:"writer"`
	Actors   float64 `json:"actors"`
	Year     float64 `json:"year"`
	Total    float64 `json:"total"`
	// Gated reports that the candidate lacked the single shared seed genre,
	// forcing the total to zero.
	Gated bool `json:"gated,omitempty"`
}

// Explain scores one candidate against the seeds and returns the per-term
// breakdown. Gated candidates report zero for every term.
func Explain(seeds []types.Movie, candidate types.Movie) (*Breakdown, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	profile := buildSeedProfile(seeds)
	b := &Breakdown{MovieID: candidate.ID, Title: candidate.Title}

	genre, gated := profile.genreScore(&candidate)
	if gated {
		b.Gated = true
		return b, nil
	}

	b.Genre = genre
	b.Director = profile.directorScore(&candidate)
	b.Writer = profile.writerScore(&candidate)
	b.Actors = profile.actorScore(&candidate)
	b.Year = profile.yearScore(&candidate)
	b.Total = b.Genre + b.Director + b.Writer + b.Actors + b.Year
	return b, nil
}
