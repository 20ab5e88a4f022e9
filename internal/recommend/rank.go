package recommend

import (
	"errors"
	"sort"

	"github.com/jonathan/movie-recommender/internal/types"
)

// ErrNoSeeds indicates Rank was called with an empty seed list.
var ErrNoSeeds = errors.New("at least one seed movie is required")

// Rank scores every candidate against the seed movies and returns the results
// sorted by score descending. Candidates whose total score is not strictly
// positive are dropped. Ties keep candidate iteration order, so equal-scoring
// movies stay in catalog order.
//
// Callers are responsible for enforcing the seed-count cap and for excluding
// the seed ids from the candidate list; Rank only rejects an empty seed list.
func Rank(seeds []types.Movie, candidates []types.Movie) (types.RankedResult, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	profile := buildSeedProfile(seeds)

	ranked := make(types.RankedResult, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		score := scoreCandidate(profile, candidate)
		if score > 0 {
			ranked = append(ranked, types.ScoreEntry{MovieID: candidate.ID, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}

// scoreCandidate sums the five term contributions, short-circuiting to zero
// when the single-genre gate fires.
func scoreCandidate(p *seedProfile, candidate *types.Movie) float64 {
	genre, gated := p.genreScore(candidate)
	if gated {
		return 0
	}

	return genre +
		p.directorScore(candidate) +
		p.writerScore(candidate) +
		p.actorScore(candidate) +
		p.yearScore(candidate)
}
