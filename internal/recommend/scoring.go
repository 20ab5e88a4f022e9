// Package recommend scores catalog movies against user-selected seed movies.
package recommend

import (
	"math"
	"strings"

	"github.com/jonathan/movie-recommender/internal/types"
)

// Weights for the scoring components. The actor thresholds and the
// single-genre gate are intentional product tuning; do not smooth them into
// proportional formulas.
const (
	genreWeight    = 40.0
	directorWeight = 20.0
	writerWeight   = 10.0
	actorWeight    = 20.0
	yearWeight     = 10.0

	// yearWindow is the maximum year distance (inclusive) that still earns a
	// year contribution.
	yearWindow = 5.0
)

// Actor contributions by shared lead-actor count. Two shared leads score 15
// and one scores 8 (0.75 and 0.4 of the weight, pre-rounded).
const (
	actorScoreThree = actorWeight
	actorScoreTwo   = 15.0
	actorScoreOne   = 8.0
)

// seedProfile aggregates the seed movies' features once so every candidate
// is scored against the same sets.
type seedProfile struct {
	genres     map[string]bool
	directors  map[string]bool
	writers    map[string]bool
	leadActors map[string]bool
	meanYear   float64
	hasYear    bool
}

func buildSeedProfile(seeds []types.Movie) *seedProfile {
	p := &seedProfile{
		genres:     make(map[string]bool),
		directors:  make(map[string]bool),
		writers:    make(map[string]bool),
		leadActors: make(map[string]bool),
	}

	yearSum := 0
	yearCount := 0
	for i := range seeds {
		seed := &seeds[i]
		for _, g := range seed.Genres() {
			p.genres[g] = true
		}
		if d := strings.TrimSpace(seed.Director); d != "" {
			p.directors[d] = true
		}
		for _, w := range seed.Writers() {
			p.writers[w] = true
		}
		for _, a := range seed.LeadActors() {
			p.leadActors[a] = true
		}
		if seed.Year != nil {
			yearSum += *seed.Year
			yearCount++
		}
	}

	if yearCount > 0 {
		p.meanYear = float64(yearSum) / float64(yearCount)
		p.hasYear = true
	}
	return p
}

// genreScore computes the genre contribution for a candidate. When the seed
// union holds exactly one label, a candidate lacking that label is gated: its
// total score is forced to zero and no further terms apply.
func (p *seedProfile) genreScore(candidate *types.Movie) (score float64, gated bool) {
	if len(p.genres) == 0 {
		return 0, false
	}

	candidateGenres := candidate.Genres()
	shared := 0
	for _, g := range candidateGenres {
		if p.genres[g] {
			shared++
		}
	}

	if len(p.genres) == 1 && shared == 0 {
		return 0, true
	}

	return genreWeight * float64(shared) / float64(len(p.genres)), false
}

// directorScore contributes the full weight on an exact trimmed match against
// any seed director.
func (p *seedProfile) directorScore(candidate *types.Movie) float64 {
	d := strings.TrimSpace(candidate.Director)
	if d != "" && p.directors[d] {
		return directorWeight
	}
	return 0
}

// writerScore contributes the full weight when any candidate writer appears in
// the seed writer union.
func (p *seedProfile) writerScore(candidate *types.Movie) float64 {
	for _, w := range candidate.Writers() {
		if p.writers[w] {
			return writerWeight
		}
	}
	return 0
}

// actorScore counts shared lead actors and maps the count through the
// threshold table.
func (p *seedProfile) actorScore(candidate *types.Movie) float64 {
	shared := 0
	for _, a := range candidate.LeadActors() {
		if p.leadActors[a] {
			shared++
		}
	}

	switch {
	case shared >= 3:
		return actorScoreThree
	case shared == 2:
		return actorScoreTwo
	case shared == 1:
		return actorScoreOne
	default:
		return 0
	}
}

// yearScore decays linearly from the full weight at the seed mean year to zero
// at the window edge. The mean is used raw, not rounded.
func (p *seedProfile) yearScore(candidate *types.Movie) float64 {
	if !p.hasYear || candidate.Year == nil {
		return 0
	}
	diff := math.Abs(float64(*candidate.Year) - p.meanYear)
	if diff > yearWindow {
		return 0
	}
	return yearWeight * (1 - diff/yearWindow)
}
