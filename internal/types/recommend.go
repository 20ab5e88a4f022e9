package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreEntry pairs a candidate movie with its similarity score. Entries are
// created once per scoring run and never mutated afterwards.
type ScoreEntry struct {
	MovieID int64   `json:"movie_id"`
	Score   float64 `json:"score"`
}

// RankedResult is an ordered list of ScoreEntry, sorted by score descending
// with ties kept in catalog order. Immutable once built; owned by exactly one
// result-store entry.
type RankedResult []ScoreEntry

// RecommendRequest is the payload for submitting seed movies.
type RecommendRequest struct {
	MovieIDs []int64 `json:"movie_ids" validate:"required,min=1,max=3"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RecommendedMovie is one item of a recommendations page: the catalog record
// plus the score it earned against the seeds.
type RecommendedMovie struct {
	Movie Movie   `json:"movie"`
	Score float64 `json:"score"`
}

// RecommendationsPage is the paginated recommendations response.
type RecommendationsPage struct {
	Items   []RecommendedMovie `json:"items"`
	Page    int                `json:"page"`
	HasNext bool               `json:"has_next"`
}
