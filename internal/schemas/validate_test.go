package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMovieDetails_Valid(t *testing.T) {
	doc := []byte(`{
		"id": 603,
		"title": "The Matrix",
		"overview": "A computer hacker learns the truth.",
		"poster_path": "/abc.jpg",
		"release_date": "1999-03-30",
		"vote_average": 8.2,
		"vote_count": 25000,
		"genres": [{"name": "Action"}, {"name": "Science Fiction"}],
		"credits": {
			"cast": [{"name": "Keanu Reeves", "order": 0}],
			"crew": [{"name": "Lana Wachowski", "job": "Director"}]
		}
	}`)
	assert.NoError(t, ValidateMovieDetails(doc))
}

func TestValidateMovieDetails_MissingRequired(t *testing.T) {
	doc := []byte(`{"overview": "no id or title"}`)

	err := ValidateMovieDetails(doc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateMovieDetails_WrongTypes(t *testing.T) {
	doc := []byte(`{"id": "603", "title": 42}`)
	assert.Error(t, ValidateMovieDetails(doc))
}

func TestValidateRecommendationsPage_Valid(t *testing.T) {
	doc := []byte(`{
		"items": [
			{"movie": {"id": 1, "title": "Inception"}, "score": 81.5}
		],
		"page": 1,
		"has_next": true
	}`)
	assert.NoError(t, ValidateRecommendationsPage(doc))
}

func TestValidateRecommendationsPage_EmptyItemsAllowed(t *testing.T) {
	doc := []byte(`{"items": [], "page": 4, "has_next": false}`)
	assert.NoError(t, ValidateRecommendationsPage(doc))
}

func TestValidateRecommendationsPage_ZeroScoreRejected(t *testing.T) {
	// Zero-score entries are dropped before publication; a page containing
	// one violates the contract.
	doc := []byte(`{
		"items": [{"movie": {"id": 2, "title": "Nope"}, "score": 0}],
		"page": 1,
		"has_next": false
	}`)
	assert.Error(t, ValidateRecommendationsPage(doc))
}
