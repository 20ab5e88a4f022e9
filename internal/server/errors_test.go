package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/movie-recommender/internal/results"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"movie not found", &ErrMovieNotFound{MovieID: 42}, http.StatusNotFound},
		{"no seeds found", &ErrNoSeedsFound{MovieIDs: []int64{1, 2}}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "q", Message: "required"}, http.StatusBadRequest},
		{"result token not found", &results.ErrTokenNotFound{Token: "abc"}, http.StatusNotFound},
		{"invalid page", &results.ErrInvalidPage{Page: 0}, http.StatusBadRequest},
		{"invalid page size", &results.ErrInvalidPageSize{PageSize: -1}, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrMovieNotFound{MovieID: 7}).Error(), "7")
	assert.Contains(t, (&ErrValidation{Field: "page", Message: "must be an integer"}).Error(), "page")
	assert.Contains(t, (&ErrNoSeedsFound{MovieIDs: []int64{9}}).Error(), "9")
}
