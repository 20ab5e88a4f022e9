// Package server provides the HTTP REST API for the movie recommender.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/movie-recommender/internal/results"
)

// ErrMovieNotFound indicates no catalog entry exists for the requested ID.
type ErrMovieNotFound struct {
	MovieID int64
}

func (e *ErrMovieNotFound) Error() string {
	return fmt.Sprintf("movie not found: %d", e.MovieID)
}

// ErrNoSeedsFound indicates none of the submitted seed IDs matched the catalog.
type ErrNoSeedsFound struct {
	MovieIDs []int64
}

func (e *ErrNoSeedsFound) Error() string {
	return fmt.Sprintf("none of the requested movies exist: %v", e.MovieIDs)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var tokenNotFound *results.ErrTokenNotFound
	var invalidPage *results.ErrInvalidPage
	var invalidPageSize *results.ErrInvalidPageSize

	switch {
	case errors.As(err, &tokenNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalidPage), errors.As(err, &invalidPageSize):
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrMovieNotFound, *ErrNoSeedsFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
