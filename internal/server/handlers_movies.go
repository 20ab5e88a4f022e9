package server

import (
	"net/http"
	"strconv"
	"strings"
)

// parseQueryInt parses an integer query parameter with a default and a cap.
func parseQueryInt(r *http.Request, name string, def, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// handleListMovies returns a page of the catalog ordered by ID.
// Query params: limit (default is the configured catalog page size), offset.
func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", s.legacyPageSize, 200)
	offset := parseQueryInt(r, "offset", 0, 0)

	movies, err := s.catalog.ListMovies(r.Context(), limit, offset)
	if err != nil {
		s.errorResponseFor(w, err)
		return
	}

	total, err := s.catalog.CountMovies(r.Context())
	if err != nil {
		s.errorResponseFor(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"movies": movies,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// handleGetMovie returns a single movie by ID.
func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponseFor(w, &ErrValidation{Field: "id", Message: "must be an integer"})
		return
	}

	movie, err := s.catalog.GetMovieByID(r.Context(), id)
	if err != nil {
		s.errorResponseFor(w, err)
		return
	}
	if movie == nil {
		s.errorResponseFor(w, &ErrMovieNotFound{MovieID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, movie)
}

// searchResultLimit caps title search responses; the search box only shows a
// short suggestion list.
const searchResultLimit = 10

// searchHit is the trimmed payload the search box needs.
type searchHit struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// handleSearch returns movies whose title contains the query, case-insensitive.
// A blank query returns an empty list rather than an error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	hits := []searchHit{}
	if query != "" {
		movies, err := s.catalog.SearchMoviesByTitle(r.Context(), query, searchResultLimit)
		if err != nil {
			s.errorResponseFor(w, err)
			return
		}
		for _, m := range movies {
			hits = append(hits, searchHit{ID: m.ID, Title: m.Title})
		}
	}

	s.jsonResponse(w, http.StatusOK, hits)
}
