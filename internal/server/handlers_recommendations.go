package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jonathan/movie-recommender/internal/recommend"
	"github.com/jonathan/movie-recommender/internal/results"
	"github.com/jonathan/movie-recommender/internal/types"
)

// maxPageSize caps the page_size query parameter.
const maxPageSize = 100

// handleCreateRecommendations scores the catalog against the submitted seed
// movies and stores the ranked result under a fresh token. The token is
// returned and also bound to the caller's session, superseding any previous
// result set for that session.
func (s *Server) handleCreateRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponseFor(w, &ErrValidation{Field: "body", Message: "invalid JSON payload"})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponseFor(w, &ErrValidation{Field: "movie_ids", Message: "between 1 and 3 movie IDs are required"})
		return
	}

	seeds, err := s.catalog.GetMoviesByIDs(r.Context(), req.MovieIDs)
	if err != nil {
		s.errorResponseFor(w, err)
		return
	}
	if len(seeds) == 0 {
		s.errorResponseFor(w, &ErrNoSeedsFound{MovieIDs: req.MovieIDs})
		return
	}

	candidates, err := s.catalog.ListMoviesExcluding(r.Context(), req.MovieIDs)
	if err != nil {
		s.errorResponseFor(w, err)
		return
	}

	ranked, err := recommend.Rank(seeds, candidates)
	if err != nil {
		s.errorResponseFor(w, err)
		return
	}

	// The session cookie must be set before the response body is written.
	sessionID, err := s.sessionSvc.EnsureSession(w, r)
	if err != nil {
		s.errorResponseFor(w, err)
		return
	}

	token := s.store.Put(ranked)
	s.sessions.Bind(sessionID, token)

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"token":     token,
		"total":     len(ranked),
		"page_size": s.pageSize,
	})
}

// handleGetRecommendations returns one page of a stored result set. The set
// is addressed by the token query parameter, or by the caller's session
// binding when no token is given.
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		sessionID, err := s.sessionSvc.SessionFromRequest(r)
		if err != nil {
			s.expiredResponse(w)
			return
		}
		bound, ok := s.sessions.TokenFor(sessionID)
		if !ok {
			s.expiredResponse(w)
			return
		}
		token = bound
	}

	page, err := queryIntStrict(r, "page", 1)
	if err != nil {
		s.errorResponseFor(w, &ErrValidation{Field: "page", Message: "must be an integer"})
		return
	}
	pageSize, err := queryIntStrict(r, "page_size", s.pageSize)
	if err != nil {
		s.errorResponseFor(w, &ErrValidation{Field: "page_size", Message: "must be an integer"})
		return
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	entries, hasNext, err := s.store.Get(token, page, pageSize)
	if err != nil {
		var notFound *results.ErrTokenNotFound
		if errors.As(err, &notFound) {
			s.expiredResponse(w)
			return
		}
		s.errorResponseFor(w, err)
		return
	}

	items, err := s.hydrate(r, entries)
	if err != nil {
		s.errorResponseFor(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.RecommendationsPage{
		Items:   items,
		Page:    page,
		HasNext: hasNext,
	})
}

// expiredResponse tells the client its result set is gone and a new scoring
// run is needed.
func (s *Server) expiredResponse(w http.ResponseWriter) {
	s.jsonResponse(w, http.StatusNotFound, map[string]string{
		"error":   "recommendations_expired",
		"message": "Recommendations are no longer available. Submit your movies again.",
	})
}

// hydrate resolves score entries to full catalog records, preserving rank
// order. Movies deleted since the scoring run are skipped.
func (s *Server) hydrate(r *http.Request, entries []types.ScoreEntry) ([]types.RecommendedMovie, error) {
	items := make([]types.RecommendedMovie, 0, len(entries))
	if len(entries) == 0 {
		return items, nil
	}

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.MovieID
	}

	movies, err := s.catalog.GetMoviesByIDs(r.Context(), ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]types.Movie, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}

	for _, e := range entries {
		movie, ok := byID[e.MovieID]
		if !ok {
			continue
		}
		items = append(items, types.RecommendedMovie{Movie: movie, Score: e.Score})
	}
	return items, nil
}

// queryIntStrict parses an integer query parameter, returning the default
// when absent and an error when present but malformed. Range validation is
// left to the result store.
func queryIntStrict(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
