// Package types provides type definitions for structured data used throughout the movie recommender system.
package types

import (
	"strings"
	"time"
)

// LeadActorCount is the number of leading cast entries considered by the scorer.
// The actors column stores cast in billing order, so the first three names are
// the leads.
const LeadActorCount = 3

// Movie represents a catalog movie row. The genre, writer and actors columns
// hold comma-delimited name lists; use the accessor methods instead of
// splitting by hand.
type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PosterURL   string    `json:"poster_url,omitempty"`
	TMDBID      *int64    `json:"tmdb_id,omitempty"`
	IMDBID      *string   `json:"imdb_id,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Director    string    `json:"director,omitempty"`
	Writer      string    `json:"writer,omitempty"`
	Year        *int      `json:"year,omitempty"`
	Actors      string    `json:"actors,omitempty"`
	VoteAverage *float64  `json:"vote_average,omitempty"`
	VoteCount   *int      `json:"vote_count,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// splitList splits a comma-delimited column into trimmed, non-empty parts.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Genres returns the movie's genre labels as a trimmed list. Label order is
// not meaningful; comparisons are set-based.
func (m *Movie) Genres() []string {
	return splitList(m.Genre)
}

// Writers returns the movie's writer names as a trimmed list.
func (m *Movie) Writers() []string {
	return splitList(m.Writer)
}

// ActorList returns the movie's cast in billing order.
func (m *Movie) ActorList() []string {
	return splitList(m.Actors)
}

// LeadActors returns the first LeadActorCount entries of the cast.
func (m *Movie) LeadActors() []string {
	actors := m.ActorList()
	if len(actors) > LeadActorCount {
		actors = actors[:LeadActorCount]
	}
	return actors
}
