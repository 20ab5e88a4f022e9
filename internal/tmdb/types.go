package tmdb

import (
	"strconv"
	"strings"
)

// SearchResult is one row of a TMDB search response.
type SearchResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// searchResponse is the envelope of a search or listing request.
type searchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// ListingPage is one page of a "top movies" style listing.
type ListingPage struct {
	Page         int
	Results      []SearchResult
	TotalPages   int
	TotalResults int
}

// Genre is a TMDB genre label.
type Genre struct {
	Name string `json:"name"`
}

// CastMember is one cast credit, in billing order.
type CastMember struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// CrewMember is one crew credit.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits holds the cast and crew of a movie.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is a TMDB movie detail response with credits appended.
type MovieDetails struct {
	ID          int64   `json:"id"`
	IMDBID      string  `json:"imdb_id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Genres      []Genre `json:"genres"`
	Credits     Credits `json:"credits"`
}

// Year parses the year out of the release date, or 0 when absent.
func (d *MovieDetails) Year() int {
	return yearOf(d.ReleaseDate)
}

// Year parses the year out of the release date, or 0 when absent.
func (r *SearchResult) Year() int {
	return yearOf(r.ReleaseDate)
}

func yearOf(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// Director returns the first crew member with the Director job, or "".
func (d *MovieDetails) Director() string {
	for _, crew := range d.Credits.Crew {
		if crew.Job == "Director" {
			return crew.Name
		}
	}
	return ""
}

// Writers returns crew names whose job involves writing, in credit order.
func (d *MovieDetails) Writers() []string {
	var writers []string
	for _, crew := range d.Credits.Crew {
		job := strings.ToLower(crew.Job)
		if strings.Contains(job, "writer") || strings.Contains(job, "screenplay") ||
			strings.Contains(job, "author") || strings.Contains(job, "story") {
			if crew.Name != "" {
				writers = append(writers, crew.Name)
			}
		}
	}
	return writers
}

// TopCast returns the first n cast names in billing order.
func (d *MovieDetails) TopCast(n int) []string {
	var names []string
	for _, cast := range d.Credits.Cast {
		if len(names) >= n {
			break
		}
		if cast.Name != "" {
			names = append(names, cast.Name)
		}
	}
	return names
}

// GenreNames returns the genre labels in response order.
func (d *MovieDetails) GenreNames() []string {
	var names []string
	for _, g := range d.Genres {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return names
}

// PosterURL resolves the poster path against the TMDB image host, or "" when
// the movie has no poster.
func (d *MovieDetails) PosterURL() string {
	if d.PosterPath == "" {
		return ""
	}
	return imageBaseURL + d.PosterPath
}
