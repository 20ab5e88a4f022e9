// Package tmdb provides a rate-limited client for the TMDB REST API with a
// TTL cache over listing and detail responses.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonathan/movie-recommender/internal/schemas"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"

	// defaultRequestsPerSecond keeps well under TMDB's published limits.
	defaultRequestsPerSecond = 4
)

// Options configures a Client. The zero value of every field falls back to a
// sensible default.
type Options struct {
	BaseURL           string
	HTTPClient        *http.Client
	RequestsPerSecond float64
	CacheTTL          time.Duration
}

// Client calls the TMDB API. All requests pass through a token-bucket rate
// limiter; search, detail and listing responses are cached with a TTL.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *responseCache
}

// NewClient creates a TMDB client.
func NewClient(apiKey string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		cache:      newResponseCache(opts.CacheTTL),
	}
}

// StatusError indicates a non-200 provider response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb request failed: %s returned %d", e.URL, e.StatusCode)
}

// get performs a cached, rate-limited GET and returns the raw body.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	query.Set("api_key", c.apiKey)
	requestURL := c.baseURL + path + "?" + query.Encode()

	if body, ok := c.cache.get(requestURL); ok {
		return body, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tmdb request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: path, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tmdb response: %w", err)
	}

	c.cache.put(requestURL, body)
	return body, nil
}

// SearchMovie searches for movies by title, optionally filtered by release
// year (0 means no filter).
func (c *Client) SearchMovie(ctx context.Context, title string, year int) ([]SearchResult, error) {
	query := url.Values{}
	query.Set("query", title)
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}

	body, err := c.get(ctx, "/search/movie", query)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tmdb search response: %w", err)
	}
	return parsed.Results, nil
}

// GetMovie fetches a movie's details with credits appended. The response is
// validated against the movie-details schema before use; a provider payload
// missing required fields is an error, not a partial record.
func (c *Client) GetMovie(ctx context.Context, tmdbID int64) (*MovieDetails, error) {
	query := url.Values{}
	query.Set("append_to_response", "credits")

	body, err := c.get(ctx, fmt.Sprintf("/movie/%d", tmdbID), query)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateMovieDetails(body); err != nil {
		return nil, fmt.Errorf("tmdb detail response for %d rejected: %w", tmdbID, err)
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to parse tmdb movie response: %w", err)
	}
	return &details, nil
}

// TopRated fetches one page of the top-rated listing. Pages are cached for
// DefaultCacheTTL, so repeated front-page reads cost one upstream call per
// hour.
func (c *Client) TopRated(ctx context.Context, page int) (*ListingPage, error) {
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	body, err := c.get(ctx, "/movie/top_rated", query)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tmdb listing response: %w", err)
	}
	return &ListingPage{
		Page:         parsed.Page,
		Results:      parsed.Results,
		TotalPages:   parsed.TotalPages,
		TotalResults: parsed.TotalResults,
	}, nil
}

// BestMatch picks the search result to enrich from: an exact title match with
// a matching release year wins, otherwise the first result.
func BestMatch(results []SearchResult, title string, year int) *SearchResult {
	if len(results) == 0 {
		return nil
	}
	for i := range results {
		r := &results[i]
		if !equalFoldTrimmed(r.Title, title) {
			continue
		}
		if year == 0 || r.Year() == year {
			return r
		}
	}
	return &results[0]
}

func equalFoldTrimmed(a, b string) bool {
	return len(a) > 0 && len(b) > 0 &&
		normalizeTitle(a) == normalizeTitle(b)
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
