package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/abertanha/movie-diary/internal/logger"
)

// DefaultTMDBBaseURL is the production metadata API root.
const DefaultTMDBBaseURL = "https://api.themoviedb.org/3"

// tmdbLanguage pins the localized metadata the frontend displays.
const tmdbLanguage = "pt-BR"

// TMDBMovie is one raw search result.
type TMDBMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	Popularity  float64 `json:"popularity"`
	Adult       bool    `json:"adult"`
}

// TMDBMovieDetails is the raw movie-details response.
type TMDBMovieDetails struct {
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Runtime      int     `json:"runtime"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
}

// TMDBCreditsMember is one cast or crew entry of the credits response.
type TMDBCreditsMember struct {
	Name               string  `json:"name"`
	Popularity         float64 `json:"popularity"`
	KnownForDepartment string  `json:"known_for_department"`
}

// TMDBCredits is the raw credits response.
type TMDBCredits struct {
	Cast []TMDBCreditsMember `json:"cast"`
	Crew []TMDBCreditsMember `json:"crew"`
}

// TMDBFacade talks to the movie-metadata HTTP API.
type TMDBFacade struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewTMDBFacade creates a facade for the metadata API. baseURL is
// overridable for tests; pass DefaultTMDBBaseURL in production.
func NewTMDBFacade(client *http.Client, apiKey, baseURL string) *TMDBFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &TMDBFacade{
		client:  client,
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// SearchMovies runs a free-text title search and returns the raw result list.
func (f *TMDBFacade) SearchMovies(ctx context.Context, query string) ([]TMDBMovie, error) {
	u := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s&language=%s&page=1",
		f.baseURL, f.apiKey, url.QueryEscape(query), tmdbLanguage)

	var resp struct {
		Results []TMDBMovie `json:"results"`
	}
	if err := f.getJSON(ctx, u, &resp); err != nil {
		logger.Log.Errorw("movie search failed", "query", query, "error", err)
		return nil, err
	}

	return resp.Results, nil
}

// GetMovieDetails fetches genres, runtime and artwork paths for a movie.
func (f *TMDBFacade) GetMovieDetails(ctx context.Context, movieID int) (*TMDBMovieDetails, error) {
	u := fmt.Sprintf("%s/movie/%d?api_key=%s&language=%s", f.baseURL, movieID, f.apiKey, tmdbLanguage)

	var details TMDBMovieDetails
	if err := f.getJSON(ctx, u, &details); err != nil {
		logger.Log.Errorw("movie details fetch failed", "movie_id", movieID, "error", err)
		return nil, err
	}

	return &details, nil
}

// GetMovieCredits fetches cast and crew for a movie.
func (f *TMDBFacade) GetMovieCredits(ctx context.Context, movieID int) (*TMDBCredits, error) {
	u := fmt.Sprintf("%s/movie/%d/credits?api_key=%s&language=%s", f.baseURL, movieID, f.apiKey, tmdbLanguage)

	var credits TMDBCredits
	if err := f.getJSON(ctx, u, &credits); err != nil {
		logger.Log.Errorw("movie credits fetch failed", "movie_id", movieID, "error", err)
		return nil, err
	}

	return &credits, nil
}

func (f *TMDBFacade) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metadata API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
