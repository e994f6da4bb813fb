package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abertanha/movie-diary/internal/facades"
	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
)

// ErrMetadataUnavailable is returned when the metadata API is unreachable or
// errors. One failing upstream call fails the whole aggregation: partial
// results are never returned.
var ErrMetadataUnavailable = errors.New("metadata API unavailable")

const (
	imageBaseURL = "https://image.tmdb.org/t/p/"
	posterSize   = "w500"
	backdropSize = "w1280"

	maxResults = 10
	maxCast    = 3
)

// MetadataProvider fetches raw movie metadata from the remote API.
type MetadataProvider interface {
	SearchMovies(ctx context.Context, query string) ([]facades.TMDBMovie, error)
	GetMovieDetails(ctx context.Context, movieID int) (*facades.TMDBMovieDetails, error)
	GetMovieCredits(ctx context.Context, movieID int) (*facades.TMDBCredits, error)
}

// SuggestionCache caches aggregated suggestion lists.
type SuggestionCache interface {
	GetByQuery(ctx context.Context, query string) ([]models.Suggestion, error)
	SetByQuery(ctx context.Context, query string, suggestions []models.Suggestion) error
}

// SuggestionService aggregates search, details and credits into display-ready
// suggestions.
type SuggestionService struct {
	metadata MetadataProvider
	cache    SuggestionCache // nil when Redis is not configured
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(metadata MetadataProvider, cache SuggestionCache) *SuggestionService {
	return &SuggestionService{
		metadata: metadata,
		cache:    cache,
	}
}

// Search aggregates the top search results for a free-text query.
//
// For each of the first 10 results the details and credits calls run
// concurrently, and all results are processed concurrently. The join is
// all-or-nothing: the first failing call cancels the batch and the whole
// operation surfaces ErrMetadataUnavailable.
func (s *SuggestionService) Search(ctx context.Context, query string) (*models.SuggestionEnvelope, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetByQuery(ctx, query); err == nil {
			return &models.SuggestionEnvelope{Data: models.SuggestionResults{Results: cached}}, nil
		}
	}

	found, err := s.metadata.SearchMovies(ctx, query)
	if err != nil {
		logger.Log.Errorw("suggestion search failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	if len(found) > maxResults {
		found = found[:maxResults]
	}

	suggestions := make([]models.Suggestion, len(found))

	g, gctx := errgroup.WithContext(ctx)
	for i, movie := range found {
		i, movie := i, movie
		g.Go(func() error {
			var (
				details *facades.TMDBMovieDetails
				credits *facades.TMDBCredits
			)

			inner, ictx := errgroup.WithContext(gctx)
			inner.Go(func() error {
				var err error
				details, err = s.metadata.GetMovieDetails(ictx, movie.ID)
				return err
			})
			inner.Go(func() error {
				var err error
				credits, err = s.metadata.GetMovieCredits(ictx, movie.ID)
				return err
			})
			if err := inner.Wait(); err != nil {
				return err
			}

			suggestions[i] = buildSuggestion(movie, details, credits)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("suggestion aggregation failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Popularidade > suggestions[j].Popularidade
	})

	if s.cache != nil {
		if err := s.cache.SetByQuery(ctx, query, suggestions); err != nil {
			logger.Log.Errorw("failed to cache suggestions", "query", query, "error", err)
		}
	}

	return &models.SuggestionEnvelope{Data: models.SuggestionResults{Results: suggestions}}, nil
}

// buildSuggestion merges one search result with its details and credits into
// a display-ready record.
func buildSuggestion(movie facades.TMDBMovie, details *facades.TMDBMovieDetails, credits *facades.TMDBCredits) models.Suggestion {
	s := models.Suggestion{
		Titulo:       movie.Title,
		Ano:          releaseYear(movie.ReleaseDate),
		Popularidade: movie.Popularity,
	}

	if movie.Adult {
		s.Classificacao = "18+"
	} else {
		s.Classificacao = "Livre/Outra"
	}

	if movie.Overview != "" {
		s.Sinopse = ptr(movie.Overview)
	}

	if details.PosterPath != nil && *details.PosterPath != "" {
		s.PosterURL = ptr(imageBaseURL + posterSize + *details.PosterPath)
	}
	if details.BackdropPath != nil && *details.BackdropPath != "" {
		s.BackdropURL = ptr(imageBaseURL + backdropSize + *details.BackdropPath)
	}

	if len(details.Genres) > 0 {
		names := make([]string, 0, len(details.Genres))
		for _, g := range details.Genres {
			names = append(names, g.Name)
		}
		s.Genero = ptr(strings.Join(names, ", "))
	}

	if details.Runtime > 0 {
		s.Duracao = ptr(fmt.Sprintf("%d minutos", details.Runtime))
	}

	// Cast stays in upstream order, capped at three names.
	cast := credits.Cast
	if len(cast) > maxCast {
		cast = cast[:maxCast]
	}
	if len(cast) > 0 {
		names := make([]string, 0, len(cast))
		for _, member := range cast {
			names = append(names, member.Name)
		}
		s.Elenco = ptr(strings.Join(names, ", "))
	}

	if director := pickDirector(credits.Crew); director != "" {
		s.Diretor = ptr(director)
	}

	return s
}

// pickDirector returns the most popular Directing-department crew member.
func pickDirector(crew []facades.TMDBCreditsMember) string {
	var (
		name string
		best float64
	)
	for _, member := range crew {
		if member.KnownForDepartment != "Directing" {
			continue
		}
		if name == "" || member.Popularity > best {
			name = member.Name
			best = member.Popularity
		}
	}
	return name
}

// releaseYear extracts the year part of a "YYYY-MM-DD" release date.
func releaseYear(releaseDate string) string {
	year, _, _ := strings.Cut(releaseDate, "-")
	if year == "" {
		return "N/A"
	}
	return year
}

func ptr(s string) *string { return &s }
