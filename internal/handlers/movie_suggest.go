package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
	"github.com/abertanha/movie-diary/internal/services"
)

// Suggester defines the interface that the aggregation service must implement.
type Suggester interface {
	Search(ctx context.Context, query string) (*models.SuggestionEnvelope, error)
}

// NewSuggestMoviesHandler returns an HTTP handler for metadata suggestions.
// @Summary Search the metadata API for suggestions
// @Description Aggregates search, details and credits from the metadata API into ranked display-ready suggestions. Any failing upstream call fails the whole request.
// @Tags movie
// @Produce json
// @Param titulo query string true "Free-text title query"
// @Success 200 {object} models.SuggestionEnvelope "Ranked suggestions"
// @Failure 400 {object} handlers.MovieErrorResponse "Missing query"
// @Failure 401 {object} handlers.MovieErrorResponse "Unauthorized"
// @Failure 424 {object} handlers.MovieErrorResponse "Metadata API failed"
// @Router /movie/tmdb/movie [get]
// @Security BearerAuth
func NewSuggestMoviesHandler(svc Suggester, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := claimsFromRequest(r, tokener); err != nil {
			logger.Log.Errorw("unauthorized suggestion search", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Unauthorized"})
			return
		}

		query := r.URL.Query().Get("titulo")
		if query == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Query parameter titulo is required"})
			return
		}

		envelope, err := svc.Search(r.Context(), query)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMetadataUnavailable):
				w.WriteHeader(http.StatusFailedDependency)
				json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Failed to fetch movie metadata"})
			default:
				logger.Log.Errorw("failed to aggregate suggestions", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(envelope)
	}
}
