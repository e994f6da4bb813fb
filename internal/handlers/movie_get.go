package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
	"github.com/abertanha/movie-diary/internal/services"
)

// MovieGetter defines the interface that the service must implement.
type MovieGetter interface {
	Get(ctx context.Context, id, userID uuid.UUID) (*models.MovieDB, error)
}

// NewGetMovieHandler returns an HTTP handler that fetches one collection entry.
// @Summary Get one collection entry
// @Tags movie
// @Produce json
// @Param id path string true "Movie id (UUID)"
// @Success 200 {object} models.MovieDB "Entry"
// @Failure 400 {object} handlers.MovieErrorResponse "Invalid id"
// @Failure 401 {object} handlers.MovieErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MovieErrorResponse "Entry not found"
// @Router /movie/{id} [get]
// @Security BearerAuth
func NewGetMovieHandler(svc MovieGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized movie get", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Invalid movie id"})
			return
		}

		movie, err := svc.Get(r.Context(), id, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Movie not found"})
			default:
				logger.Log.Errorw("failed to get movie", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(movie)
	}
}
