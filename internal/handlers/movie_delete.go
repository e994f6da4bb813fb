package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/services"
)

// MovieDeleter defines the interface that the service must implement.
type MovieDeleter interface {
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// NewDeleteMovieHandler returns an HTTP handler that removes an entry.
// @Summary Delete a collection entry
// @Description Deletes one entry. Deleting an unknown id, or the same id twice, fails with 404.
// @Tags movie
// @Produce json
// @Param id path string true "Movie id (UUID)"
// @Success 204 "Entry deleted"
// @Failure 400 {object} handlers.MovieErrorResponse "Invalid id"
// @Failure 401 {object} handlers.MovieErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MovieErrorResponse "Entry not found"
// @Router /movie/{id} [delete]
// @Security BearerAuth
func NewDeleteMovieHandler(svc MovieDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized movie delete", "err", err)
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

		if err := svc.Delete(r.Context(), id, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Movie not found"})
			default:
				logger.Log.Errorw("failed to delete movie", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
