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

// MovieUpdater defines the interface that the service must implement.
type MovieUpdater interface {
	Update(ctx context.Context, id, userID uuid.UUID, in models.MovieInput) (*models.MovieDB, error)
}

// NewUpdateMovieHandler returns an HTTP handler that overwrites an entry.
// @Summary Update a collection entry
// @Description Full-field update: every client-supplied field is overwritten, then the stored entry is returned.
// @Tags movie
// @Accept json
// @Produce json
// @Param id path string true "Movie id (UUID)"
// @Param movie body models.MovieInput true "Movie entry"
// @Success 200 {object} models.MovieDB "Updated entry"
// @Failure 400 {object} handlers.MovieErrorResponse "Invalid id or payload"
// @Failure 401 {object} handlers.MovieErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MovieErrorResponse "Entry not found"
// @Router /movie/{id} [patch]
// @Security BearerAuth
func NewUpdateMovieHandler(svc MovieUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized movie update", "err", err)
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

		var in models.MovieInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := validate.Struct(in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: validationMessage(err)})
			return
		}

		movie, err := svc.Update(r.Context(), id, claims.UserID, in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Movie not found"})
			default:
				logger.Log.Errorw("failed to update movie", "err", err)
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
