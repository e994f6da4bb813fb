package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
)

// MovieCreator defines the interface that the service must implement.
type MovieCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.MovieInput) (*models.MovieDB, error)
}

// MovieErrorResponse represents an error response for collection operations
// swagger:model MovieErrorResponse
type MovieErrorResponse struct {
	// Error message
	// default: Movie not found
	Error string `json:"error"`
}

// NewCreateMovieHandler returns an HTTP handler that adds a collection entry.
// @Summary Add a movie to the collection
// @Description Creates a collection entry for the authenticated user, manually filled or pre-filled from a suggestion.
// @Tags movie
// @Accept json
// @Produce json
// @Param movie body models.MovieInput true "Movie entry"
// @Success 201 {object} models.MovieDB "Created entry"
// @Failure 400 {object} handlers.MovieErrorResponse "Invalid request payload"
// @Failure 401 {object} handlers.MovieErrorResponse "Unauthorized"
// @Router /movie [post]
// @Security BearerAuth
func NewCreateMovieHandler(svc MovieCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized movie create", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Unauthorized"})
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

		movie, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			logger.Log.Errorw("failed to create movie", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(movie)
	}
}
