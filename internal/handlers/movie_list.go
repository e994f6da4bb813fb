package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
)

// MovieLister defines the interface that the service must implement.
type MovieLister interface {
	List(ctx context.Context, userID uuid.UUID, titulo string) ([]models.MovieDB, error)
}

// NewListMoviesHandler returns an HTTP handler that lists the user's collection.
// @Summary List collection entries
// @Description Lists all entries of the authenticated user. With ?q= only entries whose title contains the text (case-insensitive) are returned.
// @Tags movie
// @Produce json
// @Param q query string false "Title substring filter"
// @Success 200 {array} models.MovieDB "Entries"
// @Failure 401 {object} handlers.MovieErrorResponse "Unauthorized"
// @Router /movie [get]
// @Security BearerAuth
func NewListMoviesHandler(svc MovieLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized movie list", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Unauthorized"})
			return
		}

		movies, err := svc.List(r.Context(), claims.UserID, r.URL.Query().Get("q"))
		if err != nil {
			logger.Log.Errorw("failed to list movies", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MovieErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(movies)
	}
}
