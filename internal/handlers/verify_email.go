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

// EmailVerifier defines the interface that the verification service must implement.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, token string) (*models.UserDB, error)
}

// VerifyEmailErrorResponse represents an error response for email verification
// swagger:model VerifyEmailErrorResponse
type VerifyEmailErrorResponse struct {
	// Error message
	// default: Verification token not found
	Error string `json:"error"`
}

// NewVerifyEmailHandler returns an HTTP handler that consumes a verification token.
// @Summary Verify email address
// @Description Consumes a verification token; the token is cleared on success, so a second attempt fails with 404.
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} models.PublicUser "Verified user"
// @Failure 400 {object} handlers.VerifyEmailErrorResponse "Missing token"
// @Failure 404 {object} handlers.VerifyEmailErrorResponse "Token unknown or already consumed"
// @Router /auth/verify-email [get]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyEmailErrorResponse{
				Error: "Verification token is required",
			})
			return
		}

		user, err := svc.VerifyEmail(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVerificationTokenNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(VerifyEmailErrorResponse{
					Error: "Verification token not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyEmailErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user.Public())
	}
}
