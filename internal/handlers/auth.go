package handlers

import (
	"context"
	"net/http"

	"github.com/abertanha/movie-diary/internal/jwt"
)

// Tokener defines the token operations protected handlers need.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsFromRequest extracts and validates the bearer token of a request.
func claimsFromRequest(r *http.Request, tokener Tokener) (*jwt.Claims, error) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	return tokener.GetClaims(ctx, tokenStr)
}
