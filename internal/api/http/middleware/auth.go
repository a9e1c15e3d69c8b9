// Package middleware contains the HTTP middleware chain: bearer-token
// authentication, request logging, and per-client rate limiting.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

type contextKey string

const userIDKey contextKey = "user_id"

// ErrNoUserInContext is returned when a handler asks for the authenticated
// user outside an authenticated route.
var ErrNoUserInContext = errors.New("no authenticated user in context")

// UserIDFromContext returns the authenticated user's ID set by RequireAuth.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoUserInContext
	}
	return id, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token's user ID in the request context.
func RequireAuth(tokens model.TokenManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			bearer, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || bearer == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, _, err := tokens.ParseToken(bearer)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
