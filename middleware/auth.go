package middleware

import (
	"context"
	"net/http"
	"strings"

	"ember_server/apperrors"
	"ember_server/helpers"
	"ember_server/services"
)

type contextKey string

const userIDKey contextKey = "userID"

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID extracts the authenticated user id from the request context.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// RequireAuth verifies the bearer token and passes the authenticated user
// id to the handler through the request context.
func RequireAuth(verifier services.TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			helpers.WriteError(w, apperrors.Unauthenticated("Authorization required"))
			return
		}

		claims, err := verifier.Verify(r.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			helpers.WriteError(w, apperrors.Unauthenticated("Invalid or expired token"))
			return
		}

		next(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
	}
}
