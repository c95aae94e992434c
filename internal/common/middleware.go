package common

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	handleKey contextKey = "handle"
)

// AuthMiddleware validates the Bearer token and injects the caller's
// identity into the request context. Handlers behind it can assume
// UserIDFrom returns a non-empty id.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, "authorization required")
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			unauthorized(w, "invalid auth header")
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, handleKey, claims.Handle)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFrom returns the authenticated user's id, "" when the request
// did not pass through AuthMiddleware.
func UserIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// HandleFrom returns the authenticated user's handle.
func HandleFrom(ctx context.Context) string {
	h, _ := ctx.Value(handleKey).(string)
	return h
}

// WithUser builds a context carrying an identity, used by tests and
// internal callers that bypass HTTP.
func WithUser(ctx context.Context, userID, handle string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, handleKey, handle)
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
