package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/fjod/go_shop/internal/httpx"
)

type claimsKey struct{}

// Middleware rejects requests without a valid bearer token and stores the
// verified claims in the request context.
func Middleware(m *Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				httpx.RespondError(w, http.StatusUnauthorized, "invalid_request", "missing bearer token")
				return
			}

			claims, err := m.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				httpx.RespondError(w, http.StatusUnauthorized, "invalid_token", "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the claims stored by Middleware, or nil.
func FromContext(ctx context.Context) *Claims {
	if c, ok := ctx.Value(claimsKey{}).(*Claims); ok {
		return c
	}
	return nil
}
