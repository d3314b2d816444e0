package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
)

// Tokener defines the minimal interface needed by the auth middlewares.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
	GetRole(ctx context.Context, tokenString string) (string, error)
}

// AuthMiddleware returns a middleware that validates the request JWT.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleMiddleware returns a middleware that requires the JWT role claim to
// match the given role. The capability check lives here, above the core
// services.
func RoleMiddleware(tokener Tokener, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			tokenRole, err := tokener.GetRole(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if tokenRole != role {
				logger.Log.Errorw("forbidden", "required_role", role, "role", tokenRole)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
