package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/campaign-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPaths não exigem token
var publicPaths = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, public := publicPaths[r.URL.Path]; public || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteFromError(w, err, apiErrors.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
