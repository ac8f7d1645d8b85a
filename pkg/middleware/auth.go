package middleware

import (
	"net/http"
	"strings"

	"github.com/ytanya/FreshNoodle/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the Authorization bearer token and puts the caller's
// identity into the request context. Tokens are stateless: there is no
// server-side session row to consult.
func AuthJWT(config utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(parts[1], config)
			if err != nil {
				logger.Warn("Token validation failed", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				logger.Warn("Malformed subject claim", zap.String("sub", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole admits the request only when the token carries at least one of
// the given roles. Must run after AuthJWT.
func RequireRole(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRoles, ok := utils.GetRolesFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, want := range roles {
				for _, have := range userRoles {
					if have == want {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			userID, _ := utils.GetUserIDFromContext(r.Context())
			logger.Warn("Role check: access denied",
				zap.Int64("user_id", userID),
				zap.Strings("required", roles),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Insufficient role")
		})
	}
}
