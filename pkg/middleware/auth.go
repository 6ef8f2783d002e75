package middleware

import (
	"net/http"
	"strings"

	"movie-matcher/internal/data/repository"
	"movie-matcher/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the bearer token and resolves the caller identity.
// Tokens naming a username that no longer exists are rejected.
func AuthJWT(userRepo repository.UserRepository, jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseMessage(w, http.StatusUnauthorized, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseMessage(w, http.StatusUnauthorized, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(jwtConfig.Secret, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseMessage(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByUsername(r.Context(), claims.Subject)
			if err != nil {
				logger.Error("Failed to resolve token identity",
					zap.String("username", claims.Subject),
					zap.Error(err))
				utils.ResponseMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token for unknown username", zap.String("username", claims.Subject))
				utils.ResponseMessage(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
