package middleware

import (
	"errors"
	"net/http"
	"strings"

	"travel-api/internal/logger"
	apperrors "travel-api/internal/pkg/errors"
	"travel-api/internal/services"
)

// AuthMiddleware requires a valid bearer token and puts its user on the
// request context.
func AuthMiddleware(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractTokenFromHeader(r)
			if tokenString == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			user, err := authService.VerifyToken(r.Context(), tokenString)
			if err != nil {
				rejectToken(w, r, err)
				return
			}

			setRequestUser(r.Context(), user.ID.Hex())
			ctx := services.WithUserContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractTokenFromHeader(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

func rejectToken(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientPermission):
		writeJSONError(w, http.StatusForbidden, "admin role required")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
	default:
		logger.Logger.WithError(err).WithField("path", r.URL.Path).Error("token verification failed")
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
