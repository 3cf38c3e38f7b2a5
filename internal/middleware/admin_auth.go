package middleware

import (
	"net/http"

	"travel-api/internal/services"
)

// AdminMiddleware is AuthMiddleware restricted to users with the admin role.
// A valid token for any other role gets 403.
func AdminMiddleware(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractTokenFromHeader(r)
			if tokenString == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			user, err := authService.VerifyTokenAdmin(r.Context(), tokenString)
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
