package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RequireAuth verifies the bearer token and stores the active user in the request context
func RequireAuth(authService domain.AuthServiceInterface, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				writeError(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			user, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				var unauthorized *domain.ErrUnauthorized
				if errors.As(err, &unauthorized) {
					writeError(w, unauthorized.Message, http.StatusUnauthorized)
					return
				}
				log.WithField("error", err.Error()).Error("Failed to authenticate request")
				writeError(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.WithUser(r.Context(), user)))
		})
	}
}
