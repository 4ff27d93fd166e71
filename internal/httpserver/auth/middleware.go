// filepath: internal/httpserver/auth/middleware.go
package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"mediabridge/internal/audit"
	"mediabridge/internal/logging"
)

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware guards routes with a bearer token.
type Middleware struct {
	secret string
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: secret}
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the token subject as the audit actor.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "Bearer token required")
			return
		}

		subject, err := ValidateToken(m.secret, strings.TrimSpace(tokenString))
		if err != nil {
			logging.Log.Debugf("AuthMiddleware: %v", err)
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(audit.WithActor(r.Context(), subject)))
	})
}
