// filepath: internal/httpserver/router.go
package httpserver

import (
	"net/http"

	"mediabridge/internal/httpserver/auth"
	"mediabridge/internal/httpserver/handlers"

	"github.com/gorilla/mux"
)

// SetupRouter configures the main router and its sub-routers. When am is
// nil the channel endpoints are left unauthenticated; when metrics is nil
// no /metrics endpoint is served.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware, metrics http.Handler) *mux.Router {
	r := mux.NewRouter()

	// Public Endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	if metrics != nil {
		r.Handle("/metrics", metrics).Methods("GET")
	}

	apiRouter := r.PathPrefix("/api").Subrouter()
	if am != nil {
		apiRouter.Use(am.AuthMiddleware)
	}

	// Channel names may contain slashes, e.g. "mediabridge/files".
	apiRouter.HandleFunc("/channel/{channel:.+}", h.InvokeChannel).Methods("POST")

	return r
}
