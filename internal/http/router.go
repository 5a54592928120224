// Package httpapi wires the public HTTP surface: the profile endpoint behind
// auth, plus the unauthenticated health and metrics endpoints.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"prisonerprofile/internal/platform/middleware"
	profilehandler "prisonerprofile/internal/profile/handler"
	"prisonerprofile/pkg/platform/httputil"
)

// HealthChecker reports readiness of one named dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries everything the router mounts.
type Deps struct {
	Profile   *profilehandler.Handler
	Validator middleware.JWTValidator
	Logger    *slog.Logger

	// Cache is optional; a nil checker is reported as "disabled", not unhealthy.
	Cache HealthChecker
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", healthHandler(d.Cache))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(d.Validator, d.Logger))
		d.Profile.Register(r)
	})

	return r
}

func healthHandler(cache HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]string{"cache": "disabled"}
		if cache != nil {
			components["cache"] = "ok"
			if err := cache.Health(r.Context()); err != nil {
				// The register cache degrades to pass-through, so a dead cache
				// does not make the service unhealthy.
				components["cache"] = "unavailable"
			}
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":     "UP",
			"components": components,
		})
	}
}
