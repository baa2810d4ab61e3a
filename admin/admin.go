package admin

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/searchkit/configstore"
	"github.com/dmitrymomot/searchkit/connector"
)

const defaultPingTimeout = 5 * time.Second

// API exposes the connector registry and profile store over HTTP for
// configuration UIs and operators.
type API struct {
	registry     *connector.Registry
	profiles     configstore.Store
	log          *slog.Logger
	pingTimeout  time.Duration
	healthchecks map[string]func(context.Context) error
}

// Option configures optional API collaborators.
type Option func(*API)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithProfileStore wires a profile store; without it the profile routes
// respond 404.
func WithProfileStore(store configstore.Store) Option {
	return func(a *API) { a.profiles = store }
}

// WithPingTimeout bounds connection probes triggered via the ping endpoint.
// Defaults to 5s.
func WithPingTimeout(d time.Duration) Option {
	return func(a *API) {
		if d > 0 {
			a.pingTimeout = d
		}
	}
}

// WithHealthcheck adds a named dependency probe to the healthz endpoint.
func WithHealthcheck(name string, check func(context.Context) error) Option {
	return func(a *API) {
		if check != nil {
			a.healthchecks[name] = check
		}
	}
}

// New creates the admin API over a connector registry.
func New(registry *connector.Registry, opts ...Option) *API {
	a := &API{
		registry:     registry,
		log:          slog.Default(),
		pingTimeout:  defaultPingTimeout,
		healthchecks: make(map[string]func(context.Context) error),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router assembles the HTTP routes.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", a.handleHealthz)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/connectors", func(r chi.Router) {
			r.Get("/", a.handleListConnectors)
			r.Get("/{id}", a.handleGetConnector)
			r.Post("/{id}/validate", a.handleValidateConfig)
			r.Post("/{id}/ping", a.handlePingConnector)
		})

		if a.profiles != nil {
			r.Route("/profiles", func(r chi.Router) {
				r.Get("/", a.handleListProfiles)
				r.Post("/", a.handleSaveProfile)
				r.Get("/{name}", a.handleGetProfile)
				r.Delete("/{name}", a.handleDeleteProfile)
			})
		}
	})

	return r
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	failed := make(map[string][]string)
	for name, check := range a.healthchecks {
		if err := check(r.Context()); err != nil {
			failed[name] = []string{err.Error()}
		}
	}

	if len(failed) > 0 {
		a.respond(w, r, http.StatusServiceUnavailable, JSONResponse{
			Error: &ErrorDetail{Code: "unhealthy", Details: failed},
		})
		return
	}
	a.respond(w, r, http.StatusOK, JSONResponse{Data: map[string]any{"status": "ok"}})
}
