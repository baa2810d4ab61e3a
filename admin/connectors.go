package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/searchkit/backend"
	"github.com/dmitrymomot/searchkit/connector"
)

func (a *API) handleListConnectors(w http.ResponseWriter, r *http.Request) {
	descriptors := a.registry.List()
	a.respond(w, r, http.StatusOK, JSONResponse{
		Data: descriptors,
		Meta: map[string]any{"total": len(descriptors)},
	})
}

func (a *API) handleGetConnector(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	desc, ok := a.registry.Get(id)
	if !ok {
		a.respondError(w, r, errors.Join(connector.ErrUnknownConnector, errors.New(id)))
		return
	}
	a.respond(w, r, http.StatusOK, JSONResponse{Data: desc})
}

// handleValidateConfig dry-runs a configuration against the connector schema
// without building a client. 204 means the config would be accepted.
func (a *API) handleValidateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg connector.Config
	if err := decodeBody(r, &cfg); err != nil {
		a.respondError(w, r, err)
		return
	}

	if _, err := a.registry.Validate(chi.URLParam(r, "id"), cfg); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePingConnector builds a client from the posted configuration and
// probes the cluster. The client is discarded afterwards; this endpoint
// exists so operators can verify credentials before saving a profile.
func (a *API) handlePingConnector(w http.ResponseWriter, r *http.Request) {
	var cfg connector.Config
	if err := decodeBody(r, &cfg); err != nil {
		a.respondError(w, r, err)
		return
	}

	client, err := a.registry.Build(chi.URLParam(r, "id"), cfg)
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), a.pingTimeout)
	defer cancel()

	if err := backend.Healthcheck(client)(ctx); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
