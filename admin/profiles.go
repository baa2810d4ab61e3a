package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/searchkit/configstore"
)

// redactedValue replaces secret field values in API responses. The stored
// configuration keeps the real value; only the representation is masked.
const redactedValue = "[redacted]"

// redactProfile masks fields the connector schema marks as secret. Unknown
// connector ids pass through unredacted since no schema can say what is
// sensitive; saving such a profile is rejected anyway.
func (a *API) redactProfile(profile configstore.Profile) configstore.Profile {
	desc, ok := a.registry.Get(profile.ConnectorID)
	if !ok {
		return profile
	}

	profile.Config = profile.Config.Clone()
	for _, field := range desc.Schema {
		if !field.Secret {
			continue
		}
		if _, present := profile.Config[field.Name]; present {
			profile.Config[field.Name] = redactedValue
		}
	}
	return profile
}

func (a *API) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := a.profiles.List(r.Context())
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	for i := range profiles {
		profiles[i] = a.redactProfile(profiles[i])
	}
	a.respond(w, r, http.StatusOK, JSONResponse{
		Data: profiles,
		Meta: map[string]any{"total": len(profiles)},
	})
}

// handleSaveProfile upserts a profile. The configuration is validated against
// the connector schema first and persisted in its normalized form, so stored
// profiles carry schema defaults explicitly.
func (a *API) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile configstore.Profile
	if err := decodeBody(r, &profile); err != nil {
		a.respondError(w, r, err)
		return
	}
	if err := profile.Validate(); err != nil {
		a.respondError(w, r, err)
		return
	}

	normalized, err := a.registry.Validate(profile.ConnectorID, profile.Config)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	profile.Config = normalized

	saved, err := a.profiles.Save(r.Context(), profile)
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	a.log.InfoContext(r.Context(), "profile saved",
		"profile", saved.Name, "connector", saved.ConnectorID)
	a.respond(w, r, http.StatusOK, JSONResponse{Data: a.redactProfile(saved)})
}

func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.profiles.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, JSONResponse{Data: a.redactProfile(profile)})
}

func (a *API) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := a.profiles.Delete(r.Context(), name); err != nil {
		a.respondError(w, r, err)
		return
	}

	a.log.InfoContext(r.Context(), "profile deleted", "profile", name)
	w.WriteHeader(http.StatusNoContent)
}
