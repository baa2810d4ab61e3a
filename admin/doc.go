// Package admin exposes the connector registry and profile store over a JSON
// HTTP API for configuration UIs and operators.
//
// Routes:
//
//	GET    /healthz                      dependency probes
//	GET    /v1/connectors                registered connector descriptors
//	GET    /v1/connectors/{id}           one descriptor with its schema
//	POST   /v1/connectors/{id}/validate  dry-run a configuration (204 or 422)
//	POST   /v1/connectors/{id}/ping      build a client and probe the cluster
//	GET    /v1/profiles                  stored connection profiles
//	POST   /v1/profiles                  upsert a profile (validated first)
//	GET    /v1/profiles/{name}           one profile
//	DELETE /v1/profiles/{name}           remove a profile
//
// Profile routes require a configstore.Store wired via WithProfileStore.
// Responses mask configuration fields the connector schema marks as secret;
// the stored values stay intact.
package admin
