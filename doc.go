// Package searchkit provides a pluggable OpenSearch integration layer for Go
// applications: a connector registry that turns persisted configurations into
// configured clients, a search backend over those clients, and supporting
// pieces for profiles, caching and administration.
//
// Key pieces:
//
//   - connector: registry mapping connector ids to configuration schemas and
//     client factories (standard, basicauth, awssigv4 shipped in subpackages)
//   - backend: index management, bulk document operations and fuzzy search
//     with edge n-gram and synonym analysis
//   - configstore: persisted, named connection profiles (PostgreSQL or memory)
//   - resultcache: search result caching (Redis or in-memory LRU)
//   - admin: JSON HTTP API over the registry and profile store
//
// Basic Usage:
//
//	registry := searchkit.NewDefaultRegistry()
//
//	client, err := registry.Build(basicauth.ID, connector.Config{
//		"addresses": []string{"https://search.internal:9200"},
//		"username":  "svc",
//		"password":  os.Getenv("SEARCH_PASSWORD"),
//	})
//	if err != nil {
//		// errors.Is: connector.ErrUnknownConnector, connector.ErrInvalidConfig,
//		// connector.ErrConnectionFailed
//	}
//
//	b, err := backend.New(client, backend.Config{IndexPrefix: "myapp"})
//
// Custom connectors register alongside the built-in ones:
//
//	err := registry.Register(connector.Descriptor{
//		ID:     "proxy",
//		Label:  "Corporate proxy",
//		Schema: connector.Schema{ /* ... */ },
//	}, buildProxyClient)
//
// The registry is safe for concurrent use; configurations are validated
// against the connector schema on every build, so a stored config that
// drifted from the schema fails loudly instead of producing a half-configured
// client.
package searchkit
