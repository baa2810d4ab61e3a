// Package backend performs index and query operations against an OpenSearch
// cluster through a client built by the connector registry.
//
// A Backend wraps exactly one client and one Config. Clients are never
// mutated: when the connection configuration changes, build a new client via
// the registry and create a fresh backend. The package builds on
// github.com/opensearch-project/opensearch-go/v2, which is thread-safe, so a
// single backend can serve concurrent requests.
//
// # Index tuning
//
// Index creation applies the backend's settings: shard and replica counts, an
// edge n-gram analyzer bounded by MinNGram/MaxNGram for prefix matching, and
// an optional synonym filter fed from WithSynonyms or a YAML synonyms file.
// Text fields in the supplied mapping get these analyzers attached unless the
// mapping names its own.
//
// # Usage
//
//	client, err := registry.Build("basicauth", cfg)
//	if err != nil {
//	    return err
//	}
//	b, err := backend.New(client, backend.Config{
//	    IndexPrefix: "myapp",
//	    Fuzziness:   "AUTO",
//	    MinNGram:    3,
//	    MaxNGram:    10,
//	    Shards:      1,
//	})
//	if err != nil {
//	    return err
//	}
//
//	err = b.CreateIndex(ctx, "content", map[string]any{
//	    "title": map[string]any{"type": "text"},
//	    "tags":  map[string]any{"type": "keyword"},
//	})
//
//	result, err := b.Search(ctx, backend.Request{
//	    Index: "content",
//	    Query: "opensearch",
//	})
//
// # Availability
//
// Two probes exist on purpose. Ping propagates the failure cause joined with
// ErrHealthcheckFailed and belongs in code paths that must fail loudly.
// IsAvailable swallows the error after logging it at debug level and belongs
// in availability gating (status pages, scheduled-task guards) where an
// unreachable cluster is an expected state, not an exception.
package backend
