// Package connector implements a registry of named strategies ("connectors")
// for obtaining a configured OpenSearch client.
//
// A connector couples a Descriptor (identifier, human label, and a field
// schema describing its configuration surface) with a Factory that turns a
// validated configuration into a ready-to-use *opensearch.Client. The registry
// guarantees that a factory only ever sees a configuration that passed schema
// validation, with defaults applied and types normalized.
//
// Client construction performs no network I/O; connectivity is verified lazily
// on first use, or explicitly by the caller (see the backend package's Ping).
// The registry does not cache clients and does not retry; both decisions
// belong to the caller.
//
// # Usage
//
//	reg := connector.NewRegistry()
//	if err := reg.Register(standard.Descriptor(), standard.Build); err != nil {
//	    return err
//	}
//
//	client, err := reg.Build("standard", connector.Config{
//	    "addresses": []string{"https://localhost:9200"},
//	})
//	if err != nil {
//	    var invalid *connector.InvalidConfigError
//	    if errors.As(err, &invalid) {
//	        // invalid.Fields carries per-field messages for form rendering
//	    }
//	}
//
// # Error Handling
//
// Registration of an already-known id fails with ErrDuplicateConnector and
// leaves the registry unchanged. Build distinguishes three failure classes:
// ErrUnknownConnector (id never registered), InvalidConfigError (user-supplied
// values fail the descriptor's schema; errors.Is-compatible with
// ErrInvalidConfig), and ErrConnectionFailed joined with the underlying cause
// when the factory itself fails.
//
// # Concurrency
//
// The registry is read-mostly. Register is typically called during process
// initialization, but late registration is supported: the internal state is
// guarded by a RWMutex so Build, List, and Get are safe for concurrent use
// from request-handling goroutines.
package connector
