package connector

import (
	"errors"
	"sync"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/searchkit/pkg/validator"
)

// Factory builds an OpenSearch client from a schema-normalized configuration.
// Factories must not perform network I/O; connectivity is verified lazily on
// first use or explicitly by the caller.
type Factory func(cfg Config) (*opensearch.Client, error)

// Registry maps connector ids to descriptors and factories. The zero value is
// not usable; create one with NewRegistry.
type Registry struct {
	mu          sync.RWMutex
	factories   map[string]Factory
	descriptors map[string]Descriptor
	order       []string
}

// NewRegistry creates an empty connector registry.
func NewRegistry() *Registry {
	return &Registry{
		factories:   make(map[string]Factory),
		descriptors: make(map[string]Descriptor),
	}
}

// Register adds a connector type. Ids are case-insensitive and trimmed.
// Registering an id twice fails with ErrDuplicateConnector and leaves the
// first registration authoritative.
func (r *Registry) Register(desc Descriptor, factory Factory) error {
	id := normalizeID(desc.ID)
	if id == "" {
		return ErrEmptyID
	}
	if factory == nil {
		return ErrNilFactory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[id]; exists {
		return errors.Join(ErrDuplicateConnector, errors.New(id))
	}

	desc.ID = id
	r.descriptors[id] = desc
	r.factories[id] = factory
	r.order = append(r.order, id)
	return nil
}

// List returns all registered descriptors in registration order. The slice is
// a copy and safe to retain.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.descriptors[id])
	}
	return out
}

// Get retrieves a descriptor by id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.descriptors[normalizeID(id)]
	return desc, ok
}

// Validate checks cfg against the schema registered for id and returns the
// normalized copy that a factory would receive. Fails with ErrUnknownConnector
// or *InvalidConfigError.
func (r *Registry) Validate(id string, cfg Config) (Config, error) {
	id = normalizeID(id)

	r.mu.RLock()
	desc, ok := r.descriptors[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Join(ErrUnknownConnector, errors.New(id))
	}

	normalized, err := desc.Schema.Validate(cfg)
	if err != nil {
		return nil, &InvalidConfigError{
			ConnectorID: id,
			Fields:      validator.ExtractValidationErrors(err),
		}
	}
	return normalized, nil
}

// Build validates cfg against the descriptor registered for id and invokes the
// factory with the normalized configuration. Construction failures are joined
// with ErrConnectionFailed; the registry itself never retries.
func (r *Registry) Build(id string, cfg Config) (*opensearch.Client, error) {
	id = normalizeID(id)

	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Join(ErrUnknownConnector, errors.New(id))
	}

	normalized, err := r.Validate(id, cfg)
	if err != nil {
		return nil, err
	}

	client, err := factory(normalized)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	return client, nil
}
