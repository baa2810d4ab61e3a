package backend

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/searchkit/pkg/validator"
	"github.com/dmitrymomot/searchkit/resultcache"
)

// Backend performs index and query operations against one OpenSearch cluster
// through a client obtained from the connector registry. A backend never
// mutates its client: when the connection configuration changes, discard the
// backend and build a new one from a freshly built client.
type Backend struct {
	client     *opensearch.Client
	cfg        Config
	log        *slog.Logger
	cache      resultcache.Store
	synonyms   []SynonymGroup
	typeChecks []FieldTypeCheck
}

// Option configures optional backend collaborators.
type Option func(*Backend)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(b *Backend) {
		if log != nil {
			b.log = log
		}
	}
}

// WithResultCache wires a result cache consulted by Search. Without it every
// query goes to the cluster.
func WithResultCache(store resultcache.Store) Option {
	return func(b *Backend) { b.cache = store }
}

// WithSynonyms sets synonym groups baked into the analyzer of indices created
// by this backend, in addition to any groups loaded from Config.SynonymsFile.
func WithSynonyms(groups ...SynonymGroup) Option {
	return func(b *Backend) { b.synonyms = append(b.synonyms, groups...) }
}

// WithFieldTypeCheck appends a field type predicate. Checks are consulted in
// registration order after the built-in types; the first one accepting the
// type wins.
func WithFieldTypeCheck(check FieldTypeCheck) Option {
	return func(b *Backend) {
		if check != nil {
			b.typeChecks = append(b.typeChecks, check)
		}
	}
}

// New creates a search backend over an already constructed client.
// It returns an error when cfg fails validation; no network I/O happens here.
func New(client *opensearch.Client, cfg Config, opts ...Option) (*Backend, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if err := validateConfig(cfg); err != nil {
		return nil, errors.Join(ErrInvalidSettings, err)
	}

	b := &Backend{
		client: client,
		cfg:    cfg,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if cfg.SynonymsFile != "" {
		groups, err := LoadSynonyms(cfg.SynonymsFile)
		if err != nil {
			return nil, err
		}
		b.synonyms = append(b.synonyms, groups...)
	}

	return b, nil
}

func validateConfig(cfg Config) error {
	return validator.Apply(
		validator.OneOfString("fuzziness", cfg.Fuzziness, []string{"", "AUTO", "0", "1", "2"}),
		validator.IntMin("min_ngram", cfg.MinNGram, 1),
		validator.IntMin("max_ngram", cfg.MaxNGram, cfg.MinNGram),
		validator.IntMin("shards", cfg.Shards, 1),
		validator.IntMin("replicas", cfg.Replicas, 0),
	)
}

// Ping verifies cluster connectivity and propagates any failure joined with
// ErrHealthcheckFailed. Use this where unavailability must surface.
func (b *Backend) Ping(ctx context.Context) error {
	return Healthcheck(b.client)(ctx)
}

// IsAvailable probes cluster connectivity for availability gating. Failures
// are logged at debug level and reported as false, never propagated; paths
// that need the cause call Ping instead.
func (b *Backend) IsAvailable(ctx context.Context) bool {
	if err := b.Ping(ctx); err != nil {
		b.log.DebugContext(ctx, "opensearch cluster unavailable", "error", err)
		return false
	}
	return true
}

// Healthcheck returns a probe function suitable for liveness and readiness
// endpoints. It calls Info on the cluster and is safe for concurrent use.
func Healthcheck(client *opensearch.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		res, err := client.Info(
			client.Info.WithContext(ctx),
			client.Info.WithErrorTrace(),
		)
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		defer res.Body.Close()

		if res.IsError() {
			return errors.Join(ErrHealthcheckFailed, errors.New(res.Status()))
		}
		return nil
	}
}

func (b *Backend) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.cfg.RequestTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.cfg.RequestTimeout)
}
