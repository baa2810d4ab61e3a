package backend

import "time"

// Config holds index tuning and query behavior settings with environment
// variable mapping. Compatible with github.com/dmitrymomot/searchkit/pkg/config
// for zero-config environment-based initialization.
type Config struct {
	// IndexPrefix namespaces every index the backend touches, so several
	// deployments can share one cluster.
	IndexPrefix string `env:"SEARCH_INDEX_PREFIX"`

	// Fuzziness is the default typo tolerance for full-text queries:
	// "AUTO" or an edit distance "0".."2". Empty disables fuzzy matching.
	Fuzziness string `env:"SEARCH_FUZZINESS" envDefault:"AUTO"`

	// MinNGram and MaxNGram bound the edge_ngram filter used for
	// prefix-matching analysis.
	MinNGram int `env:"SEARCH_MIN_NGRAM" envDefault:"3"`
	MaxNGram int `env:"SEARCH_MAX_NGRAM" envDefault:"10"`

	// Shards and Replicas are applied when the backend creates an index.
	Shards   int `env:"SEARCH_INDEX_SHARDS" envDefault:"1"`
	Replicas int `env:"SEARCH_INDEX_REPLICAS" envDefault:"0"`

	// SynonymsFile optionally points at a YAML file of synonym groups baked
	// into the index analyzer. See LoadSynonyms for the format.
	SynonymsFile string `env:"SEARCH_SYNONYMS_FILE"`

	// RequestTimeout bounds every OpenSearch call issued by the backend.
	RequestTimeout time.Duration `env:"SEARCH_REQUEST_TIMEOUT" envDefault:"10s"`

	// ResultCacheTTL is the lifetime of cached search results when a result
	// cache is wired in. Zero caches without expiry.
	ResultCacheTTL time.Duration `env:"SEARCH_RESULT_CACHE_TTL" envDefault:"1m"`
}
