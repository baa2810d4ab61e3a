// Package standard provides the no-auth OpenSearch connector. It suits
// clusters reachable without authentication, such as local development nodes
// or clusters behind a trusted proxy that injects credentials.
package standard

import (
	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/searchkit/connector"
)

// ID is the connector identifier used in persisted configurations.
const ID = "standard"

func intPtr(v int) *int { return &v }

// Descriptor returns the connector metadata and configuration schema.
func Descriptor() connector.Descriptor {
	return connector.Descriptor{
		ID:    ID,
		Label: "Standard",
		Schema: connector.Schema{
			{
				Name:     "addresses",
				Label:    "Cluster addresses",
				Type:     connector.TypeStringList,
				Format:   connector.FormatURL,
				Required: true,
			},
			{
				Name:    "max_retries",
				Label:   "Max retries",
				Type:    connector.TypeInt,
				Default: 3,
				Min:     intPtr(0),
				Max:     intPtr(10),
			},
			{
				Name:    "disable_retry",
				Label:   "Disable retry",
				Type:    connector.TypeBool,
				Default: false,
			},
		},
	}
}

// Build constructs an OpenSearch client from a schema-normalized config.
// No connectivity check is performed here.
func Build(cfg connector.Config) (*opensearch.Client, error) {
	return opensearch.NewClient(opensearch.Config{
		Addresses:    cfg.StringSlice("addresses"),
		MaxRetries:   cfg.Int("max_retries"),
		DisableRetry: cfg.Bool("disable_retry"),
	})
}

// Register adds the connector to the given registry.
func Register(r *connector.Registry) error {
	return r.Register(Descriptor(), Build)
}
