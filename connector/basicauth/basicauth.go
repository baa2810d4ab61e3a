// Package basicauth provides the HTTP basic-auth OpenSearch connector, the
// usual choice for clusters running the security plugin. Self-signed cluster
// certificates can be accepted with the insecure_skip_tls option; production
// deployments should install a proper CA instead.
package basicauth

import (
	"crypto/tls"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/searchkit/connector"
)

// ID is the connector identifier used in persisted configurations.
const ID = "basicauth"

func intPtr(v int) *int { return &v }

// Descriptor returns the connector metadata and configuration schema.
func Descriptor() connector.Descriptor {
	return connector.Descriptor{
		ID:    ID,
		Label: "Basic Auth",
		Schema: connector.Schema{
			{
				Name:     "addresses",
				Label:    "Cluster addresses",
				Type:     connector.TypeStringList,
				Format:   connector.FormatURL,
				Required: true,
			},
			{
				Name:     "username",
				Label:    "Username",
				Type:     connector.TypeString,
				Required: true,
			},
			{
				Name:     "password",
				Label:    "Password",
				Type:     connector.TypeString,
				Required: true,
				Secret:   true,
			},
			{
				Name:    "insecure_skip_tls",
				Label:   "Skip TLS certificate verification",
				Type:    connector.TypeBool,
				Default: false,
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
	ocfg := opensearch.Config{
		Addresses:    cfg.StringSlice("addresses"),
		Username:     cfg.String("username"),
		Password:     cfg.String("password"),
		MaxRetries:   cfg.Int("max_retries"),
		DisableRetry: cfg.Bool("disable_retry"),
	}

	if cfg.Bool("insecure_skip_tls") {
		ocfg.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return opensearch.NewClient(ocfg)
}

// Register adds the connector to the given registry.
func Register(r *connector.Registry) error {
	return r.Register(Descriptor(), Build)
}
