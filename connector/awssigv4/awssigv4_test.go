package awssigv4_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/connector"
	"github.com/dmitrymomot/searchkit/connector/awssigv4"
)

func TestDescriptor(t *testing.T) {
	desc := awssigv4.Descriptor()
	assert.Equal(t, "awssigv4", desc.ID)

	var service connector.Field
	for _, f := range desc.Schema {
		if f.Name == "service" {
			service = f
		}
	}
	assert.Equal(t, []string{"es", "aoss"}, service.Enum)
	assert.Equal(t, "es", service.Default)
}

func TestBuild(t *testing.T) {
	reg := connector.NewRegistry()
	require.NoError(t, awssigv4.Register(reg))

	t.Run("static credentials", func(t *testing.T) {
		client, err := reg.Build(awssigv4.ID, connector.Config{
			"addresses":  []string{"https://search-test.eu-west-1.es.amazonaws.com"},
			"region":     "eu-west-1",
			"access_key": "AKIAEXAMPLE",
			"secret_key": "secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("region required", func(t *testing.T) {
		_, err := reg.Build(awssigv4.ID, connector.Config{
			"addresses": []string{"https://search-test.eu-west-1.es.amazonaws.com"},
		})
		require.ErrorIs(t, err, connector.ErrInvalidConfig)

		var invalid *connector.InvalidConfigError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, []string{"region"}, invalid.FieldNames())
	})

	t.Run("invalid service rejected", func(t *testing.T) {
		_, err := reg.Build(awssigv4.ID, connector.Config{
			"addresses": []string{"https://search-test.eu-west-1.es.amazonaws.com"},
			"region":    "eu-west-1",
			"service":   "s3",
		})
		assert.ErrorIs(t, err, connector.ErrInvalidConfig)
	})
}
