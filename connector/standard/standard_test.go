package standard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/connector"
	"github.com/dmitrymomot/searchkit/connector/standard"
)

func TestDescriptor(t *testing.T) {
	desc := standard.Descriptor()
	assert.Equal(t, "standard", desc.ID)
	assert.Equal(t, "Standard", desc.Label)

	names := make([]string, 0, len(desc.Schema))
	for _, f := range desc.Schema {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"addresses", "max_retries", "disable_retry"}, names)
}

func TestBuild(t *testing.T) {
	reg := connector.NewRegistry()
	require.NoError(t, standard.Register(reg))

	t.Run("valid config", func(t *testing.T) {
		client, err := reg.Build(standard.ID, connector.Config{
			"addresses": []string{"http://localhost:9200"},
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("missing addresses", func(t *testing.T) {
		_, err := reg.Build(standard.ID, connector.Config{})
		require.ErrorIs(t, err, connector.ErrInvalidConfig)

		var invalid *connector.InvalidConfigError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, []string{"addresses"}, invalid.FieldNames())
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := reg.Build(standard.ID, connector.Config{
			"addresses": []string{"localhost:9200"},
		})
		assert.ErrorIs(t, err, connector.ErrInvalidConfig)
	})
}
