package connector_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/connector"
	"github.com/dmitrymomot/searchkit/pkg/validator"
)

func intPtr(v int) *int { return &v }

func TestSchemaValidate(t *testing.T) {
	schema := connector.Schema{
		{Name: "addresses", Type: connector.TypeStringList, Format: connector.FormatURL, Required: true},
		{Name: "username", Type: connector.TypeString, Required: true},
		{Name: "password", Type: connector.TypeString, Required: true, Secret: true},
		{Name: "max_retries", Type: connector.TypeInt, Default: 3, Min: intPtr(0), Max: intPtr(10)},
		{Name: "disable_retry", Type: connector.TypeBool, Default: false},
		{Name: "service", Type: connector.TypeString, Default: "es", Enum: []string{"es", "aoss"}},
	}

	valid := connector.Config{
		"addresses": []string{"https://localhost:9200"},
		"username":  "admin",
		"password":  "admin",
	}

	t.Run("defaults applied", func(t *testing.T) {
		normalized, err := schema.Validate(valid)
		require.NoError(t, err)
		assert.Equal(t, 3, normalized.Int("max_retries"))
		assert.Equal(t, false, normalized.Bool("disable_retry"))
		assert.Equal(t, "es", normalized.String("service"))
	})

	t.Run("input config not mutated", func(t *testing.T) {
		raw := valid.Clone()
		_, err := schema.Validate(raw)
		require.NoError(t, err)
		assert.NotContains(t, raw, "max_retries")
	})

	t.Run("missing required fields named", func(t *testing.T) {
		_, err := schema.Validate(connector.Config{})
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"addresses", "username", "password"}, errs.Fields())
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		raw := valid.Clone()
		raw["fuzziness"] = "AUTO"
		_, err := schema.Validate(raw)
		require.Error(t, err)
		assert.Contains(t, validator.ExtractValidationErrors(err).Get("fuzziness"), "unknown field")
	})

	t.Run("enum enforced", func(t *testing.T) {
		raw := valid.Clone()
		raw["service"] = "s3"
		_, err := schema.Validate(raw)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("service"))
	})

	t.Run("int range enforced", func(t *testing.T) {
		raw := valid.Clone()
		raw["max_retries"] = 11
		_, err := schema.Validate(raw)
		require.Error(t, err)
		assert.Contains(t, validator.ExtractValidationErrors(err).Get("max_retries"), "must be between 0 and 10")
	})

	t.Run("url format enforced per entry", func(t *testing.T) {
		raw := valid.Clone()
		raw["addresses"] = []string{"https://localhost:9200", "not a url"}
		_, err := schema.Validate(raw)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("addresses"))
	})

	t.Run("blank strings treated as absent", func(t *testing.T) {
		raw := valid.Clone()
		raw["username"] = "   "
		raw["password"] = ""
		_, err := schema.Validate(raw)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.Contains(t, errs.Get("username"), "is required")
		assert.Contains(t, errs.Get("password"), "is required")
	})
}

func TestSchemaCoercion(t *testing.T) {
	schema := connector.Schema{
		{Name: "addresses", Type: connector.TypeStringList, Required: true},
		{Name: "max_retries", Type: connector.TypeInt},
		{Name: "verbose", Type: connector.TypeBool},
	}

	t.Run("json decoded values", func(t *testing.T) {
		var raw connector.Config
		require.NoError(t, json.Unmarshal([]byte(`{
			"addresses": ["http://a:9200", "http://b:9200"],
			"max_retries": 5,
			"verbose": true
		}`), &raw))

		normalized, err := schema.Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, normalized.StringSlice("addresses"))
		assert.Equal(t, 5, normalized.Int("max_retries"))
		assert.Equal(t, true, normalized.Bool("verbose"))
	})

	t.Run("fractional number rejected", func(t *testing.T) {
		_, err := schema.Validate(connector.Config{
			"addresses":   []string{"http://a:9200"},
			"max_retries": 2.5,
		})
		require.Error(t, err)
		assert.Contains(t, validator.ExtractValidationErrors(err).Get("max_retries"), "must be an integer")
	})

	t.Run("wrong types named per field", func(t *testing.T) {
		_, err := schema.Validate(connector.Config{
			"addresses": "http://a:9200",
			"verbose":   "yes",
		})
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.Contains(t, errs.Get("addresses"), "must be a list of strings")
		assert.Contains(t, errs.Get("verbose"), "must be a boolean")
	})

	t.Run("mixed any list rejected", func(t *testing.T) {
		_, err := schema.Validate(connector.Config{
			"addresses": []any{"http://a:9200", 42},
		})
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("addresses"))
	})
}

func TestConfigAccessors(t *testing.T) {
	cfg := connector.Config{
		"host":    "https://localhost:9200",
		"nodes":   []string{"a", "b"},
		"retries": 2,
		"secure":  true,
	}

	assert.Equal(t, "https://localhost:9200", cfg.String("host"))
	assert.Equal(t, []string{"a", "b"}, cfg.StringSlice("nodes"))
	assert.Equal(t, 2, cfg.Int("retries"))
	assert.Equal(t, true, cfg.Bool("secure"))

	assert.Empty(t, cfg.String("missing"))
	assert.Nil(t, cfg.StringSlice("missing"))
	assert.Zero(t, cfg.Int("missing"))
	assert.False(t, cfg.Bool("missing"))

	clone := cfg.Clone()
	clone["host"] = "mutated"
	assert.Equal(t, "https://localhost:9200", cfg.String("host"))
}
