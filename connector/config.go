package connector

import "maps"

// Config is the raw configuration payload for a connector, as supplied by the
// caller (typically decoded from JSON or a persisted profile). Values are
// validated and normalized against the connector's schema before any factory
// sees them.
type Config map[string]any

// Clone returns a shallow copy of the configuration.
func (c Config) Clone() Config {
	if c == nil {
		return Config{}
	}
	out := make(Config, len(c))
	maps.Copy(out, c)
	return out
}

// String returns the string value stored under key, or "" when absent.
// Safe on schema-normalized configs where the field type is TypeString.
func (c Config) String(key string) string {
	v, _ := c[key].(string)
	return v
}

// StringSlice returns the string list stored under key, or nil when absent.
// Safe on schema-normalized configs where the field type is TypeStringList.
func (c Config) StringSlice(key string) []string {
	v, _ := c[key].([]string)
	return v
}

// Int returns the int value stored under key, or 0 when absent.
// Safe on schema-normalized configs where the field type is TypeInt.
func (c Config) Int(key string) int {
	v, _ := c[key].(int)
	return v
}

// Bool returns the bool value stored under key, or false when absent.
// Safe on schema-normalized configs where the field type is TypeBool.
func (c Config) Bool(key string) bool {
	v, _ := c[key].(bool)
	return v
}
