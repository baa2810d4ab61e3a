package connector

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/searchkit/pkg/validator"
)

// FieldType enumerates the value types a schema field can hold.
type FieldType string

const (
	TypeString     FieldType = "string"
	TypeStringList FieldType = "string_list"
	TypeInt        FieldType = "int"
	TypeBool       FieldType = "bool"
)

// FieldFormat narrows a string-typed field to a specific format.
type FieldFormat string

const (
	FormatNone FieldFormat = ""
	FormatURL  FieldFormat = "url"
)

// Field describes a single named configuration value: its type, constraints,
// and default. The JSON shape is consumed by configuration UIs to render
// per-connector forms.
type Field struct {
	Name     string      `json:"name"`
	Label    string      `json:"label"`
	Type     FieldType   `json:"type"`
	Format   FieldFormat `json:"format,omitempty"`
	Required bool        `json:"required,omitempty"`
	Secret   bool        `json:"secret,omitempty"`
	Default  any         `json:"default,omitempty"`
	Enum     []string    `json:"enum,omitempty"`
	Min      *int        `json:"min,omitempty"`
	Max      *int        `json:"max,omitempty"`
}

// Schema is the ordered set of fields a connector accepts.
type Schema []Field

// Descriptor is the registered metadata for a connector type. Descriptors are
// immutable once registered.
type Descriptor struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Schema Schema `json:"schema"`
}

// Validate checks raw against the schema and returns a normalized copy:
// defaults applied, values coerced to their declared Go types, unknown keys
// rejected. The returned error, when non-nil, is validator.ValidationErrors
// naming every offending field.
func (s Schema) Validate(raw Config) (Config, error) {
	var errs validator.ValidationErrors
	normalized := make(Config, len(s))

	known := make(map[string]bool, len(s))
	for _, f := range s {
		known[f.Name] = true
	}
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if !known[key] {
			errs.Add(key, "unknown field")
		}
	}

	for _, f := range s {
		value, present := raw[f.Name]
		if present && value == nil {
			present = false
		}

		var coerced any
		if present {
			var msg string
			coerced, msg = f.coerce(value)
			if msg != "" {
				errs.Add(f.Name, msg)
				continue
			}
			// Empty strings and lists come from unfilled form inputs; fall
			// back to the default or the required check, same as absent.
			if f.isEmpty(coerced) {
				present = false
			}
		}

		if !present {
			if f.Default != nil {
				normalized[f.Name] = f.Default
			} else if f.Required {
				errs.Add(f.Name, "is required")
			}
			continue
		}

		if err := validator.Apply(f.rules(coerced)...); err != nil {
			errs = append(errs, validator.ExtractValidationErrors(err)...)
			continue
		}
		normalized[f.Name] = coerced
	}

	if !errs.IsEmpty() {
		return nil, errs
	}
	return normalized, nil
}

func (f Field) coerce(value any) (any, string) {
	switch f.Type {
	case TypeString:
		if v, ok := value.(string); ok {
			return v, ""
		}
		return nil, "must be a string"
	case TypeStringList:
		switch v := value.(type) {
		case []string:
			return v, ""
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, "must be a list of strings"
				}
				out = append(out, s)
			}
			return out, ""
		}
		return nil, "must be a list of strings"
	case TypeInt:
		switch v := value.(type) {
		case int:
			return v, ""
		case int32:
			return int(v), ""
		case int64:
			return int(v), ""
		case float64:
			// JSON numbers decode as float64; only integral values are valid.
			if v == float64(int(v)) {
				return int(v), ""
			}
			return nil, "must be an integer"
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return nil, "must be an integer"
			}
			return int(n), ""
		}
		return nil, "must be an integer"
	case TypeBool:
		if v, ok := value.(bool); ok {
			return v, ""
		}
		return nil, "must be a boolean"
	}
	return nil, fmt.Sprintf("unsupported field type %q", f.Type)
}

func (f Field) isEmpty(value any) bool {
	switch f.Type {
	case TypeString:
		v, _ := value.(string)
		return strings.TrimSpace(v) == ""
	case TypeStringList:
		v, _ := value.([]string)
		return len(v) == 0
	}
	return false
}

func (f Field) rules(value any) []validator.Rule {
	var rules []validator.Rule

	switch f.Type {
	case TypeString:
		v, _ := value.(string)
		if len(f.Enum) > 0 {
			rules = append(rules, validator.OneOfString(f.Name, v, f.Enum))
		}
		if f.Format == FormatURL {
			rules = append(rules, validator.ValidURL(f.Name, v))
		}
	case TypeStringList:
		v, _ := value.([]string)
		if f.Format == FormatURL {
			rules = append(rules, validator.ValidURLs(f.Name, v))
		}
	case TypeInt:
		v, _ := value.(int)
		switch {
		case f.Min != nil && f.Max != nil:
			rules = append(rules, validator.IntBetween(f.Name, v, *f.Min, *f.Max))
		case f.Min != nil:
			rules = append(rules, validator.IntMin(f.Name, v, *f.Min))
		case f.Max != nil:
			rules = append(rules, validator.IntMax(f.Name, v, *f.Max))
		}
	}

	return rules
}
