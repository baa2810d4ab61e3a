package backend

// FieldTypeCheck reports whether a mapping field type is supported. Checks
// registered via WithFieldTypeCheck extend the built-in set and are consulted
// in registration order.
type FieldTypeCheck func(fieldType string) bool

// builtinFieldTypes are the mapping types the backend handles natively.
var builtinFieldTypes = map[string]bool{
	"text":      true,
	"keyword":   true,
	"integer":   true,
	"long":      true,
	"float":     true,
	"double":    true,
	"boolean":   true,
	"date":      true,
	"object":    true,
	"geo_point": true,
}

// SupportsFieldType reports whether the backend can map the given field type.
// The built-in set is checked first, then registered checks in order.
func (b *Backend) SupportsFieldType(fieldType string) bool {
	if builtinFieldTypes[fieldType] {
		return true
	}
	for _, check := range b.typeChecks {
		if check(fieldType) {
			return true
		}
	}
	return false
}
