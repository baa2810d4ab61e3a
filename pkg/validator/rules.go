package validator

import (
	"fmt"
	"net/url"
	"strings"
)

// RequiredString checks that a string value is not empty after trimming.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// NonEmptySlice checks that a slice holds at least one element.
func NonEmptySlice[T any](field string, values []T) Rule {
	return Rule{
		Check: func() bool { return len(values) > 0 },
		Error: ValidationError{Field: field, Message: "must contain at least one value"},
	}
}

// OneOfString checks that a value is one of the allowed options.
func OneOfString(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool {
			for _, opt := range options {
				if value == opt {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
		},
	}
}

// IntBetween checks that an integer value falls within [min, max].
func IntBetween(field string, value, min, max int) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d", min, max),
		},
	}
}

// IntMin checks that an integer value is at least min.
func IntMin(field string, value, min int) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d", min),
		},
	}
}

// IntMax checks that an integer value is at most max.
func IntMax(field string, value, max int) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d", max),
		},
	}
}

// ValidURL checks that a value parses as an absolute http(s) URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool { return isHTTPURL(value) },
		Error: ValidationError{Field: field, Message: "must be a valid http(s) URL"},
	}
}

// ValidURLs checks that every value in the list parses as an absolute http(s) URL.
func ValidURLs(field string, values []string) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !isHTTPURL(v) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must contain only valid http(s) URLs"},
	}
}

func isHTTPURL(value string) bool {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
