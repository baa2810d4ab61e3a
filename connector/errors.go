package connector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/searchkit/pkg/validator"
)

var (
	// ErrDuplicateConnector indicates Register was called with an id that is
	// already taken. The first registration remains authoritative.
	ErrDuplicateConnector = errors.New("connector: duplicate connector id")

	// ErrUnknownConnector indicates Build or Get was called with an id that
	// was never registered.
	ErrUnknownConnector = errors.New("connector: unknown connector id")

	// ErrInvalidConfig is the errors.Is target for InvalidConfigError.
	ErrInvalidConfig = errors.New("connector: invalid configuration")

	// ErrConnectionFailed indicates the factory failed to construct a client.
	// The underlying cause is joined and can be inspected with errors.As.
	ErrConnectionFailed = errors.New("connector: client construction failed")

	// ErrNilFactory indicates Register was called without a factory.
	ErrNilFactory = errors.New("connector: factory must not be nil")

	// ErrEmptyID indicates Register was called with an empty descriptor id.
	ErrEmptyID = errors.New("connector: descriptor id must not be empty")
)

// InvalidConfigError reports schema validation failures for a connector
// configuration. Fields preserves rule order so callers can render inline
// form errors deterministically.
type InvalidConfigError struct {
	ConnectorID string
	Fields      validator.ValidationErrors
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("connector %q: %s", e.ConnectorID, e.Fields.Error())
}

// Is makes the error match ErrInvalidConfig via errors.Is.
func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// FieldNames returns the distinct offending field names in first-seen order.
func (e *InvalidConfigError) FieldNames() []string {
	return e.Fields.Fields()
}

// FieldMessages returns per-field messages keyed by field name, suitable for
// JSON error payloads consumed by configuration UIs.
func (e *InvalidConfigError) FieldMessages() map[string][]string {
	out := make(map[string][]string, len(e.Fields))
	for _, fe := range e.Fields {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
