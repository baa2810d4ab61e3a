package backend

import "errors"

var (
	// ErrNilClient indicates the backend was created without a client.
	ErrNilClient = errors.New("backend: opensearch client must not be nil")

	// ErrInvalidSettings indicates the backend configuration failed validation.
	// Field-level details can be extracted with validator.ExtractValidationErrors.
	ErrInvalidSettings = errors.New("backend: invalid settings")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	ErrHealthcheckFailed = errors.New("backend: opensearch healthcheck failed")

	// ErrUnsupportedFieldType indicates a mapping referenced a field type that
	// neither the built-in set nor any registered type check accepts.
	ErrUnsupportedFieldType = errors.New("backend: unsupported field type")

	// ErrIndexNotFound indicates the target index does not exist.
	ErrIndexNotFound = errors.New("backend: index not found")

	// ErrRequestFailed indicates OpenSearch rejected a request. The response
	// status is joined for inspection.
	ErrRequestFailed = errors.New("backend: opensearch request failed")

	// ErrPartialBulkFailure indicates some documents in a bulk request were
	// rejected while others succeeded.
	ErrPartialBulkFailure = errors.New("backend: some bulk operations failed")
)
