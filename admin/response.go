package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/searchkit/backend"
	"github.com/dmitrymomot/searchkit/configstore"
	"github.com/dmitrymomot/searchkit/connector"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}

// respondError maps the error taxonomy onto HTTP statuses: unknown ids and
// missing profiles are 404, config validation failures are 422 with per-field
// details, unreachable clusters are 502, everything else is 500.
func (a *API) respondError(w http.ResponseWriter, r *http.Request, err error) {
	detail := errorToDetail(r.Context(), err)

	status := http.StatusInternalServerError
	switch detail.Code {
	case "not_found":
		status = http.StatusNotFound
	case "validation_error":
		status = http.StatusUnprocessableEntity
	case "bad_request":
		status = http.StatusBadRequest
	case "upstream_unavailable":
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		a.log.ErrorContext(r.Context(), "request failed", "error", err)
	}
	a.respond(w, r, status, JSONResponse{Error: detail})
}

func errorToDetail(_ context.Context, err error) *ErrorDetail {
	var invalidCfg *connector.InvalidConfigError
	if errors.As(err, &invalidCfg) {
		return &ErrorDetail{
			Code:    "validation_error",
			Message: invalidCfg.Error(),
			Details: invalidCfg.FieldMessages(),
		}
	}

	switch {
	case errors.Is(err, connector.ErrUnknownConnector),
		errors.Is(err, configstore.ErrProfileNotFound):
		return &ErrorDetail{Code: "not_found", Message: err.Error()}
	case errors.Is(err, configstore.ErrInvalidProfile),
		errors.Is(err, connector.ErrInvalidConfig):
		return &ErrorDetail{Code: "validation_error", Message: err.Error()}
	case errors.Is(err, errBadRequest):
		return &ErrorDetail{Code: "bad_request", Message: err.Error()}
	case errors.Is(err, connector.ErrConnectionFailed),
		errors.Is(err, backend.ErrHealthcheckFailed):
		return &ErrorDetail{Code: "upstream_unavailable", Message: err.Error()}
	}

	return &ErrorDetail{Code: "internal_error", Message: err.Error()}
}

var errBadRequest = errors.New("admin: malformed request body")

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}
