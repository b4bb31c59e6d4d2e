package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trekcheck/trekcheck/pkg/validator"
)

// JSONResponse is the standard JSON response envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets a custom HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to the response.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response. Errors are rendered through the error
// envelope, anything else becomes the data member.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	if err != nil {
		r.body.Error = errorToDetail(err, &r.status)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail converts err to an ErrorDetail and sets the matching status.
// Internal errors never leak their message.
func errorToDetail(err error, status *int) *ErrorDetail {
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		*status = http.StatusUnprocessableEntity
		return &ErrorDetail{
			Code:    "validation_error",
			Message: verrs.Error(),
			Details: verrs.Map(),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
