package personapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/draftkit/pkg/drafts"
	"github.com/dmitrymomot/draftkit/pkg/validator"
)

// Response is the JSON envelope of every endpoint.
type Response struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// Error codes used in responses.
const (
	CodeOK              = "ok"
	CodeCreated         = "created"
	CodeBadRequest      = "bad_request"
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeUnavailable     = "unavailable"
	CodeInternalError   = "internal_error"
)

var ErrBadRequest = errors.New("malformed request body")

// render encodes body before touching w, so an encoding failure still yields
// a well-formed error response.
func render(w http.ResponseWriter, status int, body Response) {
	data, err := json.Marshal(body)
	if err != nil {
		renderError(w, err, nil)
		return
	}
	writeJSON(w, status, data)
}

// renderError maps err onto a status code. violations, when known, are
// reported as error details of a validation failure.
func renderError(w http.ResponseWriter, err error, violations []string) {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{Code: CodeInternalError, Message: http.StatusText(status)}

	switch {
	case errors.Is(err, ErrBadRequest):
		status = http.StatusBadRequest
		detail.Code = CodeBadRequest
		detail.Message = err.Error()
	case errors.Is(err, drafts.ErrUnavailable):
		status = http.StatusServiceUnavailable
		detail.Code = CodeUnavailable
		detail.Message = http.StatusText(status)
	case errors.Is(err, drafts.ErrNotFound):
		status = http.StatusNotFound
		detail.Code = CodeNotFound
		detail.Message = err.Error()
	case validator.IsValidationFailure(err):
		status = http.StatusUnprocessableEntity
		detail.Code = CodeValidationError
		detail.Message = validator.ExtractValidationFailure(err).Error()
		if len(violations) > 0 {
			detail.Details = map[string][]string{"violations": violations}
		}
	}

	data, _ := json.Marshal(Response{Code: detail.Code, Error: detail})
	writeJSON(w, status, data)
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}
