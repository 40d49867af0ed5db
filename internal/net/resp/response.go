// Package resp provides standardized JSON response helpers.
//
// All failure responses share one envelope:
//
//	{
//	  "code": -1002,          // business code, see ecode
//	  "message": "...",       // human-readable message
//	  "errors": {...}         // optional error details
//	}
//
// Successful responses carry the payload directly.
package resp

import (
	"encoding/json"
	"net/http"

	"github.com/quickhirelabor/quickhire/internal/ecode"
)

// Exception represents the failure response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"` // HTTP status
	Code    int    `json:"code,omitempty"`   // Business code
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with a custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var payload any
	if len(data) > 0 {
		payload = data[0]
	}
	if s, ok := payload.(string); ok {
		payload = map[string]any{"message": s}
	}
	if payload == nil {
		payload = map[string]any{"message": "ok"}
	}
	writeJSON(w, statusCode, payload)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer(ecode.Text(ecode.ServerErr))
	}

	status := r.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	code := r.Code
	if code == 0 {
		code = ecode.RequestErr
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	writeJSON(w, status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	})
}

// BadRequest builds a 400 exception.
func BadRequest(message string, errs ...any) *Exception {
	return build(http.StatusBadRequest, ecode.RequestErr, message, errs...)
}

// UnAuthorized builds a 401 exception.
func UnAuthorized(message string, errs ...any) *Exception {
	return build(http.StatusUnauthorized, ecode.NoLogin, message, errs...)
}

// Forbidden builds a 403 exception.
func Forbidden(message string, errs ...any) *Exception {
	return build(http.StatusForbidden, ecode.AccessDenied, message, errs...)
}

// NotFound builds a 404 exception.
func NotFound(message string, errs ...any) *Exception {
	return build(http.StatusNotFound, ecode.NotFound, message, errs...)
}

// Conflict builds a 409 exception.
func Conflict(message string, errs ...any) *Exception {
	return build(http.StatusConflict, ecode.Conflict, message, errs...)
}

// InternalServer builds a 500 exception.
func InternalServer(message string, errs ...any) *Exception {
	return build(http.StatusInternalServerError, ecode.ServerErr, message, errs...)
}

// WithCode builds an exception from a business code, mapping the HTTP
// status through ecode.
func WithCode(code int, message string, errs ...any) *Exception {
	if message == "" {
		message = ecode.Text(code)
	}
	return build(ecode.ToHTTPStatus(code), code, message, errs...)
}

func build(status, code int, message string, errs ...any) *Exception {
	var details any
	if len(errs) > 0 {
		details = errs[0]
	}
	return &Exception{
		Status:  status,
		Code:    code,
		Message: message,
		Errors:  details,
	}
}

func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
