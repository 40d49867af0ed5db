// Package ecode defines standardized business error codes for API responses.
//
// Error codes follow a standardized numbering scheme:
//   - 0: Success (OK)
//   - -100 to -199: Authentication/authorization errors
//   - -400 to -499: Request validation errors
//   - -500+: Server errors
//   - -1000 and below: Application-specific codes
package ecode

import (
	"net/http"
	"sync"
)

// Common error codes.
const (
	OK           = 0
	NoLogin      = -101
	UserDisabled = -102
	AccessDenied = -403
	NotFound     = -404
	Conflict     = -409
	RequestErr   = -400
	ParamErr     = -401
	ServerErr    = -500

	// Marketplace codes.
	JobNotFound       = -1001
	InvalidTransition = -1002
	AlreadyTerminal   = -1003
	DuplicatePayment  = -1004
	DuplicateRating   = -1005
)

var (
	messagesMu sync.RWMutex
	messages   = map[int]string{
		OK:           "success",
		NoLogin:      "Account not logged in",
		UserDisabled: "Account suspended",
		AccessDenied: "Access denied",
		NotFound:     "Resource not found",
		Conflict:     "Resource conflict",
		RequestErr:   "Invalid request",
		ParamErr:     "Invalid parameters",
		ServerErr:    "Internal server error",

		JobNotFound:       "Job not found",
		InvalidTransition: "Transition not permitted",
		AlreadyTerminal:   "Job is already closed",
		DuplicatePayment:  "Job already has a completed payment",
		DuplicateRating:   "Job already rated by this user",
	}
)

// Register registers a custom error code with its message. An existing
// code is overwritten.
func Register(code int, message string) {
	messagesMu.Lock()
	defer messagesMu.Unlock()
	messages[code] = message
}

// Text returns the human-readable message for a code.
func Text(code int) string {
	messagesMu.RLock()
	defer messagesMu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status code.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case NoLogin:
		return http.StatusUnauthorized
	case UserDisabled, AccessDenied, InvalidTransition:
		return http.StatusForbidden
	case NotFound, JobNotFound:
		return http.StatusNotFound
	case Conflict, AlreadyTerminal, DuplicatePayment, DuplicateRating:
		return http.StatusConflict
	case RequestErr, ParamErr:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
