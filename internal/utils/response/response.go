// Package response provides helpers for writing JSON HTTP responses.
//
// Success bodies and validation-error bodies have shapes fixed by the
// API contract and are written as-is via WriteJSON. All other failures
// (decode errors, storage errors) share the Response envelope so API
// consumers always know what a generic error looks like.
package response

import (
	"encoding/json"
	"net/http"
)

// Response is the standard envelope for generic errors:
//
//	{ "status": "error", "error": "request body is empty" }
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data JSON-encoded with the given HTTP status code.
// Headers must be set before WriteHeader, and WriteHeader before any
// body bytes; WriteJSON keeps that ordering in one place.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response envelope.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}
