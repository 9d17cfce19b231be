// Package response holds the JSON error contract of the wellbeing backend:
// failures carry a human-readable "detail" that is shown to the user verbatim.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FallbackMessage is shown when the backend gives no usable detail.
const FallbackMessage = "request failed"

// ConnectionMessage is shown when the backend cannot be reached at all.
const ConnectionMessage = "connection error, check that the server is running"

// ErrSessionExpired is returned when the backend rejects the stored token.
var ErrSessionExpired = errors.New("session expired, please log in again")

// ErrorBody is the error payload. Detail is a string for handled errors and a
// list of field errors for request validation failures (HTTP 422).
type ErrorBody struct {
	Detail  json.RawMessage `json:"detail,omitempty"`
	Message string          `json:"message,omitempty"`
}

type fieldError struct {
	Loc []interface{} `json:"loc"`
	Msg string        `json:"msg"`
}

// APIError is returned for every non-2xx response and for transport failures
// (StatusCode 0).
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Decode builds an APIError from a failed response body.
func Decode(statusCode int, body []byte, fallback string) *APIError {
	if fallback == "" {
		fallback = FallbackMessage
	}
	apiErr := &APIError{StatusCode: statusCode, Message: fallback}

	var payload ErrorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	if msg := detailMessage(payload.Detail); msg != "" {
		apiErr.Message = msg
	} else if payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}

func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var fields []fieldError
	if err := json.Unmarshal(raw, &fields); err == nil {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			if len(f.Loc) > 0 {
				parts = append(parts, fmt.Sprintf("%v: %s", f.Loc[len(f.Loc)-1], f.Msg))
				continue
			}
			parts = append(parts, f.Msg)
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

// Connection wraps a transport failure.
func Connection(err error) *APIError {
	return &APIError{Message: ConnectionMessage, Err: err}
}

// JSON writes data with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Error writes {"detail": message} with the given status code.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"detail": message})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Could not validate credentials"
	}
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message)
}
