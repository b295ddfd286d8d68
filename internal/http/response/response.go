package response

import (
	"encoding/json"
	"net/http"

	"github.com/bookshelf/bookshelf-api/pkg/logger"
)

// Envelope is the uniform response wrapper. The semantic status lives inside
// the body; the HTTP status is 200 for everything except redirects.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Write(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("Failed to encode response envelope", "error", err)
	}
}

func OK(w http.ResponseWriter, message string, data any) {
	Write(w, Envelope{Status: http.StatusOK, Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data any) {
	Write(w, Envelope{Status: http.StatusCreated, Message: message, Data: data})
}

func BadRequest(w http.ResponseWriter, message string) {
	Write(w, Envelope{Status: http.StatusBadRequest, Message: message})
}

// Invalid reports a validation failure with the failing rule as detail.
func Invalid(w http.ResponseWriter, message string, err error) {
	env := Envelope{Status: http.StatusBadRequest, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	Write(w, env)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Write(w, Envelope{Status: http.StatusUnauthorized, Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	Write(w, Envelope{Status: http.StatusNotFound, Message: message})
}

func RateLimited(w http.ResponseWriter) {
	Write(w, Envelope{
		Status:  http.StatusTooManyRequests,
		Message: "Too many requests. Please try again after some time!",
	})
}

// StoreError reports a failed store operation, attaching the raw error for
// diagnostics.
func StoreError(w http.ResponseWriter, err error) {
	env := Envelope{Status: http.StatusInternalServerError, Message: "Database error"}
	if err != nil {
		env.Error = err.Error()
	}
	Write(w, env)
}
