package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"todod"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PreflightResponse is the fixed body returned to CORS preflight requests.
type PreflightResponse struct {
	Message string `json:"message"`
}

// WriteError writes a JSON error response
func WriteError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errCode,
		Message: message,
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError writes the appropriate error response based on error type.
// Store failures become a generic 500; the detail is logged here, not
// returned to the caller.
func HandleError(w http.ResponseWriter, err error) {
	slog.Error("request error", "error", err)

	if errors.Is(err, todod.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "not_found", "Item not found")
		return
	}

	if errors.Is(err, todod.ErrInvalidInput) || errors.Is(err, ErrMalformedBody) {
		WriteError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if errors.Is(err, todod.ErrUnauthorized) {
		WriteError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid credential")
		return
	}

	WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}
