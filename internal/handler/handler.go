package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"shopzone/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a service error to a transport status. Domain
// errors carry their own code; bare validation errors surface as 400.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusInternalServerError
		switch domainErr.Code {
		case model.ErrCodeProductNotFound,
			model.ErrCodeCategoryNotFound,
			model.ErrCodeOrderNotFound:
			status = http.StatusNotFound
		case model.ErrCodeUserExists:
			status = http.StatusConflict
		case model.ErrCodeInvalidCredentials:
			status = http.StatusUnauthorized
		case model.ErrCodeInvalidQuantity,
			model.ErrCodeInsufficientStock,
			model.ErrCodeEmptyCart:
			status = http.StatusBadRequest
		}
		writeError(w, status, domainErr.Message, logger)
		return
	}

	if isValidationError(err) {
		writeError(w, http.StatusBadRequest, err.Error(), logger)
		return
	}

	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}

// isValidationError sniffs service-level validation failures that are
// plain errors rather than domain errors.
func isValidationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "required") ||
		strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "must") ||
		strings.Contains(msg, "cannot")
}
