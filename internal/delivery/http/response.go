package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tair/barcode-inventory/pkg/apperr"
	"github.com/tair/barcode-inventory/pkg/logger"
)

// Response is the JSON envelope every endpoint answers with. Error carries
// the machine-readable message key and Context its structured arguments, so
// the frontend can localize failures.
type Response struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    interface{}    `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError translates a domain failure into the key+context envelope.
// Anything that is not a domain error is remapped to a storage failure so raw
// I/O errors never leak to a caller.
func respondError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		logger.Logger.Error().Err(err).Msg("Unexpected error")
		ae = apperr.Storage(err)
	}

	respondJSON(w, ae.HTTPStatus(), Response{
		Success: false,
		Error:   ae.Key,
		Context: ae.Context,
	})
}
