package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// errorResponse is the single-message error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse maps field names to their violation messages.
type validationResponse struct {
	Errors map[string][]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	writeJSON(w, http.StatusBadRequest, validationResponse{Errors: errs})
}

// handleError maps service-level failures to HTTP statuses. Invalid
// credentials stay a bare 401 so the response does not hint at which part of
// the login was wrong.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, model.ErrConflict):
		writeError(w, http.StatusConflict, "record already exists")
	case errors.Is(err, model.ErrInvalidCredentials):
		w.WriteHeader(http.StatusUnauthorized)
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
