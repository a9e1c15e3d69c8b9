// Package handler contains the HTTP handlers. Each handler depends on the
// narrow service interface it actually uses so tests can stand in fakes.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// AuthService is what the auth endpoints need from the service layer.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
	Login(ctx context.Context, email, password string) (string, model.User, error)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := req.validate(); !errs.ok() {
		writeValidationErrors(w, errs)
		return
	}

	sessionToken, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: sessionToken, User: user.Public()})
}
