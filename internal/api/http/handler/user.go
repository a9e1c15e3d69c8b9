package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// UserService is what the user endpoints need from the service layer.
type UserService interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetPage(ctx context.Context, req model.PageRequest) (model.Page[model.User], error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type updateUserRequest struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Status string    `json:"status"`
	Role   string    `json:"role"`
}

// UserHandler serves the user CRUD endpoints. Creation delegates to the
// registration process so a digest is always present.
type UserHandler struct {
	auth    AuthService
	service UserService
}

func NewUserHandler(auth AuthService, service UserService) *UserHandler {
	return &UserHandler{auth: auth, service: service}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := req.validate(); !errs.ok() {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.auth.Register(r.Context(), model.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Location", "/api/users/"+user.ID.String())
	writeJSON(w, http.StatusCreated, user.Public())
}

// List handles GET /api/users, paged when pageNumber/pageSize are present.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, paged := pageRequestFromQuery(r)

	if !paged {
		users, err := h.service.GetAll(ctx)
		if err != nil {
			handleError(w, err)
			return
		}
		views := make([]model.PublicUser, len(users))
		for i, u := range users {
			views[i] = u.Public()
		}
		writeJSON(w, http.StatusOK, views)
		return
	}

	page, err := h.service.GetPage(ctx, req)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MapPage(page, model.User.Public))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

// Update handles PUT /api/users/{id}. The credential digest is not part of
// the request and survives the update untouched.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID != id {
		writeError(w, http.StatusBadRequest, "id mismatch")
		return
	}

	if errs := req.validate(); !errs.ok() {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.service.Update(r.Context(), model.UpdateUserParams{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Status: model.Status(req.Status),
		Role:   model.Role(req.Role),
	})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
