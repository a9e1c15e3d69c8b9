package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// VehicleService is what the vehicle endpoints need from the service layer.
type VehicleService interface {
	Create(ctx context.Context, params model.CreateVehicleParams) (model.Vehicle, error)
	GetAll(ctx context.Context) ([]model.Vehicle, error)
	GetPage(ctx context.Context, req model.PageRequest) (model.Page[model.Vehicle], error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Vehicle, error)
	Update(ctx context.Context, params model.UpdateVehicleParams) (model.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// vehicleRequest covers both create and update bodies; update additionally
// checks the id against the path.
type vehicleRequest struct {
	ID           uuid.UUID `json:"id,omitempty"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         string    `json:"year"`
	Color        string    `json:"color"`
	LicensePlate string    `json:"licensePlate"`
}

type vehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         string    `json:"year"`
	Color        string    `json:"color"`
	LicensePlate string    `json:"licensePlate"`
}

func toVehicleResponse(v model.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Color:        v.Color,
		LicensePlate: v.LicensePlate,
	}
}

// VehicleHandler serves the vehicle CRUD endpoints.
type VehicleHandler struct {
	service VehicleService
}

func NewVehicleHandler(service VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := req.validate(); !errs.ok() {
		writeValidationErrors(w, errs)
		return
	}

	vehicle, err := h.service.Create(r.Context(), model.CreateVehicleParams{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Location", "/api/vehicles/"+vehicle.ID.String())
	writeJSON(w, http.StatusCreated, toVehicleResponse(vehicle))
}

// List handles GET /api/vehicles, paged when pageNumber/pageSize are present.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, paged := pageRequestFromQuery(r)

	if !paged {
		vehicles, err := h.service.GetAll(ctx)
		if err != nil {
			handleError(w, err)
			return
		}
		views := make([]vehicleResponse, len(vehicles))
		for i, v := range vehicles {
			views[i] = toVehicleResponse(v)
		}
		writeJSON(w, http.StatusOK, views)
		return
	}

	page, err := h.service.GetPage(ctx, req)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MapPage(page, toVehicleResponse))
}

// Get handles GET /api/vehicles/{id}.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	vehicle, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}

// Update handles PUT /api/vehicles/{id}.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID != uuid.Nil && req.ID != id {
		writeError(w, http.StatusBadRequest, "id mismatch")
		return
	}

	if errs := req.validate(); !errs.ok() {
		writeValidationErrors(w, errs)
		return
	}

	vehicle, err := h.service.Update(r.Context(), model.UpdateVehicleParams{
		ID:           id,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}

// Delete handles DELETE /api/vehicles/{id}.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
