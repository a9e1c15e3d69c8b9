package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetbay/fleetbay-server/internal/logger"
	"github.com/fleetbay/fleetbay-server/internal/model"
)

// Vehicle provides CRUD operations over vehicle records.
type Vehicle struct {
	store  model.VehicleStore
	logger *logger.Logger
}

func NewVehicle(store model.VehicleStore, logger *logger.Logger) *Vehicle {
	return &Vehicle{store: store, logger: logger}
}

func (s *Vehicle) Create(ctx context.Context, params model.CreateVehicleParams) (model.Vehicle, error) {
	now := time.Now()
	vehicle := model.Vehicle{
		ID:           uuid.New(),
		Brand:        params.Brand,
		Model:        params.Model,
		Year:         params.Year,
		Color:        params.Color,
		LicensePlate: params.LicensePlate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.store.Create(ctx, vehicle)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Info("Vehicle service: vehicle created", "vehicle_id", saved.ID)
	return saved, nil
}

func (s *Vehicle) GetAll(ctx context.Context) ([]model.Vehicle, error) {
	vehicles, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *Vehicle) GetPage(ctx context.Context, req model.PageRequest) (model.Page[model.Vehicle], error) {
	page, err := s.store.GetPage(ctx, req)
	if err != nil {
		return model.Page[model.Vehicle]{}, fmt.Errorf("failed to page vehicles: %w", err)
	}
	return page, nil
}

func (s *Vehicle) GetByID(ctx context.Context, id uuid.UUID) (model.Vehicle, error) {
	vehicle, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Vehicle{}, model.ErrNotFound
		}
		return model.Vehicle{}, fmt.Errorf("failed to get vehicle by id: %w", err)
	}
	return vehicle, nil
}

// Update replaces the vehicle's fields after confirming it exists.
func (s *Vehicle) Update(ctx context.Context, params model.UpdateVehicleParams) (model.Vehicle, error) {
	existing, err := s.store.GetByID(ctx, params.ID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Vehicle{}, model.ErrNotFound
	}
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("failed to get vehicle by id: %w", err)
	}

	updated := existing
	updated.Brand = params.Brand
	updated.Model = params.Model
	updated.Year = params.Year
	updated.Color = params.Color
	updated.LicensePlate = params.LicensePlate
	updated.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, updated); err != nil {
		return model.Vehicle{}, fmt.Errorf("failed to update vehicle: %w", err)
	}

	s.logger.Info("Vehicle service: vehicle updated", "vehicle_id", updated.ID)
	return updated, nil
}

// Delete removes the vehicle after confirming it exists.
func (s *Vehicle) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get vehicle by id: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	s.logger.Info("Vehicle service: vehicle deleted", "vehicle_id", id)
	return nil
}
