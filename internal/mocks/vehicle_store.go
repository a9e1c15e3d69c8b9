package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// VehicleStore is a mock implementation of model.VehicleStore.
type VehicleStore struct {
	mock.Mock
}

func (m *VehicleStore) Create(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *VehicleStore) GetByID(ctx context.Context, id uuid.UUID) (model.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *VehicleStore) GetAll(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *VehicleStore) GetPage(ctx context.Context, req model.PageRequest) (model.Page[model.Vehicle], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Page[model.Vehicle]), args.Error(1)
}

func (m *VehicleStore) Update(ctx context.Context, vehicle model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *VehicleStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
