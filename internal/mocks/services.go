package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// AuthService is a mock implementation of the authentication service surface.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (string, model.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(model.User), args.Error(2)
}

// UserService is a mock implementation of the user service surface.
type UserService struct {
	mock.Mock
}

func (m *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserService) GetPage(ctx context.Context, req model.PageRequest) (model.Page[model.User], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Page[model.User]), args.Error(1)
}

func (m *UserService) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Update(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// VehicleService is a mock implementation of the vehicle service surface.
type VehicleService struct {
	mock.Mock
}

func (m *VehicleService) Create(ctx context.Context, params model.CreateVehicleParams) (model.Vehicle, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *VehicleService) GetAll(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *VehicleService) GetPage(ctx context.Context, req model.PageRequest) (model.Page[model.Vehicle], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Page[model.Vehicle]), args.Error(1)
}

func (m *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (model.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *VehicleService) Update(ctx context.Context, params model.UpdateVehicleParams) (model.Vehicle, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
