package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleetbay/fleetbay-server/internal/mocks"
	"github.com/fleetbay/fleetbay-server/internal/model"
	"github.com/fleetbay/fleetbay-server/internal/testutil"
)

func TestVehicle_Create_AssignsIdentity(t *testing.T) {
	ctx := context.Background()
	store := &mocks.VehicleStore{}

	store.On("Create", mock.Anything, mock.MatchedBy(func(v model.Vehicle) bool {
		return v.ID != uuid.Nil &&
			v.Brand == "Fiat" &&
			v.LicensePlate == "ABC-1234" &&
			!v.CreatedAt.IsZero()
	})).Return(model.Vehicle{ID: uuid.New(), Brand: "Fiat"}, nil)

	s := NewVehicle(store, testutil.MakeNoopLogger())

	saved, err := s.Create(ctx, model.CreateVehicleParams{
		Brand:        "Fiat",
		Model:        "Uno",
		Year:         "1999",
		Color:        "red",
		LicensePlate: "ABC-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fiat", saved.Brand)
	store.AssertExpectations(t)
}

func TestVehicle_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.VehicleStore{}

	id := uuid.New()
	store.On("GetByID", mock.Anything, id).Return(model.Vehicle{}, model.ErrNotFound)

	s := NewVehicle(store, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, model.UpdateVehicleParams{ID: id})
	require.ErrorIs(t, err, model.ErrNotFound)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestVehicle_Update_ReplacesFields(t *testing.T) {
	ctx := context.Background()
	store := &mocks.VehicleStore{}

	id := uuid.New()
	existing := model.Vehicle{ID: id, Brand: "Fiat", Model: "Uno", Year: "1999", Color: "red", LicensePlate: "ABC-1234"}
	store.On("GetByID", mock.Anything, id).Return(existing, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(v model.Vehicle) bool {
		return v.ID == id && v.Color == "blue" && v.Brand == "Fiat"
	})).Return(nil)

	s := NewVehicle(store, testutil.MakeNoopLogger())

	updated, err := s.Update(ctx, model.UpdateVehicleParams{
		ID:           id,
		Brand:        "Fiat",
		Model:        "Uno",
		Year:         "1999",
		Color:        "blue",
		LicensePlate: "ABC-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "blue", updated.Color)
}

func TestVehicle_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.VehicleStore{}

	id := uuid.New()
	store.On("GetByID", mock.Anything, id).Return(model.Vehicle{}, model.ErrNotFound)

	s := NewVehicle(store, testutil.MakeNoopLogger())

	require.ErrorIs(t, s.Delete(ctx, id), model.ErrNotFound)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVehicle_GetAll(t *testing.T) {
	ctx := context.Background()
	store := &mocks.VehicleStore{}

	want := []model.Vehicle{{ID: uuid.New()}, {ID: uuid.New()}}
	store.On("GetAll", mock.Anything).Return(want, nil)

	s := NewVehicle(store, testutil.MakeNoopLogger())

	got, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
