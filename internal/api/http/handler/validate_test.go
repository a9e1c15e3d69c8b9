package handler

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVehicleRequest_LicensePlate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		plate string
		valid bool
	}{
		{"ABC-1234", true},
		{"ABC1234", true},
		{"ABC1D23", true},
		{"abc-1234", false},
		{"AB-1234", false},
		{"ABC-123", false},
		{"ABC12D3", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.plate, func(t *testing.T) {
			req := vehicleRequest{
				Brand:        "Fiat",
				Model:        "Argo",
				Year:         "2020",
				Color:        "red",
				LicensePlate: tt.plate,
			}

			_, hasErr := req.validate()["licensePlate"]
			assert.Equal(t, !tt.valid, hasErr)
		})
	}
}

func TestVehicleRequest_Year(t *testing.T) {
	t.Parallel()

	nextYear := strconv.Itoa(time.Now().Year() + 1)

	tests := []struct {
		year  string
		valid bool
	}{
		{"1900", true},
		{"2015", true},
		{nextYear, true},
		{"1899", false},
		{strconv.Itoa(time.Now().Year() + 2), false},
		{"20", false},
		{"twenty", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			req := vehicleRequest{
				Brand:        "Fiat",
				Model:        "Argo",
				Year:         tt.year,
				Color:        "red",
				LicensePlate: "ABC-1234",
			}

			_, hasErr := req.validate()["year"]
			assert.Equal(t, !tt.valid, hasErr)
		})
	}
}

func TestCreateUserRequest_BoundaryLengths(t *testing.T) {
	t.Parallel()

	base := createUserRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "secret1",
	}

	t.Run("name at limits", func(t *testing.T) {
		req := base
		req.Name = strings.Repeat("a", 100)
		assert.True(t, req.validate().ok())

		req.Name = strings.Repeat("a", 101)
		assert.False(t, req.validate().ok())

		req.Name = "abc"
		assert.True(t, req.validate().ok())
	})

	t.Run("password at limits", func(t *testing.T) {
		req := base
		req.Password = strings.Repeat("p", 50)
		assert.True(t, req.validate().ok())

		req.Password = strings.Repeat("p", 51)
		assert.False(t, req.validate().ok())

		req.Password = "12345"
		assert.False(t, req.validate().ok())
	})
}
