package model

import "github.com/google/uuid"

// RegisterParams contains parameters to register a user. Password arrives in
// plaintext and is hashed before anything is persisted.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// UpdateUserParams contains parameters to update a user. The credential
// digest is deliberately absent: the update path never touches it.
type UpdateUserParams struct {
	ID     uuid.UUID
	Name   string
	Email  string
	Status Status
	Role   Role
}

// CreateVehicleParams contains parameters to create a vehicle.
type CreateVehicleParams struct {
	Brand        string
	Model        string
	Year         string
	Color        string
	LicensePlate string
}

// UpdateVehicleParams contains parameters to update a vehicle.
type UpdateVehicleParams struct {
	ID           uuid.UUID
	Brand        string
	Model        string
	Year         string
	Color        string
	LicensePlate string
}
