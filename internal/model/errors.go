package model

import "errors"

var (
	// ErrNotFound is returned by stores when no record has the requested identity.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a uniqueness constraint is violated,
	// e.g. registering a second user with an existing email.
	ErrConflict = errors.New("constraint violation")
	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so a caller cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
