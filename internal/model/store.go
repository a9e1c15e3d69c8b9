package model

import (
	"context"

	"github.com/google/uuid"
)

// Entity is any persisted record with a caller-assigned unique identity.
type Entity interface {
	EntityID() uuid.UUID
}

// Store defines the persistence operations shared by every record kind.
// Identities are assigned by the caller before Create; the store never
// generates them.
type Store[T Entity] interface {
	// Create persists a new record and returns the stored state.
	// A uniqueness breach yields ErrConflict.
	Create(ctx context.Context, entity T) (T, error)
	// GetByID returns ErrNotFound when no record has the given identity.
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	GetPage(ctx context.Context, req PageRequest) (Page[T], error)
	// Update replaces the full stored state of the record with matching
	// identity. It does not verify existence; callers pre-check via GetByID.
	Update(ctx context.Context, entity T) error
	// Delete removes the record with the given identity. Like Update it is
	// lenient about absent records.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserStore extends the generic store with email lookup for authentication.
type UserStore interface {
	Store[User]
	// GetByEmail performs an exact, case-sensitive match and returns
	// ErrNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (User, error)
}

// VehicleStore persists vehicles.
type VehicleStore interface {
	Store[Vehicle]
}
