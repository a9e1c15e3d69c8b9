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

// User provides read, update, and delete operations over user records.
// Creation goes through Auth.Register so every stored user has a digest.
type User struct {
	store  model.UserStore
	logger *logger.Logger
}

func NewUser(store model.UserStore, logger *logger.Logger) *User {
	return &User{store: store, logger: logger}
}

func (s *User) GetAll(ctx context.Context) ([]model.User, error) {
	users, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *User) GetPage(ctx context.Context, req model.PageRequest) (model.Page[model.User], error) {
	page, err := s.store.GetPage(ctx, req)
	if err != nil {
		return model.Page[model.User]{}, fmt.Errorf("failed to page users: %w", err)
	}
	return page, nil
}

func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// Update replaces the user's mutable fields. The store's update is lenient,
// so existence is checked here first; the stored digest and creation time are
// carried over untouched.
func (s *User) Update(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	existing, err := s.store.GetByID(ctx, params.ID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	updated := existing
	updated.Name = params.Name
	updated.Email = params.Email
	updated.Status = params.Status
	updated.Role = params.Role
	updated.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, updated); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.User{}, model.ErrConflict
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", updated.ID)
	return updated, nil
}

// Delete removes the user after confirming it exists.
func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", id)
	return nil
}
