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

// Auth implements the registration and authentication processes.
type Auth struct {
	userStore    model.UserStore
	hasher       model.Hasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.Hasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register hashes the credential, builds a user with a fresh identity and
// active status, and persists it. A duplicate email surfaces as
// model.ErrConflict untranslated; the database unique index decides the
// winner between concurrent registrations.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "email", params.Email)

	digest, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash credential: %w", err)
	}

	role := params.Role
	if role == "" {
		role = model.RoleCustomer
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: digest,
		Status:       model.StatusActive,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			a.logger.Info("Auth service: email already registered", "email", params.Email)
			return model.User{}, model.ErrConflict
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "user_id", saved.ID)
	return saved, nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password both yield model.ErrInvalidCredentials, so the
// response does not reveal whether the account exists; for an unknown email
// the hasher is never consulted.
func (a *Auth) Login(ctx context.Context, email, password string) (string, model.User, error) {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to verify credential: %w", err)
	}
	if !ok {
		return "", model.User{}, model.ErrInvalidCredentials
	}

	sessionToken, err := a.tokenManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)
	return sessionToken, user, nil
}
