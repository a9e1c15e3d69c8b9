package model

import "github.com/google/uuid"

// TokenManager issues and validates bearer session tokens.
type TokenManager interface {
	// GenerateToken mints a signed, expiring token bound to the user.
	GenerateToken(userID uuid.UUID, email string) (string, error)
	// ParseToken validates a token and returns the user identity it carries.
	ParseToken(token string) (uuid.UUID, string, error)
}
