package model

import (
	"time"

	"github.com/google/uuid"
)

// Status marks whether a user account is usable.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Role discriminates user kinds without subtyping.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleSalesman Role = "salesman"
)

// User represents a stored user. PasswordHash carries the bcrypt digest and
// must never leave the service layer; public views use PublicUser.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Status       Status
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) EntityID() uuid.UUID { return u.ID }

// PublicUser is the digest-free view of a user returned to callers.
type PublicUser struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Status Status    `json:"status"`
	Role   Role      `json:"role"`
}

// Public strips the credential digest from a user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Status: u.Status,
		Role:   u.Role,
	}
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	return s == StatusActive || s == StatusInactive
}

// ValidRole reports whether r is a known role value.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleCustomer || r == RoleSalesman
}
