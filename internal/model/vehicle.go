package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a stored vehicle record.
type Vehicle struct {
	ID           uuid.UUID
	Brand        string
	Model        string
	Year         string
	Color        string
	LicensePlate string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (v Vehicle) EntityID() uuid.UUID { return v.ID }
