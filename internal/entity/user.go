package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/papertalk/papertalk/constants"
)

type User struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Email          string
	Name           string
	Role           constants.UserRole
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Organization struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
