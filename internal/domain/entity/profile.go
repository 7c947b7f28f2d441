package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the optional personal details of a user. A user has at most one active profile.
type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Bio       string
	Address   string
	City      string
	Country   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
