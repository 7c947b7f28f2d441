package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no active profile.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists user profiles. Soft-deleted profiles are never returned.
type ProfileRepository interface {
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
}
