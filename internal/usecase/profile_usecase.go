package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpsertProfile updates or creates the active profile and provisions the
	// payment customer on first use.
	UpsertProfile(ctx context.Context, userID uuid.UUID, input *UpsertProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpsertProfileInput defines the profile fields. Nil fields keep their current value.
type UpsertProfileInput struct {
	Bio     *string
	Address *string
	City    *string
	Country *string
	Phone   *string
}
