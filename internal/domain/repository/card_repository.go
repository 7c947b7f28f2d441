package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCardNotFound is returned when no active card matches the lookup.
var ErrCardNotFound = errors.New("card not found")

// CardRepository persists the local mirror of processor cards.
// Every lookup is scoped to the owning user and ignores soft-deleted rows.
type CardRepository interface {
	// ListActiveByUserID returns the user's active cards, oldest first.
	ListActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserCard, error)

	// CountActiveByUserID counts the user's active cards.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindActiveByCardID returns the user's active card with the given processor id.
	FindActiveByCardID(ctx context.Context, userID uuid.UUID, cardID string) (*entity.UserCard, error)

	Create(ctx context.Context, card *entity.UserCard) error

	// Touch bumps updated_at after the processor record changed.
	Touch(ctx context.Context, id uuid.UUID) error

	// SoftDelete stamps deleted_at on an active card.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
