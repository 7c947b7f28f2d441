// Package repository declares the persistence ports for users, profiles and card mirrors.
// Implementations return the sentinels below for missing rows; use cases map them to AppErrors.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists accounts. Emails are unique.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create stores a new user and fills its id and timestamps.
	// A taken email yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// SetPaymentCustomerID assigns the processor customer id once. It fails if one is already set.
	SetPaymentCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}
