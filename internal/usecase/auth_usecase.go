// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// AuthUsecase defines the interface for authentication and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Authenticate(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveIdentity verifies a session token and loads the user it belongs to.
	ResolveIdentity(ctx context.Context, token string) (*entity.Identity, error)

	// Verify decodes a session token without touching the user store.
	Verify(ctx context.Context, token string) (*entity.Identity, error)

	// Logout revokes the presenting token until its natural expiry.
	Logout(ctx context.Context, identity *entity.Identity) error
}
