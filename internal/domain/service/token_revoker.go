package service

import (
	"context"
	"time"
)

// TokenRevoker keeps the ids of session tokens that were logged out before expiry.
type TokenRevoker interface {
	// Revoke rejects the token id until expiresAt.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether the token id was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
