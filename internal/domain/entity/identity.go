package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the caller resolved from a session token.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Role      Role
	TokenID   string    // jti of the presenting token, used to revoke it on logout
	ExpiresAt time.Time // natural expiry of the presenting token
}
