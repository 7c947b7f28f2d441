package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserCard is the local mirror of a payment source attached at the processor.
// Only identifiers are stored; card detail is always read live from the processor.
type UserCard struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CardID    string // The processor's source identifier, e.g. "card_..."
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsActive reports whether the card has not been soft-deleted.
func (c *UserCard) IsActive() bool {
	return c.DeletedAt == nil
}

// CardDetail is the live view of a card as reported by the payment processor.
type CardDetail struct {
	CardID      string
	Name        string
	ExpiryMonth int64
	ExpiryYear  int64
	Last4       string
	Brand       string
	IsDefault   bool
}

// CardEventType names a card or customer lifecycle transition.
type CardEventType string

const (
	CardEventCustomerProvisioned CardEventType = "customer.provisioned"
	CardEventAdded               CardEventType = "card.added"
	CardEventUpdated             CardEventType = "card.updated"
	CardEventRemoved             CardEventType = "card.removed"
	CardEventDefaultChanged      CardEventType = "card.default_changed"
)

// CardEvent is published after a processor-side change has been committed locally.
type CardEvent struct {
	ID         uuid.UUID     `json:"id"`
	Type       CardEventType `json:"type"`
	UserID     uuid.UUID     `json:"userId"`
	CustomerID string        `json:"customerId"`
	CardID     string        `json:"cardId,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// NewCardEvent stamps an event with a fresh id and the current time.
func NewCardEvent(eventType CardEventType, userID uuid.UUID, customerID, cardID string) *CardEvent {
	return &CardEvent{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		CustomerID: customerID,
		CardID:     cardID,
		OccurredAt: time.Now().UTC(),
	}
}
