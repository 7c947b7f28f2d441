package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CardUsecase defines the card lifecycle operations on top of the payment processor.
type CardUsecase interface {
	AddCard(ctx context.Context, userID uuid.UUID, input *AddCardInput) (*entity.CardDetail, error)
	ListCards(ctx context.Context, userID uuid.UUID) (*ListCardsOutput, error)
	UpdateCard(ctx context.Context, userID uuid.UUID, input *UpdateCardInput) (*entity.CardDetail, error)
	DeleteCard(ctx context.Context, userID uuid.UUID, cardID string) (*DeleteCardOutput, error)
	MakeDefault(ctx context.Context, userID uuid.UUID, cardID string) error
}

// --- Input DTOs ---

// AddCardInput carries the processor token of the card to attach.
// An empty token falls back to the configured test token.
type AddCardInput struct {
	Token string
}

// UpdateCardInput defines the card fields to change. Nil fields are left untouched.
type UpdateCardInput struct {
	CardID      string
	Name        *string
	ExpiryMonth *int
	ExpiryYear  *int
}

// --- Output DTOs ---

// ListCardsOutput holds the live card details in local creation order.
type ListCardsOutput struct {
	Cards      []*entity.CardDetail
	TotalCards int
}

// DeleteCardOutput reports the removed card.
type DeleteCardOutput struct {
	DeletedCard string
	Deleted     bool
}
