package service

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

var (
	// ErrProcessorCardRejected is returned when the processor refuses a card or token.
	ErrProcessorCardRejected = errors.New("card rejected by payment processor")

	// ErrProcessorResourceMissing is returned when the customer or card is unknown to the processor.
	ErrProcessorResourceMissing = errors.New("payment processor resource not found")
)

// CustomerInput carries the data sent to the processor when provisioning a customer.
type CustomerInput struct {
	UserID string
	Email  string
	Name   string
}

// CardUpdate holds the mutable card fields. Nil fields are left untouched.
type CardUpdate struct {
	Name        *string
	ExpiryMonth *int
	ExpiryYear  *int
}

// PaymentProcessor abstracts the external processor that owns customers and payment sources.
type PaymentProcessor interface {
	// CreateCustomer provisions a customer and returns its id. Repeated calls for the same
	// UserID are collapsed by the processor.
	CreateCustomer(ctx context.Context, input CustomerInput) (string, error)

	// GetDefaultSource returns the customer's default source id, "" when none is set.
	GetDefaultSource(ctx context.Context, customerID string) (string, error)

	// CountCards returns the number of cards attached to the customer.
	CountCards(ctx context.Context, customerID string) (int, error)

	// AttachCard attaches the card behind token to the customer.
	AttachCard(ctx context.Context, customerID, token string) (*entity.CardDetail, error)

	// GetCard fetches live card detail.
	GetCard(ctx context.Context, customerID, cardID string) (*entity.CardDetail, error)

	// UpdateCard pushes name and expiry changes.
	UpdateCard(ctx context.Context, customerID, cardID string, update CardUpdate) (*entity.CardDetail, error)

	// DeleteCard removes the card and reports whether the processor confirmed the deletion.
	DeleteCard(ctx context.Context, customerID, cardID string) (bool, error)

	// SetDefaultCard makes cardID the customer's default source.
	SetDefaultCard(ctx context.Context, customerID, cardID string) error
}
