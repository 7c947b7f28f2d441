// Package handler contains the HTTP handlers of the API delivery.
package handler

import (
	"strings"
	"time"

	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// --- Requests ---

// SignupRequest represents the request body for registration
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the request body for a profile update. Omitted fields are kept.
type UpdateProfileRequest struct {
	Bio     *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// AddCardRequest carries the processor card token
type AddCardRequest struct {
	Token string `json:"token" validate:"omitempty,max=255"`
}

// UpdateCardRequest represents the request body for a card update
type UpdateCardRequest struct {
	CardID          string  `json:"cardId" validate:"required"`
	CardName        *string `json:"cardName,omitempty" validate:"omitempty,max=255"`
	CardExpiryMonth *int    `json:"cardExpiryMonth,omitempty" validate:"omitempty,min=1,max=12"`
	CardExpiryYear  *int    `json:"cardExpiryYear,omitempty" validate:"omitempty,min=1000,max=9999"`
}

// CardIDRequest names a card by its processor id, in the body or the query string
type CardIDRequest struct {
	CardID string `json:"cardId" query:"cardId" validate:"required"`
}

// --- Responses ---

// UserResponse is the public view of a user. The password hash is never exposed.
type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	PaymentCustomerID *string   `json:"paymentCustomerId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expiresAt"`
}

// IdentityResponse is the decoded content of a session token
type IdentityResponse struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// ProfileResponse is the public view of a profile
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Bio       string    `json:"bio"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CardResponse is the live view of a card
type CardResponse struct {
	CardID      string `json:"cardId"`
	Name        string `json:"name"`
	ExpiryMonth int64  `json:"expiryMonth"`
	ExpiryYear  int64  `json:"expiryYear"`
	Last4       string `json:"last4"`
	Brand       string `json:"brand"`
	IsDefault   bool   `json:"isDefault"`
}

// CardListResponse wraps the caller's cards
type CardListResponse struct {
	Cards      []*CardResponse `json:"cards"`
	TotalCards int             `json:"totalCards"`
}

// UpdatedCardResponse wraps the card returned by the processor after an update
type UpdatedCardResponse struct {
	UpdatedCard *CardResponse `json:"updatedCard"`
}

// DeletedCardResponse reports a removed card
type DeletedCardResponse struct {
	DeletedCard string `json:"deletedCard"`
	Deleted     bool   `json:"deleted"`
}

// DefaultCardResponse confirms the default card change
type DefaultCardResponse struct {
	Default bool `json:"default"`
}

// --- Mapping ---

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name,
		Role:              user.Role.String(),
		PaymentCustomerID: user.PaymentCustomerID,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

func toIdentityResponse(identity *entity.Identity) *IdentityResponse {
	return &IdentityResponse{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role.String(),
	}
}

func toProfileResponse(profile *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        profile.ID,
		UserID:    profile.UserID,
		Bio:       profile.Bio,
		Address:   profile.Address,
		City:      profile.City,
		Country:   profile.Country,
		Phone:     profile.Phone,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

func toCardResponse(card *entity.CardDetail) *CardResponse {
	return &CardResponse{
		CardID:      card.CardID,
		Name:        card.Name,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
		Last4:       card.Last4,
		Brand:       card.Brand,
		IsDefault:   card.IsDefault,
	}
}

func toCardListResponse(out *usecase.ListCardsOutput) *CardListResponse {
	cards := make([]*CardResponse, 0, len(out.Cards))
	for _, card := range out.Cards {
		cards = append(cards, toCardResponse(card))
	}

	return &CardListResponse{Cards: cards, TotalCards: out.TotalCards}
}

// bindAndValidate binds the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(validator.Describe(err), "; ")))
	}

	return nil
}
