package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CardHandler serves the caller's payment cards.
type CardHandler struct {
	cardUC usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC: params.CardUC,
		logger: params.Logger,
	}
}

// AddCard attaches a new card.
func (h *CardHandler) AddCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req AddCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.cardUC.AddCard(c.Request().Context(), userID, &usecase.AddCardInput{Token: req.Token})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCardResponse(card), "New card added successfully")
}

// ListCards returns the live detail of the caller's cards.
func (h *CardHandler) ListCards(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	out, err := h.cardUC.ListCards(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCardListResponse(out), "Cards fetched successfully")
}

// UpdateCard changes the card's name or expiry.
func (h *CardHandler) UpdateCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req UpdateCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.cardUC.UpdateCard(c.Request().Context(), userID, &usecase.UpdateCardInput{
		CardID:      req.CardID,
		Name:        req.CardName,
		ExpiryMonth: req.CardExpiryMonth,
		ExpiryYear:  req.CardExpiryYear,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &UpdatedCardResponse{UpdatedCard: toCardResponse(card)}, "Card updated successfully")
}

// RemoveCard deletes the card at the processor and locally.
func (h *CardHandler) RemoveCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req CardIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.cardUC.DeleteCard(c.Request().Context(), userID, req.CardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &DeletedCardResponse{
		DeletedCard: out.DeletedCard,
		Deleted:     out.Deleted,
	}, "Card deleted successfully")
}

// MakeDefault selects the customer's default card.
func (h *CardHandler) MakeDefault(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req CardIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.cardUC.MakeDefault(c.Request().Context(), userID, req.CardID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &DefaultCardResponse{Default: true}, "Successfully updated default card")
}
