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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup, login and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Signup handles user registration.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User successfully registered!")
}

// Login handles credential authentication.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Authenticate(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		User:        toUserResponse(out.User),
		AccessToken: out.AccessToken,
		ExpiresAt:   out.ExpiresAt,
	}, "User authenticated")
}

// Verify returns the identity claims carried by the bearer token.
func (h *AuthHandler) Verify(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("missing bearer token"))
	}

	identity, err := h.authUC.Verify(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity), "Session verified")
}

// Logout revokes the presenting token. Must run behind Authenticate.
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	if err := h.authUC.Logout(c.Request().Context(), identity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}
