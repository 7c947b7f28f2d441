package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	contextKeyIdentity = "identity"
	bearerPrefix       = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware resolves the caller of protected routes from the bearer token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate rejects requests without a valid, unrevoked session token of an existing user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("missing bearer token"))
		}

		identity, err := m.authUC.ResolveIdentity(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(contextKeyIdentity, identity)
		deliverycontext.AddLogAttrs(c, slog.String("user_id", identity.UserID.String()))

		return next(c)
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

// GetIdentity returns the caller resolved by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(contextKeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}

// GetUserID returns the caller's user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}

	return identity.UserID, true
}
