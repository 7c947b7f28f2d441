package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/metrics"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-session-token"

type routerFixtures struct {
	echo      *echo.Echo
	authUC    *mockUC.MockAuthUsecase
	profileUC *mockUC.MockProfileUsecase
	cardUC    *mockUC.MockCardUsecase
	identity  *entity.Identity
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newRouterFixtures(t *testing.T, rateLimit *config.RateLimitConfig) *routerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &routerFixtures{
		echo:      echo.New(),
		authUC:    mockUC.NewMockAuthUsecase(t),
		profileUC: mockUC.NewMockProfileUsecase(t),
		cardUC:    mockUC.NewMockCardUsecase(t),
		identity: &entity.Identity{
			UserID:  uuid.New(),
			Email:   "jane@example.com",
			Role:    entity.RoleUser,
			TokenID: "jti-1",
		},
	}

	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Logger: logger}),
		ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profileUC, Logger: logger}),
		CardHandler:         handler.NewCardHandler(handler.CardHandlerParams{CardUC: f.cardUC, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: f.authUC}),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(&config.Config{RateLimit: rateLimit}),
		Metrics:             metrics.New(),
	})
	r.RegisterRoutes(f.echo)

	return f
}

// authenticated lets the bearer middleware resolve validToken to the fixture identity.
func (f *routerFixtures) authenticated() {
	f.authUC.EXPECT().ResolveIdentity(mock.Anything, validToken).Return(f.identity, nil)
}

func (f *routerFixtures) do(t *testing.T, method, target, body string, withToken bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if withToken {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestRouter_Signup(t *testing.T) {
	f := newRouterFixtures(t, nil)

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		Name:         "Jane",
		PasswordHash: "$2a$10$secret",
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "jane@example.com", Name: "Jane", Password: "secret1"}).
		Return(user, nil)

	rec, env := f.do(t, http.MethodPost, "/auth/signup", `{"email":"jane@example.com","name":"Jane","password":"secret1"}`, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User successfully registered!", env.Message)
	assert.NotContains(t, string(env.Data), "secret")
	assert.Contains(t, string(env.Data), user.ID.String())
}

func TestRouter_SignupValidation(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "short password", body: `{"email":"jane@example.com","name":"Jane","password":"123"}`},
		{name: "malformed email", body: `{"email":"not-an-email","name":"Jane","password":"secret1"}`},
		{name: "missing name", body: `{"email":"jane@example.com","password":"secret1"}`},
		{name: "malformed json", body: `{"email":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRouterFixtures(t, nil)

			rec, env := f.do(t, http.MethodPost, "/auth/signup", tc.body, false)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
			assert.NotNil(t, env.Error.Details)
		})
	}
}

func TestRouter_LoginErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "unknown email",
			err:        domainerrors.ErrUserNotFound.WithMessagef("No user found for email: %s", "jane@example.com"),
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
			wantMsg:    "No user found for email: jane@example.com",
		},
		{
			name:       "wrong password",
			err:        domainerrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
			wantMsg:    "Invalid password",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRouterFixtures(t, nil)
			f.authUC.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(nil, tc.err)

			rec, env := f.do(t, http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"secret1"}`, false)

			assert.Equal(t, tc.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.wantCode, env.Error.Code)
			assert.Equal(t, tc.wantMsg, env.Message)
		})
	}
}

func TestRouter_Login(t *testing.T) {
	f := newRouterFixtures(t, nil)
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	f.authUC.EXPECT().Authenticate(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{
			User:        &entity.User{ID: f.identity.UserID, Email: "jane@example.com", Role: entity.RoleUser},
			AccessToken: "signed.jwt.token",
			ExpiresAt:   expiresAt,
		}, nil)

	rec, env := f.do(t, http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"secret1"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User authenticated", env.Message)

	var data handler.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "signed.jwt.token", data.AccessToken)
	assert.True(t, expiresAt.Equal(data.ExpiresAt))
	assert.Equal(t, f.identity.UserID, data.User.ID)
}

func TestRouter_Verify(t *testing.T) {
	t.Run("returns claims", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authUC.EXPECT().Verify(mock.Anything, validToken).Return(f.identity, nil)

		rec, env := f.do(t, http.MethodGet, "/auth/verify", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		var data handler.IdentityResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, f.identity.UserID, data.UserID)
		assert.Equal(t, "user", data.Role)
	})

	t.Run("missing bearer", func(t *testing.T) {
		f := newRouterFixtures(t, nil)

		rec, env := f.do(t, http.MethodGet, "/auth/verify", "", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestRouter_Logout(t *testing.T) {
	f := newRouterFixtures(t, nil)
	f.authenticated()
	f.authUC.EXPECT().Logout(mock.Anything, f.identity).Return(nil)

	rec, env := f.do(t, http.MethodPost, "/auth/logout", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", env.Message)
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/user/view/profile/me"},
		{http.MethodPatch, "/user/update/profile"},
		{http.MethodPost, "/user/add/card"},
		{http.MethodGet, "/user/view/card"},
		{http.MethodPatch, "/user/update/card"},
		{http.MethodDelete, "/user/remove/card"},
		{http.MethodPatch, "/user/default/card"},
		{http.MethodPost, "/auth/logout"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			f := newRouterFixtures(t, nil)

			rec, _ := f.do(t, route.method, route.path, "", false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_RevokedSessionRejected(t *testing.T) {
	f := newRouterFixtures(t, nil)
	f.authUC.EXPECT().ResolveIdentity(mock.Anything, validToken).Return(nil, domainerrors.ErrInvalidToken)

	rec, env := f.do(t, http.MethodGet, "/user/view/profile/me", "", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestRouter_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.profileUC.EXPECT().GetProfile(mock.Anything, f.identity.UserID).
			Return(&entity.Profile{ID: uuid.New(), UserID: f.identity.UserID, City: "Lisbon"}, nil)

		rec, env := f.do(t, http.MethodGet, "/user/view/profile/me", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Profile successfully found", env.Message)
		var data handler.ProfileResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Lisbon", data.City)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.profileUC.EXPECT().GetProfile(mock.Anything, f.identity.UserID).Return(nil, domainerrors.ErrProfileNotFound)

		rec, env := f.do(t, http.MethodGet, "/user/view/profile/me", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Profile not found!", env.Message)
	})
}

func TestRouter_UpdateProfileKeepsAbsentFields(t *testing.T) {
	f := newRouterFixtures(t, nil)
	f.authenticated()
	f.profileUC.EXPECT().
		UpsertProfile(mock.Anything, f.identity.UserID, mock.MatchedBy(func(in *usecase.UpsertProfileInput) bool {
			return in.City != nil && *in.City == "Porto" && in.Bio == nil && in.Phone == nil
		})).
		Return(&entity.Profile{ID: uuid.New(), UserID: f.identity.UserID, City: "Porto"}, nil)

	rec, env := f.do(t, http.MethodPatch, "/user/update/profile", `{"city":"Porto"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile Updated Successfully", env.Message)
}

func TestRouter_AddCard(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.cardUC.EXPECT().AddCard(mock.Anything, f.identity.UserID, &usecase.AddCardInput{Token: "tok_visa"}).
			Return(&entity.CardDetail{CardID: "card_1", Last4: "4242", Brand: "Visa", ExpiryMonth: 12, ExpiryYear: 2030}, nil)

		rec, env := f.do(t, http.MethodPost, "/user/add/card", `{"token":"tok_visa"}`, true)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "New card added successfully", env.Message)
		var data handler.CardResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "card_1", data.CardID)
		assert.Equal(t, "4242", data.Last4)
	})

	t.Run("customer missing", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.cardUC.EXPECT().AddCard(mock.Anything, f.identity.UserID, mock.Anything).
			Return(nil, domainerrors.ErrPaymentCustomerMissing)

		rec, env := f.do(t, http.MethodPost, "/user/add/card", `{}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User has no stripe customer id, please update your profile!", env.Message)
	})

	t.Run("processor failure hides details", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.cardUC.EXPECT().AddCard(mock.Anything, f.identity.UserID, mock.Anything).
			Return(nil, domainerrors.ErrPaymentProcessorFailed.WithDetails("stripe attach_card: timeout"))

		rec, env := f.do(t, http.MethodPost, "/user/add/card", `{"token":"tok_visa"}`, true)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PAYMENT_PROCESSOR_ERROR", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestRouter_ListCards(t *testing.T) {
	f := newRouterFixtures(t, nil)
	f.authenticated()
	f.cardUC.EXPECT().ListCards(mock.Anything, f.identity.UserID).Return(&usecase.ListCardsOutput{
		Cards: []*entity.CardDetail{
			{CardID: "card_1", IsDefault: true},
			{CardID: "card_2"},
		},
		TotalCards: 2,
	}, nil)

	rec, env := f.do(t, http.MethodGet, "/user/view/card", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cards fetched successfully", env.Message)
	var data handler.CardListResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.TotalCards)
	require.Len(t, data.Cards, 2)
	assert.Equal(t, "card_1", data.Cards[0].CardID)
	assert.True(t, data.Cards[0].IsDefault)
	assert.False(t, data.Cards[1].IsDefault)
}

func TestRouter_UpdateCard(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.cardUC.EXPECT().
			UpdateCard(mock.Anything, f.identity.UserID, mock.MatchedBy(func(in *usecase.UpdateCardInput) bool {
				return in.CardID == "card_1" && in.ExpiryMonth != nil && *in.ExpiryMonth == 11 && in.Name == nil
			})).
			Return(&entity.CardDetail{CardID: "card_1", ExpiryMonth: 11}, nil)

		rec, env := f.do(t, http.MethodPatch, "/user/update/card", `{"cardId":"card_1","cardExpiryMonth":11}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Card updated successfully", env.Message)
		var data handler.UpdatedCardResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, int64(11), data.UpdatedCard.ExpiryMonth)
	})

	t.Run("month out of range", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()

		rec, env := f.do(t, http.MethodPatch, "/user/update/card", `{"cardId":"card_1","cardExpiryMonth":13}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("year not four digits", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()

		rec, _ := f.do(t, http.MethodPatch, "/user/update/card", `{"cardId":"card_1","cardExpiryYear":30}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_RemoveCard(t *testing.T) {
	t.Run("body", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.cardUC.EXPECT().DeleteCard(mock.Anything, f.identity.UserID, "card_1").
			Return(&usecase.DeleteCardOutput{DeletedCard: "card_1", Deleted: true}, nil)

		rec, env := f.do(t, http.MethodDelete, "/user/remove/card", `{"cardId":"card_1"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Card deleted successfully", env.Message)
		var data handler.DeletedCardResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "card_1", data.DeletedCard)
		assert.True(t, data.Deleted)
	})

	t.Run("query", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.cardUC.EXPECT().DeleteCard(mock.Anything, f.identity.UserID, "card_2").
			Return(&usecase.DeleteCardOutput{DeletedCard: "card_2", Deleted: true}, nil)

		rec, _ := f.do(t, http.MethodDelete, "/user/remove/card?cardId=card_2", "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown card", func(t *testing.T) {
		f := newRouterFixtures(t, nil)
		f.authenticated()
		f.cardUC.EXPECT().DeleteCard(mock.Anything, f.identity.UserID, "card_9").
			Return(nil, domainerrors.ErrCardNotFound.WithMessagef("No existing card found to delete"))

		rec, env := f.do(t, http.MethodDelete, "/user/remove/card", `{"cardId":"card_9"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No existing card found to delete", env.Message)
	})
}

func TestRouter_MakeDefault(t *testing.T) {
	f := newRouterFixtures(t, nil)
	f.authenticated()
	f.cardUC.EXPECT().MakeDefault(mock.Anything, f.identity.UserID, "card_1").Return(nil)

	rec, env := f.do(t, http.MethodPatch, "/user/default/card", `{"cardId":"card_1"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully updated default card", env.Message)
	assert.JSONEq(t, `{"default":true}`, string(env.Data))
}

func TestRouter_AuthRateLimit(t *testing.T) {
	f := newRouterFixtures(t, &config.RateLimitConfig{RPS: 0.001, Burst: 1})
	f.authUC.EXPECT().Verify(mock.Anything, validToken).Return(f.identity, nil).Once()

	first, _ := f.do(t, http.MethodGet, "/auth/verify", "", true)
	second, env := f.do(t, http.MethodGet, "/auth/verify", "", true)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RATE_LIMITED", env.Error.Code)
}

func TestRouter_SystemEndpoints(t *testing.T) {
	f := newRouterFixtures(t, nil)

	health, env := f.do(t, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "ok", env.Message)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
