// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	revoker      service.TokenRevoker
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Revoker      service.TokenRevoker
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		revoker:      params.Revoker,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user with a hashed password. The email must not be taken.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WithMessagef("User already exists for email: %s", input.Email)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up user by email")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		newUser := &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return registeredUser, nil
}

// Authenticate checks the credentials and issues a session token.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithMessagef("No user found for email: %s", input.Email)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Invalid password", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User authenticated", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		User:        user,
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(srv.tokenService.GetAccessTokenDuration()),
	}, nil
}

// ResolveIdentity verifies the token, rejects revoked ones and loads the user.
// A user that no longer exists is treated like a bad token.
func (srv *authService) ResolveIdentity(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.verifyClaims(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token refers to unknown user", slog.Any("userID", claims.UserID))

			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return nil, errors.Wrap(err, "failed to load token user")
	}

	return &entity.Identity{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TokenID:   claims.ID,
		ExpiresAt: expiryOf(claims),
	}, nil
}

// Verify decodes the token claims without loading the user.
func (srv *authService) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.verifyClaims(ctx, token)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      entity.RoleFromString(claims.Role),
		TokenID:   claims.ID,
		ExpiresAt: expiryOf(claims),
	}, nil
}

// Logout revokes the presenting token until it would have expired anyway.
func (srv *authService) Logout(ctx context.Context, identity *entity.Identity) error {
	if identity == nil || identity.TokenID == "" {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	if err := srv.revoker.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return errors.Wrap(err, "failed to revoke session token")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", identity.UserID))

	return nil
}

func (srv *authService) verifyClaims(ctx context.Context, token string) (*service.Claims, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	revoked, err := srv.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token was revoked")
	}

	return claims, nil
}

func expiryOf(claims *service.Claims) time.Time {
	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}
