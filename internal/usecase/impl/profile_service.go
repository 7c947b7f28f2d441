package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	processor service.PaymentProcessor
	events    *eventEmitter
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Processor service.PaymentProcessor
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		processor: params.Processor,
		events:    newEventEmitter(params.Publisher, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's active profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindActiveByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return profile, nil
}

// UpsertProfile updates the active profile or creates it, and provisions the
// payment customer the first time. The user row stays locked for the whole
// transaction so concurrent updates cannot provision two customers.
func (srv *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpsertProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	var (
		profile    *entity.Profile
		customerID string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		// 1. Lock the user
		user, err := lockUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		// 2. Update in place or create
		existing, err := profileRepo.FindActiveByUserID(ctx, userID)
		switch {
		case err == nil:
			applyProfileInput(existing, input)
			if err := profileRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}
			profile = existing
		case errors.Is(err, repository.ErrProfileNotFound):
			created := &entity.Profile{UserID: userID}
			applyProfileInput(created, input)
			if err := profileRepo.Create(ctx, created); err != nil {
				return errors.Wrap(err, "failed to create profile")
			}
			profile = created
		default:
			return errors.Wrap(err, "failed to find profile")
		}

		// 3. Provision the payment customer once
		if user.HasPaymentCustomer() {
			return nil
		}

		id, err := srv.processor.CreateCustomer(ctx, service.CustomerInput{
			UserID: user.ID.String(),
			Email:  user.Email,
			Name:   user.Name,
		})
		if err != nil {
			return processorFailure(srv.log(ctx), "create customer", err)
		}

		if err := userRepo.SetPaymentCustomerID(ctx, user.ID, id); err != nil {
			return errors.Wrap(err, "failed to store payment customer id")
		}
		customerID = id

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	if customerID != "" {
		srv.log(ctx).Info("Payment customer provisioned", slog.Any("userID", userID), slog.String("customerID", customerID))
		srv.events.emit(ctx, entity.NewCardEvent(entity.CardEventCustomerProvisioned, userID, customerID, ""))
	}

	return profile, nil
}

func applyProfileInput(profile *entity.Profile, input *usecase.UpsertProfileInput) {
	if input == nil {
		return
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.Country != nil {
		profile.Country = *input.Country
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
}
