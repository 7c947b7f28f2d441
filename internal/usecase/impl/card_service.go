package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentCardFetches bounds the parallel card detail requests of one listing.
const maxConcurrentCardFetches = 4

// cardService implements the CardUsecase interface.
type cardService struct {
	txManager        repository.TransactionManager
	processor        service.PaymentProcessor
	events           *eventEmitter
	defaultCardToken string
	logger           *slog.Logger
}

// CardServiceParams holds dependencies for CardService, injected by Fx.
type CardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Processor service.PaymentProcessor
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCardService is the constructor for cardService.
func NewCardService(params CardServiceParams) usecase.CardUsecase {
	defaultCardToken := ""
	if params.Config != nil && params.Config.Payment != nil {
		defaultCardToken = params.Config.Payment.DefaultCardToken
	}

	return &cardService{
		txManager:        params.TxManager,
		processor:        params.Processor,
		events:           newEventEmitter(params.Publisher, params.Logger),
		defaultCardToken: defaultCardToken,
		logger:           params.Logger,
	}
}

func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCard attaches a card to the user's payment customer. A user holds at most one card.
func (srv *cardService) AddCard(ctx context.Context, userID uuid.UUID, input *usecase.AddCardInput) (*entity.CardDetail, error) {
	token := srv.defaultCardToken
	if input != nil && input.Token != "" {
		token = input.Token
	}
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrCardTokenMissing)
	}

	srv.log(ctx).Info("Adding card", slog.Any("userID", userID))

	var (
		detail     *entity.CardDetail
		customerID string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cardRepo := repoFactory.CardRepo()

		// 1. Lock the user so two concurrent adds cannot both pass the checks
		user, err := lockUser(ctx, repoFactory.UserRepo(), userID)
		if err != nil {
			return err
		}
		if !user.HasPaymentCustomer() {
			return errors.WithStack(domainerrors.ErrPaymentCustomerMissing)
		}
		customerID = user.PaymentCustomer()

		// 2. One card per user, locally and at the processor
		count, err := cardRepo.CountActiveByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count cards")
		}
		if count > 0 {
			return errors.WithStack(domainerrors.ErrCardAlreadyExists)
		}

		remote, err := srv.processor.CountCards(ctx, customerID)
		if err != nil {
			return processorFailure(srv.log(ctx), "count cards", err)
		}
		if remote > 0 {
			return errors.WithStack(domainerrors.ErrCardAlreadyExists)
		}

		// 3. Attach and mirror
		attached, err := srv.processor.AttachCard(ctx, customerID, token)
		if err != nil {
			if errors.Is(err, service.ErrProcessorResourceMissing) {
				return errors.Wrap(domainerrors.ErrCardRejected, err.Error())
			}

			return processorFailure(srv.log(ctx), "attach card", err)
		}

		if err := cardRepo.Create(ctx, &entity.UserCard{UserID: userID, CardID: attached.CardID}); err != nil {
			return errors.Wrap(err, "failed to store card")
		}

		detail = withCardholderName(attached, user.Name)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add card")
	}

	srv.events.emit(ctx, entity.NewCardEvent(entity.CardEventAdded, userID, customerID, detail.CardID))

	return detail, nil
}

// ListCards returns the live detail of every active card, flagging the processor's default source.
func (srv *cardService) ListCards(ctx context.Context, userID uuid.UUID) (*usecase.ListCardsOutput, error) {
	var (
		user  *entity.User
		cards []*entity.UserCard
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = findUser(ctx, repoFactory.UserRepo(), userID)
		if err != nil {
			return err
		}
		if !user.HasPaymentCustomer() {
			return errors.WithStack(domainerrors.ErrPaymentCustomerMissing)
		}

		cards, err = repoFactory.CardRepo().ListActiveByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list cards")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	customerID := user.PaymentCustomer()
	details := make([]*entity.CardDetail, len(cards))
	var defaultSource string

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCardFetches)

	g.Go(func() error {
		source, err := srv.processor.GetDefaultSource(gctx, customerID)
		if err != nil {
			return processorFailure(srv.log(ctx), "get default source", err)
		}
		defaultSource = source

		return nil
	})

	for i, card := range cards {
		g.Go(func() error {
			detail, err := srv.processor.GetCard(gctx, customerID, card.CardID)
			if err != nil {
				return processorFailure(srv.log(ctx), "get card", err)
			}
			details[i] = withCardholderName(detail, user.Name)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to fetch card details")
	}

	for _, detail := range details {
		detail.IsDefault = defaultSource != "" && detail.CardID == defaultSource
	}

	return &usecase.ListCardsOutput{
		Cards:      details,
		TotalCards: len(details),
	}, nil
}

// UpdateCard pushes name and expiry changes to the processor and returns the updated card.
func (srv *cardService) UpdateCard(ctx context.Context, userID uuid.UUID, input *usecase.UpdateCardInput) (*entity.CardDetail, error) {
	srv.log(ctx).Info("Updating card", slog.Any("userID", userID), slog.String("cardID", input.CardID))

	var (
		detail     *entity.CardDetail
		customerID string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, card, err := srv.findOwnedCard(ctx, repoFactory, userID, input.CardID, "No existing card found to update")
		if err != nil {
			return err
		}
		customerID = user.PaymentCustomer()

		updated, err := srv.processor.UpdateCard(ctx, customerID, card.CardID, service.CardUpdate{
			Name:        input.Name,
			ExpiryMonth: input.ExpiryMonth,
			ExpiryYear:  input.ExpiryYear,
		})
		if err != nil {
			return processorFailure(srv.log(ctx), "update card", err)
		}

		if err := repoFactory.CardRepo().Touch(ctx, card.ID); err != nil {
			return errors.Wrap(err, "failed to touch card")
		}

		detail = withCardholderName(updated, user.Name)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update card")
	}

	srv.events.emit(ctx, entity.NewCardEvent(entity.CardEventUpdated, userID, customerID, detail.CardID))

	return detail, nil
}

// DeleteCard removes the card at the processor and soft-deletes the mirror row.
// The row is only marked deleted once the processor confirms the removal.
func (srv *cardService) DeleteCard(ctx context.Context, userID uuid.UUID, cardID string) (*usecase.DeleteCardOutput, error) {
	srv.log(ctx).Info("Deleting card", slog.Any("userID", userID), slog.String("cardID", cardID))

	var customerID string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, card, err := srv.findOwnedCard(ctx, repoFactory, userID, cardID, "No existing card found to delete")
		if err != nil {
			return err
		}
		customerID = user.PaymentCustomer()

		deleted, err := srv.processor.DeleteCard(ctx, customerID, card.CardID)
		if err != nil {
			return processorFailure(srv.log(ctx), "delete card", err)
		}
		if !deleted {
			srv.log(ctx).Error("Processor did not confirm card removal", slog.String("cardID", card.CardID))

			return errors.WithStack(domainerrors.ErrCardRemovalUnconfirmed)
		}

		if err := repoFactory.CardRepo().SoftDelete(ctx, card.ID); err != nil {
			return errors.Wrap(err, "failed to soft delete card")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete card")
	}

	srv.events.emit(ctx, entity.NewCardEvent(entity.CardEventRemoved, userID, customerID, cardID))

	return &usecase.DeleteCardOutput{DeletedCard: cardID, Deleted: true}, nil
}

// MakeDefault sets the card as the customer's default source. Nothing is stored
// locally: the default flag is always read live from the processor.
func (srv *cardService) MakeDefault(ctx context.Context, userID uuid.UUID, cardID string) error {
	srv.log(ctx).Info("Setting default card", slog.Any("userID", userID), slog.String("cardID", cardID))

	var customerID string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, card, err := srv.findOwnedCard(ctx, repoFactory, userID, cardID, "No card found to make default")
		if err != nil {
			return err
		}
		customerID = user.PaymentCustomer()

		if err := srv.processor.SetDefaultCard(ctx, customerID, card.CardID); err != nil {
			return processorFailure(srv.log(ctx), "set default card", err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to make card default")
	}

	srv.events.emit(ctx, entity.NewCardEvent(entity.CardEventDefaultChanged, userID, customerID, cardID))

	return nil
}

// findOwnedCard loads the caller's active card, then the user's customer id.
func (srv *cardService) findOwnedCard(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	userID uuid.UUID,
	cardID string,
	notFoundMessage string,
) (*entity.User, *entity.UserCard, error) {
	card, err := repoFactory.CardRepo().FindActiveByCardID(ctx, userID, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, nil, errors.WithStack(domainerrors.ErrCardNotFound.WithMessagef("%s", notFoundMessage))
		}

		return nil, nil, errors.Wrap(err, "failed to find card")
	}

	user, err := findUser(ctx, repoFactory.UserRepo(), userID)
	if err != nil {
		return nil, nil, err
	}
	if !user.HasPaymentCustomer() {
		return nil, nil, errors.WithStack(domainerrors.ErrPaymentCustomerMissing)
	}

	return user, card, nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func lockUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByIDForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to lock user")
	}

	return user, nil
}

// withCardholderName fills a blank card name with the user's name.
func withCardholderName(detail *entity.CardDetail, name string) *entity.CardDetail {
	if detail != nil && detail.Name == "" {
		detail.Name = name
	}

	return detail
}
