package impl

import (
	"context"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cardServiceFixtures holds all test dependencies for card service tests.
type cardServiceFixtures struct {
	service   usecase.CardUsecase
	txManager *mockRepo.MockTransactionManager
	processor *mockSvc.MockPaymentProcessor
	publisher *mockSvc.MockEventPublisher
}

func createTestCardService(t *testing.T, defaultCardToken string) cardServiceFixtures {
	f := cardServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		processor: mockSvc.NewMockPaymentProcessor(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	f.service = NewCardService(CardServiceParams{
		TxManager: f.txManager,
		Processor: f.processor,
		Publisher: f.publisher,
		Config:    &config.Config{Payment: &config.PaymentConfig{DefaultCardToken: defaultCardToken}},
		Logger:    newDiscardLogger(),
	})

	return f
}

func customerUser(userID uuid.UUID) *entity.User {
	return &entity.User{ID: userID, Name: "Ada Lovelace", PaymentCustomerID: ptr("cus_1")}
}

func eventOfType(eventType entity.CardEventType) any {
	return mock.MatchedBy(func(e *entity.CardEvent) bool { return e.Type == eventType })
}

func TestCardService_AddCard_Success(t *testing.T) {
	fx := createTestCardService(t, "tok_visa")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()

	repos.users.EXPECT().FindByIDForUpdate(ctx, userID).Return(customerUser(userID), nil)
	repos.cards.EXPECT().CountActiveByUserID(ctx, userID).Return(int64(0), nil)
	fx.processor.EXPECT().CountCards(ctx, "cus_1").Return(0, nil)
	fx.processor.EXPECT().AttachCard(ctx, "cus_1", "tok_mastercard").
		Return(&entity.CardDetail{CardID: "card_1", Last4: "4444", Brand: "MasterCard", ExpiryMonth: 12, ExpiryYear: 2030}, nil)
	repos.cards.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.UserCard) bool { return c.UserID == userID && c.CardID == "card_1" })).
		Return(nil)
	fx.publisher.EXPECT().PublishCardEvent(ctx, eventOfType(entity.CardEventAdded)).Return(nil)

	detail, err := fx.service.AddCard(ctx, userID, &usecase.AddCardInput{Token: "tok_mastercard"})

	require.NoError(t, err)
	assert.Equal(t, "card_1", detail.CardID)
	assert.Equal(t, "Ada Lovelace", detail.Name)
	assert.Equal(t, "4444", detail.Last4)
}

func TestCardService_AddCard_UsesConfiguredDefaultToken(t *testing.T) {
	fx := createTestCardService(t, "tok_visa")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()

	repos.users.EXPECT().FindByIDForUpdate(ctx, userID).Return(customerUser(userID), nil)
	repos.cards.EXPECT().CountActiveByUserID(ctx, userID).Return(int64(0), nil)
	fx.processor.EXPECT().CountCards(ctx, "cus_1").Return(0, nil)
	fx.processor.EXPECT().AttachCard(ctx, "cus_1", "tok_visa").Return(&entity.CardDetail{CardID: "card_2", Name: "Ada"}, nil)
	repos.cards.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserCard")).Return(nil)
	fx.publisher.EXPECT().PublishCardEvent(ctx, mock.Anything).Return(nil)

	detail, err := fx.service.AddCard(ctx, userID, &usecase.AddCardInput{})

	require.NoError(t, err)
	assert.Equal(t, "Ada", detail.Name)
}

func TestCardService_AddCard_Rejections(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx cardServiceFixtures, repos txRepos)
		wantErr *domainerrors.BaseError
	}{
		{
			name: "no customer id",
			setup: func(_ cardServiceFixtures, repos txRepos) {
				repos.users.EXPECT().FindByIDForUpdate(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
			},
			wantErr: domainerrors.ErrPaymentCustomerMissing,
		},
		{
			name: "active local card",
			setup: func(_ cardServiceFixtures, repos txRepos) {
				repos.users.EXPECT().FindByIDForUpdate(mock.Anything, userID).Return(customerUser(userID), nil)
				repos.cards.EXPECT().CountActiveByUserID(mock.Anything, userID).Return(int64(1), nil)
			},
			wantErr: domainerrors.ErrCardAlreadyExists,
		},
		{
			name: "card already at processor",
			setup: func(fx cardServiceFixtures, repos txRepos) {
				repos.users.EXPECT().FindByIDForUpdate(mock.Anything, userID).Return(customerUser(userID), nil)
				repos.cards.EXPECT().CountActiveByUserID(mock.Anything, userID).Return(int64(0), nil)
				fx.processor.EXPECT().CountCards(mock.Anything, "cus_1").Return(1, nil)
			},
			wantErr: domainerrors.ErrCardAlreadyExists,
		},
		{
			name: "declined card",
			setup: func(fx cardServiceFixtures, repos txRepos) {
				repos.users.EXPECT().FindByIDForUpdate(mock.Anything, userID).Return(customerUser(userID), nil)
				repos.cards.EXPECT().CountActiveByUserID(mock.Anything, userID).Return(int64(0), nil)
				fx.processor.EXPECT().CountCards(mock.Anything, "cus_1").Return(0, nil)
				fx.processor.EXPECT().AttachCard(mock.Anything, "cus_1", "tok_chargeDeclined").
					Return(nil, errors.Wrap(service.ErrProcessorCardRejected, "declined"))
			},
			wantErr: domainerrors.ErrCardRejected,
		},
		{
			name: "unknown token",
			setup: func(fx cardServiceFixtures, repos txRepos) {
				repos.users.EXPECT().FindByIDForUpdate(mock.Anything, userID).Return(customerUser(userID), nil)
				repos.cards.EXPECT().CountActiveByUserID(mock.Anything, userID).Return(int64(0), nil)
				fx.processor.EXPECT().CountCards(mock.Anything, "cus_1").Return(0, nil)
				fx.processor.EXPECT().AttachCard(mock.Anything, "cus_1", "tok_chargeDeclined").
					Return(nil, errors.Wrap(service.ErrProcessorResourceMissing, "no such token"))
			},
			wantErr: domainerrors.ErrCardRejected,
		},
		{
			name: "processor outage",
			setup: func(fx cardServiceFixtures, repos txRepos) {
				repos.users.EXPECT().FindByIDForUpdate(mock.Anything, userID).Return(customerUser(userID), nil)
				repos.cards.EXPECT().CountActiveByUserID(mock.Anything, userID).Return(int64(0), nil)
				fx.processor.EXPECT().CountCards(mock.Anything, "cus_1").Return(0, errors.New("timeout"))
			},
			wantErr: domainerrors.ErrPaymentProcessorFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCardService(t, "")
			repos := expectTx(t, fx.txManager)
			tt.setup(fx, repos)

			detail, err := fx.service.AddCard(context.Background(), userID, &usecase.AddCardInput{Token: "tok_chargeDeclined"})

			assert.Nil(t, detail)
			assertAppError(t, err, tt.wantErr)
		})
	}
}

func TestCardService_AddCard_NoToken(t *testing.T) {
	fx := createTestCardService(t, "")

	_, err := fx.service.AddCard(context.Background(), uuid.New(), &usecase.AddCardInput{})

	assertAppError(t, err, domainerrors.ErrCardTokenMissing)
}

func TestCardService_ListCards_FlagsDefault(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()
	rows := []*entity.UserCard{
		{ID: uuid.New(), UserID: userID, CardID: "card_a"},
		{ID: uuid.New(), UserID: userID, CardID: "card_b"},
		{ID: uuid.New(), UserID: userID, CardID: "card_c"},
	}

	repos.users.EXPECT().FindByID(ctx, userID).Return(customerUser(userID), nil)
	repos.cards.EXPECT().ListActiveByUserID(ctx, userID).Return(rows, nil)
	fx.processor.EXPECT().GetDefaultSource(mock.Anything, "cus_1").Return("card_b", nil)
	for _, row := range rows {
		fx.processor.EXPECT().GetCard(mock.Anything, "cus_1", row.CardID).
			Return(&entity.CardDetail{CardID: row.CardID, Last4: "4242"}, nil)
	}

	out, err := fx.service.ListCards(ctx, userID)

	require.NoError(t, err)
	require.Len(t, out.Cards, 3)
	assert.Equal(t, 3, out.TotalCards)

	defaults := 0
	for i, card := range out.Cards {
		assert.Equal(t, rows[i].CardID, card.CardID, "cards keep local row order")
		assert.Equal(t, "Ada Lovelace", card.Name)
		if card.IsDefault {
			defaults++
			assert.Equal(t, "card_b", card.CardID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestCardService_ListCards_NoDefaultSource(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()

	repos.users.EXPECT().FindByID(ctx, userID).Return(customerUser(userID), nil)
	repos.cards.EXPECT().ListActiveByUserID(ctx, userID).Return([]*entity.UserCard{{CardID: "card_a"}}, nil)
	fx.processor.EXPECT().GetDefaultSource(mock.Anything, "cus_1").Return("", nil)
	fx.processor.EXPECT().GetCard(mock.Anything, "cus_1", "card_a").Return(&entity.CardDetail{CardID: "card_a"}, nil)

	out, err := fx.service.ListCards(ctx, userID)

	require.NoError(t, err)
	assert.False(t, out.Cards[0].IsDefault)
}

func TestCardService_ListCards_SingleFailureFailsAll(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()

	repos.users.EXPECT().FindByID(ctx, userID).Return(customerUser(userID), nil)
	repos.cards.EXPECT().ListActiveByUserID(ctx, userID).Return([]*entity.UserCard{{CardID: "card_a"}, {CardID: "card_b"}}, nil)
	fx.processor.EXPECT().GetDefaultSource(mock.Anything, "cus_1").Return("card_a", nil).Maybe()
	fx.processor.EXPECT().GetCard(mock.Anything, "cus_1", "card_a").Return(&entity.CardDetail{CardID: "card_a"}, nil).Maybe()
	fx.processor.EXPECT().GetCard(mock.Anything, "cus_1", "card_b").Return(nil, errors.New("boom"))

	out, err := fx.service.ListCards(ctx, userID)

	assert.Nil(t, out)
	assertAppError(t, err, domainerrors.ErrPaymentProcessorFailed)
}

func TestCardService_ListCards_NoCustomer(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()

	repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	_, err := fx.service.ListCards(ctx, userID)

	assertAppError(t, err, domainerrors.ErrPaymentCustomerMissing)
}

func TestCardService_UpdateCard_Success(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()
	row := &entity.UserCard{ID: uuid.New(), UserID: userID, CardID: "card_1"}
	input := &usecase.UpdateCardInput{CardID: "card_1", Name: ptr("Ada L"), ExpiryMonth: ptr(11), ExpiryYear: ptr(2031)}

	repos.cards.EXPECT().FindActiveByCardID(ctx, userID, "card_1").Return(row, nil)
	repos.users.EXPECT().FindByID(ctx, userID).Return(customerUser(userID), nil)
	fx.processor.EXPECT().
		UpdateCard(ctx, "cus_1", "card_1", service.CardUpdate{Name: input.Name, ExpiryMonth: input.ExpiryMonth, ExpiryYear: input.ExpiryYear}).
		Return(&entity.CardDetail{CardID: "card_1", Name: "Ada L", ExpiryMonth: 11, ExpiryYear: 2031}, nil)
	repos.cards.EXPECT().Touch(ctx, row.ID).Return(nil)
	fx.publisher.EXPECT().PublishCardEvent(ctx, eventOfType(entity.CardEventUpdated)).Return(nil)

	detail, err := fx.service.UpdateCard(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), detail.ExpiryMonth)
	assert.Equal(t, int64(2031), detail.ExpiryYear)
	assert.Equal(t, "Ada L", detail.Name)
}

func TestCardService_UpdateCard_UnknownCard(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()

	repos.cards.EXPECT().FindActiveByCardID(ctx, userID, "card_x").Return(nil, repository.ErrCardNotFound)

	_, err := fx.service.UpdateCard(ctx, userID, &usecase.UpdateCardInput{CardID: "card_x"})

	assertAppError(t, err, domainerrors.ErrCardNotFound)
	assert.Contains(t, err.Error(), "No existing card found to update")
}

func TestCardService_DeleteCard_Success(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()
	row := &entity.UserCard{ID: uuid.New(), UserID: userID, CardID: "card_1"}

	repos.cards.EXPECT().FindActiveByCardID(ctx, userID, "card_1").Return(row, nil)
	repos.users.EXPECT().FindByID(ctx, userID).Return(customerUser(userID), nil)
	fx.processor.EXPECT().DeleteCard(ctx, "cus_1", "card_1").Return(true, nil)
	repos.cards.EXPECT().SoftDelete(ctx, row.ID).Return(nil)
	fx.publisher.EXPECT().PublishCardEvent(ctx, eventOfType(entity.CardEventRemoved)).Return(nil)

	out, err := fx.service.DeleteCard(ctx, userID, "card_1")

	require.NoError(t, err)
	assert.Equal(t, &usecase.DeleteCardOutput{DeletedCard: "card_1", Deleted: true}, out)
}

func TestCardService_DeleteCard_UnconfirmedKeepsRow(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()
	row := &entity.UserCard{ID: uuid.New(), UserID: userID, CardID: "card_1"}

	repos.cards.EXPECT().FindActiveByCardID(ctx, userID, "card_1").Return(row, nil)
	repos.users.EXPECT().FindByID(ctx, userID).Return(customerUser(userID), nil)
	fx.processor.EXPECT().DeleteCard(ctx, "cus_1", "card_1").Return(false, nil)

	out, err := fx.service.DeleteCard(ctx, userID, "card_1")

	assert.Nil(t, out)
	assertAppError(t, err, domainerrors.ErrCardRemovalUnconfirmed)
	repos.cards.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestCardService_DeleteCard_Missing(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()

	// Soft-deleted rows and other users' cards are both invisible to the scoped lookup.
	repos.cards.EXPECT().FindActiveByCardID(ctx, userID, "card_gone").Return(nil, repository.ErrCardNotFound)

	_, err := fx.service.DeleteCard(ctx, userID, "card_gone")

	assertAppError(t, err, domainerrors.ErrCardNotFound)
	assert.Contains(t, err.Error(), "No existing card found to delete")
}

func TestCardService_MakeDefault(t *testing.T) {
	fx := createTestCardService(t, "")
	repos := expectTx(t, fx.txManager)

	ctx := context.Background()
	userID := uuid.New()
	row := &entity.UserCard{ID: uuid.New(), UserID: userID, CardID: "card_1"}

	repos.cards.EXPECT().FindActiveByCardID(ctx, userID, "card_1").Return(row, nil)
	repos.users.EXPECT().FindByID(ctx, userID).Return(customerUser(userID), nil)
	fx.processor.EXPECT().SetDefaultCard(ctx, "cus_1", "card_1").Return(nil)
	fx.publisher.EXPECT().PublishCardEvent(ctx, eventOfType(entity.CardEventDefaultChanged)).Return(errors.New("broker down"))

	require.NoError(t, fx.service.MakeDefault(ctx, userID, "card_1"))
}

func TestCardService_MakeDefault_Failures(t *testing.T) {
	userID := uuid.New()
	row := &entity.UserCard{ID: uuid.New(), UserID: userID, CardID: "card_1"}

	tests := []struct {
		name    string
		setup   func(fx cardServiceFixtures, repos txRepos)
		wantErr *domainerrors.BaseError
		wantMsg string
	}{
		{
			name: "unknown card",
			setup: func(_ cardServiceFixtures, repos txRepos) {
				repos.cards.EXPECT().FindActiveByCardID(mock.Anything, userID, "card_1").Return(nil, repository.ErrCardNotFound)
			},
			wantErr: domainerrors.ErrCardNotFound,
			wantMsg: "No card found to make default",
		},
		{
			name: "no customer id",
			setup: func(_ cardServiceFixtures, repos txRepos) {
				repos.cards.EXPECT().FindActiveByCardID(mock.Anything, userID, "card_1").Return(row, nil)
				repos.users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
			},
			wantErr: domainerrors.ErrPaymentCustomerMissing,
		},
		{
			name: "processor failure",
			setup: func(fx cardServiceFixtures, repos txRepos) {
				repos.cards.EXPECT().FindActiveByCardID(mock.Anything, userID, "card_1").Return(row, nil)
				repos.users.EXPECT().FindByID(mock.Anything, userID).Return(customerUser(userID), nil)
				fx.processor.EXPECT().SetDefaultCard(mock.Anything, "cus_1", "card_1").Return(errors.New("500"))
			},
			wantErr: domainerrors.ErrPaymentProcessorFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCardService(t, "")
			repos := expectTx(t, fx.txManager)
			tt.setup(fx, repos)

			err := fx.service.MakeDefault(context.Background(), userID, "card_1")

			assertAppError(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
