package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/migration"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func migrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)

	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	require.NoError(t, migration.Run(sqlDB, migrationsDir(t)))
	require.NoError(t, sqlDB.Close())

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Test User", PasswordHash: "hash", Role: entity.RoleUser}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}

func TestRepositories_Integration(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	profileRepo := NewProfileRepository(db)
	cardRepo := NewCardRepository(db)

	t.Run("user email is unique", func(t *testing.T) {
		createTestUser(t, userRepo, "dup@example.com")

		err := userRepo.Create(ctx, &entity.User{Email: "dup@example.com", Name: "x", PasswordHash: "h"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("payment customer id is assigned once", func(t *testing.T) {
		user := createTestUser(t, userRepo, "customer@example.com")

		require.NoError(t, userRepo.SetPaymentCustomerID(ctx, user.ID, "cus_first"))
		err := userRepo.SetPaymentCustomerID(ctx, user.ID, "cus_second")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)

		found, err := userRepo.FindByEmail(ctx, "customer@example.com")
		require.NoError(t, err)
		assert.Equal(t, "cus_first", found.PaymentCustomer())
	})

	t.Run("profile create and update", func(t *testing.T) {
		user := createTestUser(t, userRepo, "profile@example.com")

		_, err := profileRepo.FindActiveByUserID(ctx, user.ID)
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)

		profile := &entity.Profile{UserID: user.ID, City: "Lahore"}
		require.NoError(t, profileRepo.Create(ctx, profile))

		profile.City = "Karachi"
		profile.Phone = "+92"
		require.NoError(t, profileRepo.Update(ctx, profile))

		found, err := profileRepo.FindActiveByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, profile.ID, found.ID)
		assert.Equal(t, "Karachi", found.City)
		assert.Equal(t, "+92", found.Phone)
	})

	t.Run("card soft delete and user scoping", func(t *testing.T) {
		owner := createTestUser(t, userRepo, "owner@example.com")
		stranger := createTestUser(t, userRepo, "stranger@example.com")

		card := &entity.UserCard{UserID: owner.ID, CardID: "card_123"}
		require.NoError(t, cardRepo.Create(ctx, card))

		_, err := cardRepo.FindActiveByCardID(ctx, stranger.ID, "card_123")
		assert.ErrorIs(t, err, repository.ErrCardNotFound)

		count, err := cardRepo.CountActiveByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		require.NoError(t, cardRepo.Touch(ctx, card.ID))
		require.NoError(t, cardRepo.SoftDelete(ctx, card.ID))
		assert.ErrorIs(t, cardRepo.SoftDelete(ctx, card.ID), repository.ErrCardNotFound)

		_, err = cardRepo.FindActiveByCardID(ctx, owner.ID, "card_123")
		assert.ErrorIs(t, err, repository.ErrCardNotFound)

		cards, err := cardRepo.ListActiveByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, cards)

		var deletedAt sql.NullTime
		require.NoError(t, db.Raw("SELECT deleted_at FROM user_cards WHERE id = ?", card.ID).Scan(&deletedAt).Error)
		assert.True(t, deletedAt.Valid)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		txManager := NewTransactionManager(db)
		errBoom := errors.New("boom")

		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			user := &entity.User{Email: "rollback@example.com", Name: "r", PasswordHash: "h"}
			if err := factory.UserRepo().Create(ctx, user); err != nil {
				return err
			}

			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)

		_, err = userRepo.FindByEmail(ctx, "rollback@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("row lock inside transaction", func(t *testing.T) {
		user := createTestUser(t, userRepo, "lock@example.com")
		txManager := NewTransactionManager(db)

		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			locked, err := factory.UserRepo().FindByIDForUpdate(ctx, user.ID)
			if err != nil {
				return err
			}
			assert.Equal(t, user.Email, locked.Email)

			return nil
		})
		require.NoError(t, err)
	})
}
