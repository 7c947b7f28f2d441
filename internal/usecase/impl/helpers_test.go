package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txRepos holds the repositories handed to transaction callbacks.
type txRepos struct {
	factory  *mockRepo.MockRepositoryFactory
	users    *mockRepo.MockUserRepository
	profiles *mockRepo.MockProfileRepository
	cards    *mockRepo.MockCardRepository
}

// expectTx makes txManager run every callback against mock repositories and
// return whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) txRepos {
	repos := txRepos{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		users:    mockRepo.NewMockUserRepository(t),
		profiles: mockRepo.NewMockProfileRepository(t),
		cards:    mockRepo.NewMockCardRepository(t),
	}

	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().ProfileRepo().Return(repos.profiles).Maybe()
	repos.factory.EXPECT().CardRepo().Return(repos.cards).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})

	return repos
}

// assertAppError checks that err carries the given domain error and its HTTP status.
func assertAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	assert.ErrorIs(t, err, want)

	var appErr domainerrors.AppError
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
		assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
	}
}

func ptr[T any](v T) *T {
	return &v
}
