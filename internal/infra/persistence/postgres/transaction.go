// Package postgres implements the persistence ports on GORM over PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f *txRepositories) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *txRepositories) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *txRepositories) CardRepo() repository.CardRepository {
	return NewCardRepository(f.tx)
}

// NewTransactionManager is the Fx provider of repository.TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction: commit when fn returns nil, rollback otherwise.
// Row locks taken inside fn (FindByIDForUpdate) are held until then. The error
// returned by fn is passed through unwrapped so use cases can match AppErrors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&txRepositories{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	return errors.Wrap(tx.Commit().Error, "failed to commit transaction")
}
