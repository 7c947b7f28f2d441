package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cardRepository implements the repository.CardRepository interface.
// Soft-deleted rows are filtered by gorm.DeletedAt on every query.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// ListActiveByUserID retrieves the user's active cards, oldest first.
func (repo *cardRepository) ListActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserCard, error) {
	var cardModels []*model.UserCardModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&cardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cards by user")
	}

	cards := make([]*entity.UserCard, len(cardModels))
	for i, m := range cardModels {
		cards[i] = toCardDomain(m)
	}

	return cards, nil
}

// CountActiveByUserID counts the user's active cards.
func (repo *cardRepository) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserCardModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count cards by user")
	}

	return count, nil
}

// FindActiveByCardID retrieves the user's active card with the given processor card id.
func (repo *cardRepository) FindActiveByCardID(ctx context.Context, userID uuid.UUID, cardID string) (*entity.UserCard, error) {
	var cardM model.UserCardModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	return toCardDomain(&cardM), nil
}

// Create persists a new card mirror row.
func (repo *cardRepository) Create(ctx context.Context, card *entity.UserCard) error {
	cardM := fromCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create card")
	}

	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// Touch bumps updated_at on an active card.
func (repo *cardRepository) Touch(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserCardModel{}).
		Where("id = ?", id).
		Update("updated_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// SoftDelete stamps deleted_at on an active card.
func (repo *cardRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserCardModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCardDomain(data *model.UserCardModel) *entity.UserCard {
	if data == nil {
		return nil
	}

	card := &entity.UserCard{
		ID:        data.ID,
		UserID:    data.UserID,
		CardID:    data.CardID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		card.DeletedAt = &deletedAt
	}

	return card
}

func fromCardDomain(data *entity.UserCard) *model.UserCardModel {
	if data == nil {
		return nil
	}

	cardM := &model.UserCardModel{
		ID:        data.ID,
		UserID:    data.UserID,
		CardID:    data.CardID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.DeletedAt != nil {
		cardM.DeletedAt = gorm.DeletedAt{Time: *data.DeletedAt, Valid: true}
	}

	return cardM
}
