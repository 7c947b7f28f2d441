package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserCardModel mirrors the 'user_cards' table. It only stores the processor's card id.
type UserCardModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CardID    string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserCardModel) TableName() string {
	return "user_cards"
}
