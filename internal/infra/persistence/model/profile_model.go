package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileModel mirrors the 'profiles' table. A partial unique index keeps one active row per user.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Bio       string    `gorm:"type:text"`
	Address   string    `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(100)"`
	Country   string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
