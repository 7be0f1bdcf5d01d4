package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is a row of users. Only the SHA-256 of the current refresh token is kept.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName         string    `gorm:"type:varchar(255);not null;index"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	Avatar           string    `gorm:"type:text;not null"`
	CoverImage       string    `gorm:"type:text;not null;default:''"`
	RefreshTokenHash string    `gorm:"type:varchar(64);not null;default:''"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserModel) TableName() string {
	return "users"
}
