package models

import (
	"time"

	"github.com/sevendesk/helpdesk/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:120;not null"`
	Email        string  `gorm:"uniqueIndex;size:254;not null"`
	Role         string  `gorm:"size:20;not null;default:CLIENTE"`
	PasswordHash string  `gorm:"size:255;not null"`
	AvatarURL    *string `gorm:"size:500"`
	CreatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
