// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The email column carries the unique
// index that arbitrates concurrent signups for the same address.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:users_email_unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Provider     string    `gorm:"type:varchar(32);not null"`
	Subject      string    `gorm:"type:varchar(255);not null"`
	Username     string    `gorm:"type:varchar(64)"`
	Name         string    `gorm:"type:varchar(255)"`
	GivenName    string    `gorm:"type:varchar(255)"`
	FamilyName   string    `gorm:"type:varchar(255)"`
	Picture      string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
