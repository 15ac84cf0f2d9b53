package model

import (
	"time"
)

// UserLock is a lease on a user held by one process
type UserLock struct {
	UserID    string    `gorm:"primaryKey;type:varchar(255)"`
	Token     string    `gorm:"type:varchar(64);not null;default:''"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserLock
func (UserLock) TableName() string {
	return "user_locks"
}
