package model

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// User represents the database model for users
type User struct {
	ID                  string         `gorm:"primaryKey;type:varchar(255)"`
	StandardCredits     int            `gorm:"not null;default:0;check:chk_users_standard_credits,standard_credits >= 0"`
	HDCredits           int            `gorm:"column:hd_credits;not null;default:0;check:chk_users_hd_credits,hd_credits >= 0"`
	SubscriptionType    string         `gorm:"type:varchar(64);not null;default:''"`
	SubscriptionExpires *time.Time     `gorm:"index"`
	DailyStandardUsed   int            `gorm:"not null;default:0"`
	DailyHDUsed         int            `gorm:"column:daily_hd_used;not null;default:0"`
	DailyResetAt        time.Time      `gorm:"not null"`
	Metadata            map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser builds the row of a user that was never seen before
func NewUser(id string, now time.Time) *User {
	return &User{
		ID:           id,
		DailyResetAt: now,
		Metadata:     map[string]any{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ToEntity converts the row to a domain user
func (m *User) ToEntity() *entity.User {
	metadata := m.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &entity.User{
		ID:                  m.ID,
		StandardCredits:     m.StandardCredits,
		HDCredits:           m.HDCredits,
		SubscriptionType:    m.SubscriptionType,
		SubscriptionExpires: m.SubscriptionExpires,
		DailyStandardUsed:   m.DailyStandardUsed,
		DailyHDUsed:         m.DailyHDUsed,
		DailyResetAt:        m.DailyResetAt,
		Metadata:            metadata,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// UserFromEntity converts a domain user to its row
func UserFromEntity(u *entity.User) *User {
	return &User{
		ID:                  u.ID,
		StandardCredits:     u.StandardCredits,
		HDCredits:           u.HDCredits,
		SubscriptionType:    u.SubscriptionType,
		SubscriptionExpires: u.SubscriptionExpires,
		DailyStandardUsed:   u.DailyStandardUsed,
		DailyHDUsed:         u.DailyHDUsed,
		DailyResetAt:        u.DailyResetAt,
		Metadata:            u.Metadata,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
