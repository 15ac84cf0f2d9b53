package model

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// Enhancement is the row of one completed enhancement
type Enhancement struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `gorm:"type:varchar(255);not null;index:idx_enhancements_user_created,priority:1"`
	OriginalKey    string    `gorm:"type:varchar(512);not null"`
	EnhancedKey    string    `gorm:"type:varchar(512);not null"`
	Resolution     string    `gorm:"type:varchar(16);not null"`
	Mode           string    `gorm:"type:varchar(32);not null"`
	Instruction    string    `gorm:"type:text"`
	ProcessingTime float64   `gorm:"not null;default:0"`
	Watermark      bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null;index:idx_enhancements_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for Enhancement
func (Enhancement) TableName() string {
	return "enhancements"
}

// ToEntity converts the row to a domain enhancement
func (m *Enhancement) ToEntity() *entity.Enhancement {
	return &entity.Enhancement{
		ID:             m.ID,
		UserID:         m.UserID,
		OriginalKey:    m.OriginalKey,
		EnhancedKey:    m.EnhancedKey,
		Tier:           entity.Tier(m.Resolution),
		Mode:           entity.Mode(m.Mode),
		Instruction:    m.Instruction,
		ProcessingTime: m.ProcessingTime,
		Watermark:      m.Watermark,
		CreatedAt:      m.CreatedAt,
	}
}

// EnhancementFromEntity converts a domain enhancement to its row
func EnhancementFromEntity(e *entity.Enhancement) *Enhancement {
	return &Enhancement{
		ID:             e.ID,
		UserID:         e.UserID,
		OriginalKey:    e.OriginalKey,
		EnhancedKey:    e.EnhancedKey,
		Resolution:     string(e.Tier),
		Mode:           string(e.Mode),
		Instruction:    e.Instruction,
		ProcessingTime: e.ProcessingTime,
		Watermark:      e.Watermark,
		CreatedAt:      e.CreatedAt,
	}
}
