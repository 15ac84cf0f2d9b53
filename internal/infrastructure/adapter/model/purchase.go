package model

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// Purchase represents an applied store receipt
type Purchase struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)"`
	UserID    string         `gorm:"type:varchar(255);not null;index:idx_purchases_user_created,priority:1"`
	ProductID string         `gorm:"type:varchar(128);not null"`
	Platform  string         `gorm:"type:varchar(32)"`
	Receipt   map[string]any `gorm:"type:jsonb;serializer:json"`
	Status    string         `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time      `gorm:"not null;index:idx_purchases_user_created,priority:2"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}

// ToEntity converts the row to a domain purchase
func (m *Purchase) ToEntity() *entity.Purchase {
	return &entity.Purchase{
		ID:        m.ID,
		UserID:    m.UserID,
		Receipt:   m.Receipt,
		ProductID: m.ProductID,
		Platform:  m.Platform,
		Status:    entity.PurchaseStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// PurchaseFromEntity converts a domain purchase to its row
func PurchaseFromEntity(p *entity.Purchase) *Purchase {
	return &Purchase{
		ID:        p.ID,
		UserID:    p.UserID,
		ProductID: p.ProductID,
		Platform:  p.Platform,
		Receipt:   p.Receipt,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
