package model

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// RefundReconciliation is a refund that failed during compensation
type RefundReconciliation struct {
	ID         string     `gorm:"primaryKey;type:varchar(36)"`
	UserID     string     `gorm:"type:varchar(255);not null;index"`
	Tier       string     `gorm:"type:varchar(16);not null"`
	Source     string     `gorm:"type:varchar(16);not null;default:''"`
	Mode       string     `gorm:"column:enhancement_mode;type:varchar(32)"`
	Reason     string     `gorm:"type:text"`
	Status     string     `gorm:"type:varchar(16);not null;index:idx_refund_reconciliations_status_created,priority:1"`
	Attempts   int        `gorm:"not null;default:0"`
	LastError  string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"not null;index:idx_refund_reconciliations_status_created,priority:2"`
	ResolvedAt *time.Time
}

// TableName specifies the table name for RefundReconciliation
func (RefundReconciliation) TableName() string {
	return "refund_reconciliations"
}

// ToEntity converts the row to a domain reconciliation
func (m *RefundReconciliation) ToEntity() *entity.RefundReconciliation {
	return &entity.RefundReconciliation{
		ID:         m.ID,
		UserID:     m.UserID,
		Tier:       entity.Tier(m.Tier),
		Source:     entity.ChargeSource(m.Source),
		Mode:       entity.Mode(m.Mode),
		Reason:     m.Reason,
		Status:     entity.ReconciliationStatus(m.Status),
		Attempts:   m.Attempts,
		LastError:  m.LastError,
		CreatedAt:  m.CreatedAt,
		ResolvedAt: m.ResolvedAt,
	}
}

// RefundReconciliationFromEntity converts a domain reconciliation to its row
func RefundReconciliationFromEntity(r *entity.RefundReconciliation) *RefundReconciliation {
	return &RefundReconciliation{
		ID:         r.ID,
		UserID:     r.UserID,
		Tier:       string(r.Tier),
		Source:     string(r.Source),
		Mode:       string(r.Mode),
		Reason:     r.Reason,
		Status:     string(r.Status),
		Attempts:   r.Attempts,
		LastError:  r.LastError,
		CreatedAt:  r.CreatedAt,
		ResolvedAt: r.ResolvedAt,
	}
}
