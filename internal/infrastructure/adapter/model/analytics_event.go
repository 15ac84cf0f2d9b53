package model

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// AnalyticsEvent is the row of one tracked event
type AnalyticsEvent struct {
	ID         string         `gorm:"primaryKey;type:varchar(36)"`
	UserID     string         `gorm:"type:varchar(255);not null;index"`
	EventType  string         `gorm:"type:varchar(100);not null;index"`
	EventData  map[string]any `gorm:"type:jsonb;serializer:json"`
	Platform   string         `gorm:"type:varchar(32)"`
	AppVersion string         `gorm:"type:varchar(32)"`
	CreatedAt  time.Time      `gorm:"not null"`
}

// TableName specifies the table name for AnalyticsEvent
func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}

// AnalyticsEventFromEntity converts a domain event to its row
func AnalyticsEventFromEntity(e *entity.AnalyticsEvent) *AnalyticsEvent {
	return &AnalyticsEvent{
		ID:         e.ID,
		UserID:     e.UserID,
		EventType:  e.EventType,
		EventData:  e.EventData,
		Platform:   e.Platform,
		AppVersion: e.AppVersion,
		CreatedAt:  e.CreatedAt,
	}
}
