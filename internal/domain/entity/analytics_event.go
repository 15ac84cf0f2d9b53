package entity

import "time"

// Default client attributes of an analytics event
const (
	DefaultPlatform   = "mobile"
	DefaultAppVersion = "1.0.0"
)

// EventEnhancementCompleted is recorded after each successful enhancement
const EventEnhancementCompleted = "enhancement_completed"

// AnalyticsEvent is a client or server side usage event
type AnalyticsEvent struct {
	ID         string
	UserID     string
	EventType  string
	EventData  map[string]any
	Platform   string
	AppVersion string
	CreatedAt  time.Time
}
