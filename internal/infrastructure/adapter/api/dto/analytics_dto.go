package dto

import "time"

// AnalyticsRequest is the body of POST /api/analytics
type AnalyticsRequest struct {
	UserID     string         `json:"user_id" validate:"required,max=255"`
	EventType  string         `json:"event_type" validate:"required,max=100"`
	EventData  map[string]any `json:"event_data"`
	Platform   string         `json:"platform" validate:"omitempty,max=32"`
	AppVersion string         `json:"app_version" validate:"omitempty,max=32"`
}

// AnalyticsResponse acknowledges a stored event
type AnalyticsResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"event_id"`
}

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
