package entity

import "time"

// Blob categories used as key namespaces in object storage
const (
	CategoryOriginal = "original"
	CategoryEnhanced = "enhanced"
)

// Enhancement is the append-only record of one successful request.
// It is written only after the transform and both uploads succeeded.
type Enhancement struct {
	ID             string
	UserID         string
	OriginalKey    string
	EnhancedKey    string
	Tier           Tier
	Mode           Mode
	Instruction    string  // Free-text instruction of a custom edit, empty otherwise
	ProcessingTime float64 // Seconds from admission to completion
	Watermark      bool
	CreatedAt      time.Time
}

// EnhancementPage is one page of a user's history, newest first
type EnhancementPage struct {
	Items  []*Enhancement
	Total  int64
	Limit  int
	Offset int
}
