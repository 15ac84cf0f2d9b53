package entity

import "time"

// PurchaseStatus defines possible status values for a purchase
type PurchaseStatus string

// PurchaseStatus constants
const (
	PurchaseCompleted PurchaseStatus = "completed"
)

// Purchase is a recorded store receipt that was applied to a user
type Purchase struct {
	ID        string
	UserID    string
	Receipt   map[string]any // Opaque store payload, kept verbatim
	ProductID string
	Platform  string
	Status    PurchaseStatus
	CreatedAt time.Time
}
