package persistence

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// PurchaseRepository stores applied purchases
type PurchaseRepository interface {
	// Create saves a new purchase
	//
	// Possible errors:
	// - ErrConstraintViolation: If a purchase with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, purchase *entity.Purchase) error

	// ListByUser returns every purchase of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Purchase, error)
}
