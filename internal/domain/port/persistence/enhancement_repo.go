package persistence

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// EnhancementRepository stores the append-only enhancement records
type EnhancementRepository interface {
	// Create saves a completed enhancement
	//
	// Possible errors:
	// - ErrConstraintViolation: If a record with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, enhancement *entity.Enhancement) error

	// ListByUser returns one page of a user's enhancements, newest first, with the total count
	ListByUser(ctx context.Context, userID string, limit, offset int) (*entity.EnhancementPage, error)
}
