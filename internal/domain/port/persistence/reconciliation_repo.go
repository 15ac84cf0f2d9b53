package persistence

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// ReconciliationRepository stores refunds that failed and must be applied later
type ReconciliationRepository interface {
	// Create saves a new pending reconciliation
	Create(ctx context.Context, reconciliation *entity.RefundReconciliation) error

	// ListPending returns up to limit pending reconciliations, oldest first
	ListPending(ctx context.Context, limit int) ([]*entity.RefundReconciliation, error)

	// CountPending returns the size of the pending backlog
	CountPending(ctx context.Context) (int64, error)

	// Update saves status, attempts and last error of a reconciliation
	//
	// Possible errors:
	// - ErrNotFound: If the reconciliation doesn't exist
	Update(ctx context.Context, reconciliation *entity.RefundReconciliation) error
}
