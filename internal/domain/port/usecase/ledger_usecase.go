package usecase

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// PurchaseCommand is a store receipt to apply to a user
type PurchaseCommand struct {
	UserID    string
	ProductID string
	Receipt   map[string]any
	Platform  string
}

// PurchaseResult is the recorded purchase and the user after its effect
type PurchaseResult struct {
	Purchase *entity.Purchase
	User     *entity.User
}

// Restoration is the current entitlement state and purchase history of a user
type Restoration struct {
	User         *entity.User
	Entitlements entity.Entitlements
	Purchases    []*entity.Purchase
}

// LedgerUseCase defines the entitlement operations of a user
type LedgerUseCase interface {
	// Admit resolves (or lazily creates) the user and checks that one unit of the tier
	// can be spent. It does not mutate balances.
	//
	// Possible errors:
	// - ErrInvalidUserID: If the user ID is blank or too long
	// - InsufficientCreditsError: If neither purchased credits nor daily allowance remain
	Admit(ctx context.Context, userID string, tier entity.Tier) (*entity.User, error)

	// Charge consumes exactly one unit of the tier under the user's lock and row lock.
	// Eligibility is re-checked, so a concurrent spend of the last unit fails here.
	Charge(ctx context.Context, userID string, tier entity.Tier) (*entity.Charge, *entity.User, error)

	// Refund undoes one charge. It must be called at most once per charge.
	Refund(ctx context.Context, charge *entity.Charge) (*entity.User, error)

	// Entitlements returns the display snapshot of a user, creating the user lazily
	Entitlements(ctx context.Context, userID string) (*entity.Entitlements, error)

	// Snapshot evaluates the entitlements of an already loaded user at the current time
	Snapshot(user *entity.User) entity.Entitlements

	// RequestWatermarked decides the watermark flag of a completed request
	// from the user after its charge
	RequestWatermarked(user *entity.User, charge *entity.Charge) bool

	// ApplyPurchase applies a product effect and records the purchase in one unit of work.
	// Unknown products are rejected before anything is written.
	ApplyPurchase(ctx context.Context, cmd PurchaseCommand) (*PurchaseResult, error)

	// RestorePurchases returns the user's balances and purchase history
	RestorePurchases(ctx context.Context, userID string) (*Restoration, error)
}

// SweepResult summarizes one reconciliation run
type SweepResult struct {
	Resolved  int
	Failed    int
	Abandoned int
	Pending   int64
}

// ReconciliationUseCase tracks refunds that failed synchronously and retries them
type ReconciliationUseCase interface {
	// Record persists a pending reconciliation for a charge whose refund failed
	Record(ctx context.Context, charge *entity.Charge, mode entity.Mode, reason string, refundErr error) (*entity.RefundReconciliation, error)

	// Sweep retries a batch of pending reconciliations
	Sweep(ctx context.Context) (*SweepResult, error)
}
