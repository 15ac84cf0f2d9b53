package entity

import "time"

// ReconciliationStatus tracks a refund that still has to be applied
type ReconciliationStatus string

// ReconciliationStatus constants
const (
	ReconciliationPending   ReconciliationStatus = "pending"
	ReconciliationResolved  ReconciliationStatus = "resolved"
	ReconciliationAbandoned ReconciliationStatus = "abandoned"
)

// RefundReconciliation records a compensating refund that failed synchronously
type RefundReconciliation struct {
	ID         string
	UserID     string
	Tier       Tier
	Source     ChargeSource // Pool the refunded charge was drawn from
	Mode       Mode
	Reason     string
	Status     ReconciliationStatus
	Attempts   int
	LastError  string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// MarkResolved closes the reconciliation after the refund was applied
func (r *RefundReconciliation) MarkResolved(now time.Time) {
	r.Status = ReconciliationResolved
	r.ResolvedAt = &now
}

// Charge rebuilds the charge this reconciliation has to refund
func (r *RefundReconciliation) Charge() *Charge {
	return &Charge{UserID: r.UserID, Tier: r.Tier, Source: r.Source, ChargedAt: r.CreatedAt}
}

// RecordFailure counts a failed retry and abandons the record after maxAttempts
func (r *RefundReconciliation) RecordFailure(err error, maxAttempts int, now time.Time) {
	r.Attempts++
	r.LastError = err.Error()
	if maxAttempts > 0 && r.Attempts >= maxAttempts {
		r.Status = ReconciliationAbandoned
		r.ResolvedAt = &now
	}
}
