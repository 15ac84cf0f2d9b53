package core

// Outcome labels shared by metrics
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeDenied  = "denied"
)

// Metrics records ledger and pipeline measurements
type Metrics interface {
	// ObserveAdmission counts an eligibility decision per tier
	ObserveAdmission(tier, outcome string)
	// ObserveCharge counts a deduction and the pool it was drawn from
	ObserveCharge(tier, source string)
	// ObserveRefund counts a compensating refund and its outcome
	ObserveRefund(tier, outcome string)
	// ObserveEnhancement records one finished request by mode, outcome and duration
	ObserveEnhancement(mode, outcome string, seconds float64)
	// ObserveGatewayCall records one external call (transform, storage) by operation
	ObserveGatewayCall(gateway, operation, outcome string, seconds float64)
	// ObserveLock records a per-user lock acquisition
	ObserveLock(backend, outcome string, seconds float64)
	// ObservePurchase counts an applied purchase by product kind
	ObservePurchase(kind, outcome string)
	// SetPendingReconciliations reports the backlog of refunds still to apply
	SetPendingReconciliations(count int)
}
