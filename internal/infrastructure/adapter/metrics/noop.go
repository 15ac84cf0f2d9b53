package metrics

// NoopMetrics discards every observation
type NoopMetrics struct{}

// NewNoopMetrics creates a metrics sink that records nothing
func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (NoopMetrics) ObserveAdmission(tier, outcome string) {}

func (NoopMetrics) ObserveCharge(tier, source string) {}

func (NoopMetrics) ObserveRefund(tier, outcome string) {}

func (NoopMetrics) ObserveEnhancement(mode, outcome string, seconds float64) {}

func (NoopMetrics) ObserveGatewayCall(gateway, operation, outcome string, seconds float64) {}

func (NoopMetrics) ObserveLock(backend, outcome string, seconds float64) {}

func (NoopMetrics) ObservePurchase(kind, outcome string) {}

func (NoopMetrics) SetPendingReconciliations(count int) {}
