package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
)

var (
	_ core.Metrics = (*PrometheusMetrics)(nil)
	_ core.Metrics = NoopMetrics{}
)

func TestPrometheusMetrics(t *testing.T) {
	m := NewPrometheusMetrics(prometheus.NewRegistry())

	t.Run("counters by label", func(t *testing.T) {
		m.ObserveCharge("standard", "purchased")
		m.ObserveCharge("standard", "purchased")
		m.ObserveCharge("hd", "daily")
		m.ObserveRefund("hd", core.OutcomeFailure)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.chargeTotal.WithLabelValues("standard", "purchased")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.chargeTotal.WithLabelValues("hd", "daily")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.refundTotal.WithLabelValues("hd", core.OutcomeFailure)))
	})

	t.Run("enhancement increments count and histogram", func(t *testing.T) {
		m.ObserveEnhancement("colorize", core.OutcomeSuccess, 3.2)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.enhancementTotal.WithLabelValues("colorize", core.OutcomeSuccess)))
		assert.Equal(t, 1, testutil.CollectAndCount(m.enhancementDuration))
	})

	t.Run("pending gauge", func(t *testing.T) {
		m.SetPendingReconciliations(4)
		assert.Equal(t, 4.0, testutil.ToFloat64(m.pendingReconciliations))
	})

	t.Run("handler exposes the registry", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "photo_restoration_ledger_charge_total")
	})
}
