package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestQuoteMetrics_ExchangeRate(t *testing.T) {
	m := NewQuoteMetrics(prometheus.NewRegistry())

	m.RecordExchangeRateLive(34.1, 36.9)
	m.RecordExchangeRateFallback("transport")
	m.RecordExchangeRateFallback("transport")
	m.RecordExchangeRateFallback("parse")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExchangeRateFetchTotal.WithLabelValues("live")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ExchangeRateFetchTotal.WithLabelValues("fallback")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExchangeRateFailuresTotal.WithLabelValues("transport")))
	assert.Equal(t, 34.1, testutil.ToFloat64(m.ExchangeRateSelling.WithLabelValues("USD")))
	assert.Equal(t, 36.9, testutil.ToFloat64(m.ExchangeRateSelling.WithLabelValues("EUR")))
}

func TestQuoteMetrics_PricingAndStatus(t *testing.T) {
	m := NewQuoteMetrics(prometheus.NewRegistry())

	m.RecordLineItemPriced("USD", 216)
	m.RecordLineItemPriced("USD", 100)
	m.RecordProposalStatus("approved")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LineItemsPricedTotal.WithLabelValues("USD")))
	assert.Equal(t, 316.0, testutil.ToFloat64(m.LineItemsSellTotal.WithLabelValues("USD")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProposalStatusChangesTotal.WithLabelValues("approved")))
}

func TestQuoteMetrics_NilReceiver(t *testing.T) {
	var m *QuoteMetrics
	assert.NotPanics(t, func() {
		m.RecordExchangeRateLive(1, 1)
		m.RecordExchangeRateFallback("parse")
		m.RecordLineItemPriced("TRY", 1)
		m.RecordProposalStatus("sent")
	})
}
