package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QuoteMetrics holds the collectors for exchange rates, pricing and the
// proposal lifecycle. All Record* methods are safe to call on a nil receiver
// so components can run without metrics in tests.
type QuoteMetrics struct {
	// Exchange rate feed
	ExchangeRateFetchTotal    *prometheus.CounterVec
	ExchangeRateFailuresTotal *prometheus.CounterVec
	ExchangeRateSelling       *prometheus.GaugeVec

	// Pricing
	LineItemsPricedTotal *prometheus.CounterVec
	LineItemsSellTotal   *prometheus.CounterVec

	// Proposals
	ProposalStatusChangesTotal *prometheus.CounterVec
}

// NewQuoteMetrics registers the collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	factory := promauto.With(reg)

	return &QuoteMetrics{
		ExchangeRateFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_fetch_total",
				Help: "Exchange rate feed fetches by result (live or fallback)",
			},
			[]string{"result"},
		),

		ExchangeRateFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_fetch_failures_total",
				Help: "Exchange rate feed failures by kind",
			},
			[]string{"kind"},
		),

		ExchangeRateSelling: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "exchange_rate_selling",
				Help: "Last live selling rate published by the feed, local currency per unit",
			},
			[]string{"currency"},
		),

		LineItemsPricedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "line_items_priced_total",
				Help: "Line items priced and persisted, by source currency",
			},
			[]string{"currency"},
		),

		LineItemsSellTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "line_items_sell_amount_total",
				Help: "Sum of VAT-exclusive local-currency sell totals of persisted line items",
			},
			[]string{"currency"},
		),

		ProposalStatusChangesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proposal_status_changes_total",
				Help: "Proposal versions moved into a status",
			},
			[]string{"status"},
		),
	}
}

// RecordExchangeRateLive records a successful feed read and its rates.
func (m *QuoteMetrics) RecordExchangeRateLive(usd, eur float64) {
	if m == nil {
		return
	}
	m.ExchangeRateFetchTotal.WithLabelValues("live").Inc()
	m.ExchangeRateSelling.WithLabelValues("USD").Set(usd)
	m.ExchangeRateSelling.WithLabelValues("EUR").Set(eur)
}

// RecordExchangeRateFallback records a feed failure that was answered with
// the fixed fallback snapshot.
func (m *QuoteMetrics) RecordExchangeRateFallback(kind string) {
	if m == nil {
		return
	}
	m.ExchangeRateFetchTotal.WithLabelValues("fallback").Inc()
	m.ExchangeRateFailuresTotal.WithLabelValues(kind).Inc()
}

func (m *QuoteMetrics) RecordLineItemPriced(currency string, totalTLSell float64) {
	if m == nil {
		return
	}
	m.LineItemsPricedTotal.WithLabelValues(currency).Inc()
	m.LineItemsSellTotal.WithLabelValues(currency).Add(totalTLSell)
}

func (m *QuoteMetrics) RecordProposalStatus(status string) {
	if m == nil {
		return
	}
	m.ProposalStatusChangesTotal.WithLabelValues(status).Inc()
}
