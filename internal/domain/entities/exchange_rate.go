package entities

// Currency is an ISO 4217 code a line item can be priced in.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// ExchangeRateSnapshot holds today's selling rates, in local currency (TRY)
// per one unit of the foreign currency. It is recomputed on every request.
type ExchangeRateSnapshot struct {
	USD float64 `json:"USD"`
	EUR float64 `json:"EUR"`
}

// FallbackExchangeRates is served whenever the daily feed cannot be read.
var FallbackExchangeRates = ExchangeRateSnapshot{USD: 33.0, EUR: 35.5}
