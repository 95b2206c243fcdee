package response

import "github.com/shopspring/decimal"

// roundMoney rounds half away from zero to two decimal places. Stored values
// keep full precision; only what leaves the API is rounded.
func roundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// roundRate keeps the four decimals the central bank publishes.
func roundRate(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(4).Float64()
	return f
}
