package response

import "proposal_desk/internal/domain/entities"

type ExchangeRatesResponse struct {
	USD float64 `json:"USD" example:"32.2409"`
	EUR float64 `json:"EUR" example:"35.1184"`
}

func FromExchangeRates(s entities.ExchangeRateSnapshot) ExchangeRatesResponse {
	return ExchangeRatesResponse{
		USD: roundRate(s.USD),
		EUR: roundRate(s.EUR),
	}
}
