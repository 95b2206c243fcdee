package interfaces

import (
	"context"
	"proposal_desk/internal/domain/entities"
)

// IExchangeRateProvider returns today's selling rates. It never fails;
// implementations answer with entities.FallbackExchangeRates instead.
type IExchangeRateProvider interface {
	FetchRates(ctx context.Context) entities.ExchangeRateSnapshot
}
