package usecase

import (
	"context"
	"errors"
	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/usecase/interfaces"
	"strings"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// IExchangeRateUseCase exposes the daily selling rates used for pricing.
type IExchangeRateUseCase interface {
	CurrentRates(ctx context.Context) entities.ExchangeRateSnapshot
}

type ExchangeRateUseCase struct {
	provider interfaces.IExchangeRateProvider
}

var _ IExchangeRateUseCase = (*ExchangeRateUseCase)(nil)

func NewExchangeRateUseCase(provider interfaces.IExchangeRateProvider) *ExchangeRateUseCase {
	return &ExchangeRateUseCase{provider: provider}
}

// CurrentRates fetches a fresh snapshot on every call. Rates are not cached.
func (u *ExchangeRateUseCase) CurrentRates(ctx context.Context) entities.ExchangeRateSnapshot {
	return u.provider.FetchRates(ctx)
}

// ParseCurrency normalizes a currency code. Empty means local currency.
func ParseCurrency(code string) (entities.Currency, error) {
	c := entities.Currency(strings.ToUpper(strings.TrimSpace(code)))
	switch c {
	case "":
		return entities.CurrencyTRY, nil
	case entities.CurrencyTRY, entities.CurrencyUSD, entities.CurrencyEUR:
		return c, nil
	}
	return "", ErrUnsupportedCurrency
}

// RateFor picks the local-currency rate for one unit of currency.
func RateFor(snapshot entities.ExchangeRateSnapshot, currency entities.Currency) (float64, error) {
	switch currency {
	case entities.CurrencyTRY:
		return 1, nil
	case entities.CurrencyUSD:
		return snapshot.USD, nil
	case entities.CurrencyEUR:
		return snapshot.EUR, nil
	}
	return 0, ErrUnsupportedCurrency
}
