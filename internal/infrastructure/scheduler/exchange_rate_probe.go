package scheduler

import (
	"context"
	"time"

	"proposal_desk/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// ExchangeRateProbeJob reads the daily feed once so the selling-rate gauges
// and fallback counters stay current even when nobody is pricing.
type ExchangeRateProbeJob struct {
	provider interfaces.IExchangeRateProvider
	timeout  time.Duration
	log      zerolog.Logger
}

func NewExchangeRateProbeJob(provider interfaces.IExchangeRateProvider, timeout time.Duration, log zerolog.Logger) *ExchangeRateProbeJob {
	return &ExchangeRateProbeJob{
		provider: provider,
		timeout:  timeout,
		log:      log.With().Str("job", "exchange_rate_probe").Logger(),
	}
}

func (j *ExchangeRateProbeJob) Name() string {
	return "exchange_rate_probe"
}

// Run never fails: the provider answers with fallback rates on error.
func (j *ExchangeRateProbeJob) Run() error {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	rates := j.provider.FetchRates(ctx)
	j.log.Info().
		Float64("usd", rates.USD).
		Float64("eur", rates.EUR).
		Msg("Exchange rates probed")
	return nil
}
