// Package exchangerate reads the central bank's daily selling rates.
package exchangerate

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/infrastructure/metrics"

	"github.com/rs/zerolog"
)

var (
	ErrTransport    = errors.New("exchange rate feed transport error")
	ErrMissingField = errors.New("exchange rate feed missing field")
	ErrParse        = errors.New("exchange rate feed parse error")

	ErrUnexpectedStatus = fmt.Errorf("%w: unexpected status", ErrTransport)
)

const maxFeedBytes = 2 << 20

// tcmbFeed mirrors the parts of today.xml we read:
//
//	<Tarih_Date Tarih="..." Date="...">
//	  <Currency CrossOrder="0" Kod="USD" CurrencyCode="USD">
//	    <Unit>1</Unit>
//	    <ForexSelling>32.4588</ForexSelling>
//	    ...
//
// ForexSelling is quoted per Unit of the currency (100 for JPY).
type tcmbFeed struct {
	Currencies []tcmbCurrency `xml:"Currency"`
}

type tcmbCurrency struct {
	CurrencyCode string `xml:"CurrencyCode,attr"`
	Unit         string `xml:"Unit"`
	ForexSelling string `xml:"ForexSelling"`
}

// TCMBClient fetches the daily rates document. It keeps no state between
// calls, so one instance can serve concurrent requests.
type TCMBClient struct {
	feedURL string
	client  *http.Client
	log     zerolog.Logger
	metrics *metrics.QuoteMetrics
}

func NewTCMBClient(feedURL string, timeout time.Duration, m *metrics.QuoteMetrics, log zerolog.Logger) *TCMBClient {
	return &TCMBClient{
		feedURL: feedURL,
		client: &http.Client{
			Timeout: timeout,
			// A redirect is reported as a non-2xx status and takes the fallback.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log:     log.With().Str("client", "tcmb").Logger(),
		metrics: m,
	}
}

// FetchRates returns today's USD and EUR selling rates.
//
// It issues exactly one uncached request and never fails: on any error the
// fixed entities.FallbackExchangeRates snapshot is returned and the failure
// is only logged and counted. There is no retry; the next call tries again.
func (c *TCMBClient) FetchRates(ctx context.Context) (snapshot entities.ExchangeRateSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			snapshot = c.fallback(fmt.Errorf("%w: panic: %v", ErrParse, r))
		}
	}()

	rates, err := c.fetch(ctx)
	if err != nil {
		return c.fallback(err)
	}

	c.metrics.RecordExchangeRateLive(rates.USD, rates.EUR)
	c.log.Debug().
		Float64("usd", rates.USD).
		Float64("eur", rates.EUR).
		Msg("Fetched selling rates")
	return rates
}

func (c *TCMBClient) fallback(err error) entities.ExchangeRateSnapshot {
	kind := failureKind(err)
	c.metrics.RecordExchangeRateFallback(kind)
	c.log.Warn().
		Err(err).
		Str("kind", kind).
		Float64("usd", entities.FallbackExchangeRates.USD).
		Float64("eur", entities.FallbackExchangeRates.EUR).
		Msg("Exchange rate feed unavailable, using fallback rates")
	return entities.FallbackExchangeRates
}

func (c *TCMBClient) fetch(ctx context.Context) (entities.ExchangeRateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return entities.ExchangeRateSnapshot{}, fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return entities.ExchangeRateSnapshot{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entities.ExchangeRateSnapshot{}, fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return entities.ExchangeRateSnapshot{}, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	return ParseSellingRates(body)
}

// ParseSellingRates extracts the USD and EUR ForexSelling values from a
// daily rates document. Both must be finite and positive.
func ParseSellingRates(body []byte) (entities.ExchangeRateSnapshot, error) {
	var feed tcmbFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return entities.ExchangeRateSnapshot{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	usd, err := feed.sellingRate(entities.CurrencyUSD)
	if err != nil {
		return entities.ExchangeRateSnapshot{}, err
	}
	eur, err := feed.sellingRate(entities.CurrencyEUR)
	if err != nil {
		return entities.ExchangeRateSnapshot{}, err
	}

	return entities.ExchangeRateSnapshot{USD: usd, EUR: eur}, nil
}

func (f tcmbFeed) sellingRate(code entities.Currency) (float64, error) {
	for _, cur := range f.Currencies {
		if cur.CurrencyCode != string(code) {
			continue
		}
		raw := strings.TrimSpace(cur.ForexSelling)
		if raw == "" {
			return 0, fmt.Errorf("%w: %s ForexSelling is empty", ErrMissingField, code)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s ForexSelling %q: %v", ErrParse, code, raw, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return 0, fmt.Errorf("%w: %s ForexSelling %q is not a positive number", ErrParse, code, raw)
		}
		unit, err := cur.unit()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrParse, code, err)
		}
		return v / unit, nil
	}
	return 0, fmt.Errorf("%w: currency %s not found", ErrMissingField, code)
}

// unit defaults to 1 when the element is absent.
func (c tcmbCurrency) unit() (float64, error) {
	raw := strings.TrimSpace(c.Unit)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("unit %q is not a positive integer", raw)
	}
	return float64(n), nil
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrParse):
		return "parse"
	default:
		return "unknown"
	}
}
