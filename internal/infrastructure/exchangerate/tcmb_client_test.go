package exchangerate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const todayXML = `<?xml version="1.0" encoding="UTF-8"?>
<?xml-stylesheet type="text/xsl" href="isokur.xsl"?>
<Tarih_Date Tarih="15.03.2024" Date="03/15/2024" Bulten_No="2024/53">
	<Currency CrossOrder="0" Kod="USD" CurrencyCode="USD">
		<Unit>1</Unit>
		<Isim>ABD DOLARI</Isim>
		<CurrencyName>US DOLLAR</CurrencyName>
		<ForexBuying>32.1829</ForexBuying>
		<ForexSelling>32.2409</ForexSelling>
		<BanknoteBuying>32.1604</BanknoteBuying>
		<BanknoteSelling>32.2893</BanknoteSelling>
	</Currency>
	<Currency CrossOrder="1" Kod="AUD" CurrencyCode="AUD">
		<Unit>1</Unit>
		<ForexSelling>21.2160</ForexSelling>
	</Currency>
	<Currency CrossOrder="9" Kod="EUR" CurrencyCode="EUR">
		<Unit>1</Unit>
		<Isim>EURO</Isim>
		<CurrencyName>EURO</CurrencyName>
		<ForexBuying>35.0552</ForexBuying>
		<ForexSelling>35.1184</ForexSelling>
	</Currency>
</Tarih_Date>`

func newTestClient(t *testing.T, url string) (*TCMBClient, *metrics.QuoteMetrics) {
	t.Helper()
	m := metrics.NewQuoteMetrics(prometheus.NewRegistry())
	return NewTCMBClient(url, 2*time.Second, m, zerolog.Nop()), m
}

func TestTCMBClient_FetchRates_Success(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		assert.Equal(t, "no-cache", r.Header.Get("Pragma"))
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(todayXML))
	}))
	defer srv.Close()

	client, m := newTestClient(t, srv.URL)

	rates := client.FetchRates(context.Background())

	assert.Equal(t, entities.ExchangeRateSnapshot{USD: 32.2409, EUR: 35.1184}, rates)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExchangeRateFetchTotal.WithLabelValues("live")))
	assert.Equal(t, 32.2409, testutil.ToFloat64(m.ExchangeRateSelling.WithLabelValues("USD")))
	assert.Equal(t, 35.1184, testutil.ToFloat64(m.ExchangeRateSelling.WithLabelValues("EUR")))
}

func TestTCMBClient_FetchRates_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   string
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   "boom",
			kind:   "status",
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   todayXML,
			kind:   "status",
		},
		{
			name:   "missing EUR",
			status: http.StatusOK,
			body:   `<Tarih_Date><Currency CurrencyCode="USD"><ForexSelling>32.5</ForexSelling></Currency></Tarih_Date>`,
			kind:   "missing_field",
		},
		{
			name:   "empty selling value",
			status: http.StatusOK,
			body:   `<Tarih_Date><Currency CurrencyCode="USD"><ForexSelling></ForexSelling></Currency><Currency CurrencyCode="EUR"><ForexSelling>35</ForexSelling></Currency></Tarih_Date>`,
			kind:   "missing_field",
		},
		{
			name:   "non-numeric value",
			status: http.StatusOK,
			body:   `<Tarih_Date><Currency CurrencyCode="USD"><ForexSelling>abc</ForexSelling></Currency><Currency CurrencyCode="EUR"><ForexSelling>35</ForexSelling></Currency></Tarih_Date>`,
			kind:   "parse",
		},
		{
			name:   "zero value",
			status: http.StatusOK,
			body:   `<Tarih_Date><Currency CurrencyCode="USD"><ForexSelling>0</ForexSelling></Currency><Currency CurrencyCode="EUR"><ForexSelling>35</ForexSelling></Currency></Tarih_Date>`,
			kind:   "parse",
		},
		{
			name:   "not xml",
			status: http.StatusOK,
			body:   `{"USD": 32.5}`,
			kind:   "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, m := newTestClient(t, srv.URL)

			rates := client.FetchRates(context.Background())

			assert.Equal(t, entities.FallbackExchangeRates, rates)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retry")
			assert.Equal(t, 1.0, testutil.ToFloat64(m.ExchangeRateFetchTotal.WithLabelValues("fallback")))
			assert.Equal(t, 1.0, testutil.ToFloat64(m.ExchangeRateFailuresTotal.WithLabelValues(tt.kind)))
		})
	}
}

func TestTCMBClient_FetchRates_RedirectNotFollowed(t *testing.T) {
	var followed int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&followed, 1)
		_, _ = w.Write([]byte(todayXML))
	}))
	defer target.Close()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer srv.Close()

	client, m := newTestClient(t, srv.URL)

	rates := client.FetchRates(context.Background())

	assert.Equal(t, entities.FallbackExchangeRates, rates)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&followed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExchangeRateFailuresTotal.WithLabelValues("status")))
}

func TestTCMBClient_FetchRates_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, m := newTestClient(t, url)

	rates := client.FetchRates(context.Background())

	assert.Equal(t, entities.ExchangeRateSnapshot{USD: 33.0, EUR: 35.5}, rates)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExchangeRateFailuresTotal.WithLabelValues("transport")))
}

func TestTCMBClient_FetchRates_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(todayXML))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, entities.FallbackExchangeRates, client.FetchRates(ctx))
}

func TestTCMBClient_FetchRates_NilMetrics(t *testing.T) {
	client := NewTCMBClient("http://127.0.0.1:0", time.Second, nil, zerolog.Nop())

	assert.NotPanics(t, func() {
		assert.Equal(t, entities.FallbackExchangeRates, client.FetchRates(context.Background()))
	})
}

func TestParseSellingRates(t *testing.T) {
	t.Run("reads selling rates by currency code", func(t *testing.T) {
		rates, err := ParseSellingRates([]byte(todayXML))
		require.NoError(t, err)
		assert.Equal(t, 32.2409, rates.USD)
		assert.Equal(t, 35.1184, rates.EUR)
	})

	t.Run("ignores the Kod attribute", func(t *testing.T) {
		body := `<Tarih_Date>
			<Currency Kod="USD" CurrencyCode="XXX"><ForexSelling>1</ForexSelling></Currency>
			<Currency CurrencyCode="USD"><ForexSelling>30.5</ForexSelling></Currency>
			<Currency CurrencyCode="EUR"><ForexSelling>33.25</ForexSelling></Currency>
		</Tarih_Date>`
		rates, err := ParseSellingRates([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, entities.ExchangeRateSnapshot{USD: 30.5, EUR: 33.25}, rates)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		body := `<Tarih_Date>
			<Currency CurrencyCode="USD"><ForexSelling>
				30.5
			</ForexSelling></Currency>
			<Currency CurrencyCode="EUR"><ForexSelling> 33.25 </ForexSelling></Currency>
		</Tarih_Date>`
		rates, err := ParseSellingRates([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, 30.5, rates.USD)
	})

	t.Run("divides by unit", func(t *testing.T) {
		body := `<Tarih_Date>
			<Currency CurrencyCode="USD"><Unit>100</Unit><ForexSelling>3250</ForexSelling></Currency>
			<Currency CurrencyCode="EUR"><Unit>1</Unit><ForexSelling>35.5</ForexSelling></Currency>
		</Tarih_Date>`
		rates, err := ParseSellingRates([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, entities.ExchangeRateSnapshot{USD: 32.5, EUR: 35.5}, rates)
	})

	t.Run("invalid unit", func(t *testing.T) {
		body := `<Tarih_Date>
			<Currency CurrencyCode="USD"><Unit>0</Unit><ForexSelling>32.5</ForexSelling></Currency>
			<Currency CurrencyCode="EUR"><ForexSelling>35.5</ForexSelling></Currency>
		</Tarih_Date>`
		_, err := ParseSellingRates([]byte(body))
		assert.True(t, errors.Is(err, ErrParse))
	})

	t.Run("missing currency", func(t *testing.T) {
		_, err := ParseSellingRates([]byte(`<Tarih_Date></Tarih_Date>`))
		assert.True(t, errors.Is(err, ErrMissingField))
	})

	t.Run("negative value", func(t *testing.T) {
		body := `<Tarih_Date><Currency CurrencyCode="USD"><ForexSelling>-1</ForexSelling></Currency><Currency CurrencyCode="EUR"><ForexSelling>35</ForexSelling></Currency></Tarih_Date>`
		_, err := ParseSellingRates([]byte(body))
		assert.True(t, errors.Is(err, ErrParse))
	})

	t.Run("infinite value", func(t *testing.T) {
		body := `<Tarih_Date><Currency CurrencyCode="USD"><ForexSelling>Inf</ForexSelling></Currency><Currency CurrencyCode="EUR"><ForexSelling>35</ForexSelling></Currency></Tarih_Date>`
		_, err := ParseSellingRates([]byte(body))
		assert.True(t, errors.Is(err, ErrParse))
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := ParseSellingRates([]byte(`<Tarih_Date><Currency`))
		assert.True(t, errors.Is(err, ErrParse))
	})
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, "status", failureKind(ErrUnexpectedStatus))
	assert.Equal(t, "transport", failureKind(ErrTransport))
	assert.Equal(t, "missing_field", failureKind(ErrMissingField))
	assert.Equal(t, "parse", failureKind(ErrParse))
	assert.Equal(t, "unknown", failureKind(errors.New("other")))
}
