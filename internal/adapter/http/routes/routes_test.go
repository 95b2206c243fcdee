package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"proposal_desk/internal/adapter/http/handlers"
	"proposal_desk/internal/adapter/http/handlers/mocks"
	"proposal_desk/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIExchangeRateUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	rates := mocks.NewMockIExchangeRateUseCase(ctrl)
	h := Handlers{
		ExchangeRate:    handlers.NewExchangeRateHandler(rates),
		LineItem:        handlers.NewLineItemHandler(mocks.NewMockILineItemUseCase(ctrl)),
		Proposal:        handlers.NewProposalHandler(mocks.NewMockIProposalUseCase(ctrl)),
		Customer:        handlers.NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl)),
		Dashboard:       handlers.NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl)),
		ProposalPayment: handlers.NewProposalPaymentHandler(mocks.NewMockIProposalPaymentUseCase(ctrl), true, zerolog.Nop()),
	}
	return NewRouter(h, zerolog.Nop()), rates
}

func TestNewRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestNewRouter_ExchangeRates(t *testing.T) {
	r, rates := newTestRouter(t)
	rates.EXPECT().CurrentRates(gomock.Any()).Return(entities.ExchangeRateSnapshot{USD: 32.1, EUR: 35.2})

	req := httptest.NewRequest(http.MethodGet, "/v1/exchange-rates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_PaymentByIDAlongsideProposalParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	payments := mocks.NewMockIProposalPaymentUseCase(ctrl)
	h := Handlers{
		ExchangeRate:    handlers.NewExchangeRateHandler(mocks.NewMockIExchangeRateUseCase(ctrl)),
		LineItem:        handlers.NewLineItemHandler(mocks.NewMockILineItemUseCase(ctrl)),
		Proposal:        handlers.NewProposalHandler(mocks.NewMockIProposalUseCase(ctrl)),
		Customer:        handlers.NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl)),
		Dashboard:       handlers.NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl)),
		ProposalPayment: handlers.NewProposalPaymentHandler(payments, true, zerolog.Nop()),
	}
	r := NewRouter(h, zerolog.Nop())

	payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.ProposalPayment{ID: "pay-1", ProposalID: "p-1"}, nil)
	payments.EXPECT().ListByProposalID(gomock.Any(), "p-1").Return([]entities.ProposalPayment{{ID: "pay-1", ProposalID: "p-1"}}, nil)

	for _, path := range []string{"/v1/payments/by-id/pay-1", "/v1/payments/p-1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestNewRouter_RegistersAPI(t *testing.T) {
	r, _ := newTestRouter(t)

	want := map[string]bool{
		"POST /v1/line-items/preview":       false,
		"POST /v1/proposals":                false,
		"GET /v1/proposals/:id":             false,
		"GET /v1/proposals/:id/lineage":     false,
		"POST /v1/proposals/:id/revisions":  false,
		"PATCH /v1/proposals/:id/send":      false,
		"PATCH /v1/proposals/:id/approve":   false,
		"PATCH /v1/proposals/:id/reject":    false,
		"POST /v1/proposals/:id/line-items": false,
		"GET /v1/proposals/:id/line-items":  false,
		"POST /v1/customers":                false,
		"GET /v1/customers":                 false,
		"GET /v1/customers/:id":             false,
		"GET /v1/dashboard/metrics":         false,
		"POST /v1/payments/:proposal_id":    false,
		"GET /v1/payments/:proposal_id":     false,
		"GET /v1/payments/by-id/:id":        false,
		"GET /swagger/*any":                 false,
	}

	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		if !found {
			t.Fatalf("route %s not registered", route)
		}
	}
}
