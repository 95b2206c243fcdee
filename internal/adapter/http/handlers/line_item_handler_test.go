package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"proposal_desk/internal/adapter/http/handlers/mocks"
	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const lineItemBody = `{"description":"Switch","currency":"USD","list_price":100,"discount_rate":0.1,"profit_margin":0.2,"quantity":2,"vat_rate":0.2}`

func TestLineItemHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/line-items/preview", h.Preview)

		req := httptest.NewRequest(http.MethodPost, "/v1/line-items/preview", bytes.NewBufferString(`{"list_price":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/line-items/preview", h.Preview)

		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(entities.LineItem{}, usecase.ErrUnsupportedCurrency)

		req := httptest.NewRequest(http.MethodPost, "/v1/line-items/preview", bytes.NewBufferString(`{"currency":"GBP","list_price":100,"quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UNSUPPORTED_CURRENCY" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success rounds money", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/line-items/preview", h.Preview)

		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.PriceLineItemCommand) (entities.LineItem, error) {
			if cmd.ProposalID != "" || cmd.Currency != "USD" || cmd.Quantity != 2 {
				t.Fatalf("unexpected command %+v", cmd)
			}
			return entities.LineItem{
				Currency: entities.CurrencyUSD,
				Input:    entities.LineItemPricingInput{ListPrice: 100, ExchangeRate: 32.2409, Quantity: 2},
				Pricing:  entities.LineItemPricingResult{Cost: 90, TLSellPrice: 3482.0172, TotalTLSell: 6964.0344},
			}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/line-items/preview", bytes.NewBufferString(lineItemBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Pricing struct {
				TotalTLSell float64 `json:"total_tl_sell"`
			} `json:"pricing"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Pricing.TotalTLSell != 6964.03 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestLineItemHandler_AddToProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("proposal not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/line-items", h.AddToProposal)

		uc.EXPECT().PriceLineItem(gomock.Any(), gomock.Any()).Return(entities.LineItem{}, usecase.ErrProposalNotEditable)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p-1/line-items", bytes.NewBufferString(lineItemBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/line-items", h.AddToProposal)

		uc.EXPECT().PriceLineItem(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.PriceLineItemCommand) (entities.LineItem, error) {
			if cmd.ProposalID != "p-1" {
				t.Fatalf("expected proposal id from path, got %q", cmd.ProposalID)
			}
			return entities.LineItem{ID: "li-1", ProposalID: "p-1", Currency: entities.CurrencyUSD}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p-1/line-items", bytes.NewBufferString(lineItemBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_ListByProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILineItemUseCase(ctrl)
	h := NewLineItemHandler(uc)

	r := gin.New()
	r.GET("/v1/proposals/:id/line-items", h.ListByProposal)

	uc.EXPECT().ListByProposal(gomock.Any(), "p-1").Return([]entities.LineItem{{ID: "li-1"}, {ID: "li-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/proposals/p-1/line-items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
