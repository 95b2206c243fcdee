package response

import (
	"proposal_desk/internal/domain/entities"
	"time"
)

type LineItemPricingResponse struct {
	Cost              float64 `json:"cost"`
	TLCost            float64 `json:"tl_cost"`
	OriginalSellPrice float64 `json:"original_sell_price"`
	TLSellPrice       float64 `json:"tl_sell_price"`
	ProfitAmount      float64 `json:"profit_amount"`
	TotalTLCost       float64 `json:"total_tl_cost"`
	TotalTLSell       float64 `json:"total_tl_sell"`
	TotalProfit       float64 `json:"total_profit"`
}

type LineItemResponse struct {
	ID               string                  `json:"id,omitempty"`
	ProposalID       string                  `json:"proposal_id,omitempty"`
	Description      string                  `json:"description"`
	Currency         string                  `json:"currency"`
	ExchangeRate     float64                 `json:"exchange_rate"`
	ListPrice        float64                 `json:"list_price"`
	BasePrice        float64                 `json:"base_price"`
	DiscountRate     float64                 `json:"discount_rate"`
	ProfitMargin     float64                 `json:"profit_margin"`
	Quantity         float64                 `json:"quantity"`
	VATRate          float64                 `json:"vat_rate"`
	PriceIncludesVAT bool                    `json:"price_includes_vat"`
	Pricing          LineItemPricingResponse `json:"pricing"`
	CreatedAt        *time.Time              `json:"created_at,omitempty"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	res := LineItemResponse{
		ID:               li.ID,
		ProposalID:       li.ProposalID,
		Description:      li.Description,
		Currency:         string(li.Currency),
		ExchangeRate:     li.Input.ExchangeRate,
		ListPrice:        li.Input.ListPrice,
		BasePrice:        li.Input.BasePrice,
		DiscountRate:     li.Input.DiscountRate,
		ProfitMargin:     li.Input.ProfitMargin,
		Quantity:         li.Input.Quantity,
		VATRate:          li.Input.VATRate,
		PriceIncludesVAT: li.Input.PriceIncludesVAT,
		Pricing: LineItemPricingResponse{
			Cost:              roundMoney(li.Pricing.Cost),
			TLCost:            roundMoney(li.Pricing.TLCost),
			OriginalSellPrice: roundMoney(li.Pricing.OriginalSellPrice),
			TLSellPrice:       roundMoney(li.Pricing.TLSellPrice),
			ProfitAmount:      roundMoney(li.Pricing.ProfitAmount),
			TotalTLCost:       roundMoney(li.Pricing.TotalTLCost),
			TotalTLSell:       roundMoney(li.Pricing.TotalTLSell),
			TotalProfit:       roundMoney(li.Pricing.TotalProfit),
		},
	}
	if !li.CreatedAt.IsZero() {
		created := li.CreatedAt
		res.CreatedAt = &created
	}
	return res
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, FromLineItem(li))
	}
	return out
}
