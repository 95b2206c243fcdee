package entities

import "time"

// LineItemPricingInput is everything the pricing engine needs for one line.
//
// DiscountRate, ProfitMargin and VATRate are fractions (0.20 == 20%).
// ExchangeRate converts the item's currency into local currency.
type LineItemPricingInput struct {
	ListPrice        float64 `json:"list_price"`
	BasePrice        float64 `json:"base_price"`
	DiscountRate     float64 `json:"discount_rate"`
	ProfitMargin     float64 `json:"profit_margin"`
	ExchangeRate     float64 `json:"exchange_rate"`
	Quantity         float64 `json:"quantity"`
	VATRate          float64 `json:"vat_rate"`
	PriceIncludesVAT bool    `json:"price_includes_vat"`
}

// LineItemPricingResult is VAT-exclusive. Cost and OriginalSellPrice are in
// the item's currency; the TL* fields are in local currency.
type LineItemPricingResult struct {
	Cost              float64 `json:"cost"`
	TLCost            float64 `json:"tl_cost"`
	OriginalSellPrice float64 `json:"original_sell_price"`
	TLSellPrice       float64 `json:"tl_sell_price"`
	ProfitAmount      float64 `json:"profit_amount"`
	TotalTLCost       float64 `json:"total_tl_cost"`
	TotalTLSell       float64 `json:"total_tl_sell"`
	TotalProfit       float64 `json:"total_profit"`
}

// LineItem is a priced line persisted on a proposal version.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
type LineItem struct {
	ID          string                `json:"id"`
	ProposalID  string                `json:"proposal_id"`
	Description string                `json:"description"`
	Currency    Currency              `json:"currency"`
	Input       LineItemPricingInput  `json:"input"`
	Pricing     LineItemPricingResult `json:"pricing"`
	CreatedAt   time.Time             `json:"created_at"`
}
