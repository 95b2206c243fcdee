package request

import (
	"proposal_desk/internal/usecase"
)

// LineItemRequest carries the figures of one quote line. Rates are fractions
// (0.20 == 20%). The exchange rate is never accepted from the client.
type LineItemRequest struct {
	Description      string  `json:"description"`
	Currency         string  `json:"currency" example:"USD"`
	ListPrice        float64 `json:"list_price" example:"100"`
	BasePrice        float64 `json:"base_price"`
	DiscountRate     float64 `json:"discount_rate" example:"0.1"`
	ProfitMargin     float64 `json:"profit_margin" example:"0.2"`
	Quantity         float64 `json:"quantity" binding:"required" example:"2"`
	VATRate          float64 `json:"vat_rate" example:"0.2"`
	PriceIncludesVAT bool    `json:"price_includes_vat"`
}

func (r LineItemRequest) ToCommand(proposalID string) usecase.PriceLineItemCommand {
	return usecase.PriceLineItemCommand{
		ProposalID:       proposalID,
		Description:      r.Description,
		Currency:         r.Currency,
		ListPrice:        r.ListPrice,
		BasePrice:        r.BasePrice,
		DiscountRate:     r.DiscountRate,
		ProfitMargin:     r.ProfitMargin,
		Quantity:         r.Quantity,
		VATRate:          r.VATRate,
		PriceIncludesVAT: r.PriceIncludesVAT,
	}
}
