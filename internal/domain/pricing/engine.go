// Package pricing turns a line item's list price, discount, margin, VAT mode
// and exchange rate into cost, sell and profit figures.
package pricing

import "proposal_desk/internal/domain/entities"

// Price values one line item. It is pure and total: inputs are not validated
// and out-of-range values (e.g. a negative margin) simply flow through the
// arithmetic. No rounding is applied; every output is VAT-exclusive.
//
// A positive net list price always wins: cost is list price minus discount
// and BasePrice is ignored even when it differs. BasePrice is used as the
// cost directly only when the list price is zero or absent.
func Price(in entities.LineItemPricingInput) entities.LineItemPricingResult {
	vatDivisor := 1 + in.VATRate

	netListPrice := in.ListPrice
	netBasePrice := in.BasePrice
	if in.PriceIncludesVAT {
		netListPrice = in.ListPrice / vatDivisor
		netBasePrice = in.BasePrice / vatDivisor
	}

	cost := netBasePrice
	if netListPrice > 0 {
		cost = netListPrice * (1 - in.DiscountRate)
	}

	originalSellPrice := cost * (1 + in.ProfitMargin)

	tlCost := cost * in.ExchangeRate
	tlSellPrice := originalSellPrice * in.ExchangeRate
	profitAmount := tlSellPrice - tlCost

	return entities.LineItemPricingResult{
		Cost:              cost,
		TLCost:            tlCost,
		OriginalSellPrice: originalSellPrice,
		TLSellPrice:       tlSellPrice,
		ProfitAmount:      profitAmount,
		TotalTLCost:       tlCost * in.Quantity,
		TotalTLSell:       tlSellPrice * in.Quantity,
		TotalProfit:       profitAmount * in.Quantity,
	}
}
