package response

import "proposal_desk/internal/domain/entities"

// ChangeResponse is a period-over-period indicator. Percent is omitted unless
// Kind is "percent".
type ChangeResponse struct {
	Kind    string   `json:"kind" example:"percent"`
	Percent *float64 `json:"percent,omitempty" example:"12.5"`
}

type DashboardMetricsResponse struct {
	TotalCustomers              int     `json:"total_customers"`
	ActiveQuotes                int     `json:"active_quotes"`
	ApprovedQuotesCount         int     `json:"approved_quotes_count"`
	TotalRevenue                float64 `json:"total_revenue"`
	PreviousActiveQuotes        int     `json:"previous_active_quotes"`
	PreviousApprovedQuotesCount int     `json:"previous_approved_quotes_count"`
	PreviousTotalRevenue        float64 `json:"previous_total_revenue"`

	ActiveQuotesChange   ChangeResponse `json:"active_quotes_change"`
	ApprovedQuotesChange ChangeResponse `json:"approved_quotes_change"`
	TotalRevenueChange   ChangeResponse `json:"total_revenue_change"`
}

func FromDashboardReport(r entities.DashboardReport) DashboardMetricsResponse {
	m := r.Metrics
	return DashboardMetricsResponse{
		TotalCustomers:              m.TotalCustomers,
		ActiveQuotes:                m.ActiveQuotes,
		ApprovedQuotesCount:         m.ApprovedQuotesCount,
		TotalRevenue:                roundMoney(m.TotalRevenue),
		PreviousActiveQuotes:        m.PreviousActiveQuotes,
		PreviousApprovedQuotesCount: m.PreviousApprovedQuotesCount,
		PreviousTotalRevenue:        roundMoney(m.PreviousTotalRevenue),

		ActiveQuotesChange:   fromChange(r.ActiveQuotesChange),
		ApprovedQuotesChange: fromChange(r.ApprovedQuotesChange),
		TotalRevenueChange:   fromChange(r.TotalRevenueChange),
	}
}

func fromChange(c entities.Change) ChangeResponse {
	res := ChangeResponse{Kind: string(c.Kind)}
	if c.Kind == entities.ChangeKindPercent {
		pct := roundMoney(c.Percent)
		res.Percent = &pct
	}
	return res
}
