package entities

// DashboardMetrics summarises proposals for the current calendar month and
// the month before it. TotalCustomers has no previous-period counterpart.
type DashboardMetrics struct {
	TotalCustomers      int     `json:"total_customers"`
	ActiveQuotes        int     `json:"active_quotes"`
	ApprovedQuotesCount int     `json:"approved_quotes_count"`
	TotalRevenue        float64 `json:"total_revenue"`

	PreviousActiveQuotes        int     `json:"previous_active_quotes"`
	PreviousApprovedQuotesCount int     `json:"previous_approved_quotes_count"`
	PreviousTotalRevenue        float64 `json:"previous_total_revenue"`
}

type ChangeKind string

const (
	ChangeKindPercent  ChangeKind = "percent"
	ChangeKindNew      ChangeKind = "new"
	ChangeKindNoChange ChangeKind = "no_change"
)

// Change is a period-over-period comparison. Percent is only meaningful
// when Kind is ChangeKindPercent.
type Change struct {
	Kind    ChangeKind `json:"kind"`
	Percent float64    `json:"percent"`
}

// DashboardReport is DashboardMetrics plus the change indicators shown next
// to each compared figure.
type DashboardReport struct {
	Metrics              DashboardMetrics `json:"metrics"`
	ActiveQuotesChange   Change           `json:"active_quotes_change"`
	ApprovedQuotesChange Change           `json:"approved_quotes_change"`
	TotalRevenueChange   Change           `json:"total_revenue_change"`
}
