package reporting

import "proposal_desk/internal/domain/entities"

// PercentChange describes current against previous.
//
// A zero previous value never yields a ratio: it is "new" when current is
// non-zero and "no change" when both are zero.
func PercentChange(current, previous float64) entities.Change {
	if previous != 0 {
		return entities.Change{
			Kind:    entities.ChangeKindPercent,
			Percent: (current - previous) / previous * 100,
		}
	}
	if current != 0 {
		return entities.Change{Kind: entities.ChangeKindNew}
	}
	return entities.Change{Kind: entities.ChangeKindNoChange}
}

// BuildReport attaches change indicators to the compared metrics.
func BuildReport(m entities.DashboardMetrics) entities.DashboardReport {
	return entities.DashboardReport{
		Metrics:              m,
		ActiveQuotesChange:   PercentChange(float64(m.ActiveQuotes), float64(m.PreviousActiveQuotes)),
		ApprovedQuotesChange: PercentChange(float64(m.ApprovedQuotesCount), float64(m.PreviousApprovedQuotesCount)),
		TotalRevenueChange:   PercentChange(m.TotalRevenue, m.PreviousTotalRevenue),
	}
}
