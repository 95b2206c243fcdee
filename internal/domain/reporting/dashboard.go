// Package reporting folds versioned proposal records into dashboard metrics.
package reporting

import (
	"time"

	"proposal_desk/internal/domain/entities"
)

// ComputeDashboardMetrics compares the calendar month containing now with the
// month before it. Records created before the previous month are ignored;
// records dated after now still count as current.
//
// Within a period, proposals are grouped by RootProposalID:
//   - a group is active when its latest version is draft or sent;
//   - a group is approved when any member is approved, and its revenue is the
//     TotalAmount of the highest approved version, which need not be the
//     latest one.
//
// A group can therefore be active and approved at the same time.
//
// The inputs are never modified.
func ComputeDashboardMetrics(proposals []entities.Proposal, customers []entities.Customer, now time.Time) entities.DashboardMetrics {
	currentStart, previousStart := periodBounds(now)

	var current, previous []entities.Proposal
	for _, p := range proposals {
		switch {
		case !p.CreatedAt.Before(currentStart):
			current = append(current, p)
		case !p.CreatedAt.Before(previousStart):
			previous = append(previous, p)
		}
	}

	cur := summarize(current)
	prev := summarize(previous)

	return entities.DashboardMetrics{
		TotalCustomers:      len(customers),
		ActiveQuotes:        cur.active,
		ApprovedQuotesCount: cur.approved,
		TotalRevenue:        cur.revenue,

		PreviousActiveQuotes:        prev.active,
		PreviousApprovedQuotesCount: prev.approved,
		PreviousTotalRevenue:        prev.revenue,
	}
}

// periodBounds returns the first instant of now's month and of the month
// before, in now's location.
func periodBounds(now time.Time) (currentStart, previousStart time.Time) {
	currentStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart = currentStart.AddDate(0, -1, 0)
	return currentStart, previousStart
}

type periodSummary struct {
	active   int
	approved int
	revenue  float64
}

func summarize(proposals []entities.Proposal) periodSummary {
	var s periodSummary
	for _, group := range groupByLineage(proposals) {
		if latest, ok := canonicalLatest(group, nil); ok && latest.Status.IsOpen() {
			s.active++
		}
		if approved, ok := canonicalLatest(group, isApproved); ok {
			s.approved++
			s.revenue += approved.TotalAmount
		}
	}
	return s
}

// groupByLineage partitions proposals by RootProposalID. Groups come back in
// order of first appearance so that revenue is summed in a stable order.
func groupByLineage(proposals []entities.Proposal) [][]entities.Proposal {
	index := make(map[string]int)
	var groups [][]entities.Proposal
	for _, p := range proposals {
		i, ok := index[p.RootProposalID]
		if !ok {
			i = len(groups)
			index[p.RootProposalID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], p)
	}
	return groups
}

func isApproved(p entities.Proposal) bool {
	return p.Status == entities.ProposalStatusApproved
}

// canonicalLatest returns the member with the highest version among those
// accepted by keep (all members when keep is nil).
func canonicalLatest(group []entities.Proposal, keep func(entities.Proposal) bool) (entities.Proposal, bool) {
	var best entities.Proposal
	found := false
	for _, p := range group {
		if keep != nil && !keep(p) {
			continue
		}
		if !found || newerVersion(p, best) {
			best = p
			found = true
		}
	}
	return best, found
}

// newerVersion orders by version. Duplicate version numbers are rejected on
// write, but legacy data may still contain them: the later CreatedAt wins,
// then the greater ID, so the choice never depends on input order.
func newerVersion(a, b entities.Proposal) bool {
	if a.Version != b.Version {
		return a.Version > b.Version
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
