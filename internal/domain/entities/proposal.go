package entities

import "time"

// ProposalStatus represents the lifecycle of one proposal version.
//
// Allowed transitions: draft -> sent -> approved | rejected.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// IsOpen reports whether a version still awaits a customer decision.
func (s ProposalStatus) IsOpen() bool {
	return s == ProposalStatusDraft || s == ProposalStatusSent
}

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}

// Proposal is one version of a business proposal (quote).
//
// Every version of the same logical quote shares RootProposalID; the first
// version's RootProposalID equals its own ID. Version numbers are unique
// within a lineage, enforced when revisions are written.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (root_proposal_id-index): root_proposal_id
//
// TotalAmount is the VAT-exclusive local-currency sum of the line items'
// TotalTLSell.
type Proposal struct {
	ID             string         `json:"id"`
	RootProposalID string         `json:"root_proposal_id"`
	CustomerID     string         `json:"customer_id"`
	Title          string         `json:"title"`
	Version        int            `json:"version"`
	Status         ProposalStatus `json:"status"`
	TotalAmount    float64        `json:"total_amount"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
