package response

import (
	"proposal_desk/internal/domain/entities"
	"time"
)

type ProposalResponse struct {
	ID             string    `json:"id"`
	RootProposalID string    `json:"root_proposal_id"`
	CustomerID     string    `json:"customer_id"`
	Title          string    `json:"title"`
	Version        int       `json:"version"`
	Status         string    `json:"status"`
	TotalAmount    float64   `json:"total_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:             p.ID,
		RootProposalID: p.RootProposalID,
		CustomerID:     p.CustomerID,
		Title:          p.Title,
		Version:        p.Version,
		Status:         string(p.Status),
		TotalAmount:    roundMoney(p.TotalAmount),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}
