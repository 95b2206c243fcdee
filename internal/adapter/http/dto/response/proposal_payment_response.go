package response

import (
	"proposal_desk/internal/domain/entities"
	"time"
)

type ProposalPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	ProposalID  string    `json:"proposal_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromProposalPayment(p entities.ProposalPayment) ProposalPaymentResponse {
	return ProposalPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		ProposalID:         p.ProposalID,
		Amount:             roundMoney(p.Amount),
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromProposalPayments(ps []entities.ProposalPayment) []ProposalPaymentResponse {
	out := make([]ProposalPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposalPayment(p))
	}
	return out
}
