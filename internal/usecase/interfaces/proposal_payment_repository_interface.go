package interfaces

import (
	"context"
	"proposal_desk/internal/domain/entities"
)

// IProposalPaymentRepository abstracts DynamoDB persistence for ProposalPayment.

type IProposalPaymentRepository interface {
	Create(ctx context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error)
	GetByID(ctx context.Context, id string) (entities.ProposalPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error)
}
