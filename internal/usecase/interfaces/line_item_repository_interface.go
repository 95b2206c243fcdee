package interfaces

import (
	"context"
	"errors"
	"proposal_desk/internal/domain/entities"
)

// ErrProposalNotDraft is returned by AddToDraft when the target proposal is
// missing or no longer a draft at write time.
var ErrProposalNotDraft = errors.New("proposal is not a draft")

// ILineItemRepository abstracts DynamoDB persistence for priced line items.
//
// AddToDraft stores the item and adds its TotalTLSell to the proposal's
// TotalAmount in one atomic write, so the total always equals the sum of the
// stored items.
type ILineItemRepository interface {
	AddToDraft(ctx context.Context, item entities.LineItem) (entities.LineItem, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.LineItem, error)
}
