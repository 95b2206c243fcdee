package interfaces

import (
	"context"
	"errors"
	"proposal_desk/internal/domain/entities"
)

var (
	// ErrDuplicateProposalVersion is returned by Create when the lineage
	// already holds a version with the same number.
	ErrDuplicateProposalVersion = errors.New("proposal version already exists")
	// ErrRevisionTooLarge is returned by Create when a version and its line
	// items do not fit in a single write.
	ErrRevisionTooLarge = errors.New("too many line items to write with the proposal")
)

// IProposalRepository abstracts DynamoDB persistence for proposal versions.
//
// Create stores the version together with its line items atomically: either
// all of them are written or none is.
// GetByID returns a zero Proposal (empty ID) when nothing matches.
// UpdateStatus only succeeds while the stored status equals from; otherwise
// it also returns a zero Proposal.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal, items []entities.LineItem) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByRootID(ctx context.Context, rootProposalID string) ([]entities.Proposal, error)
	ListAll(ctx context.Context) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ProposalStatus) (entities.Proposal, error)
}
