package usecase

import (
	"context"
	"errors"
	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/infrastructure/metrics"
	"proposal_desk/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrProposalNotFound        = errors.New("proposal not found")
	ErrInvalidProposalID       = errors.New("invalid proposal id")
	ErrInvalidProposalTitle    = errors.New("invalid proposal title")
	ErrInvalidStatusTransition = errors.New("invalid proposal status transition")
	ErrDuplicateVersion        = interfaces.ErrDuplicateProposalVersion
	ErrRevisionTooLarge        = interfaces.ErrRevisionTooLarge
)

// IProposalUseCase manages proposal versions and their lifecycle.
//
//   - Create starts a lineage at version 1 (draft)
//   - Revise adds the next version to the lineage, copying line items
//   - Send / Approve / Reject move one version through draft -> sent -> approved | rejected
type IProposalUseCase interface {
	Create(ctx context.Context, customerID, title string) (entities.Proposal, error)
	Revise(ctx context.Context, proposalID string) (entities.Proposal, error)
	Send(ctx context.Context, proposalID string) (entities.Proposal, error)
	Approve(ctx context.Context, proposalID string) (entities.Proposal, error)
	Reject(ctx context.Context, proposalID string) (entities.Proposal, error)
	GetByID(ctx context.Context, proposalID string) (entities.Proposal, error)
	ListLineage(ctx context.Context, rootProposalID string) ([]entities.Proposal, error)
}

type ProposalUseCase struct {
	repo         interfaces.IProposalRepository
	customerRepo interfaces.ICustomerRepository
	lineItemRepo interfaces.ILineItemRepository
	metrics      *metrics.QuoteMetrics
	log          zerolog.Logger
	now          func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	customerRepo interfaces.ICustomerRepository,
	lineItemRepo interfaces.ILineItemRepository,
	m *metrics.QuoteMetrics,
	log zerolog.Logger,
) *ProposalUseCase {
	return &ProposalUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		lineItemRepo: lineItemRepo,
		metrics:      m,
		log:          log.With().Str("component", "proposal_usecase").Logger(),
		now:          time.Now,
	}
}

func (u *ProposalUseCase) Create(ctx context.Context, customerID, title string) (entities.Proposal, error) {
	customerID = strings.TrimSpace(customerID)
	title = strings.TrimSpace(title)
	if customerID == "" {
		return entities.Proposal{}, ErrInvalidCustomerID
	}
	if title == "" {
		return entities.Proposal{}, ErrInvalidProposalTitle
	}

	c, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if c.ID == "" {
		return entities.Proposal{}, ErrCustomerNotFound
	}

	now := u.now().UTC()
	id := uuid.NewString()
	p := entities.Proposal{
		ID:             id,
		RootProposalID: id,
		CustomerID:     customerID,
		Title:          title,
		Version:        1,
		Status:         entities.ProposalStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, p, nil)
	if err != nil {
		return entities.Proposal{}, err
	}
	u.metrics.RecordProposalStatus(string(created.Status))
	u.log.Info().Str("proposal_id", created.ID).Str("customer_id", customerID).Msg("Proposal created")
	return created, nil
}

// Revise creates version max(lineage)+1 as a draft copy of proposalID,
// line items included. The version and its items are written together.
// Any version of the lineage can be revised, not only the latest.
func (u *ProposalUseCase) Revise(ctx context.Context, proposalID string) (entities.Proposal, error) {
	src, err := u.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}

	lineage, err := u.repo.ListByRootID(ctx, src.RootProposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	next := src.Version
	for _, p := range lineage {
		if p.Version > next {
			next = p.Version
		}
	}
	next++

	items, err := u.lineItemRepo.ListByProposalID(ctx, src.ID)
	if err != nil {
		return entities.Proposal{}, err
	}

	now := u.now().UTC()
	rev := entities.Proposal{
		ID:             uuid.NewString(),
		RootProposalID: src.RootProposalID,
		CustomerID:     src.CustomerID,
		Title:          src.Title,
		Version:        next,
		Status:         entities.ProposalStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	copies := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		item.ID = uuid.NewString()
		item.ProposalID = rev.ID
		item.CreatedAt = now
		copies = append(copies, item)
	}
	rev.TotalAmount = SumTotalTLSell(copies)

	created, err := u.repo.Create(ctx, rev, copies)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateProposalVersion) {
			u.log.Warn().
				Str("root_proposal_id", src.RootProposalID).
				Int("version", next).
				Msg("Concurrent revision detected")
			return entities.Proposal{}, ErrDuplicateVersion
		}
		return entities.Proposal{}, err
	}

	u.metrics.RecordProposalStatus(string(created.Status))
	u.log.Info().
		Str("proposal_id", created.ID).
		Str("root_proposal_id", created.RootProposalID).
		Int("version", created.Version).
		Int("line_items", len(items)).
		Msg("Proposal revised")
	return created, nil
}

func (u *ProposalUseCase) Send(ctx context.Context, proposalID string) (entities.Proposal, error) {
	return u.transition(ctx, proposalID, entities.ProposalStatusDraft, entities.ProposalStatusSent)
}

func (u *ProposalUseCase) Approve(ctx context.Context, proposalID string) (entities.Proposal, error) {
	return u.transition(ctx, proposalID, entities.ProposalStatusSent, entities.ProposalStatusApproved)
}

func (u *ProposalUseCase) Reject(ctx context.Context, proposalID string) (entities.Proposal, error) {
	return u.transition(ctx, proposalID, entities.ProposalStatusSent, entities.ProposalStatusRejected)
}

func (u *ProposalUseCase) transition(ctx context.Context, proposalID string, from, to entities.ProposalStatus) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != from {
		return entities.Proposal{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, p.ID, from, to)
	if err != nil {
		return entities.Proposal{}, err
	}
	// The stored status moved between the read and the conditional write.
	if updated.ID == "" {
		return entities.Proposal{}, ErrInvalidStatusTransition
	}

	u.metrics.RecordProposalStatus(string(to))
	u.log.Info().
		Str("proposal_id", p.ID).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("Proposal status changed")
	return updated, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, proposalID string) (entities.Proposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// ListLineage returns every version sharing rootProposalID, oldest first.
func (u *ProposalUseCase) ListLineage(ctx context.Context, rootProposalID string) ([]entities.Proposal, error) {
	rootProposalID = strings.TrimSpace(rootProposalID)
	if rootProposalID == "" {
		return nil, ErrInvalidProposalID
	}

	lineage, err := u.repo.ListByRootID(ctx, rootProposalID)
	if err != nil {
		return nil, err
	}
	if len(lineage) == 0 {
		return nil, ErrProposalNotFound
	}

	sort.SliceStable(lineage, func(i, j int) bool {
		return lineage[i].Version < lineage[j].Version
	})
	return lineage, nil
}
