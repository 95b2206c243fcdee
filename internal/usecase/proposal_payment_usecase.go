package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrProposalPaymentNotFound    = errors.New("proposal payment not found")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrInvalidPaymentAmount       = errors.New("invalid payment amount")
	ErrProposalNotApproved        = errors.New("proposal not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IProposalPaymentUseCase collects deposits on approved proposal versions.
//
// The amount charged is always the proposal's stored TotalAmount, whatever
// the caller sends.
type IProposalPaymentUseCase interface {
	CreateDeposit(ctx context.Context, proposalID string, payload json.RawMessage) (entities.ProposalPayment, error)
	GetByID(ctx context.Context, id string) (entities.ProposalPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error)
}

type ProposalPaymentUseCase struct {
	repo         interfaces.IProposalPaymentRepository
	proposalRepo interfaces.IProposalRepository
	gateway      interfaces.IPaymentGateway
	log          zerolog.Logger
	now          func() time.Time
}

var _ IProposalPaymentUseCase = (*ProposalPaymentUseCase)(nil)

func NewProposalPaymentUseCase(
	repo interfaces.IProposalPaymentRepository,
	proposalRepo interfaces.IProposalRepository,
	gateway interfaces.IPaymentGateway,
	log zerolog.Logger,
) *ProposalPaymentUseCase {
	return &ProposalPaymentUseCase{
		repo:         repo,
		proposalRepo: proposalRepo,
		gateway:      gateway,
		log:          log.With().Str("component", "payment_usecase").Logger(),
		now:          time.Now,
	}
}

func (u *ProposalPaymentUseCase) CreateDeposit(ctx context.Context, proposalID string, payload json.RawMessage) (entities.ProposalPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.ProposalPayment{}, ErrInvalidProposalID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return entities.ProposalPayment{}, ErrInvalidPaymentPayload
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.ProposalPayment{}, err
	}
	if p.ID == "" {
		return entities.ProposalPayment{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusApproved {
		return entities.ProposalPayment{}, ErrProposalNotApproved
	}
	if p.TotalAmount <= 0 {
		return entities.ProposalPayment{}, ErrInvalidPaymentAmount
	}

	// external_reference lets the provider's events be reconciled with the proposal.
	if !hasNonEmptyString(reqMap, "external_reference") {
		reqMap["external_reference"] = proposalID
	}
	if !hasNonEmptyString(reqMap, "description") {
		reqMap["description"] = fmt.Sprintf("%s (v%d)", p.Title, p.Version)
	}
	reqMap["transaction_amount"] = p.TotalAmount

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.ProposalPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.log.Error().Err(err).Str("proposal_id", proposalID).Msg("Payment gateway failed")
		switch {
		case isGatewayUnauthorized(err):
			return entities.ProposalPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.ProposalPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.ProposalPayment{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn().Err(err).Str("proposal_id", proposalID).Msg("Provider response is not a json object")
	}

	payment := entities.ProposalPayment{
		ID:                 providerID,
		ProposalID:         proposalID,
		Amount:             p.TotalAmount,
		Date:               u.now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		u.log.Error().Err(err).Str("proposal_id", proposalID).Str("payment_id", payment.ID).Msg("Failed to persist payment")
		return entities.ProposalPayment{}, err
	}

	u.log.Info().
		Str("proposal_id", proposalID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Float64("amount", created.Amount).
		Msg("Deposit created")
	return created, nil
}

func (u *ProposalPaymentUseCase) GetByID(ctx context.Context, id string) (entities.ProposalPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProposalPayment{}, ErrProposalPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProposalPayment{}, err
	}
	if p.ID == "" {
		return entities.ProposalPayment{}, ErrProposalPaymentNotFound
	}
	return p, nil
}

func (u *ProposalPaymentUseCase) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidProposalID
	}
	return u.repo.ListByProposalID(ctx, proposalID)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
