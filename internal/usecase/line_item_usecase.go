package usecase

import (
	"context"
	"errors"
	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/domain/pricing"
	"proposal_desk/internal/infrastructure/metrics"
	"proposal_desk/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidRate         = errors.New("invalid discount, margin or vat rate")
	ErrProposalNotEditable = errors.New("proposal is not a draft")
)

// PriceLineItemCommand carries the user-entered figures of one line. The
// exchange rate is never supplied by the caller; it comes from today's feed.
type PriceLineItemCommand struct {
	ProposalID       string
	Description      string
	Currency         string
	ListPrice        float64
	BasePrice        float64
	DiscountRate     float64
	ProfitMargin     float64
	Quantity         float64
	VATRate          float64
	PriceIncludesVAT bool
}

// ILineItemUseCase prices line items and keeps proposal totals in sync.
type ILineItemUseCase interface {
	Preview(ctx context.Context, cmd PriceLineItemCommand) (entities.LineItem, error)
	PriceLineItem(ctx context.Context, cmd PriceLineItemCommand) (entities.LineItem, error)
	ListByProposal(ctx context.Context, proposalID string) ([]entities.LineItem, error)
}

type LineItemUseCase struct {
	repo         interfaces.ILineItemRepository
	proposalRepo interfaces.IProposalRepository
	rates        interfaces.IExchangeRateProvider
	metrics      *metrics.QuoteMetrics
	log          zerolog.Logger
	now          func() time.Time
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(
	repo interfaces.ILineItemRepository,
	proposalRepo interfaces.IProposalRepository,
	rates interfaces.IExchangeRateProvider,
	m *metrics.QuoteMetrics,
	log zerolog.Logger,
) *LineItemUseCase {
	return &LineItemUseCase{
		repo:         repo,
		proposalRepo: proposalRepo,
		rates:        rates,
		metrics:      m,
		log:          log.With().Str("component", "line_item_usecase").Logger(),
		now:          time.Now,
	}
}

// Preview prices a line with today's rate without persisting anything.
func (u *LineItemUseCase) Preview(ctx context.Context, cmd PriceLineItemCommand) (entities.LineItem, error) {
	currency, in, err := u.buildInput(cmd)
	if err != nil {
		return entities.LineItem{}, err
	}

	rate, err := RateFor(u.rates.FetchRates(ctx), currency)
	if err != nil {
		return entities.LineItem{}, err
	}
	in.ExchangeRate = rate

	return entities.LineItem{
		ProposalID:  strings.TrimSpace(cmd.ProposalID),
		Description: strings.TrimSpace(cmd.Description),
		Currency:    currency,
		Input:       in,
		Pricing:     pricing.Price(in),
	}, nil
}

// PriceLineItem prices a line and stores it on a draft proposal. The item
// and the matching TotalAmount increase are a single write.
func (u *LineItemUseCase) PriceLineItem(ctx context.Context, cmd PriceLineItemCommand) (entities.LineItem, error) {
	proposalID := strings.TrimSpace(cmd.ProposalID)
	if proposalID == "" {
		return entities.LineItem{}, ErrInvalidProposalID
	}
	currency, in, err := u.buildInput(cmd)
	if err != nil {
		return entities.LineItem{}, err
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if p.ID == "" {
		return entities.LineItem{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusDraft {
		return entities.LineItem{}, ErrProposalNotEditable
	}

	rate, err := RateFor(u.rates.FetchRates(ctx), currency)
	if err != nil {
		return entities.LineItem{}, err
	}
	in.ExchangeRate = rate

	item := entities.LineItem{
		ID:          uuid.NewString(),
		ProposalID:  proposalID,
		Description: strings.TrimSpace(cmd.Description),
		Currency:    currency,
		Input:       in,
		Pricing:     pricing.Price(in),
		CreatedAt:   u.now().UTC(),
	}

	created, err := u.repo.AddToDraft(ctx, item)
	if err != nil {
		if errors.Is(err, interfaces.ErrProposalNotDraft) {
			return entities.LineItem{}, ErrProposalNotEditable
		}
		u.log.Error().Err(err).Str("proposal_id", proposalID).Msg("Failed to persist line item")
		return entities.LineItem{}, err
	}
	u.metrics.RecordLineItemPriced(string(currency), created.Pricing.TotalTLSell)

	u.log.Info().
		Str("proposal_id", proposalID).
		Str("line_item_id", created.ID).
		Str("currency", string(currency)).
		Float64("exchange_rate", rate).
		Float64("total_tl_sell", created.Pricing.TotalTLSell).
		Msg("Line item priced")
	return created, nil
}

func (u *LineItemUseCase) ListByProposal(ctx context.Context, proposalID string) ([]entities.LineItem, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidProposalID
	}
	return u.repo.ListByProposalID(ctx, proposalID)
}

// SumTotalTLSell is the VAT-exclusive local-currency total of items.
func SumTotalTLSell(items []entities.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Pricing.TotalTLSell
	}
	return total
}

func (u *LineItemUseCase) buildInput(cmd PriceLineItemCommand) (entities.Currency, entities.LineItemPricingInput, error) {
	currency, err := ParseCurrency(cmd.Currency)
	if err != nil {
		return "", entities.LineItemPricingInput{}, err
	}
	if cmd.Quantity <= 0 {
		return "", entities.LineItemPricingInput{}, ErrInvalidQuantity
	}
	if cmd.ListPrice < 0 || cmd.BasePrice < 0 || (cmd.ListPrice == 0 && cmd.BasePrice == 0) {
		return "", entities.LineItemPricingInput{}, ErrInvalidPrice
	}
	if cmd.DiscountRate < 0 || cmd.DiscountRate > 1 || cmd.ProfitMargin < 0 || cmd.VATRate < 0 {
		return "", entities.LineItemPricingInput{}, ErrInvalidRate
	}

	return currency, entities.LineItemPricingInput{
		ListPrice:        cmd.ListPrice,
		BasePrice:        cmd.BasePrice,
		DiscountRate:     cmd.DiscountRate,
		ProfitMargin:     cmd.ProfitMargin,
		Quantity:         cmd.Quantity,
		VATRate:          cmd.VATRate,
		PriceIncludesVAT: cmd.PriceIncludesVAT,
	}, nil
}
