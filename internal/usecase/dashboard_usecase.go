package usecase

import (
	"context"
	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/domain/reporting"
	"proposal_desk/internal/usecase/interfaces"
	"time"

	"github.com/rs/zerolog"
)

// IDashboardUseCase builds the month-over-month dashboard figures.
type IDashboardUseCase interface {
	Metrics(ctx context.Context, now time.Time) (entities.DashboardReport, error)
}

type DashboardUseCase struct {
	proposalRepo interfaces.IProposalRepository
	customerRepo interfaces.ICustomerRepository
	log          zerolog.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(proposalRepo interfaces.IProposalRepository, customerRepo interfaces.ICustomerRepository, log zerolog.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		proposalRepo: proposalRepo,
		customerRepo: customerRepo,
		log:          log.With().Str("component", "dashboard_usecase").Logger(),
	}
}

// Metrics loads every proposal version and customer and folds them into the
// report for the calendar month containing now.
func (u *DashboardUseCase) Metrics(ctx context.Context, now time.Time) (entities.DashboardReport, error) {
	proposals, err := u.proposalRepo.ListAll(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}
	customers, err := u.customerRepo.ListAll(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}

	m := reporting.ComputeDashboardMetrics(proposals, customers, now)
	u.log.Debug().
		Int("proposals", len(proposals)).
		Int("customers", len(customers)).
		Int("active_quotes", m.ActiveQuotes).
		Int("approved_quotes", m.ApprovedQuotesCount).
		Msg("Dashboard metrics computed")

	return reporting.BuildReport(m), nil
}
