package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/domain/ledger"
)

// LedgerQueryService serves read-only queries over the synced ledger tables.
type LedgerQueryService struct {
	income  ledger.IncomeRepository
	outcome ledger.OutcomeRepository
	logger  *zap.Logger
}

// NewLedgerQueryService creates a LedgerQueryService
func NewLedgerQueryService(income ledger.IncomeRepository, outcome ledger.OutcomeRepository, logger *zap.Logger) *LedgerQueryService {
	return &LedgerQueryService{
		income:  income,
		outcome: outcome,
		logger:  logger.Named("query"),
	}
}

// ListIncome returns the page of income rows matching the filter plus the
// total match count ignoring pagination.
func (s *LedgerQueryService) ListIncome(ctx context.Context, filter ledger.RecordFilter) ([]ledger.IncomeRecord, int64, error) {
	if err := filter.Normalize(); err != nil {
		return nil, 0, err
	}

	total, err := s.income.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	records, err := s.income.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetIncomeByID returns one income row by its composite id
func (s *LedgerQueryService) GetIncomeByID(ctx context.Context, id string) (*ledger.IncomeRecord, error) {
	return s.income.FindByID(ctx, id)
}

// ListOutcome returns the page of outcome rows matching the filter plus the
// total match count ignoring pagination.
func (s *LedgerQueryService) ListOutcome(ctx context.Context, filter ledger.RecordFilter) ([]ledger.OutcomeRecord, int64, error) {
	if err := filter.Normalize(); err != nil {
		return nil, 0, err
	}

	total, err := s.outcome.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	records, err := s.outcome.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetOutcomeByID returns one outcome row by its composite id
func (s *LedgerQueryService) GetOutcomeByID(ctx context.Context, id string) (*ledger.OutcomeRecord, error) {
	return s.outcome.FindByID(ctx, id)
}

// Totals returns the overall row counts of both ledger tables
func (s *LedgerQueryService) Totals(ctx context.Context) (incomeTotal, outcomeTotal int64, err error) {
	incomeTotal, err = s.income.CountAll(ctx)
	if err != nil {
		return 0, 0, err
	}
	outcomeTotal, err = s.outcome.CountAll(ctx)
	if err != nil {
		return 0, 0, err
	}
	return incomeTotal, outcomeTotal, nil
}
