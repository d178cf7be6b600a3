package retention

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/domain/ledger"
)

// Service purges ledger rows that have aged out of the retention window.
// Rows are judged by due_date, matching how the data is consumed: reports
// look at upcoming and recently due installments, not ancient history.
type Service struct {
	income  ledger.IncomeRepository
	outcome ledger.OutcomeRepository
	months  int
	logger  *zap.Logger
	now     func() time.Time
}

// Result reports how many rows each table lost
type Result struct {
	Cutoff         time.Time
	IncomeDeleted  int64
	OutcomeDeleted int64
}

// NewService creates a retention Service
func NewService(income ledger.IncomeRepository, outcome ledger.OutcomeRepository, months int, logger *zap.Logger) *Service {
	return &Service{
		income:  income,
		outcome: outcome,
		months:  months,
		logger:  logger.Named("retention"),
		now:     time.Now,
	}
}

// Purge deletes rows from both ledger tables whose due_date is older than the
// retention window.
func (s *Service) Purge(ctx context.Context) (*Result, error) {
	cutoff := s.now().AddDate(0, -s.months, 0)

	s.logger.Info("Purging rows past retention",
		zap.Time("cutoff", cutoff),
		zap.Int("retention_months", s.months),
	)

	incomeDeleted, err := s.income.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	outcomeDeleted, err := s.outcome.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Retention purge finished",
		zap.Int64("income_deleted", incomeDeleted),
		zap.Int64("outcome_deleted", outcomeDeleted),
	)

	return &Result{
		Cutoff:         cutoff,
		IncomeDeleted:  incomeDeleted,
		OutcomeDeleted: outcomeDeleted,
	}, nil
}
