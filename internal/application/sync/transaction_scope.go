package sync

import (
	"context"

	"github.com/siengefin/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to the ledger repositories.
// Each kind-batch is written inside one scope so a commit makes the whole
// batch visible at once.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories within
// a transaction. Both repositories share the same underlying transaction.
type TransactionalRepositories interface {
	// IncomeRepo returns the income repository scoped to the current transaction
	IncomeRepo() ledger.IncomeRepository
	// OutcomeRepo returns the outcome repository scoped to the current transaction
	OutcomeRepo() ledger.OutcomeRepository
	// Isolated runs fn inside a savepoint. A failed statement rolls back to
	// the savepoint instead of poisoning the batch transaction, which is what
	// lets a bad record be skipped while its siblings still commit.
	Isolated(fn func(repos TransactionalRepositories) error) error
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	incomeRepo  ledger.IncomeRepository
	outcomeRepo ledger.OutcomeRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(incomeRepo ledger.IncomeRepository, outcomeRepo ledger.OutcomeRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		incomeRepo:  incomeRepo,
		outcomeRepo: outcomeRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// IncomeRepo returns the income repository.
func (s *NoOpTransactionScope) IncomeRepo() ledger.IncomeRepository {
	return s.incomeRepo
}

// OutcomeRepo returns the outcome repository.
func (s *NoOpTransactionScope) OutcomeRepo() ledger.OutcomeRepository {
	return s.outcomeRepo
}

// Isolated runs the function directly; there is no transaction to protect.
func (s *NoOpTransactionScope) Isolated(fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}
