package persistence

import (
	"context"

	"gorm.io/gorm"

	appsync "github.com/siengefin/backend/internal/application/sync"
	"github.com/siengefin/backend/internal/domain/ledger"
)

// GormTransactionScope implements sync.TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appsync.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to the ledger repositories
// within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// IncomeRepo returns the income repository scoped to the current transaction.
func (r *gormTransactionalRepositories) IncomeRepo() ledger.IncomeRepository {
	return NewGormIncomeRepository(r.tx)
}

// OutcomeRepo returns the outcome repository scoped to the current transaction.
func (r *gormTransactionalRepositories) OutcomeRepo() ledger.OutcomeRepository {
	return NewGormOutcomeRepository(r.tx)
}

// Isolated runs fn inside a savepoint. GORM turns a nested Transaction call
// into SAVEPOINT/ROLLBACK TO, so a failed statement only discards this
// record's writes.
func (r *gormTransactionalRepositories) Isolated(fn func(repos appsync.TransactionalRepositories) error) error {
	return r.tx.Transaction(func(inner *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: inner})
	})
}

// Ensure GormTransactionScope implements TransactionScope
var _ appsync.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appsync.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
