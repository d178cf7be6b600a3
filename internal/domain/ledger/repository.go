package ledger

import (
	"context"
	"time"
)

// IncomeRepository persists accounts-receivable rows
type IncomeRepository interface {
	// Upsert inserts the record or, on identity conflict, overwrites every
	// column except the id and stamps a fresh sync_date (last-write-wins)
	Upsert(ctx context.Context, rec *IncomeRecord) (WriteOutcome, error)

	// FindByID finds a row by its composite id
	FindByID(ctx context.Context, id string) (*IncomeRecord, error)

	// FindAll returns a page of rows matching the filter, ordered by the
	// filter's date field descending then id ascending
	FindAll(ctx context.Context, filter RecordFilter) ([]IncomeRecord, error)

	// Count counts rows matching the filter, ignoring pagination
	Count(ctx context.Context, filter RecordFilter) (int64, error)

	// CountAll counts every row in the table
	CountAll(ctx context.Context) (int64, error)

	// DeleteOlderThan removes rows whose due_date is before the cutoff and
	// returns how many were deleted
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// OutcomeRepository persists accounts-payable rows
type OutcomeRepository interface {
	Upsert(ctx context.Context, rec *OutcomeRecord) (WriteOutcome, error)
	FindByID(ctx context.Context, id string) (*OutcomeRecord, error)
	FindAll(ctx context.Context, filter RecordFilter) ([]OutcomeRecord, error)
	Count(ctx context.Context, filter RecordFilter) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
