package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/domain/ledger"
)

type fakeLedgerRepo struct {
	deleted   int64
	gotCutoff time.Time
	err       error
}

func (f *fakeLedgerRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.gotCutoff = cutoff
	return f.deleted, f.err
}

type fakeIncomeRepo struct{ fakeLedgerRepo }

func (f *fakeIncomeRepo) Upsert(context.Context, *ledger.IncomeRecord) (ledger.WriteOutcome, error) {
	return ledger.WriteInserted, nil
}
func (f *fakeIncomeRepo) FindByID(context.Context, string) (*ledger.IncomeRecord, error) {
	return nil, nil
}
func (f *fakeIncomeRepo) FindAll(context.Context, ledger.RecordFilter) ([]ledger.IncomeRecord, error) {
	return nil, nil
}
func (f *fakeIncomeRepo) Count(context.Context, ledger.RecordFilter) (int64, error) { return 0, nil }
func (f *fakeIncomeRepo) CountAll(context.Context) (int64, error)                   { return 0, nil }

type fakeOutcomeRepo struct{ fakeLedgerRepo }

func (f *fakeOutcomeRepo) Upsert(context.Context, *ledger.OutcomeRecord) (ledger.WriteOutcome, error) {
	return ledger.WriteInserted, nil
}
func (f *fakeOutcomeRepo) FindByID(context.Context, string) (*ledger.OutcomeRecord, error) {
	return nil, nil
}
func (f *fakeOutcomeRepo) FindAll(context.Context, ledger.RecordFilter) ([]ledger.OutcomeRecord, error) {
	return nil, nil
}
func (f *fakeOutcomeRepo) Count(context.Context, ledger.RecordFilter) (int64, error) { return 0, nil }
func (f *fakeOutcomeRepo) CountAll(context.Context) (int64, error)                   { return 0, nil }

func TestPurgeUsesRetentionCutoff(t *testing.T) {
	income := &fakeIncomeRepo{fakeLedgerRepo{deleted: 120}}
	outcome := &fakeOutcomeRepo{fakeLedgerRepo{deleted: 45}}

	svc := NewService(income, outcome, 12, zap.NewNop())
	now := time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	result, err := svc.Purge(context.Background())
	require.NoError(t, err)

	wantCutoff := time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, wantCutoff, result.Cutoff)
	assert.Equal(t, wantCutoff, income.gotCutoff)
	assert.Equal(t, wantCutoff, outcome.gotCutoff)
	assert.Equal(t, int64(120), result.IncomeDeleted)
	assert.Equal(t, int64(45), result.OutcomeDeleted)
}

func TestPurgePropagatesErrors(t *testing.T) {
	income := &fakeIncomeRepo{fakeLedgerRepo{err: errors.New("db down")}}
	outcome := &fakeOutcomeRepo{}

	svc := NewService(income, outcome, 12, zap.NewNop())

	_, err := svc.Purge(context.Background())
	assert.Error(t, err)
	// outcome purge is never attempted after the income purge fails
	assert.True(t, outcome.gotCutoff.IsZero())
}
