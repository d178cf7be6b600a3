package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/shared"
)

// MockIncomeRepository is a mock implementation of ledger.IncomeRepository
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) Upsert(ctx context.Context, rec *ledger.IncomeRecord) (ledger.WriteOutcome, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(ledger.WriteOutcome), args.Error(1)
}

func (m *MockIncomeRepository) FindByID(ctx context.Context, id string) (*ledger.IncomeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.IncomeRecord), args.Error(1)
}

func (m *MockIncomeRepository) FindAll(ctx context.Context, filter ledger.RecordFilter) ([]ledger.IncomeRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.IncomeRecord), args.Error(1)
}

func (m *MockIncomeRepository) Count(ctx context.Context, filter ledger.RecordFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIncomeRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIncomeRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestListIncomeNormalizesFilter(t *testing.T) {
	repo := new(MockIncomeRepository)
	svc := NewLedgerQueryService(repo, nil, zap.NewNop())

	expected := ledger.RecordFilter{
		DateField: "due_date",
		Limit:     100,
	}
	repo.On("Count", mock.Anything, expected).Return(int64(2), nil)
	repo.On("FindAll", mock.Anything, expected).Return([]ledger.IncomeRecord{
		{RecordCore: ledger.RecordCore{ID: "47_635"}},
		{RecordCore: ledger.RecordCore{ID: "48_635"}},
	}, nil)

	records, total, err := svc.ListIncome(context.Background(), ledger.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, records, 2)
	repo.AssertExpectations(t)
}

func TestListIncomeRejectsBadDateField(t *testing.T) {
	repo := new(MockIncomeRepository)
	svc := NewLedgerQueryService(repo, nil, zap.NewNop())

	_, _, err := svc.ListIncome(context.Background(), ledger.RecordFilter{DateField: "company_name"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	repo.AssertNotCalled(t, "FindAll")
}

func TestListIncomeRejectsOversizedLimit(t *testing.T) {
	repo := new(MockIncomeRepository)
	svc := NewLedgerQueryService(repo, nil, zap.NewNop())

	_, _, err := svc.ListIncome(context.Background(), ledger.RecordFilter{Limit: 1001})
	assert.Error(t, err)
}

func TestGetIncomeByIDNotFound(t *testing.T) {
	repo := new(MockIncomeRepository)
	svc := NewLedgerQueryService(repo, nil, zap.NewNop())

	repo.On("FindByID", mock.Anything, "1_2").Return(nil, shared.ErrNotFound)

	_, err := svc.GetIncomeByID(context.Background(), "1_2")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
