package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/shared"
	"github.com/siengefin/backend/internal/infrastructure/persistence/models"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.IncomeDataModel{}, &models.OutcomeDataModel{})
	require.NoError(t, err)

	return db
}

func testIncome(installmentID, billID int64, dueDate time.Time, amount string) *ledger.IncomeRecord {
	companyID := int64(7)
	return &ledger.IncomeRecord{
		RecordCore: ledger.RecordCore{
			ID:             ledger.CompositeID(installmentID, billID),
			InstallmentID:  installmentID,
			BillID:         billID,
			CompanyID:      &companyID,
			CompanyName:    "Construtora Alfa",
			OriginalAmount: decimal.NewNullDecimal(decimal.RequireFromString(amount)),
			DueDate:        &dueDate,
			SyncDate:       time.Date(2026, 6, 20, 8, 0, 0, 0, time.UTC),
		},
		ClientName: "Maria Souza",
		Receipts:   `[{"operationTypeId":1}]`,
	}
}

func testOutcome(installmentID, billID int64, dueDate time.Time, authStatus string) *ledger.OutcomeRecord {
	return &ledger.OutcomeRecord{
		RecordCore: ledger.RecordCore{
			ID:            ledger.CompositeID(installmentID, billID),
			InstallmentID: installmentID,
			BillID:        billID,
			CompanyName:   "Construtora Alfa",
			DueDate:       &dueDate,
			SyncDate:      time.Date(2026, 6, 20, 8, 0, 0, 0, time.UTC),
		},
		CreditorName:        "Fornecedor Beta",
		AuthorizationStatus: authStatus,
		Payments:            "[]",
	}
}

// baseFilter returns a normalized filter with the default date field set, as
// callers always normalize before querying
func baseFilter() ledger.RecordFilter {
	filter := ledger.RecordFilter{}
	if err := filter.Normalize(); err != nil {
		panic(err)
	}
	return filter
}

func TestIncomeUpsertInsertsThenUpdates(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormIncomeRepository(db)
	ctx := context.Background()

	due := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	outcome, err := repo.Upsert(ctx, testIncome(47, 635, due, "1250.50"))
	require.NoError(t, err)
	assert.Equal(t, ledger.WriteInserted, outcome)

	// Same identity with changed columns overwrites instead of duplicating
	updated := testIncome(47, 635, due, "1300.00")
	updated.ClientName = "Maria S. Souza"
	outcome, err = repo.Upsert(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, ledger.WriteUpdated, outcome)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	found, err := repo.FindByID(ctx, "47_635")
	require.NoError(t, err)
	assert.Equal(t, "Maria S. Souza", found.ClientName)
	require.True(t, found.OriginalAmount.Valid)
	assert.True(t, found.OriginalAmount.Decimal.Equal(decimal.RequireFromString("1300.00")))
}

func TestIncomeFindByIDNotFound(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormIncomeRepository(db)

	found, err := repo.FindByID(context.Background(), "99_99")
	assert.Nil(t, found)
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestIncomeFindAllOrdersAndPaginates(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormIncomeRepository(db)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	for i, due := range dates {
		_, err := repo.Upsert(ctx, testIncome(int64(i+1), 100, due, "100.00"))
		require.NoError(t, err)
	}

	filter := baseFilter()
	records, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest due_date first
	assert.Equal(t, "2_100", records[0].ID)
	assert.Equal(t, "3_100", records[1].ID)
	assert.Equal(t, "1_100", records[2].ID)

	filter.Limit = 1
	filter.Offset = 1
	page, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "3_100", page[0].ID)
}

func TestIncomeFilterByDateRange(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormIncomeRepository(db)
	ctx := context.Background()

	for i, due := range []time.Time{
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	} {
		_, err := repo.Upsert(ctx, testIncome(int64(i+1), 200, due, "100.00"))
		require.NoError(t, err)
	}

	filter := baseFilter()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	filter.StartDate = &start
	filter.EndDate = &end

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	records, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2_200", records[0].ID)
}

func TestIncomeCountIgnoresPagination(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormIncomeRepository(db)
	ctx := context.Background()

	due := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 5; i++ {
		_, err := repo.Upsert(ctx, testIncome(i, 300, due, "100.00"))
		require.NoError(t, err)
	}

	filter := baseFilter()
	filter.Limit = 2

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestIncomeDeleteOlderThan(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormIncomeRepository(db)
	ctx := context.Background()

	old := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := repo.Upsert(ctx, testIncome(1, 400, old, "100.00"))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, testIncome(2, 400, recent, "100.00"))
	require.NoError(t, err)

	deleted, err := repo.DeleteOlderThan(ctx, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, err = repo.FindByID(ctx, "1_400")
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestOutcomeUpsertInsertsThenUpdates(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormOutcomeRepository(db)
	ctx := context.Background()

	due := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	outcome, err := repo.Upsert(ctx, testOutcome(12, 900, due, "pending"))
	require.NoError(t, err)
	assert.Equal(t, ledger.WriteInserted, outcome)

	outcome, err = repo.Upsert(ctx, testOutcome(12, 900, due, "approved"))
	require.NoError(t, err)
	assert.Equal(t, ledger.WriteUpdated, outcome)

	found, err := repo.FindByID(ctx, "12_900")
	require.NoError(t, err)
	assert.Equal(t, "approved", found.AuthorizationStatus)
}

func TestOutcomeFilterByAuthorizationStatus(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormOutcomeRepository(db)
	ctx := context.Background()

	due := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	_, err := repo.Upsert(ctx, testOutcome(1, 500, due, "approved"))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, testOutcome(2, 500, due, "pending"))
	require.NoError(t, err)

	filter := baseFilter()
	filter.AuthorizationStatus = "approved"

	records, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1_500", records[0].ID)
}
