package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/siengefin/backend/internal/domain/ledger"
)

// newMockIncomeRepository creates a GormIncomeRepository over a mocked
// connection, for asserting the exact SQL shape sent to Postgres
func newMockIncomeRepository(t *testing.T) (*GormIncomeRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormIncomeRepository(gormDB), mock, mockDB
}

func TestFindAllUsesCaseInsensitiveNameMatch(t *testing.T) {
	repo, mock, mockDB := newMockIncomeRepository(t)
	defer mockDB.Close()

	filter := ledger.RecordFilter{
		CompanyName:      "alfa",
		CounterpartyName: "souza",
	}
	require.NoError(t, filter.Normalize())

	mock.ExpectQuery(`SELECT \* FROM "income_data" WHERE company_name ILIKE \$1 AND client_name ILIKE \$2 ORDER BY due_date DESC,id ASC LIMIT \$3`).
		WithArgs("%alfa%", "%souza%", ledger.DefaultLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	records, err := repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAppliesFilterWithoutPagination(t *testing.T) {
	repo, mock, mockDB := newMockIncomeRepository(t)
	defer mockDB.Close()

	companyID := int64(7)
	filter := ledger.RecordFilter{CompanyID: &companyID}
	require.NoError(t, filter.Normalize())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "income_data" WHERE company_id = \$1`).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
