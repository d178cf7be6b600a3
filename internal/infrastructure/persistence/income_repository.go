package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/shared"
	"github.com/siengefin/backend/internal/infrastructure/persistence/models"
)

// GormIncomeRepository implements ledger.IncomeRepository using GORM
type GormIncomeRepository struct {
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GormIncomeRepository
func NewGormIncomeRepository(db *gorm.DB) *GormIncomeRepository {
	return &GormIncomeRepository{db: db}
}

// Upsert inserts the record or, on id conflict, overwrites every non-id column
func (r *GormIncomeRepository) Upsert(ctx context.Context, rec *ledger.IncomeRecord) (ledger.WriteOutcome, error) {
	var model models.IncomeDataModel
	model.FromDomain(rec)

	var existing int64
	if err := r.db.WithContext(ctx).
		Model(&models.IncomeDataModel{}).
		Where("id = ?", model.ID).
		Count(&existing).Error; err != nil {
		return ledger.WriteInserted, err
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&model).Error; err != nil {
		return ledger.WriteInserted, err
	}

	if existing > 0 {
		return ledger.WriteUpdated, nil
	}
	return ledger.WriteInserted, nil
}

// FindByID finds an income row by its composite id
func (r *GormIncomeRepository) FindByID(ctx context.Context, id string) (*ledger.IncomeRecord, error) {
	var model models.IncomeDataModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of income rows matching the filter
func (r *GormIncomeRepository) FindAll(ctx context.Context, filter ledger.RecordFilter) ([]ledger.IncomeRecord, error) {
	var rowModels []models.IncomeDataModel
	query := r.db.WithContext(ctx).Model(&models.IncomeDataModel{})
	query = applyIncomeFilter(query, filter)
	query = query.
		Order(filter.DateField + " DESC").
		Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	if err := query.Find(&rowModels).Error; err != nil {
		return nil, err
	}
	records := make([]ledger.IncomeRecord, len(rowModels))
	for i, model := range rowModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Count counts income rows matching the filter, ignoring pagination
func (r *GormIncomeRepository) Count(ctx context.Context, filter ledger.RecordFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.IncomeDataModel{})
	query = applyIncomeFilter(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountAll counts every income row
func (r *GormIncomeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.IncomeDataModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteOlderThan removes income rows whose due_date is before the cutoff
func (r *GormIncomeRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("due_date < ?", cutoff).
		Delete(&models.IncomeDataModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// applyIncomeFilter applies filter criteria without pagination or ordering
func applyIncomeFilter(query *gorm.DB, filter ledger.RecordFilter) *gorm.DB {
	query = applyCommonFilter(query, filter)

	if filter.CounterpartyID != nil {
		query = query.Where("client_id = ?", *filter.CounterpartyID)
	}
	if filter.CounterpartyName != "" {
		query = query.Where("client_name ILIKE ?", "%"+filter.CounterpartyName+"%")
	}

	return query
}

// applyCommonFilter applies the criteria shared by both ledger tables
func applyCommonFilter(query *gorm.DB, filter ledger.RecordFilter) *gorm.DB {
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.CompanyName != "" {
		query = query.Where("company_name ILIKE ?", "%"+filter.CompanyName+"%")
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.BusinessAreaID != nil {
		query = query.Where("business_area_id = ?", *filter.BusinessAreaID)
	}
	if filter.StartDate != nil {
		query = query.Where(filter.DateField+" >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where(filter.DateField+" <= ?", *filter.EndDate)
	}
	if filter.MinAmount != nil {
		query = query.Where("original_amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("original_amount <= ?", *filter.MaxAmount)
	}

	return query
}
