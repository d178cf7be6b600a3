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

// GormOutcomeRepository implements ledger.OutcomeRepository using GORM
type GormOutcomeRepository struct {
	db *gorm.DB
}

// NewGormOutcomeRepository creates a new GormOutcomeRepository
func NewGormOutcomeRepository(db *gorm.DB) *GormOutcomeRepository {
	return &GormOutcomeRepository{db: db}
}

// Upsert inserts the record or, on id conflict, overwrites every non-id column
func (r *GormOutcomeRepository) Upsert(ctx context.Context, rec *ledger.OutcomeRecord) (ledger.WriteOutcome, error) {
	var model models.OutcomeDataModel
	model.FromDomain(rec)

	var existing int64
	if err := r.db.WithContext(ctx).
		Model(&models.OutcomeDataModel{}).
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

// FindByID finds an outcome row by its composite id
func (r *GormOutcomeRepository) FindByID(ctx context.Context, id string) (*ledger.OutcomeRecord, error) {
	var model models.OutcomeDataModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of outcome rows matching the filter
func (r *GormOutcomeRepository) FindAll(ctx context.Context, filter ledger.RecordFilter) ([]ledger.OutcomeRecord, error) {
	var rowModels []models.OutcomeDataModel
	query := r.db.WithContext(ctx).Model(&models.OutcomeDataModel{})
	query = applyOutcomeFilter(query, filter)
	query = query.
		Order(filter.DateField + " DESC").
		Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	if err := query.Find(&rowModels).Error; err != nil {
		return nil, err
	}
	records := make([]ledger.OutcomeRecord, len(rowModels))
	for i, model := range rowModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Count counts outcome rows matching the filter, ignoring pagination
func (r *GormOutcomeRepository) Count(ctx context.Context, filter ledger.RecordFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.OutcomeDataModel{})
	query = applyOutcomeFilter(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountAll counts every outcome row
func (r *GormOutcomeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OutcomeDataModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteOlderThan removes outcome rows whose due_date is before the cutoff
func (r *GormOutcomeRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("due_date < ?", cutoff).
		Delete(&models.OutcomeDataModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// applyOutcomeFilter applies filter criteria without pagination or ordering
func applyOutcomeFilter(query *gorm.DB, filter ledger.RecordFilter) *gorm.DB {
	query = applyCommonFilter(query, filter)

	if filter.CounterpartyID != nil {
		query = query.Where("creditor_id = ?", *filter.CounterpartyID)
	}
	if filter.CounterpartyName != "" {
		query = query.Where("creditor_name ILIKE ?", "%"+filter.CounterpartyName+"%")
	}
	if filter.AuthorizationStatus != "" {
		query = query.Where("authorization_status = ?", filter.AuthorizationStatus)
	}

	return query
}
