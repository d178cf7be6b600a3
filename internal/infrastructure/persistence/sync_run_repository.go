package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/synccontrol"
	"github.com/siengefin/backend/internal/infrastructure/persistence/models"
)

// GormSyncRunRepository implements synccontrol.SyncRunRepository using GORM
type GormSyncRunRepository struct {
	db *gorm.DB
}

// NewGormSyncRunRepository creates a new GormSyncRunRepository
func NewGormSyncRunRepository(db *gorm.DB) *GormSyncRunRepository {
	return &GormSyncRunRepository{db: db}
}

// Create inserts the run row
func (r *GormSyncRunRepository) Create(ctx context.Context, run *synccontrol.SyncRun) error {
	var model models.SyncControlModel
	model.FromDomain(run)
	return r.db.WithContext(ctx).Create(&model).Error
}

// Update writes the current state of a run
func (r *GormSyncRunRepository) Update(ctx context.Context, run *synccontrol.SyncRun) error {
	var model models.SyncControlModel
	model.FromDomain(run)
	return r.db.WithContext(ctx).Save(&model).Error
}

// LatestSuccessfulDailyEnd returns the end_date of the most recent successful
// daily run for the data type, or nil when no daily run has succeeded yet
func (r *GormSyncRunRepository) LatestSuccessfulDailyEnd(ctx context.Context, dataType ledger.DataType) (*time.Time, error) {
	var model models.SyncControlModel
	err := r.db.WithContext(ctx).
		Where("data_type = ? AND sync_type = ? AND status = ?",
			string(dataType), string(synccontrol.SyncTypeDaily), string(synccontrol.RunStatusSuccess)).
		Order("end_date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	end := model.EndDate
	return &end, nil
}

// FindRunning returns the most recent run still in the running state for the
// data type, or nil when none is in flight
func (r *GormSyncRunRepository) FindRunning(ctx context.Context, dataType ledger.DataType) (*synccontrol.SyncRun, error) {
	var model models.SyncControlModel
	err := r.db.WithContext(ctx).
		Where("data_type = ? AND status = ?",
			string(dataType), string(synccontrol.RunStatusRunning)).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns runs matching the filter, newest first
func (r *GormSyncRunRepository) FindAll(ctx context.Context, filter synccontrol.RunFilter) ([]synccontrol.SyncRun, error) {
	var runModels []models.SyncControlModel
	query := r.db.WithContext(ctx).Model(&models.SyncControlModel{})
	query = applyRunFilter(query, filter)
	query = query.Order("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&runModels).Error; err != nil {
		return nil, err
	}
	runs := make([]synccontrol.SyncRun, len(runModels))
	for i, model := range runModels {
		runs[i] = *model.ToDomain()
	}
	return runs, nil
}

// Count counts runs matching the filter, ignoring pagination
func (r *GormSyncRunRepository) Count(ctx context.Context, filter synccontrol.RunFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SyncControlModel{})
	query = applyRunFilter(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyRunFilter applies filter criteria without pagination
func applyRunFilter(query *gorm.DB, filter synccontrol.RunFilter) *gorm.DB {
	if filter.DataType != nil {
		query = query.Where("data_type = ?", string(*filter.DataType))
	}
	if filter.SyncType != nil {
		query = query.Where("sync_type = ?", string(*filter.SyncType))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	return query
}
