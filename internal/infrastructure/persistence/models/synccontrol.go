package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/synccontrol"
)

// SyncControlModel is the persistence model for the sync run audit ledger.
type SyncControlModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	SyncType             string    `gorm:"type:varchar(20);not null;index:idx_sync_control_type"`
	DataType             string    `gorm:"type:varchar(10);not null;index:idx_sync_control_data_type"`
	StartDate            time.Time `gorm:"type:date;not null"`
	EndDate              time.Time `gorm:"type:date;not null"`
	Status               string    `gorm:"type:varchar(20);not null;index:idx_sync_control_status"`
	RecordsSynced        int       `gorm:"not null;default:0"`
	RecordsInserted      int       `gorm:"not null;default:0"`
	RecordsUpdated       int       `gorm:"not null;default:0"`
	ExecutionTimeSeconds float64   `gorm:"type:numeric(10,2);not null;default:0"`
	ErrorMessage         string    `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"not null;index:idx_sync_control_created_at"`
}

// TableName returns the table name for GORM
func (SyncControlModel) TableName() string {
	return "sync_control"
}

// ToDomain converts the persistence model to a domain SyncRun.
func (m *SyncControlModel) ToDomain() *synccontrol.SyncRun {
	return &synccontrol.SyncRun{
		ID:                   m.ID,
		SyncType:             synccontrol.SyncType(m.SyncType),
		DataType:             ledger.DataType(m.DataType),
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		Status:               synccontrol.RunStatus(m.Status),
		RecordsSynced:        m.RecordsSynced,
		RecordsInserted:      m.RecordsInserted,
		RecordsUpdated:       m.RecordsUpdated,
		ExecutionTimeSeconds: m.ExecutionTimeSeconds,
		ErrorMessage:         m.ErrorMessage,
		CreatedAt:            m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain SyncRun.
func (m *SyncControlModel) FromDomain(run *synccontrol.SyncRun) {
	m.ID = run.ID
	m.SyncType = string(run.SyncType)
	m.DataType = string(run.DataType)
	m.StartDate = run.StartDate
	m.EndDate = run.EndDate
	m.Status = string(run.Status)
	m.RecordsSynced = run.RecordsSynced
	m.RecordsInserted = run.RecordsInserted
	m.RecordsUpdated = run.RecordsUpdated
	m.ExecutionTimeSeconds = run.ExecutionTimeSeconds
	m.ErrorMessage = run.ErrorMessage
	m.CreatedAt = run.CreatedAt
}
