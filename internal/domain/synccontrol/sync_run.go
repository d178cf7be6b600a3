package synccontrol

import (
	"time"

	"github.com/google/uuid"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/shared"
)

// SyncType classifies what kind of window a run covered
type SyncType string

const (
	// SyncTypeHistorical is the first, multi-year backfill run
	SyncTypeHistorical SyncType = "historical"
	// SyncTypeDaily is a routine incremental run with overlap
	SyncTypeDaily SyncType = "daily"
	// SyncTypeManual is a run with caller-supplied dates
	SyncTypeManual SyncType = "manual"
)

// IsValid returns true if the sync type is known
func (t SyncType) IsValid() bool {
	switch t {
	case SyncTypeHistorical, SyncTypeDaily, SyncTypeManual:
		return true
	default:
		return false
	}
}

// RunStatus is the lifecycle state of a sync run
type RunStatus string

const (
	// RunStatusRunning means the run started and has not finished
	RunStatusRunning RunStatus = "running"
	// RunStatusSuccess is the terminal state of a completed run
	RunStatusSuccess RunStatus = "success"
	// RunStatusFailed is the terminal state of an aborted run
	RunStatusFailed RunStatus = "failed"
)

// SyncRun is one row of the sync_control audit ledger. It is created in the
// running state and transitions exactly once to success or failed.
type SyncRun struct {
	ID        uuid.UUID
	SyncType  SyncType
	DataType  ledger.DataType
	StartDate time.Time
	EndDate   time.Time
	Status    RunStatus

	RecordsSynced   int
	RecordsInserted int
	RecordsUpdated  int

	ExecutionTimeSeconds float64
	ErrorMessage         string

	CreatedAt time.Time
}

// NewSyncRun creates a run in the running state for the given window
func NewSyncRun(syncType SyncType, dataType ledger.DataType, start, end time.Time) *SyncRun {
	return &SyncRun{
		ID:        uuid.New(),
		SyncType:  syncType,
		DataType:  dataType,
		StartDate: start,
		EndDate:   end,
		Status:    RunStatusRunning,
		CreatedAt: time.Now(),
	}
}

// Complete transitions the run to success with its final counts. It is an
// error to finish a run twice.
func (r *SyncRun) Complete(synced, inserted, updated int, elapsed time.Duration) error {
	if r.Status != RunStatusRunning {
		return shared.ErrInvalidState
	}
	r.Status = RunStatusSuccess
	r.RecordsSynced = synced
	r.RecordsInserted = inserted
	r.RecordsUpdated = updated
	r.ExecutionTimeSeconds = elapsed.Seconds()
	return nil
}

// Fail transitions the run to failed with the error that aborted it
func (r *SyncRun) Fail(errMsg string, elapsed time.Duration) error {
	if r.Status != RunStatusRunning {
		return shared.ErrInvalidState
	}
	r.Status = RunStatusFailed
	r.ErrorMessage = errMsg
	r.ExecutionTimeSeconds = elapsed.Seconds()
	return nil
}

// IsTerminal returns true once the run finished either way
func (r *SyncRun) IsTerminal() bool {
	return r.Status == RunStatusSuccess || r.Status == RunStatusFailed
}

// Age returns how long ago the run was created, against the given clock
func (r *SyncRun) Age(now time.Time) time.Duration {
	return now.Sub(r.CreatedAt)
}
