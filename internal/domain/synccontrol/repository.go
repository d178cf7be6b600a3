package synccontrol

import (
	"context"
	"time"

	"github.com/siengefin/backend/internal/domain/ledger"
)

// RunFilter defines filter criteria for listing sync runs
type RunFilter struct {
	DataType *ledger.DataType
	SyncType *SyncType
	Status   *RunStatus
	Limit    int
	Offset   int
}

// SyncRunRepository persists the sync_control audit ledger
type SyncRunRepository interface {
	// Create inserts the run row; callers invoke this before fetching so the
	// attempt is visible even if the process dies mid-run
	Create(ctx context.Context, run *SyncRun) error

	// Update writes the terminal state of a run
	Update(ctx context.Context, run *SyncRun) error

	// LatestSuccessfulDailyEnd returns the end_date of the most recent
	// successful daily run for the data type, or nil if there is none
	LatestSuccessfulDailyEnd(ctx context.Context, dataType ledger.DataType) (*time.Time, error)

	// FindRunning returns the most recent run still in the running state for
	// the data type, or nil if none is in flight
	FindRunning(ctx context.Context, dataType ledger.DataType) (*SyncRun, error)

	// FindAll returns runs matching the filter, newest first
	FindAll(ctx context.Context, filter RunFilter) ([]SyncRun, error)

	// Count counts runs matching the filter, ignoring pagination
	Count(ctx context.Context, filter RunFilter) (int64, error)
}
