package sync

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/domain/synccontrol"
)

// RunRecorder maintains the sync_control audit ledger. Recording is strictly
// best effort: a failure to write bookkeeping is logged and swallowed so it
// can never abort a data sync that is otherwise healthy.
type RunRecorder struct {
	runs   synccontrol.SyncRunRepository
	logger *zap.Logger
}

// NewRunRecorder creates a RunRecorder
func NewRunRecorder(runs synccontrol.SyncRunRepository, logger *zap.Logger) *RunRecorder {
	return &RunRecorder{
		runs:   runs,
		logger: logger.Named("recorder"),
	}
}

// Begin records the run in the running state before any fetching starts, so
// the attempt is visible even if the process dies mid-run.
func (r *RunRecorder) Begin(ctx context.Context, run *synccontrol.SyncRun) {
	if err := r.runs.Create(ctx, run); err != nil {
		r.logger.Error("Failed to record sync run start",
			zap.String("run_id", run.ID.String()),
			zap.String("data_type", run.DataType.String()),
			zap.Error(err),
		)
	}
}

// Complete transitions the run to success and persists its final counts.
func (r *RunRecorder) Complete(ctx context.Context, run *synccontrol.SyncRun, synced, inserted, updated int, elapsed time.Duration) {
	if err := run.Complete(synced, inserted, updated, elapsed); err != nil {
		r.logger.Error("Sync run already finished",
			zap.String("run_id", run.ID.String()),
			zap.Error(err),
		)
		return
	}
	if err := r.runs.Update(ctx, run); err != nil {
		r.logger.Error("Failed to record sync run completion",
			zap.String("run_id", run.ID.String()),
			zap.String("data_type", run.DataType.String()),
			zap.Error(err),
		)
	}
}

// Fail transitions the run to failed and persists the aborting error.
func (r *RunRecorder) Fail(ctx context.Context, run *synccontrol.SyncRun, errMsg string, elapsed time.Duration) {
	if err := run.Fail(errMsg, elapsed); err != nil {
		r.logger.Error("Sync run already finished",
			zap.String("run_id", run.ID.String()),
			zap.Error(err),
		)
		return
	}
	if err := r.runs.Update(ctx, run); err != nil {
		r.logger.Error("Failed to record sync run failure",
			zap.String("run_id", run.ID.String()),
			zap.String("data_type", run.DataType.String()),
			zap.Error(err),
		)
	}
}
