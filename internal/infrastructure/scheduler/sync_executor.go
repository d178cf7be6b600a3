package scheduler

import (
	"context"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/application/retention"
	appsync "github.com/siengefin/backend/internal/application/sync"
)

// DailySyncExecutor runs the incremental sync for both ledger kinds and then
// purges rows past the retention horizon.
type DailySyncExecutor struct {
	orchestrator *appsync.Orchestrator
	retention    *retention.Service
	logger       *zap.Logger
}

// NewDailySyncExecutor creates a DailySyncExecutor. The retention service may
// be nil when purging is disabled.
func NewDailySyncExecutor(orchestrator *appsync.Orchestrator, retention *retention.Service, logger *zap.Logger) *DailySyncExecutor {
	return &DailySyncExecutor{
		orchestrator: orchestrator,
		retention:    retention,
		logger:       logger,
	}
}

// RunDaily implements SyncExecutor
func (e *DailySyncExecutor) RunDaily(ctx context.Context) error {
	summary, err := e.orchestrator.Run(ctx, appsync.Options{})
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		if result.Err != nil {
			e.logger.Warn("Sync finished with a failed kind",
				zap.String("data_type", result.DataType.String()),
				zap.Error(result.Err),
			)
		}
	}

	e.logger.Info("Daily sync finished",
		zap.Int("records_synced", summary.TotalSynced()),
		zap.Int("records_failed", summary.TotalFailed()),
	)

	if e.retention == nil {
		return nil
	}

	purge, err := e.retention.Purge(ctx)
	if err != nil {
		// Purge failures must not mark the sync cycle as failed
		e.logger.Error("Retention purge failed", zap.Error(err))
		return nil
	}

	e.logger.Info("Retention purge finished",
		zap.Time("cutoff", purge.Cutoff),
		zap.Int64("income_deleted", purge.IncomeDeleted),
		zap.Int64("outcome_deleted", purge.OutcomeDeleted),
	)

	return nil
}
