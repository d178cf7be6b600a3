package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/domain/synccontrol"
)

// SyncRunQueryService serves read-only queries over the sync_control ledger.
type SyncRunQueryService struct {
	runs   synccontrol.SyncRunRepository
	logger *zap.Logger
}

// NewSyncRunQueryService creates a SyncRunQueryService
func NewSyncRunQueryService(runs synccontrol.SyncRunRepository, logger *zap.Logger) *SyncRunQueryService {
	return &SyncRunQueryService{
		runs:   runs,
		logger: logger.Named("query"),
	}
}

// ListRuns returns runs matching the filter, newest first, plus the total
// match count ignoring pagination.
func (s *SyncRunQueryService) ListRuns(ctx context.Context, filter synccontrol.RunFilter) ([]synccontrol.SyncRun, int64, error) {
	total, err := s.runs.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	runs, err := s.runs.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}
