package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/synccontrol"
)

// WindowPlanner decides the date range a sync run will fetch. The first run
// ever, detected by both ledger tables being empty, is a multi-year historical
// backfill; every later run is a daily incremental window anchored on the last
// successful daily run, re-fetching a trailing overlap so late postings in the
// source are not missed. With rows present but no daily anchor yet (right
// after the backfill), the window falls back to the bare overlap.
type WindowPlanner struct {
	runs          synccontrol.SyncRunRepository
	income        ledger.IncomeRepository
	outcome       ledger.OutcomeRepository
	backfillYears int
	overlapDays   int
	now           func() time.Time
}

// NewWindowPlanner creates a WindowPlanner
func NewWindowPlanner(
	runs synccontrol.SyncRunRepository,
	income ledger.IncomeRepository,
	outcome ledger.OutcomeRepository,
	backfillYears, overlapDays int,
) *WindowPlanner {
	return &WindowPlanner{
		runs:          runs,
		income:        income,
		outcome:       outcome,
		backfillYears: backfillYears,
		overlapDays:   overlapDays,
		now:           time.Now,
	}
}

// Plan computes one window shared by both ledger kinds. Using the earlier of
// the two last successful daily end dates keeps the kinds aligned even when
// one of them has fallen behind.
func (p *WindowPlanner) Plan(ctx context.Context) (synccontrol.Window, error) {
	now := p.now()

	empty, err := p.storeIsEmpty(ctx)
	if err != nil {
		return synccontrol.Window{}, fmt.Errorf("planning sync window: %w", err)
	}
	if empty {
		return synccontrol.Window{
			SyncType: synccontrol.SyncTypeHistorical,
			Start:    now.AddDate(-p.backfillYears, 0, 0),
			End:      now,
		}, nil
	}

	var anchor *time.Time
	for _, dataType := range ledger.AllDataTypes() {
		end, err := p.runs.LatestSuccessfulDailyEnd(ctx, dataType)
		if err != nil {
			return synccontrol.Window{}, fmt.Errorf("planning sync window: %w", err)
		}
		if end == nil {
			continue
		}
		if anchor == nil || end.Before(*anchor) {
			anchor = end
		}
	}

	start := now.AddDate(0, 0, -p.overlapDays)
	if anchor != nil {
		start = anchor.AddDate(0, 0, -p.overlapDays)
	}
	if start.After(now) {
		start = now
	}

	return synccontrol.Window{
		SyncType: synccontrol.SyncTypeDaily,
		Start:    start,
		End:      now,
	}, nil
}

// storeIsEmpty reports whether neither ledger table holds any rows yet
func (p *WindowPlanner) storeIsEmpty(ctx context.Context) (bool, error) {
	incomeCount, err := p.income.CountAll(ctx)
	if err != nil {
		return false, fmt.Errorf("counting income rows: %w", err)
	}
	if incomeCount > 0 {
		return false, nil
	}
	outcomeCount, err := p.outcome.CountAll(ctx)
	if err != nil {
		return false, fmt.Errorf("counting outcome rows: %w", err)
	}
	return outcomeCount == 0, nil
}
