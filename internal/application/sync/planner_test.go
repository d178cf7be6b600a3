package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/synccontrol"
)

func successfulRun(syncType synccontrol.SyncType, dataType ledger.DataType, end time.Time) *synccontrol.SyncRun {
	run := synccontrol.NewSyncRun(syncType, dataType, end.AddDate(0, 0, -7), end)
	run.Status = synccontrol.RunStatusSuccess
	return run
}

type plannerFixture struct {
	runs    *fakeRunRepo
	income  *fakeIncomeRepo
	outcome *fakeOutcomeRepo
	planner *WindowPlanner
}

func newPlannerFixture(now time.Time) *plannerFixture {
	f := &plannerFixture{
		runs:    &fakeRunRepo{},
		income:  newFakeIncomeRepo(),
		outcome: newFakeOutcomeRepo(),
	}
	f.planner = NewWindowPlanner(f.runs, f.income, f.outcome, 5, 7)
	f.planner.now = func() time.Time { return now }
	return f
}

// seedIncomeRow makes the destination store non-empty
func (f *plannerFixture) seedIncomeRow() {
	f.income.rows["1_1"] = ledger.IncomeRecord{RecordCore: ledger.RecordCore{ID: "1_1"}}
}

func TestPlanEmptyStoreIsHistorical(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	f := newPlannerFixture(now)

	window, err := f.planner.Plan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, synccontrol.SyncTypeHistorical, window.SyncType)
	assert.Equal(t, now.AddDate(-5, 0, 0), window.Start)
	assert.Equal(t, now, window.End)
}

func TestPlanEmptyStoreIsHistoricalDespiteRunHistory(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	f := newPlannerFixture(now)
	ctx := context.Background()

	// runs recorded but tables since purged: emptiness wins
	require.NoError(t, f.runs.Create(ctx, successfulRun(synccontrol.SyncTypeDaily, ledger.DataTypeIncome, now.AddDate(0, 0, -1))))

	window, err := f.planner.Plan(ctx)
	require.NoError(t, err)

	assert.Equal(t, synccontrol.SyncTypeHistorical, window.SyncType)
}

func TestPlanAfterBackfillFallsBackToOverlap(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	f := newPlannerFixture(now)
	ctx := context.Background()

	// a completed backfill leaves rows but no daily anchor
	f.seedIncomeRow()
	require.NoError(t, f.runs.Create(ctx, successfulRun(synccontrol.SyncTypeHistorical, ledger.DataTypeIncome, now)))
	require.NoError(t, f.runs.Create(ctx, successfulRun(synccontrol.SyncTypeHistorical, ledger.DataTypeOutcome, now)))

	window, err := f.planner.Plan(ctx)
	require.NoError(t, err)

	assert.Equal(t, synccontrol.SyncTypeDaily, window.SyncType)
	assert.Equal(t, now.AddDate(0, 0, -7), window.Start)
	assert.Equal(t, now, window.End)
}

func TestPlanDailyAnchorsOnEarlierKind(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	f := newPlannerFixture(now)
	ctx := context.Background()
	f.seedIncomeRow()

	// income is ahead of outcome; the window must anchor on the laggard
	require.NoError(t, f.runs.Create(ctx, successfulRun(synccontrol.SyncTypeDaily, ledger.DataTypeIncome, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, f.runs.Create(ctx, successfulRun(synccontrol.SyncTypeDaily, ledger.DataTypeOutcome, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))))

	window, err := f.planner.Plan(ctx)
	require.NoError(t, err)

	assert.Equal(t, synccontrol.SyncTypeDaily, window.SyncType)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, now, window.End)
}

func TestPlanDailyWithOneKindMissing(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	f := newPlannerFixture(now)
	ctx := context.Background()
	f.seedIncomeRow()

	require.NoError(t, f.runs.Create(ctx, successfulRun(synccontrol.SyncTypeDaily, ledger.DataTypeIncome, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))))

	window, err := f.planner.Plan(ctx)
	require.NoError(t, err)

	assert.Equal(t, synccontrol.SyncTypeDaily, window.SyncType)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), window.Start)
}

func TestPlanIgnoresFailedAndManualRuns(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	f := newPlannerFixture(now)
	ctx := context.Background()
	f.seedIncomeRow()

	failed := synccontrol.NewSyncRun(synccontrol.SyncTypeDaily, ledger.DataTypeIncome, now.AddDate(0, 0, -3), now)
	failed.Status = synccontrol.RunStatusFailed
	require.NoError(t, f.runs.Create(ctx, failed))

	require.NoError(t, f.runs.Create(ctx, successfulRun(synccontrol.SyncTypeManual, ledger.DataTypeIncome, now.AddDate(0, 0, -1))))

	window, err := f.planner.Plan(ctx)
	require.NoError(t, err)

	// neither run is an anchor, so the window is the bare overlap
	assert.Equal(t, synccontrol.SyncTypeDaily, window.SyncType)
	assert.Equal(t, now.AddDate(0, 0, -7), window.Start)
}

func TestPlanWindowStartNeverAfterNow(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	f := newPlannerFixture(now)
	ctx := context.Background()
	f.seedIncomeRow()

	// an anchor in the future (clock skew) must not invert the window
	require.NoError(t, f.runs.Create(ctx, successfulRun(synccontrol.SyncTypeDaily, ledger.DataTypeIncome, now.AddDate(0, 0, 10))))

	window, err := f.planner.Plan(ctx)
	require.NoError(t, err)

	assert.NoError(t, window.Validate())
	assert.False(t, window.Start.After(window.End))
}
