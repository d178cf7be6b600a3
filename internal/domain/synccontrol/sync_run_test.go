package synccontrol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/shared"
)

func TestNewSyncRunStartsRunning(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)

	run := NewSyncRun(SyncTypeDaily, ledger.DataTypeIncome, start, end)

	assert.NotEqual(t, "", run.ID.String())
	assert.Equal(t, SyncTypeDaily, run.SyncType)
	assert.Equal(t, ledger.DataTypeIncome, run.DataType)
	assert.Equal(t, RunStatusRunning, run.Status)
	assert.False(t, run.IsTerminal())
	assert.WithinDuration(t, time.Now(), run.CreatedAt, time.Minute)
}

func TestCompleteSetsCountsAndStatus(t *testing.T) {
	run := NewSyncRun(SyncTypeDaily, ledger.DataTypeIncome, time.Now(), time.Now())

	require.NoError(t, run.Complete(31, 30, 1, 1500*time.Millisecond))

	assert.Equal(t, RunStatusSuccess, run.Status)
	assert.Equal(t, 31, run.RecordsSynced)
	assert.Equal(t, 30, run.RecordsInserted)
	assert.Equal(t, 1, run.RecordsUpdated)
	assert.InDelta(t, 1.5, run.ExecutionTimeSeconds, 0.001)
	assert.True(t, run.IsTerminal())
}

func TestFailSetsErrorMessage(t *testing.T) {
	run := NewSyncRun(SyncTypeManual, ledger.DataTypeOutcome, time.Now(), time.Now())

	require.NoError(t, run.Fail("upstream returned 503", 2*time.Second))

	assert.Equal(t, RunStatusFailed, run.Status)
	assert.Equal(t, "upstream returned 503", run.ErrorMessage)
	assert.InDelta(t, 2.0, run.ExecutionTimeSeconds, 0.001)
	assert.True(t, run.IsTerminal())
}

func TestRunFinishesExactlyOnce(t *testing.T) {
	completed := NewSyncRun(SyncTypeDaily, ledger.DataTypeIncome, time.Now(), time.Now())
	require.NoError(t, completed.Complete(1, 1, 0, time.Second))
	assert.ErrorIs(t, completed.Complete(2, 2, 0, time.Second), shared.ErrInvalidState)
	assert.ErrorIs(t, completed.Fail("late failure", time.Second), shared.ErrInvalidState)

	failed := NewSyncRun(SyncTypeDaily, ledger.DataTypeIncome, time.Now(), time.Now())
	require.NoError(t, failed.Fail("boom", time.Second))
	assert.ErrorIs(t, failed.Complete(1, 1, 0, time.Second), shared.ErrInvalidState)

	// Terminal state untouched by the rejected transition
	assert.Equal(t, RunStatusSuccess, completed.Status)
	assert.Equal(t, 1, completed.RecordsSynced)
}

func TestAgeUsesGivenClock(t *testing.T) {
	run := NewSyncRun(SyncTypeDaily, ledger.DataTypeIncome, time.Now(), time.Now())
	run.CreatedAt = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	now := time.Date(2026, 6, 1, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, 7*time.Hour+30*time.Minute, run.Age(now))
}

func TestSyncTypeIsValid(t *testing.T) {
	assert.True(t, SyncTypeHistorical.IsValid())
	assert.True(t, SyncTypeDaily.IsValid())
	assert.True(t, SyncTypeManual.IsValid())
	assert.False(t, SyncType("weekly").IsValid())
	assert.False(t, SyncType("").IsValid())
}
