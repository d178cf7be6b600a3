package synccontrol

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siengefin/backend/internal/domain/shared"
)

func TestWindowValidate(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Window{SyncType: SyncTypeDaily, Start: start, End: end}.Validate())
	// Single day windows are legal
	assert.NoError(t, Window{SyncType: SyncTypeDaily, Start: start, End: start}.Validate())

	err := Window{SyncType: SyncTypeDaily, Start: end, End: start}.Validate()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestNewManualWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	w, err := NewManualWindow(start, end)
	require.NoError(t, err)
	assert.Equal(t, SyncTypeManual, w.SyncType)
	assert.True(t, w.Start.Equal(start))
	assert.True(t, w.End.Equal(end))

	_, err = NewManualWindow(end, start)
	assert.Error(t, err)
}
