package synccontrol

import (
	"time"

	"github.com/siengefin/backend/internal/domain/shared"
)

// Window is the date range a sync run will fetch, plus how it was decided.
// It is derived from sync history at orchestration start, never stored.
type Window struct {
	SyncType SyncType
	Start    time.Time
	End      time.Time
}

// Validate rejects inverted windows
func (w Window) Validate() error {
	if w.End.Before(w.Start) {
		return shared.NewDomainError("INVALID_INPUT", "sync window end precedes start")
	}
	return nil
}

// NewManualWindow builds a caller-supplied window, bypassing planning
func NewManualWindow(start, end time.Time) (Window, error) {
	w := Window{SyncType: SyncTypeManual, Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}
