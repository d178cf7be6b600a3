package sync

import (
	"time"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/synccontrol"
)

// KindResult is the outcome of syncing one ledger kind within a run.
type KindResult struct {
	DataType ledger.DataType
	SyncType synccontrol.SyncType
	Start    time.Time
	End      time.Time

	RecordsSynced   int
	RecordsInserted int
	RecordsUpdated  int
	RecordsFailed   int

	Elapsed time.Duration
	// Err is set when the kind's batch aborted as a whole. Individual record
	// failures only increment RecordsFailed.
	Err error
}

// RunSummary aggregates the per-kind results of one orchestrator invocation.
type RunSummary struct {
	Results []KindResult
}

// Failed returns true if any kind aborted
func (s *RunSummary) Failed() bool {
	for _, res := range s.Results {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// TotalSynced sums successfully written records across kinds
func (s *RunSummary) TotalSynced() int {
	total := 0
	for _, res := range s.Results {
		total += res.RecordsSynced
	}
	return total
}

// TotalFailed sums per-record failures across kinds
func (s *RunSummary) TotalFailed() int {
	total := 0
	for _, res := range s.Results {
		total += res.RecordsFailed
	}
	return total
}
