package sync

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/shared"
	"github.com/siengefin/backend/internal/domain/synccontrol"
	"github.com/siengefin/backend/internal/infrastructure/lease"
	"github.com/siengefin/backend/internal/infrastructure/sienge"
)

// SourceClient fetches raw record batches from the Sienge bulk-data API.
type SourceClient interface {
	FetchIncome(ctx context.Context, start, end time.Time) ([]sienge.IncomeRaw, error)
	FetchOutcome(ctx context.Context, start, end time.Time) ([]sienge.OutcomeRaw, error)
}

// Planner decides the window a run will fetch.
type Planner interface {
	Plan(ctx context.Context) (synccontrol.Window, error)
}

// Options control one orchestrator invocation.
type Options struct {
	// Window, when set, bypasses planning entirely (manual sync)
	Window *synccontrol.Window
	// DataTypes restricts which ledger kinds run; empty means both
	DataTypes []ledger.DataType
}

// Orchestrator drives a full sync run: one lease, one sync_control row and
// one write transaction per ledger kind. Kinds run sequentially and
// independently; a failed income batch never blocks the outcome batch.
type Orchestrator struct {
	source          SourceClient
	planner         Planner
	recorder        *RunRecorder
	scope           TransactionScope
	runs            synccontrol.SyncRunRepository
	leases          lease.Store
	leaseTTL        time.Duration
	staleRunTimeout time.Duration
	logger          *zap.Logger
	now             func() time.Time
}

// NewOrchestrator creates an Orchestrator
func NewOrchestrator(
	source SourceClient,
	planner Planner,
	recorder *RunRecorder,
	scope TransactionScope,
	runs synccontrol.SyncRunRepository,
	leases lease.Store,
	leaseTTL time.Duration,
	staleRunTimeout time.Duration,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		source:          source,
		planner:         planner,
		recorder:        recorder,
		scope:           scope,
		runs:            runs,
		leases:          leases,
		leaseTTL:        leaseTTL,
		staleRunTimeout: staleRunTimeout,
		logger:          logger.Named("orchestrator"),
		now:             time.Now,
	}
}

// Run executes one sync invocation and reports per-kind results. The returned
// error covers invocation-level problems only (bad options, planning failure);
// per-kind outcomes live in the summary.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*RunSummary, error) {
	dataTypes := opts.DataTypes
	if len(dataTypes) == 0 {
		dataTypes = ledger.AllDataTypes()
	}
	for _, dataType := range dataTypes {
		if !dataType.IsValid() {
			return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown data type %q", dataType))
		}
	}

	var window synccontrol.Window
	if opts.Window != nil {
		window = *opts.Window
		if err := window.Validate(); err != nil {
			return nil, err
		}
	} else {
		planned, err := o.planner.Plan(ctx)
		if err != nil {
			return nil, err
		}
		window = planned
	}

	o.logger.Info("Starting sync run",
		zap.String("sync_type", string(window.SyncType)),
		zap.Time("start_date", window.Start),
		zap.Time("end_date", window.End),
	)

	summary := &RunSummary{}
	for _, dataType := range dataTypes {
		summary.Results = append(summary.Results, o.syncKind(ctx, dataType, window))
	}

	o.logger.Info("Sync run finished",
		zap.Int("total_synced", summary.TotalSynced()),
		zap.Int("total_failed", summary.TotalFailed()),
		zap.Bool("aborted", summary.Failed()),
	)

	return summary, nil
}

// syncKind runs the full lifecycle for one ledger kind.
func (o *Orchestrator) syncKind(ctx context.Context, dataType ledger.DataType, window synccontrol.Window) KindResult {
	result := KindResult{
		DataType: dataType,
		SyncType: window.SyncType,
		Start:    window.Start,
		End:      window.End,
	}
	started := o.now()
	kindLog := o.logger.With(zap.String("data_type", dataType.String()))

	acquired, err := o.leases.Acquire(ctx, dataType.String(), o.leaseTTL)
	if err != nil {
		result.Err = fmt.Errorf("acquiring sync lease: %w", err)
		return result
	}
	if !acquired {
		kindLog.Warn("Sync lease already held, skipping")
		result.Err = shared.ErrSyncInProgress
		return result
	}
	defer func() {
		if err := o.leases.Release(ctx, dataType.String()); err != nil {
			kindLog.Error("Failed to release sync lease", zap.Error(err))
		}
	}()

	if err := o.reclaimStaleRun(ctx, dataType, kindLog); err != nil {
		result.Err = err
		return result
	}

	run := synccontrol.NewSyncRun(window.SyncType, dataType, window.Start, window.End)
	o.recorder.Begin(ctx, run)

	batch := o.fetch(ctx, dataType, window, kindLog)

	writeErr := o.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		synced, inserted, updated, failed, err := batch.write(ctx, repos, kindLog)
		result.RecordsSynced = synced
		result.RecordsInserted = inserted
		result.RecordsUpdated = updated
		result.RecordsFailed = failed
		return err
	})

	result.Elapsed = o.now().Sub(started)

	if writeErr != nil {
		kindLog.Error("Sync batch aborted", zap.Error(writeErr))
		result.Err = writeErr
		o.recorder.Fail(ctx, run, writeErr.Error(), result.Elapsed)
		return result
	}

	o.recorder.Complete(ctx, run, result.RecordsSynced, result.RecordsInserted, result.RecordsUpdated, result.Elapsed)

	kindLog.Info("Sync batch completed",
		zap.Int("synced", result.RecordsSynced),
		zap.Int("inserted", result.RecordsInserted),
		zap.Int("updated", result.RecordsUpdated),
		zap.Int("failed", result.RecordsFailed),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result
}

// reclaimStaleRun enforces one run at a time per kind through the audit
// ledger. A running row younger than the stale timeout blocks the new run; an
// older one belongs to a dead process and is marked failed so the new run can
// proceed.
func (o *Orchestrator) reclaimStaleRun(ctx context.Context, dataType ledger.DataType, kindLog *zap.Logger) error {
	running, err := o.runs.FindRunning(ctx, dataType)
	if err != nil {
		return fmt.Errorf("checking for running sync: %w", err)
	}
	if running == nil {
		return nil
	}

	age := running.Age(o.now())
	if age < o.staleRunTimeout {
		kindLog.Warn("Another sync run is in flight",
			zap.String("run_id", running.ID.String()),
			zap.Duration("age", age),
		)
		return shared.ErrSyncInProgress
	}

	kindLog.Warn("Reclaiming stale sync run",
		zap.String("run_id", running.ID.String()),
		zap.Duration("age", age),
	)
	o.recorder.Fail(ctx, running, "reclaimed: exceeded stale run timeout", age)
	return nil
}

// recordBatch is a fetched batch with its per-record write loop. Fetching and
// writing differ per kind only in the record type, so the fetch step closes
// over the right normalizer and repository accessor.
type recordBatch struct {
	write func(ctx context.Context, repos TransactionalRepositories, kindLog *zap.Logger) (synced, inserted, updated, failed int, err error)
}

// fetch pulls the raw batch for the kind. A fetch failure yields an empty
// batch: the source is flaky and the next overlap window will re-cover the
// range, so the run itself still completes.
func (o *Orchestrator) fetch(ctx context.Context, dataType ledger.DataType, window synccontrol.Window, kindLog *zap.Logger) recordBatch {
	syncDate := o.now()

	switch dataType {
	case ledger.DataTypeIncome:
		raws, err := o.source.FetchIncome(ctx, window.Start, window.End)
		if err != nil {
			kindLog.Error("Fetch failed, treating as empty batch", zap.Error(err))
			raws = nil
		}
		return recordBatch{write: func(ctx context.Context, repos TransactionalRepositories, kindLog *zap.Logger) (int, int, int, int, error) {
			var synced, inserted, updated, failed int
			for _, raw := range raws {
				if err := ctx.Err(); err != nil {
					return synced, inserted, updated, failed, err
				}
				rec := NormalizeIncome(raw, syncDate)
				var outcome ledger.WriteOutcome
				err := repos.Isolated(func(txRepos TransactionalRepositories) error {
					var upsertErr error
					outcome, upsertErr = txRepos.IncomeRepo().Upsert(ctx, rec)
					return upsertErr
				})
				if err != nil {
					failed++
					kindLog.Error("Failed to upsert income record",
						zap.String("id", rec.ID),
						zap.Error(err),
					)
					continue
				}
				synced++
				if outcome == ledger.WriteInserted {
					inserted++
				} else {
					updated++
				}
			}
			return synced, inserted, updated, failed, nil
		}}

	case ledger.DataTypeOutcome:
		raws, err := o.source.FetchOutcome(ctx, window.Start, window.End)
		if err != nil {
			kindLog.Error("Fetch failed, treating as empty batch", zap.Error(err))
			raws = nil
		}
		return recordBatch{write: func(ctx context.Context, repos TransactionalRepositories, kindLog *zap.Logger) (int, int, int, int, error) {
			var synced, inserted, updated, failed int
			for _, raw := range raws {
				if err := ctx.Err(); err != nil {
					return synced, inserted, updated, failed, err
				}
				rec := NormalizeOutcome(raw, syncDate)
				var outcome ledger.WriteOutcome
				err := repos.Isolated(func(txRepos TransactionalRepositories) error {
					var upsertErr error
					outcome, upsertErr = txRepos.OutcomeRepo().Upsert(ctx, rec)
					return upsertErr
				})
				if err != nil {
					failed++
					kindLog.Error("Failed to upsert outcome record",
						zap.String("id", rec.ID),
						zap.Error(err),
					)
					continue
				}
				synced++
				if outcome == ledger.WriteInserted {
					inserted++
				} else {
					updated++
				}
			}
			return synced, inserted, updated, failed, nil
		}}

	default:
		// Run validates data types before any kind is dispatched
		return recordBatch{write: func(context.Context, TransactionalRepositories, *zap.Logger) (int, int, int, int, error) {
			return 0, 0, 0, 0, fmt.Errorf("unknown data type %q", dataType)
		}}
	}
}
