package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/application/retention"
	appsync "github.com/siengefin/backend/internal/application/sync"
	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/synccontrol"
	"github.com/siengefin/backend/internal/infrastructure/config"
	"github.com/siengefin/backend/internal/infrastructure/lease"
	"github.com/siengefin/backend/internal/infrastructure/logger"
	"github.com/siengefin/backend/internal/infrastructure/persistence"
	"github.com/siengefin/backend/internal/infrastructure/sienge"
)

const dateLayout = "2006-01-02"

func main() {
	var (
		startDate string
		endDate   string
		dataType  string
		purge     bool
		logLevel  string
	)

	flag.StringVar(&startDate, "start-date", "", "Manual window start (YYYY-MM-DD); requires -end-date")
	flag.StringVar(&endDate, "end-date", "", "Manual window end (YYYY-MM-DD); requires -start-date")
	flag.StringVar(&dataType, "data-type", "all", "Which kinds to sync: income, outcome or all")
	flag.BoolVar(&purge, "purge", false, "Purge rows past the retention horizon after syncing")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	opts, err := buildOptions(startDate, endDate, dataType)
	if err != nil {
		log.Fatal("Invalid arguments", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	incomeRepo := persistence.NewGormIncomeRepository(db.DB)
	outcomeRepo := persistence.NewGormOutcomeRepository(db.DB)
	runRepo := persistence.NewGormSyncRunRepository(db.DB)

	leaseStore, err := lease.NewStoreFactory(cfg.Redis,
		lease.WithLogger(log),
		lease.WithInMemoryFallback(true),
	).CreateStore()
	if err != nil {
		log.Fatal("Failed to create lease store", zap.Error(err))
	}
	defer func() {
		_ = leaseStore.Close()
	}()

	orchestrator := appsync.NewOrchestrator(
		sienge.NewClient(cfg, log),
		appsync.NewWindowPlanner(runRepo, incomeRepo, outcomeRepo, cfg.Sync.BackfillYears, cfg.Sync.OverlapDays),
		appsync.NewRunRecorder(runRepo, log),
		persistence.NewGormTransactionScope(db.DB),
		runRepo,
		leaseStore,
		cfg.Sync.LeaseTTL,
		cfg.Sync.StaleRunTimeout,
		log,
	)

	ctx := context.Background()
	summary, err := orchestrator.Run(ctx, opts)
	if err != nil {
		log.Fatal("Sync failed", zap.Error(err))
	}

	for _, result := range summary.Results {
		fields := []zap.Field{
			zap.String("data_type", result.DataType.String()),
			zap.String("sync_type", string(result.SyncType)),
			zap.String("window_start", result.Start.Format(dateLayout)),
			zap.String("window_end", result.End.Format(dateLayout)),
			zap.Int("synced", result.RecordsSynced),
			zap.Int("inserted", result.RecordsInserted),
			zap.Int("updated", result.RecordsUpdated),
			zap.Int("failed", result.RecordsFailed),
			zap.Duration("elapsed", result.Elapsed),
		}
		if result.Err != nil {
			log.Error("Sync kind failed", append(fields, zap.Error(result.Err))...)
		} else {
			log.Info("Sync kind finished", fields...)
		}
	}

	if purge && cfg.Retention.Months > 0 {
		purgeResult, err := retention.NewService(incomeRepo, outcomeRepo, cfg.Retention.Months, log).Purge(ctx)
		if err != nil {
			log.Error("Retention purge failed", zap.Error(err))
			os.Exit(1)
		}
		log.Info("Retention purge finished",
			zap.Time("cutoff", purgeResult.Cutoff),
			zap.Int64("income_deleted", purgeResult.IncomeDeleted),
			zap.Int64("outcome_deleted", purgeResult.OutcomeDeleted),
		)
	}

	if summary.Failed() {
		os.Exit(1)
	}
}

func buildOptions(startDate, endDate, dataType string) (appsync.Options, error) {
	var opts appsync.Options

	if (startDate == "") != (endDate == "") {
		return opts, fmt.Errorf("-start-date and -end-date must be given together")
	}

	if startDate != "" {
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return opts, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return opts, fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
		window, err := synccontrol.NewManualWindow(start, end)
		if err != nil {
			return opts, err
		}
		opts.Window = &window
	}

	switch dataType {
	case "", "all":
	case "income":
		opts.DataTypes = []ledger.DataType{ledger.DataTypeIncome}
	case "outcome":
		opts.DataTypes = []ledger.DataType{ledger.DataTypeOutcome}
	default:
		return opts, fmt.Errorf("unknown data type %q (want income, outcome or all)", dataType)
	}

	return opts, nil
}
