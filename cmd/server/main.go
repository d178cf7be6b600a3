package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/application/query"
	"github.com/siengefin/backend/internal/application/retention"
	appsync "github.com/siengefin/backend/internal/application/sync"
	"github.com/siengefin/backend/internal/infrastructure/config"
	"github.com/siengefin/backend/internal/infrastructure/lease"
	"github.com/siengefin/backend/internal/infrastructure/logger"
	"github.com/siengefin/backend/internal/infrastructure/persistence"
	"github.com/siengefin/backend/internal/infrastructure/scheduler"
	"github.com/siengefin/backend/internal/infrastructure/sienge"
	"github.com/siengefin/backend/internal/interfaces/http/handler"
	"github.com/siengefin/backend/internal/interfaces/http/middleware"
	"github.com/siengefin/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Sienge sync service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database with GORM logging through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	incomeRepo := persistence.NewGormIncomeRepository(db.DB)
	outcomeRepo := persistence.NewGormOutcomeRepository(db.DB)
	runRepo := persistence.NewGormSyncRunRepository(db.DB)

	// Read-side services
	ledgerService := query.NewLedgerQueryService(incomeRepo, outcomeRepo, log)
	runService := query.NewSyncRunQueryService(runRepo, log)

	// Sync pipeline
	leaseStore, err := lease.NewStoreFactory(cfg.Redis,
		lease.WithLogger(log),
		lease.WithInMemoryFallback(cfg.App.Env != "production"),
	).CreateStore()
	if err != nil {
		log.Fatal("Failed to create lease store", zap.Error(err))
	}
	defer func() {
		if err := leaseStore.Close(); err != nil {
			log.Error("Error closing lease store", zap.Error(err))
		}
	}()

	siengeClient := sienge.NewClient(cfg, log)
	planner := appsync.NewWindowPlanner(runRepo, incomeRepo, outcomeRepo, cfg.Sync.BackfillYears, cfg.Sync.OverlapDays)
	recorder := appsync.NewRunRecorder(runRepo, log)
	scope := persistence.NewGormTransactionScope(db.DB)
	orchestrator := appsync.NewOrchestrator(
		siengeClient,
		planner,
		recorder,
		scope,
		runRepo,
		leaseStore,
		cfg.Sync.LeaseTTL,
		cfg.Sync.StaleRunTimeout,
		log,
	)

	var retentionService *retention.Service
	if cfg.Retention.Months > 0 {
		retentionService = retention.NewService(incomeRepo, outcomeRepo, cfg.Retention.Months, log)
	}

	// HTTP engine and middleware stack
	middleware.SetupValidator()
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if cfg.HTTP.RateLimitRequests > 0 {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	// Routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewHealthHandler(db, ledgerService))
	r.Register(handler.NewLedgerHandler(ledgerService))
	r.Register(handler.NewSyncRunHandler(runService))
	r.Setup()

	// Simple ping outside API versioning for load balancer checks
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// In-process daily sync trigger
	var trigger *scheduler.DailyTrigger
	if cfg.Sync.DailyEnabled {
		executor := scheduler.NewDailySyncExecutor(orchestrator, retentionService, log)
		trigger = scheduler.NewDailyTrigger(scheduler.DailyTriggerConfig{
			Hour:          cfg.Sync.DailyHour,
			Minute:        cfg.Sync.DailyMinute,
			CheckInterval: time.Minute,
		}, executor, log)
		if err := trigger.Start(context.Background()); err != nil {
			log.Fatal("Failed to start daily sync trigger", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if trigger != nil {
		if err := trigger.Stop(ctx); err != nil {
			log.Error("Failed to stop daily sync trigger", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
