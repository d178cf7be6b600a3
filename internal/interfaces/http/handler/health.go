package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/application/query"
	"github.com/siengefin/backend/internal/infrastructure/logger"
	"github.com/siengefin/backend/internal/infrastructure/persistence"
)

// HealthHandler serves the liveness endpoint with table totals
type HealthHandler struct {
	db            *persistence.Database
	ledgerService *query.LedgerQueryService
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database, ledgerService *query.LedgerQueryService) *HealthHandler {
	return &HealthHandler{
		db:            db,
		ledgerService: ledgerService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Check)
}

// Check pings the database and reports the overall row counts
func (h *HealthHandler) Check(c *gin.Context) {
	reqLog := logger.GetGinLogger(c)

	if err := h.db.Ping(); err != nil {
		reqLog.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "error",
		})
		return
	}

	incomeTotal, outcomeTotal, err := h.ledgerService.Totals(c.Request.Context())
	if err != nil {
		reqLog.Warn("Health check count failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"time":            time.Now().Format(time.RFC3339),
		"database":        "ok",
		"income_records":  incomeTotal,
		"outcome_records": outcomeTotal,
	})
}
