package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/siengefin/backend/internal/application/query"
	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/shared"
	"github.com/siengefin/backend/internal/domain/synccontrol"
	"github.com/siengefin/backend/internal/interfaces/http/dto"
	"github.com/siengefin/backend/internal/interfaces/http/middleware"
)

// SyncRunHandler serves the sync_control audit endpoints
type SyncRunHandler struct {
	BaseHandler
	runService *query.SyncRunQueryService
}

// NewSyncRunHandler creates a new SyncRunHandler
func NewSyncRunHandler(runService *query.SyncRunQueryService) *SyncRunHandler {
	return &SyncRunHandler{
		runService: runService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *SyncRunHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sync-runs", h.ListRuns)
}

// ListRuns returns sync runs newest first, optionally filtered by data type,
// sync type and status
func (h *SyncRunHandler) ListRuns(c *gin.Context) {
	var req dto.SyncRunQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	filter, err := runFilterFromRequest(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	runs, total, err := h.runService.ListRuns(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.List(c, dto.SyncRunsFromDomain(runs), total, len(runs), filter.Limit, filter.Offset)
}

func runFilterFromRequest(req dto.SyncRunQueryRequest) (synccontrol.RunFilter, error) {
	filter := synccontrol.RunFilter{
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	if req.DataType != "" {
		dataType := ledger.DataType(req.DataType)
		if !dataType.IsValid() {
			return filter, shared.NewDomainError("INVALID_INPUT", "unknown data type: "+req.DataType)
		}
		filter.DataType = &dataType
	}
	if req.SyncType != "" {
		syncType := synccontrol.SyncType(req.SyncType)
		if !syncType.IsValid() {
			return filter, shared.NewDomainError("INVALID_INPUT", "unknown sync type: "+req.SyncType)
		}
		filter.SyncType = &syncType
	}
	if req.Status != "" {
		status := synccontrol.RunStatus(req.Status)
		switch status {
		case synccontrol.RunStatusRunning, synccontrol.RunStatusSuccess, synccontrol.RunStatusFailed:
			filter.Status = &status
		default:
			return filter, shared.NewDomainError("INVALID_INPUT", "unknown status: "+req.Status)
		}
	}

	if filter.Limit <= 0 {
		filter.Limit = ledger.DefaultLimit
	}
	if filter.Limit > ledger.MaxLimit {
		return filter, shared.NewDomainError("INVALID_INPUT", "limit cannot exceed 1000")
	}
	if filter.Offset < 0 {
		return filter, shared.NewDomainError("INVALID_INPUT", "offset cannot be negative")
	}

	return filter, nil
}
