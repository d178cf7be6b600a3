package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/siengefin/backend/internal/application/query"
	"github.com/siengefin/backend/internal/interfaces/http/dto"
	"github.com/siengefin/backend/internal/interfaces/http/middleware"
)

// LedgerHandler serves the read-only income and outcome endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *query.LedgerQueryService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *query.LedgerQueryService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/income", h.ListIncome)
	rg.GET("/income/:id", h.GetIncome)
	rg.GET("/outcome", h.ListOutcome)
	rg.GET("/outcome/:id", h.GetOutcome)
}

// ListIncome returns a filtered, paginated page of income rows
func (h *LedgerHandler) ListIncome(c *gin.Context) {
	var req dto.IncomeQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := filter.Normalize(); err != nil {
		h.HandleError(c, err)
		return
	}

	records, total, err := h.ledgerService.ListIncome(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.List(c, dto.IncomeRecordsFromDomain(records), total, len(records), filter.Limit, filter.Offset)
}

// GetIncome returns one income row by its composite id
func (h *LedgerHandler) GetIncome(c *gin.Context) {
	id := c.Param("id")

	record, err := h.ledgerService.GetIncomeByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.IncomeRecordFromDomain(record))
}

// ListOutcome returns a filtered, paginated page of outcome rows
func (h *LedgerHandler) ListOutcome(c *gin.Context) {
	var req dto.OutcomeQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := filter.Normalize(); err != nil {
		h.HandleError(c, err)
		return
	}

	records, total, err := h.ledgerService.ListOutcome(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.List(c, dto.OutcomeRecordsFromDomain(records), total, len(records), filter.Limit, filter.Offset)
}

// GetOutcome returns one outcome row by its composite id
func (h *LedgerHandler) GetOutcome(c *gin.Context) {
	id := c.Param("id")

	record, err := h.ledgerService.GetOutcomeByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.OutcomeRecordFromDomain(record))
}
