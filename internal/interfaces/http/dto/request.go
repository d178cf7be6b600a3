package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siengefin/backend/internal/domain/ledger"
)

const queryDateLayout = "2006-01-02"

// IncomeQueryRequest binds the query parameters of GET /income
type IncomeQueryRequest struct {
	CompanyID      *int64  `form:"company_id"`
	CompanyName    string  `form:"company_name"`
	ClientID       *int64  `form:"client_id"`
	ClientName     string  `form:"client_name"`
	ProjectID      *int64  `form:"project_id"`
	BusinessAreaID *int64  `form:"business_area_id"`
	StartDate      string  `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate        string  `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	DateField      string  `form:"date_field"`
	MinAmount      *string `form:"min_amount"`
	MaxAmount      *string `form:"max_amount"`
	Limit          int     `form:"limit"`
	Offset         int     `form:"offset"`
}

// ToFilter converts the request to a domain filter
func (r *IncomeQueryRequest) ToFilter() (ledger.RecordFilter, error) {
	filter := ledger.RecordFilter{
		CompanyID:        r.CompanyID,
		CompanyName:      r.CompanyName,
		CounterpartyID:   r.ClientID,
		CounterpartyName: r.ClientName,
		ProjectID:        r.ProjectID,
		BusinessAreaID:   r.BusinessAreaID,
		DateField:        r.DateField,
		Limit:            r.Limit,
		Offset:           r.Offset,
	}
	return fillRanges(filter, r.StartDate, r.EndDate, r.MinAmount, r.MaxAmount)
}

// OutcomeQueryRequest binds the query parameters of GET /outcome
type OutcomeQueryRequest struct {
	CompanyID           *int64  `form:"company_id"`
	CompanyName         string  `form:"company_name"`
	CreditorID          *int64  `form:"creditor_id"`
	CreditorName        string  `form:"creditor_name"`
	ProjectID           *int64  `form:"project_id"`
	BusinessAreaID      *int64  `form:"business_area_id"`
	AuthorizationStatus string  `form:"authorization_status"`
	StartDate           string  `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate             string  `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	DateField           string  `form:"date_field"`
	MinAmount           *string `form:"min_amount"`
	MaxAmount           *string `form:"max_amount"`
	Limit               int     `form:"limit"`
	Offset              int     `form:"offset"`
}

// ToFilter converts the request to a domain filter
func (r *OutcomeQueryRequest) ToFilter() (ledger.RecordFilter, error) {
	filter := ledger.RecordFilter{
		CompanyID:           r.CompanyID,
		CompanyName:         r.CompanyName,
		CounterpartyID:      r.CreditorID,
		CounterpartyName:    r.CreditorName,
		ProjectID:           r.ProjectID,
		BusinessAreaID:      r.BusinessAreaID,
		AuthorizationStatus: r.AuthorizationStatus,
		DateField:           r.DateField,
		Limit:               r.Limit,
		Offset:              r.Offset,
	}
	return fillRanges(filter, r.StartDate, r.EndDate, r.MinAmount, r.MaxAmount)
}

// fillRanges parses the date and amount range parameters into the filter
func fillRanges(filter ledger.RecordFilter, startDate, endDate string, minAmount, maxAmount *string) (ledger.RecordFilter, error) {
	if startDate != "" {
		parsed, err := time.Parse(queryDateLayout, startDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &parsed
	}
	if endDate != "" {
		parsed, err := time.Parse(queryDateLayout, endDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &parsed
	}
	if minAmount != nil && *minAmount != "" {
		parsed, err := decimal.NewFromString(*minAmount)
		if err != nil {
			return filter, err
		}
		filter.MinAmount = &parsed
	}
	if maxAmount != nil && *maxAmount != "" {
		parsed, err := decimal.NewFromString(*maxAmount)
		if err != nil {
			return filter, err
		}
		filter.MaxAmount = &parsed
	}
	return filter, nil
}

// SyncRunQueryRequest binds the query parameters of GET /sync-runs
type SyncRunQueryRequest struct {
	DataType string `form:"data_type"`
	SyncType string `form:"sync_type"`
	Status   string `form:"status"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
