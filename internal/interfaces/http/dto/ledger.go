package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/synccontrol"
)

// recordCoreResponse holds the response fields shared by both ledger kinds
type recordCoreResponse struct {
	ID            string `json:"id"`
	InstallmentID int64  `json:"installment_id"`
	BillID        int64  `json:"bill_id"`

	CompanyID        *int64 `json:"company_id"`
	CompanyName      string `json:"company_name"`
	BusinessAreaID   *int64 `json:"business_area_id"`
	BusinessAreaName string `json:"business_area_name"`
	ProjectID        *int64 `json:"project_id"`
	ProjectName      string `json:"project_name"`
	GroupCompanyID   *int64 `json:"group_company_id"`
	GroupCompanyName string `json:"group_company_name"`
	HoldingID        *int64 `json:"holding_id"`
	HoldingName      string `json:"holding_name"`
	SubsidiaryID     *int64 `json:"subsidiary_id"`
	SubsidiaryName   string `json:"subsidiary_name"`
	BusinessTypeID   *int64 `json:"business_type_id"`
	BusinessTypeName string `json:"business_type_name"`

	DocumentIdentificationID   string `json:"document_identification_id"`
	DocumentIdentificationName string `json:"document_identification_name"`
	DocumentNumber             string `json:"document_number"`
	OriginID                   string `json:"origin_id"`

	OriginalAmount         decimal.NullDecimal `json:"original_amount"`
	DiscountAmount         decimal.NullDecimal `json:"discount_amount"`
	TaxAmount              decimal.NullDecimal `json:"tax_amount"`
	BalanceAmount          decimal.NullDecimal `json:"balance_amount"`
	CorrectedBalanceAmount decimal.NullDecimal `json:"corrected_balance_amount"`

	IndexerID   *int64 `json:"indexer_id"`
	IndexerName string `json:"indexer_name"`

	DueDate             *string `json:"due_date"`
	IssueDate           *string `json:"issue_date"`
	BillDate            *string `json:"bill_date"`
	InstallmentBaseDate *string `json:"installment_base_date"`

	SyncDate time.Time `json:"sync_date"`
}

// IncomeRecordResponse is one income row as returned by the API
type IncomeRecordResponse struct {
	recordCoreResponse

	ClientID   *int64 `json:"client_id"`
	ClientName string `json:"client_name"`

	DocumentForecast string `json:"document_forecast"`

	PeriodicityType        string              `json:"periodicity_type"`
	EmbeddedInterestAmount decimal.NullDecimal `json:"embedded_interest_amount"`
	InterestType           string              `json:"interest_type"`
	InterestRate           decimal.NullDecimal `json:"interest_rate"`
	CorrectionType         string              `json:"correction_type"`
	InterestBaseDate       *string             `json:"interest_base_date"`
	DefaulterSituation     string              `json:"defaulter_situation"`
	SubJudicie             string              `json:"sub_judicie"`
	MainUnit               string              `json:"main_unit"`
	InstallmentNumber      string              `json:"installment_number"`

	PaymentTermID         string `json:"payment_term_id"`
	PaymentTermDescrition string `json:"payment_term_descrition"`
	BearerID              *int64 `json:"bearer_id"`

	Receipts           json.RawMessage `json:"receipts"`
	ReceiptsCategories json.RawMessage `json:"receipts_categories"`
}

// OutcomeRecordResponse is one outcome row as returned by the API
type OutcomeRecordResponse struct {
	recordCoreResponse

	CreditorID   *int64 `json:"creditor_id"`
	CreditorName string `json:"creditor_name"`

	ForecastDocument    string `json:"forecast_document"`
	ConsistencyStatus   string `json:"consistency_status"`
	AuthorizationStatus string `json:"authorization_status"`

	RegisteredUserID *int64  `json:"registered_user_id"`
	RegisteredBy     string  `json:"registered_by"`
	RegisteredDate   *string `json:"registered_date"`

	Payments           json.RawMessage `json:"payments"`
	PaymentsCategories json.RawMessage `json:"payments_categories"`
	DepartmentsCosts   json.RawMessage `json:"departments_costs"`
	BuildingsCosts     json.RawMessage `json:"buildings_costs"`
	Authorizations     json.RawMessage `json:"authorizations"`
}

func coreFromDomain(core ledger.RecordCore) recordCoreResponse {
	return recordCoreResponse{
		ID:                         core.ID,
		InstallmentID:              core.InstallmentID,
		BillID:                     core.BillID,
		CompanyID:                  core.CompanyID,
		CompanyName:                core.CompanyName,
		BusinessAreaID:             core.BusinessAreaID,
		BusinessAreaName:           core.BusinessAreaName,
		ProjectID:                  core.ProjectID,
		ProjectName:                core.ProjectName,
		GroupCompanyID:             core.GroupCompanyID,
		GroupCompanyName:           core.GroupCompanyName,
		HoldingID:                  core.HoldingID,
		HoldingName:                core.HoldingName,
		SubsidiaryID:               core.SubsidiaryID,
		SubsidiaryName:             core.SubsidiaryName,
		BusinessTypeID:             core.BusinessTypeID,
		BusinessTypeName:           core.BusinessTypeName,
		DocumentIdentificationID:   core.DocumentIdentificationID,
		DocumentIdentificationName: core.DocumentIdentificationName,
		DocumentNumber:             core.DocumentNumber,
		OriginID:                   core.OriginID,
		OriginalAmount:             core.OriginalAmount,
		DiscountAmount:             core.DiscountAmount,
		TaxAmount:                  core.TaxAmount,
		BalanceAmount:              core.BalanceAmount,
		CorrectedBalanceAmount:     core.CorrectedBalanceAmount,
		IndexerID:                  core.IndexerID,
		IndexerName:                core.IndexerName,
		DueDate:                    formatDate(core.DueDate),
		IssueDate:                  formatDate(core.IssueDate),
		BillDate:                   formatDate(core.BillDate),
		InstallmentBaseDate:        formatDate(core.InstallmentBaseDate),
		SyncDate:                   core.SyncDate,
	}
}

// IncomeRecordFromDomain converts a domain income record to its response shape
func IncomeRecordFromDomain(rec *ledger.IncomeRecord) IncomeRecordResponse {
	return IncomeRecordResponse{
		recordCoreResponse:     coreFromDomain(rec.RecordCore),
		ClientID:               rec.ClientID,
		ClientName:             rec.ClientName,
		DocumentForecast:       rec.DocumentForecast,
		PeriodicityType:        rec.PeriodicityType,
		EmbeddedInterestAmount: rec.EmbeddedInterestAmount,
		InterestType:           rec.InterestType,
		InterestRate:           rec.InterestRate,
		CorrectionType:         rec.CorrectionType,
		InterestBaseDate:       formatDate(rec.InterestBaseDate),
		DefaulterSituation:     rec.DefaulterSituation,
		SubJudicie:             rec.SubJudicie,
		MainUnit:               rec.MainUnit,
		InstallmentNumber:      rec.InstallmentNumber,
		PaymentTermID:          rec.PaymentTermID,
		PaymentTermDescrition:  rec.PaymentTermDescrition,
		BearerID:               rec.BearerID,
		Receipts:               blobMessage(rec.Receipts),
		ReceiptsCategories:     blobMessage(rec.ReceiptsCategories),
	}
}

// IncomeRecordsFromDomain converts a slice of domain income records
func IncomeRecordsFromDomain(records []ledger.IncomeRecord) []IncomeRecordResponse {
	out := make([]IncomeRecordResponse, len(records))
	for i := range records {
		out[i] = IncomeRecordFromDomain(&records[i])
	}
	return out
}

// OutcomeRecordFromDomain converts a domain outcome record to its response shape
func OutcomeRecordFromDomain(rec *ledger.OutcomeRecord) OutcomeRecordResponse {
	return OutcomeRecordResponse{
		recordCoreResponse:  coreFromDomain(rec.RecordCore),
		CreditorID:          rec.CreditorID,
		CreditorName:        rec.CreditorName,
		ForecastDocument:    rec.ForecastDocument,
		ConsistencyStatus:   rec.ConsistencyStatus,
		AuthorizationStatus: rec.AuthorizationStatus,
		RegisteredUserID:    rec.RegisteredUserID,
		RegisteredBy:        rec.RegisteredBy,
		RegisteredDate:      formatDate(rec.RegisteredDate),
		Payments:            blobMessage(rec.Payments),
		PaymentsCategories:  blobMessage(rec.PaymentsCategories),
		DepartmentsCosts:    blobMessage(rec.DepartmentsCosts),
		BuildingsCosts:      blobMessage(rec.BuildingsCosts),
		Authorizations:      blobMessage(rec.Authorizations),
	}
}

// OutcomeRecordsFromDomain converts a slice of domain outcome records
func OutcomeRecordsFromDomain(records []ledger.OutcomeRecord) []OutcomeRecordResponse {
	out := make([]OutcomeRecordResponse, len(records))
	for i := range records {
		out[i] = OutcomeRecordFromDomain(&records[i])
	}
	return out
}

// SyncRunResponse is one sync_control row as returned by the API
type SyncRunResponse struct {
	ID                   string    `json:"id"`
	SyncType             string    `json:"sync_type"`
	DataType             string    `json:"data_type"`
	StartDate            string    `json:"start_date"`
	EndDate              string    `json:"end_date"`
	Status               string    `json:"status"`
	RecordsSynced        int       `json:"records_synced"`
	RecordsInserted      int       `json:"records_inserted"`
	RecordsUpdated       int       `json:"records_updated"`
	ExecutionTimeSeconds float64   `json:"execution_time_seconds"`
	ErrorMessage         string    `json:"error_message,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// SyncRunFromDomain converts a domain sync run to its response shape
func SyncRunFromDomain(run *synccontrol.SyncRun) SyncRunResponse {
	return SyncRunResponse{
		ID:                   run.ID.String(),
		SyncType:             string(run.SyncType),
		DataType:             string(run.DataType),
		StartDate:            run.StartDate.Format("2006-01-02"),
		EndDate:              run.EndDate.Format("2006-01-02"),
		Status:               string(run.Status),
		RecordsSynced:        run.RecordsSynced,
		RecordsInserted:      run.RecordsInserted,
		RecordsUpdated:       run.RecordsUpdated,
		ExecutionTimeSeconds: run.ExecutionTimeSeconds,
		ErrorMessage:         run.ErrorMessage,
		CreatedAt:            run.CreatedAt,
	}
}

// SyncRunsFromDomain converts a slice of domain sync runs
func SyncRunsFromDomain(runs []synccontrol.SyncRun) []SyncRunResponse {
	out := make([]SyncRunResponse, len(runs))
	for i := range runs {
		out[i] = SyncRunFromDomain(&runs[i])
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func blobMessage(blob string) json.RawMessage {
	if blob == "" {
		return json.RawMessage("[]")
	}
	return json.RawMessage(blob)
}
