package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordCore holds the columns shared by both ledger tables. Every field maps
// to exactly one destination column; optional source fields stay nil/empty.
type RecordCore struct {
	// ID is the composite natural key, "<installment_id>_<bill_id>"
	ID            string
	InstallmentID int64
	BillID        int64

	CompanyID        *int64
	CompanyName      string
	BusinessAreaID   *int64
	BusinessAreaName string
	ProjectID        *int64
	ProjectName      string
	GroupCompanyID   *int64
	GroupCompanyName string
	HoldingID        *int64
	HoldingName      string
	SubsidiaryID     *int64
	SubsidiaryName   string
	BusinessTypeID   *int64
	BusinessTypeName string

	DocumentIdentificationID   string
	DocumentIdentificationName string
	DocumentNumber             string
	OriginID                   string

	OriginalAmount         decimal.NullDecimal
	DiscountAmount         decimal.NullDecimal
	TaxAmount              decimal.NullDecimal
	BalanceAmount          decimal.NullDecimal
	CorrectedBalanceAmount decimal.NullDecimal

	IndexerID   *int64
	IndexerName string

	DueDate             *time.Time
	IssueDate           *time.Time
	BillDate            *time.Time
	InstallmentBaseDate *time.Time

	// SyncDate is stamped by the upsert writer on every write
	SyncDate time.Time
}

// IncomeRecord is one accounts-receivable installment row (income_data).
type IncomeRecord struct {
	RecordCore

	ClientID   *int64
	ClientName string

	DocumentForecast string

	PeriodicityType        string
	EmbeddedInterestAmount decimal.NullDecimal
	InterestType           string
	InterestRate           decimal.NullDecimal
	CorrectionType         string
	InterestBaseDate       *time.Time
	DefaulterSituation     string
	SubJudicie             string
	MainUnit               string
	InstallmentNumber      string

	PaymentTermID string
	// PaymentTermDescrition keeps the upstream API's misspelling; the source
	// field is literally named "descrition"
	PaymentTermDescrition string
	BearerID              *int64

	// Receipts and ReceiptsCategories are opaque JSON blobs from the source
	Receipts           string
	ReceiptsCategories string
}

// OutcomeRecord is one accounts-payable installment row (outcome_data).
type OutcomeRecord struct {
	RecordCore

	CreditorID   *int64
	CreditorName string

	ForecastDocument    string
	ConsistencyStatus   string
	AuthorizationStatus string

	RegisteredUserID *int64
	RegisteredBy     string
	RegisteredDate   *time.Time

	// Opaque JSON blobs from the source
	Payments           string
	PaymentsCategories string
	DepartmentsCosts   string
	BuildingsCosts     string
	Authorizations     string
}
