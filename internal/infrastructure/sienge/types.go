package sienge

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// envelope is the wrapper the bulk-data API puts around every result set.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// PaymentTermRaw is the nested payment term object on income records.
// "descrition" is misspelled by the upstream API.
type PaymentTermRaw struct {
	ID         string `json:"id"`
	Descrition string `json:"descrition"`
}

// IncomeRaw is an accounts-receivable installment as returned by
// GET /income. Identifier and amount fields are nullable upstream.
type IncomeRaw struct {
	InstallmentID *int64 `json:"installmentId"`
	BillID        *int64 `json:"billId"`

	CompanyID        *int64 `json:"companyId"`
	CompanyName      string `json:"companyName"`
	BusinessAreaID   *int64 `json:"businessAreaId"`
	BusinessAreaName string `json:"businessAreaName"`
	ProjectID        *int64 `json:"projectId"`
	ProjectName      string `json:"projectName"`
	GroupCompanyID   *int64 `json:"groupCompanyId"`
	GroupCompanyName string `json:"groupCompanyName"`
	HoldingID        *int64 `json:"holdingId"`
	HoldingName      string `json:"holdingName"`
	SubsidiaryID     *int64 `json:"subsidiaryId"`
	SubsidiaryName   string `json:"subsidiaryName"`
	BusinessTypeID   *int64 `json:"businessTypeId"`
	BusinessTypeName string `json:"businessTypeName"`

	ClientID   *int64 `json:"clientId"`
	ClientName string `json:"clientName"`

	DocumentIdentificationID   string `json:"documentIdentificationId"`
	DocumentIdentificationName string `json:"documentIdentificationName"`
	DocumentNumber             string `json:"documentNumber"`
	DocumentForecast           string `json:"documentForecast"`
	OriginID                   string `json:"originId"`

	OriginalAmount         decimal.NullDecimal `json:"originalAmount"`
	DiscountAmount         decimal.NullDecimal `json:"discountAmount"`
	TaxAmount              decimal.NullDecimal `json:"taxAmount"`
	BalanceAmount          decimal.NullDecimal `json:"balanceAmount"`
	CorrectedBalanceAmount decimal.NullDecimal `json:"correctedBalanceAmount"`

	IndexerID   *int64 `json:"indexerId"`
	IndexerName string `json:"indexerName"`

	DueDate             string `json:"dueDate"`
	IssueDate           string `json:"issueDate"`
	BillDate            string `json:"billDate"`
	InstallmentBaseDate string `json:"installmentBaseDate"`

	PeriodicityType        string              `json:"periodicityType"`
	EmbeddedInterestAmount decimal.NullDecimal `json:"embeddedInterestAmount"`
	InterestType           string              `json:"interestType"`
	InterestRate           decimal.NullDecimal `json:"interestRate"`
	CorrectionType         string              `json:"correctionType"`
	InterestBaseDate       string              `json:"interestBaseDate"`
	DefaulterSituation     string              `json:"defaulterSituation"`
	SubJudicie             string              `json:"subJudicie"`
	MainUnit               string              `json:"mainUnit"`
	InstallmentNumber      string              `json:"installmentNumber"`

	PaymentTerm *PaymentTermRaw `json:"paymentTerm"`
	BearerID    *int64          `json:"bearerId"`

	Receipts           json.RawMessage `json:"receipts"`
	ReceiptsCategories json.RawMessage `json:"receiptsCategories"`
}

// OutcomeRaw is an accounts-payable installment as returned by
// GET /outcome. "departamentsCosts" is misspelled by the upstream API.
type OutcomeRaw struct {
	InstallmentID *int64 `json:"installmentId"`
	BillID        *int64 `json:"billId"`

	CompanyID        *int64 `json:"companyId"`
	CompanyName      string `json:"companyName"`
	BusinessAreaID   *int64 `json:"businessAreaId"`
	BusinessAreaName string `json:"businessAreaName"`
	ProjectID        *int64 `json:"projectId"`
	ProjectName      string `json:"projectName"`
	GroupCompanyID   *int64 `json:"groupCompanyId"`
	GroupCompanyName string `json:"groupCompanyName"`
	HoldingID        *int64 `json:"holdingId"`
	HoldingName      string `json:"holdingName"`
	SubsidiaryID     *int64 `json:"subsidiaryId"`
	SubsidiaryName   string `json:"subsidiaryName"`
	BusinessTypeID   *int64 `json:"businessTypeId"`
	BusinessTypeName string `json:"businessTypeName"`

	CreditorID   *int64 `json:"creditorId"`
	CreditorName string `json:"creditorName"`

	DocumentIdentificationID   string `json:"documentIdentificationId"`
	DocumentIdentificationName string `json:"documentIdentificationName"`
	DocumentNumber             string `json:"documentNumber"`
	ForecastDocument           string `json:"forecastDocument"`
	ConsistencyStatus          string `json:"consistencyStatus"`
	OriginID                   string `json:"originId"`

	OriginalAmount         decimal.NullDecimal `json:"originalAmount"`
	DiscountAmount         decimal.NullDecimal `json:"discountAmount"`
	TaxAmount              decimal.NullDecimal `json:"taxAmount"`
	BalanceAmount          decimal.NullDecimal `json:"balanceAmount"`
	CorrectedBalanceAmount decimal.NullDecimal `json:"correctedBalanceAmount"`

	IndexerID   *int64 `json:"indexerId"`
	IndexerName string `json:"indexerName"`

	DueDate             string `json:"dueDate"`
	IssueDate           string `json:"issueDate"`
	BillDate            string `json:"billDate"`
	InstallmentBaseDate string `json:"installmentBaseDate"`

	AuthorizationStatus string `json:"authorizationStatus"`
	RegisteredUserID    *int64 `json:"registeredUserId"`
	RegisteredBy        string `json:"registeredBy"`
	RegisteredDate      string `json:"registeredDate"`

	Payments           json.RawMessage `json:"payments"`
	PaymentsCategories json.RawMessage `json:"paymentsCategories"`
	DepartmentsCosts   json.RawMessage `json:"departamentsCosts"`
	BuildingsCosts     json.RawMessage `json:"buildingsCosts"`
	Authorizations     json.RawMessage `json:"authorizations"`
}
