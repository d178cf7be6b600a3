package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siengefin/backend/internal/domain/ledger"
)

// IncomeDataModel is the persistence model for accounts-receivable installments.
// The primary key is the composite "<installmentId>_<billId>" identifier.
type IncomeDataModel struct {
	ID            string `gorm:"type:varchar(50);primary_key"`
	InstallmentID int64  `gorm:"not null;index:idx_income_installment"`
	BillID        int64  `gorm:"not null;index:idx_income_bill"`

	CompanyID        *int64 `gorm:"index:idx_income_company"`
	CompanyName      string `gorm:"type:varchar(255)"`
	BusinessAreaID   *int64 `gorm:"index:idx_income_business_area"`
	BusinessAreaName string `gorm:"type:varchar(255)"`
	ProjectID        *int64 `gorm:"index:idx_income_project"`
	ProjectName      string `gorm:"type:varchar(255)"`
	GroupCompanyID   *int64
	GroupCompanyName string `gorm:"type:varchar(255)"`
	HoldingID        *int64
	HoldingName      string `gorm:"type:varchar(255)"`
	SubsidiaryID     *int64
	SubsidiaryName   string `gorm:"type:varchar(255)"`
	BusinessTypeID   *int64
	BusinessTypeName string `gorm:"type:varchar(255)"`

	ClientID   *int64 `gorm:"index:idx_income_client"`
	ClientName string `gorm:"type:varchar(255);index:idx_income_client_name"`

	DocumentIdentificationID   string `gorm:"type:varchar(50)"`
	DocumentIdentificationName string `gorm:"type:varchar(255)"`
	DocumentNumber             string `gorm:"type:varchar(100)"`
	DocumentForecast           string `gorm:"type:varchar(10)"`
	OriginID                   string `gorm:"type:varchar(50)"`

	OriginalAmount         decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	DiscountAmount         decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	TaxAmount              decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	BalanceAmount          decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	CorrectedBalanceAmount decimal.NullDecimal `gorm:"type:numeric(15,2)"`

	IndexerID   *int64
	IndexerName string `gorm:"type:varchar(100)"`

	DueDate             *time.Time `gorm:"type:date;index:idx_income_due_date"`
	IssueDate           *time.Time `gorm:"type:date;index:idx_income_issue_date"`
	BillDate            *time.Time `gorm:"type:date"`
	InstallmentBaseDate *time.Time `gorm:"type:date"`

	PeriodicityType        string              `gorm:"type:varchar(50)"`
	EmbeddedInterestAmount decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	InterestType           string              `gorm:"type:varchar(50)"`
	InterestRate           decimal.NullDecimal `gorm:"type:numeric(10,4)"`
	CorrectionType         string              `gorm:"type:varchar(50)"`
	InterestBaseDate       *time.Time          `gorm:"type:date"`
	DefaulterSituation     string              `gorm:"type:varchar(50)"`
	SubJudicie             string              `gorm:"type:varchar(10)"`
	MainUnit               string              `gorm:"type:varchar(100)"`
	InstallmentNumber      string              `gorm:"type:varchar(20)"`

	PaymentTermID string `gorm:"type:varchar(50)"`
	// Misspelled upstream, preserved so exports match the source system
	PaymentTermDescrition string `gorm:"type:varchar(255)"`
	BearerID              *int64

	ReceiptsJSON           string `gorm:"type:jsonb;column:receipts"`
	ReceiptsCategoriesJSON string `gorm:"type:jsonb;column:receipts_categories"`

	SyncDate time.Time `gorm:"not null;index:idx_income_sync_date"`
}

// TableName returns the table name for GORM
func (IncomeDataModel) TableName() string {
	return "income_data"
}

// ToDomain converts the persistence model to a domain IncomeRecord.
func (m *IncomeDataModel) ToDomain() *ledger.IncomeRecord {
	return &ledger.IncomeRecord{
		RecordCore: ledger.RecordCore{
			ID:                         m.ID,
			InstallmentID:              m.InstallmentID,
			BillID:                     m.BillID,
			CompanyID:                  m.CompanyID,
			CompanyName:                m.CompanyName,
			BusinessAreaID:             m.BusinessAreaID,
			BusinessAreaName:           m.BusinessAreaName,
			ProjectID:                  m.ProjectID,
			ProjectName:                m.ProjectName,
			GroupCompanyID:             m.GroupCompanyID,
			GroupCompanyName:           m.GroupCompanyName,
			HoldingID:                  m.HoldingID,
			HoldingName:                m.HoldingName,
			SubsidiaryID:               m.SubsidiaryID,
			SubsidiaryName:             m.SubsidiaryName,
			BusinessTypeID:             m.BusinessTypeID,
			BusinessTypeName:           m.BusinessTypeName,
			DocumentIdentificationID:   m.DocumentIdentificationID,
			DocumentIdentificationName: m.DocumentIdentificationName,
			DocumentNumber:             m.DocumentNumber,
			OriginID:                   m.OriginID,
			OriginalAmount:             m.OriginalAmount,
			DiscountAmount:             m.DiscountAmount,
			TaxAmount:                  m.TaxAmount,
			BalanceAmount:              m.BalanceAmount,
			CorrectedBalanceAmount:     m.CorrectedBalanceAmount,
			IndexerID:                  m.IndexerID,
			IndexerName:                m.IndexerName,
			DueDate:                    m.DueDate,
			IssueDate:                  m.IssueDate,
			BillDate:                   m.BillDate,
			InstallmentBaseDate:        m.InstallmentBaseDate,
			SyncDate:                   m.SyncDate,
		},
		ClientID:               m.ClientID,
		ClientName:             m.ClientName,
		DocumentForecast:       m.DocumentForecast,
		PeriodicityType:        m.PeriodicityType,
		EmbeddedInterestAmount: m.EmbeddedInterestAmount,
		InterestType:           m.InterestType,
		InterestRate:           m.InterestRate,
		CorrectionType:         m.CorrectionType,
		InterestBaseDate:       m.InterestBaseDate,
		DefaulterSituation:     m.DefaulterSituation,
		SubJudicie:             m.SubJudicie,
		MainUnit:               m.MainUnit,
		InstallmentNumber:      m.InstallmentNumber,
		PaymentTermID:          m.PaymentTermID,
		PaymentTermDescrition:  m.PaymentTermDescrition,
		BearerID:               m.BearerID,
		Receipts:               m.ReceiptsJSON,
		ReceiptsCategories:     m.ReceiptsCategoriesJSON,
	}
}

// FromDomain populates the persistence model from a domain IncomeRecord.
func (m *IncomeDataModel) FromDomain(rec *ledger.IncomeRecord) {
	m.ID = rec.ID
	m.InstallmentID = rec.InstallmentID
	m.BillID = rec.BillID
	m.CompanyID = rec.CompanyID
	m.CompanyName = rec.CompanyName
	m.BusinessAreaID = rec.BusinessAreaID
	m.BusinessAreaName = rec.BusinessAreaName
	m.ProjectID = rec.ProjectID
	m.ProjectName = rec.ProjectName
	m.GroupCompanyID = rec.GroupCompanyID
	m.GroupCompanyName = rec.GroupCompanyName
	m.HoldingID = rec.HoldingID
	m.HoldingName = rec.HoldingName
	m.SubsidiaryID = rec.SubsidiaryID
	m.SubsidiaryName = rec.SubsidiaryName
	m.BusinessTypeID = rec.BusinessTypeID
	m.BusinessTypeName = rec.BusinessTypeName
	m.ClientID = rec.ClientID
	m.ClientName = rec.ClientName
	m.DocumentIdentificationID = rec.DocumentIdentificationID
	m.DocumentIdentificationName = rec.DocumentIdentificationName
	m.DocumentNumber = rec.DocumentNumber
	m.DocumentForecast = rec.DocumentForecast
	m.OriginID = rec.OriginID
	m.OriginalAmount = rec.OriginalAmount
	m.DiscountAmount = rec.DiscountAmount
	m.TaxAmount = rec.TaxAmount
	m.BalanceAmount = rec.BalanceAmount
	m.CorrectedBalanceAmount = rec.CorrectedBalanceAmount
	m.IndexerID = rec.IndexerID
	m.IndexerName = rec.IndexerName
	m.DueDate = rec.DueDate
	m.IssueDate = rec.IssueDate
	m.BillDate = rec.BillDate
	m.InstallmentBaseDate = rec.InstallmentBaseDate
	m.PeriodicityType = rec.PeriodicityType
	m.EmbeddedInterestAmount = rec.EmbeddedInterestAmount
	m.InterestType = rec.InterestType
	m.InterestRate = rec.InterestRate
	m.CorrectionType = rec.CorrectionType
	m.InterestBaseDate = rec.InterestBaseDate
	m.DefaulterSituation = rec.DefaulterSituation
	m.SubJudicie = rec.SubJudicie
	m.MainUnit = rec.MainUnit
	m.InstallmentNumber = rec.InstallmentNumber
	m.PaymentTermID = rec.PaymentTermID
	m.PaymentTermDescrition = rec.PaymentTermDescrition
	m.BearerID = rec.BearerID
	m.ReceiptsJSON = rec.Receipts
	m.ReceiptsCategoriesJSON = rec.ReceiptsCategories
	m.SyncDate = rec.SyncDate
}

// OutcomeDataModel is the persistence model for accounts-payable installments.
type OutcomeDataModel struct {
	ID            string `gorm:"type:varchar(50);primary_key"`
	InstallmentID int64  `gorm:"not null;index:idx_outcome_installment"`
	BillID        int64  `gorm:"not null;index:idx_outcome_bill"`

	CompanyID        *int64 `gorm:"index:idx_outcome_company"`
	CompanyName      string `gorm:"type:varchar(255)"`
	BusinessAreaID   *int64 `gorm:"index:idx_outcome_business_area"`
	BusinessAreaName string `gorm:"type:varchar(255)"`
	ProjectID        *int64 `gorm:"index:idx_outcome_project"`
	ProjectName      string `gorm:"type:varchar(255)"`
	GroupCompanyID   *int64
	GroupCompanyName string `gorm:"type:varchar(255)"`
	HoldingID        *int64
	HoldingName      string `gorm:"type:varchar(255)"`
	SubsidiaryID     *int64
	SubsidiaryName   string `gorm:"type:varchar(255)"`
	BusinessTypeID   *int64
	BusinessTypeName string `gorm:"type:varchar(255)"`

	CreditorID   *int64 `gorm:"index:idx_outcome_creditor"`
	CreditorName string `gorm:"type:varchar(255);index:idx_outcome_creditor_name"`

	DocumentIdentificationID   string `gorm:"type:varchar(50)"`
	DocumentIdentificationName string `gorm:"type:varchar(255)"`
	DocumentNumber             string `gorm:"type:varchar(100)"`
	ForecastDocument           string `gorm:"type:varchar(10)"`
	ConsistencyStatus          string `gorm:"type:varchar(50)"`
	OriginID                   string `gorm:"type:varchar(50)"`

	OriginalAmount         decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	DiscountAmount         decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	TaxAmount              decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	BalanceAmount          decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	CorrectedBalanceAmount decimal.NullDecimal `gorm:"type:numeric(15,2)"`

	IndexerID   *int64
	IndexerName string `gorm:"type:varchar(100)"`

	DueDate             *time.Time `gorm:"type:date;index:idx_outcome_due_date"`
	IssueDate           *time.Time `gorm:"type:date;index:idx_outcome_issue_date"`
	BillDate            *time.Time `gorm:"type:date"`
	InstallmentBaseDate *time.Time `gorm:"type:date"`

	AuthorizationStatus string `gorm:"type:varchar(50);index:idx_outcome_auth_status"`
	RegisteredUserID    *int64
	RegisteredBy        string     `gorm:"type:varchar(255)"`
	RegisteredDate      *time.Time `gorm:"type:date"`

	PaymentsJSON           string `gorm:"type:jsonb;column:payments"`
	PaymentsCategoriesJSON string `gorm:"type:jsonb;column:payments_categories"`
	DepartmentsCostsJSON   string `gorm:"type:jsonb;column:departments_costs"`
	BuildingsCostsJSON     string `gorm:"type:jsonb;column:buildings_costs"`
	AuthorizationsJSON     string `gorm:"type:jsonb;column:authorizations"`

	SyncDate time.Time `gorm:"not null;index:idx_outcome_sync_date"`
}

// TableName returns the table name for GORM
func (OutcomeDataModel) TableName() string {
	return "outcome_data"
}

// ToDomain converts the persistence model to a domain OutcomeRecord.
func (m *OutcomeDataModel) ToDomain() *ledger.OutcomeRecord {
	return &ledger.OutcomeRecord{
		RecordCore: ledger.RecordCore{
			ID:                         m.ID,
			InstallmentID:              m.InstallmentID,
			BillID:                     m.BillID,
			CompanyID:                  m.CompanyID,
			CompanyName:                m.CompanyName,
			BusinessAreaID:             m.BusinessAreaID,
			BusinessAreaName:           m.BusinessAreaName,
			ProjectID:                  m.ProjectID,
			ProjectName:                m.ProjectName,
			GroupCompanyID:             m.GroupCompanyID,
			GroupCompanyName:           m.GroupCompanyName,
			HoldingID:                  m.HoldingID,
			HoldingName:                m.HoldingName,
			SubsidiaryID:               m.SubsidiaryID,
			SubsidiaryName:             m.SubsidiaryName,
			BusinessTypeID:             m.BusinessTypeID,
			BusinessTypeName:           m.BusinessTypeName,
			DocumentIdentificationID:   m.DocumentIdentificationID,
			DocumentIdentificationName: m.DocumentIdentificationName,
			DocumentNumber:             m.DocumentNumber,
			OriginID:                   m.OriginID,
			OriginalAmount:             m.OriginalAmount,
			DiscountAmount:             m.DiscountAmount,
			TaxAmount:                  m.TaxAmount,
			BalanceAmount:              m.BalanceAmount,
			CorrectedBalanceAmount:     m.CorrectedBalanceAmount,
			IndexerID:                  m.IndexerID,
			IndexerName:                m.IndexerName,
			DueDate:                    m.DueDate,
			IssueDate:                  m.IssueDate,
			BillDate:                   m.BillDate,
			InstallmentBaseDate:        m.InstallmentBaseDate,
			SyncDate:                   m.SyncDate,
		},
		CreditorID:          m.CreditorID,
		CreditorName:        m.CreditorName,
		ForecastDocument:    m.ForecastDocument,
		ConsistencyStatus:   m.ConsistencyStatus,
		AuthorizationStatus: m.AuthorizationStatus,
		RegisteredUserID:    m.RegisteredUserID,
		RegisteredBy:        m.RegisteredBy,
		RegisteredDate:      m.RegisteredDate,
		Payments:            m.PaymentsJSON,
		PaymentsCategories:  m.PaymentsCategoriesJSON,
		DepartmentsCosts:    m.DepartmentsCostsJSON,
		BuildingsCosts:      m.BuildingsCostsJSON,
		Authorizations:      m.AuthorizationsJSON,
	}
}

// FromDomain populates the persistence model from a domain OutcomeRecord.
func (m *OutcomeDataModel) FromDomain(rec *ledger.OutcomeRecord) {
	m.ID = rec.ID
	m.InstallmentID = rec.InstallmentID
	m.BillID = rec.BillID
	m.CompanyID = rec.CompanyID
	m.CompanyName = rec.CompanyName
	m.BusinessAreaID = rec.BusinessAreaID
	m.BusinessAreaName = rec.BusinessAreaName
	m.ProjectID = rec.ProjectID
	m.ProjectName = rec.ProjectName
	m.GroupCompanyID = rec.GroupCompanyID
	m.GroupCompanyName = rec.GroupCompanyName
	m.HoldingID = rec.HoldingID
	m.HoldingName = rec.HoldingName
	m.SubsidiaryID = rec.SubsidiaryID
	m.SubsidiaryName = rec.SubsidiaryName
	m.BusinessTypeID = rec.BusinessTypeID
	m.BusinessTypeName = rec.BusinessTypeName
	m.CreditorID = rec.CreditorID
	m.CreditorName = rec.CreditorName
	m.DocumentIdentificationID = rec.DocumentIdentificationID
	m.DocumentIdentificationName = rec.DocumentIdentificationName
	m.DocumentNumber = rec.DocumentNumber
	m.ForecastDocument = rec.ForecastDocument
	m.ConsistencyStatus = rec.ConsistencyStatus
	m.OriginID = rec.OriginID
	m.OriginalAmount = rec.OriginalAmount
	m.DiscountAmount = rec.DiscountAmount
	m.TaxAmount = rec.TaxAmount
	m.BalanceAmount = rec.BalanceAmount
	m.CorrectedBalanceAmount = rec.CorrectedBalanceAmount
	m.IndexerID = rec.IndexerID
	m.IndexerName = rec.IndexerName
	m.DueDate = rec.DueDate
	m.IssueDate = rec.IssueDate
	m.BillDate = rec.BillDate
	m.InstallmentBaseDate = rec.InstallmentBaseDate
	m.AuthorizationStatus = rec.AuthorizationStatus
	m.RegisteredUserID = rec.RegisteredUserID
	m.RegisteredBy = rec.RegisteredBy
	m.RegisteredDate = rec.RegisteredDate
	m.PaymentsJSON = rec.Payments
	m.PaymentsCategoriesJSON = rec.PaymentsCategories
	m.DepartmentsCostsJSON = rec.DepartmentsCosts
	m.BuildingsCostsJSON = rec.BuildingsCosts
	m.AuthorizationsJSON = rec.Authorizations
	m.SyncDate = rec.SyncDate
}
