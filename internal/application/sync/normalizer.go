package sync

import (
	"encoding/json"
	"time"

	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/infrastructure/sienge"
)

const sourceDateLayout = "2006-01-02"

// NormalizeIncome maps a raw bulk-data income payload onto a domain record.
// Missing identifiers normalize to zero so the composite id stays
// deterministic for whatever the source sent.
func NormalizeIncome(raw sienge.IncomeRaw, syncDate time.Time) *ledger.IncomeRecord {
	installmentID := int64OrZero(raw.InstallmentID)
	billID := int64OrZero(raw.BillID)

	rec := &ledger.IncomeRecord{
		RecordCore: ledger.RecordCore{
			ID:                         ledger.CompositeID(installmentID, billID),
			InstallmentID:              installmentID,
			BillID:                     billID,
			CompanyID:                  raw.CompanyID,
			CompanyName:                raw.CompanyName,
			BusinessAreaID:             raw.BusinessAreaID,
			BusinessAreaName:           raw.BusinessAreaName,
			ProjectID:                  raw.ProjectID,
			ProjectName:                raw.ProjectName,
			GroupCompanyID:             raw.GroupCompanyID,
			GroupCompanyName:           raw.GroupCompanyName,
			HoldingID:                  raw.HoldingID,
			HoldingName:                raw.HoldingName,
			SubsidiaryID:               raw.SubsidiaryID,
			SubsidiaryName:             raw.SubsidiaryName,
			BusinessTypeID:             raw.BusinessTypeID,
			BusinessTypeName:           raw.BusinessTypeName,
			DocumentIdentificationID:   raw.DocumentIdentificationID,
			DocumentIdentificationName: raw.DocumentIdentificationName,
			DocumentNumber:             raw.DocumentNumber,
			OriginID:                   raw.OriginID,
			OriginalAmount:             raw.OriginalAmount,
			DiscountAmount:             raw.DiscountAmount,
			TaxAmount:                  raw.TaxAmount,
			BalanceAmount:              raw.BalanceAmount,
			CorrectedBalanceAmount:     raw.CorrectedBalanceAmount,
			IndexerID:                  raw.IndexerID,
			IndexerName:                raw.IndexerName,
			DueDate:                    parseSourceDate(raw.DueDate),
			IssueDate:                  parseSourceDate(raw.IssueDate),
			BillDate:                   parseSourceDate(raw.BillDate),
			InstallmentBaseDate:        parseSourceDate(raw.InstallmentBaseDate),
			SyncDate:                   syncDate,
		},
		ClientID:               raw.ClientID,
		ClientName:             raw.ClientName,
		DocumentForecast:       raw.DocumentForecast,
		PeriodicityType:        raw.PeriodicityType,
		EmbeddedInterestAmount: raw.EmbeddedInterestAmount,
		InterestType:           raw.InterestType,
		InterestRate:           raw.InterestRate,
		CorrectionType:         raw.CorrectionType,
		InterestBaseDate:       parseSourceDate(raw.InterestBaseDate),
		DefaulterSituation:     raw.DefaulterSituation,
		SubJudicie:             raw.SubJudicie,
		MainUnit:               raw.MainUnit,
		InstallmentNumber:      raw.InstallmentNumber,
		BearerID:               raw.BearerID,
		Receipts:               blobOrEmptyList(raw.Receipts),
		ReceiptsCategories:     blobOrEmptyList(raw.ReceiptsCategories),
	}

	if raw.PaymentTerm != nil {
		rec.PaymentTermID = raw.PaymentTerm.ID
		rec.PaymentTermDescrition = raw.PaymentTerm.Descrition
	}

	return rec
}

// NormalizeOutcome maps a raw bulk-data outcome payload onto a domain record.
func NormalizeOutcome(raw sienge.OutcomeRaw, syncDate time.Time) *ledger.OutcomeRecord {
	installmentID := int64OrZero(raw.InstallmentID)
	billID := int64OrZero(raw.BillID)

	return &ledger.OutcomeRecord{
		RecordCore: ledger.RecordCore{
			ID:                         ledger.CompositeID(installmentID, billID),
			InstallmentID:              installmentID,
			BillID:                     billID,
			CompanyID:                  raw.CompanyID,
			CompanyName:                raw.CompanyName,
			BusinessAreaID:             raw.BusinessAreaID,
			BusinessAreaName:           raw.BusinessAreaName,
			ProjectID:                  raw.ProjectID,
			ProjectName:                raw.ProjectName,
			GroupCompanyID:             raw.GroupCompanyID,
			GroupCompanyName:           raw.GroupCompanyName,
			HoldingID:                  raw.HoldingID,
			HoldingName:                raw.HoldingName,
			SubsidiaryID:               raw.SubsidiaryID,
			SubsidiaryName:             raw.SubsidiaryName,
			BusinessTypeID:             raw.BusinessTypeID,
			BusinessTypeName:           raw.BusinessTypeName,
			DocumentIdentificationID:   raw.DocumentIdentificationID,
			DocumentIdentificationName: raw.DocumentIdentificationName,
			DocumentNumber:             raw.DocumentNumber,
			OriginID:                   raw.OriginID,
			OriginalAmount:             raw.OriginalAmount,
			DiscountAmount:             raw.DiscountAmount,
			TaxAmount:                  raw.TaxAmount,
			BalanceAmount:              raw.BalanceAmount,
			CorrectedBalanceAmount:     raw.CorrectedBalanceAmount,
			IndexerID:                  raw.IndexerID,
			IndexerName:                raw.IndexerName,
			DueDate:                    parseSourceDate(raw.DueDate),
			IssueDate:                  parseSourceDate(raw.IssueDate),
			BillDate:                   parseSourceDate(raw.BillDate),
			InstallmentBaseDate:        parseSourceDate(raw.InstallmentBaseDate),
			SyncDate:                   syncDate,
		},
		CreditorID:          raw.CreditorID,
		CreditorName:        raw.CreditorName,
		ForecastDocument:    raw.ForecastDocument,
		ConsistencyStatus:   raw.ConsistencyStatus,
		AuthorizationStatus: raw.AuthorizationStatus,
		RegisteredUserID:    raw.RegisteredUserID,
		RegisteredBy:        raw.RegisteredBy,
		RegisteredDate:      parseSourceDate(raw.RegisteredDate),
		Payments:            blobOrEmptyList(raw.Payments),
		PaymentsCategories:  blobOrEmptyList(raw.PaymentsCategories),
		DepartmentsCosts:    blobOrEmptyList(raw.DepartmentsCosts),
		BuildingsCosts:      blobOrEmptyList(raw.BuildingsCosts),
		Authorizations:      blobOrEmptyList(raw.Authorizations),
	}
}

func int64OrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// parseSourceDate parses the bulk-data date format. Unparseable or empty
// values normalize to nil rather than aborting the record.
func parseSourceDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	// Some date fields arrive with a time component attached
	if len(s) > len(sourceDateLayout) {
		s = s[:len(sourceDateLayout)]
	}
	t, err := time.Parse(sourceDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// blobOrEmptyList keeps nested source lists as opaque JSON, defaulting
// absent ones to an empty array so the jsonb columns never hold NULL.
func blobOrEmptyList(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return "[]"
	}
	return string(raw)
}
