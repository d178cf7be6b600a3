package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siengefin/backend/internal/domain/shared"
)

// Pagination bounds for the read API
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// DefaultDateField is the date column used for range filtering and ordering
// when the caller does not pick one.
const DefaultDateField = "due_date"

// allowedDateFields is the whitelist of columns a caller may select for date
// filtering and ordering. Anything else is rejected before it reaches SQL.
var allowedDateFields = map[string]struct{}{
	"due_date":              {},
	"issue_date":            {},
	"bill_date":             {},
	"installment_base_date": {},
	"sync_date":             {},
}

// ValidateDateField checks that the given column is an allowed date field
func ValidateDateField(field string) error {
	if _, ok := allowedDateFields[field]; !ok {
		return shared.NewDomainError("INVALID_INPUT", "unsupported date field: "+field)
	}
	return nil
}

// RecordFilter is the query surface over income_data and outcome_data.
// Identifier filters are exact matches, name filters are case-insensitive
// substring matches, date and amount ranges are inclusive.
type RecordFilter struct {
	CompanyID      *int64
	CompanyName    string
	ProjectID      *int64
	BusinessAreaID *int64

	// CounterpartyID/CounterpartyName filter client_* on income and
	// creditor_* on outcome
	CounterpartyID   *int64
	CounterpartyName string

	// AuthorizationStatus only applies to outcome rows
	AuthorizationStatus string

	// DateField picks the column for StartDate/EndDate and ordering;
	// empty means DefaultDateField
	DateField string
	StartDate *time.Time
	EndDate   *time.Time

	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal

	Limit  int
	Offset int
}

// Normalize applies defaults and clamps pagination, and validates the
// selected date field.
func (f *RecordFilter) Normalize() error {
	if f.DateField == "" {
		f.DateField = DefaultDateField
	}
	if err := ValidateDateField(f.DateField); err != nil {
		return err
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		return shared.NewDomainError("INVALID_INPUT", "limit cannot exceed 1000")
	}
	if f.Offset < 0 {
		return shared.NewDomainError("INVALID_INPUT", "offset cannot be negative")
	}
	return nil
}
