package ledger

import "fmt"

// DataType identifies which of the two ledger tables a record belongs to.
type DataType string

const (
	// DataTypeIncome is accounts receivable (contas a receber)
	DataTypeIncome DataType = "income"
	// DataTypeOutcome is accounts payable (contas a pagar)
	DataTypeOutcome DataType = "outcome"
)

// IsValid returns true if the data type is one of the two known kinds
func (d DataType) IsValid() bool {
	switch d {
	case DataTypeIncome, DataTypeOutcome:
		return true
	default:
		return false
	}
}

// String returns the string representation of DataType
func (d DataType) String() string {
	return string(d)
}

// AllDataTypes returns both record kinds in sync order (income first)
func AllDataTypes() []DataType {
	return []DataType{DataTypeIncome, DataTypeOutcome}
}

// CompositeID builds the deterministic natural key for a ledger row from its
// two source identifiers. The same installment/bill pair always yields the
// same id, which is what makes the upsert idempotent.
func CompositeID(installmentID, billID int64) string {
	return fmt.Sprintf("%d_%d", installmentID, billID)
}

// WriteOutcome reports whether an upsert inserted a new row or updated an
// existing one.
type WriteOutcome int

const (
	// WriteInserted means the upsert created a new row
	WriteInserted WriteOutcome = iota
	// WriteUpdated means the upsert overwrote an existing row
	WriteUpdated
)

// String returns the string representation of WriteOutcome
func (o WriteOutcome) String() string {
	if o == WriteInserted {
		return "inserted"
	}
	return "updated"
}
