package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeID(t *testing.T) {
	tests := []struct {
		name          string
		installmentID int64
		billID        int64
		expected      string
	}{
		{"regular pair", 47, 635, "47_635"},
		{"zero installment", 0, 635, "0_635"},
		{"zero bill", 47, 0, "47_0"},
		{"both missing", 0, 0, "0_0"},
		{"large identifiers", 9223372036854775807, 1, "9223372036854775807_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompositeID(tt.installmentID, tt.billID))
		})
	}
}

func TestCompositeIDIsDeterministic(t *testing.T) {
	assert.Equal(t, CompositeID(12, 900), CompositeID(12, 900))
	assert.NotEqual(t, CompositeID(12, 900), CompositeID(900, 12))
}

func TestDataTypeIsValid(t *testing.T) {
	assert.True(t, DataTypeIncome.IsValid())
	assert.True(t, DataTypeOutcome.IsValid())
	assert.False(t, DataType("revenue").IsValid())
	assert.False(t, DataType("").IsValid())
}

func TestAllDataTypesOrder(t *testing.T) {
	assert.Equal(t, []DataType{DataTypeIncome, DataTypeOutcome}, AllDataTypes())
}

func TestWriteOutcomeString(t *testing.T) {
	assert.Equal(t, "inserted", WriteInserted.String())
	assert.Equal(t, "updated", WriteUpdated.String())
}
