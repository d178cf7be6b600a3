package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siengefin/backend/internal/domain/shared"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	filter := RecordFilter{}
	require.NoError(t, filter.Normalize())

	assert.Equal(t, DefaultDateField, filter.DateField)
	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	filter := RecordFilter{DateField: "sync_date", Limit: 50, Offset: 200}
	require.NoError(t, filter.Normalize())

	assert.Equal(t, "sync_date", filter.DateField)
	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 200, filter.Offset)
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		filter RecordFilter
	}{
		{"unknown date field", RecordFilter{DateField: "original_amount"}},
		{"sql injection attempt", RecordFilter{DateField: "due_date; DROP TABLE income_data"}},
		{"limit above maximum", RecordFilter{Limit: MaxLimit + 1}},
		{"negative offset", RecordFilter{Offset: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Normalize()
			require.Error(t, err)

			var domainErr *shared.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		})
	}
}

func TestValidateDateFieldWhitelist(t *testing.T) {
	for _, field := range []string{"due_date", "issue_date", "bill_date", "installment_base_date", "sync_date"} {
		assert.NoError(t, ValidateDateField(field), field)
	}
	assert.Error(t, ValidateDateField("created_at"))
	assert.Error(t, ValidateDateField(""))
}
