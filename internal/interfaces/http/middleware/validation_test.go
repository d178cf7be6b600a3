package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type dateQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

func bindDateQuery(t *testing.T, rawQuery string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)

	var q dateQuery
	return c.ShouldBindQuery(&q)
}

func TestBindingErrorMessageUsesFormTagName(t *testing.T) {
	SetupValidator()

	err := bindDateQuery(t, "start_date=15-06-2026")
	require.Error(t, err)

	msg := BindingErrorMessage(err)
	assert.Contains(t, msg, "start_date")
	assert.Contains(t, msg, "2006-01-02")
}

func TestBindingErrorMessageGenericFallback(t *testing.T) {
	msg := BindingErrorMessage(errors.New("strconv.ParseInt: parsing \"abc\": invalid syntax"))
	assert.Equal(t, "invalid query parameters", msg)
}

func TestValidQueryPasses(t *testing.T) {
	SetupValidator()
	assert.NoError(t, bindDateQuery(t, "start_date=2026-06-15"))
}
