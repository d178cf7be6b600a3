package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siengefin/backend/internal/domain/shared"
	"github.com/siengefin/backend/internal/interfaces/http/dto"
)

func handleErrorResponse(t *testing.T, err error) (int, dto.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	var h BaseHandler
	h.HandleError(c, err)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleErrorMapsDomainCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"invalid input", shared.NewDomainError("INVALID_INPUT", "bad filter"), http.StatusBadRequest, dto.ErrCodeInvalidInput},
		{"sync in progress", shared.ErrSyncInProgress, http.StatusConflict, dto.ErrCodeSyncInProgress},
		{"invalid state", shared.ErrInvalidState, http.StatusConflict, dto.ErrCodeInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := handleErrorResponse(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorHidesUnknownErrors(t *testing.T) {
	status, resp := handleErrorResponse(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
}

func TestHandleErrorUnwrapsWrappedDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("query income record: %w", shared.ErrNotFound)
	status, resp := handleErrorResponse(t, wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}
