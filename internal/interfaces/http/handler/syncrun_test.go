package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/application/query"
	"github.com/siengefin/backend/internal/domain/ledger"
	"github.com/siengefin/backend/internal/domain/synccontrol"
	"github.com/siengefin/backend/internal/interfaces/http/dto"
	"github.com/siengefin/backend/internal/interfaces/http/router"
)

// stubRunRepo serves canned runs and captures the filter it was asked for
type stubRunRepo struct {
	runs       []synccontrol.SyncRun
	lastFilter synccontrol.RunFilter
}

func (r *stubRunRepo) Create(ctx context.Context, run *synccontrol.SyncRun) error { return nil }
func (r *stubRunRepo) Update(ctx context.Context, run *synccontrol.SyncRun) error { return nil }

func (r *stubRunRepo) LatestSuccessfulDailyEnd(ctx context.Context, dataType ledger.DataType) (*time.Time, error) {
	return nil, nil
}

func (r *stubRunRepo) FindRunning(ctx context.Context, dataType ledger.DataType) (*synccontrol.SyncRun, error) {
	return nil, nil
}

func (r *stubRunRepo) FindAll(ctx context.Context, filter synccontrol.RunFilter) ([]synccontrol.SyncRun, error) {
	r.lastFilter = filter
	return r.runs, nil
}

func (r *stubRunRepo) Count(ctx context.Context, filter synccontrol.RunFilter) (int64, error) {
	return int64(len(r.runs)), nil
}

func newSyncRunTestServer(repo *stubRunRepo) *gin.Engine {
	service := query.NewSyncRunQueryService(repo, zap.NewNop())
	engine := gin.New()
	r := router.NewRouter(engine)
	r.Register(NewSyncRunHandler(service))
	r.Setup()
	return engine
}

func TestListRunsReturnsAuditRows(t *testing.T) {
	run := synccontrol.NewSyncRun(
		synccontrol.SyncTypeDaily,
		ledger.DataTypeIncome,
		time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, run.Complete(42, 40, 2, 3*time.Second))

	repo := &stubRunRepo{runs: []synccontrol.SyncRun{*run}}
	engine := newSyncRunTestServer(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-runs", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Total)

	rows, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var runs []dto.SyncRunResponse
	require.NoError(t, json.Unmarshal(rows, &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "daily", runs[0].SyncType)
	assert.Equal(t, "success", runs[0].Status)
	assert.Equal(t, "2026-06-03", runs[0].StartDate)
	assert.Equal(t, 42, runs[0].RecordsSynced)
}

func TestListRunsParsesFilters(t *testing.T) {
	repo := &stubRunRepo{}
	engine := newSyncRunTestServer(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/sync-runs?data_type=outcome&sync_type=manual&status=failed&limit=5", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	filter := repo.lastFilter
	require.NotNil(t, filter.DataType)
	assert.Equal(t, ledger.DataTypeOutcome, *filter.DataType)
	require.NotNil(t, filter.SyncType)
	assert.Equal(t, synccontrol.SyncTypeManual, *filter.SyncType)
	require.NotNil(t, filter.Status)
	assert.Equal(t, synccontrol.RunStatusFailed, *filter.Status)
	assert.Equal(t, 5, filter.Limit)
}

func TestListRunsRejectsUnknownDataType(t *testing.T) {
	engine := newSyncRunTestServer(&stubRunRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-runs?data_type=revenue", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestListRunsRejectsUnknownStatus(t *testing.T) {
	engine := newSyncRunTestServer(&stubRunRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-runs?status=paused", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRunsDefaultsPagination(t *testing.T) {
	repo := &stubRunRepo{}
	engine := newSyncRunTestServer(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-runs", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ledger.DefaultLimit, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
}
