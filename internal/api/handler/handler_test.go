package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jobrunnermocks "github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/jobrunner/mocks"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/refreshing"
	"go.uber.org/mock/gomock"
)

type fakeScheduler struct {
	started bool
	busy    bool
	status  domain.RefreshStatus
}

func (f *fakeScheduler) TriggerManualSync() bool {
	if f.busy {
		return false
	}
	f.started = true
	return true
}

func (f *fakeScheduler) GetStatus() domain.RefreshStatus { return f.status }

type testEnv struct {
	router       router.Router
	snapshotRepo *mocks.MockMetricsSnapshotRepository
	dailyRepo    *mocks.MockDailyMetricRepository
	jobRunner    *jobrunnermocks.MockJobRunnerIntegrator
	scheduler    *fakeScheduler
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)

	env := &testEnv{
		snapshotRepo: mocks.NewMockMetricsSnapshotRepository(ctrl),
		dailyRepo:    mocks.NewMockDailyMetricRepository(ctrl),
		jobRunner:    jobrunnermocks.NewMockJobRunnerIntegrator(ctrl),
		scheduler:    &fakeScheduler{},
	}

	cfg := &config.Config{Auth: config.Auth{APIKey: "secret"}}
	dashboardService := dashboarding.NewService(env.snapshotRepo, env.dailyRepo, cfg)
	refreshService := refreshing.NewService(env.jobRunner)

	env.router = router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Metrics(dashboardService)...),
		router.WithRoutes(UpstreamProxy(refreshService)...),
		router.WithRoutes(CronJobs(env.scheduler, dashboardService)...),
	)

	return env
}

func (e *testEnv) do(method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestGetMetrics(t *testing.T) {
	env := newTestEnv(t)

	env.snapshotRepo.EXPECT().GetLatest(gomock.Any()).Return(&domain.MetricsSnapshot{}, nil)
	env.dailyRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.DailyMetric{}, nil)

	rec := env.do(http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	metrics := body["metrics"]
	for _, key := range []string{
		"totalMarketingSpend", "influencerSpend", "paidAdsSpend", "netRevenue", "revenueSpentOnAds",
		"customerLifetimeValue", "customerAcquisitionCost", "tickets", "revenue", "operationalExpenses",
	} {
		require.Contains(t, metrics, key)
		assert.Equal(t, 0.0, metrics[key].(map[string]any)["value"])
	}
	assert.Equal(t, []any{}, body["charts"]["barChart"])
	assert.Equal(t, []any{}, body["charts"]["lineChart"])
}

func TestGetMetrics_StoreError(t *testing.T) {
	env := newTestEnv(t)

	env.snapshotRepo.EXPECT().GetLatest(gomock.Any()).Return(nil, &repository.StoreError{Op: "get latest snapshot", Err: errors.New("down")})

	rec := env.do(http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"STORE_ERROR","message":"Failed to fetch metrics"}`, rec.Body.String())
}

func TestUpdateMetrics_Unauthorized(t *testing.T) {
	env := newTestEnv(t)

	// Nenhuma chamada aos repositórios é esperada
	for _, auth := range []string{"", "Bearer wrong", "secret"} {
		rec := env.do(http.MethodPost, "/metrics/update", `{"metrics":{"revenue":{"value":10}}}`, auth)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error":"UNAUTHORIZED"`)
	}
}

func TestUpdateMetrics_UnauthorizedBeforeParsing(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/metrics/update", `{not json`, "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateMetrics_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/metrics/update", `{not json`, "Bearer secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"INVALID_REQUEST"`)
}

func TestUpdateMetrics_EmptyBodyIsNoop(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/metrics/update", ``, "Bearer secret")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Metrics updated successfully"}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/metrics/update", `{}`, "Bearer secret")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateMetrics_Success(t *testing.T) {
	env := newTestEnv(t)

	env.snapshotRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.MetricsSnapshot) error {
			assert.Equal(t, 1500.5, *s.TotalMarketingSpend)
			assert.Nil(t, s.OperationalExpenses)
			return nil
		})
	env.dailyRepo.EXPECT().
		UpsertMany(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*domain.DailyMetric) error {
			require.Len(t, rows, 1)
			assert.Equal(t, "2024-05-01", rows[0].Date.String())
			assert.Equal(t, int64(12), *rows[0].DailyGuests)
			return nil
		})

	body := `{
		"metrics": {"totalMarketingSpend": {"value": 1500.5, "label": "Total Marketing Spend", "prefix": "$"}},
		"dailyMetrics": [{"date": "2024-05-01", "grossRevenue": 300, "netRevenue": 250, "dailyGuests": 12, "accumulatedGuests": 12}]
	}`
	rec := env.do(http.MethodPost, "/metrics/update", body, "Bearer secret")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestUpdateMetrics_InvalidDate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/metrics/update", `{"dailyMetrics":[{"date":"01/05/2024"}]}`, "Bearer secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMetrics_MissingDate(t *testing.T) {
	env := newTestEnv(t)

	// Sem EXPECT nos repositórios: qualquer gravação falha o teste
	body := `{"metrics":{"tickets":{"value":3}},"dailyMetrics":[{"grossRevenue":300,"dailyGuests":12}]}`
	rec := env.do(http.MethodPost, "/metrics/update", body, "Bearer secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"INVALID_REQUEST"`)
	assert.Contains(t, rec.Body.String(), "dailyMetrics[0]")

	rec = env.do(http.MethodPost, "/metrics/update", `{"upstreamDailyMetrics":[{"daily_guests":4}]}`, "Bearer secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstreamDailyMetrics[0]")

	rec = env.do(http.MethodPost, "/metrics/update", `{"dailyMetrics":[{"date":null}]}`, "Bearer secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMetrics_StoreError(t *testing.T) {
	env := newTestEnv(t)

	env.dailyRepo.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).Return(&repository.StoreError{Op: "upsert daily metrics", Err: errors.New("down")})

	rec := env.do(http.MethodPost, "/metrics/update", `{"dailyMetrics":[{"date":"2024-05-01"}]}`, "Bearer secret")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"STORE_ERROR"`)
}

func TestProxy(t *testing.T) {
	env := newTestEnv(t)

	env.jobRunner.EXPECT().TriggerUpdate(gomock.Any()).Return(&domain.ProxyResult{
		StatusCode: http.StatusBadRequest,
		Result:     domain.UpdateResult{Success: false, Error: "KEY_ERROR", Message: "Invalid or expired key"},
	})

	rec := env.do(http.MethodPost, "/proxy", `{"endpoint":"update-dashboard"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"KEY_ERROR","message":"Invalid or expired key"}`, rec.Body.String())
}

func TestProxy_Validation(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{`{}`, `{"endpoint":"reboot"}`, `{"endpoint":"validate-key"}`, `nope`} {
		rec := env.do(http.MethodPost, "/proxy", body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), `"error":"INVALID_REQUEST"`, body)
	}
}

func TestProxy_ValidateKey(t *testing.T) {
	env := newTestEnv(t)

	env.jobRunner.EXPECT().SubmitCredential(gomock.Any(), "abc").Return(&domain.ProxyResult{
		StatusCode: http.StatusOK,
		Result:     domain.UpdateResult{Success: true, Message: "Key saved"},
	})

	rec := env.do(http.MethodPost, "/proxy", `{"endpoint":"validate-key","key":"abc"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Key saved"}`, rec.Body.String())
}

func TestCronRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.scheduler.status = domain.RefreshStatus{Enabled: true, CronSchedule: "0 * * * *", LastResult: "success"}

	rec := env.do(http.MethodPost, "/cron/refresh/run", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.scheduler.started)

	rec = env.do(http.MethodPost, "/cron/refresh/run", "", "Bearer secret")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, env.scheduler.started)

	env.scheduler.busy = true
	rec = env.do(http.MethodPost, "/cron/refresh/run", "", "Bearer secret")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(http.MethodGet, "/cron/status", "", "Bearer secret")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cron_schedule":"0 * * * *"`)
	assert.Contains(t, rec.Body.String(), `"last_result":"success"`)
}

func TestHealthcheck(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
