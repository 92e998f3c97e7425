package jobrunner

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jobrunnerdomain "github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/jobrunner/domain"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/jobrunner/jobrunnerclient"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
)

func newIntegrator(url string) JobRunnerIntegrator {
	return newIntegratorWithLimit(url, 0)
}

func newIntegratorWithLimit(url string, maxResponseBytes int64) JobRunnerIntegrator {
	cfg := &config.Config{
		Upstream: config.Upstream{
			URL:              url,
			APIKey:           "upstream-secret",
			Timeout:          5 * time.Second,
			MaxResponseBytes: maxResponseBytes,
		},
	}
	return New(jobrunnerclient.NewClient(cfg))
}

func upstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestForward_Classification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantSuccess bool
		wantError   string
		wantMessage string
	}{
		{
			name:        "sucesso",
			status:      http.StatusOK,
			body:        `{"success":true,"message":"Dashboard updated","output":"done"}`,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Dashboard updated",
		},
		{
			name:        "201 vira 200",
			status:      http.StatusCreated,
			body:        `{"message":"queued"}`,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "queued",
		},
		{
			name:        "resposta não JSON mantém status",
			status:      http.StatusBadGateway,
			body:        `<html>Bad Gateway</html>`,
			wantStatus:  http.StatusBadGateway,
			wantError:   apiErrors.ErrParse,
			wantMessage: "Failed to parse response from server",
		},
		{
			name:        "array não é objeto",
			status:      http.StatusOK,
			body:        `[1,2,3]`,
			wantStatus:  http.StatusOK,
			wantError:   apiErrors.ErrParse,
			wantMessage: "Failed to parse response from server",
		},
		{
			name:        "KEY_ERROR com 500 vira 400",
			status:      http.StatusInternalServerError,
			body:        `{"success":false,"error":"KEY_ERROR","message":"Session expired"}`,
			wantStatus:  http.StatusBadRequest,
			wantError:   apiErrors.ErrKey,
			wantMessage: "Session expired",
		},
		{
			name:        "KEY_ERROR em details usa mensagem padrão",
			status:      http.StatusInternalServerError,
			body:        `{"success":false,"error":"Script failed","details":"Traceback... KEY_ERROR: bad key"}`,
			wantStatus:  http.StatusBadRequest,
			wantError:   apiErrors.ErrKey,
			wantMessage: "Invalid or expired key",
		},
		{
			name:        "outro erro repassado com status original",
			status:      http.StatusInternalServerError,
			body:        `{"success":false,"error":"Script failed","message":"boom"}`,
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Script failed",
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := upstream(t, tt.status, tt.body)

			result := newIntegrator(server.URL).TriggerUpdate(context.Background())

			require.NotNil(t, result)
			assert.Equal(t, tt.wantStatus, result.StatusCode)
			assert.Equal(t, tt.wantSuccess, result.Result.Success)
			assert.Equal(t, tt.wantError, result.Result.Error)
			assert.Equal(t, tt.wantMessage, result.Result.Message)
		})
	}
}

func TestForward_PassesDetailsAndOutput(t *testing.T) {
	server := upstream(t, http.StatusOK, `{"success":true,"details":{"rows":3},"output":null}`)

	result := newIntegrator(server.URL).TriggerUpdate(context.Background())

	assert.JSONEq(t, `{"rows":3}`, string(result.Result.Details))
	assert.Nil(t, result.Result.Output)
}

func TestForward_LargeOutputPassesThrough(t *testing.T) {
	output := strings.Repeat("x", 2<<20)
	server := upstream(t, http.StatusOK, `{"success":true,"message":"Dashboard updated","output":"`+output+`"}`)

	result := newIntegrator(server.URL).TriggerUpdate(context.Background())

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.True(t, result.Result.Success)
	assert.Empty(t, result.Result.Error)
	assert.Len(t, result.Result.Output, len(output)+2)
}

func TestForward_ResponseOverLimit(t *testing.T) {
	body := `{"success":true,"output":"` + strings.Repeat("x", 2048) + `"}`
	server := upstream(t, http.StatusOK, body)

	result := newIntegratorWithLimit(server.URL, 1024).TriggerUpdate(context.Background())

	assert.Equal(t, http.StatusBadGateway, result.StatusCode)
	assert.False(t, result.Result.Success)
	assert.Equal(t, apiErrors.ErrResponseTooLarge, result.Result.Error)
	assert.NotEqual(t, apiErrors.ErrParse, result.Result.Error)

	// Corpo exatamente no limite continua válido
	exact := `{"success":true}`
	server = upstream(t, http.StatusOK, exact)
	result = newIntegratorWithLimit(server.URL, int64(len(exact))).TriggerUpdate(context.Background())
	assert.True(t, result.Result.Success)
}

func TestForward_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	result := newIntegrator(url).TriggerUpdate(context.Background())

	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
	assert.False(t, result.Result.Success)
	assert.Equal(t, apiErrors.ErrConnection, result.Result.Error)
}

func TestForward_InvalidBaseURL(t *testing.T) {
	result := newIntegrator("").TriggerUpdate(context.Background())

	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
	assert.Equal(t, apiErrors.ErrConnection, result.Result.Error)
}

func TestForward_RequestShape(t *testing.T) {
	var (
		gotPath   string
		gotAuth   string
		gotType   string
		gotMethod string
		gotBody   string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()

	integrator := newIntegrator(server.URL)

	result := integrator.SubmitCredential(context.Background(), "session-key")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "/api/validate-key", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Bearer upstream-secret", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.JSONEq(t, `{"key":"session-key"}`, gotBody)

	integrator.TriggerUpdate(context.Background())
	assert.Equal(t, "/api/update-dashboard", gotPath)
	assert.Empty(t, gotBody)

	integrator.Forward(context.Background(), domain.EndpointUpdateDashboard, "ignored")
	assert.Empty(t, gotBody)
}

func TestForward_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := newIntegrator(server.URL).TriggerUpdate(ctx)
	assert.Equal(t, apiErrors.ErrConnection, result.Result.Error)
}

func TestClassify_ReturnsTypedError(t *testing.T) {
	_, err := classify(&jobrunnerclient.Response{StatusCode: 500, Body: []byte(`{"error":"KEY_ERROR"}`)}, nil)
	assert.ErrorIs(t, err, jobrunnerdomain.ErrCredential)

	_, err = classify(nil, &jobrunnerdomain.UpstreamError{Kind: jobrunnerdomain.ErrResponseTooLarge, Status: 200})
	assert.ErrorIs(t, err, jobrunnerdomain.ErrResponseTooLarge)

	_, err = classify(&jobrunnerclient.Response{StatusCode: 200, Body: []byte(`null`)}, nil)
	assert.ErrorIs(t, err, jobrunnerdomain.ErrUpstreamParse)

	result, err := classify(&jobrunnerclient.Response{StatusCode: 200, Body: []byte(`{"success":true}`)}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Result.Success)
}
