package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/marketing-insights-api/internal/api/handler"
	"github.com/vfg2006/marketing-insights-api/internal/appstate"
	"github.com/vfg2006/marketing-insights-api/internal/config"
	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/internal/scheduler"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising/mocks"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Server:      config.Server{Host: "localhost", Port: "8000", AllowedOrigins: []string{"http://localhost:3000"}},
		LLM:         config.LLM{Provider: "none"},
		Dataset:     config.Dataset{Seed: 7, StartMonth: "2024-01", Months: 2},
		AnalysisLog: config.AnalysisLog{Limit: 10},
	}
}

func newTestHandler(t *testing.T, advisor *mocks.MockAdvisor) (http.Handler, *appstate.State) {
	t.Helper()

	cfg := newTestConfig()
	state, err := appstate.New(cfg)
	require.NoError(t, err)

	return NewHandler(cfg, state, advisor, handler.CronJobServices{State: state}), state
}

func TestNew(t *testing.T) {
	cfg := newTestConfig()
	state, err := appstate.New(cfg)
	require.NoError(t, err)

	srv, err := New(cfg, state, mocks.NewMockAdvisor(gomock.NewController(t)), scheduler.NewDatasetRefreshService(state.Dataset, cfg))
	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", srv.httpServer.Addr)
}

func TestNewHandler_Cors(t *testing.T) {
	h, _ := newTestHandler(t, mocks.NewMockAdvisor(gomock.NewController(t)))

	req := httptest.NewRequest(http.MethodOptions, "/v1/dataset", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_Routes(t *testing.T) {
	advisor := mocks.NewMockAdvisor(gomock.NewController(t))
	advisor.EXPECT().CreateConversation(gomock.Any()).Return(&domain.Conversation{ID: "c1"}, nil)
	h, state := newTestHandler(t, advisor)

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/healthcheck", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/v1/dataset/summary", http.StatusOK},
		{http.MethodGet, "/v1/saturation/point?publisher=Meta", http.StatusOK},
		{http.MethodGet, "/v1/charts/overview", http.StatusOK},
		{http.MethodPost, "/v1/conversations", http.StatusCreated},
		{http.MethodGet, "/v1/cron/status", http.StatusOK},
		{http.MethodPost, "/v1/cron/reset/run", http.StatusAccepted},
		{http.MethodGet, "/v1/nada", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, 0, state.Conversations.Count())
}
