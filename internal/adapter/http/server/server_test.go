package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/lapla/config"
	"github.com/Temutjin2k/lapla/internal/adapter/http/handler"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/logger"
	ws "github.com/Temutjin2k/lapla/pkg/wsHub"
)

type stubService struct {
	handler.DashboardService
}

func (stubService) Years() []int       { return []int{2024} }
func (stubService) DefaultSeason() int { return 2024 }

func newTestAPI(t *testing.T) *API {
	t.Helper()
	cfg := config.Config{Mode: types.DashboardService}
	cfg.Dashboard.FirstSeason = 2018

	api, err := New(cfg, stubService{}, ws.NewConnHub("test", logger.Nop()), logger.Nop())
	require.NoError(t, err)
	return api
}

func TestNewRejectsMissingService(t *testing.T) {
	_, err := New(config.Config{Mode: types.DashboardService}, nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	h := newTestAPI(t).Handler()

	tests := []struct {
		target string
		code   int
	}{
		{"/health", http.StatusOK},
		{"/api/years", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/schedule/abc", http.StatusBadRequest},
		{"/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(types.RequestIDHeader))
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestAPI(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/years", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
