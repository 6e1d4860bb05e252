package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/internal/service/dashboard"
	"github.com/Temutjin2k/lapla/pkg/logger"
)

type fakeService struct {
	DashboardService

	scheduleErr error
	weatherErr  error
	compareErr  error
	exportOut   dashboard.Export
	exportErr   error

	gotKey   models.SessionKey
	gotCodes []string
	gotExtra string
}

func (f *fakeService) Years() []int       { return []int{2023, 2024} }
func (f *fakeService) DefaultSeason() int { return 2024 }

func (f *fakeService) Schedule(_ context.Context, year int) ([]models.ScheduleEvent, error) {
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}
	return []models.ScheduleEvent{{RoundNumber: 1, GrandPrixName: fmt.Sprintf("Bahrain %d", year)}}, nil
}

func (f *fakeService) Drivers(_ context.Context, key models.SessionKey) dashboard.Result[[]models.DriverInfo] {
	f.gotKey = key
	return dashboard.Result[[]models.DriverInfo]{
		Data:   []models.DriverInfo{models.NewDriverInfo("VER", "Max Verstappen", "Red Bull Racing")},
		Source: types.SourceSample,
	}
}

func (f *fakeService) Laps(_ context.Context, key models.SessionKey, codes []string) dashboard.Result[[]models.DriverLaps] {
	f.gotKey, f.gotCodes = key, codes
	return dashboard.Result[[]models.DriverLaps]{Source: types.SourceProvider}
}

func (f *fakeService) Compare(_ context.Context, _ models.SessionKey, codes []string) (dashboard.Result[models.Comparison], error) {
	f.gotCodes = codes
	if f.compareErr != nil {
		return dashboard.Result[models.Comparison]{}, f.compareErr
	}
	return dashboard.Result[models.Comparison]{Data: models.Comparison{FastestDriver: "VER"}, Source: types.SourceProvider}, nil
}

func (f *fakeService) Export(_ context.Context, _ models.SessionKey, codes []string, format types.ExportFormat) (dashboard.Export, error) {
	f.gotCodes = codes
	if f.exportErr != nil {
		return dashboard.Export{}, f.exportErr
	}
	out := f.exportOut
	out.Format = format
	return out, nil
}

func (f *fakeService) Weather(context.Context, models.SessionKey) (models.WeatherData, error) {
	return models.WeatherData{}, f.weatherErr
}

func (f *fakeService) AIInsights(_ context.Context, _ models.SessionKey, codes []string, extra string) dashboard.Result[models.NarrativeInsights] {
	f.gotCodes, f.gotExtra = codes, extra
	return dashboard.Result[models.NarrativeInsights]{Source: types.SourceProvider}
}

func (f *fakeService) CustomInsights(key models.SessionKey) models.InsightReport {
	f.gotKey = key
	return models.InsightReport{SessionType: key.Type, Category: key.Type.Category()}
}

func newTestMux(svc *fakeService) *http.ServeMux {
	h := NewDashboard(svc, 2018, logger.Nop())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/years", h.Years)
	mux.HandleFunc("GET /api/schedule/{year}", h.Schedule)
	mux.HandleFunc("GET /api/drivers/{year}/{round}/{session}", h.Drivers)
	mux.HandleFunc("GET /api/laps/{year}/{round}/{session}", h.Laps)
	mux.HandleFunc("GET /api/export/{year}/{round}/{session}", h.Export)
	mux.HandleFunc("GET /api/compare/{year}/{round}/{session}", h.Compare)
	mux.HandleFunc("GET /api/weather/{year}/{round}/{session}", h.Weather)
	mux.HandleFunc("GET /api/ai-insights/{year}/{round}/{session}", h.AIInsights)
	mux.HandleFunc("GET /api/custom-insights/{year}/{round}/{session}", h.CustomInsights)
	return mux
}

func do(t *testing.T, mux http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestYears(t *testing.T) {
	rec, body := do(t, newTestMux(&fakeService{}), "/api/years")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{2023.0, 2024.0}, body["data"])
	assert.NotContains(t, body, "source")
}

func TestSchedule(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rec, body := do(t, newTestMux(&fakeService{}), "/api/schedule/2024")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
	})

	t.Run("year out of range", func(t *testing.T) {
		rec, body := do(t, newTestMux(&fakeService{}), "/api/schedule/1990")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["fields"], "year")
	})

	t.Run("provider down", func(t *testing.T) {
		svc := &fakeService{scheduleErr: fmt.Errorf("get meetings: %w", types.ErrProviderUnavailable)}
		rec, body := do(t, newTestMux(svc), "/api/schedule/2024")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, types.ErrProviderUnavailable.Error(), body["error"])
	})

	t.Run("unexpected error is not leaked", func(t *testing.T) {
		svc := &fakeService{scheduleErr: fmt.Errorf("pool exhausted")}
		rec, body := do(t, newTestMux(svc), "/api/schedule/2024")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, body["error"], "pool")
	})
}

func TestDrivers(t *testing.T) {
	svc := &fakeService{}
	rec, body := do(t, newTestMux(svc), "/api/drivers/2024/5/q")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sample", body["source"])
	assert.Equal(t, models.SessionKey{Year: 2024, Round: 5, Type: types.Qualifying}, svc.gotKey)

	rec, body = do(t, newTestMux(svc), "/api/drivers/2024/5/XX")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["fields"], "session")
}

func TestLaps(t *testing.T) {
	t.Run("requires drivers", func(t *testing.T) {
		rec, body := do(t, newTestMux(&fakeService{}), "/api/laps/2024/5/R")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "drivers query parameter is required", body["error"])
	})

	t.Run("parses codes", func(t *testing.T) {
		svc := &fakeService{}
		rec, body := do(t, newTestMux(svc), "/api/laps/2024/5/R?drivers=ver,%20ham&drivers=LEC")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "provider", body["source"])
		assert.Equal(t, []string{"VER", "HAM", "LEC"}, svc.gotCodes)
	})

	t.Run("bad code", func(t *testing.T) {
		rec, _ := do(t, newTestMux(&fakeService{}), "/api/laps/2024/5/R?drivers=VER,H4M")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompare(t *testing.T) {
	t.Run("not enough drivers", func(t *testing.T) {
		svc := &fakeService{compareErr: types.ErrNotEnoughDrivers}
		rec, body := do(t, newTestMux(svc), "/api/compare/2024/5/Q?drivers=VER")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "At least 2 drivers required for comparison", body["error"])
	})

	t.Run("ok", func(t *testing.T) {
		rec, body := do(t, newTestMux(&fakeService{}), "/api/compare/2024/5/Q?drivers=VER,NOR")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "VER", data["fastest_driver"])
	})
}

func TestExport(t *testing.T) {
	t.Run("csv attachment", func(t *testing.T) {
		svc := &fakeService{exportOut: dashboard.Export{Body: []byte("Driver,Lap\n"), Source: types.SourceProvider}}
		rec, _ := do(t, newTestMux(svc), "/api/export/2024/5/Q?drivers=VER&format=csv")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="lapla_2024_5_Q.csv"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "provider", rec.Header().Get("X-Data-Source"))
		assert.Equal(t, "Driver,Lap\n", rec.Body.String())
	})

	t.Run("json by default", func(t *testing.T) {
		rec, body := do(t, newTestMux(&fakeService{}), "/api/export/2024/5/Q?drivers=VER")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
	})

	t.Run("no drivers", func(t *testing.T) {
		svc := &fakeService{exportErr: types.ErrNoDriversSelected}
		rec, body := do(t, newTestMux(svc), "/api/export/2024/5/Q")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, types.ErrNoDriversSelected.Error(), body["error"])
	})
}

func TestWeatherUnavailable(t *testing.T) {
	svc := &fakeService{weatherErr: types.ErrWeatherUnavailable}
	rec, body := do(t, newTestMux(svc), "/api/weather/2024/5/R")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No weather data available", body["error"])
}

func TestAIInsightsContext(t *testing.T) {
	svc := &fakeService{}
	rec, _ := do(t, newTestMux(svc), "/api/ai-insights/2024/5/R?drivers=VER&context=wet%20start")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wet start", svc.gotExtra)
	assert.Equal(t, []string{"VER"}, svc.gotCodes)
}

func TestCustomInsights(t *testing.T) {
	t.Run("known session", func(t *testing.T) {
		svc := &fakeService{}
		rec, body := do(t, newTestMux(svc), "/api/custom-insights/2024/5/fp2")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, types.Practice2, svc.gotKey.Type)
		assert.Equal(t, "practice", body["data"].(map[string]any)["category"])
	})

	t.Run("unknown session gets race insights", func(t *testing.T) {
		svc := &fakeService{}
		rec, body := do(t, newTestMux(svc), "/api/custom-insights/2024/5/TEST")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, types.UnknownSessionType, svc.gotKey.Type)
		assert.Equal(t, "race", body["data"].(map[string]any)["category"])
	})

	t.Run("round still validated", func(t *testing.T) {
		rec, body := do(t, newTestMux(&fakeService{}), "/api/custom-insights/2024/99/R")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body["fields"], "round")
	})
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{types.ErrNotEnoughDrivers, http.StatusBadRequest},
		{fmt.Errorf("x: %w", types.ErrInvalidExportFormat), http.StatusBadRequest},
		{types.ErrTrackUnavailable, http.StatusOK},
		{fmt.Errorf("x: %w", types.ErrProviderUnavailable), http.StatusOK},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, GetCode(tt.err), tt.err.Error())
	}
}
