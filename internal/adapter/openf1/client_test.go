package openf1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/cache"
	"github.com/Temutjin2k/lapla/pkg/logger"
)

const (
	meetingsJSON = `[
		{"meeting_key": 1228, "meeting_name": "Bahrain Grand Prix", "location": "Sakhir", "circuit_short_name": "Sakhir", "date_start": "2024-02-29T11:30:00+00:00", "year": 2024},
		{"meeting_key": 1229, "meeting_name": "Pre-Season Testing", "location": "Sakhir", "circuit_short_name": "Sakhir", "date_start": "2024-02-21T07:00:00+00:00", "year": 2024},
		{"meeting_key": 1230, "meeting_name": "Saudi Arabian Grand Prix", "location": "Jeddah", "circuit_short_name": "Jeddah", "date_start": "2024-03-07T13:30:00+00:00", "year": 2024}
	]`
	sessionsJSON = `[
		{"session_key": 9468, "meeting_key": 1228, "session_name": "Practice 1", "session_type": "Practice", "date_start": "2024-02-29T11:30:00+00:00", "date_end": "2024-02-29T12:30:00+00:00"},
		{"session_key": 9472, "meeting_key": 1228, "session_name": "Race", "session_type": "Race", "date_start": "2024-03-02T15:00:00+00:00", "date_end": "2024-03-02T17:00:00+00:00"}
	]`
	driversJSON = `[
		{"driver_number": 1, "name_acronym": "VER", "first_name": "Max", "last_name": "Verstappen", "full_name": "Max VERSTAPPEN", "team_name": "Red Bull Racing", "team_colour": "3671C6"},
		{"driver_number": 44, "name_acronym": "HAM", "first_name": "Lewis", "last_name": "Hamilton", "full_name": "Lewis HAMILTON", "team_name": "Mercedes", "team_colour": "27F4D2"},
		{"driver_number": 99, "name_acronym": "NEW", "full_name": "New DRIVER", "team_name": "Brand New Team"}
	]`
	verLapsJSON = `[
		{"driver_number": 1, "lap_number": 2, "lap_duration": 96.5, "duration_sector_1": 31.0, "duration_sector_2": 42.1, "duration_sector_3": 23.4, "date_start": "2024-03-02T15:05:00.000000+00:00"},
		{"driver_number": 1, "lap_number": 1, "lap_duration": null, "duration_sector_1": null, "duration_sector_2": 43.0, "duration_sector_3": 24.0, "date_start": "2024-03-02T15:03:00+00:00"},
		{"driver_number": 1, "lap_number": 3, "lap_duration": 97.2, "duration_sector_1": 31.2, "duration_sector_2": 42.5, "duration_sector_3": 23.5, "date_start": "2024-03-02T15:06:36.5+00:00"},
		{"driver_number": 1, "lap_number": 4, "lap_duration": 95.9, "duration_sector_1": 30.8, "duration_sector_2": 41.9, "duration_sector_3": 23.2, "date_start": "2024-03-02T15:08:13.7+00:00"}
	]`
	verStintsJSON = `[
		{"driver_number": 1, "stint_number": 1, "compound": "SOFT", "lap_start": 1, "lap_end": 2, "tyre_age_at_start": 3},
		{"driver_number": 1, "stint_number": 2, "compound": "HARD", "lap_start": 3, "lap_end": 4, "tyre_age_at_start": 0}
	]`
	carDataJSON = `[
		{"date": "2024-03-02T15:05:00.000+00:00", "speed": 72, "throttle": 100, "brake": 0, "n_gear": 2, "drs": 1, "rpm": 10000},
		{"date": "2024-03-02T15:05:01.000+00:00", "speed": 108, "throttle": 104, "brake": 0, "n_gear": 3, "drs": 12, "rpm": 11000},
		{"date": "2024-03-02T15:05:02.000+00:00", "speed": 144, "throttle": 0, "brake": 100, "n_gear": 4, "drs": 8, "rpm": 11500}
	]`
	locationJSON = `[
		{"date": "2024-03-02T15:05:00.100+00:00", "x": 0, "y": 0, "z": 0},
		{"date": "2024-03-02T15:05:00.100+00:00", "x": 100, "y": 100, "z": 0},
		{"date": "2024-03-02T15:05:00.900+00:00", "x": 130, "y": 140, "z": 0},
		{"date": "2024-03-02T15:05:02.100+00:00", "x": 130, "y": 180, "z": 0}
	]`
	weatherJSON = `[
		{"air_temperature": 18.0, "track_temperature": 26.0, "humidity": 45, "pressure": 1017.2, "rainfall": 0, "wind_speed": 1.0, "wind_direction": 350},
		{"air_temperature": 19.0, "track_temperature": 27.0, "humidity": 47, "pressure": 1017.4, "rainfall": 1, "wind_speed": 2.0, "wind_direction": 10}
	]`
)

type fixture struct {
	mu      sync.Mutex
	queries map[string][]string
	status  map[string]int
	bodies  map[string]string
}

func newFixture() *fixture {
	return &fixture{
		queries: make(map[string][]string),
		status:  make(map[string]int),
		bodies: map[string]string{
			"/v1/meetings": meetingsJSON,
			"/v1/sessions": sessionsJSON,
			"/v1/drivers":  driversJSON,
			"/v1/car_data": carDataJSON,
			"/v1/location": locationJSON,
			"/v1/weather":  weatherJSON,
		},
	}
}

func (f *fixture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.queries[r.URL.Path] = append(f.queries[r.URL.Path], r.URL.RawQuery)
	status, body := f.status[r.URL.Path], f.bodies[r.URL.Path]
	f.mu.Unlock()

	switch r.URL.Path {
	case "/v1/laps":
		body = "[]"
		if strings.Contains(r.URL.RawQuery, "driver_number=1") || !strings.Contains(r.URL.RawQuery, "driver_number") {
			body = verLapsJSON
		}
		if strings.Contains(r.URL.RawQuery, "lap_number=2") {
			body = `[` + strings.SplitN(strings.TrimPrefix(strings.TrimSpace(verLapsJSON), "["), "},", 2)[0] + `}]`
		}
	case "/v1/stints":
		body = "[]"
		if strings.Contains(r.URL.RawQuery, "driver_number=1") {
			body = verStintsJSON
		}
	}

	if status != 0 {
		w.WriteHeader(status)
	}
	if body == "" {
		body = "[]"
	}
	_, _ = w.Write([]byte(body))
}

func (f *fixture) lastQuery(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.queries[path]
	if len(q) == 0 {
		return ""
	}
	return q[len(q)-1]
}

func newTestClient(t *testing.T, f *fixture) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second}, nil, logger.Nop())
}

var race = models.SessionKey{Year: 2024, Round: 1, Type: types.Race}

func TestClient_Schedule(t *testing.T) {
	c := newTestClient(t, newFixture())

	events, err := c.Schedule(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, 1, events[0].RoundNumber)
	assert.Equal(t, "Bahrain Grand Prix", events[0].GrandPrixName)
	assert.Equal(t, "Sakhir", events[0].CircuitName)
	require.NotNil(t, events[0].Date)
	assert.Equal(t, "2024-02-29", *events[0].Date)
	assert.Equal(t, "Saudi Arabian Grand Prix", events[1].GrandPrixName)
}

func TestClient_Sessions(t *testing.T) {
	c := newTestClient(t, newFixture())

	sessions, err := c.Sessions(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	fp1 := sessions[types.Practice1]
	assert.Equal(t, "Practice 1", fp1.SessionName)
	assert.Equal(t, "Bahrain Grand Prix", fp1.GrandPrixName)
	assert.Equal(t, 1, fp1.RoundNumber)
	assert.Contains(t, sessions, types.Race)

	_, err = c.Sessions(context.Background(), 2024, 9)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestClient_Drivers(t *testing.T) {
	f := newFixture()
	c := newTestClient(t, f)

	drivers, err := c.Drivers(context.Background(), race)
	require.NoError(t, err)
	require.Len(t, drivers, 3)

	assert.Equal(t, models.DriverInfo{DriverCode: "VER", DriverName: "Max Verstappen", TeamName: "Red Bull Racing", TeamColor: "#3671C6"}, drivers[0])
	assert.Equal(t, models.DefaultTeamColor, drivers[2].TeamColor)
	assert.Equal(t, "session_key=9472", f.lastQuery("/v1/drivers"))
}

func TestClient_Laps(t *testing.T) {
	c := newTestClient(t, newFixture())

	got, err := c.Laps(context.Background(), race, []string{"ham", "VER", "XXX"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "HAM", got[0].DriverCode)
	assert.Empty(t, got[0].Laps)
	assert.Equal(t, "XXX", got[2].DriverCode)
	assert.Empty(t, got[2].Laps)

	ver := got[1].Laps
	require.Len(t, ver, 4)
	for i, lap := range ver {
		assert.Equal(t, i+1, lap.LapNumber)
	}

	assert.Nil(t, ver[0].LapTime)
	assert.Nil(t, ver[0].Sector1Time)
	assert.False(t, ver[0].IsPersonalBest)

	assert.True(t, ver[1].IsPersonalBest)
	assert.False(t, ver[2].IsPersonalBest)
	assert.True(t, ver[3].IsPersonalBest)

	require.NotNil(t, ver[1].Compound)
	assert.Equal(t, "SOFT", *ver[1].Compound)
	assert.Equal(t, 5, *ver[1].TyreLife)
	assert.Equal(t, "HARD", *ver[3].Compound)
	assert.Equal(t, 2, *ver[3].TyreLife)
}

func TestClient_Telemetry(t *testing.T) {
	f := newFixture()
	c := newTestClient(t, f)

	tel, err := c.Telemetry(context.Background(), race, "VER", 2)
	require.NoError(t, err)
	require.True(t, tel.Consistent())
	require.Equal(t, 3, tel.Len())

	assert.Equal(t, []float64{0, 1, 2}, tel.Time)
	assert.Equal(t, []int{0, 1, 0}, tel.DRS)
	assert.Equal(t, []float64{100, 100, 0}, tel.Throttle)
	assert.Equal(t, []float64{0, 0, 100}, tel.Brake)
	assert.InDelta(t, 0.0, tel.Distance[0], 1e-9)
	assert.InDelta(t, 25.0, tel.Distance[1], 1e-9)
	assert.InDelta(t, 60.0, tel.Distance[2], 1e-9)

	q := f.lastQuery("/v1/car_data")
	assert.Contains(t, q, "date>=2024-03-02T15%3A05%3A00.000")
	assert.Contains(t, q, "date<2024-03-02T15%3A06%3A36.500")

	_, err = c.Telemetry(context.Background(), race, "ZZZ", 2)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestClient_Track(t *testing.T) {
	c := newTestClient(t, newFixture())

	track, err := c.Track(context.Background(), race)
	require.NoError(t, err)
	require.True(t, track.Consistent())

	assert.Equal(t, []float64{100, 130, 130}, track.X)
	assert.Equal(t, []float64{100, 140, 180}, track.Y)
	assert.Equal(t, []float64{0, 50, 90}, track.Distance)
	assert.Equal(t, []float64{72, 108, 144}, track.Speed)
}

func TestClient_Weather(t *testing.T) {
	c := newTestClient(t, newFixture())

	w, err := c.Weather(context.Background(), race)
	require.NoError(t, err)

	assert.Equal(t, 18.5, w.AirTemperature)
	assert.Equal(t, 26.5, w.TrackTemperature)
	assert.Equal(t, 46.0, w.Humidity)
	assert.True(t, w.Rainfall)
	assert.Equal(t, 2, w.Samples)
	assert.True(t, w.WindDirection < 0.5 || w.WindDirection > 359.5)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		kind   ErrorKind
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"boom"}`, want: types.ErrProviderUnavailable, kind: KindUnavailable},
		{name: "not found", status: http.StatusNotFound, body: ``, want: types.ErrNotFound, kind: KindNotFound},
		{name: "empty result", body: `[]`, want: types.ErrNotFound, kind: KindNotFound},
		{name: "malformed", body: `{"meeting_key":`, want: types.ErrDecode, kind: KindDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.status["/v1/meetings"] = tt.status
			f.bodies["/v1/meetings"] = tt.body
			c := newTestClient(t, f)

			_, err := c.Schedule(context.Background(), 2024)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var pe *ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, "meetings", pe.Op)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(Config{BaseURL: srv.URL, Timeout: time.Second}, nil, logger.Nop())
	_, err := c.Schedule(context.Background(), 2024)
	assert.ErrorIs(t, err, types.ErrProviderUnavailable)
}

func TestClient_LookupsAreCached(t *testing.T) {
	f := newFixture()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c := New(Config{BaseURL: srv.URL + "/v1"}, cache.NewTiered(time.Minute, logger.Nop()).With("memory", cache.NewMemory(0)), logger.Nop())

	_, err := c.Drivers(context.Background(), race)
	require.NoError(t, err)
	_, err = c.Weather(context.Background(), race)
	require.NoError(t, err)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Len(t, f.queries["/v1/meetings"], 1)
	assert.Len(t, f.queries["/v1/sessions"], 1)
}

func TestBuildTelemetry_UnorderedSamples(t *testing.T) {
	start := time.Date(2024, 3, 2, 15, 5, 0, 0, time.UTC)
	at := func(sec int) timestamp { return timestamp{Time: start.Add(time.Duration(sec) * time.Second)} }

	tel := buildTelemetry(start, []carDataDTO{
		{Date: at(2), Speed: 144, NGear: 7},
		{Date: at(0), Speed: 72, NGear: 5},
		{Date: at(1), Speed: 108, NGear: 6},
	})

	assert.Equal(t, []float64{0, 1, 2}, tel.Time)
	assert.Equal(t, []float64{72, 108, 144}, tel.Speed)
	assert.Equal(t, []int{5, 6, 7}, tel.Gear)
	assert.InDelta(t, 25.0, tel.Distance[1], 1e-9)
	assert.InDelta(t, 60.0, tel.Distance[2], 1e-9)
}

func TestBuildTrack_UnorderedRecords(t *testing.T) {
	start := time.Date(2024, 3, 2, 15, 5, 0, 0, time.UTC)
	at := func(sec int) timestamp { return timestamp{Time: start.Add(time.Duration(sec) * time.Second)} }

	track := buildTrack(
		[]locationDTO{
			{Date: at(1), X: 130, Y: 140},
			{Date: at(2), X: 130, Y: 180},
			{Date: at(0), X: 100, Y: 100},
		},
		[]carDataDTO{
			{Date: at(2), Speed: 144},
			{Date: at(0), Speed: 72},
			{Date: at(1), Speed: 108},
		},
	)

	assert.Equal(t, []float64{100, 130, 130}, track.X)
	assert.Equal(t, []float64{0, 50, 90}, track.Distance)
	assert.Equal(t, []float64{72, 108, 144}, track.Speed)
}
