package dashboard

import (
	"context"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
)

// Gateway is the timing-data provider. It never substitutes data on failure.
type Gateway interface {
	Schedule(ctx context.Context, year int) ([]models.ScheduleEvent, error)
	Sessions(ctx context.Context, year, round int) (map[types.SessionType]models.SessionInfo, error)
	Drivers(ctx context.Context, key models.SessionKey) ([]models.DriverInfo, error)
	Laps(ctx context.Context, key models.SessionKey, codes []string) ([]models.DriverLaps, error)
	Telemetry(ctx context.Context, key models.SessionKey, code string, lap int) (models.TelemetryData, error)
	Track(ctx context.Context, key models.SessionKey) (models.TrackData, error)
	Weather(ctx context.Context, key models.SessionKey) (models.WeatherData, error)
}

// Sampler produces placeholder data when the provider yields nothing.
type Sampler interface {
	Drivers() []models.DriverInfo
	Laps(count int) []models.LapData
	Telemetry() models.TelemetryData
	Track() models.TrackData
}

type Narrator interface {
	Narrate(ctx context.Context, session string, perf []models.PerformanceMetrics, extra string) models.NarrativeInsights
}
