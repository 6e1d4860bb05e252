package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
)

func (s *Service) Schedule(ctx context.Context, year int) ([]models.ScheduleEvent, error) {
	events, err := memo(ctx, s, func(ctx context.Context) ([]models.ScheduleEvent, error) {
		return s.gw.Schedule(ctx, year)
	}, "schedule", strconv.Itoa(year))
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("schedule %d: %w", year, err))
	}
	return events, nil
}

// Sessions lists the sessions of a round keyed by session type.
func (s *Service) Sessions(ctx context.Context, year, round int) (map[types.SessionType]models.SessionSummary, error) {
	sessions, err := memo(ctx, s, func(ctx context.Context) (map[types.SessionType]models.SessionInfo, error) {
		return s.gw.Sessions(ctx, year, round)
	}, "sessions", strconv.Itoa(year), strconv.Itoa(round))
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("sessions %d/%d: %w", year, round, err))
	}

	out := make(map[types.SessionType]models.SessionSummary, len(sessions))
	for st, info := range sessions {
		out[st] = models.SessionSummary{Name: info.SessionName, Type: st}
	}
	return out, nil
}

func (s *Service) Drivers(ctx context.Context, key models.SessionKey) Result[[]models.DriverInfo] {
	ctx = wrap.WithSession(ctx, key.String())

	drivers, err := memo(ctx, s, func(ctx context.Context) ([]models.DriverInfo, error) {
		return s.gw.Drivers(ctx, key)
	}, "drivers", key.String())
	if err != nil || len(drivers) == 0 {
		s.fallback(ctx, "drivers", err)
		return sampled(s.sampler.Drivers())
	}
	return provided(drivers)
}

// Laps returns lap records for codes in request order. Drivers the provider has
// no laps for get sample laps; the result is marked sample if any driver was synthesized.
func (s *Service) Laps(ctx context.Context, key models.SessionKey, codes []string) Result[[]models.DriverLaps] {
	ctx = wrap.WithSession(ctx, key.String())
	codes = normalizeCodes(codes)

	got, err := memo(ctx, s, func(ctx context.Context) ([]models.DriverLaps, error) {
		return s.gw.Laps(ctx, key, codes)
	}, append([]string{"laps", key.String()}, codes...)...)
	if err != nil {
		s.fallback(ctx, "laps", err)
	}
	byDriver := models.LapsByDriver(got)

	res := Result[[]models.DriverLaps]{
		Data:   make([]models.DriverLaps, 0, len(codes)),
		Source: types.SourceProvider,
	}
	for _, code := range codes {
		laps := byDriver[code]
		if len(laps) == 0 {
			if err == nil {
				s.fallback(wrap.WithDriver(ctx, code), "laps", nil)
			}
			laps = s.sampler.Laps(s.cfg.SampleLapCount)
			res.Source = types.SourceSample
		}
		res.Data = append(res.Data, models.DriverLaps{DriverCode: code, Laps: laps})
	}
	return res
}

func (s *Service) Telemetry(ctx context.Context, key models.SessionKey, code string, lap int) Result[models.TelemetryData] {
	code = strings.ToUpper(code)
	ctx = wrap.WithDriver(wrap.WithSession(ctx, key.String()), code)

	t, err := memo(ctx, s, func(ctx context.Context) (models.TelemetryData, error) {
		return s.gw.Telemetry(ctx, key, code, lap)
	}, "telemetry", key.String(), code, strconv.Itoa(lap))
	if err != nil || t.Len() == 0 || !t.Consistent() {
		s.fallback(ctx, "telemetry", err)
		return sampled(s.sampler.Telemetry())
	}
	return provided(t)
}

func (s *Service) Track(ctx context.Context, key models.SessionKey) Result[models.TrackData] {
	ctx = wrap.WithSession(ctx, key.String())

	t, err := memo(ctx, s, func(ctx context.Context) (models.TrackData, error) {
		return s.gw.Track(ctx, key)
	}, "track", key.String())
	if err != nil || len(t.X) < 2 || !t.Consistent() {
		s.fallback(ctx, "track", err)
		return sampled(s.sampler.Track())
	}
	return provided(t)
}

// Weather has no sample fallback.
func (s *Service) Weather(ctx context.Context, key models.SessionKey) (models.WeatherData, error) {
	ctx = wrap.WithSession(ctx, key.String())

	w, err := memo(ctx, s, func(ctx context.Context) (models.WeatherData, error) {
		return s.gw.Weather(ctx, key)
	}, "weather", key.String())
	if err != nil {
		return models.WeatherData{}, wrap.Error(ctx, fmt.Errorf("%w: %w", types.ErrWeatherUnavailable, err))
	}
	if w.Samples == 0 {
		return models.WeatherData{}, wrap.Error(ctx, types.ErrWeatherUnavailable)
	}
	return w, nil
}

// resolveCodes falls back to the session roster when no drivers were asked for.
func (s *Service) resolveCodes(ctx context.Context, key models.SessionKey, codes []string) []string {
	codes = normalizeCodes(codes)
	if len(codes) > 0 {
		return codes
	}
	for _, d := range s.Drivers(ctx, key).Data {
		codes = append(codes, d.DriverCode)
	}
	return codes
}

// normalizeCodes upper-cases, trims and de-duplicates driver codes keeping their order.
func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" || slices.Contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}
