package openf1

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
)

// Track returns the path of the fastest lap of the session with the speed at each point.
func (c *Client) Track(ctx context.Context, key models.SessionKey) (models.TrackData, error) {
	s, err := c.session(ctx, key)
	if err != nil {
		return models.TrackData{}, logFailure(ctx, err)
	}

	var laps []lapDTO
	if err := c.get(ctx, "laps", "laps", &laps, eq("session_key", s.SessionKey)); err != nil {
		return models.TrackData{}, logFailure(ctx, err)
	}
	ref, ok := fastestLap(laps)
	if !ok {
		return models.TrackData{}, logFailure(ctx, notFound("laps", "no timed lap in session %d", s.SessionKey))
	}

	to := timestamp{Time: ref.DateStart.Add(time.Duration(*ref.LapDuration * float64(time.Second)))}
	var points []locationDTO
	if err := c.get(ctx, "location", "location", &points,
		eq("session_key", s.SessionKey), eq("driver_number", ref.DriverNumber),
		gte("date", ref.DateStart.query()), lt("date", to.query())); err != nil {
		return models.TrackData{}, logFailure(ctx, err)
	}

	// Speed is optional for the path, so a missing car_data window is not an error.
	samples, err := c.carData(ctx, s.SessionKey, ref.DriverNumber, ref.DateStart, *ref.LapDuration)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return models.TrackData{}, logFailure(ctx, err)
	}

	track := buildTrack(points, samples)
	if len(track.X) < 2 {
		return models.TrackData{}, logFailure(ctx, notFound("location", "no usable positions in session %d", s.SessionKey))
	}
	return track, nil
}

func fastestLap(laps []lapDTO) (lapDTO, bool) {
	var (
		best  lapDTO
		found bool
	)
	for _, l := range laps {
		if l.LapDuration == nil || l.DateStart.IsZero() || l.IsPitOutLap {
			continue
		}
		if !found || *l.LapDuration < *best.LapDuration {
			best, found = l, true
		}
	}
	return best, found
}

// buildTrack drops parked (0,0) positions, accumulates path length and resamples
// speed onto the position timestamps by nearest sample.
func buildTrack(points []locationDTO, samples []carDataDTO) models.TrackData {
	sortByDate(points)
	sortByDate(samples)

	t := models.TrackData{}
	for _, p := range points {
		if p.X == 0 && p.Y == 0 {
			continue
		}
		if n := len(t.X); n > 0 {
			step := math.Hypot(p.X-t.X[n-1], p.Y-t.Y[n-1])
			t.Distance = append(t.Distance, t.Distance[n-1]+step)
		} else {
			t.Distance = append(t.Distance, 0)
		}
		t.X = append(t.X, p.X)
		t.Y = append(t.Y, p.Y)
	}

	if len(samples) == 0 || len(t.X) == 0 {
		return t
	}

	t.Speed = make([]float64, 0, len(t.X))
	j := 0
	for _, p := range points {
		if p.X == 0 && p.Y == 0 {
			continue
		}
		for j+1 < len(samples) && absDur(samples[j+1].Date.Sub(p.Date.Time)) <= absDur(samples[j].Date.Sub(p.Date.Time)) {
			j++
		}
		t.Speed = append(t.Speed, samples[j].Speed)
	}
	return t
}

func absDur(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
