package openf1

import (
	"context"
	"strings"
	"time"

	"github.com/Temutjin2k/lapla/internal/domain/models"
)

// drsOpen is the lowest provider DRS code meaning the flap is open or about to open.
const drsOpen = 10

// Telemetry returns the car channels of one lap.
func (c *Client) Telemetry(ctx context.Context, key models.SessionKey, code string, lapNumber int) (models.TelemetryData, error) {
	code = strings.ToUpper(code)

	s, err := c.session(ctx, key)
	if err != nil {
		return models.TelemetryData{}, logFailure(ctx, err)
	}
	numbers, err := c.driverNumbers(ctx, s.SessionKey)
	if err != nil {
		return models.TelemetryData{}, logFailure(ctx, err)
	}
	number, ok := numbers[code]
	if !ok {
		return models.TelemetryData{}, logFailure(ctx, notFound("drivers", "driver %s not in session %d", code, s.SessionKey))
	}

	var laps []lapDTO
	if err := c.get(ctx, "laps", "laps", &laps,
		eq("session_key", s.SessionKey), eq("driver_number", number), eq("lap_number", lapNumber)); err != nil {
		return models.TelemetryData{}, logFailure(ctx, err)
	}
	lap := laps[0]
	if lap.LapDuration == nil || lap.DateStart.IsZero() {
		return models.TelemetryData{}, logFailure(ctx, notFound("laps", "lap %d of %s has no timing window", lapNumber, code))
	}

	samples, err := c.carData(ctx, s.SessionKey, number, lap.DateStart, *lap.LapDuration)
	if err != nil {
		return models.TelemetryData{}, logFailure(ctx, err)
	}

	return buildTelemetry(lap.DateStart.Time, samples), nil
}

func (c *Client) carData(ctx context.Context, sessionKey, number int, from timestamp, seconds float64) ([]carDataDTO, error) {
	to := timestamp{Time: from.Add(time.Duration(seconds * float64(time.Second)))}

	var out []carDataDTO
	err := c.get(ctx, "car_data", "car_data", &out,
		eq("session_key", sessionKey), eq("driver_number", number),
		gte("date", from.query()), lt("date", to.query()))
	return out, err
}

// buildTelemetry converts car samples into parallel channels. Distance is integrated
// from speed with the trapezoid rule.
func buildTelemetry(start time.Time, samples []carDataDTO) models.TelemetryData {
	sortByDate(samples)

	n := len(samples)
	t := models.TelemetryData{
		Distance: make([]float64, n),
		Speed:    make([]float64, n),
		Throttle: make([]float64, n),
		Brake:    make([]float64, n),
		Gear:     make([]int, n),
		DRS:      make([]int, n),
		Time:     make([]float64, n),
	}

	brakeScale := 1.0
	maxBrake := 0.0
	for _, s := range samples {
		maxBrake = max(maxBrake, s.Brake)
	}
	if maxBrake > 0 && maxBrake <= 1 {
		brakeScale = 100
	}

	for i, s := range samples {
		t.Time[i] = s.Date.Sub(start).Seconds()
		t.Speed[i] = s.Speed
		t.Throttle[i] = clamp(s.Throttle, 0, 100)
		t.Brake[i] = clamp(s.Brake*brakeScale, 0, 100)
		t.Gear[i] = s.NGear
		if s.DRS >= drsOpen {
			t.DRS[i] = 1
		}
		if i > 0 {
			dt := t.Time[i] - t.Time[i-1]
			avg := (t.Speed[i] + t.Speed[i-1]) / 2 / 3.6
			t.Distance[i] = t.Distance[i-1] + avg*dt
		}
	}
	return t
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
