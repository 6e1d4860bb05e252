package openf1

import (
	"context"
	"math"

	"github.com/Temutjin2k/lapla/internal/domain/models"
)

// Weather averages the weather samples of a session. Rainfall is reported if any sample saw rain.
func (c *Client) Weather(ctx context.Context, key models.SessionKey) (models.WeatherData, error) {
	s, err := c.session(ctx, key)
	if err != nil {
		return models.WeatherData{}, logFailure(ctx, err)
	}

	var samples []weatherDTO
	if err := c.get(ctx, "weather", "weather", &samples, eq("session_key", s.SessionKey)); err != nil {
		return models.WeatherData{}, logFailure(ctx, err)
	}

	return averageWeather(samples), nil
}

func averageWeather(samples []weatherDTO) models.WeatherData {
	var w models.WeatherData
	if len(samples) == 0 {
		return w
	}
	var sin, cos float64
	for _, s := range samples {
		w.AirTemperature += s.AirTemperature
		w.TrackTemperature += s.TrackTemperature
		w.Humidity += s.Humidity
		w.Pressure += s.Pressure
		w.WindSpeed += s.WindSpeed
		rad := s.WindDirection * math.Pi / 180
		sin += math.Sin(rad)
		cos += math.Cos(rad)
		if s.Rainfall > 0 {
			w.Rainfall = true
		}
	}
	n := float64(len(samples))
	w.AirTemperature = round1(w.AirTemperature / n)
	w.TrackTemperature = round1(w.TrackTemperature / n)
	w.Humidity = round1(w.Humidity / n)
	w.Pressure = round1(w.Pressure / n)
	w.WindSpeed = round1(w.WindSpeed / n)
	// Wind direction is averaged on the circle so 350 and 10 give 0, not 180.
	deg := math.Atan2(sin, cos) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	w.WindDirection = round1(deg)
	w.Samples = len(samples)
	return w
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
