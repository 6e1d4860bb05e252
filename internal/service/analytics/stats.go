package analytics

import (
	"math"
	"slices"

	"github.com/Temutjin2k/lapla/internal/domain/models"
)

// lapTimes returns the defined lap times in lap order.
func lapTimes(laps []models.LapData) []float64 {
	out := make([]float64, 0, len(laps))
	for _, l := range laps {
		if l.LapTime != nil {
			out = append(out, *l.LapTime)
		}
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population standard deviation.
func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sq := 0.0
	for _, x := range xs {
		sq += (x - m) * (x - m)
	}
	return math.Sqrt(sq / float64(len(xs)))
}

func minOf(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return slices.Min(xs), true
}

// clampScore bounds a score to [0, 100].
func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

// round rounds to the given number of decimals.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func ptr(v float64) *float64 { return &v }
