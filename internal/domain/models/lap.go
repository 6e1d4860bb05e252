package models

import "fmt"

// LapData is one completed lap of one driver.
// Optional fields are nil when the provider had no value.
type LapData struct {
	LapNumber      int      `json:"lap_number"`
	LapTime        *float64 `json:"lap_time"`
	Sector1Time    *float64 `json:"sector_1_time"`
	Sector2Time    *float64 `json:"sector_2_time"`
	Sector3Time    *float64 `json:"sector_3_time"`
	IsPersonalBest bool     `json:"is_personal_best"`
	Compound       *string  `json:"compound"`
	TyreLife       *int     `json:"tyre_life"`
}

// DriverLaps keeps a driver's laps together so callers can preserve request order.
type DriverLaps struct {
	DriverCode string    `json:"driver"`
	Laps       []LapData `json:"laps"`
}

// LapsByDriver turns an ordered list into the map shape served to clients.
func LapsByDriver(list []DriverLaps) map[string][]LapData {
	out := make(map[string][]LapData, len(list))
	for _, dl := range list {
		out[dl.DriverCode] = dl.Laps
	}
	return out
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// FormatLapTime renders seconds as m:ss.mmm.
func FormatLapTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := int64(seconds*1000 + 0.5)
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}
