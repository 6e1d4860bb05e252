package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDriverInfo(t *testing.T) {
	d := NewDriverInfo(" ver ", "Max Verstappen", "Red Bull Racing")
	assert.Equal(t, DriverInfo{DriverCode: "VER", DriverName: "Max Verstappen", TeamName: "Red Bull Racing", TeamColor: "#3671C6"}, d)

	assert.Equal(t, "#5E8FAA", NewDriverInfo("TSU", "Yuki Tsunoda", "Racing Bulls").TeamColor)
	assert.Equal(t, "#C92D4B", NewDriverInfo("HUL", "Nico Hulkenberg", "Kick Sauber").TeamColor)

	unknown := NewDriverInfo("XYZ", "", "")
	assert.Equal(t, DefaultTeamColor, unknown.TeamColor)
	assert.Equal(t, "XYZ", unknown.DriverName)
	assert.Equal(t, "Unknown Team", unknown.TeamName)
}

func TestFormatLapTime(t *testing.T) {
	assert.Equal(t, "1:28.000", FormatLapTime(88))
	assert.Equal(t, "1:29.167", FormatLapTime(89.16666))
	assert.Equal(t, "0:59.999", FormatLapTime(59.9994))
	assert.Equal(t, "2:00.000", FormatLapTime(119.9999))
	assert.Equal(t, "0:00.000", FormatLapTime(-3))
}

func TestTelemetryConsistent(t *testing.T) {
	tel := TelemetryData{
		Distance: []float64{0, 1}, Speed: []float64{0, 1}, Throttle: []float64{0, 1},
		Brake: []float64{0, 1}, Gear: []int{1, 2}, DRS: []int{0, 0}, Time: []float64{0, 0.1},
	}
	assert.True(t, tel.Consistent())

	tel.Gear = tel.Gear[:1]
	assert.False(t, tel.Consistent())

	track := TrackData{X: []float64{0, 1}, Y: []float64{0, 1}, Distance: []float64{0, 1.4}}
	assert.True(t, track.Consistent())
	track.Speed = []float64{100}
	assert.False(t, track.Consistent())
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "2024/3/Q", SessionKey{Year: 2024, Round: 3, Type: "Q"}.String())
}

func TestLapsByDriver(t *testing.T) {
	m := LapsByDriver([]DriverLaps{{DriverCode: "VER", Laps: []LapData{{LapNumber: 1}}}, {DriverCode: "HAM"}})
	assert.Len(t, m, 2)
	assert.Len(t, m["VER"], 1)
}
