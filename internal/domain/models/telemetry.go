package models

// TelemetryData holds per-sample channels of one lap. All slices have equal length.
type TelemetryData struct {
	Distance []float64 `json:"distance"`
	Speed    []float64 `json:"speed"`
	Throttle []float64 `json:"throttle"`
	Brake    []float64 `json:"brake"`
	Gear     []int     `json:"gear"`
	DRS      []int     `json:"drs"`
	Time     []float64 `json:"time"`
}

// Len returns the number of samples.
func (t TelemetryData) Len() int {
	return len(t.Distance)
}

// Consistent reports whether every channel has the same length.
func (t TelemetryData) Consistent() bool {
	n := len(t.Distance)
	return len(t.Speed) == n && len(t.Throttle) == n && len(t.Brake) == n &&
		len(t.Gear) == n && len(t.DRS) == n && len(t.Time) == n
}

// TrackData is the geometric path of a reference lap.
// Speed is optional and, when present, parallel to X and Y.
type TrackData struct {
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
	Distance []float64 `json:"distance"`
	Speed    []float64 `json:"speed,omitempty"`
}

// Consistent reports whether the coordinate channels share one length.
func (t TrackData) Consistent() bool {
	n := len(t.X)
	if len(t.Y) != n || len(t.Distance) != n {
		return false
	}
	return len(t.Speed) == 0 || len(t.Speed) == n
}

// WeatherData is a snapshot of the session's conditions, averaged over the provider samples.
type WeatherData struct {
	AirTemperature   float64 `json:"air_temperature"`
	TrackTemperature float64 `json:"track_temperature"`
	Humidity         float64 `json:"humidity"`
	Pressure         float64 `json:"pressure"`
	Rainfall         bool    `json:"rainfall"`
	WindSpeed        float64 `json:"wind_speed"`
	WindDirection    float64 `json:"wind_direction"`
	Samples          int     `json:"samples"`
}
