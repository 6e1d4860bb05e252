package openf1

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"time"
)

// timestamp accepts the provider's ISO 8601 dates, with or without zone and fraction.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

// query renders the timestamp in the form the provider's date filters accept.
func (t timestamp) query() string {
	return t.UTC().Format("2006-01-02T15:04:05.000")
}

type meetingDTO struct {
	MeetingKey       int       `json:"meeting_key"`
	MeetingName      string    `json:"meeting_name"`
	MeetingFullName  string    `json:"meeting_official_name"`
	Location         string    `json:"location"`
	CountryName      string    `json:"country_name"`
	CircuitShortName string    `json:"circuit_short_name"`
	DateStart        timestamp `json:"date_start"`
	Year             int       `json:"year"`
}

type sessionDTO struct {
	SessionKey  int       `json:"session_key"`
	MeetingKey  int       `json:"meeting_key"`
	SessionName string    `json:"session_name"`
	SessionType string    `json:"session_type"`
	DateStart   timestamp `json:"date_start"`
	DateEnd     timestamp `json:"date_end"`
}

type driverDTO struct {
	DriverNumber int    `json:"driver_number"`
	NameAcronym  string `json:"name_acronym"`
	FullName     string `json:"full_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	TeamName     string `json:"team_name"`
	TeamColour   string `json:"team_colour"`
}

func (d driverDTO) displayName() string {
	if d.FirstName != "" || d.LastName != "" {
		return strings.TrimSpace(d.FirstName + " " + d.LastName)
	}
	return d.FullName
}

type lapDTO struct {
	DriverNumber    int       `json:"driver_number"`
	LapNumber       int       `json:"lap_number"`
	LapDuration     *float64  `json:"lap_duration"`
	DurationSector1 *float64  `json:"duration_sector_1"`
	DurationSector2 *float64  `json:"duration_sector_2"`
	DurationSector3 *float64  `json:"duration_sector_3"`
	DateStart       timestamp `json:"date_start"`
	IsPitOutLap     bool      `json:"is_pit_out_lap"`
}

type stintDTO struct {
	DriverNumber   int    `json:"driver_number"`
	StintNumber    int    `json:"stint_number"`
	Compound       string `json:"compound"`
	LapStart       int    `json:"lap_start"`
	LapEnd         int    `json:"lap_end"`
	TyreAgeAtStart int    `json:"tyre_age_at_start"`
}

// sortByDate orders records by sample time in place; the provider does not guarantee order.
func sortByDate[T interface{ when() time.Time }](records []T) {
	slices.SortStableFunc(records, func(a, b T) int { return a.when().Compare(b.when()) })
}

func (d carDataDTO) when() time.Time  { return d.Date.Time }
func (d locationDTO) when() time.Time { return d.Date.Time }

type carDataDTO struct {
	Date     timestamp `json:"date"`
	Speed    float64   `json:"speed"`
	Throttle float64   `json:"throttle"`
	Brake    float64   `json:"brake"`
	NGear    int       `json:"n_gear"`
	DRS      int       `json:"drs"`
	RPM      int       `json:"rpm"`
}

type locationDTO struct {
	Date timestamp `json:"date"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Z    float64   `json:"z"`
}

type weatherDTO struct {
	Date             timestamp `json:"date"`
	AirTemperature   float64   `json:"air_temperature"`
	TrackTemperature float64   `json:"track_temperature"`
	Humidity         float64   `json:"humidity"`
	Pressure         float64   `json:"pressure"`
	Rainfall         float64   `json:"rainfall"`
	WindSpeed        float64   `json:"wind_speed"`
	WindDirection    float64   `json:"wind_direction"`
}
