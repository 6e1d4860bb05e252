package types

import "strings"

type ServiceMode string

// Dashboard Service - serves the telemetry dashboard API
const (
	DashboardService ServiceMode = "dashboard"
)

// SessionType is the short code of a session within a race weekend.
type SessionType string

func (s SessionType) String() string {
	return string(s)
}

const (
	Practice1          SessionType = "FP1"
	Practice2          SessionType = "FP2"
	Practice3          SessionType = "FP3"
	SprintQualifying   SessionType = "SQ"
	Sprint             SessionType = "S"
	Qualifying         SessionType = "Q"
	Race               SessionType = "R"
	UnknownSessionType SessionType = ""
)

// SessionTypes lists the known session codes in weekend order.
var SessionTypes = []SessionType{Practice1, Practice2, Practice3, SprintQualifying, Sprint, Qualifying, Race}

var sessionNames = map[SessionType]string{
	Practice1:        "Practice 1",
	Practice2:        "Practice 2",
	Practice3:        "Practice 3",
	SprintQualifying: "Sprint Qualifying",
	Sprint:           "Sprint",
	Qualifying:       "Qualifying",
	Race:             "Race",
}

// Name returns the display name of the session, e.g. "Practice 1".
func (s SessionType) Name() string {
	return sessionNames[s]
}

// Valid reports whether s is a known session code.
func (s SessionType) Valid() bool {
	_, ok := sessionNames[s]
	return ok
}

// ParseSessionType accepts a session code case-insensitively.
func ParseSessionType(s string) SessionType {
	st := SessionType(strings.ToUpper(strings.TrimSpace(s)))
	if st.Valid() {
		return st
	}
	return UnknownSessionType
}

// SessionTypeFromName maps a provider session name ("Practice 1", "Sprint Shootout") to its code.
func SessionTypeFromName(name string) SessionType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "practice 1":
		return Practice1
	case "practice 2":
		return Practice2
	case "practice 3":
		return Practice3
	case "sprint qualifying", "sprint shootout":
		return SprintQualifying
	case "sprint":
		return Sprint
	case "qualifying":
		return Qualifying
	case "race":
		return Race
	default:
		return UnknownSessionType
	}
}

// InsightCategory groups session types for the insight catalog.
type InsightCategory string

const (
	CategoryPractice   InsightCategory = "practice"
	CategoryQualifying InsightCategory = "qualifying"
	CategoryRace       InsightCategory = "race"
)

// Category maps the session to its insight category. Unknown sessions fall back to race.
func (s SessionType) Category() InsightCategory {
	switch s {
	case Practice1, Practice2, Practice3:
		return CategoryPractice
	case SprintQualifying, Qualifying:
		return CategoryQualifying
	default:
		return CategoryRace
	}
}

// Compound is the tyre compound in effect for a lap.
type Compound string

const (
	CompoundSoft         Compound = "SOFT"
	CompoundMedium       Compound = "MEDIUM"
	CompoundHard         Compound = "HARD"
	CompoundIntermediate Compound = "INTERMEDIATE"
	CompoundWet          Compound = "WET"
)

// ExportFormat is the serialization requested from the export endpoint.
type ExportFormat string

const (
	ExportJSON  ExportFormat = "json"
	ExportCSV   ExportFormat = "csv"
	ExportTable ExportFormat = "table"
)

func (f ExportFormat) Valid() bool {
	switch f {
	case ExportJSON, ExportCSV, ExportTable:
		return true
	}
	return false
}

// DataSource tells the client whether a payload came from the provider or was synthesized.
type DataSource string

const (
	SourceProvider DataSource = "provider"
	SourceSample   DataSource = "sample"
)
