package models

import "strings"

// DefaultTeamColor is used for teams missing from the colour table.
const DefaultTeamColor = "#808080"

// teamColors maps team names, current and former, to their livery colour.
var teamColors = map[string]string{
	"Red Bull Racing": "#3671C6",
	"Ferrari":         "#ED1131",
	"Mercedes":        "#6CD3BF",
	"McLaren":         "#F47600",
	"Alpine":          "#2293D1",
	"AlphaTauri":      "#5E8FAA",
	"RB":              "#5E8FAA",
	"Racing Bulls":    "#5E8FAA",
	"Aston Martin":    "#358C75",
	"Williams":        "#37003C",
	"Alfa Romeo":      "#C92D4B",
	"Kick Sauber":     "#C92D4B",
	"Sauber":          "#C92D4B",
	"Haas":            "#B6BABD",
	"Haas F1 Team":    "#B6BABD",
}

// TeamColor looks a team up in the colour table.
func TeamColor(team string) string {
	if c, ok := teamColors[strings.TrimSpace(team)]; ok {
		return c
	}
	return DefaultTeamColor
}

// DriverInfo is one entry of a session's driver roster.
type DriverInfo struct {
	DriverCode string `json:"code"`
	DriverName string `json:"name"`
	TeamName   string `json:"team"`
	TeamColor  string `json:"color"`
}

// NewDriverInfo builds a DriverInfo with its colour resolved from the team table.
func NewDriverInfo(code, name, team string) DriverInfo {
	code = strings.ToUpper(strings.TrimSpace(code))
	if strings.TrimSpace(name) == "" {
		name = code
	}
	if strings.TrimSpace(team) == "" {
		team = "Unknown Team"
	}
	return DriverInfo{
		DriverCode: code,
		DriverName: strings.TrimSpace(name),
		TeamName:   team,
		TeamColor:  TeamColor(team),
	}
}
