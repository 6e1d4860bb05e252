package models

import (
	"fmt"

	"github.com/Temutjin2k/lapla/internal/domain/types"
)

// SessionKey identifies a session within a season.
type SessionKey struct {
	Year  int
	Round int
	Type  types.SessionType
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%d/%d/%s", k.Year, k.Round, k.Type)
}

// SessionInfo describes one session of a race weekend.
type SessionInfo struct {
	Year          int               `json:"year"`
	RoundNumber   int               `json:"round_number"`
	SessionName   string            `json:"session_name"`
	SessionType   types.SessionType `json:"session_type"`
	GrandPrixName string            `json:"grand_prix_name"`
	CircuitName   string            `json:"circuit_name"`
}

// ScheduleEvent is one round of the season calendar.
type ScheduleEvent struct {
	RoundNumber   int     `json:"round_number"`
	GrandPrixName string  `json:"grand_prix_name"`
	CircuitName   string  `json:"circuit_name"`
	Date          *string `json:"date"`
}

// SessionSummary is the short form served by the sessions endpoint.
type SessionSummary struct {
	Name string            `json:"name"`
	Type types.SessionType `json:"type"`
}
