package openf1

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/cache"
)

const lookupTTL = 6 * time.Hour

// meetings returns the non-testing meetings of a year ordered by start date.
// A meeting's index + 1 is its round number.
func (c *Client) meetings(ctx context.Context, year int) ([]meetingDTO, error) {
	return cache.Memoize(ctx, c.lookups, lookupKey("meetings", year), lookupTTL, func(ctx context.Context) ([]meetingDTO, error) {
		var all []meetingDTO
		if err := c.get(ctx, "meetings", "meetings", &all, eq("year", year)); err != nil {
			return nil, err
		}

		rounds := make([]meetingDTO, 0, len(all))
		for _, m := range all {
			if isTesting(m) {
				continue
			}
			rounds = append(rounds, m)
		}
		slices.SortStableFunc(rounds, func(a, b meetingDTO) int {
			return a.DateStart.Compare(b.DateStart.Time)
		})
		return rounds, nil
	})
}

func isTesting(m meetingDTO) bool {
	name := strings.ToLower(m.MeetingName + " " + m.MeetingFullName)
	return strings.Contains(name, "testing")
}

func (c *Client) meeting(ctx context.Context, year, round int) (meetingDTO, error) {
	rounds, err := c.meetings(ctx, year)
	if err != nil {
		return meetingDTO{}, err
	}
	if round < 1 || round > len(rounds) {
		return meetingDTO{}, notFound("meetings", "round %d of %d has %d rounds", round, year, len(rounds))
	}
	return rounds[round-1], nil
}

// Schedule lists the rounds of a season.
func (c *Client) Schedule(ctx context.Context, year int) ([]models.ScheduleEvent, error) {
	rounds, err := c.meetings(ctx, year)
	if err != nil {
		return nil, logFailure(ctx, err)
	}

	events := make([]models.ScheduleEvent, 0, len(rounds))
	for i, m := range rounds {
		ev := models.ScheduleEvent{
			RoundNumber:   i + 1,
			GrandPrixName: m.MeetingName,
			CircuitName:   circuitName(m),
		}
		if !m.DateStart.IsZero() {
			ev.Date = models.String(m.DateStart.Format(time.DateOnly))
		}
		events = append(events, ev)
	}
	return events, nil
}

func circuitName(m meetingDTO) string {
	if m.Location != "" {
		return m.Location
	}
	return m.CircuitShortName
}

// sessions returns the provider sessions of a round keyed by session code.
func (c *Client) sessions(ctx context.Context, year, round int) (meetingDTO, map[types.SessionType]sessionDTO, error) {
	m, err := c.meeting(ctx, year, round)
	if err != nil {
		return meetingDTO{}, nil, err
	}

	list, err := cache.Memoize(ctx, c.lookups, lookupKey("sessions", m.MeetingKey), lookupTTL, func(ctx context.Context) ([]sessionDTO, error) {
		var out []sessionDTO
		if err := c.get(ctx, "sessions", "sessions", &out, eq("meeting_key", m.MeetingKey)); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return meetingDTO{}, nil, err
	}

	byType := make(map[types.SessionType]sessionDTO, len(list))
	for _, s := range list {
		st := types.SessionTypeFromName(s.SessionName)
		if st == types.UnknownSessionType {
			continue
		}
		byType[st] = s
	}
	return m, byType, nil
}

func (c *Client) session(ctx context.Context, key models.SessionKey) (sessionDTO, error) {
	_, byType, err := c.sessions(ctx, key.Year, key.Round)
	if err != nil {
		return sessionDTO{}, err
	}
	s, ok := byType[key.Type]
	if !ok {
		return sessionDTO{}, notFound("sessions", "session %s not held at %d round %d", key.Type, key.Year, key.Round)
	}
	return s, nil
}

// Sessions lists the sessions held at a round.
func (c *Client) Sessions(ctx context.Context, year, round int) (map[types.SessionType]models.SessionInfo, error) {
	m, byType, err := c.sessions(ctx, year, round)
	if err != nil {
		return nil, logFailure(ctx, err)
	}
	if len(byType) == 0 {
		return nil, logFailure(ctx, notFound("sessions", "no sessions for %d round %d", year, round))
	}

	out := make(map[types.SessionType]models.SessionInfo, len(byType))
	for st := range byType {
		out[st] = models.SessionInfo{
			Year:          year,
			RoundNumber:   round,
			SessionName:   st.Name(),
			SessionType:   st,
			GrandPrixName: m.MeetingName,
			CircuitName:   circuitName(m),
		}
	}
	return out, nil
}
