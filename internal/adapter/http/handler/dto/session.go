package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/validator"
)

const (
	maxRound   = 30
	maxDrivers = 20
	maxContext = 2000
)

// Seasons bounds the year path parameter.
type Seasons struct {
	First, Last int
}

type YearReq struct {
	Year int

	raw string
}

func NewYearReq(r *http.Request) YearReq {
	raw := r.PathValue("year")
	year, _ := strconv.Atoi(raw)
	return YearReq{Year: year, raw: raw}
}

func (y *YearReq) Validate(v *validator.Validator, s Seasons) {
	v.Check(y.raw != "", "year", "must be provided")
	v.Check(validator.Between(y.Year, s.First, s.Last+1), "year", fmt.Sprintf("must be between %d and %d", s.First, s.Last+1))
}

type RoundReq struct {
	YearReq
	Round int

	rawRound string
}

func NewRoundReq(r *http.Request) RoundReq {
	raw := r.PathValue("round")
	round, _ := strconv.Atoi(raw)
	return RoundReq{YearReq: NewYearReq(r), Round: round, rawRound: raw}
}

func (q *RoundReq) Validate(v *validator.Validator, s Seasons) {
	q.YearReq.Validate(v, s)
	v.Check(validator.Between(q.Round, 1, maxRound), "round", fmt.Sprintf("must be a number between 1 and %d", maxRound))
}

// SessionReq addresses one session: /{year}/{round}/{session}.
type SessionReq struct {
	RoundReq
	Session types.SessionType
}

func NewSessionReq(r *http.Request) SessionReq {
	return SessionReq{
		RoundReq: NewRoundReq(r),
		Session:  types.ParseSessionType(r.PathValue("session")),
	}
}

func (q *SessionReq) Validate(v *validator.Validator, s Seasons) {
	q.RoundReq.Validate(v, s)
	v.Check(q.Session.Valid(), "session", "must be one of FP1, FP2, FP3, SQ, S, Q, R")
}

func (q SessionReq) Key() models.SessionKey {
	return models.SessionKey{Year: q.Year, Round: q.Round, Type: q.Session}
}

// LapReq addresses one lap of one driver.
type LapReq struct {
	SessionReq
	Driver string
	Lap    int
}

func NewLapReq(r *http.Request) LapReq {
	lap, _ := strconv.Atoi(r.PathValue("lap"))
	return LapReq{
		SessionReq: NewSessionReq(r),
		Driver:     strings.ToUpper(r.PathValue("driver")),
		Lap:        lap,
	}
}

func (q *LapReq) Validate(v *validator.Validator, s Seasons) {
	q.SessionReq.Validate(v, s)
	v.Check(validator.Matches(q.Driver, validator.DriverCodeRX), "driver", "must be a driver code such as VER")
	v.Check(q.Lap >= 1, "lap", "must be a positive lap number")
}

// DriverReq addresses one driver of a session.
type DriverReq struct {
	SessionReq
	Driver string
}

func NewDriverReq(r *http.Request) DriverReq {
	return DriverReq{
		SessionReq: NewSessionReq(r),
		Driver:     strings.ToUpper(r.PathValue("driver")),
	}
}

func (q *DriverReq) Validate(v *validator.Validator, s Seasons) {
	q.SessionReq.Validate(v, s)
	v.Check(validator.Matches(q.Driver, validator.DriverCodeRX), "driver", "must be a driver code such as VER")
}

// ParseDrivers reads ?drivers=VER,HAM as well as repeated drivers parameters.
func ParseDrivers(r *http.Request) []string {
	var codes []string
	for _, raw := range r.URL.Query()["drivers"] {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
				codes = append(codes, c)
			}
		}
	}
	return codes
}

func ValidateDrivers(v *validator.Validator, codes []string) {
	v.Check(len(codes) <= maxDrivers, "drivers", fmt.Sprintf("must not contain more than %d drivers", maxDrivers))
	for _, c := range codes {
		if !validator.Matches(c, validator.DriverCodeRX) {
			v.AddError("drivers", fmt.Sprintf("invalid driver code %q", c))
			return
		}
	}
}

// ParseContext reads the free-text ?context= parameter for the insight narrator.
func ParseContext(v *validator.Validator, r *http.Request) string {
	c := strings.TrimSpace(r.URL.Query().Get("context"))
	v.Check(len(c) <= maxContext, "context", fmt.Sprintf("must not be longer than %d characters", maxContext))
	return c
}
