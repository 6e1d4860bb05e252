package openf1

import (
	"context"
	"strings"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/pkg/cache"
)

func (c *Client) roster(ctx context.Context, sessionKey int) ([]driverDTO, error) {
	return cache.Memoize(ctx, c.lookups, lookupKey("drivers", sessionKey), lookupTTL, func(ctx context.Context) ([]driverDTO, error) {
		var out []driverDTO
		if err := c.get(ctx, "drivers", "drivers", &out, eq("session_key", sessionKey)); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// driverNumbers maps driver codes to car numbers for a session.
func (c *Client) driverNumbers(ctx context.Context, sessionKey int) (map[string]int, error) {
	list, err := c.roster(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(list))
	for _, d := range list {
		if d.NameAcronym == "" {
			continue
		}
		out[strings.ToUpper(d.NameAcronym)] = d.DriverNumber
	}
	return out, nil
}

// Drivers lists the drivers that took part in a session, in car number order as the provider returns them.
func (c *Client) Drivers(ctx context.Context, key models.SessionKey) ([]models.DriverInfo, error) {
	s, err := c.session(ctx, key)
	if err != nil {
		return nil, logFailure(ctx, err)
	}

	list, err := c.roster(ctx, s.SessionKey)
	if err != nil {
		return nil, logFailure(ctx, err)
	}

	seen := make(map[string]struct{}, len(list))
	drivers := make([]models.DriverInfo, 0, len(list))
	for _, d := range list {
		code := strings.ToUpper(d.NameAcronym)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		drivers = append(drivers, models.NewDriverInfo(code, d.displayName(), d.TeamName))
	}
	if len(drivers) == 0 {
		return nil, logFailure(ctx, notFound("drivers", "no drivers with a code in session %d", s.SessionKey))
	}
	return drivers, nil
}
