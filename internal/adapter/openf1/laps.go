package openf1

import (
	"context"
	"errors"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
)

const maxParallelDrivers = 4

// Laps fetches the laps of each requested driver. The result keeps the order of codes;
// drivers the provider does not know get an empty lap list.
func (c *Client) Laps(ctx context.Context, key models.SessionKey, codes []string) ([]models.DriverLaps, error) {
	s, err := c.session(ctx, key)
	if err != nil {
		return nil, logFailure(ctx, err)
	}
	numbers, err := c.driverNumbers(ctx, s.SessionKey)
	if err != nil {
		return nil, logFailure(ctx, err)
	}

	out := make([]models.DriverLaps, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDrivers)

	for i, code := range codes {
		code = strings.ToUpper(code)
		out[i] = models.DriverLaps{DriverCode: code, Laps: []models.LapData{}}

		number, ok := numbers[code]
		if !ok {
			continue
		}
		g.Go(func() error {
			laps, err := c.driverLaps(gctx, s.SessionKey, number)
			if err != nil {
				return err
			}
			out[i].Laps = laps
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, logFailure(ctx, err)
	}
	return out, nil
}

func (c *Client) driverLaps(ctx context.Context, sessionKey, number int) ([]models.LapData, error) {
	var raw []lapDTO
	if err := c.get(ctx, "laps", "laps", &raw, eq("session_key", sessionKey), eq("driver_number", number)); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return []models.LapData{}, nil
		}
		return nil, err
	}

	var stints []stintDTO
	if err := c.get(ctx, "stints", "stints", &stints, eq("session_key", sessionKey), eq("driver_number", number)); err != nil && !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	return buildLaps(raw, stints), nil
}

// buildLaps merges lap timing with stint information. A lap is a personal best when
// its time is the lowest seen so far for the driver.
func buildLaps(raw []lapDTO, stints []stintDTO) []models.LapData {
	slices.SortFunc(raw, func(a, b lapDTO) int { return a.LapNumber - b.LapNumber })

	laps := make([]models.LapData, 0, len(raw))
	var best *float64
	for _, r := range raw {
		lap := models.LapData{
			LapNumber:   r.LapNumber,
			LapTime:     r.LapDuration,
			Sector1Time: r.DurationSector1,
			Sector2Time: r.DurationSector2,
			Sector3Time: r.DurationSector3,
		}
		if r.LapDuration != nil && (best == nil || *r.LapDuration < *best) {
			best = r.LapDuration
			lap.IsPersonalBest = true
		}
		if st, ok := stintFor(stints, r.LapNumber); ok {
			if st.Compound != "" {
				lap.Compound = models.String(strings.ToUpper(st.Compound))
			}
			lap.TyreLife = models.Int(st.TyreAgeAtStart + r.LapNumber - st.LapStart + 1)
		}
		laps = append(laps, lap)
	}
	return laps
}

func stintFor(stints []stintDTO, lap int) (stintDTO, bool) {
	for _, st := range stints {
		end := st.LapEnd
		if end == 0 {
			end = lap
		}
		if lap >= st.LapStart && lap <= end {
			return st, true
		}
	}
	return stintDTO{}, false
}
