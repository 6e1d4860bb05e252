package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/lapla/internal/domain/models"
)

func newSeeded() *Generator {
	return New(rand.New(rand.NewSource(42)))
}

func TestGenerator_Drivers(t *testing.T) {
	drivers := newSeeded().Drivers()
	require.Len(t, drivers, 10)

	codes := make([]string, 0, len(drivers))
	for _, d := range drivers {
		codes = append(codes, d.DriverCode)
		assert.NotEqual(t, models.DefaultTeamColor, d.TeamColor, d.TeamName)
	}
	assert.Equal(t, []string{"VER", "LEC", "HAM", "NOR", "PIA", "SAI", "RUS", "PER", "ALO", "STR"}, codes)
}

func TestGenerator_Laps(t *testing.T) {
	laps := newSeeded().Laps(30)
	require.Len(t, laps, 30)

	for i, lap := range laps {
		n := i + 1
		assert.Equal(t, n, lap.LapNumber)

		require.NotNil(t, lap.LapTime)
		assert.GreaterOrEqual(t, *lap.LapTime, 73.0)
		assert.Less(t, *lap.LapTime, 78.0)

		assert.InDelta(t, *lap.LapTime*0.3, *lap.Sector1Time, 0.5)
		assert.InDelta(t, *lap.LapTime*0.4, *lap.Sector2Time, 0.5)
		assert.InDelta(t, *lap.LapTime*0.3, *lap.Sector3Time, 0.5)

		if n < 15 {
			assert.Equal(t, "MEDIUM", *lap.Compound)
			assert.Equal(t, n, *lap.TyreLife)
		} else {
			assert.Equal(t, "HARD", *lap.Compound)
			assert.Equal(t, n-15, *lap.TyreLife)
		}

		if lap.IsPersonalBest {
			assert.Greater(t, n, 5)
			assert.Less(t, *lap.LapTime, 73.5)
		}
	}
}

func TestGenerator_LapsExactCount(t *testing.T) {
	g := newSeeded()
	assert.Len(t, g.Laps(12), 12)
	assert.Len(t, g.Laps(1), 1)

	assert.Empty(t, g.Laps(0))
	assert.NotNil(t, g.Laps(0))
	assert.Empty(t, g.Laps(-3))
}

func TestGenerator_Telemetry(t *testing.T) {
	tel := newSeeded().Telemetry()
	require.True(t, tel.Consistent())
	require.Equal(t, 500, tel.Len())

	assert.Equal(t, 0.0, tel.Distance[0])
	assert.InDelta(t, 5000.0, tel.Distance[499], 1e-9)
	assert.InDelta(t, 49.9, tel.Time[499], 1e-9)

	for i := range tel.Len() {
		p := float64(i) / 500
		assert.GreaterOrEqual(t, tel.Speed[i], 50.0)
		assert.GreaterOrEqual(t, tel.Throttle[i], 0.0)
		assert.LessOrEqual(t, tel.Throttle[i], 100.0)
		assert.GreaterOrEqual(t, tel.Brake[i], 0.0)
		assert.LessOrEqual(t, tel.Brake[i], 100.0)
		assert.GreaterOrEqual(t, tel.Gear[i], 3)
		assert.LessOrEqual(t, tel.Gear[i], 8)

		if onStraight(p) {
			assert.Equal(t, 0.0, tel.Brake[i])
			assert.GreaterOrEqual(t, tel.Gear[i], 6)
		} else {
			assert.LessOrEqual(t, tel.Gear[i], 6)
		}

		wantDRS := 0
		if (p > 0.1 && p < 0.25) || (p > 0.65 && p < 0.8) {
			wantDRS = 1
		}
		assert.Equal(t, wantDRS, tel.DRS[i], "drs at point %d", i)
	}
}

func TestGenerator_Track(t *testing.T) {
	track := newSeeded().Track()
	require.True(t, track.Consistent())
	require.Len(t, track.X, 201)

	assert.Equal(t, track.X[0], track.X[200])
	assert.Equal(t, track.Y[0], track.Y[200])
	assert.InDelta(t, DefaultTrackLength, track.Distance[200], 1e-6)

	for _, s := range track.Speed {
		assert.GreaterOrEqual(t, s, 80.0)
		assert.LessOrEqual(t, s, 330.0)
	}
	minS, maxS := math.Inf(1), math.Inf(-1)
	for _, s := range track.Speed {
		minS, maxS = math.Min(minS, s), math.Max(maxS, s)
	}
	assert.InDelta(t, 80.0, minS, 1e-9)
	assert.Less(t, minS, maxS)
}

func TestGenerator_Deterministic(t *testing.T) {
	assert.Equal(t, newSeeded().Laps(10), newSeeded().Laps(10))
}
