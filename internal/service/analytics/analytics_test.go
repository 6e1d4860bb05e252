package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/lapla/internal/domain/models"
)

func timed(times ...float64) []models.LapData {
	laps := make([]models.LapData, 0, len(times))
	for i, t := range times {
		lap := models.LapData{LapNumber: i + 1}
		if t > 0 {
			lap.LapTime = models.Float(t)
		}
		laps = append(laps, lap)
	}
	return laps
}

// 0 marks a lap without a time.
var mixed = timed(90.0, 88.0, 0, 89.5)

func TestSummary(t *testing.T) {
	s := Summary(mixed)

	assert.Equal(t, 4, s.TotalLaps)
	assert.Equal(t, 3, s.ValidLaps)
	require.NotNil(t, s.BestLap)
	assert.Equal(t, 88.0, *s.BestLap)
	assert.InDelta(t, 89.1667, *s.AverageLap, 1e-4)
	assert.InDelta(t, 0.8498, *s.Consistency, 1e-4)
}

func TestSummary_NoValidLaps(t *testing.T) {
	for _, laps := range [][]models.LapData{nil, timed(0, 0)} {
		s := Summary(laps)
		assert.Nil(t, s.BestLap)
		assert.Nil(t, s.AverageLap)
		assert.Nil(t, s.Consistency)
	}
}

func TestTheoreticalBest(t *testing.T) {
	laps := []models.LapData{
		{LapNumber: 1, Sector1Time: models.Float(30.0), Sector2Time: models.Float(40.5), Sector3Time: models.Float(22.0)},
		{LapNumber: 2, Sector1Time: models.Float(29.5), Sector2Time: models.Float(41.0)},
		{LapNumber: 3, Sector3Time: models.Float(21.7)},
	}
	got := TheoreticalBest(laps)
	require.NotNil(t, got)
	assert.InDelta(t, 29.5+40.5+21.7, *got, 1e-9)

	assert.Nil(t, TheoreticalBest(laps[1:2]))
	assert.Nil(t, TheoreticalBest(nil))
}

func TestConsistencyScore(t *testing.T) {
	assert.Equal(t, NeutralScore, ConsistencyScore(nil))
	assert.Equal(t, 100.0, ConsistencyScore(timed(80, 80, 80)))
	assert.InDelta(t, 100-0.8498*10, ConsistencyScore(mixed), 1e-3)
	assert.Equal(t, 0.0, ConsistencyScore(timed(70, 100)))
}

func TestFuel(t *testing.T) {
	f := Fuel(timed(100, 102, 0))
	assert.Equal(t, 2, f.LapCount)
	assert.Equal(t, 3.6, f.TotalFuelUsed)
	assert.Equal(t, 106.4, f.FuelRemaining)
	assert.Equal(t, 1.0, f.PaceDegradation)
	assert.Equal(t, 90.0, f.EfficiencyRating)
}

func TestFuel_Empty(t *testing.T) {
	f := Fuel(nil)
	assert.Equal(t, 0, f.LapCount)
	assert.Equal(t, 0.0, f.TotalFuelUsed)
	assert.Equal(t, FuelCapacityKg, f.FuelRemaining)
	assert.Equal(t, 0.0, f.PaceDegradation)
	assert.Equal(t, 100.0, f.EfficiencyRating)
}

func TestFuel_RemainingNeverNegative(t *testing.T) {
	times := make([]float64, 70)
	for i := range times {
		times[i] = 80
	}
	assert.Equal(t, 0.0, Fuel(timed(times...)).FuelRemaining)
}

func TestOvertakingPotential(t *testing.T) {
	assert.Equal(t, NeutralScore, OvertakingPotential(timed(80, 81, 82, 83)))

	// n=5 -> decile of 1 lap; mean 81, fastest 79 -> gap 2/81 -> 49.38
	assert.InDelta(t, 2.0/81*2000, OvertakingPotential(timed(83, 79, 81, 80, 82)), 1e-9)

	assert.Equal(t, 0.0, OvertakingPotential(timed(80, 80, 80, 80, 80)))
	assert.Equal(t, 100.0, OvertakingPotential(timed(70, 90, 90, 90, 90)))
}

func withTyres(times []float64, life []int) []models.LapData {
	laps := timed(times...)
	for i := range laps {
		laps[i].TyreLife = models.Int(life[i])
	}
	return laps
}

func TestTyreManagement(t *testing.T) {
	laps := withTyres(
		[]float64{80, 80, 80, 81, 81, 81},
		[]int{1, 2, 3, 16, 17, 18},
	)
	// degradation 1/80 * 100 = 1.25% -> 100 - 12.5
	assert.InDelta(t, 87.5, TyreManagement(laps), 1e-9)

	noLate := withTyres([]float64{80, 80, 80, 80, 80}, []int{1, 2, 3, 4, 5})
	assert.Equal(t, NeutralScore, TyreManagement(noLate))

	assert.Equal(t, NeutralScore, TyreManagement(laps[:4]))
}

func TestAdaptability(t *testing.T) {
	assert.Equal(t, NeutralScore, Adaptability(timed(80, 80, 80, 80, 80, 80, 80, 80, 80)))

	improving := timed(82, 82, 82, 82, 82, 81, 81, 81, 81, 81)
	// (82-81)/82*100 = 1.2195% -> 50 + 12.195
	assert.InDelta(t, 50+100.0/82*10, Adaptability(improving), 1e-9)

	fading := timed(80, 80, 80, 80, 80, 90, 90, 90, 90, 90)
	assert.Equal(t, 0.0, Adaptability(fading))
}

func TestScoresStayInRange(t *testing.T) {
	sets := [][]models.LapData{
		nil,
		timed(60, 200, 60, 200, 60, 200, 60, 200, 60, 200, 60),
		timed(200, 199, 198, 197, 196, 195, 60, 61, 62, 63),
		withTyres([]float64{60, 60, 60, 200, 200, 200}, []int{1, 2, 3, 20, 21, 22}),
	}
	for _, laps := range sets {
		for _, score := range []float64{
			ConsistencyScore(laps), OvertakingPotential(laps), TyreManagement(laps), Adaptability(laps), Fuel(laps).EfficiencyRating,
		} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestPerformance(t *testing.T) {
	p := Performance("VER", mixed)
	assert.Equal(t, "VER", p.DriverCode)
	assert.Equal(t, 3, p.Summary.ValidLaps)
	assert.Equal(t, NeutralScore, p.OvertakingPotential)
	assert.Equal(t, NeutralScore, p.Adaptability)
	assert.Equal(t, 3, p.Fuel.LapCount)
}

func TestCompare(t *testing.T) {
	c := Compare([]models.DriverLaps{
		{DriverCode: "HAM", Laps: timed(91, 90.2)},
		{DriverCode: "VER", Laps: timed(89.9, 90.5)},
		{DriverCode: "NOR", Laps: timed(0)},
	})

	require.Len(t, c.Drivers, 3)
	assert.Equal(t, "VER", c.FastestDriver)
	assert.Equal(t, "HAM", c.Drivers[0].DriverCode)
	assert.InDelta(t, 0.3, *c.Drivers[0].GapToFastest, 1e-9)
	assert.Equal(t, 0.0, *c.Drivers[1].GapToFastest)
	assert.Nil(t, c.Drivers[2].GapToFastest)
}
