// Package analytics derives lap statistics and heuristic performance scores from lap records.
// Laps without a lap time are ignored by every function.
package analytics

import (
	"slices"

	"github.com/Temutjin2k/lapla/internal/domain/models"
)

const (
	FuelPerLapKg   = 1.8
	FuelCapacityKg = 110.0

	// NeutralScore is returned by score functions when there is too little data.
	NeutralScore = 50.0

	minLapsOvertaking   = 5
	minLapsTyre         = 5
	minLapsAdaptability = 10

	earlyTyreLife = 5
	lateTyreLife  = 15
)

// Summary returns best, average and consistency (population standard deviation) of the valid laps.
// All three are nil when no lap has a time.
func Summary(laps []models.LapData) models.LapSummary {
	times := lapTimes(laps)
	s := models.LapSummary{TotalLaps: len(laps), ValidLaps: len(times)}
	if len(times) == 0 {
		return s
	}
	best, _ := minOf(times)
	s.BestLap = ptr(best)
	s.AverageLap = ptr(mean(times))
	s.Consistency = ptr(stddev(times))
	return s
}

// SectorBests returns the fastest time seen in each sector.
func SectorBests(laps []models.LapData) models.SectorBests {
	var s1, s2, s3 []float64
	for _, l := range laps {
		if l.Sector1Time != nil {
			s1 = append(s1, *l.Sector1Time)
		}
		if l.Sector2Time != nil {
			s2 = append(s2, *l.Sector2Time)
		}
		if l.Sector3Time != nil {
			s3 = append(s3, *l.Sector3Time)
		}
	}

	var out models.SectorBests
	if v, ok := minOf(s1); ok {
		out.Sector1 = ptr(v)
	}
	if v, ok := minOf(s2); ok {
		out.Sector2 = ptr(v)
	}
	if v, ok := minOf(s3); ok {
		out.Sector3 = ptr(v)
	}
	return out
}

// TheoreticalBest sums the best sectors. It is nil unless every sector has a reading.
func TheoreticalBest(laps []models.LapData) *float64 {
	b := SectorBests(laps)
	if b.Sector1 == nil || b.Sector2 == nil || b.Sector3 == nil {
		return nil
	}
	return ptr(*b.Sector1 + *b.Sector2 + *b.Sector3)
}

// ConsistencyScore maps the lap time spread to [0, 100]; each tenth of a second of
// deviation costs one point.
func ConsistencyScore(laps []models.LapData) float64 {
	times := lapTimes(laps)
	if len(times) == 0 {
		return NeutralScore
	}
	return clampScore(100 - stddev(times)*10)
}

// Fuel estimates consumption at a constant rate per lap and rates pace degradation.
func Fuel(laps []models.LapData) models.FuelAnalysis {
	times := lapTimes(laps)
	total := FuelPerLapKg * float64(len(times))
	f := models.FuelAnalysis{
		FuelPerLap:       FuelPerLapKg,
		TotalFuelUsed:    round(total, 1),
		FuelRemaining:    round(max(0, FuelCapacityKg-total), 1),
		LapCount:         len(times),
		PaceDegradation:  0,
		EfficiencyRating: 100,
	}
	if len(times) == 0 {
		return f
	}

	best, _ := minOf(times)
	if best <= 0 {
		return f
	}
	degradation := (mean(times) - best) / best * 100
	f.PaceDegradation = round(degradation, 2)
	f.EfficiencyRating = round(clampScore(100-degradation*10), 1)
	return f
}

// OvertakingPotential compares the fastest decile of laps with the overall mean.
// A wide gap means the driver has pace in reserve.
func OvertakingPotential(laps []models.LapData) float64 {
	times := lapTimes(laps)
	if len(times) < minLapsOvertaking {
		return NeutralScore
	}
	slices.Sort(times)

	decile := max(1, len(times)/10)
	avg := mean(times)
	if avg <= 0 {
		return NeutralScore
	}
	gap := (avg - mean(times[:decile])) / avg
	return clampScore(gap * 2000)
}

// TyreManagement compares pace on fresh tyres (life <= 5) with pace on worn tyres (life > 15).
func TyreManagement(laps []models.LapData) float64 {
	if len(lapTimes(laps)) < minLapsTyre {
		return NeutralScore
	}

	var early, late []float64
	for _, l := range laps {
		if l.LapTime == nil || l.TyreLife == nil {
			continue
		}
		switch {
		case *l.TyreLife <= earlyTyreLife:
			early = append(early, *l.LapTime)
		case *l.TyreLife > lateTyreLife:
			late = append(late, *l.LapTime)
		}
	}
	if len(early) == 0 || len(late) == 0 {
		return NeutralScore
	}

	earlyAvg := mean(early)
	if earlyAvg <= 0 {
		return NeutralScore
	}
	degradation := (mean(late) - earlyAvg) / earlyAvg * 100
	return clampScore(100 - degradation*10)
}

// Adaptability rewards drivers whose second half of the session is quicker than the first.
func Adaptability(laps []models.LapData) float64 {
	times := lapTimes(laps)
	if len(times) < minLapsAdaptability {
		return NeutralScore
	}

	half := len(times) / 2
	first := mean(times[:half])
	second := mean(times[half:])
	if first <= 0 {
		return NeutralScore
	}
	improvement := (first - second) / first * 100
	return clampScore(NeutralScore + improvement*10)
}

// Performance bundles every metric for one driver.
func Performance(driver string, laps []models.LapData) models.PerformanceMetrics {
	return models.PerformanceMetrics{
		DriverCode:          driver,
		Summary:             Summary(laps),
		SectorBests:         SectorBests(laps),
		TheoreticalBest:     TheoreticalBest(laps),
		ConsistencyScore:    round(ConsistencyScore(laps), 1),
		OvertakingPotential: round(OvertakingPotential(laps), 1),
		TyreManagement:      round(TyreManagement(laps), 1),
		Adaptability:        round(Adaptability(laps), 1),
		Fuel:                Fuel(laps),
	}
}

// Compare summarizes each driver and measures every best lap against the fastest one.
// Drivers keep the order they were given in.
func Compare(drivers []models.DriverLaps) models.Comparison {
	out := models.Comparison{Drivers: make([]models.DriverComparison, 0, len(drivers))}

	var fastest *float64
	for _, d := range drivers {
		s := Summary(d.Laps)
		out.Drivers = append(out.Drivers, models.DriverComparison{
			DriverCode:      d.DriverCode,
			Summary:         s,
			TheoreticalBest: TheoreticalBest(d.Laps),
		})
		if s.BestLap != nil && (fastest == nil || *s.BestLap < *fastest) {
			fastest = s.BestLap
			out.FastestDriver = d.DriverCode
		}
	}

	if fastest == nil {
		return out
	}
	for i := range out.Drivers {
		if best := out.Drivers[i].Summary.BestLap; best != nil {
			out.Drivers[i].GapToFastest = ptr(round(*best-*fastest, 3))
		}
	}
	return out
}
