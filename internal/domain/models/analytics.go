package models

// LapSummary aggregates the valid laps of one driver.
type LapSummary struct {
	TotalLaps   int      `json:"total_laps"`
	ValidLaps   int      `json:"valid_laps"`
	BestLap     *float64 `json:"best_lap"`
	AverageLap  *float64 `json:"average_lap"`
	Consistency *float64 `json:"consistency"`
}

// SectorBests are the fastest observed sector times.
type SectorBests struct {
	Sector1 *float64 `json:"sector_1"`
	Sector2 *float64 `json:"sector_2"`
	Sector3 *float64 `json:"sector_3"`
}

// FuelAnalysis is a heuristic fuel and pace estimate.
type FuelAnalysis struct {
	FuelPerLap       float64 `json:"fuel_per_lap"`
	TotalFuelUsed    float64 `json:"total_fuel_used"`
	FuelRemaining    float64 `json:"fuel_remaining"`
	LapCount         int     `json:"lap_count"`
	PaceDegradation  float64 `json:"pace_degradation"`
	EfficiencyRating float64 `json:"efficiency_rating"`
}

// PerformanceMetrics bundles every derived metric for one driver.
type PerformanceMetrics struct {
	DriverCode          string       `json:"driver"`
	Summary             LapSummary   `json:"summary"`
	SectorBests         SectorBests  `json:"sector_bests"`
	TheoreticalBest     *float64     `json:"theoretical_best"`
	ConsistencyScore    float64      `json:"consistency_score"`
	OvertakingPotential float64      `json:"overtaking_potential"`
	TyreManagement      float64      `json:"tyre_management"`
	Adaptability        float64      `json:"adaptability"`
	Fuel                FuelAnalysis `json:"fuel"`
}

// DriverComparison is one row of a head-to-head comparison.
type DriverComparison struct {
	DriverCode      string     `json:"driver"`
	Summary         LapSummary `json:"summary"`
	TheoreticalBest *float64   `json:"theoretical_best"`
	GapToFastest    *float64   `json:"gap_to_fastest"`
}

// Comparison is the result of comparing two or more drivers.
type Comparison struct {
	Drivers       []DriverComparison `json:"drivers"`
	FastestDriver string             `json:"fastest_driver,omitempty"`
}
