package insight

import (
	"slices"

	"github.com/Temutjin2k/lapla/internal/domain/types"
)

// EngineName labels the canned insight catalog in responses.
const EngineName = "Lapla Custom Analytics Engine"

// template is one entry of the canned catalog.
type template struct {
	id             string
	title          string
	insight        string
	confidence     string
	dataPoints     []string
	recommendation string
	categories     []types.InsightCategory
}

func (t template) taggedWith(c types.InsightCategory) bool {
	return slices.Contains(t.categories, c)
}

var (
	practice   = types.CategoryPractice
	qualifying = types.CategoryQualifying
	race       = types.CategoryRace
)

// catalog is a fixed table. Selection preserves this order.
var catalog = []template{
	{
		id:         "long_run_pace",
		title:      "Long Run Pace Stability",
		insight:    "Drivers who keep lap time variation under three tenths across a ten lap run carry that stability into race stints.",
		confidence: "High",
		dataPoints: []string{
			"Standard deviation of consecutive long run laps",
			"Lap time drift between the first and last third of a run",
			"Share of laps within 0.5s of the run average",
		},
		recommendation: "Schedule at least one ten lap run on the race compound and compare its spread against the team mate.",
		categories:     []types.InsightCategory{practice, race},
	},
	{
		id:         "setup_sweep",
		title:      "Setup Sweep Efficiency",
		insight:    "Sector deltas between runs point to the part of the lap where a setup change paid off or cost time.",
		confidence: "Medium",
		dataPoints: []string{
			"Best sector times per run",
			"Sector delta after each garage visit",
			"Top speed change on the main straight",
		},
		recommendation: "Change one parameter per run and log the sector that moves most.",
		categories:     []types.InsightCategory{practice},
	},
	{
		id:         "tyre_warmup",
		title:      "Tyre Warm-up Window",
		insight:    "The lap on which a fresh set delivers its peak shows how quickly the compound reaches its working range.",
		confidence: "Medium",
		dataPoints: []string{
			"Lap time by tyre life for each new set",
			"Gap between the first and second flying lap",
			"Track temperature during each run",
		},
		recommendation: "Use the peak lap to plan the out-lap length for qualifying.",
		categories:     []types.InsightCategory{practice, qualifying},
	},
	{
		id:         "theoretical_gap",
		title:      "Theoretical Best Gap",
		insight:    "The difference between the best lap and the sum of best sectors shows how much pace was left on the table.",
		confidence: "High",
		dataPoints: []string{
			"Best lap time",
			"Sum of best sector 1, 2 and 3",
			"Sector where the best lap lost most against its own best",
		},
		recommendation: "Target the weakest sector of the best lap rather than the slowest sector overall.",
		categories:     []types.InsightCategory{practice, qualifying},
	},
	{
		id:         "fuel_corrected_pace",
		title:      "Fuel Corrected Pace",
		insight:    "Burning about 1.8 kg per lap makes the car quicker each lap, so flat lap times usually hide tyre degradation.",
		confidence: "Medium",
		dataPoints: []string{
			"Fuel used per lap",
			"Lap time trend across a stint",
			"Average pace degradation against the best lap",
		},
		recommendation: "Read stint trends with the fuel effect removed before judging tyre wear.",
		categories:     []types.InsightCategory{practice, race},
	},
	{
		id:         "single_lap_execution",
		title:      "Single Lap Execution",
		insight:    "Qualifying laps are decided by a handful of corners; the fastest drivers lose least in the slow sections.",
		confidence: "High",
		dataPoints: []string{
			"Minimum corner speeds on the fastest lap",
			"Throttle application point after the slowest corner",
			"Sector ranking across the field",
		},
		recommendation: "Compare the final attempt with the best sectors from earlier runs to find the missing corner.",
		categories:     []types.InsightCategory{qualifying},
	},
	{
		id:         "track_evolution",
		title:      "Track Evolution",
		insight:    "Grip builds through a session; later runs are quicker even without changes to the car.",
		confidence: "Medium",
		dataPoints: []string{
			"Best lap time per run in session order",
			"Track temperature trend",
			"Lap time gain of drivers on identical programmes",
		},
		recommendation: "Hold the final run as late as traffic allows.",
		categories:     []types.InsightCategory{qualifying, practice},
	},
	{
		id:         "drs_usage",
		title:      "DRS Effectiveness",
		insight:    "The speed gained while the flap is open decides how often a driver can complete a pass on the straight.",
		confidence: "Medium",
		dataPoints: []string{
			"Speed trap delta with DRS open and closed",
			"Distance covered with DRS active",
			"Gap to the car ahead at the detection point",
		},
		recommendation: "Prioritise exit speed from the corner before each DRS zone.",
		categories:     []types.InsightCategory{qualifying, race},
	},
	{
		id:         "stint_degradation",
		title:      "Stint Degradation Profile",
		insight:    "Lap time lost between fresh and worn tyres tells whether a one or two stop strategy is faster.",
		confidence: "High",
		dataPoints: []string{
			"Average lap time at tyre life 5 or below",
			"Average lap time at tyre life above 15",
			"Compound used in each stint",
		},
		recommendation: "Pit when the worn tyre deficit exceeds the time lost in the pit lane spread over the remaining laps.",
		categories:     []types.InsightCategory{race},
	},
	{
		id:         "overtaking_reserve",
		title:      "Overtaking Reserve",
		insight:    "A large gap between a driver's fastest laps and their average shows pace that can be used to attack.",
		confidence: "Medium",
		dataPoints: []string{
			"Mean of the fastest decile of laps",
			"Mean of all valid laps",
			"Laps spent within one second of the car ahead",
		},
		recommendation: "Use the reserve in the laps after the rival pits, when tyre offset is largest.",
		categories:     []types.InsightCategory{race},
	},
	{
		id:         "race_adaptation",
		title:      "Race Adaptation",
		insight:    "Drivers who get quicker in the second half of a race adapt well to falling fuel and changing grip.",
		confidence: "Medium",
		dataPoints: []string{
			"Mean lap time first half versus second half",
			"Lap time change after each pit stop",
			"Weather changes during the race",
		},
		recommendation: "Review the second half laps to find what changed in the driving and repeat it earlier.",
		categories:     []types.InsightCategory{race},
	},
}
