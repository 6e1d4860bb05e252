// Package export serializes per-driver lap records as a JSON tree, CSV or a text table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/internal/service/analytics"
)

// Header is the fixed CSV column order.
var Header = []string{"Driver", "Lap", "LapTime", "Sector1", "Sector2", "Sector3", "Compound", "TyreLife", "PersonalBest"}

// missing is written for absent values.
const missing = "None"

// DriverExport is one driver's entry of the JSON export.
type DriverExport struct {
	TotalLaps  int              `json:"total_laps"`
	BestLap    *float64         `json:"best_lap"`
	AverageLap *float64         `json:"average_lap"`
	Laps       []models.LapData `json:"laps"`
}

// Validate checks the request before any data is fetched.
func Validate(format types.ExportFormat, codes []string) error {
	if len(codes) == 0 {
		return types.ErrNoDriversSelected
	}
	if !format.Valid() {
		return types.ErrInvalidExportFormat
	}
	return nil
}

// Tree builds the JSON export keyed by driver code.
func Tree(drivers []models.DriverLaps) map[string]DriverExport {
	out := make(map[string]DriverExport, len(drivers))
	for _, d := range drivers {
		s := analytics.Summary(d.Laps)
		laps := d.Laps
		if laps == nil {
			laps = []models.LapData{}
		}
		out[d.DriverCode] = DriverExport{
			TotalLaps:  len(d.Laps),
			BestLap:    s.BestLap,
			AverageLap: s.AverageLap,
			Laps:       laps,
		}
	}
	return out
}

// CSV writes one row per (driver, lap) with drivers in the given order.
func CSV(w io.Writer, drivers []models.DriverLaps) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, d := range drivers {
		for _, lap := range d.Laps {
			if err := cw.Write(row(d.DriverCode, lap)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(driver string, lap models.LapData) []string {
	return []string{
		driver,
		strconv.Itoa(lap.LapNumber),
		formatFloat(lap.LapTime),
		formatFloat(lap.Sector1Time),
		formatFloat(lap.Sector2Time),
		formatFloat(lap.Sector3Time),
		formatString(lap.Compound),
		formatInt(lap.TyreLife),
		formatBool(lap.IsPersonalBest),
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

func formatString(v *string) string {
	if v == nil || *v == "" {
		return missing
	}
	return *v
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// Table renders one text table per driver with lap times as m:ss.mmm.
func Table(w io.Writer, drivers []models.DriverLaps) error {
	for i, d := range drivers {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		s := analytics.Summary(d.Laps)
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.SetTitle(d.DriverCode)
		t.AppendHeader(table.Row{"Lap", "Time", "S1", "S2", "S3", "Tyre", "Life", "PB"})
		for _, lap := range d.Laps {
			pb := ""
			if lap.IsPersonalBest {
				pb = "*"
			}
			t.AppendRow(table.Row{
				lap.LapNumber,
				lapTime(lap.LapTime),
				sector(lap.Sector1Time),
				sector(lap.Sector2Time),
				sector(lap.Sector3Time),
				formatString(lap.Compound),
				formatInt(lap.TyreLife),
				pb,
			})
		}
		t.AppendFooter(table.Row{"", "Best", lapTime(s.BestLap), "Avg", lapTime(s.AverageLap), "", "Laps", len(d.Laps)})
		t.Render()
	}
	return nil
}

func lapTime(v *float64) string {
	if v == nil {
		return "-"
	}
	return models.FormatLapTime(*v)
}

func sector(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}
