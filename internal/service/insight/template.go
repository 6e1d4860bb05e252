package insight

import (
	"fmt"
	"strings"

	"github.com/Temutjin2k/lapla/internal/domain/models"
)

// Template builds the four sections from metrics alone. The output depends only on its input.
func Template(perf []models.PerformanceMetrics) models.NarrativeInsights {
	out := models.NarrativeInsights{Source: models.InsightSourceTemplate}
	if len(perf) == 0 {
		out.PerformanceAnalysis = "No lap data was available for the selected drivers."
		out.StrategicInsights = "Select drivers with completed laps to get strategy notes."
		out.ImprovementAreas = "No improvement areas can be derived without lap times."
		out.KeyFindings = "No findings."
		return out
	}

	var analysis, strategy, improve, findings []string
	for _, m := range perf {
		analysis = append(analysis, performanceLine(m))
		strategy = append(strategy, strategyLine(m))
		improve = append(improve, improvementLine(m))
	}
	findings = append(findings, fastestLine(perf), consistentLine(perf))

	out.PerformanceAnalysis = strings.Join(analysis, "\n")
	out.StrategicInsights = strings.Join(strategy, "\n")
	out.ImprovementAreas = strings.Join(improve, "\n")
	out.KeyFindings = strings.Join(findings, "\n")
	return out
}

func performanceLine(m models.PerformanceMetrics) string {
	s := m.Summary
	if s.BestLap == nil {
		return fmt.Sprintf("%s: no timed laps.", m.DriverCode)
	}
	line := fmt.Sprintf("%s: best lap %s, average %s over %d laps, consistency score %.1f/100.",
		m.DriverCode, models.FormatLapTime(*s.BestLap), models.FormatLapTime(*s.AverageLap), s.ValidLaps, m.ConsistencyScore)
	if m.TheoreticalBest != nil {
		line += fmt.Sprintf(" Theoretical best %s.", models.FormatLapTime(*m.TheoreticalBest))
	}
	return line
}

func strategyLine(m models.PerformanceMetrics) string {
	switch {
	case m.TyreManagement >= 70:
		return fmt.Sprintf("%s: tyre management %.1f/100 supports a longer stint.", m.DriverCode, m.TyreManagement)
	case m.TyreManagement < 40:
		return fmt.Sprintf("%s: tyre management %.1f/100 points to an earlier stop.", m.DriverCode, m.TyreManagement)
	default:
		return fmt.Sprintf("%s: tyre management %.1f/100, a standard stint length fits; pace degradation %.2f%%.",
			m.DriverCode, m.TyreManagement, m.Fuel.PaceDegradation)
	}
}

func improvementLine(m models.PerformanceMetrics) string {
	if m.Summary.BestLap != nil && m.TheoreticalBest != nil {
		if gap := *m.Summary.BestLap - *m.TheoreticalBest; gap > 0.2 {
			return fmt.Sprintf("%s: %.3fs between best lap and theoretical best; combine the best sectors.", m.DriverCode, gap)
		}
	}
	if m.ConsistencyScore < 60 {
		return fmt.Sprintf("%s: lap times vary too much (score %.1f); focus on repeatability.", m.DriverCode, m.ConsistencyScore)
	}
	if m.Adaptability < 50 {
		return fmt.Sprintf("%s: pace faded in the second half (adaptability %.1f).", m.DriverCode, m.Adaptability)
	}
	return fmt.Sprintf("%s: no single weakness stands out; keep the current approach.", m.DriverCode)
}

func fastestLine(perf []models.PerformanceMetrics) string {
	var best *models.PerformanceMetrics
	for i := range perf {
		b := perf[i].Summary.BestLap
		if b == nil {
			continue
		}
		if best == nil || *b < *best.Summary.BestLap {
			best = &perf[i]
		}
	}
	if best == nil {
		return "No driver set a timed lap."
	}
	return fmt.Sprintf("Fastest lap: %s with %s.", best.DriverCode, models.FormatLapTime(*best.Summary.BestLap))
}

func consistentLine(perf []models.PerformanceMetrics) string {
	best := perf[0]
	for _, m := range perf[1:] {
		if m.ConsistencyScore > best.ConsistencyScore {
			best = m
		}
	}
	return fmt.Sprintf("Most consistent: %s (%.1f/100).", best.DriverCode, best.ConsistencyScore)
}
