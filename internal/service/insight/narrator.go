package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/metrics"
)

const systemPrompt = `You are a motorsport performance engineer. You receive per-driver lap statistics ` +
	`for one session as JSON plus optional context from the user. Reply with a JSON object ` +
	`with exactly these string fields: "performance_analysis", "strategic_insights", ` +
	`"improvement_areas", "key_findings". Keep each field under 120 words and refer to drivers by code.`

// Completer sends a JSON-mode chat completion.
type Completer interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// Narrator writes the four-section analysis of a session.
type Narrator struct {
	llm Completer
	l   logger.Logger
}

// NewNarrator returns a narrator. llm may be nil, in which case only templates are used.
func NewNarrator(llm Completer, l logger.Logger) *Narrator {
	return &Narrator{llm: llm, l: l}
}

// driverSummary is the compact per-driver payload sent to the model.
type driverSummary struct {
	Driver              string   `json:"driver"`
	ValidLaps           int      `json:"valid_laps"`
	BestLap             *float64 `json:"best_lap"`
	AverageLap          *float64 `json:"average_lap"`
	Consistency         *float64 `json:"consistency"`
	TheoreticalBest     *float64 `json:"theoretical_best"`
	ConsistencyScore    float64  `json:"consistency_score"`
	OvertakingPotential float64  `json:"overtaking_potential"`
	TyreManagement      float64  `json:"tyre_management"`
	Adaptability        float64  `json:"adaptability"`
	PaceDegradation     float64  `json:"pace_degradation"`
}

type prompt struct {
	Session string          `json:"session"`
	Context string          `json:"context,omitempty"`
	Drivers []driverSummary `json:"drivers"`
}

// Narrate asks the language model for insights and falls back to templated text on any failure.
// It never returns an error.
func (n *Narrator) Narrate(ctx context.Context, session string, perf []models.PerformanceMetrics, extra string) models.NarrativeInsights {
	out, err := n.fromLLM(ctx, session, perf, extra)
	if err == nil {
		metrics.RecordLLMOutcome("llm")
		return out
	}

	outcome := "error"
	switch {
	case errors.Is(err, types.ErrMissingCredential):
		outcome = "missing_key"
		n.l.Debug(ctx, "language model not configured, using templated insights")
	case errors.Is(err, types.ErrMalformedInsights):
		outcome = "malformed"
	}
	if outcome != "missing_key" {
		ctx = wrap.WithAction(ctx, types.ActionLLMFailed)
		n.l.Warn(ctx, "language model insights failed, using templated insights", "error", err.Error())
	}
	metrics.RecordLLMOutcome(outcome)

	return Template(perf)
}

func (n *Narrator) fromLLM(ctx context.Context, session string, perf []models.PerformanceMetrics, extra string) (models.NarrativeInsights, error) {
	if n.llm == nil {
		return models.NarrativeInsights{}, types.ErrMissingCredential
	}

	p := prompt{Session: session, Context: strings.TrimSpace(extra), Drivers: make([]driverSummary, 0, len(perf))}
	for _, m := range perf {
		p.Drivers = append(p.Drivers, driverSummary{
			Driver:              m.DriverCode,
			ValidLaps:           m.Summary.ValidLaps,
			BestLap:             m.Summary.BestLap,
			AverageLap:          m.Summary.AverageLap,
			Consistency:         m.Summary.Consistency,
			TheoreticalBest:     m.TheoreticalBest,
			ConsistencyScore:    m.ConsistencyScore,
			OvertakingPotential: m.OvertakingPotential,
			TyreManagement:      m.TyreManagement,
			Adaptability:        m.Adaptability,
			PaceDegradation:     m.Fuel.PaceDegradation,
		})
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return models.NarrativeInsights{}, fmt.Errorf("encode prompt: %w", err)
	}

	raw, err := n.llm.CompleteJSON(ctx, systemPrompt, string(payload))
	if err != nil {
		return models.NarrativeInsights{}, err
	}
	return parse(raw)
}

// parse reads the model's reply. Each field may be a string or a list of strings.
func parse(raw string) (models.NarrativeInsights, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return models.NarrativeInsights{}, fmt.Errorf("%w: %v", types.ErrMalformedInsights, err)
	}

	text := func(key string) (string, error) {
		v, ok := fields[key]
		if !ok {
			return "", fmt.Errorf("%w: missing %q", types.ErrMalformedInsights, key)
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return strings.TrimSpace(s), nil
		}
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			return strings.TrimSpace(strings.Join(list, "\n")), nil
		}
		return "", fmt.Errorf("%w: %q is not text", types.ErrMalformedInsights, key)
	}

	var (
		out models.NarrativeInsights
		err error
	)
	if out.PerformanceAnalysis, err = text("performance_analysis"); err != nil {
		return models.NarrativeInsights{}, err
	}
	if out.StrategicInsights, err = text("strategic_insights"); err != nil {
		return models.NarrativeInsights{}, err
	}
	if out.ImprovementAreas, err = text("improvement_areas"); err != nil {
		return models.NarrativeInsights{}, err
	}
	if out.KeyFindings, err = text("key_findings"); err != nil {
		return models.NarrativeInsights{}, err
	}
	if !out.Complete() {
		return models.NarrativeInsights{}, fmt.Errorf("%w: empty section", types.ErrMalformedInsights)
	}

	out.Source = models.InsightSourceLLM
	return out, nil
}
