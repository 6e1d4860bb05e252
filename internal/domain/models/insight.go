package models

import "github.com/Temutjin2k/lapla/internal/domain/types"

// Insight is one numbered entry of the canned insight catalog.
type Insight struct {
	Number         int      `json:"number"`
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Insight        string   `json:"insight"`
	Confidence     string   `json:"confidence"`
	DataPoints     []string `json:"data_points"`
	Recommendation string   `json:"recommendation"`
}

// InsightReport is the response of the canned insight endpoint.
type InsightReport struct {
	Engine      string                `json:"engine"`
	SessionType types.SessionType     `json:"session_type"`
	Category    types.InsightCategory `json:"category"`
	Insights    []Insight             `json:"insights"`
}

// InsightSource tells whether narrative insights came from the language model or the templates.
type InsightSource string

const (
	InsightSourceLLM      InsightSource = "llm"
	InsightSourceTemplate InsightSource = "template"
)

// NarrativeInsights is the four-section analysis produced by the language model
// or by the templated fallback.
type NarrativeInsights struct {
	PerformanceAnalysis string        `json:"performance_analysis"`
	StrategicInsights   string        `json:"strategic_insights"`
	ImprovementAreas    string        `json:"improvement_areas"`
	KeyFindings         string        `json:"key_findings"`
	Source              InsightSource `json:"source"`
}

// Complete reports whether every section has content.
func (n NarrativeInsights) Complete() bool {
	return n.PerformanceAnalysis != "" && n.StrategicInsights != "" &&
		n.ImprovementAreas != "" && n.KeyFindings != ""
}
