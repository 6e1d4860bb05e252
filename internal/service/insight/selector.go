// Package insight selects canned insights for a session and produces narrative insights
// with a language model, falling back to templated text.
package insight

import (
	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
)

// MaxInsights is the number of catalog entries returned per session.
const MaxInsights = 4

// Select returns the first four catalog entries for the session's category, numbered from 1.
// Unknown session types use the race category.
func Select(st types.SessionType) models.InsightReport {
	category := st.Category()

	insights := make([]models.Insight, 0, MaxInsights)
	for _, t := range catalog {
		if len(insights) == MaxInsights {
			break
		}
		if !t.taggedWith(category) {
			continue
		}
		insights = append(insights, models.Insight{
			Number:         len(insights) + 1,
			ID:             t.id,
			Title:          t.title,
			Insight:        t.insight,
			Confidence:     t.confidence,
			DataPoints:     append([]string(nil), t.dataPoints...),
			Recommendation: t.recommendation,
		})
	}

	return models.InsightReport{
		Engine:      EngineName,
		SessionType: st,
		Category:    category,
		Insights:    insights,
	}
}
