package insighting

import "github.com/vfg2006/ppc-insights-api/internal/domain"

const (
	criticalAnomalyPenalty = 10.0
	warningAnomalyPenalty  = 3.0
	highPriorityPenalty    = 5.0
	pacingIssuePenalty     = 5.0
)

// healthScore resume a saúde da conta em um número de 0 a 100 a partir das
// saídas completas dos analisadores, antes de qualquer corte de top 10.
func healthScore(
	anomalies []*domain.Anomaly,
	recommendations []*domain.BudgetRecommendation,
	pacing []*domain.PacingStatus,
) float64 {
	score := 100.0

	for _, anomaly := range anomalies {
		switch anomaly.Severity {
		case domain.SeverityCritical:
			score -= criticalAnomalyPenalty
		case domain.SeverityWarning:
			score -= warningAnomalyPenalty
		}
	}

	for _, recommendation := range recommendations {
		if recommendation.Priority == domain.PriorityHigh {
			score -= highPriorityPenalty
		}
	}

	for _, status := range pacing {
		if status.Status != domain.PacingOnTrack {
			score -= pacingIssuePenalty
		}
	}

	return clamp(score, 0, 100)
}
