package insighting

import (
	"fmt"
	"math"

	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

// Máximo de frases no resumo do relatório
const maxKeyInsights = 8

// narrate monta o resumo textual do relatório a partir das saídas completas
// dos analisadores, na ordem fixa de prioridade: anomalias críticas,
// ajustes de orçamento, tendências de gasto, previsão de conversões e
// desvios de ritmo. A saída é determinística para uma mesma entrada.
func narrate(
	anomalies []*domain.Anomaly,
	recommendations []*domain.BudgetRecommendation,
	forecasts []*domain.Forecast,
	pacing []*domain.PacingStatus,
) []string {
	insights := make([]string, 0, maxKeyInsights)

	critical := make([]*domain.Anomaly, 0, len(anomalies))
	for _, anomaly := range anomalies {
		if anomaly.Severity == domain.SeverityCritical {
			critical = append(critical, anomaly)
		}
	}
	if len(critical) > 0 {
		insights = append(insights, fmt.Sprintf("%d critical performance anomalies detected", len(critical)))
		insights = append(insights, critical[0].Message)
	}

	var increaseTotal, decreaseTotal float64
	var increaseCount, decreaseCount int
	for _, recommendation := range recommendations {
		switch {
		case recommendation.ChangePct > 0:
			increaseTotal += recommendation.ChangeAmount()
			increaseCount++
		case recommendation.ChangePct < 0:
			decreaseTotal += recommendation.ChangeAmount()
			decreaseCount++
		}
	}
	if increaseCount > 0 {
		insights = append(insights, fmt.Sprintf(
			"Recommended to increase budget by $%.0f/day across %d campaigns",
			increaseTotal, increaseCount,
		))
	}
	if decreaseCount > 0 {
		insights = append(insights, fmt.Sprintf(
			"Recommended to reduce budget by $%.0f/day across %d underperforming campaigns",
			-decreaseTotal, decreaseCount,
		))
	}

	var spendForecast, conversionForecast *domain.Forecast
	for _, forecast := range forecasts {
		switch forecast.Metric {
		case domain.MetricSpend:
			spendForecast = forecast
		case domain.MetricConversions:
			conversionForecast = forecast
		}
	}
	if spendForecast != nil && spendForecast.Trend != domain.TrendStable {
		direction := "increasing"
		if spendForecast.Trend == domain.TrendDown {
			direction = "decreasing"
		}
		insights = append(insights, fmt.Sprintf(
			"Spend is %s %.1f%% daily", direction, math.Abs(spendForecast.TrendPct),
		))
	}
	if conversionForecast != nil {
		insights = append(insights, fmt.Sprintf(
			"Projected %.0f conversions next month (%s confidence)",
			conversionForecast.NextPeriodForecast, conversionForecast.Confidence,
		))
	}

	var overspendTotal, underspendTotal float64
	var overspendCount, underspendCount int
	for _, status := range pacing {
		switch status.Status {
		case domain.PacingOverspending:
			overspendTotal += status.ProjectedVariance
			overspendCount++
		case domain.PacingUnderspending:
			underspendTotal += status.ProjectedVariance
			underspendCount++
		}
	}
	if overspendCount > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d campaigns projected to overspend by $%.0f", overspendCount, overspendTotal,
		))
	}
	if underspendCount > 0 {
		insights = append(insights, fmt.Sprintf(
			"$%.0f in unspent budget opportunity across %d campaigns",
			-underspendTotal, underspendCount,
		))
	}

	if len(insights) > maxKeyInsights {
		insights = insights[:maxKeyInsights]
	}
	return insights
}
