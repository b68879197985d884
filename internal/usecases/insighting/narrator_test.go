package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

func TestNarrate(t *testing.T) {
	t.Run("Relatório saudável produz só a projeção de conversões", func(t *testing.T) {
		forecasts := []*domain.Forecast{
			{Metric: domain.MetricSpend, Trend: domain.TrendStable},
			{Metric: domain.MetricConversions, NextPeriodForecast: 120, Confidence: domain.ConfidenceHigh, Trend: domain.TrendStable},
		}

		insights := narrate(nil, nil, forecasts, nil)

		assert.Equal(t, []string{"Projected 120 conversions next month (high confidence)"}, insights)
	})

	t.Run("Anomalias críticas abrem o resumo com contagem e mensagem", func(t *testing.T) {
		anomalies := []*domain.Anomaly{
			{Severity: domain.SeverityCritical, Message: "Campanha A: SPEND increased by 40.0%"},
			{Severity: domain.SeverityCritical, Message: "Campanha B: CPA increased by 90.0%"},
			{Severity: domain.SeverityWarning, Message: "Campanha C: CTR decreased by 25.0%"},
		}

		insights := narrate(anomalies, nil, nil, nil)

		assert.Len(t, insights, 2)
		assert.Equal(t, "2 critical performance anomalies detected", insights[0])
		assert.Equal(t, "Campanha A: SPEND increased by 40.0%", insights[1])
	})

	t.Run("Recomendações agregam aumento e corte separadamente", func(t *testing.T) {
		recommendations := []*domain.BudgetRecommendation{
			{ChangePct: 30, CurrentBudget: 100, RecommendedBudget: 130},
			{ChangePct: 20, CurrentBudget: 50, RecommendedBudget: 60},
			{ChangePct: -30, CurrentBudget: 200, RecommendedBudget: 140},
		}

		insights := narrate(nil, recommendations, nil, nil)

		assert.Equal(t, []string{
			"Recommended to increase budget by $40/day across 2 campaigns",
			"Recommended to reduce budget by $60/day across 1 underperforming campaigns",
		}, insights)
	})

	t.Run("Tendência de gasto só aparece quando não é estável", func(t *testing.T) {
		forecasts := []*domain.Forecast{
			{Metric: domain.MetricSpend, Trend: domain.TrendDown, TrendPct: -7.5},
		}

		insights := narrate(nil, nil, forecasts, nil)

		assert.Equal(t, []string{"Spend is decreasing 7.5% daily"}, insights)
	})

	t.Run("Desvios de ritmo agregam excesso e oportunidade", func(t *testing.T) {
		pacing := []*domain.PacingStatus{
			{Status: domain.PacingOverspending, ProjectedVariance: 600},
			{Status: domain.PacingOverspending, ProjectedVariance: 400},
			{Status: domain.PacingUnderspending, ProjectedVariance: -250},
			{Status: domain.PacingOnTrack},
		}

		insights := narrate(nil, nil, nil, pacing)

		assert.Equal(t, []string{
			"2 campaigns projected to overspend by $1000",
			"$250 in unspent budget opportunity across 1 campaigns",
		}, insights)
	})

	t.Run("Resumo é limitado a 8 frases na ordem de prioridade", func(t *testing.T) {
		anomalies := []*domain.Anomaly{
			{Severity: domain.SeverityCritical, Message: "Campanha A: SPEND increased by 40.0%"},
		}
		recommendations := []*domain.BudgetRecommendation{
			{ChangePct: 30, CurrentBudget: 100, RecommendedBudget: 130},
			{ChangePct: -30, CurrentBudget: 200, RecommendedBudget: 140},
		}
		forecasts := []*domain.Forecast{
			{Metric: domain.MetricSpend, Trend: domain.TrendUp, TrendPct: 9.9},
			{Metric: domain.MetricConversions, NextPeriodForecast: 80, Confidence: domain.ConfidenceMedium},
		}
		pacing := []*domain.PacingStatus{
			{Status: domain.PacingOverspending, ProjectedVariance: 500},
			{Status: domain.PacingUnderspending, ProjectedVariance: -300},
		}

		insights := narrate(anomalies, recommendations, forecasts, pacing)

		assert.Len(t, insights, 8)
		assert.Equal(t, "1 critical performance anomalies detected", insights[0])
		assert.Equal(t, "$300 in unspent budget opportunity across 1 campaigns", insights[7])
	})
}
