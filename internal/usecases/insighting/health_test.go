package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name            string
		anomalies       []*domain.Anomaly
		recommendations []*domain.BudgetRecommendation
		pacing          []*domain.PacingStatus
		expected        float64
	}{
		{
			name:     "Conta sem problemas tem score máximo",
			expected: 100,
		},
		{
			name: "Anomalia crítica desconta 10 e alerta desconta 3",
			anomalies: []*domain.Anomaly{
				{Severity: domain.SeverityCritical},
				{Severity: domain.SeverityWarning},
				{Severity: domain.SeverityWarning},
			},
			expected: 84,
		},
		{
			name: "Recomendação de alta prioridade desconta 5",
			recommendations: []*domain.BudgetRecommendation{
				{Priority: domain.PriorityHigh},
				{Priority: domain.PriorityMedium},
				{Priority: domain.PriorityLow},
			},
			expected: 95,
		},
		{
			name: "Desvio de ritmo desconta 5 por campanha fora da banda",
			pacing: []*domain.PacingStatus{
				{Status: domain.PacingOverspending},
				{Status: domain.PacingUnderspending},
				{Status: domain.PacingOnTrack},
			},
			expected: 90,
		},
		{
			name: "Score nunca fica negativo",
			anomalies: []*domain.Anomaly{
				{Severity: domain.SeverityCritical}, {Severity: domain.SeverityCritical},
				{Severity: domain.SeverityCritical}, {Severity: domain.SeverityCritical},
				{Severity: domain.SeverityCritical}, {Severity: domain.SeverityCritical},
				{Severity: domain.SeverityCritical}, {Severity: domain.SeverityCritical},
				{Severity: domain.SeverityCritical}, {Severity: domain.SeverityCritical},
				{Severity: domain.SeverityCritical},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := healthScore(tt.anomalies, tt.recommendations, tt.pacing)

			assert.Equal(t, tt.expected, score)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}
