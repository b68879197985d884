package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

// spendSeries monta uma campanha com um valor de gasto por dia, na ordem
// dada, começando no dia 1. Demais métricas ficam zeradas para que só o
// gasto seja avaliado.
func spendSeries(campaignID, campaignName string, values []float64) []*domain.DailyMetricRecord {
	records := make([]*domain.DailyMetricRecord, 0, len(values))
	for i, value := range values {
		records = append(records, newRecord(campaignID, campaignName, day(i+1), value, 0, 0, 0, 0))
	}
	return records
}

func TestDetectAnomalies(t *testing.T) {
	// Histórico alternando 9 e 11: média 10, desvio padrão populacional 1
	history := []float64{9, 11, 9, 11, 9, 11}

	tests := []struct {
		name             string
		values           []float64
		expectedCount    int
		expectedSeverity domain.AnomalySeverity
		expectedDir      domain.AnomalyDirection
	}{
		{
			name:             "Desvio de 3.5 sigmas gera anomalia crítica",
			values:           append(append([]float64{}, history...), 13.5),
			expectedCount:    1,
			expectedSeverity: domain.SeverityCritical,
			expectedDir:      domain.DirectionIncrease,
		},
		{
			name:             "Desvio de 2.5 sigmas gera alerta",
			values:           append(append([]float64{}, history...), 12.5),
			expectedCount:    1,
			expectedSeverity: domain.SeverityWarning,
			expectedDir:      domain.DirectionIncrease,
		},
		{
			name:             "Queda de 3.5 sigmas gera anomalia crítica de queda",
			values:           append(append([]float64{}, history...), 6.5),
			expectedCount:    1,
			expectedSeverity: domain.SeverityCritical,
			expectedDir:      domain.DirectionDecrease,
		},
		{
			name:          "Desvio de 1.5 sigmas não gera anomalia",
			values:        append(append([]float64{}, history...), 11.5),
			expectedCount: 0,
		},
		{
			name:          "Série sem variância é ignorada",
			values:        []float64{500, 500, 500, 500, 500, 500, 500, 500},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := buildSeries(spendSeries("c1", "Campanha A", tt.values))

			anomalies := detectAnomalies(view)

			assert.Len(t, anomalies, tt.expectedCount)
			if tt.expectedCount > 0 {
				anomaly := anomalies[0]
				assert.Equal(t, "c1", anomaly.CampaignID)
				assert.Equal(t, domain.MetricSpend, anomaly.Metric)
				assert.Equal(t, tt.expectedSeverity, anomaly.Severity)
				assert.Equal(t, tt.expectedDir, anomaly.Direction)
				assert.NotEmpty(t, anomaly.Message)
			}
		})
	}

	t.Run("Campanha com menos de 7 registros é ignorada", func(t *testing.T) {
		view := buildSeries(spendSeries("c1", "Campanha A", []float64{9, 11, 9, 11, 9, 100}))

		anomalies := detectAnomalies(view)

		assert.Empty(t, anomalies)
	})

	t.Run("Histórico com menos de 5 valores positivos é ignorado", func(t *testing.T) {
		// 7 registros, mas só 4 dias de histórico têm gasto positivo
		view := buildSeries(spendSeries("c1", "Campanha A", []float64{0, 0, 9, 11, 9, 11, 100}))

		anomalies := detectAnomalies(view)

		assert.Empty(t, anomalies)
	})

	t.Run("Criticas vêm antes dos alertas na ordenação", func(t *testing.T) {
		records := spendSeries("c1", "Campanha A", append(append([]float64{}, history...), 12.5))
		records = append(records, spendSeries("c2", "Campanha B", append(append([]float64{}, history...), 14.0))...)
		view := buildSeries(records)

		anomalies := detectAnomalies(view)

		assert.Len(t, anomalies, 2)
		assert.Equal(t, domain.SeverityCritical, anomalies[0].Severity)
		assert.Equal(t, "c2", anomalies[0].CampaignID)
		assert.Equal(t, domain.SeverityWarning, anomalies[1].Severity)
	})

	t.Run("Mensagem descreve campanha, métrica e desvio", func(t *testing.T) {
		view := buildSeries(spendSeries("c1", "Campanha A", append(append([]float64{}, history...), 13.5)))

		anomalies := detectAnomalies(view)

		assert.Len(t, anomalies, 1)
		// 13.5 contra média 10 = desvio de 35%
		assert.Equal(t, "Campanha A: SPEND increased by 35.0%", anomalies[0].Message)
	})
}
