package insighting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

func TestService_ComputeInsights(t *testing.T) {
	service := NewService()
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	// Cenário com material para todos os analisadores: uma campanha com
	// anomalia de gasto, outra ineficiente e ambas com orçamento definido.
	buildInput := func() ([]*domain.DailyMetricRecord, []*domain.CampaignSummary) {
		records := []*domain.DailyMetricRecord{}
		for i := 1; i <= 13; i++ {
			// Alterna o gasto para o histórico ter variância
			spend := 90.0
			if i%2 == 0 {
				spend = 110
			}
			records = append(records, newRecord("c1", "Campanha A", day(i), spend, 2000, 100, 5, 500))
			records = append(records, newRecord("c2", "Campanha B", day(i), spend, 2000, 100, 1, 20))
		}
		// Pico de gasto no último dia da campanha A
		records = append(records, newRecord("c1", "Campanha A", day(14), 400, 2000, 100, 5, 500))
		records = append(records, newRecord("c2", "Campanha B", day(14), 100, 2000, 100, 1, 20))

		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(100)),
			campaign("c2", "Campanha B", budgetPtr(100)),
		}
		return records, campaigns
	}

	t.Run("Relatório completo com todas as seções preenchidas", func(t *testing.T) {
		records, campaigns := buildInput()

		report := service.ComputeInsights(records, campaigns, now)

		assert.Equal(t, now.UTC(), report.GeneratedAt)
		assert.GreaterOrEqual(t, report.HealthScore, 0.0)
		assert.LessOrEqual(t, report.HealthScore, 100.0)
		assert.NotEmpty(t, report.KeyInsights)
		assert.LessOrEqual(t, len(report.KeyInsights), 8)

		assert.NotEmpty(t, report.Anomalies.Items)
		assert.Equal(t, report.Anomalies.Total, report.Anomalies.Critical+report.Anomalies.Warning)

		assert.NotEmpty(t, report.BudgetRecommendations)
		assert.Len(t, report.Forecasts, 3)
		assert.NotEmpty(t, report.Pacing)
	})

	t.Run("Mesma entrada e mesmo instante produzem o mesmo relatório", func(t *testing.T) {
		records, campaigns := buildInput()

		first := service.ComputeInsights(records, campaigns, now)
		second := service.ComputeInsights(records, campaigns, now)

		firstJSON, err := json.Marshal(first)
		assert.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		assert.NoError(t, err)
		assert.JSONEq(t, string(firstJSON), string(secondJSON))
	})

	t.Run("Seções do relatório respeitam o limite de 10 itens", func(t *testing.T) {
		// 30 campanhas com picos para estourar os limites de cada seção
		records := []*domain.DailyMetricRecord{}
		campaigns := []*domain.CampaignSummary{}
		for c := 0; c < 30; c++ {
			id := string(rune('a'+c%26)) + string(rune('0'+c/26))
			for i := 1; i <= 13; i++ {
				spend := 100.0
				if i%2 == 0 {
					spend = 110
				}
				records = append(records, newRecord(id, "Campanha "+id, day(i), spend, 2000, 100, float64(c%5), float64(c*10)))
			}
			records = append(records, newRecord(id, "Campanha "+id, day(14), 500, 2000, 100, float64(c%5), float64(c*10)))
			campaigns = append(campaigns, campaign(id, "Campanha "+id, budgetPtr(50)))
		}

		report := service.ComputeInsights(records, campaigns, now)

		assert.LessOrEqual(t, len(report.Anomalies.Items), 10)
		assert.GreaterOrEqual(t, report.Anomalies.Total, len(report.Anomalies.Items))
		assert.LessOrEqual(t, len(report.BudgetRecommendations), 10)
		assert.LessOrEqual(t, len(report.Pacing), 10)
	})

	t.Run("Entrada vazia produz relatório saudável e vazio", func(t *testing.T) {
		report := service.ComputeInsights(nil, nil, now)

		assert.Equal(t, 100.0, report.HealthScore)
		assert.Empty(t, report.Anomalies.Items)
		assert.Equal(t, 0, report.Anomalies.Total)
		assert.Empty(t, report.BudgetRecommendations)
		assert.Empty(t, report.Forecasts)
		assert.Empty(t, report.Pacing)
	})
}
