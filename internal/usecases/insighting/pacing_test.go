package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

func TestCalculatePacing(t *testing.T) {
	// Dia 15 de um mês de 30 dias
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Gasto acima do ritmo esperado marca overspending", func(t *testing.T) {
		// Orçamento diário de $100: orçamento do período $3.000, esperado até
		// o dia 15 é $1.500. Gasto de $2.000 dá razão 1,33.
		records := []*domain.DailyMetricRecord{}
		for i := 1; i <= 10; i++ {
			records = append(records, newRecord("c1", "Campanha A", day(i), 200, 1000, 50, 1, 50))
		}
		campaigns := []*domain.CampaignSummary{campaign("c1", "Campanha A", budgetPtr(100))}

		statuses := calculatePacing(buildSeries(records), campaigns, now)

		assert.Len(t, statuses, 1)
		status := statuses[0]
		assert.Equal(t, domain.PacingOverspending, status.Status)
		assert.Equal(t, 3000.0, status.PeriodBudget)
		assert.Equal(t, 2000.0, status.SpentToDate)
		assert.Equal(t, 15, status.DaysElapsed)
		assert.Equal(t, 15, status.DaysRemaining)
		// Média diária 133,33 projetada pelos 15 dias restantes
		assert.InDelta(t, 4000.0, status.ProjectedSpend, 0.01)
		assert.InDelta(t, 1000.0, status.ProjectedVariance, 0.01)
		assert.Equal(t, "Consider reducing daily spend by $66.67 to stay on budget.", status.Recommendation)
	})

	t.Run("Gasto abaixo do ritmo esperado marca underspending", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{}
		for i := 1; i <= 15; i++ {
			records = append(records, newRecord("c1", "Campanha A", day(i), 30, 1000, 50, 1, 50))
		}
		campaigns := []*domain.CampaignSummary{campaign("c1", "Campanha A", budgetPtr(100))}

		statuses := calculatePacing(buildSeries(records), campaigns, now)

		assert.Len(t, statuses, 1)
		status := statuses[0]
		assert.Equal(t, domain.PacingUnderspending, status.Status)
		assert.Equal(t, 450.0, status.SpentToDate)
		// Projeção de $900 contra orçamento de $3.000
		assert.InDelta(t, -2100.0, status.ProjectedVariance, 0.01)
		assert.Contains(t, status.Recommendation, "Opportunity to increase spend by $140.00/day.")
	})

	t.Run("Gasto dentro da banda de 10% marca on_track", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{}
		for i := 1; i <= 15; i++ {
			records = append(records, newRecord("c1", "Campanha A", day(i), 100, 1000, 50, 1, 50))
		}
		campaigns := []*domain.CampaignSummary{campaign("c1", "Campanha A", budgetPtr(100))}

		statuses := calculatePacing(buildSeries(records), campaigns, now)

		assert.Len(t, statuses, 1)
		assert.Equal(t, domain.PacingOnTrack, statuses[0].Status)
		assert.Equal(t, "Budget pacing is healthy. Continue current strategy.", statuses[0].Recommendation)
	})

	t.Run("Fim do mês usa a mensagem de variação absoluta", func(t *testing.T) {
		// Dia 28 de 30: restam só 2 dias
		endOfMonth := time.Date(2025, 6, 28, 12, 0, 0, 0, time.UTC)
		records := []*domain.DailyMetricRecord{}
		for i := 1; i <= 28; i++ {
			records = append(records, newRecord("c1", "Campanha A", day(i), 150, 1000, 50, 1, 50))
		}
		campaigns := []*domain.CampaignSummary{campaign("c1", "Campanha A", budgetPtr(100))}

		statuses := calculatePacing(buildSeries(records), campaigns, endOfMonth)

		assert.Len(t, statuses, 1)
		assert.Equal(t, domain.PacingOverspending, statuses[0].Status)
		assert.Contains(t, statuses[0].Recommendation, "Review campaign efficiency.")
	})

	t.Run("Campanha sem orçamento ou com orçamento zero fica de fora", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{newRecord("c1", "Campanha A", day(1), 100, 1000, 50, 1, 50)}
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", nil),
			campaign("c2", "Campanha B", budgetPtr(0)),
		}

		statuses := calculatePacing(buildSeries(records), campaigns, now)

		assert.Empty(t, statuses)
	})

	t.Run("Gasto fora do mês corrente não entra no acumulado", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{
			newRecord("c1", "Campanha A", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), 500, 1000, 50, 1, 50),
			newRecord("c1", "Campanha A", day(10), 100, 1000, 50, 1, 50),
		}
		campaigns := []*domain.CampaignSummary{campaign("c1", "Campanha A", budgetPtr(100))}

		statuses := calculatePacing(buildSeries(records), campaigns, now)

		assert.Len(t, statuses, 1)
		assert.Equal(t, 100.0, statuses[0].SpentToDate)
	})

	t.Run("Ordenação por variação projetada absoluta descendente", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{}
		for i := 1; i <= 15; i++ {
			records = append(records, newRecord("c1", "Campanha A", day(i), 110, 1000, 50, 1, 50))
			records = append(records, newRecord("c2", "Campanha B", day(i), 300, 1000, 50, 1, 50))
		}
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(100)),
			campaign("c2", "Campanha B", budgetPtr(100)),
		}

		statuses := calculatePacing(buildSeries(records), campaigns, now)

		assert.Len(t, statuses, 2)
		assert.Equal(t, "c2", statuses[0].CampaignID)
	})
}
