package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

func budgetPtr(dollars float64) *int64 {
	micros := int64(dollars * 1_000_000)
	return &micros
}

func campaign(id, name string, dailyBudget *int64) *domain.CampaignSummary {
	return &domain.CampaignSummary{
		ID:                id,
		Name:              name,
		Provider:          domain.ProviderGoogleAds,
		Status:            domain.CampaignStatusEnabled,
		DailyBudgetMicros: dailyBudget,
	}
}

// performanceSeries monta 7 dias de registros com performance constante
func performanceSeries(campaignID, campaignName string, dailySpend, dailyConversions, dailyValue float64) []*domain.DailyMetricRecord {
	records := make([]*domain.DailyMetricRecord, 0, 7)
	for i := 1; i <= 7; i++ {
		records = append(records, newRecord(campaignID, campaignName, day(i), dailySpend, 1000, 50, dailyConversions, dailyValue))
	}
	return records
}

func TestRecommendBudgets(t *testing.T) {
	t.Run("Campanha eficiente recebe aumento e a ineficiente recebe corte", func(t *testing.T) {
		// Campanha A: ROAS 5.0, CPA 10. Campanha B: ROAS 0.5, CPA 70.
		records := performanceSeries("c1", "Campanha A", 10, 1, 50)
		records = append(records, performanceSeries("c2", "Campanha B", 10, 1.0/7.0, 5)...)
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(50)),
			campaign("c2", "Campanha B", budgetPtr(200)),
		}

		recommendations := recommendBudgets(buildSeries(records), campaigns)

		assert.Len(t, recommendations, 2)

		increase := recommendations[0]
		if increase.CampaignID != "c1" {
			increase = recommendations[1]
		}
		assert.Equal(t, 30.0, increase.ChangePct)
		assert.InDelta(t, 65.0, increase.RecommendedBudget, 0.01)
		assert.Equal(t, domain.PriorityHigh, increase.Priority)
		assert.Equal(t, "High ROAS (5.0x)", increase.Reason)

		decrease := recommendations[0]
		if decrease.CampaignID != "c2" {
			decrease = recommendations[1]
		}
		assert.Equal(t, -30.0, decrease.ChangePct)
		assert.InDelta(t, 140.0, decrease.RecommendedBudget, 0.01)
		assert.Equal(t, domain.PriorityHigh, decrease.Priority)
		assert.Equal(t, "Low ROAS (0.5x)", decrease.Reason)
	})

	t.Run("Variação dentro da zona morta não gera recomendação", func(t *testing.T) {
		// Eficiências quase iguais: |changePct| < 5 para ambas
		records := performanceSeries("c1", "Campanha A", 10, 1, 10)
		records = append(records, performanceSeries("c2", "Campanha B", 10, 1, 10.4)...)
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(50)),
			campaign("c2", "Campanha B", budgetPtr(50)),
		}

		recommendations := recommendBudgets(buildSeries(records), campaigns)

		assert.Empty(t, recommendations)
	})

	t.Run("Menos de 7 dias de dados não gera recomendação", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{}
		for i := 1; i <= 5; i++ {
			records = append(records, newRecord("c1", "Campanha A", day(i), 10, 1000, 50, 1, 50))
			records = append(records, newRecord("c2", "Campanha B", day(i), 10, 1000, 50, 1, 5))
		}
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(50)),
			campaign("c2", "Campanha B", budgetPtr(50)),
		}

		recommendations := recommendBudgets(buildSeries(records), campaigns)

		assert.Empty(t, recommendations)
	})

	t.Run("Campanha sem orçamento definido não qualifica", func(t *testing.T) {
		records := performanceSeries("c1", "Campanha A", 10, 1, 50)
		records = append(records, performanceSeries("c2", "Campanha B", 10, 1.0/7.0, 5)...)
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(50)),
			campaign("c2", "Campanha B", nil),
		}

		// Sobra só uma campanha qualificada, abaixo do mínimo de duas
		recommendations := recommendBudgets(buildSeries(records), campaigns)

		assert.Empty(t, recommendations)
	})

	t.Run("Gasto abaixo do piso de 10 não qualifica", func(t *testing.T) {
		records := performanceSeries("c1", "Campanha A", 1, 1, 50)
		records = append(records, performanceSeries("c2", "Campanha B", 10, 1, 5)...)
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(50)),
			campaign("c2", "Campanha B", budgetPtr(50)),
		}

		recommendations := recommendBudgets(buildSeries(records), campaigns)

		assert.Empty(t, recommendations)
	})

	t.Run("Campanha sem conversões é avaliada só pelo ROAS", func(t *testing.T) {
		records := performanceSeries("c1", "Campanha A", 10, 1, 50)
		records = append(records, performanceSeries("c2", "Campanha B", 10, 0, 0)...)
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(50)),
			campaign("c2", "Campanha B", budgetPtr(50)),
		}

		recommendations := recommendBudgets(buildSeries(records), campaigns)

		assert.Len(t, recommendations, 2)
		for _, recommendation := range recommendations {
			if recommendation.CampaignID == "c2" {
				assert.Equal(t, "Low ROAS (0.0x)", recommendation.Reason)
				assert.Negative(t, recommendation.ChangePct)
			}
		}
	})

	t.Run("Ordenação por prioridade e depois por variação absoluta", func(t *testing.T) {
		// Três campanhas com eficiências espalhadas para gerar prioridades distintas
		records := performanceSeries("c1", "Campanha A", 10, 1, 50)
		records = append(records, performanceSeries("c2", "Campanha B", 10, 1, 5)...)
		records = append(records, performanceSeries("c3", "Campanha C", 10, 1, 25)...)
		campaigns := []*domain.CampaignSummary{
			campaign("c1", "Campanha A", budgetPtr(50)),
			campaign("c2", "Campanha B", budgetPtr(50)),
			campaign("c3", "Campanha C", budgetPtr(50)),
		}

		recommendations := recommendBudgets(buildSeries(records), campaigns)

		assert.NotEmpty(t, recommendations)
		priorityRank := map[domain.RecommendationPriority]int{
			domain.PriorityHigh:   0,
			domain.PriorityMedium: 1,
			domain.PriorityLow:    2,
		}
		for i := 1; i < len(recommendations); i++ {
			previous := priorityRank[recommendations[i-1].Priority]
			current := priorityRank[recommendations[i].Priority]
			assert.LessOrEqual(t, previous, current)
		}
	})
}
