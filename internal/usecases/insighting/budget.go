package insighting

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/ppc-insights-api/internal/domain"
	"github.com/vfg2006/ppc-insights-api/pkg/utils"
)

const (
	// Gasto mínimo na janela para uma campanha entrar na análise
	minSpendForRecommendation = 10.0

	// Mínimo de dias distintos no dataset inteiro
	minDaysForRecommendation = 7

	// Mínimo de campanhas qualificadas para haver uma média comparável
	minQualifiedCampaigns = 2

	// Variações menores que isso não valem uma recomendação
	deadZonePct = 5.0

	// Limite absoluto de variação sugerida de orçamento
	maxBudgetChangePct = 30.0
)

// campaignEfficiency acumula os agregados de uma campanha qualificada.
type campaignEfficiency struct {
	summary    *domain.CampaignSummary
	spend      float64
	roas       float64
	cpa        float64
	efficiency float64
}

// recommendBudgets classifica as campanhas com orçamento definido por uma
// heurística de eficiência (ROAS dominante, CPA como desempate) e propõe
// variações de orçamento diário proporcionais à distância da média do
// workspace. Retorna a lista completa ordenada por prioridade.
func recommendBudgets(view *seriesView, campaigns []*domain.CampaignSummary) []*domain.BudgetRecommendation {
	if view.distinctDays() < minDaysForRecommendation {
		return nil
	}

	byID := make(map[string]*campaignSeries, len(view.byCampaign))
	for _, series := range view.byCampaign {
		byID[series.campaignID] = series
	}

	qualified := make([]*campaignEfficiency, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign.DailyBudgetMicros == nil {
			continue
		}

		series, exists := byID[campaign.ID]
		if !exists {
			continue
		}

		var spend, conversions, conversionValue float64
		for _, point := range series.points {
			spend += point.spend
			conversions += point.conversions
			conversionValue += point.conversionValue
		}

		if spend < minSpendForRecommendation {
			continue
		}

		entry := &campaignEfficiency{summary: campaign, spend: spend}

		if spend > 0 {
			entry.roas = conversionValue / spend
		}

		// CPA infinito sinaliza "nenhuma conversão"; o termo 1/cpa zera
		// e a eficiência passa a depender só do ROAS.
		entry.cpa = math.Inf(1)
		if conversions > 0 {
			entry.cpa = spend / conversions
		}

		entry.efficiency = entry.roas * 10
		if entry.cpa > 0 {
			entry.efficiency -= 1 / entry.cpa
		}

		qualified = append(qualified, entry)
	}

	if len(qualified) < minQualifiedCampaigns {
		return nil
	}

	totalEfficiency := 0.0
	for _, entry := range qualified {
		totalEfficiency += entry.efficiency
	}
	avgEfficiency := totalEfficiency / float64(len(qualified))

	recommendations := make([]*domain.BudgetRecommendation, 0, len(qualified))
	for _, entry := range qualified {
		changePct := clamp(10*(entry.efficiency-avgEfficiency), -maxBudgetChangePct, maxBudgetChangePct)
		if math.Abs(changePct) < deadZonePct {
			continue
		}

		currentBudget := entry.summary.DailyBudget()

		recommendations = append(recommendations, &domain.BudgetRecommendation{
			CampaignID:        entry.summary.ID,
			CampaignName:      entry.summary.Name,
			Provider:          entry.summary.Provider,
			CurrentBudget:     currentBudget,
			RecommendedBudget: utils.RoundWithTwoDecimalPlace(currentBudget * (1 + changePct/100)),
			ChangePct:         changePct,
			Reason:            recommendationReason(entry, changePct),
			Priority:          recommendationPriority(changePct),
		})
	}

	priorityOrder := map[domain.RecommendationPriority]int{
		domain.PriorityHigh:   0,
		domain.PriorityMedium: 1,
		domain.PriorityLow:    2,
	}
	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Priority != recommendations[j].Priority {
			return priorityOrder[recommendations[i].Priority] < priorityOrder[recommendations[j].Priority]
		}
		return math.Abs(recommendations[i].ChangePct) > math.Abs(recommendations[j].ChangePct)
	})

	return recommendations
}

// recommendationReason explica a variação proposta em termos de ROAS ou CPA.
func recommendationReason(entry *campaignEfficiency, changePct float64) string {
	if changePct > 0 {
		if entry.roas > 2 || math.IsInf(entry.cpa, 1) {
			return fmt.Sprintf("High ROAS (%.1fx)", entry.roas)
		}
		return fmt.Sprintf("Low CPA ($%.2f)", entry.cpa)
	}

	if entry.roas < 1 || math.IsInf(entry.cpa, 1) {
		return fmt.Sprintf("Low ROAS (%.1fx)", entry.roas)
	}
	return fmt.Sprintf("High CPA ($%.2f)", entry.cpa)
}

func recommendationPriority(changePct float64) domain.RecommendationPriority {
	switch {
	case math.Abs(changePct) >= 20:
		return domain.PriorityHigh
	case math.Abs(changePct) >= 10:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
