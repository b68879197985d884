package insighting

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

const (
	underspendingRatio = 0.9
	overspendingRatio  = 1.1

	// Abaixo disso o período está curto demais para sugerir ajuste diário
	shortPeriodDays = 7
)

// calculatePacing compara o gasto acumulado do mês corrente de cada campanha
// com orçamento definido contra o ritmo linear esperado. O período é sempre
// o mês de `now`, do dia 1 ao último dia.
func calculatePacing(view *seriesView, campaigns []*domain.CampaignSummary, now time.Time) []*domain.PacingStatus {
	if len(view.byCampaign) == 0 {
		return nil
	}

	periodStart := firstOfMonth(now)
	totalDays := daysInMonth(now)
	daysElapsed := now.Day()
	daysRemaining := totalDays - daysElapsed

	today := truncateToDay(now)
	spentByCampaign := make(map[string]float64, len(view.byCampaign))
	for _, series := range view.byCampaign {
		for _, point := range series.points {
			if point.date.Before(periodStart) || point.date.After(today) {
				continue
			}
			spentByCampaign[series.campaignID] += point.spend
		}
	}

	statuses := make([]*domain.PacingStatus, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign.DailyBudgetMicros == nil || *campaign.DailyBudgetMicros == 0 {
			continue
		}

		periodBudget := campaign.DailyBudget() * float64(totalDays)
		spentToDate := spentByCampaign[campaign.ID]
		expectedSpend := float64(daysElapsed) / float64(totalDays) * periodBudget

		state := domain.PacingOnTrack
		if expectedSpend > 0 {
			ratio := spentToDate / expectedSpend
			switch {
			case ratio > overspendingRatio:
				state = domain.PacingOverspending
			case ratio < underspendingRatio:
				state = domain.PacingUnderspending
			}
		}

		dailyAvg := spentToDate / float64(daysElapsed)
		projectedSpend := spentToDate + dailyAvg*float64(daysRemaining)
		projectedVariance := projectedSpend - periodBudget

		statuses = append(statuses, &domain.PacingStatus{
			CampaignID:        campaign.ID,
			CampaignName:      campaign.Name,
			Provider:          campaign.Provider,
			PeriodBudget:      periodBudget,
			SpentToDate:       spentToDate,
			DaysElapsed:       daysElapsed,
			DaysRemaining:     daysRemaining,
			Status:            state,
			ProjectedSpend:    projectedSpend,
			ProjectedVariance: projectedVariance,
			Recommendation:    pacingRecommendation(state, projectedVariance, daysRemaining),
		})
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		return math.Abs(statuses[i].ProjectedVariance) > math.Abs(statuses[j].ProjectedVariance)
	})

	return statuses
}

func pacingRecommendation(state domain.PacingState, variance float64, daysRemaining int) string {
	switch state {
	case domain.PacingOverspending:
		if daysRemaining > shortPeriodDays {
			return fmt.Sprintf("Consider reducing daily spend by $%.2f to stay on budget.", math.Abs(variance)/float64(daysRemaining))
		}
		return fmt.Sprintf("Projected to overspend by $%.2f. Review campaign efficiency.", math.Abs(variance))
	case domain.PacingUnderspending:
		if daysRemaining > shortPeriodDays {
			return fmt.Sprintf("Opportunity to increase spend by $%.2f/day.", math.Abs(variance)/float64(daysRemaining))
		}
		return fmt.Sprintf("May underspend by $%.2f. Consider increasing bids or budgets.", math.Abs(variance))
	default:
		return "Budget pacing is healthy. Continue current strategy."
	}
}
