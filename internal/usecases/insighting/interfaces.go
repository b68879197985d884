package insighting

import (
	"time"

	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

// Insighter define a interface do motor de análise de performance
type Insighter interface {
	// ComputeInsights calcula o relatório completo de insights para um
	// snapshot imutável de métricas e campanhas de um workspace
	ComputeInsights(metrics []*domain.DailyMetricRecord, campaigns []*domain.CampaignSummary, now time.Time) *domain.InsightsReport
}
