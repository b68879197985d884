package insighting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

// Máximo de itens expostos por seção do relatório. As contagens e o score
// de saúde sempre consideram o conjunto completo.
const maxReportItems = 10

// Service implementa a interface Insighter
type Service struct{}

// NewService cria uma nova instância do motor de insights
func NewService() Insighter {
	return &Service{}
}

// ComputeInsights monta as duas visões da série, roda os quatro
// analisadores em paralelo sobre referências somente-leitura e junta tudo
// no relatório final. Função pura sobre a entrada: mesma entrada e mesmo
// `now` produzem exatamente o mesmo relatório.
func (s *Service) ComputeInsights(
	metrics []*domain.DailyMetricRecord,
	campaigns []*domain.CampaignSummary,
	now time.Time,
) *domain.InsightsReport {
	view := buildSeries(metrics)

	logrus.WithFields(logrus.Fields{
		"campaigns": len(view.byCampaign),
		"days":      view.distinctDays(),
	}).Debug("Calculando insights do workspace")

	var (
		anomalies       []*domain.Anomaly
		recommendations []*domain.BudgetRecommendation
		forecasts       []*domain.Forecast
		pacing          []*domain.PacingStatus
	)

	// Os quatro analisadores não dependem um do outro e só leem a visão
	// compartilhada, então podem rodar em paralelo sem sincronização.
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		anomalies = detectAnomalies(view)
	}()

	go func() {
		defer wg.Done()
		recommendations = recommendBudgets(view, campaigns)
	}()

	go func() {
		defer wg.Done()
		forecasts = generateForecasts(view, now)
	}()

	go func() {
		defer wg.Done()
		pacing = calculatePacing(view, campaigns, now)
	}()

	wg.Wait()

	// Score e narrativa consomem os conjuntos completos, antes do corte
	// de top N feito na montagem do relatório.
	score := healthScore(anomalies, recommendations, pacing)
	keyInsights := narrate(anomalies, recommendations, forecasts, pacing)

	summary := domain.AnomalySummary{
		Total: len(anomalies),
		Items: capAnomalies(anomalies),
	}
	for _, anomaly := range anomalies {
		switch anomaly.Severity {
		case domain.SeverityCritical:
			summary.Critical++
		case domain.SeverityWarning:
			summary.Warning++
		}
	}

	return &domain.InsightsReport{
		GeneratedAt:           now.UTC(),
		HealthScore:           score,
		KeyInsights:           keyInsights,
		Anomalies:             summary,
		BudgetRecommendations: capRecommendations(recommendations),
		Forecasts:             forecasts,
		Pacing:                capPacing(pacing),
	}
}

func capAnomalies(items []*domain.Anomaly) []*domain.Anomaly {
	if len(items) > maxReportItems {
		return items[:maxReportItems]
	}
	return items
}

func capRecommendations(items []*domain.BudgetRecommendation) []*domain.BudgetRecommendation {
	if len(items) > maxReportItems {
		return items[:maxReportItems]
	}
	return items
}

func capPacing(items []*domain.PacingStatus) []*domain.PacingStatus {
	if len(items) > maxReportItems {
		return items[:maxReportItems]
	}
	return items
}
