package insighting

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

const (
	// Limiares de z-score para severidade (~95% e ~99,7% de confiança)
	warningZScore  = 2.0
	criticalZScore = 3.0

	// Dias de histórico considerados antes do dia analisado
	anomalyHistoryDays = 30

	// Mínimo de registros diários de uma campanha para entrar na análise
	minCampaignRecords = 7

	// Mínimo de amostras históricas positivas por métrica
	minHistorySamples = 5
)

// anomalyMetrics são as métricas monitoradas, na ordem em que são avaliadas.
var anomalyMetrics = []domain.MetricKind{
	domain.MetricCTR,
	domain.MetricCPC,
	domain.MetricCPA,
	domain.MetricSpend,
}

// detectAnomalies compara o valor mais recente de cada métrica monitorada de
// cada campanha com a distribuição dos até 30 dias anteriores, usando
// z-score sobre o desvio padrão populacional. Retorna a lista completa de
// anomalias ordenada por severidade e desvio absoluto.
func detectAnomalies(view *seriesView) []*domain.Anomaly {
	anomalies := make([]*domain.Anomaly, 0)

	for _, series := range view.byCampaign {
		if len(series.points) < minCampaignRecords {
			continue
		}

		current := series.points[len(series.points)-1]
		history := series.points[:len(series.points)-1]
		if len(history) > anomalyHistoryDays {
			history = history[len(history)-anomalyHistoryDays:]
		}

		for _, metric := range anomalyMetrics {
			anomaly := checkMetricAnomaly(series, metric, current, history)
			if anomaly != nil {
				anomalies = append(anomalies, anomaly)
			}
		}
	}

	// Críticas primeiro; dentro da mesma severidade, maior desvio primeiro
	sort.SliceStable(anomalies, func(i, j int) bool {
		if anomalies[i].Severity != anomalies[j].Severity {
			return anomalies[i].Severity == domain.SeverityCritical
		}
		return math.Abs(anomalies[i].DeviationPct) > math.Abs(anomalies[j].DeviationPct)
	})

	return anomalies
}

// checkMetricAnomaly avalia uma métrica de uma campanha. Retorna nil quando
// não há amostra suficiente, quando o histórico não tem variância ou quando
// o valor atual está dentro do esperado.
func checkMetricAnomaly(
	series *campaignSeries,
	metric domain.MetricKind,
	current metricPoint,
	history []metricPoint,
) *domain.Anomaly {
	// Apenas valores estritamente positivos entram na amostra histórica:
	// zero aqui quase sempre significa "sem dado" (sem cliques, sem
	// conversões), não um valor observado da métrica.
	sample := make([]float64, 0, len(history))
	for _, point := range history {
		if value := point.metricValue(metric); value > 0 {
			sample = append(sample, value)
		}
	}

	if len(sample) < minHistorySamples {
		return nil
	}

	mean := meanOf(sample)
	stdDev := populationStdDev(sample, mean)

	// Histórico constante não oferece base de comparação; o salto fica sem
	// sinalização mesmo quando o valor absoluto muda muito.
	if stdDev == 0 {
		return nil
	}

	currentValue := current.metricValue(metric)
	zScore := (currentValue - mean) / stdDev

	if math.Abs(zScore) < warningZScore {
		return nil
	}

	severity := domain.SeverityWarning
	if math.Abs(zScore) >= criticalZScore {
		severity = domain.SeverityCritical
	}

	direction := domain.DirectionDecrease
	if zScore > 0 {
		direction = domain.DirectionIncrease
	}

	deviationPct := 0.0
	if mean > 0 {
		deviationPct = (currentValue - mean) / mean * 100
	}

	return &domain.Anomaly{
		CampaignID:    series.campaignID,
		CampaignName:  series.campaignName,
		Provider:      series.provider,
		Metric:        metric,
		CurrentValue:  currentValue,
		ExpectedValue: mean,
		DeviationPct:  deviationPct,
		Severity:      severity,
		Direction:     direction,
		Message: fmt.Sprintf("%s: %s %sd by %.1f%%",
			series.campaignName,
			strings.ToUpper(string(metric)),
			direction,
			math.Abs(deviationPct),
		),
	}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

// populationStdDev calcula o desvio padrão populacional (divisor N).
func populationStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sumSquares := 0.0
	for _, value := range values {
		diff := value - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}
