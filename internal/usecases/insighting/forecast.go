package insighting

import (
	"math"
	"time"

	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

const (
	// Mínimo de pontos diários para ajustar a regressão
	minForecastSamples = 7

	// Horizonte projetado em dias
	forecastHorizonDays = 30

	// Variação diária relativa abaixo disso é tratada como estável
	stableTrendThresholdPct = 5.0

	highConfidenceR2   = 0.7
	mediumConfidenceR2 = 0.4
)

// regression guarda o resultado do ajuste de mínimos quadrados sobre a
// série indexada (x = 0..n-1).
type regression struct {
	slope     float64
	intercept float64
	rSquared  float64
}

// forecastTargets define quais métricas agregadas são projetadas e o nome
// exibido no relatório.
var forecastTargets = []struct {
	metric domain.MetricKind
	name   string
	value  func(dailyTotal) float64
}{
	{metric: domain.MetricSpend, name: "Spend", value: func(d dailyTotal) float64 { return d.spend }},
	{metric: domain.MetricConversions, name: "Conversions", value: func(d dailyTotal) float64 { return d.conversions }},
	{metric: domain.MetricClicks, name: "Clicks", value: func(d dailyTotal) float64 { return d.clicks }},
}

// generateForecasts projeta spend, conversões e cliques do workspace a
// partir dos totais diários agregados. Cada métrica recebe um ajuste
// linear independente sobre a série indexada; séries curtas ficam de fora.
func generateForecasts(view *seriesView, now time.Time) []*domain.Forecast {
	if len(view.byDate) < minForecastSamples {
		return nil
	}

	forecasts := make([]*domain.Forecast, 0, len(forecastTargets))
	for _, target := range forecastTargets {
		values := make([]float64, len(view.byDate))
		for i, total := range view.byDate {
			values[i] = target.value(total)
		}

		fit := fitLinear(values)
		mean := meanOf(values)

		trendPct := 0.0
		if mean > 0 {
			trendPct = fit.slope / mean * 100
		}

		trend := domain.TrendStable
		switch {
		case trendPct > stableTrendThresholdPct:
			trend = domain.TrendUp
		case trendPct < -stableTrendThresholdPct:
			trend = domain.TrendDown
		}

		actual, projected := currentPeriodTotals(view.byDate, target.value, mean, now)

		forecasts = append(forecasts, &domain.Forecast{
			Metric:                 target.metric,
			MetricName:             target.name,
			CurrentPeriodActual:    actual,
			CurrentPeriodProjected: projected,
			NextPeriodForecast:     projectNextPeriod(fit, len(values)),
			Trend:                  trend,
			TrendPct:               trendPct,
			Confidence:             forecastConfidence(fit.rSquared),
		})
	}

	return forecasts
}

// forecastConfidence traduz o R² do ajuste na faixa qualitativa exibida no
// relatório. Os limites são estritos: um R² de exatamente 0.7 ainda é
// confiança média.
func forecastConfidence(rSquared float64) domain.ForecastConfidence {
	switch {
	case rSquared > highConfidenceR2:
		return domain.ConfidenceHigh
	case rSquared > mediumConfidenceR2:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// currentPeriodTotals soma a métrica do dia 1 do mês corrente até hoje e
// extrapola o total do mês pelo ritmo observado. Sem dados no mês corrente
// a extrapolação usa a média diária da janela inteira.
func currentPeriodTotals(totals []dailyTotal, value func(dailyTotal) float64, overallDailyMean float64, now time.Time) (actual, projected float64) {
	periodStart := firstOfMonth(now)
	today := truncateToDay(now)

	elapsedWithData := 0
	for _, total := range totals {
		if total.date.Before(periodStart) || total.date.After(today) {
			continue
		}
		actual += value(total)
		elapsedWithData++
	}

	monthDays := float64(daysInMonth(now))
	if elapsedWithData > 0 {
		projected = actual / float64(elapsedWithData) * monthDays
		return actual, projected
	}

	return actual, overallDailyMean * monthDays
}

// fitLinear ajusta y = intercept + slope*x por mínimos quadrados, com
// x sendo o índice do ponto na série.
func fitLinear(values []float64) regression {
	n := float64(len(values))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return regression{intercept: sumY / n}
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssTotal, ssResidual float64
	for i, y := range values {
		predicted := intercept + slope*float64(i)
		ssTotal += (y - meanY) * (y - meanY)
		ssResidual += (y - predicted) * (y - predicted)
	}

	rSquared := 0.0
	if ssTotal > 0 {
		rSquared = 1 - ssResidual/ssTotal
		if rSquared < 0 {
			rSquared = 0
		}
	}

	return regression{slope: slope, intercept: intercept, rSquared: rSquared}
}

// projectNextPeriod soma os próximos 30 pontos da reta ajustada,
// truncando valores negativos em zero.
func projectNextPeriod(fit regression, sampleCount int) float64 {
	var total float64
	for i := sampleCount; i < sampleCount+forecastHorizonDays; i++ {
		predicted := fit.intercept + fit.slope*float64(i)
		total += math.Max(0, predicted)
	}
	return total
}

func firstOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func daysInMonth(now time.Time) int {
	return firstOfMonth(now).AddDate(0, 1, -1).Day()
}
