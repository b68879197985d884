package insighting

import (
	"sort"
	"time"

	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

// metricPoint guarda os valores derivados de um registro diário. A conversão
// de micros para unidades de moeda acontece aqui e em nenhum outro lugar.
type metricPoint struct {
	date            time.Time
	spend           float64
	ctr             float64
	cpc             float64
	cpa             float64
	clicks          int64
	conversions     float64
	conversionValue float64
}

// campaignSeries é a série diária de uma campanha, ordenada por data
// ascendente.
type campaignSeries struct {
	campaignID   string
	campaignName string
	provider     domain.Provider
	points       []metricPoint
}

// dailyTotal agrega os valores de todas as campanhas em um dia de calendário.
type dailyTotal struct {
	date        time.Time
	spend       float64
	conversions float64
	clicks      float64
}

// seriesView são as duas visões somente-leitura consumidas pelos
// componentes de análise: por campanha e por data.
type seriesView struct {
	byCampaign []*campaignSeries
	byDate     []dailyTotal
}

// distinctDays retorna a quantidade de dias de calendário distintos na
// janela analisada.
func (v *seriesView) distinctDays() int {
	return len(v.byDate)
}

// buildSeries agrupa os registros diários por campanha e por data, ordena
// cada grupo por data ascendente e calcula as métricas derivadas de cada
// registro. Transformação pura: a entrada nunca é modificada.
func buildSeries(records []*domain.DailyMetricRecord) *seriesView {
	byCampaign := make(map[string]*campaignSeries)
	byDate := make(map[time.Time]*dailyTotal)

	for _, record := range records {
		day := truncateToDay(record.Date)

		series, exists := byCampaign[record.CampaignID]
		if !exists {
			series = &campaignSeries{
				campaignID:   record.CampaignID,
				campaignName: record.CampaignName,
				provider:     record.Provider,
			}
			byCampaign[record.CampaignID] = series
		}
		series.points = append(series.points, derivePoint(record, day))

		total, exists := byDate[day]
		if !exists {
			total = &dailyTotal{date: day}
			byDate[day] = total
		}
		total.spend += record.Spend()
		total.conversions += record.Conversions
		total.clicks += float64(record.Clicks)
	}

	view := &seriesView{
		byCampaign: make([]*campaignSeries, 0, len(byCampaign)),
		byDate:     make([]dailyTotal, 0, len(byDate)),
	}

	for _, series := range byCampaign {
		sort.Slice(series.points, func(i, j int) bool {
			return series.points[i].date.Before(series.points[j].date)
		})
		view.byCampaign = append(view.byCampaign, series)
	}

	// Ordenação por ID para que o resultado seja determinístico entre
	// invocações com a mesma entrada.
	sort.Slice(view.byCampaign, func(i, j int) bool {
		return view.byCampaign[i].campaignID < view.byCampaign[j].campaignID
	})

	for _, total := range byDate {
		view.byDate = append(view.byDate, *total)
	}
	sort.Slice(view.byDate, func(i, j int) bool {
		return view.byDate[i].date.Before(view.byDate[j].date)
	})

	return view
}

// derivePoint calcula as métricas derivadas de um registro diário com as
// proteções de divisão por zero.
func derivePoint(record *domain.DailyMetricRecord, day time.Time) metricPoint {
	point := metricPoint{
		date:            day,
		spend:           record.Spend(),
		clicks:          record.Clicks,
		conversions:     record.Conversions,
		conversionValue: record.ConversionValue,
	}

	if record.Impressions > 0 {
		point.ctr = float64(record.Clicks) / float64(record.Impressions) * 100
	}

	if record.Clicks > 0 {
		point.cpc = point.spend / float64(record.Clicks)
	}

	if record.Conversions > 0 {
		point.cpa = point.spend / record.Conversions
	}

	return point
}

// metricValue retorna o valor da métrica acompanhada em um ponto da série.
func (p metricPoint) metricValue(metric domain.MetricKind) float64 {
	switch metric {
	case domain.MetricCTR:
		return p.ctr
	case domain.MetricCPC:
		return p.cpc
	case domain.MetricCPA:
		return p.cpa
	case domain.MetricSpend:
		return p.spend
	}
	return 0
}

// truncateToDay normaliza um timestamp para a meia-noite do mesmo dia.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
