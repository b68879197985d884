package domain

import (
	"time"

	"github.com/vfg2006/ppc-insights-api/pkg/utils"
)

// DailyMetricRecord é o fato imutável de performance de uma campanha em um
// dia de calendário, como entregue pelo repositório. Valores monetários
// chegam sempre em micros (1 unidade de moeda = 1.000.000 micros).
type DailyMetricRecord struct {
	CampaignID      string    `json:"campaignId"`
	CampaignName    string    `json:"campaignName"`
	Provider        Provider  `json:"provider"`
	Date            time.Time `json:"date"`
	Impressions     int64     `json:"impressions"`
	Clicks          int64     `json:"clicks"`
	SpendMicros     int64     `json:"spendMicros"`
	Conversions     float64   `json:"conversions"`
	ConversionValue float64   `json:"conversionValue"`
}

// Spend retorna o gasto do dia em unidades de moeda.
func (r *DailyMetricRecord) Spend() float64 {
	return utils.MicrosToCurrency(r.SpendMicros)
}
