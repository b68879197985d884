package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

// newRecord monta um registro diário de teste com o gasto em unidades de moeda
func newRecord(campaignID, campaignName string, day time.Time, spend float64, impressions, clicks int64, conversions, conversionValue float64) *domain.DailyMetricRecord {
	return &domain.DailyMetricRecord{
		CampaignID:      campaignID,
		CampaignName:    campaignName,
		Provider:        domain.ProviderGoogleAds,
		Date:            day,
		Impressions:     impressions,
		Clicks:          clicks,
		SpendMicros:     int64(spend * 1_000_000),
		Conversions:     conversions,
		ConversionValue: conversionValue,
	}
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildSeries(t *testing.T) {
	t.Run("Agrupa por campanha e ordena por data ascendente", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{
			newRecord("c2", "Campanha B", day(3), 30, 1000, 50, 2, 100),
			newRecord("c1", "Campanha A", day(2), 20, 1000, 40, 1, 50),
			newRecord("c1", "Campanha A", day(1), 10, 1000, 20, 1, 50),
			newRecord("c2", "Campanha B", day(1), 15, 1000, 30, 0, 0),
		}

		view := buildSeries(records)

		assert.Len(t, view.byCampaign, 2)
		assert.Equal(t, "c1", view.byCampaign[0].campaignID)
		assert.Equal(t, "c2", view.byCampaign[1].campaignID)

		c1 := view.byCampaign[0]
		assert.Len(t, c1.points, 2)
		assert.True(t, c1.points[0].date.Before(c1.points[1].date))
		assert.Equal(t, 10.0, c1.points[0].spend)
	})

	t.Run("Agrega totais por data somando as campanhas", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{
			newRecord("c1", "Campanha A", day(1), 10, 1000, 20, 1, 50),
			newRecord("c2", "Campanha B", day(1), 15, 1000, 30, 2, 80),
			newRecord("c1", "Campanha A", day(2), 20, 1000, 40, 1, 50),
		}

		view := buildSeries(records)

		assert.Equal(t, 2, view.distinctDays())
		assert.Equal(t, day(1), view.byDate[0].date)
		assert.Equal(t, 25.0, view.byDate[0].spend)
		assert.Equal(t, 3.0, view.byDate[0].conversions)
		assert.Equal(t, 50.0, view.byDate[0].clicks)
		assert.Equal(t, 20.0, view.byDate[1].spend)
	})

	t.Run("Métricas derivadas com proteção de divisão por zero", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{
			newRecord("c1", "Campanha A", day(1), 50, 0, 0, 0, 0),
		}

		view := buildSeries(records)

		point := view.byCampaign[0].points[0]
		assert.Equal(t, 0.0, point.ctr)
		assert.Equal(t, 0.0, point.cpc)
		assert.Equal(t, 0.0, point.cpa)
		assert.Equal(t, 50.0, point.spend)
	})

	t.Run("Métricas derivadas calculadas corretamente", func(t *testing.T) {
		records := []*domain.DailyMetricRecord{
			newRecord("c1", "Campanha A", day(1), 100, 2000, 40, 4, 400),
		}

		view := buildSeries(records)

		point := view.byCampaign[0].points[0]
		assert.Equal(t, 2.0, point.ctr)  // 40/2000 * 100
		assert.Equal(t, 2.5, point.cpc)  // 100/40
		assert.Equal(t, 25.0, point.cpa) // 100/4
	})

	t.Run("Entrada vazia produz visão vazia", func(t *testing.T) {
		view := buildSeries(nil)

		assert.Empty(t, view.byCampaign)
		assert.Equal(t, 0, view.distinctDays())
	})
}
