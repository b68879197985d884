package domain

import "github.com/vfg2006/ppc-insights-api/pkg/utils"

// Provider identifica a plataforma de anúncios de origem dos dados
type Provider string

const (
	ProviderGoogleAds Provider = "google_ads"
	ProviderMeta      Provider = "meta"
)

// CampaignStatus representa o status de veiculação de uma campanha
type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "enabled"
	CampaignStatusPaused  CampaignStatus = "paused"
	CampaignStatusRemoved CampaignStatus = "removed"
)

// CampaignSummary contém os metadados de uma campanha necessários para as
// análises de orçamento e pacing. Campanhas sem orçamento diário definido
// ficam de fora dessas análises.
type CampaignSummary struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Provider          Provider       `json:"provider"`
	Status            CampaignStatus `json:"status"`
	DailyBudgetMicros *int64         `json:"dailyBudgetMicros"`
}

// DailyBudget retorna o orçamento diário em unidades de moeda.
// Retorna zero quando a campanha não tem orçamento definido.
func (c *CampaignSummary) DailyBudget() float64 {
	if c.DailyBudgetMicros == nil {
		return 0
	}
	return utils.MicrosToCurrency(*c.DailyBudgetMicros)
}
