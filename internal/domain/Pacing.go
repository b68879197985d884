package domain

// PacingState indica se o gasto acumulado do mês está dentro do esperado
type PacingState string

const (
	PacingOnTrack       PacingState = "on_track"
	PacingUnderspending PacingState = "underspending"
	PacingOverspending  PacingState = "overspending"
)

// PacingStatus compara o gasto acumulado do mês de uma campanha com o ritmo
// linear esperado do orçamento mensal.
type PacingStatus struct {
	CampaignID        string      `json:"campaignId"`
	CampaignName      string      `json:"campaignName"`
	Provider          Provider    `json:"provider"`
	PeriodBudget      float64     `json:"periodBudget"`
	SpentToDate       float64     `json:"spentToDate"`
	DaysElapsed       int         `json:"daysElapsed"`
	DaysRemaining     int         `json:"daysRemaining"`
	Status            PacingState `json:"pacingStatus"`
	ProjectedSpend    float64     `json:"projectedSpend"`
	ProjectedVariance float64     `json:"projectedVariance"`
	Recommendation    string      `json:"recommendation"`
}
