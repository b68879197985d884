package domain

// RecommendationPriority ordena recomendações por urgência
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// BudgetRecommendation propõe um ajuste no orçamento diário de uma campanha
// com base na eficiência relativa dela dentro do workspace.
type BudgetRecommendation struct {
	CampaignID        string                 `json:"campaignId"`
	CampaignName      string                 `json:"campaignName"`
	Provider          Provider               `json:"provider"`
	CurrentBudget     float64                `json:"currentBudget"`
	RecommendedBudget float64                `json:"recommendedBudget"`
	ChangePct         float64                `json:"changePct"`
	Reason            string                 `json:"reason"`
	Priority          RecommendationPriority `json:"priority"`
}

// ChangeAmount retorna a variação diária proposta em unidades de moeda.
func (r *BudgetRecommendation) ChangeAmount() float64 {
	return r.RecommendedBudget - r.CurrentBudget
}
