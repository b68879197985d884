package domain

import "time"

// InsightsReport é o agregado raiz produzido pelo motor de insights. É um
// valor imutável, criado a cada invocação, sem identidade persistida.
type InsightsReport struct {
	GeneratedAt           time.Time               `json:"generatedAt"`
	HealthScore           float64                 `json:"healthScore"`
	KeyInsights           []string                `json:"keyInsights"`
	Anomalies             AnomalySummary          `json:"anomalies"`
	BudgetRecommendations []*BudgetRecommendation `json:"budgetRecommendations"`
	Forecasts             []*Forecast             `json:"forecasts"`
	Pacing                []*PacingStatus         `json:"pacing"`
}
