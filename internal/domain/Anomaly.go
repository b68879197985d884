package domain

// MetricKind identifica uma métrica derivada acompanhada pelo motor de insights
type MetricKind string

const (
	MetricCTR         MetricKind = "ctr"
	MetricCPC         MetricKind = "cpc"
	MetricCPA         MetricKind = "cpa"
	MetricSpend       MetricKind = "spend"
	MetricConversions MetricKind = "conversions"
	MetricClicks      MetricKind = "clicks"
)

// AnomalySeverity classifica o quão fora do histórico um valor está
type AnomalySeverity string

const (
	SeverityWarning  AnomalySeverity = "warning"
	SeverityCritical AnomalySeverity = "critical"
)

// AnomalyDirection indica o sentido do desvio em relação à média histórica
type AnomalyDirection string

const (
	DirectionIncrease AnomalyDirection = "increase"
	DirectionDecrease AnomalyDirection = "decrease"
)

// Anomaly representa um valor de métrica que desviou estatisticamente do
// histórico recente da campanha.
type Anomaly struct {
	CampaignID    string           `json:"campaignId"`
	CampaignName  string           `json:"campaignName"`
	Provider      Provider         `json:"provider"`
	Metric        MetricKind       `json:"metric"`
	CurrentValue  float64          `json:"currentValue"`
	ExpectedValue float64          `json:"expectedValue"`
	DeviationPct  float64          `json:"deviationPct"`
	Severity      AnomalySeverity  `json:"severity"`
	Direction     AnomalyDirection `json:"direction"`
	Message       string           `json:"message"`
}

// AnomalySummary agrega as contagens sobre o conjunto completo de anomalias
// detectadas e carrega apenas as top N no relatório.
type AnomalySummary struct {
	Total    int        `json:"total"`
	Critical int        `json:"critical"`
	Warning  int        `json:"warning"`
	Items    []*Anomaly `json:"items"`
}
