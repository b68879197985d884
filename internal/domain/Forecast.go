package domain

// TrendDirection indica a direção da tendência linear de uma métrica
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// ForecastConfidence traduz o R² do ajuste linear em uma faixa qualitativa
type ForecastConfidence string

const (
	ConfidenceHigh   ForecastConfidence = "high"
	ConfidenceMedium ForecastConfidence = "medium"
	ConfidenceLow    ForecastConfidence = "low"
)

// Forecast representa a projeção de curto prazo de uma métrica agregada do
// workspace, obtida por regressão linear sobre a série diária.
type Forecast struct {
	Metric                 MetricKind         `json:"metric"`
	MetricName             string             `json:"metricName"`
	CurrentPeriodActual    float64            `json:"currentPeriodActual"`
	CurrentPeriodProjected float64            `json:"currentPeriodProjected"`
	NextPeriodForecast     float64            `json:"nextPeriodForecast"`
	Trend                  TrendDirection     `json:"trend"`
	TrendPct               float64            `json:"trendPct"`
	Confidence             ForecastConfidence `json:"confidence"`
}
