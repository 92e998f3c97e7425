package domain

import (
	"time"
)

// MetricsSnapshot é uma linha da tabela metrics. Valores em unidade de exibição
// (dólares e pontos percentuais); nil quando a coluna está NULL.
type MetricsSnapshot struct {
	ID                      string    `json:"id"`
	Timestamp               time.Time `json:"timestamp"`
	TotalMarketingSpend     *float64  `json:"totalMarketingSpend"`
	InfluencerSpend         *float64  `json:"influencerSpend"`
	PaidAdsSpend            *float64  `json:"paidAdsSpend"`
	NetRevenue              *float64  `json:"netRevenue"`
	RevenueSpentOnAds       *float64  `json:"revenueSpentOnAds"`
	CustomerLifetimeValue   *float64  `json:"customerLifetimeValue"`
	CustomerAcquisitionCost *float64  `json:"customerAcquisitionCost"`
	Tickets                 *int64    `json:"tickets"`
	Revenue                 *float64  `json:"revenue"`
	OperationalExpenses     *float64  `json:"operationalExpenses"`
	CreatedAt               time.Time `json:"createdAt"`
}

// DailyMetric é uma linha da tabela daily_metrics, única por data
type DailyMetric struct {
	Date              Date      `json:"date"`
	GrossRevenue      *float64  `json:"grossRevenue"`
	NetRevenue        *float64  `json:"netRevenue"`
	DailyGuests       *int64    `json:"dailyGuests"`
	AccumulatedGuests *int64    `json:"accumulatedGuests"`
	AccumulatedNet    *float64  `json:"accumulatedNet,omitempty"`
	UpdatedAt         time.Time `json:"-"`
}

// DisplayMetric é o valor de um card do dashboard
type DisplayMetric struct {
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	Prefix string  `json:"prefix,omitempty"`
	Suffix string  `json:"suffix,omitempty"`
}

// DashboardMetrics tem um conjunto fixo de chaves; um card novo exige um campo novo aqui
type DashboardMetrics struct {
	TotalMarketingSpend     DisplayMetric `json:"totalMarketingSpend"`
	InfluencerSpend         DisplayMetric `json:"influencerSpend"`
	PaidAdsSpend            DisplayMetric `json:"paidAdsSpend"`
	NetRevenue              DisplayMetric `json:"netRevenue"`
	RevenueSpentOnAds       DisplayMetric `json:"revenueSpentOnAds"`
	CustomerLifetimeValue   DisplayMetric `json:"customerLifetimeValue"`
	CustomerAcquisitionCost DisplayMetric `json:"customerAcquisitionCost"`
	Tickets                 DisplayMetric `json:"tickets"`
	Revenue                 DisplayMetric `json:"revenue"`
	OperationalExpenses     DisplayMetric `json:"operationalExpenses"`
}

// ChartPoint é um ponto (data, valor) de uma série
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type DashboardCharts struct {
	BarChart  []ChartPoint `json:"barChart"`
	LineChart []ChartPoint `json:"lineChart"`
}

// DashboardData é a resposta de GET /metrics
type DashboardData struct {
	Metrics DashboardMetrics `json:"metrics"`
	Charts  DashboardCharts  `json:"charts"`
}

// DisplayMetricInput é um card recebido no corpo de POST /metrics/update.
// Só Value é usado; label/prefix/suffix são fixos do lado do servidor.
type DisplayMetricInput struct {
	Value  *float64 `json:"value"`
	Label  string   `json:"label,omitempty"`
	Prefix string   `json:"prefix,omitempty"`
	Suffix string   `json:"suffix,omitempty"`
}

type DashboardMetricsInput struct {
	TotalMarketingSpend     *DisplayMetricInput `json:"totalMarketingSpend"`
	InfluencerSpend         *DisplayMetricInput `json:"influencerSpend"`
	PaidAdsSpend            *DisplayMetricInput `json:"paidAdsSpend"`
	NetRevenue              *DisplayMetricInput `json:"netRevenue"`
	RevenueSpentOnAds       *DisplayMetricInput `json:"revenueSpentOnAds"`
	CustomerLifetimeValue   *DisplayMetricInput `json:"customerLifetimeValue"`
	CustomerAcquisitionCost *DisplayMetricInput `json:"customerAcquisitionCost"`
	Tickets                 *DisplayMetricInput `json:"tickets"`
	Revenue                 *DisplayMetricInput `json:"revenue"`
	OperationalExpenses     *DisplayMetricInput `json:"operationalExpenses"`
}

// MetricsUpdate é o corpo de POST /metrics/update. Todas as seções são opcionais.
type MetricsUpdate struct {
	Metrics              *DashboardMetricsInput `json:"metrics,omitempty"`
	DailyMetrics         []DailyMetric          `json:"dailyMetrics,omitempty"`
	UpstreamMetrics      *UpstreamSnapshot      `json:"upstreamMetrics,omitempty"`
	UpstreamDailyMetrics []UpstreamDailyRevenue `json:"upstreamDailyMetrics,omitempty"`
}

// IsEmpty indica que nenhuma seção foi enviada
func (u *MetricsUpdate) IsEmpty() bool {
	return u == nil || (u.Metrics == nil && u.UpstreamMetrics == nil &&
		len(u.DailyMetrics) == 0 && len(u.UpstreamDailyMetrics) == 0)
}
