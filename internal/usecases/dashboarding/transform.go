package dashboarding

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

// RevenueSeries escolhe qual coluna diária alimenta o gráfico de linha
type RevenueSeries string

const (
	RevenueSeriesGross RevenueSeries = "gross"
	RevenueSeriesNet   RevenueSeries = "net"
)

// ParseRevenueSeries aceita "gross" ou "net"; vazio vira gross
func ParseRevenueSeries(value string) (RevenueSeries, error) {
	switch RevenueSeries(strings.ToLower(strings.TrimSpace(value))) {
	case "", RevenueSeriesGross:
		return RevenueSeriesGross, nil
	case RevenueSeriesNet:
		return RevenueSeriesNet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRevenueSrc, value)
	}
}

const (
	prefixDollar  = "$"
	suffixPercent = "%"
)

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int64) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}

func money(label string, v *float64) domain.DisplayMetric {
	return domain.DisplayMetric{Value: orZero(v), Label: label, Prefix: prefixDollar}
}

// buildMetrics monta os cards com rótulos fixos; campos nil viram 0
func buildMetrics(snapshot *domain.MetricsSnapshot) domain.DashboardMetrics {
	if snapshot == nil {
		snapshot = &domain.MetricsSnapshot{}
	}

	return domain.DashboardMetrics{
		TotalMarketingSpend: money("Total Marketing Spend", snapshot.TotalMarketingSpend),
		InfluencerSpend:     money("Influencer Spend", snapshot.InfluencerSpend),
		PaidAdsSpend:        money("Paid Ads Spend", snapshot.PaidAdsSpend),
		NetRevenue:          money("Net Revenue", snapshot.NetRevenue),
		RevenueSpentOnAds: domain.DisplayMetric{
			Value:  orZero(snapshot.RevenueSpentOnAds),
			Label:  "Revenue Spent on Ads",
			Suffix: suffixPercent,
		},
		CustomerLifetimeValue:   money("Customer Lifetime Value", snapshot.CustomerLifetimeValue),
		CustomerAcquisitionCost: money("Customer Acquisition Cost", snapshot.CustomerAcquisitionCost),
		Tickets: domain.DisplayMetric{
			Value: intOrZero(snapshot.Tickets),
			Label: "Tickets",
		},
		Revenue:             money("Revenue", snapshot.Revenue),
		OperationalExpenses: money("Operational Expenses", snapshot.OperationalExpenses),
	}
}

// BuildDashboardPayload monta a resposta de GET /metrics a partir do último snapshot
// e das linhas diárias, mantendo a ordem recebida.
func BuildDashboardPayload(snapshot *domain.MetricsSnapshot, daily []*domain.DailyMetric, series RevenueSeries) domain.DashboardData {
	barChart := make([]domain.ChartPoint, 0, len(daily))
	lineChart := make([]domain.ChartPoint, 0, len(daily))

	for _, row := range daily {
		if row == nil {
			continue
		}

		date := row.Date.String()
		barChart = append(barChart, domain.ChartPoint{Date: date, Value: intOrZero(row.DailyGuests)})

		revenue := row.GrossRevenue
		if series == RevenueSeriesNet {
			revenue = row.NetRevenue
		}
		lineChart = append(lineChart, domain.ChartPoint{Date: date, Value: orZero(revenue)})
	}

	return domain.DashboardData{
		Metrics: buildMetrics(snapshot),
		Charts: domain.DashboardCharts{
			BarChart:  barChart,
			LineChart: lineChart,
		},
	}
}

func centsToDollars(v *float64) *float64 {
	if v == nil {
		return nil
	}
	converted := utils.CentsToDollars(*v)
	return &converted
}

func fractionToPercent(v *float64) *float64 {
	if v == nil {
		return nil
	}
	converted := utils.FractionToPercent(*v)
	return &converted
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// convertUpstreamValues converte as unidades do job runner preservando nil.
// Deve ser aplicada exatamente uma vez sobre o payload bruto.
func convertUpstreamValues(payload *domain.UpstreamSnapshot) *domain.MetricsSnapshot {
	if payload == nil {
		return &domain.MetricsSnapshot{}
	}

	return &domain.MetricsSnapshot{
		TotalMarketingSpend:     centsToDollars(payload.TotalMarketingSpend),
		InfluencerSpend:         centsToDollars(payload.InfluencerSpend),
		PaidAdsSpend:            centsToDollars(payload.PaidAdsSpend),
		NetRevenue:              centsToDollars(payload.NetRevenue),
		RevenueSpentOnAds:       fractionToPercent(payload.RevenueSpentOnAds),
		CustomerLifetimeValue:   centsToDollars(payload.CustomerLifetimeValue),
		CustomerAcquisitionCost: centsToDollars(payload.CustomerAcquisitionCost),
		Tickets:                 copyInt(payload.AccumulatedTickets),
		Revenue:                 centsToDollars(payload.RevenueAfterStripe),
		// Já chega em dólares
		OperationalExpenses: copyFloat(payload.OperationalExpenses),
	}
}

// TransformUpstreamSnapshot converte o payload do job runner direto para os cards do dashboard
func TransformUpstreamSnapshot(payload *domain.UpstreamSnapshot) domain.DashboardMetrics {
	return buildMetrics(convertUpstreamValues(payload))
}

// SnapshotFromUpstream converte o payload do job runner numa linha da tabela metrics.
// Um timestamp vazio fica zero e o repositório usa o horário atual.
func SnapshotFromUpstream(payload *domain.UpstreamSnapshot) (*domain.MetricsSnapshot, error) {
	snapshot := convertUpstreamValues(payload)
	if payload == nil || strings.TrimSpace(payload.Timestamp) == "" {
		return snapshot, nil
	}

	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(payload.Timestamp))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, payload.Timestamp)
	}
	snapshot.Timestamp = ts.UTC()

	return snapshot, nil
}

// TransformUpstreamDaily converte o dataset diário do job runner (centavos) para dólares
func TransformUpstreamDaily(rows []domain.UpstreamDailyRevenue) []*domain.DailyMetric {
	metrics := make([]*domain.DailyMetric, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, &domain.DailyMetric{
			Date:              row.Date,
			GrossRevenue:      centsToDollars(row.GrossRevenue),
			NetRevenue:        centsToDollars(row.NetRevenue),
			DailyGuests:       copyInt(row.DailyGuests),
			AccumulatedGuests: copyInt(row.AccumulatedGuests),
			AccumulatedNet:    centsToDollars(row.AccumulatedNet),
		})
	}
	return metrics
}

func displayValue(input *domain.DisplayMetricInput) *float64 {
	if input == nil {
		return nil
	}
	return copyFloat(input.Value)
}

// SnapshotFromDisplay usa os valores já em unidade de exibição, sem conversão.
// Rótulos enviados pelo cliente são ignorados.
func SnapshotFromDisplay(metrics *domain.DashboardMetricsInput) *domain.MetricsSnapshot {
	if metrics == nil {
		return &domain.MetricsSnapshot{}
	}

	var tickets *int64
	if v := displayValue(metrics.Tickets); v != nil {
		rounded := int64(math.Round(*v))
		tickets = &rounded
	}

	return &domain.MetricsSnapshot{
		TotalMarketingSpend:     displayValue(metrics.TotalMarketingSpend),
		InfluencerSpend:         displayValue(metrics.InfluencerSpend),
		PaidAdsSpend:            displayValue(metrics.PaidAdsSpend),
		NetRevenue:              displayValue(metrics.NetRevenue),
		RevenueSpentOnAds:       displayValue(metrics.RevenueSpentOnAds),
		CustomerLifetimeValue:   displayValue(metrics.CustomerLifetimeValue),
		CustomerAcquisitionCost: displayValue(metrics.CustomerAcquisitionCost),
		Tickets:                 tickets,
		Revenue:                 displayValue(metrics.Revenue),
		OperationalExpenses:     displayValue(metrics.OperationalExpenses),
	}
}
