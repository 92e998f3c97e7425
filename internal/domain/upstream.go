package domain

import (
	"encoding/json"
	"time"
)

// UpstreamSnapshot é o formato do job runner (dataset marketing_metrics).
// Valores monetários em centavos, exceto OperationalExpenses que já vem em dólares.
type UpstreamSnapshot struct {
	Timestamp               string   `json:"timestamp,omitempty"`
	CustomerAcquisitionCost *float64 `json:"customer_acquisition_cost"`
	CustomerLifetimeValue   *float64 `json:"customer_lifetime_value"`
	RevenueSpentOnAds       *float64 `json:"revenue_spent_on_ads"` // fração 0-1
	RevenueAfterStripe      *float64 `json:"revenue_after_stripe"`
	AccumulatedTickets      *int64   `json:"accumulated_tickets"`
	TotalMarketingSpend     *float64 `json:"total_marketing_spend"`
	InfluencerSpend         *float64 `json:"influencer_spend"`
	PaidAdsSpend            *float64 `json:"paid_ads_spend"`
	NetRevenue              *float64 `json:"net_revenue"`
	OperationalExpenses     *float64 `json:"operational_expenses"`
}

// UpstreamDailyRevenue é o formato do job runner para o dataset diário (centavos)
type UpstreamDailyRevenue struct {
	Date              Date     `json:"date"`
	GrossRevenue      *float64 `json:"gross_revenue"`
	NetRevenue        *float64 `json:"net_revenue"`
	DailyGuests       *int64   `json:"daily_guests"`
	AccumulatedGuests *int64   `json:"accumulated_guests"`
	AccumulatedNet    *float64 `json:"accumulated_net"`
}

// Endpoints aceitos pelo proxy
const (
	EndpointUpdateDashboard = "update-dashboard"
	EndpointValidateKey     = "validate-key"
)

// ProxyRequest é o corpo de POST /proxy
type ProxyRequest struct {
	Endpoint string `json:"endpoint"`
	Key      string `json:"key,omitempty"`
}

// UpdateResult é a resposta classificada do job runner
type UpdateResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
	Output  json.RawMessage `json:"output,omitempty"`
}

// ProxyResult carrega o resultado e o status HTTP que deve ser devolvido ao navegador
type ProxyResult struct {
	StatusCode int
	Result     UpdateResult
}

// RefreshStatus descreve a última atualização disparada pelo servidor
type RefreshStatus struct {
	Running         bool      `json:"running"`
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron_schedule"`
	LastStartedAt   time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt time.Time `json:"last_completed_at,omitempty"`
	LastResult      string    `json:"last_result,omitempty"`
	LastMessage     string    `json:"last_message,omitempty"`
}
