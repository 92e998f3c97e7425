package dashboarding

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

type Dashboarder interface {
	// GetDashboard devolve os cards e gráficos prontos para exibição
	GetDashboard(ctx context.Context) (*domain.DashboardData, error)
	// ApplyUpdate grava o que o job runner enviou; corpo vazio não faz nada
	ApplyUpdate(ctx context.Context, update *domain.MetricsUpdate) error
	// Authorize valida o header Authorization contra a chave compartilhada
	Authorize(authorization string) error
}

type Service struct {
	snapshotRepository repository.MetricsSnapshotRepository
	dailyRepository    repository.DailyMetricRepository
	apiKey             string
	series             RevenueSeries
}

func NewService(
	snapshotRepository repository.MetricsSnapshotRepository,
	dailyRepository repository.DailyMetricRepository,
	cfg *config.Config,
) *Service {
	series, err := ParseRevenueSeries(cfg.Dashboard.RevenueSeries)
	if err != nil {
		log.L.WithError(err).Warn("dashboard: série de receita inválida, usando gross")
		series = RevenueSeriesGross
	}

	return &Service{
		snapshotRepository: snapshotRepository,
		dailyRepository:    dailyRepository,
		apiKey:             cfg.Auth.APIKey,
		series:             series,
	}
}

func (s *Service) GetDashboard(ctx context.Context) (*domain.DashboardData, error) {
	logger := log.ForContext(ctx)

	snapshot, err := s.snapshotRepository.GetLatest(ctx)
	if err != nil {
		logger.WithError(err).Error("dashboard: falha ao buscar último snapshot")
		return nil, NewDashboardError(ErrFetchDashboard, apiErrors.ErrStore, "latest snapshot", err)
	}

	daily, err := s.dailyRepository.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("dashboard: falha ao listar métricas diárias")
		return nil, NewDashboardError(ErrFetchDashboard, apiErrors.ErrStore, "daily metrics", err)
	}

	payload := BuildDashboardPayload(snapshot, daily, s.series)

	logger.WithFields(log.Fields{
		"dashboard_daily_rows": len(daily),
		"dashboard_series":     string(s.series),
	}).Debug("dashboard: payload montado")

	return &payload, nil
}

// ApplyUpdate grava um snapshot novo (metrics tem precedência sobre upstreamMetrics)
// e faz upsert de todas as linhas diárias num único lote.
func (s *Service) ApplyUpdate(ctx context.Context, update *domain.MetricsUpdate) error {
	logger := log.ForContext(ctx)

	if update.IsEmpty() {
		logger.Info("dashboard: atualização sem conteúdo, nada a gravar")
		return nil
	}

	var snapshot *domain.MetricsSnapshot
	switch {
	case update.Metrics != nil:
		snapshot = SnapshotFromDisplay(update.Metrics)
		if update.UpstreamMetrics != nil {
			logger.Warn("dashboard: metrics e upstreamMetrics enviados juntos, ignorando upstreamMetrics")
		}
	case update.UpstreamMetrics != nil:
		converted, err := SnapshotFromUpstream(update.UpstreamMetrics)
		if err != nil {
			return NewDashboardError(err, apiErrors.ErrInvalidRequest, "upstreamMetrics.timestamp", nil)
		}
		snapshot = converted
	}

	// Linha sem "date" não passa pelo UnmarshalJSON e chegaria aqui como 0001-01-01
	for i := range update.DailyMetrics {
		if update.DailyMetrics[i].Date.IsZero() {
			return NewDashboardError(ErrMissingDailyDate, apiErrors.ErrInvalidRequest, fmt.Sprintf("dailyMetrics[%d]", i), nil)
		}
	}
	for i := range update.UpstreamDailyMetrics {
		if update.UpstreamDailyMetrics[i].Date.IsZero() {
			return NewDashboardError(ErrMissingDailyDate, apiErrors.ErrInvalidRequest, fmt.Sprintf("upstreamDailyMetrics[%d]", i), nil)
		}
	}

	daily := make([]*domain.DailyMetric, 0, len(update.DailyMetrics)+len(update.UpstreamDailyMetrics))
	for i := range update.DailyMetrics {
		row := update.DailyMetrics[i]
		daily = append(daily, &row)
	}
	daily = append(daily, TransformUpstreamDaily(update.UpstreamDailyMetrics)...)

	if snapshot != nil {
		if err := s.snapshotRepository.Insert(ctx, snapshot); err != nil {
			logger.WithError(err).Error("dashboard: falha ao gravar snapshot")
			return NewDashboardError(ErrPersistSnapshot, apiErrors.ErrStore, "", err)
		}
	}

	if len(daily) > 0 {
		if err := s.dailyRepository.UpsertMany(ctx, daily); err != nil {
			logger.WithError(err).Error("dashboard: falha ao gravar métricas diárias")
			return NewDashboardError(ErrPersistDailyRows, apiErrors.ErrStore, "", err)
		}
	}

	logger.WithFields(log.Fields{
		"dashboard_snapshot":   snapshot != nil,
		"dashboard_daily_rows": len(daily),
	}).Info("dashboard: métricas atualizadas")

	return nil
}

func (s *Service) Authorize(authorization string) error {
	if s.apiKey == "" {
		return &AuthError{Err: ErrUnauthorized, Details: ErrAPIKeyNotSet.Error()}
	}

	token, found := strings.CutPrefix(strings.TrimSpace(authorization), "Bearer ")
	if !found || token == "" {
		return &AuthError{Err: ErrUnauthorized, Details: "missing bearer token"}
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(s.apiKey)) != 1 {
		return &AuthError{Err: ErrUnauthorized, Details: "invalid token"}
	}

	return nil
}
