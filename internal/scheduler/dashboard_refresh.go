package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

// DashboardRefreshConfig representa a configuração do agendador de atualização do dashboard
type DashboardRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardRefreshService pede periodicamente ao job runner para recalcular as métricas
type DashboardRefreshService struct {
	scheduler   *gocron.Scheduler
	config      DashboardRefreshConfig
	refresher   refreshing.Refresher
	syncRunning bool
	syncMutex   sync.Mutex
}

func NewDashboardRefreshService(refresher refreshing.Refresher, appConfig *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		Enabled:      appConfig.DashboardRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"dashboard_refresh_cron":    refreshConfig.CronSchedule,
		"dashboard_refresh_enabled": refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador; não faz nada quando desabilitado
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Atualização agendada do dashboard desabilitada por configuração")
		return nil
	}

	log.L.WithField("dashboard_refresh_cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDashboard()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// Stop para o agendador imediatamente
func (s *DashboardRefreshService) Stop() {
	s.scheduler.Stop()
}

// acquire marca a atualização como em andamento; false quando já existe uma
func (s *DashboardRefreshService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *DashboardRefreshService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

func (s *DashboardRefreshService) refreshDashboard() {
	if !s.acquire() {
		log.L.Info("Atualização do dashboard já em andamento, ignorando")
		return
	}
	s.runRefresh()
}

// runRefresh executa a atualização; o chamador já reservou syncRunning
func (s *DashboardRefreshService) runRefresh() {
	defer s.release()

	ctx, _ := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)
	logger.Info("Iniciando atualização agendada do dashboard")

	result := s.refresher.Refresh(ctx)
	if !result.Result.Success {
		logger.WithFields(log.Fields{
			"upstream_status": result.StatusCode,
			"upstream_error":  result.Result.Error,
		}).Warn("Atualização agendada do dashboard falhou")
		return
	}

	logger.Info("Atualização agendada do dashboard concluída")
}

// TriggerManualSync dispara uma atualização fora do horário agendado.
// Retorna false quando já existe uma em andamento.
func (s *DashboardRefreshService) TriggerManualSync() bool {
	if !s.acquire() {
		log.L.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando atualização manual do dashboard")
	go s.runRefresh()
	return true
}

// GetStatus retorna o estado do agendador e o resultado da última atualização
func (s *DashboardRefreshService) GetStatus() domain.RefreshStatus {
	status := s.refresher.LastRun()

	s.syncMutex.Lock()
	status.Running = s.syncRunning
	s.syncMutex.Unlock()

	status.Enabled = s.config.Enabled
	status.CronSchedule = s.config.CronSchedule
	return status
}
