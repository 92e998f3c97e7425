package refreshing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/jobrunner"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

type Refresher interface {
	// Proxy valida e encaminha um pedido do navegador para o job runner
	Proxy(ctx context.Context, request domain.ProxyRequest) (*domain.ProxyResult, error)
	// Refresh dispara update-dashboard no job runner
	Refresh(ctx context.Context) *domain.ProxyResult
	// LastRun retorna o resultado do último update-dashboard
	LastRun() domain.RefreshStatus
}

type Service struct {
	jobRunner jobrunner.JobRunnerIntegrator
	now       func() time.Time

	mu      sync.RWMutex
	lastRun domain.RefreshStatus
}

func NewService(jobRunner jobrunner.JobRunnerIntegrator) *Service {
	return &Service{
		jobRunner: jobRunner,
		now:       time.Now,
	}
}

func (s *Service) Proxy(ctx context.Context, request domain.ProxyRequest) (*domain.ProxyResult, error) {
	endpoint := strings.TrimSpace(request.Endpoint)

	switch endpoint {
	case "":
		return nil, NewRefreshError(ErrEndpointRequired, apiErrors.ErrInvalidRequest, "")
	case domain.EndpointUpdateDashboard:
		return s.Refresh(ctx), nil
	case domain.EndpointValidateKey:
		key := strings.TrimSpace(request.Key)
		if key == "" {
			return nil, NewRefreshError(ErrKeyRequired, apiErrors.ErrInvalidRequest, "")
		}
		return s.jobRunner.SubmitCredential(ctx, key), nil
	default:
		return nil, NewRefreshError(ErrUnknownEndpoint, apiErrors.ErrInvalidRequest, endpoint)
	}
}

func (s *Service) Refresh(ctx context.Context) *domain.ProxyResult {
	started := s.now()
	s.mu.Lock()
	s.lastRun.LastStartedAt = started
	s.mu.Unlock()

	result := s.jobRunner.TriggerUpdate(ctx)

	outcome := "success"
	if !result.Result.Success {
		outcome = result.Result.Error
		if outcome == "" {
			outcome = "failed"
		}
	}

	s.mu.Lock()
	s.lastRun.LastCompletedAt = s.now()
	s.lastRun.LastResult = outcome
	s.lastRun.LastMessage = result.Result.Message
	s.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"dashboard_refresh_result": outcome,
		"duration_ms":              s.now().Sub(started).Milliseconds(),
	}).Info("refresh: atualização do dashboard finalizada")

	return result
}

func (s *Service) LastRun() domain.RefreshStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}
