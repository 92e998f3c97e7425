package jobrunner

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	jobrunnerdomain "github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/jobrunner/domain"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/jobrunner/jobrunnerclient"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultKeyErrorMessage = "Invalid or expired key"

type JobRunnerIntegrator interface {
	// TriggerUpdate pede ao job runner para recalcular e reenviar as métricas
	TriggerUpdate(ctx context.Context) *domain.ProxyResult
	// SubmitCredential envia uma nova chave de sessão para o job runner
	SubmitCredential(ctx context.Context, key string) *domain.ProxyResult
	// Forward encaminha um endpoint já validado
	Forward(ctx context.Context, endpoint string, key string) *domain.ProxyResult
}

type JobRunnerService struct {
	Client jobrunnerclient.Client
}

func New(client jobrunnerclient.Client) JobRunnerIntegrator {
	return &JobRunnerService{
		Client: client,
	}
}

func (s *JobRunnerService) TriggerUpdate(ctx context.Context) *domain.ProxyResult {
	return s.Forward(ctx, domain.EndpointUpdateDashboard, "")
}

func (s *JobRunnerService) SubmitCredential(ctx context.Context, key string) *domain.ProxyResult {
	return s.Forward(ctx, domain.EndpointValidateKey, key)
}

// Forward faz uma única tentativa, sem retry, e classifica a resposta
func (s *JobRunnerService) Forward(ctx context.Context, endpoint string, key string) *domain.ProxyResult {
	logger := log.ForContext(ctx).WithField("upstream_endpoint", endpoint)

	var body any
	if endpoint == domain.EndpointValidateKey && key != "" {
		body = jobrunnerdomain.CredentialRequest{Key: key}
	}

	resp, err := s.Client.Post(ctx, endpoint, body)
	result, classErr := classify(resp, err)

	entry := logger.WithFields(log.Fields{
		"upstream_status": result.StatusCode,
		"upstream_error":  result.Result.Error,
	})
	switch {
	case classErr != nil:
		entry.WithError(classErr).Error("jobrunner: falha ao chamar o job runner")
	case result.Result.Error != "":
		entry.Warn("jobrunner: job runner respondeu com erro")
	default:
		entry.Info("jobrunner: chamada concluída")
	}

	return result
}

// classify devolve o resultado para o navegador e, quando a chamada falhou,
// um UpstreamError para log
func classify(resp *jobrunnerclient.Response, err error) (*domain.ProxyResult, error) {
	if err != nil {
		if errors.Is(err, jobrunnerdomain.ErrUpstreamConnection) {
			return failure(http.StatusServiceUnavailable, apiErrors.ErrConnection, "Failed to connect to the update server"), err
		}
		if errors.Is(err, jobrunnerdomain.ErrResponseTooLarge) {
			return failure(http.StatusBadGateway, apiErrors.ErrResponseTooLarge, "Response from server is too large"), err
		}
		return failure(http.StatusInternalServerError, apiErrors.ErrInternalServer, err.Error()), err
	}

	// Só um objeto JSON é uma resposta válida
	var fields map[string]any
	if err := json.Unmarshal(resp.Body, &fields); err != nil || fields == nil {
		parseErr := &jobrunnerdomain.UpstreamError{Kind: jobrunnerdomain.ErrUpstreamParse, Status: resp.StatusCode, Err: err}
		return failure(resp.StatusCode, apiErrors.ErrParse, "Failed to parse response from server"), parseErr
	}

	var upstream jobrunnerdomain.Response
	if err := json.Unmarshal(resp.Body, &upstream); err != nil {
		parseErr := &jobrunnerdomain.UpstreamError{Kind: jobrunnerdomain.ErrUpstreamParse, Status: resp.StatusCode, Err: err}
		return failure(resp.StatusCode, apiErrors.ErrParse, "Failed to parse response from server"), parseErr
	}

	if upstream.IsKeyError() {
		message := upstream.MessageText()
		if message == "" {
			message = defaultKeyErrorMessage
		}
		keyErr := &jobrunnerdomain.UpstreamError{Kind: jobrunnerdomain.ErrCredential, Status: resp.StatusCode}
		return failure(http.StatusBadRequest, apiErrors.ErrKey, message), keyErr
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	success, present := upstream.SuccessValue()
	if !present {
		success = ok && upstream.ErrorText() == ""
	}

	status := http.StatusOK
	if !ok {
		status = resp.StatusCode
	}

	return &domain.ProxyResult{
		StatusCode: status,
		Result: domain.UpdateResult{
			Success: success,
			Error:   upstream.ErrorText(),
			Message: upstream.MessageText(),
			Details: nonNull(upstream.Details),
			Output:  nonNull(upstream.Output),
		},
	}, nil
}

func failure(status int, code string, message string) *domain.ProxyResult {
	return &domain.ProxyResult{
		StatusCode: status,
		Result: domain.UpdateResult{
			Success: false,
			Error:   code,
			Message: message,
		},
	}
}

func nonNull(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
