package jobrunnerclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	jobrunnerdomain "github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/jobrunner/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite padrão quando UPSTREAM_MAX_RESPONSE_BYTES não está definido
const defaultMaxResponseBytes = 64 << 20

type Client interface {
	Post(ctx context.Context, endpoint string, body any) (*Response, error)
}

// Response é a resposta bruta do job runner
type Response struct {
	StatusCode int
	Body       []byte
}

type JobRunnerClient struct {
	httpClient       *http.Client
	config           *config.Upstream
	maxResponseBytes int64
}

// NewClient cria o cliente do job runner. Timeout zero significa sem limite
// além do contexto da requisição.
func NewClient(cfg *config.Config) Client {
	limit := cfg.Upstream.MaxResponseBytes
	if limit <= 0 {
		limit = defaultMaxResponseBytes
	}

	return &JobRunnerClient{
		httpClient: &http.Client{
			Timeout: cfg.Upstream.Timeout,
		},
		config:           &cfg.Upstream,
		maxResponseBytes: limit,
	}
}

// Post envia POST {URL}/api/{endpoint} com a credencial do servidor. Falhas de
// transporte viram ErrUpstreamConnection; qualquer status HTTP é devolvido ao chamador.
func (c *JobRunnerClient) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	target, err := url.Parse(c.config.URL)
	if err != nil || target.Host == "" {
		return nil, &jobrunnerdomain.UpstreamError{
			Kind: jobrunnerdomain.ErrUpstreamConnection,
			Err:  fmt.Errorf("URL do job runner inválida %q", c.config.URL),
		}
	}
	target.Path = path.Join(target.Path, "api", endpoint)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &jobrunnerdomain.UpstreamError{Kind: jobrunnerdomain.ErrUpstreamConnection, Err: err}
	}
	defer resp.Body.Close()

	// Lê um byte além do limite para distinguir corpo cortado de corpo exato
	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes+1))
	if err != nil {
		return nil, &jobrunnerdomain.UpstreamError{
			Kind:   jobrunnerdomain.ErrUpstreamConnection,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("erro ao ler a resposta: %w", err),
		}
	}
	if int64(len(raw)) > c.maxResponseBytes {
		return nil, &jobrunnerdomain.UpstreamError{
			Kind:   jobrunnerdomain.ErrResponseTooLarge,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("resposta maior que %d bytes", c.maxResponseBytes),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       raw,
	}, nil
}
