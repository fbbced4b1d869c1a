package datasource

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

const defaultHTTPTimeout = 30 * time.Second

type HTTPSource struct {
	httpClient *http.Client
	url        string
	token      string
}

func NewHTTPSource(cfg config.Dataset) *HTTPSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &HTTPSource{
		httpClient: &http.Client{Timeout: timeout},
		url:        cfg.URL,
		token:      cfg.Token,
	}
}

func (s *HTTPSource) Name() string {
	return config.SourceHTTP
}

func (s *HTTPSource) Fetch(ctx context.Context) (*domain.MarketingData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating dataset request")
	}

	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting dataset")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição do dataset falhou com status: %s", resp.Status)
	}

	return decodeDataset(resp.Body)
}
