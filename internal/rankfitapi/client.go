// Package rankfitapi provides a simple client wrapper for a remote rankfit
// analysis service.
package rankfitapi

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/rankfit-labs/rankfit/internal/api"
	"github.com/rankfit-labs/rankfit/internal/config"
)

// ClientInterface is the interface for the analysis client methods.
type ClientInterface interface {
	Analyze(req api.AnalyzeRequest) (api.AnalyzeData, error)
	Health() error
}

// Client is a REST client wrapper for the analysis service.
type Client struct {
	cfg    *config.ClientEnvConfig
	client *resty.Client
}

// NewClient constructs a new analysis service client.
func NewClient(cfg *config.ClientEnvConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client env configuration cannot be nil")
	}

	client := resty.New().
		SetBaseURL(cfg.RankFitAPIUrl).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(cfg.ClientTimeout)

	return &Client{
		cfg:    cfg,
		client: client,
	}, nil
}

// Analyze submits scores and labels for remote metric computation.
func (c *Client) Analyze(req api.AnalyzeRequest) (api.AnalyzeData, error) {
	var out api.Response[api.AnalyzeData]

	resp, err := c.client.R().
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/api/v1/analyze")
	if err != nil {
		log.Error().Err(err).Msg("analyze request failed")
		return api.AnalyzeData{}, fmt.Errorf("analyze: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("error", out.Error).Msg("analyze non-2xx")
		if out.Error != "" {
			return api.AnalyzeData{}, fmt.Errorf("analyze status %d: %s", resp.StatusCode(), out.Error)
		}
		return api.AnalyzeData{}, fmt.Errorf("analyze status %d: %s", resp.StatusCode(), resp.String())
	}
	if !out.Success {
		return api.AnalyzeData{}, fmt.Errorf("analyze api returned success=false: %s", out.Error)
	}

	return out.Data, nil
}

// Health checks service liveness.
func (c *Client) Health() error {
	resp, err := c.client.R().Get("/health")
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("health status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
