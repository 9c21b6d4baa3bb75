// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	AnalyzerEnvConfig
	ServerEnvConfig
	ClientEnvConfig
	DatasetEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AnalyzerEnvConfig holds analyzer defaults.
type AnalyzerEnvConfig struct {
	Bins        int    `env:"RANKFIT_BINS" envDefault:"10"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
}

// ServerEnvConfig configures the analysis HTTP server.
type ServerEnvConfig struct {
	Address       string `env:"SERVER_ADDRESS" envDefault:"127.0.0.1"`
	Port          int    `env:"SERVER_PORT" envDefault:"8080"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT" envDefault:"10485760"`
}

// ClientEnvConfig configures the analysis API client.
type ClientEnvConfig struct {
	RankFitAPIUrl string        `env:"RANKFIT_API_URL" envDefault:"http://127.0.0.1:8080"`
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT" envDefault:"30s"`
}

// DatasetEnvConfig configures remote dataset fetching.
type DatasetEnvConfig struct {
	FetchRetryMax int           `env:"DATASET_FETCH_RETRY_MAX" envDefault:"5"`
	FetchTimeout  time.Duration `env:"DATASET_FETCH_TIMEOUT" envDefault:"30s"`
}
