// Package api exposes the rankfit analyzer over HTTP for callers without
// a Go toolchain.
package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/rankfit-labs/rankfit/internal/config"
	"github.com/rankfit-labs/rankfit/pkg/rankfit"
)

type Server struct {
	app         *fiber.App
	cfg         *config.ServerEnvConfig
	defaultBins int
}

// NewServer builds the analysis server. defaultBins is applied when a
// request does not carry its own bin count.
func NewServer(cfg *config.ServerEnvConfig, defaultBins int) *Server {
	if defaultBins == 0 {
		defaultBins = rankfit.DefaultBins
	}

	app := fiber.New(fiber.Config{
		Prefork:     false,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   cfg.BodySizeLimit,
	})

	app.Use(recover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestCompression}))
	app.Use(ZstdRequestMiddleware(nil))

	s := &Server{app: app, cfg: cfg, defaultBins: defaultBins}
	app.Get("/health", s.handleHealth)
	app.Post("/api/v1/analyze", s.handleAnalyze)
	return s
}

// App returns the underlying fiber app, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(HealthResponse{Status: "ok"})
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := sonic.Unmarshal(c.Body(), &req); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal analyze request")
		return c.Status(fiber.StatusBadRequest).JSON(
			Response[struct{}]{Success: false, Error: "invalid payload"})
	}

	bins := req.Bins
	if bins == 0 {
		bins = s.defaultBins
	}

	analyzer, err := rankfit.New(rankfit.WithBins(bins))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			Response[struct{}]{Success: false, Error: err.Error()})
	}

	result, err := analyzer.CalculateMetrics(req.Scores, req.Labels)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, rankfit.ErrConfiguration) ||
			errors.Is(err, rankfit.ErrInputShape) ||
			errors.Is(err, rankfit.ErrInputValue) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(
			Response[struct{}]{Success: false, Error: err.Error()})
	}

	data := AnalyzeData{Result: *result}
	if req.IncludeFigure {
		auc := math.NaN()
		if req.AUC != nil {
			auc = *req.AUC
		}
		data.Figure = rankfit.PlotAnalysis(result, auc, req.Title).Render()
	}

	log.Info().
		Int("n_samples", len(req.Scores)).
		Int("n_bins", bins).
		Float64("rankfit_v", result.RankFitV).
		Float64("rankfit_t", result.RankFitT).
		Msg("served analysis")

	return c.Status(fiber.StatusOK).JSON(Response[AnalyzeData]{Success: true, Data: data})
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	go func() {
		if err := s.app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server listen failed")
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
