package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"

	"github.com/rankfit-labs/rankfit/internal/synthetic"
	"github.com/rankfit-labs/rankfit/internal/utils/logger"
	"github.com/rankfit-labs/rankfit/pkg/rankfit"
)

type modelReport struct {
	AUC    float64         `json:"auc"`
	Result *rankfit.Result `json:"result"`
}

// Demonstrates how the two RankFit scores separate a model with a strong
// headline AUC but a hidden ranking inversion from a weak-AUC model whose
// risk ordering is flawless.
func main() {
	samples := flag.Int("samples", 50000, "samples per synthetic model")
	out := flag.String("out", ".", "output directory for rendered analyses")

	logger.Init()

	log.Info().Int("samples", *samples).Msg("creating synthetic models")
	dsA := synthetic.HighAUCPoorRanking(*samples, 42)
	dsB := synthetic.LowAUCPerfectRanking(*samples, 0)

	aucA := synthetic.AUC(dsA.Scores, dsA.Labels)
	aucB := synthetic.AUC(dsB.Scores, dsB.Labels)

	analyzer, err := rankfit.New(rankfit.WithBins(10))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build analyzer")
	}

	resA, err := analyzer.CalculateMetrics(dsA.Scores, dsA.Labels)
	if err != nil {
		log.Fatal().Err(err).Msg("model A analysis failed")
	}
	resB, err := analyzer.CalculateMetrics(dsB.Scores, dsB.Labels)
	if err != nil {
		log.Fatal().Err(err).Msg("model B analysis failed")
	}

	log.Info().
		Float64("auc", aucA).
		Float64("rankfit_v", resA.RankFitV).
		Float64("rankfit_t", resA.RankFitT).
		Int("violations", len(resA.Violations)).
		Msg("Model A: high AUC, poor ranking")
	log.Info().
		Float64("auc", aucB).
		Float64("rankfit_v", resB.RankFitV).
		Float64("rankfit_t", resB.RankFitT).
		Int("violations", len(resB.Violations)).
		Msg("Model B: low AUC, perfect ranking")

	figA := rankfit.PlotAnalysis(resA, aucA, "Model A: High AUC, Poor Ranking")
	figB := rankfit.PlotAnalysis(resB, aucB, "Model B: Low AUC, Perfect Ranking")

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create output directory")
	}
	writeFigure(filepath.Join(*out, "model_a_analysis.txt"), figA)
	writeFigure(filepath.Join(*out, "model_b_analysis.txt"), figB)
	writeReport(filepath.Join(*out, "report.json.gz"), map[string]modelReport{
		"model_a": {AUC: aucA, Result: resA},
		"model_b": {AUC: aucB, Result: resB},
	})

	log.Info().Str("dir", *out).Msg("analysis complete")
}

func writeFigure(path string, fig *rankfit.Figure) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to create figure file")
	}
	defer f.Close()

	if _, err := fig.WriteTo(f); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to write figure")
	}
}

func writeReport(path string, report map[string]modelReport) {
	raw, err := sonic.Marshal(report)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal report")
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to create report file")
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(raw); err != nil {
		log.Fatal().Err(err).Msg("failed to compress report")
	}
	if err := gz.Close(); err != nil {
		log.Fatal().Err(err).Msg("failed to finalize report")
	}
}
