package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/rankfit-labs/rankfit/internal/config"
	"github.com/rankfit-labs/rankfit/internal/dataset"
	"github.com/rankfit-labs/rankfit/internal/utils/logger"
	"github.com/rankfit-labs/rankfit/pkg/rankfit"
)

func main() {
	input := flag.String("input", "", "dataset path or http(s) URL (.json or .csv, optionally .gz)")
	bins := flag.Int("bins", 0, "number of score bins (0 = RANKFIT_BINS)")
	auc := flag.Float64("auc", math.NaN(), "comparison AUC shown alongside the metrics")
	title := flag.String("title", "Ranking Quality Analysis", "figure title")
	asJSON := flag.Bool("json", false, "emit the metrics result as JSON instead of a figure")

	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if *input == "" {
		flag.Usage()
		log.Fatal().Msg("missing -input")
	}

	var ds *dataset.Dataset
	if strings.HasPrefix(*input, "http://") || strings.HasPrefix(*input, "https://") {
		ds, err = dataset.Fetch(*input, &cfg.DatasetEnvConfig)
	} else {
		ds, err = dataset.Load(*input)
	}
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("failed to load dataset")
	}

	nBins := *bins
	if nBins == 0 {
		nBins = cfg.Bins
	}

	analyzer, err := rankfit.New(rankfit.WithBins(nBins))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid analyzer configuration")
	}

	res, err := analyzer.CalculateMetrics(ds.Scores, ds.Labels)
	if err != nil {
		log.Fatal().Err(err).Msg("metric calculation failed")
	}

	if *asJSON {
		raw, err := sonic.MarshalIndent(res, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to marshal result")
		}
		fmt.Println(string(raw))
		return
	}

	fig := rankfit.PlotAnalysis(res, *auc, *title)
	if _, err := fig.WriteTo(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to render figure")
	}
}
