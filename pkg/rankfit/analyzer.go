// Package rankfit computes segment-level ranking-quality metrics for binary
// classification scores. Scores are partitioned into bins ordered from
// highest to lowest predicted score, and the monotonicity of the observed
// event rate across bins is summarised by two scores: RankFit-V (violation
// severity) and RankFit-T (trend strength).
package rankfit

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// DefaultBins is the number of score bins used when none is configured.
// Ten bins (deciles) is the recommended default; five suits small datasets,
// twenty or more suits detailed analysis of large ones.
const DefaultBins = 10

// Analyzer partitions scored populations into bins and evaluates the
// monotonicity of event rates across them. It carries no mutable state;
// a single Analyzer is safe for concurrent use.
type Analyzer struct {
	nBins int
}

type AnalyzerOption func(*Analyzer)

// WithBins sets the number of equal-frequency score bins.
func WithBins(n int) AnalyzerOption {
	return func(a *Analyzer) {
		a.nBins = n
	}
}

// New constructs an Analyzer. It fails when the configured bin count is
// below two, since a single bin admits no adjacent pairs to compare.
func New(opts ...AnalyzerOption) (*Analyzer, error) {
	a := &Analyzer{
		nBins: DefaultBins,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.nBins < 2 {
		return nil, fmt.Errorf("%w: n_bins must be at least 2, got %d", ErrConfiguration, a.nBins)
	}

	return a, nil
}

// Bins returns the configured bin count.
func (a *Analyzer) Bins() int {
	return a.nBins
}

// CalculateMetrics computes the RankFit metrics for the given scores and
// binary labels. The two slices must be index-aligned and equal length.
// It is a pure function of its inputs and the configured bin count: no
// partial results, no silent shrinking of the bin count to fit the data.
func (a *Analyzer) CalculateMetrics(scores, labels []float64) (*Result, error) {
	if err := a.validateInputs(scores, labels); err != nil {
		return nil, err
	}

	bins := buildBins(scores, labels, a.nBins)
	rates := make([]float64, len(bins))
	for i, b := range bins {
		rates[i] = b.Rate
	}

	violations := findViolations(bins)

	result := &Result{
		RankFitV:   rankFitV(rates, violations),
		RankFitT:   rankFitT(rates),
		Violations: violations,
		Bins:       bins,
	}

	log.Debug().
		Int("n_bins", a.nBins).
		Int("n_samples", len(scores)).
		Int("violations", len(violations)).
		Float64("rankfit_v", result.RankFitV).
		Float64("rankfit_t", result.RankFitT).
		Msg("calculated rankfit metrics")

	return result, nil
}

func (a *Analyzer) validateInputs(scores, labels []float64) error {
	if len(scores) == 0 || len(labels) == 0 {
		return fmt.Errorf("%w: scores and labels must be non-empty", ErrInputShape)
	}
	if len(scores) != len(labels) {
		return fmt.Errorf("%w: got %d scores and %d labels", ErrInputShape, len(scores), len(labels))
	}
	if len(scores) < a.nBins {
		return fmt.Errorf("%w: %d samples cannot fill %d bins", ErrConfiguration, len(scores), a.nBins)
	}

	distinct := make(map[float64]struct{}, len(scores))
	for i, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: score at index %d is not finite", ErrInputValue, i)
		}
		distinct[s] = struct{}{}
	}
	if len(distinct) < a.nBins {
		return fmt.Errorf("%w: only %d distinct scores for %d bins", ErrInputValue, len(distinct), a.nBins)
	}

	for i, l := range labels {
		if l != 0 && l != 1 {
			return fmt.Errorf("%w: label at index %d is %v, want 0 or 1", ErrInputValue, i, l)
		}
	}

	return nil
}
