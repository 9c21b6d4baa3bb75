package rankfit

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// findViolations collects the adjacent bin pairs whose risk ordering is
// inverted: the lower-ranked bin shows a higher event rate than the bin
// ranked above it.
func findViolations(bins []BinStat) []Violation {
	var violations []Violation
	for i := 0; i+1 < len(bins); i++ {
		if bins[i+1].Rate > bins[i].Rate {
			violations = append(violations, Violation{
				HighBin:  bins[i].Bin,
				LowBin:   bins[i+1].Bin,
				HighRate: bins[i].Rate,
				LowRate:  bins[i+1].Rate,
				Severity: bins[i+1].Rate - bins[i].Rate,
			})
		}
	}
	return violations
}

// rankFitV scores violation severity: one minus the summed violation
// magnitudes normalized by the total event-rate range, floored at zero.
// A perfectly monotonic-decreasing rate sequence scores 1.0; a fully
// inverted one scores 0.0. With fewer than two bins or a flat rate
// profile there is nothing to violate, so the score is 1.0.
func rankFitV(rates []float64, violations []Violation) float64 {
	if len(rates) < 2 {
		return 1.0
	}

	totalRange := floats.Max(rates) - floats.Min(rates)
	if totalRange == 0 {
		return 1.0
	}

	var totalSeverity float64
	for _, v := range violations {
		totalSeverity += v.Severity
	}

	return math.Max(0, 1-totalSeverity/totalRange)
}

// rankFitT scores overall trend strength: Kendall's tau between the bin
// rank order and the bin rates, rescaled from [-1,1] to [0,1]. 1.0 means
// rates fall perfectly as the bin index rises, 0.5 means no relationship
// (including a completely flat profile), and 0.0 means rates rise
// perfectly.
func rankFitT(rates []float64) float64 {
	if len(rates) < 2 {
		return 1.0
	}

	return (kendallTau(rates) + 1) / 2
}

// kendallTau computes the tau-a rank correlation between descending risk
// rank and the bin rates: concordant minus discordant pairs over
// n(n-1)/2, with tied-rate pairs counted as neither. Bin order is already
// strictly decreasing in predicted risk, so a pair is concordant exactly
// when the later bin's rate is lower.
func kendallTau(rates []float64) float64 {
	n := len(rates)

	var concordant, discordant int
	for i := range n {
		for j := i + 1; j < n; j++ {
			switch {
			case rates[j] < rates[i]:
				concordant++
			case rates[j] > rates[i]:
				discordant++
			}
		}
	}

	return float64(concordant-discordant) / float64(n*(n-1)/2)
}
