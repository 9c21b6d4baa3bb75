package rankfit

import (
	"math"
	"testing"
)

func binsFromRates(rates []float64) []BinStat {
	bins := make([]BinStat, len(rates))
	for i, r := range rates {
		bins[i] = BinStat{Bin: i, Rate: r, Count: 1}
	}
	return bins
}

func TestFindViolations(t *testing.T) {
	bins := binsFromRates([]float64{0.9, 0.2, 0.5, 0.4, 0.6})

	violations := findViolations(bins)
	if len(violations) != 2 {
		t.Fatalf("got %d violations, want 2: %+v", len(violations), violations)
	}

	first := violations[0]
	if first.HighBin != 1 || first.LowBin != 2 || math.Abs(first.Severity-0.3) > 1e-12 {
		t.Errorf("unexpected first violation: %+v", first)
	}
	second := violations[1]
	if second.HighBin != 3 || second.LowBin != 4 || math.Abs(second.Severity-0.2) > 1e-12 {
		t.Errorf("unexpected second violation: %+v", second)
	}
}

func TestRankFitV(t *testing.T) {
	tests := []struct {
		name  string
		rates []float64
		want  float64
	}{
		{"monotonic decrease", []float64{0.9, 0.7, 0.5, 0.3, 0.1}, 1.0},
		{"single bin", []float64{0.5}, 1.0},
		{"flat rates", []float64{0.4, 0.4, 0.4}, 1.0},
		{"full inversion", []float64{0.1, 0.3, 0.5, 0.7, 0.9}, 0.0},
		{"half inversion", []float64{0.8, 0.4, 0.6, 0.2}, 1.0 - 0.2/0.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bins := binsFromRates(tc.rates)
			got := rankFitV(tc.rates, findViolations(bins))
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("rankFitV(%v) = %v, want %v", tc.rates, got, tc.want)
			}
		})
	}
}

func TestRankFitV_FlooredAtZero(t *testing.T) {
	// Oscillating rates can accumulate more severity than the total range.
	rates := []float64{0.5, 0.1, 0.5, 0.1, 0.5}
	bins := binsFromRates(rates)
	if got := rankFitV(rates, findViolations(bins)); got != 0.0 {
		t.Fatalf("rankFitV(%v) = %v, want floor at 0.0", rates, got)
	}
}

func TestRankFitT(t *testing.T) {
	tests := []struct {
		name  string
		rates []float64
		want  float64
	}{
		{"monotonic decrease", []float64{0.9, 0.7, 0.5, 0.3, 0.1}, 1.0},
		{"monotonic increase", []float64{0.1, 0.3, 0.5, 0.7, 0.9}, 0.0},
		{"single bin", []float64{0.5}, 1.0},
		{"flat rates", []float64{0.4, 0.4, 0.4}, 0.5},
		// Tied pairs count as neither concordant nor discordant: eight
		// concordant pairs of ten here, two ties.
		{"decreasing with ties", []float64{1, 1, 0.5, 0, 0}, 0.9},
		{"increasing with ties", []float64{0, 0, 0.5, 1, 1}, 0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rankFitT(tc.rates)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("rankFitT(%v) = %v, want %v", tc.rates, got, tc.want)
			}
		})
	}
}

func TestBuildBins_RemainderDistribution(t *testing.T) {
	scores := descendingScores(11)
	labels := make([]float64, 11)

	bins := buildBins(scores, labels, 3)
	wantCounts := []int{4, 4, 3}
	for i, b := range bins {
		if b.Count != wantCounts[i] {
			t.Errorf("bin %d count = %d, want %d", i, b.Count, wantCounts[i])
		}
	}

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != 11 {
		t.Errorf("bins cover %d examples, want 11", total)
	}
}

func TestBuildBins_StableTieBreak(t *testing.T) {
	// Tied scores keep their original order, so the first tied example
	// lands in the higher-ranked bin.
	scores := []float64{0.5, 0.5, 0.1, 0.9}
	labels := []float64{1, 0, 0, 1}

	bins := buildBins(scores, labels, 2)
	if bins[0].Rate != 1.0 {
		t.Errorf("bin 0 rate = %v, want 1.0 (0.9 plus first tied 0.5)", bins[0].Rate)
	}
	if bins[1].Rate != 0.0 {
		t.Errorf("bin 1 rate = %v, want 0.0", bins[1].Rate)
	}
}

func TestBuildBins_MeanScore(t *testing.T) {
	scores := []float64{0.2, 0.8, 0.4, 0.6}
	labels := []float64{0, 1, 0, 1}

	bins := buildBins(scores, labels, 2)
	if math.Abs(bins[0].MeanScore-0.7) > 1e-12 {
		t.Errorf("bin 0 mean score = %v, want 0.7", bins[0].MeanScore)
	}
	if math.Abs(bins[1].MeanScore-0.3) > 1e-12 {
		t.Errorf("bin 1 mean score = %v, want 0.3", bins[1].MeanScore)
	}
}
