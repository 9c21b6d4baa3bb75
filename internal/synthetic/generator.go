// Package synthetic generates reference scored populations used by the
// demo and benchmarks: models whose headline discrimination and ranking
// quality deliberately disagree.
package synthetic

import (
	"math/rand/v2"

	"github.com/rankfit-labs/rankfit/internal/dataset"
)

// HighAUCPoorRanking builds a model with strong overall discrimination but
// a severe ranking inversion: the second decile of scores carries an event
// rate far below the deciles beneath it.
func HighAUCPoorRanking(nSamples int, seed uint64) *dataset.Dataset {
	rng := rand.New(rand.NewPCG(seed, 0))
	ds := &dataset.Dataset{
		Scores: make([]float64, 0, nSamples),
		Labels: make([]float64, 0, nSamples),
	}

	decile := nSamples / 10

	// Top decile: high scores, very high event rate.
	for range decile {
		ds.Scores = append(ds.Scores, 0.9+0.1*rng.Float64())
		ds.Labels = append(ds.Labels, bernoulli(rng, 0.9))
	}

	// Second decile: the inversion. High scores, very low event rate.
	for range decile {
		ds.Scores = append(ds.Scores, 0.8+0.1*rng.Float64())
		ds.Labels = append(ds.Labels, bernoulli(rng, 0.05))
	}

	// Remaining population: event probability tracks the score.
	for range nSamples - 2*decile {
		score := 0.8 * rng.Float64()
		ds.Scores = append(ds.Scores, score)
		ds.Labels = append(ds.Labels, bernoulli(rng, score*0.4))
	}

	return ds
}

// LowAUCPerfectRanking builds a model with weak overall discrimination but
// a perfectly monotonic score-to-rate relationship.
func LowAUCPerfectRanking(nSamples int, seed uint64) *dataset.Dataset {
	rng := rand.New(rand.NewPCG(seed, 0))
	ds := &dataset.Dataset{
		Scores: make([]float64, nSamples),
		Labels: make([]float64, nSamples),
	}

	for i := range nSamples {
		score := rng.Float64()
		ds.Scores[i] = score
		ds.Labels[i] = bernoulli(rng, 0.1+0.2*score)
	}

	return ds
}

func bernoulli(rng *rand.Rand, p float64) float64 {
	if rng.Float64() < p {
		return 1
	}
	return 0
}
