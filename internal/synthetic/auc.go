package synthetic

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// AUC computes the area under the ROC curve for binary labels. It exists
// for the demo and examples only: the analyzer consumes a comparison
// metric as an opaque float and never computes one itself.
func AUC(scores, labels []float64) float64 {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] < scores[order[j]]
	})

	y := make([]float64, len(scores))
	classes := make([]bool, len(scores))
	for rank, idx := range order {
		y[rank] = scores[idx]
		classes[rank] = labels[idx] == 1
	}

	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)
	return integrate.Trapezoidal(fpr, tpr)
}
