package rankfit

import "sort"

// buildBins sorts examples by descending score (stable on original index
// for ties) and splits them into nBins contiguous equal-frequency groups.
// Group sizes stay within one of each other: the remainder goes to the
// leading groups, one extra each. Bin 0 holds the highest scores.
func buildBins(scores, labels []float64, nBins int) []BinStat {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	base := len(scores) / nBins
	extra := len(scores) % nBins

	bins := make([]BinStat, 0, nBins)
	start := 0
	for b := range nBins {
		size := base
		if b < extra {
			size++
		}

		var labelSum, scoreSum float64
		for _, idx := range order[start : start+size] {
			labelSum += labels[idx]
			scoreSum += scores[idx]
		}

		bins = append(bins, BinStat{
			Bin:       b,
			Rate:      labelSum / float64(size),
			Count:     size,
			MeanScore: scoreSum / float64(size),
		})
		start += size
	}

	return bins
}
