package rankfit

// BinStat holds the aggregate statistics of a single score bin.
// Bin 0 contains the highest-scored examples.
type BinStat struct {
	Bin       int     `json:"bin"`
	Rate      float64 `json:"actual_mean"`  // empirical positive rate
	Count     int     `json:"actual_count"` // examples in the bin
	MeanScore float64 `json:"score_mean"`   // mean predicted score
}

// Violation records an adjacent bin pair whose event rates are inverted:
// the lower-ranked bin carries a higher observed rate than the bin above it.
type Violation struct {
	HighBin  int     `json:"high_bin"`
	LowBin   int     `json:"low_bin"`
	HighRate float64 `json:"high_rate"`
	LowRate  float64 `json:"low_rate"`
	Severity float64 `json:"severity"` // low_rate - high_rate
}

// Result is the full output of a metrics calculation.
type Result struct {
	RankFitV   float64     `json:"rankfit_v"`
	RankFitT   float64     `json:"rankfit_t"`
	Violations []Violation `json:"violations"`
	Bins       []BinStat   `json:"bin_stats"`
}
