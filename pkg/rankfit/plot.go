package rankfit

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const plotBarWidth = 50

// Figure is a renderable terminal chart of a metrics result. It reuses the
// per-bin statistics already computed by CalculateMetrics and never
// recomputes them. The figure itself does not touch the filesystem; callers
// render it to whatever sink they want.
type Figure struct {
	Title  string
	AUC    float64 // NaN means no comparison metric was supplied
	Result *Result
}

// PlotAnalysis builds a figure for a metrics result. auc is a
// caller-supplied comparison metric shown in the header; pass NaN to omit
// it.
func PlotAnalysis(results *Result, auc float64, title string) *Figure {
	if title == "" {
		title = "Ranking Quality Analysis"
	}
	return &Figure{
		Title:  title,
		AUC:    auc,
		Result: results,
	}
}

// Render returns the figure as printable text: a metrics header followed by
// two bar panels, event rate per bin with violations marked, then mean
// score per bin.
func (f *Figure) Render() string {
	var sb strings.Builder

	r := f.Result
	fmt.Fprintf(&sb, "%s\n%s\n", f.Title, strings.Repeat("=", len(f.Title)))

	headerParts := []string{}
	if !math.IsNaN(f.AUC) {
		headerParts = append(headerParts, fmt.Sprintf("AUC: %.3f", f.AUC))
	}
	headerParts = append(headerParts, fmt.Sprintf("Violations: %d", len(r.Violations)))
	fmt.Fprintf(&sb, "%s\n", strings.Join(headerParts, " | "))
	fmt.Fprintf(&sb, "RankFit-V: %.3f | RankFit-T: %.3f | Trend: %s\n",
		r.RankFitV, r.RankFitT, trendLabel(r.RankFitT, len(r.Violations)))

	violated := make(map[int]bool, len(r.Violations))
	for _, v := range r.Violations {
		violated[v.HighBin] = true
		violated[v.LowBin] = true
	}

	rates := make([]float64, len(r.Bins))
	means := make([]float64, len(r.Bins))
	for i, b := range r.Bins {
		rates[i] = b.Rate
		means[i] = b.MeanScore
	}

	fmt.Fprintf(&sb, "\nEvent Rate by Bin (bin 0 = highest scores):\n")
	fmt.Fprintf(&sb, "Bin | Rate     | %s\n", strings.Repeat("-", plotBarWidth))
	for i, b := range r.Bins {
		marker := ""
		if violated[b.Bin] {
			marker = "  <- violation"
		}
		fmt.Fprintf(&sb, "%3d | %.6f | %s%s\n", b.Bin, b.Rate, bar(rates, i), marker)
	}

	fmt.Fprintf(&sb, "\nMean Score by Bin:\n")
	fmt.Fprintf(&sb, "Bin | Score    | %s\n", strings.Repeat("-", plotBarWidth))
	for i, b := range r.Bins {
		fmt.Fprintf(&sb, "%3d | %.6f | %s\n", b.Bin, b.MeanScore, bar(means, i))
	}

	return sb.String()
}

// WriteTo renders the figure into w, implementing io.WriterTo.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.Render())
	return int64(n), err
}

// bar scales values[i] against the panel's min/max into a horizontal bar.
func bar(values []float64, i int) string {
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}

	width := plotBarWidth / 2
	if maxVal != minVal {
		width = int((values[i] - minVal) / (maxVal - minVal) * float64(plotBarWidth))
	}
	if width == 0 {
		return "▏"
	}
	return strings.Repeat("█", width)
}

func trendLabel(rankfitT float64, violations int) string {
	var desc string
	switch {
	case rankfitT > 0.95:
		desc = "Perfectly Decreasing"
	case rankfitT > 0.7:
		desc = "Strongly Decreasing"
	case rankfitT > 0.5:
		desc = "Weakly Decreasing"
	default:
		desc = "Non-Decreasing"
	}
	if violations > 0 {
		desc += " (non-monotonic)"
	}
	return desc
}
