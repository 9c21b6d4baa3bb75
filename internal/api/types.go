package api

import "github.com/rankfit-labs/rankfit/pkg/rankfit"

// AnalyzeRequest is the payload for an analysis call. Bins falls back to
// the server default when zero; AUC is an optional caller-supplied
// comparison metric echoed into the rendered figure.
type AnalyzeRequest struct {
	Scores        []float64 `json:"scores"`
	Labels        []float64 `json:"labels"`
	Bins          int       `json:"n_bins,omitempty"`
	AUC           *float64  `json:"auc,omitempty"`
	Title         string    `json:"title,omitempty"`
	IncludeFigure bool      `json:"include_figure,omitempty"`
}

// AnalyzeData carries the computed metrics, plus the rendered figure when
// requested.
type AnalyzeData struct {
	rankfit.Result
	Figure string `json:"figure,omitempty"`
}

// Response represents a generic API response structure.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status string `json:"status"`
}
