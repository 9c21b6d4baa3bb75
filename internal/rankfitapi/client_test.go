package rankfitapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rankfit-labs/rankfit/internal/api"
	"github.com/rankfit-labs/rankfit/internal/config"
	"github.com/rankfit-labs/rankfit/pkg/rankfit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.ClientEnvConfig{RankFitAPIUrl: ts.URL, ClientTimeout: 5 * time.Second}
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewClient_NilConfig(t *testing.T) {
	_, err := NewClient(nil)
	if err == nil {
		t.Fatal("expected error when cfg is nil")
	}
}

func TestAnalyze_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/analyze" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req api.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(req.Scores) != 4 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp := api.Response[api.AnalyzeData]{
			Success: true,
			Data: api.AnalyzeData{
				Result: rankfit.Result{RankFitV: 1.0, RankFitT: 0.9},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			panic(err)
		}
	})

	out, err := c.Analyze(api.AnalyzeRequest{
		Scores: []float64{0.9, 0.7, 0.5, 0.3},
		Labels: []float64{1, 1, 0, 0},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if out.RankFitV != 1.0 || out.RankFitT != 0.9 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestAnalyze_ErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte(`{"success":false,"error":"rankfit: invalid input shape"}`)); err != nil {
			panic(err)
		}
	})

	_, err := c.Analyze(api.AnalyzeRequest{})
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
}

func TestAnalyze_SuccessFalse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"success":false,"error":"oops"}`)); err != nil {
			panic(err)
		}
	})

	_, err := c.Analyze(api.AnalyzeRequest{Scores: []float64{0.1}, Labels: []float64{0}})
	if err == nil {
		t.Fatal("expected error for success=false envelope")
	}
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			panic(err)
		}
	})

	if err := c.Health(); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
}
