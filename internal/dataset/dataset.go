// Package dataset loads scored populations from local files or over HTTP.
// Supported formats are JSON ({"scores": [...], "labels": [...]}) and
// two-column CSV (score,label), optionally gzip-compressed.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"

	"github.com/rankfit-labs/rankfit/internal/config"
)

// Dataset is an index-aligned pair of model scores and binary labels.
type Dataset struct {
	Scores []float64 `json:"scores"`
	Labels []float64 `json:"labels"`
}

// Load reads a dataset from a local file. Format is chosen by extension;
// a trailing .gz is decompressed transparently.
func Load(filePath string) (*Dataset, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := decodeNamed(f, filePath)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", filePath).Int("samples", len(ds.Scores)).Msg("loaded dataset")
	return ds, nil
}

// Fetch retrieves a dataset over HTTP with retries. The URL path extension
// picks the format, as with Load.
func Fetch(url string, cfg *config.DatasetEnvConfig) (*Dataset, error) {
	if cfg == nil {
		cfg = &config.DatasetEnvConfig{FetchRetryMax: 5, FetchTimeout: 30 * time.Second}
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.FetchRetryMax
	client.HTTPClient.Timeout = cfg.FetchTimeout
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 20 * time.Second
	client.Logger = nil

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch dataset: status %d from %s", resp.StatusCode, url)
	}

	ds, err := decodeNamed(resp.Body, resp.Request.URL.Path)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("url", url).Int("samples", len(ds.Scores)).Msg("fetched dataset")
	return ds, nil
}

// decodeNamed decompresses and decodes r according to name's extension.
func decodeNamed(r io.Reader, name string) (*Dataset, error) {
	trimmed := name
	if strings.HasSuffix(trimmed, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gunzip dataset: %w", err)
		}
		defer gz.Close()
		r = gz
		trimmed = strings.TrimSuffix(trimmed, ".gz")
	}

	switch ext := strings.ToLower(path.Ext(trimmed)); ext {
	case ".json":
		return DecodeJSON(r)
	case ".csv":
		return DecodeCSV(r)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", ext)
	}
}

// DecodeJSON decodes a {"scores": [...], "labels": [...]} document.
func DecodeJSON(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	ds := &Dataset{}
	if err := sonic.Unmarshal(raw, ds); err != nil {
		return nil, fmt.Errorf("decode json dataset: %w", err)
	}
	return ds, nil
}

// DecodeCSV decodes score,label rows. A leading header row is skipped.
func DecodeCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	ds := &Dataset{}
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv dataset: %w", err)
		}

		score, errScore := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		label, errLabel := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if errScore != nil || errLabel != nil {
			if row == 0 {
				continue // header
			}
			return nil, fmt.Errorf("csv dataset row %d: non-numeric values %q,%q", row, record[0], record[1])
		}

		ds.Scores = append(ds.Scores, score)
		ds.Labels = append(ds.Labels, label)
	}

	return ds, nil
}

// EncodeJSON serializes the dataset, gzip-compressing when compress is set.
func (d *Dataset) EncodeJSON(w io.Writer, compress bool) error {
	raw, err := sonic.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	if compress {
		gz := gzip.NewWriter(w)
		if _, err := gz.Write(raw); err != nil {
			return fmt.Errorf("gzip dataset: %w", err)
		}
		return gz.Close()
	}

	_, err = w.Write(raw)
	return err
}
