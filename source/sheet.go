package source

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"

	"github.com/spektr-org/indikator/engine"
	"github.com/spektr-org/indikator/helpers"
)

// Fetcher loads the Record Set from a published sheet or a local file.
type Fetcher struct {
	config Config
	client *http.Client
	logger logrus.FieldLogger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(cfg Config, logger logrus.FieldLogger) *Fetcher {
	if cfg.URL == "" {
		cfg.URL = DefaultSheetURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Fetcher{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Fetch reads and parses the dataset.
func (f *Fetcher) Fetch(ctx context.Context) (*engine.Table, error) {
	if f.config.Path != "" {
		return f.readFile()
	}
	return f.fetchURL(ctx)
}

func (f *Fetcher) readFile() (*engine.Table, error) {
	file, err := os.Open(f.config.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open dataset")
	}
	defer file.Close()

	table, err := helpers.ParseCSV(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", f.config.Path)
	}
	f.logger.WithFields(logrus.Fields{
		"path":    f.config.Path,
		"rows":    table.Len(),
		"columns": len(table.Columns()),
	}).Info("Loaded dataset")
	return table, nil
}

func (f *Fetcher) fetchURL(ctx context.Context) (*engine.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.config.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "text/csv")
	if f.config.UserAgent != "" {
		req.Header.Set("User-Agent", f.config.UserAgent)
	}

	f.logger.WithField("url", truncate(f.config.URL, 80)).Debug("Fetching dataset")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "HTTP request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Errorf("sheet returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode response charset")
	}

	table, err := helpers.ParseCSV(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse sheet CSV")
	}

	f.logger.WithFields(logrus.Fields{
		"rows":    table.Len(),
		"columns": len(table.Columns()),
	}).Info("Fetched dataset")
	return table, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
