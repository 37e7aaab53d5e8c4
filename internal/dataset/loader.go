// Package dataset retrieves the three raw exports the engine ingests. This
// is the only concurrent part of the system: the three texts are fetched in
// parallel, but the engine itself sees them only as a complete, fully
// materialized batch. Any retrieval failure aborts the whole load with the
// engine's single fatal signal.
package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"memberpulse/internal/config"
	"memberpulse/internal/errors"
)

// Raw is the fully materialized input batch handed to the pipeline.
type Raw struct {
	Summary   string
	Billed    string
	Collected string
}

// Loader fetches the three configured sources. Each source is a local file
// path or an http(s) URL.
type Loader struct {
	cfg    config.DatasetConfig
	client *http.Client
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(cfg config.DatasetConfig, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Load retrieves all three sources concurrently. It either returns the
// complete batch or ErrDataUnavailable — there is no partial result.
func (l *Loader) Load(ctx context.Context) (*Raw, error) {
	start := time.Now()
	raw := &Raw{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.fetch(ctx, "summary", l.cfg.Summary, &raw.Summary) })
	g.Go(func() error { return l.fetch(ctx, "billed", l.cfg.Billed, &raw.Billed) })
	g.Go(func() error { return l.fetch(ctx, "collected", l.cfg.Collected, &raw.Collected) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		"summary_bytes", len(raw.Summary),
		"billed_bytes", len(raw.Billed),
		"collected_bytes", len(raw.Collected),
		"elapsed", time.Since(start),
	)

	return raw, nil
}

func (l *Loader) fetch(ctx context.Context, resource, source string, into *string) error {
	var text string
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		text, err = l.fetchURL(ctx, source)
	} else {
		text, err = readFile(source)
	}
	if err != nil {
		return errors.DataUnavailable(resource, err)
	}

	*into = text
	return nil
}

func (l *Loader) fetchURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	return string(body), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
