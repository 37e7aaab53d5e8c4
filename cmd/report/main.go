// Command report runs the ingestion pipeline once over three raw exports and
// writes the derived tables as CSV files, optionally plus an XLSX workbook.
// Identical inputs and the same -as-of produce byte-identical output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"memberpulse/internal/config"
	"memberpulse/internal/dataset"
	apperrors "memberpulse/internal/errors"
	"memberpulse/internal/exporter"
	"memberpulse/internal/infrastructure"
	"memberpulse/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		if errors.Is(err, apperrors.ErrDataUnavailable) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	var (
		summaryPath   = flag.String("summary", "data/summary.csv", "earnings summary export (file path or URL)")
		billedPath    = flag.String("billed", "data/billed.csv", "billed transactions export (file path or URL)")
		collectedPath = flag.String("collected", "data/collected.csv", "collected transactions export (file path or URL)")
		outDir        = flag.String("out", "reports", "output directory")
		asOfFlag      = flag.String("as-of", "", "reference time, RFC3339 (default: latest billed date in the data)")
		workbook      = flag.Bool("xlsx", false, "also write member_report.xlsx")
		logLevel      = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	logger := infrastructure.MustInitializeLogger(config.LoggingConfig{Level: *logLevel, Format: "text"})

	var asOf time.Time
	if *asOfFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *asOfFlag)
		if err != nil {
			return fmt.Errorf("parse -as-of: %w", err)
		}
		asOf = parsed
	}

	cfg := config.DatasetConfig{
		Summary:      *summaryPath,
		Billed:       *billedPath,
		Collected:    *collectedPath,
		FetchTimeout: 30 * time.Second,
	}

	ctx := context.Background()
	service := services.NewDashboardService(dataset.NewLoader(cfg, logger), logger)

	model, err := service.Refresh(ctx, asOf)
	if err != nil {
		return err
	}

	if err := exporter.NewCSVWriter(*outDir, logger).WriteAll(model); err != nil {
		return fmt.Errorf("write csv reports: %w", err)
	}
	if *workbook {
		if err := exporter.NewWorkbookWriter(*outDir, logger).Write(model); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}

	logger.InfoContext(ctx, "report complete",
		"members", len(model.Members),
		"months", len(model.Months),
		"as_of", model.AsOf,
		"out", *outDir,
	)
	return nil
}
