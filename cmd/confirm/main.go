package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"trade-confirm-parser/internal/export"
	"trade-confirm-parser/internal/ledger"
	"trade-confirm-parser/internal/logger"
	"trade-confirm-parser/internal/store"
	"trade-confirm-parser/internal/summary"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "path to the run configuration file")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	ctx := context.Background()
	defer logger.Shutdown(ctx)

	cfg, err := loadConfig(ctx, *cfgPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load configuration", err, "path", *cfgPath)
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		logger.ErrorWithErr(ctx, "Run failed", err)
		os.Exit(1)
	}
}

// loadConfig falls back to built-in defaults when no config file
// exists, so a bare `confirm` run over ./mails works out of the box.
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "No config file found, using defaults", "path", path)
		return store.Default(), nil
	}
	return cfg, err
}

func run(ctx context.Context, cfg *store.Config) error {
	records, err := ledger.Collect(ctx, cfg.MailDir)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		logger.Info(ctx, "No transactions extracted, nothing to export")
		return nil
	}

	if err := export.WriteLedger(ctx, cfg, records); err != nil {
		return err
	}

	rows := summary.Aggregate(ctx, records)
	if err := export.WriteSummary(ctx, cfg, rows); err != nil {
		return err
	}

	logger.Info(ctx, "Run complete", "records", len(records), "summary_rows", len(rows))
	return nil
}
