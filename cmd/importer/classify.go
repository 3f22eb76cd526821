package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"explorerLedger/internal/config"
	"explorerLedger/internal/explorer"
	"explorerLedger/internal/importer"
	"explorerLedger/internal/model"
	"explorerLedger/internal/storage"
	"explorerLedger/internal/storage/postgres"
	"explorerLedger/internal/storage/sqlite"
)

func runClassify(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadClassify(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ImportID == "" {
		cfg.ImportID = uuid.NewString()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sinks []storage.Storage
	if cfg.Out != "" {
		sinks = append(sinks, storage.NewJsonlStorage(cfg.Out))
	}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		sinks = append(sinks, store)
	}
	if cfg.SQLite != "" {
		store, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return err
		}
		defer store.Close()
		sinks = append(sinks, store)
	}

	runner := importer.NewRunner(importer.RunConfig{
		Input:        cfg.In,
		ImportID:     cfg.ImportID,
		Workers:      cfg.Workers,
		BatchSize:    cfg.BatchSize,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	}, explorer.DefaultRegistry(), sinks, logger)

	logger.Info("classify start",
		zap.String("import_id", cfg.ImportID),
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.String("sqlite", cfg.SQLite),
		zap.Int("workers", cfg.Workers),
	)

	summary, err := runner.Run(ctx)
	if err != nil {
		writeImportError(cfg.Errors, importErrorFrom(cfg, summary, err), logger)
		return err
	}

	logger.Info("classify complete",
		zap.String("import_id", summary.ImportID),
		zap.String("schema", summary.Schema),
		zap.Int("total", summary.Total),
		zap.Int("deposits", summary.Deposits),
		zap.Int("withdrawals", summary.Withdrawals),
		zap.Int("spends", summary.Spends),
		zap.Int("skipped", summary.Skipped),
	)

	return nil
}

func importErrorFrom(cfg config.ClassifyConfig, summary importer.Summary, err error) model.ImportError {
	rec := model.ImportError{
		ImportID: cfg.ImportID,
		File:     filepath.Base(cfg.In),
		Schema:   summary.Schema,
		Error:    err.Error(),
	}
	var rowErr *importer.RowError
	if errors.As(err, &rowErr) {
		rec.Line = rowErr.Line
		rec.Schema = rowErr.Schema
	}
	return rec
}

func writeImportError(path string, rec model.ImportError, logger *zap.Logger) {
	if path == "" {
		return
	}
	if err := appendImportError(path, rec); err != nil {
		logger.Warn("record import error", zap.String("path", path), zap.Error(err))
	}
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
