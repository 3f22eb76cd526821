package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "importer",
		Short:        "Blockchain explorer export importer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an explorer CSV export into transaction records",
		RunE:  runClassify,
	}

	classifyCmd.Flags().String("in", "", "input explorer CSV export")
	classifyCmd.Flags().String("out", "./data/transactions.jsonl", "output records JSONL (empty disables)")
	classifyCmd.Flags().String("errors", "./data/import_errors.jsonl", "import errors JSONL (empty disables)")
	classifyCmd.Flags().String("pg-dsn", "", "Postgres DSN for record storage")
	classifyCmd.Flags().String("sqlite", "", "SQLite file for record storage")
	classifyCmd.Flags().String("import-id", "", "import identifier (generated when empty)")
	classifyCmd.Flags().Int("workers", 1, "rows classified in parallel")
	classifyCmd.Flags().Int("batch-size", 500, "records per storage write")
	classifyCmd.Flags().Int("max-retries", 3, "maximum storage write retries")
	classifyCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial storage retry backoff")
	classifyCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(classifyCmd)

	schemasCmd := &cobra.Command{
		Use:   "schemas",
		Short: "List the supported explorer export layouts",
		RunE:  runSchemas,
	}

	schemasCmd.Flags().Bool("columns", false, "print each layout's columns")

	root.AddCommand(schemasCmd)

	return root
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
