package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"explorerLedger/internal/explorer"
	"explorerLedger/internal/model"
	"explorerLedger/internal/schema"
	"explorerLedger/internal/storage"
)

// RunConfig holds runtime settings for one import.
type RunConfig struct {
	Input        string
	ImportID     string
	Workers      int
	BatchSize    int
	MaxRetries   int
	RetryBackoff time.Duration
}

// Summary reports what an import produced.
type Summary struct {
	ImportID    string
	Schema      string
	Total       int
	Deposits    int
	Withdrawals int
	Spends      int
	Skipped     int
}

// Runner imports one explorer export: it resolves the layout once, classifies
// every row and hands the resulting records to storage.
type Runner struct {
	cfg      RunConfig
	registry *schema.Registry
	sinks    []storage.Storage
	logger   *zap.Logger
}

// NewRunner builds a Runner with its dependencies. Every sink receives
// every batch, in order.
func NewRunner(cfg RunConfig, registry *schema.Registry, sinks []storage.Storage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = explorer.DefaultRegistry()
	}
	if cfg.ImportID == "" {
		cfg.ImportID = uuid.NewString()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	return &Runner{
		cfg:      cfg,
		registry: registry,
		sinks:    sinks,
		logger:   logger,
	}
}

// ImportID returns the identifier stamped on every record of this run.
func (r *Runner) ImportID() string {
	return r.cfg.ImportID
}

// Run executes the import. Nothing is written unless every row classifies.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	summary := Summary{ImportID: r.cfg.ImportID}
	if len(r.sinks) == 0 {
		return summary, fmt.Errorf("at least one storage sink is required")
	}
	if r.cfg.Input == "" {
		return summary, fmt.Errorf("input path is required")
	}

	file, err := os.Open(r.cfg.Input)
	if err != nil {
		return summary, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	data, err := readCSV(file)
	if err != nil {
		return summary, err
	}

	matched, err := r.registry.Match(data.header)
	if err != nil {
		return summary, err
	}
	summary.Schema = matched.Name
	r.logger.Info("schema matched",
		zap.String("schema", matched.Name),
		zap.String("worksheet", matched.Chain.Worksheet),
		zap.String("handler", matched.Handler.String()),
		zap.Int("rows", len(data.rows)),
	)

	records, err := r.classifyAll(ctx, matched, data)
	if err != nil {
		return summary, err
	}

	source := filepath.Base(r.cfg.Input)
	out := make([]model.ImportRecord, 0, len(records))
	for i, rec := range records {
		summary.Total++
		if rec.record == nil {
			summary.Skipped++
			r.logger.Debug("row skipped", zap.Int("line", data.lines[i]))
			continue
		}
		switch rec.record.Type {
		case model.TrDeposit:
			summary.Deposits++
		case model.TrWithdrawal:
			summary.Withdrawals++
		case model.TrSpend:
			summary.Spends++
		}
		out = append(out, model.ImportRecord{
			ImportID:  r.cfg.ImportID,
			File:      source,
			Line:      data.lines[i],
			Schema:    matched.Name,
			Worksheet: matched.Chain.Worksheet,
			TxRaw:     rec.txRaw,
			Record:    rec.record,
		})
	}

	if err := r.write(ctx, out); err != nil {
		return summary, err
	}
	return summary, nil
}

type classified struct {
	record *model.TransactionRecord
	txRaw  model.TxRaw
}

// classifyAll classifies rows with up to cfg.Workers goroutines. Rows are
// independent, so results only need to land in their own slot.
func (r *Runner) classifyAll(ctx context.Context, matched schema.ColumnSchema, data csvFile) ([]classified, error) {
	results := make([]classified, len(data.rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i := range data.rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			line := data.lines[i]
			row, err := schema.NewRawRow(line, data.header, data.rows[i])
			if err != nil {
				return &RowError{Line: line, Schema: matched.Name, Err: err}
			}
			rec, err := explorer.Classify(matched, row)
			if err != nil {
				return &RowError{Line: line, Schema: matched.Name, Err: err}
			}
			if rec != nil {
				if err := rec.Validate(); err != nil {
					return &RowError{Line: line, Schema: matched.Name, Err: err}
				}
			}
			results[i] = classified{record: rec, txRaw: buildTxRaw(matched.TxRaw, row)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) write(ctx context.Context, records []model.ImportRecord) error {
	for start := 0; start < len(records); start += r.cfg.BatchSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := start + r.cfg.BatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		for _, sink := range r.sinks {
			if err := r.putWithRetry(ctx, sink, batch); err != nil {
				return fmt.Errorf("store records: %w", err)
			}
		}
	}
	return nil
}

func (r *Runner) putWithRetry(ctx context.Context, sink storage.Storage, batch []model.ImportRecord) error {
	policy := newRetryPolicy(r.cfg.MaxRetries, r.cfg.RetryBackoff)
	return policy.do(ctx, func(ctx context.Context) error {
		return sink.PutRecordBatch(ctx, batch)
	}, func(attempt int, err error) {
		r.logger.Warn("store records failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int("from_line", batch[0].Line),
			zap.Int("records", len(batch)),
		)
	})
}
