package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"explorerLedger/internal/model"
	"explorerLedger/internal/storage"
)

const createTransactionsSQL = `
CREATE TABLE IF NOT EXISTS explorer_transactions (
	import_id     TEXT        NOT NULL,
	source_file   TEXT        NOT NULL,
	line          INTEGER     NOT NULL,
	schema_name   TEXT        NOT NULL,
	worksheet     TEXT        NOT NULL,
	tx_hash       TEXT        NOT NULL,
	from_address  TEXT        NOT NULL,
	to_address    TEXT        NOT NULL,
	tr_type       TEXT        NOT NULL,
	ts            TIMESTAMPTZ NOT NULL,
	buy_quantity  NUMERIC,
	buy_asset     TEXT,
	sell_quantity NUMERIC,
	sell_asset    TEXT,
	fee_quantity  NUMERIC,
	fee_asset     TEXT,
	wallet        TEXT        NOT NULL,
	note          TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (import_id, line)
)`

// Store provides Postgres persistence for classified transactions.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the transactions table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createTransactionsSQL); err != nil {
		return fmt.Errorf("create explorer_transactions: %w", err)
	}
	return nil
}

// PutRecordBatch inserts import records; re-sending a row of the same import is a no-op.
func (s *Store) PutRecordBatch(ctx context.Context, records []model.ImportRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, rec := range records {
		row := storage.FlattenRecord(rec)
		batch.Queue(`
			INSERT INTO explorer_transactions (
				import_id, source_file, line, schema_name, worksheet, tx_hash, from_address, to_address,
				tr_type, ts, buy_quantity, buy_asset, sell_quantity, sell_asset, fee_quantity, fee_asset,
				wallet, note
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11::text::numeric,$12,$13::text::numeric,$14,$15::text::numeric,$16,$17,$18)
			ON CONFLICT (import_id, line) DO NOTHING
		`,
			row.ImportID,
			row.File,
			row.Line,
			row.Schema,
			row.Worksheet,
			row.TxHash,
			row.FromAddress,
			row.ToAddress,
			row.Type,
			row.Timestamp,
			row.BuyQuantity,
			row.BuyAsset,
			row.SellQuantity,
			row.SellAsset,
			row.FeeQuantity,
			row.FeeAsset,
			row.Wallet,
			row.Note,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// CountImport returns the number of stored rows for an import.
func (s *Store) CountImport(ctx context.Context, importID string) (int64, error) {
	if importID == "" {
		return 0, fmt.Errorf("import id required")
	}
	var n int64
	row := s.pool.QueryRow(ctx, `SELECT count(*) FROM explorer_transactions WHERE import_id=$1`, importID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
