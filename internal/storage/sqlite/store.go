package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"explorerLedger/internal/model"
	"explorerLedger/internal/storage"
)

const createTransactionsSQL = `
CREATE TABLE IF NOT EXISTS explorer_transactions (
	import_id     TEXT    NOT NULL,
	source_file   TEXT    NOT NULL,
	line          INTEGER NOT NULL,
	schema_name   TEXT    NOT NULL,
	worksheet     TEXT    NOT NULL,
	tx_hash       TEXT    NOT NULL,
	from_address  TEXT    NOT NULL,
	to_address    TEXT    NOT NULL,
	tr_type       TEXT    NOT NULL,
	ts            TEXT    NOT NULL,
	buy_quantity  TEXT,
	buy_asset     TEXT,
	sell_quantity TEXT,
	sell_asset    TEXT,
	fee_quantity  TEXT,
	fee_asset     TEXT,
	wallet        TEXT    NOT NULL,
	note          TEXT,
	PRIMARY KEY (import_id, line)
)`

const insertTransactionSQL = `
INSERT OR IGNORE INTO explorer_transactions (
	import_id, source_file, line, schema_name, worksheet, tx_hash, from_address, to_address,
	tr_type, ts, buy_quantity, buy_asset, sell_quantity, sell_asset, fee_quantity, fee_asset,
	wallet, note
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`

// Store keeps classified transactions in a local SQLite file.
// Quantities are stored as decimal text; SQLite has no exact numeric type.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file and its table.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTransactionsSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create explorer_transactions: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutRecordBatch inserts import records in one transaction.
func (s *Store) PutRecordBatch(ctx context.Context, records []model.ImportRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertTransactionSQL)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		row := storage.FlattenRecord(rec)
		if _, err := stmt.ExecContext(ctx,
			row.ImportID,
			row.File,
			row.Line,
			row.Schema,
			row.Worksheet,
			row.TxHash,
			row.FromAddress,
			row.ToAddress,
			row.Type,
			row.Timestamp.UTC().Format(time.RFC3339),
			row.BuyQuantity,
			row.BuyAsset,
			row.SellQuantity,
			row.SellAsset,
			row.FeeQuantity,
			row.FeeAsset,
			row.Wallet,
			row.Note,
		); err != nil {
			return fmt.Errorf("insert line %d: %w", row.Line, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CountImport returns the number of stored rows for an import.
func (s *Store) CountImport(ctx context.Context, importID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM explorer_transactions WHERE import_id = ?`, importID).Scan(&n)
	return n, err
}
