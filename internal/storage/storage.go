package storage

import (
	"context"

	"explorerLedger/internal/model"
)

// Storage defines a sink for classified import records.
type Storage interface {
	PutRecordBatch(ctx context.Context, records []model.ImportRecord) error
}
