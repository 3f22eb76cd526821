package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"explorerLedger/internal/model"
)

// JsonlStorage appends import records to a JSONL file. A batch lands in the
// file whole or not at all, so a retried batch never leaves duplicate lines.
type JsonlStorage struct {
	path string
	mu   sync.Mutex
}

func NewJsonlStorage(path string) *JsonlStorage {
	return &JsonlStorage{path: path}
}

// PutRecordBatch appends a batch of import records as JSON lines.
func (s *JsonlStorage) PutRecordBatch(_ context.Context, records []model.ImportRecord) error {
	if len(records) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return fmt.Errorf("marshal import record line %d: %w", records[i].Line, err)
		}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	end, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seek output file: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		if terr := file.Truncate(end); terr != nil {
			return fmt.Errorf("write import records: %w (truncate: %v)", err, terr)
		}
		return fmt.Errorf("write import records: %w", err)
	}
	return file.Sync()
}
