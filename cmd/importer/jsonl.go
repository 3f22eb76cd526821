package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"explorerLedger/internal/model"
)

// appendImportError adds one line to the errors JSONL log at path.
func appendImportError(path string, rec model.ImportError) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open errors file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := json.NewEncoder(file).Encode(rec); err != nil {
		return fmt.Errorf("write import error: %w", err)
	}
	return nil
}
