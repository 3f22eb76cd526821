package schema

import (
	"fmt"

	"explorerLedger/internal/model"
)

// Handler selects which classifier processes rows of a schema.
type Handler uint8

const (
	HandlerTransactions Handler = iota + 1
	HandlerInternal
)

func (h Handler) String() string {
	switch h {
	case HandlerTransactions:
		return "transactions"
	case HandlerInternal:
		return "internal"
	default:
		return fmt.Sprintf("handler(%d)", uint8(h))
	}
}

// ColumnSchema is one column layout of an explorer export.
type ColumnSchema struct {
	Name    string
	Chain   model.Chain
	Handler Handler
	Columns []Column
	// Positions of the hash and address columns within the layout.
	TxRaw model.TxRawPosition
}

// Matches reports whether header satisfies every column position by position.
func (s ColumnSchema) Matches(header []string) bool {
	if len(header) != len(s.Columns) {
		return false
	}
	for i, col := range s.Columns {
		if !col.Matches(header[i]) {
			return false
		}
	}
	return true
}

func (s ColumnSchema) validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema name is required")
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("schema %s: no columns", s.Name)
	}
	if s.Handler != HandlerTransactions && s.Handler != HandlerInternal {
		return fmt.Errorf("schema %s: unsupported handler %s", s.Name, s.Handler)
	}
	for _, pos := range []int{s.TxRaw.TxHash, s.TxRaw.From, s.TxRaw.To} {
		if pos < 0 || pos >= len(s.Columns) {
			return fmt.Errorf("schema %s: tx raw position %d out of range", s.Name, pos)
		}
	}
	for i, col := range s.Columns {
		if col.Kind == ColumnFunc && col.Accept == nil {
			return fmt.Errorf("schema %s: column %d has no predicate", s.Name, i)
		}
	}
	return nil
}
