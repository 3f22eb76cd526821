package schema

import (
	"errors"
	"testing"

	"explorerLedger/internal/model"
)

func testSchema(name string, cols ...Column) ColumnSchema {
	return ColumnSchema{
		Name:    name,
		Chain:   model.Chain{Label: "Test chain", Asset: "TST"},
		Handler: HandlerTransactions,
		Columns: cols,
	}
}

func TestColumnMatches(t *testing.T) {
	cases := []struct {
		name string
		col  Column
		cell string
		want bool
	}{
		{"exact hit", Exact("From"), "From", true},
		{"exact case sensitive", Exact("From"), "from", false},
		{"one of first", OneOf("Txhash", "Transaction Hash"), "Txhash", true},
		{"one of renamed", OneOf("Txhash", "Transaction Hash"), "Transaction Hash", true},
		{"one of miss", OneOf("Txhash", "Transaction Hash"), "Hash", false},
		{"any", Any(), "Value_IN(USD)", true},
		{"func without predicate", Column{Kind: ColumnFunc}, "x", false},
	}
	for _, tc := range cases {
		if got := tc.col.Matches(tc.cell); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestRegistryMatchFirstInOrder(t *testing.T) {
	first := testSchema("first", Exact("A"), Any())
	second := testSchema("second", Exact("A"), Exact("B"))
	reg := MustRegistry(first, second)

	got, err := reg.Match([]string{"A", "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "first" {
		t.Fatalf("expected first registered schema, got %s", got.Name)
	}
}

func TestRegistryMatchRequiresSameLength(t *testing.T) {
	base := testSchema("base", Exact("A"), Exact("B"))
	withNote := testSchema("with note", Exact("A"), Exact("B"), Exact("PrivateNote"))
	reg := MustRegistry(base, withNote)

	got, err := reg.Match([]string{"A", "B", "PrivateNote"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "with note" {
		t.Fatalf("expected trailing-column variant, got %s", got.Name)
	}

	if _, err := reg.Match([]string{"A"}); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}
}

func TestRegistryNoMatch(t *testing.T) {
	reg := MustRegistry(testSchema("only", Exact("A")))
	_, err := reg.Match([]string{"B"})
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}

	var nilReg *Registry
	if _, err := nilReg.Match([]string{"A"}); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("nil registry should not match: %v", err)
	}
}

func TestNewRegistryRejectsInvalidSchemas(t *testing.T) {
	bad := []ColumnSchema{
		{Handler: HandlerTransactions, Columns: []Column{Any()}},
		{Name: "no columns", Handler: HandlerTransactions},
		{Name: "no handler", Columns: []Column{Any()}},
		{Name: "bad position", Handler: HandlerInternal, Columns: []Column{Any()}, TxRaw: model.TxRawPosition{To: 3}},
		{Name: "nil predicate", Handler: HandlerInternal, Columns: []Column{{Kind: ColumnFunc}}},
	}
	for _, s := range bad {
		if _, err := NewRegistry(s); err == nil {
			t.Fatalf("expected error for schema %q", s.Name)
		}
	}
}

func TestRegistrySchemasIsCopy(t *testing.T) {
	reg := MustRegistry(testSchema("one", Exact("A")))
	schemas := reg.Schemas()
	schemas[0].Name = "changed"

	if reg.Schemas()[0].Name != "one" || reg.Len() != 1 {
		t.Fatalf("registry was mutated through Schemas()")
	}
}

func TestRawRowField(t *testing.T) {
	row, err := NewRawRow(2, []string{"Txhash", "Status"}, []string{"0xabc", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Field("Txhash") != "0xabc" || row.Field("Status") != "" {
		t.Fatalf("field mismatch: %+v", row)
	}
	if row.At(5) != "" {
		t.Fatalf("out of range position should be empty")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing column")
		}
	}()
	row.Field("Method")
}

func TestNewRawRowFieldCount(t *testing.T) {
	if _, err := NewRawRow(3, []string{"A", "B"}, []string{"1"}); err == nil {
		t.Fatalf("expected field count error")
	}
}
