package schema

import "fmt"

// RawRow is one data row of a file whose header matched a schema.
type RawRow struct {
	// Line is the 1-based line number in the source file.
	Line   int
	Header []string
	Fields []string
}

// NewRawRow pairs a data row with its header.
func NewRawRow(line int, header, fields []string) (RawRow, error) {
	if len(fields) != len(header) {
		return RawRow{}, fmt.Errorf("line %d: expected %d fields, got %d", line, len(header), len(fields))
	}
	return RawRow{Line: line, Header: header, Fields: fields}, nil
}

// Lookup returns the value of the named column.
func (r RawRow) Lookup(name string) (string, bool) {
	for i, h := range r.Header {
		if h == name && i < len(r.Fields) {
			return r.Fields[i], true
		}
	}
	return "", false
}

// Field returns the value of a column the schema guarantees.
// A missing column means the classifier and schema disagree, so it panics.
func (r RawRow) Field(name string) string {
	v, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("schema: column %q missing from matched row at line %d", name, r.Line))
	}
	return v
}

// At returns the value at a header position, or "" if out of range.
func (r RawRow) At(pos int) string {
	if pos < 0 || pos >= len(r.Fields) {
		return ""
	}
	return r.Fields[pos]
}
