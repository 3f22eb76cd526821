package schema

import "strings"

// ColumnKind is the closed set of column matcher kinds.
type ColumnKind uint8

const (
	// ColumnExact requires the header cell to equal Name.
	ColumnExact ColumnKind = iota
	// ColumnFunc hands the header cell to Accept.
	ColumnFunc
	// ColumnAny accepts any header cell.
	ColumnAny
)

// Column matches one header cell.
type Column struct {
	Kind   ColumnKind
	Name   string
	Accept func(string) bool
}

// Exact matches a literal column name.
func Exact(name string) Column {
	return Column{Kind: ColumnExact, Name: name}
}

// Func matches with a predicate; desc is used only for display.
func Func(desc string, accept func(string) bool) Column {
	return Column{Kind: ColumnFunc, Name: desc, Accept: accept}
}

// OneOf matches any of the given names, e.g. a column that was renamed.
func OneOf(names ...string) Column {
	allowed := append([]string(nil), names...)
	return Func(strings.Join(allowed, "|"), func(c string) bool {
		for _, name := range allowed {
			if c == name {
				return true
			}
		}
		return false
	})
}

// Any matches any single column.
func Any() Column {
	return Column{Kind: ColumnAny}
}

// Matches reports whether the header cell satisfies the column.
func (c Column) Matches(cell string) bool {
	switch c.Kind {
	case ColumnExact:
		return cell == c.Name
	case ColumnFunc:
		return c.Accept != nil && c.Accept(cell)
	case ColumnAny:
		return true
	default:
		return false
	}
}

// String returns a human-readable form of the matcher.
func (c Column) String() string {
	switch c.Kind {
	case ColumnExact:
		return c.Name
	case ColumnFunc:
		return "(" + c.Name + ")"
	default:
		return "*"
	}
}
