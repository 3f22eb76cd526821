package importer

import "fmt"

// RowError ties a classification failure to its source line.
type RowError struct {
	Line   int
	Schema string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
