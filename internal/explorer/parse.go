package explorer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"explorerLedger/internal/schema"
)

var (
	// ErrInvalidNumber is returned for a value or fee field that is not a non-negative decimal.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidTimestamp is returned for a Unix timestamp field that is not an integer.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrUnknownHandler is returned when a schema names no known classifier.
	ErrUnknownHandler = errors.New("unknown handler")
)

// ParseTimestamp converts integer Unix seconds into a UTC time.
func ParseTimestamp(input string) (time.Time, error) {
	secs, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, input)
	}
	return time.Unix(secs, 0).UTC(), nil
}

// parseQuantity reads a column as an exact non-negative decimal.
func parseQuantity(row schema.RawRow, column string) (decimal.Decimal, error) {
	raw := row.Field(column)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, column, raw)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s=%q is negative", ErrInvalidNumber, column, raw)
	}
	return d, nil
}
