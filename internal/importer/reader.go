package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// csvFile is a fully read explorer export.
type csvFile struct {
	header []string
	rows   [][]string
	lines  []int
}

func readCSV(r io.Reader) (csvFile, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return csvFile{}, fmt.Errorf("empty file")
		}
		return csvFile{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	out := csvFile{header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return csvFile{}, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		out.rows = append(out.rows, record)
		out.lines = append(out.lines, line)
	}
	return out, nil
}
