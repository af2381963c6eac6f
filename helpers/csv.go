package helpers

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/spektr-org/indikator/engine"
)

// ============================================================================
// CSV HELPER: Parses CSV data into an engine.Table, writes it back out
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, published sheet).
// This helper converts the raw bytes into the Record Set.
// ============================================================================

// ParseCSV parses CSV data into a Table.
// The first record is the header. Short rows are padded with empty cells and
// long rows truncated, so every row has one cell per column.
func ParseCSV(r io.Reader) (*engine.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("CSV has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV headers")
	}
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CSV row %d", len(rows)+1)
		}
		rows = append(rows, fitRow(row, len(headers)))
	}

	table, err := engine.NewTable(headers, rows)
	if err != nil {
		return nil, errors.Wrap(err, "invalid CSV table")
	}
	return table, nil
}

// ParseCSVBytes is ParseCSV over an in-memory buffer.
func ParseCSVBytes(data []byte) (*engine.Table, error) {
	return ParseCSV(strings.NewReader(string(data)))
}

// WriteCSV writes view as delimited text: header first, then every row.
func WriteCSV(w io.Writer, view engine.RecordView) error {
	cw := csv.NewWriter(w)

	columns := view.Columns()
	if err := cw.Write(columns); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	row := make([]string, len(columns))
	for i := 0; i < view.Len(); i++ {
		for c := range columns {
			row[c] = view.Value(i, c)
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write CSV row %d", i+1)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush CSV")
}

func fitRow(row []string, width int) []string {
	switch {
	case len(row) == width:
		return row
	case len(row) > width:
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
