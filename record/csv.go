package record

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ColumnType declares the semantic type of a CSV column.
type ColumnType int

const (
	String ColumnType = iota
	Int
	Float
)

// CSVOptions controls CSV normalization. ColumnTypes maps header names to
// their declared types; columns without an entry pass through as strings.
type CSVOptions struct {
	ColumnTypes map[string]ColumnType
}

// FromCSV reads CSV data whose first row is the header and emits one Record
// per subsequent row in file order, mapping header[i] to cell[i]. Rows with
// fewer cells than headers leave the remaining fields absent. An input with
// only a header row yields an empty Sequence.
func FromCSV(r io.Reader, opts CSVOptions) (Sequence, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &MalformedError{Err: err}
	}
	if len(rows) == 0 {
		return Sequence{}, nil
	}

	header := rows[0]
	out := make(Sequence, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			rec[name] = convertCell(row[i], opts.ColumnTypes[name])
		}
		out = append(out, rec)
	}
	return out, nil
}

// convertCell applies the declared column type. Cells that fail to parse as
// their declared type are kept as the raw string rather than fabricated.
func convertCell(cell string, typ ColumnType) any {
	switch typ {
	case Int:
		if n, err := strconv.Atoi(cell); err == nil {
			return n
		}
	case Float:
		if f, err := strconv.ParseFloat(cell, 64); err == nil {
			return f
		}
	}
	return cell
}
