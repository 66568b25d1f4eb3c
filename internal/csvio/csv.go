// Package csvio converts between CSV tables and typed columns.
//
// It backs the command line tool: pack reads a CSV into columns before
// encoding, unpack renders decoded columns back to CSV. Type inference is
// per column over the full value set, narrowest type first.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/colf/format"
)

// Read parses a CSV table with a header row into typed columns.
//
// Each column's type is inferred from its values: Int32 if every value parses
// as a 32-bit integer, else Float64 if every value parses as a float, else
// String. A column with no rows infers Int32, trivially satisfying the
// narrowest rule.
func Read(r io.Reader) ([]format.Column, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("parse csv: missing header row")
	}

	header := records[0]
	rows := records[1:]

	cols := make([]format.Column, 0, len(header))
	for i, name := range header {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			values = append(values, row[i])
		}

		cols = append(cols, inferColumn(name, values))
	}

	return cols, nil
}

// Write renders columns as a CSV table with a header row.
// All columns must share the same row count; the file format guarantees this
// for columns read from the same file.
func Write(w io.Writer, cols []format.Column) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(cols))
	rowCount := 0
	for i, col := range cols {
		header = append(header, col.Name)
		if i == 0 {
			rowCount = col.Len()
		} else if col.Len() != rowCount {
			return fmt.Errorf("column %q has %d rows, expected %d", col.Name, col.Len(), rowCount)
		}
	}

	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for i := 0; i < rowCount; i++ {
		for j, col := range cols {
			row[j] = formatValue(col, i)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func inferColumn(name string, values []string) format.Column {
	ints := make([]int32, 0, len(values))
	intOK := true
	for _, v := range values {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			intOK = false
			break
		}
		ints = append(ints, int32(n))
	}
	if intOK {
		return format.NewInt32Column(name, ints)
	}

	floats := make([]float64, 0, len(values))
	floatOK := true
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			floatOK = false
			break
		}
		floats = append(floats, f)
	}
	if floatOK {
		return format.NewFloat64Column(name, floats)
	}

	return format.NewStringColumn(name, values)
}

func formatValue(col format.Column, row int) string {
	switch col.Type {
	case format.TypeInt32:
		return strconv.FormatInt(int64(col.Ints[row]), 10)
	case format.TypeFloat64:
		return strconv.FormatFloat(col.Floats[row], 'g', -1, 64)
	case format.TypeString:
		return col.Strings[row]
	default:
		return ""
	}
}
