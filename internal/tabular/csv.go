package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVReader parses comma-separated files. The first record is the header.
type CSVReader struct{}

// Format returns the reader name.
func (p *CSVReader) Format() string { return "csv" }

// Read parses a CSV stream into a Table. An empty stream yields an
// empty Table.
func (p *CSVReader) Read(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // user-supplied tables vary in width

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return Table{}, nil
	}

	return Table{Columns: records[0], Rows: records[1:]}, nil
}
