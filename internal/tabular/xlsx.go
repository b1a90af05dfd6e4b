package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXReader parses Excel workbooks. Only the first sheet is read; its
// first row is the header.
type XLSXReader struct{}

// Format returns the reader name.
func (p *XLSXReader) Format() string { return "xlsx" }

// Read parses an xlsx stream into a Table. A workbook with no data rows
// yields an empty Table.
func (p *XLSXReader) Read(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return Table{}, nil
	}

	return Table{Columns: rows[0], Rows: rows[1:]}, nil
}
