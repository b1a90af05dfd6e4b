package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVReader_Read(t *testing.T) {
	csv := "Date,Description,Amount\n2024-01-05,Widget,100\n2024-01-10,Rent,-40\n"

	p := &CSVReader{}
	table, err := p.Read(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2024-01-05", "Widget", "100"}, table.Rows[0])
}

func TestCSVReader_RaggedRows(t *testing.T) {
	csv := "Date,Description,Amount\n2024-01-05,Widget\n"

	p := &CSVReader{}
	table, err := p.Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", Field(table.Rows[0], 2))
}

func TestCSVReader_Empty(t *testing.T) {
	p := &CSVReader{}
	table, err := p.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestCSVReader_Format(t *testing.T) {
	p := &CSVReader{}
	assert.Equal(t, "csv", p.Format())
}

func TestXLSXReader_Read(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Date", "Description", "Amount"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"2024-01-05", "Widget", "100"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	p := &XLSXReader{}
	table, err := p.Read(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Widget", table.Rows[0][1])
}

func TestXLSXReader_BadData(t *testing.T) {
	p := &XLSXReader{}
	_, err := p.Read(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestTable_Column(t *testing.T) {
	table := Table{Columns: []string{"Date", "Description", "Amount"}}

	idx, ok := table.Column("Amount")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	// Case-sensitive by contract.
	_, ok = table.Column("amount")
	assert.False(t, ok)
}

func TestRegistry_ForFile(t *testing.T) {
	r := DefaultRegistry()

	require.NotNil(t, r.ForFile("sales.csv"))
	assert.Equal(t, "csv", r.ForFile("sales.CSV").Format())
	assert.Equal(t, "xlsx", r.ForFile("book.xlsx").Format())
	assert.Nil(t, r.ForFile("notes.txt"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVReader{})
	assert.Panics(t, func() { r.Register(&CSVReader{}) })
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}
