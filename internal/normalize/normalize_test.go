package normalize

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showinvestor-dev/showinvestor/internal/model"
	"github.com/showinvestor-dev/showinvestor/internal/tabular"
)

func table(cols []string, rows ...[]string) tabular.Table {
	return tabular.Table{Columns: cols, Rows: rows}
}

func emptyTable() tabular.Table {
	return table(RequiredColumns)
}

func TestNormalize_ClassifiesBySign(t *testing.T) {
	sales := table(RequiredColumns,
		[]string{"2024-01-05", "Widget", "100"},
	)
	expenses := table(RequiredColumns,
		[]string{"2024-01-10", "Rent", "-40"},
		[]string{"2024-01-12", "Voided", "0"}, // zero classifies as Expense
	)

	records, err := Normalize(sales, expenses)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, model.TypeSales, records[0].Type)
	assert.Equal(t, model.TypeExpense, records[1].Type)
	assert.Equal(t, model.TypeExpense, records[2].Type, "zero amount classifies as Expense")
}

func TestNormalize_IgnoresAssertedType(t *testing.T) {
	// A source-supplied Type column must not survive: a negative amount
	// in the sales file is still an expense.
	cols := []string{"Date", "Description", "Amount", "Type"}
	sales := table(cols, []string{"2024-02-01", "Refund", "-25.00", "Sales"})

	records, err := Normalize(sales, emptyTable())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.TypeExpense, records[0].Type)
}

func TestNormalize_DropsNonNumericAmounts(t *testing.T) {
	sales := table(RequiredColumns,
		[]string{"2024-01-05", "Widget", "100"},
		[]string{"2024-01-06", "Gadget", "abc"},
		[]string{"2024-01-07", "Gizmo", "250.50"},
	)

	records, err := Normalize(sales, emptyTable())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Widget", records[0].Description)
	assert.Equal(t, "Gizmo", records[1].Description)
}

func TestNormalize_BadDateAborts(t *testing.T) {
	sales := table(RequiredColumns,
		[]string{"2024-01-05", "Widget", "100"},
		[]string{"not-a-date", "Gadget", "50"},
	)

	records, err := Normalize(sales, emptyTable())
	require.Error(t, err)
	assert.Nil(t, records)

	var malformed *MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "sales", malformed.Source)
	assert.Equal(t, 2, malformed.Row)
	assert.Equal(t, "not-a-date", malformed.Value)
}

func TestNormalize_BadDateOnDroppedRowTolerated(t *testing.T) {
	// Amount coercion runs first, so a row dropped for a non-numeric
	// amount never has its date inspected.
	sales := table(RequiredColumns,
		[]string{"not-a-date", "Gadget", "abc"},
		[]string{"2024-01-05", "Widget", "100"},
	)

	records, err := Normalize(sales, emptyTable())
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestNormalize_MissingColumn(t *testing.T) {
	expenses := table([]string{"Date", "Amount"},
		[]string{"2024-01-10", "-40"},
	)

	_, err := Normalize(emptyTable(), expenses)
	require.Error(t, err)

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "expenses", missing.Source)
	assert.Equal(t, "Description", missing.Column)
}

func TestNormalize_ColumnsCheckedBeforeRows(t *testing.T) {
	// Sales carries a bad date, but expenses is missing a column: the
	// precondition violation must surface first.
	sales := table(RequiredColumns, []string{"not-a-date", "Widget", "100"})
	expenses := table([]string{"Date", "Amount"})

	_, err := Normalize(sales, expenses)
	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
}

func TestNormalize_ColumnNamesCaseSensitive(t *testing.T) {
	sales := table([]string{"date", "description", "amount"},
		[]string{"2024-01-05", "Widget", "100"},
	)

	_, err := Normalize(sales, emptyTable())
	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Date", missing.Column)
}

func TestNormalize_CalendarOrder(t *testing.T) {
	sales := table(RequiredColumns,
		[]string{"2024-12-01", "Widget", "10"},
		[]string{"2024-03-15", "Widget", "20"},
		[]string{"2024-01-02", "Widget", "30"},
	)
	expenses := table(RequiredColumns,
		[]string{"2024-08-09", "Rent", "-5"},
	)

	records, err := Normalize(sales, expenses)
	require.NoError(t, err)
	require.Len(t, records, 4)

	months := make([]time.Month, len(records))
	for i, r := range records {
		months[i] = r.Month
	}
	assert.Equal(t, []time.Month{time.January, time.March, time.August, time.December}, months)
}

func TestNormalize_DateLayouts(t *testing.T) {
	sales := table(RequiredColumns,
		[]string{"2024-01-05", "a", "1"},
		[]string{"2024-01-05 13:45:00", "b", "1"},
		[]string{"01/05/2024", "c", "1"},
		[]string{"2024/01/05", "d", "1"},
	)

	records, err := Normalize(sales, emptyTable())
	require.NoError(t, err)
	require.Len(t, records, 4)
	for _, r := range records {
		assert.Equal(t, time.January, r.Month)
		assert.Equal(t, 5, r.Date.Day())
	}
}

func TestNormalize_EmptyInputs(t *testing.T) {
	records, err := Normalize(emptyTable(), emptyTable())
	require.NoError(t, err)
	assert.Empty(t, records)
}
