package normalize

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/showinvestor-dev/showinvestor/internal/model"
	"github.com/showinvestor-dev/showinvestor/internal/tabular"
)

// RequiredColumns must be present, with these exact names, in both the
// sales and the expenses input.
var RequiredColumns = []string{"Date", "Description", "Amount"}

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// MissingColumnError reports a required column absent from an input table.
type MissingColumnError struct {
	Source string // "sales" or "expenses"
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s input is missing required column %q", e.Source, e.Column)
}

// MalformedInputError reports a date value that could not be parsed.
// Unlike amount coercion, a bad date aborts the whole batch: month
// bucketing depends on every retained row having a valid date.
type MalformedInputError struct {
	Source string
	Row    int // 1-based data row number, header excluded
	Value  string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s input row %d: cannot parse date %q", e.Source, e.Row, e.Value)
}

// Normalize validates, coerces, and classifies the two raw input tables
// into a combined record set sorted by calendar month. Any type column
// asserted by the source is ignored; Type is recomputed from the amount
// sign. Rows whose amount is not numeric are dropped.
func Normalize(sales, expenses tabular.Table) ([]model.TransactionRecord, error) {
	inputs := []struct {
		name string
		t    tabular.Table
	}{
		{"sales", sales},
		{"expenses", expenses},
	}

	// Validate both inputs before touching any row.
	for _, in := range inputs {
		if err := checkColumns(in.name, in.t); err != nil {
			return nil, err
		}
	}

	var records []model.TransactionRecord
	for _, in := range inputs {
		recs, err := normalizeTable(in.name, in.t)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	// Calendar order, never lexical. Stable so same-month rows keep
	// their input order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Month < records[j].Month
	})

	return records, nil
}

func checkColumns(name string, t tabular.Table) error {
	for _, col := range RequiredColumns {
		if _, ok := t.Column(col); !ok {
			return &MissingColumnError{Source: name, Column: col}
		}
	}
	return nil
}

func normalizeTable(name string, t tabular.Table) ([]model.TransactionRecord, error) {
	dateIdx, _ := t.Column("Date")
	descIdx, _ := t.Column("Description")
	amtIdx, _ := t.Column("Amount")

	var records []model.TransactionRecord
	for i, row := range t.Rows {
		// Amount coercion first: rows dropped here never reach date
		// parsing, so a bad date on a dropped row is not an error.
		amount, err := decimal.NewFromString(strings.TrimSpace(tabular.Field(row, amtIdx)))
		if err != nil {
			continue
		}

		rawDate := strings.TrimSpace(tabular.Field(row, dateIdx))
		date, err := parseDate(rawDate)
		if err != nil {
			return nil, &MalformedInputError{Source: name, Row: i + 1, Value: rawDate}
		}

		records = append(records, model.TransactionRecord{
			Date:        date,
			Description: tabular.Field(row, descIdx),
			Amount:      amount,
			Type:        model.ClassifyAmount(amount),
			Month:       date.Month(),
		})
	}
	return records, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
