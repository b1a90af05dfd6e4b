// Package runlog keeps an append-only CSV audit of report generations.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/showinvestor-dev/showinvestor/internal/id"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp    time.Time
	RunID        string
	SalesFile    string
	ExpensesFile string
	Records      int // normalized records that survived coercion
	Months       int // months present in the bundle
	Output       string
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,run_id,sales_file,expenses_file,records,months,output"

const (
	numFields    = 7
	logDir       = "logs"
	logFile      = "logs/run-log.csv"
	colTimestamp = 0
	colRunID     = 1
	colSales     = 2
	colExpenses  = 3
	colRecords   = 4
	colMonths    = 5
	colOutput    = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colSales] = e.SalesFile
	row[colExpenses] = e.ExpensesFile
	row[colRecords] = strconv.Itoa(e.Records)
	row[colMonths] = strconv.Itoa(e.Months)
	row[colOutput] = e.Output
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	records, err := strconv.Atoi(record[colRecords])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing records %q: %w", record[colRecords], err)
	}

	months, err := strconv.Atoi(record[colMonths])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing months %q: %w", record[colMonths], err)
	}

	return Entry{
		Timestamp:    ts,
		RunID:        record[colRunID],
		SalesFile:    record[colSales],
		ExpensesFile: record[colExpenses],
		Records:      records,
		Months:       months,
		Output:       record[colOutput],
	}, nil
}

// Append writes entries to <root>/logs/run-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/run-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

// NextSeq returns the next run sequence number for a year/month.
func NextSeq(root string, year, month int) (int, error) {
	entries, err := Read(root)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, e := range entries {
		y, m, seq, err := id.ParseRunID(e.RunID)
		if err != nil || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
