package tabular

import (
	"io"
	"path/filepath"
	"strings"
)

// Table is one parsed tabular input: a header row plus data rows.
// Rows may be ragged; Field tolerates short rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the index of a named column. Names are case-sensitive.
func (t Table) Column(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Field returns the cell at idx in row, or "" when the row is too short.
func Field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Reader converts one tabular file format into a Table.
type Reader interface {
	Read(r io.Reader) (Table, error)
	Format() string
}

// Registry holds named readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// ForFile returns the reader matching a file name's extension, or nil.
func (r *Registry) ForFile(name string) Reader {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return r.Get(ext)
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{})
	return r
}
