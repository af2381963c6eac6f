package engine

import (
	"github.com/pkg/errors"
)

// ============================================================================
// ENGINE TYPES: Record Set, filters, render-ready tables
// ============================================================================
// The engine owns no I/O. Loaders build a Table, the filter stage narrows it
// to a SubView, exporters read it through RecordView.
// ============================================================================

// AllValues is the filter choice meaning "no restriction on this column".
const AllValues = "Semua"

// Default dimension columns of the indicator dataset.
const (
	DefaultKeyColumn     = "Provinsi"
	DefaultClusterColumn = "Cluster"
)

var (
	// ErrUnknownColumn is returned when a caller names a column the view lacks.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrRaggedRow is returned when a row's width differs from the header.
	ErrRaggedRow = errors.New("row length does not match column count")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")
)

// ============================================================================
// FILTERS
// ============================================================================

// Filters select rows by exact column value.
// Columns are AND-combined. An empty value or AllValues leaves the column
// unrestricted.
type Filters struct {
	Equals map[string]string `json:"equals"`
}

// Set returns a copy of f with column restricted to value.
func (f Filters) Set(column, value string) Filters {
	out := Filters{Equals: make(map[string]string, len(f.Equals)+1)}
	for k, v := range f.Equals {
		out.Equals[k] = v
	}
	out.Equals[column] = value
	return out
}

// HasFilter returns true if column carries an effective restriction.
func (f Filters) HasFilter(column string) bool {
	if f.Equals == nil {
		return false
	}
	v, ok := f.Equals[column]
	return ok && v != "" && v != AllValues
}

// IsEmpty returns true if no column is restricted.
func (f Filters) IsEmpty() bool {
	for col := range f.Equals {
		if f.HasFilter(col) {
			return false
		}
	}
	return true
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData is a render-ready table for display surfaces.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Summary describes the rows a TableData was cut from.
type Summary struct {
	Label     string `json:"label"`
	TotalRows int    `json:"totalRows"`
	Shown     int    `json:"shown"`
}
