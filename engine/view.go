package engine

import (
	"github.com/pkg/errors"
)

// ============================================================================
// RECORD VIEW: Zero-Copy Data Access Interface
// ============================================================================
// Exporters never own the dataset. They read it through this interface.
//
// Implementations:
//   Table       the loaded Record Set (row-major cells)
//   SubView     filtered subset (row indices into parent, zero-copy)
//   Projection  column subset (column indices into parent, zero-copy)
//
// Views compose: a page of the document export is a Projection over the
// SubView the filter stage produced over the Table the loader built.
// ============================================================================

// RecordView provides indexed access to a tabular dataset.
// Value is called in tight loops; keep implementations fast.
type RecordView interface {
	Len() int
	Columns() []string
	ColumnIndex(name string) int // -1 when absent
	Value(row, col int) string
}

// ============================================================================
// TABLE: the Record Set
// ============================================================================

// Table is an in-memory Record Set: named columns of equal length.
// It is read-only after construction.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable builds a Table, checking every row has one cell per column.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, errors.Wrapf(ErrDuplicateColumn, "column %q", name)
		}
		index[name] = i
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.Wrapf(ErrRaggedRow, "row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}
	return &Table{columns: columns, index: index, rows: rows}, nil
}

func (t *Table) Len() int          { return len(t.rows) }
func (t *Table) Columns() []string { return t.columns }

func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

func (t *Table) Value(row, col int) string {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.columns) {
		return ""
	}
	return t.rows[row][col]
}

// ============================================================================
// SUB VIEW: filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent; no data is copied.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int                    { return len(v.indices) }
func (v *SubView) Columns() []string           { return v.parent.Columns() }
func (v *SubView) ColumnIndex(name string) int { return v.parent.ColumnIndex(name) }

func (v *SubView) Value(row, col int) string {
	if row < 0 || row >= len(v.indices) {
		return ""
	}
	return v.parent.Value(v.indices[row], col)
}

// ============================================================================
// PROJECTION: column subset (zero-copy)
// ============================================================================

// Projection exposes a subset of a parent's columns in a chosen order.
// Memory is bounded by the column index slice; cells are read through.
type Projection struct {
	parent  RecordView
	columns []string
	cols    []int
}

// Project returns a view of parent restricted to columns, in that order.
func Project(parent RecordView, columns []string) (*Projection, error) {
	cols := make([]int, len(columns))
	for i, name := range columns {
		idx := parent.ColumnIndex(name)
		if idx < 0 {
			return nil, errors.Wrapf(ErrUnknownColumn, "column %q", name)
		}
		cols[i] = idx
	}
	return &Projection{parent: parent, columns: columns, cols: cols}, nil
}

func (p *Projection) Len() int          { return p.parent.Len() }
func (p *Projection) Columns() []string { return p.columns }

func (p *Projection) ColumnIndex(name string) int {
	for i, c := range p.columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (p *Projection) Value(row, col int) string {
	if col < 0 || col >= len(p.cols) {
		return ""
	}
	return p.parent.Value(row, p.cols[col])
}
