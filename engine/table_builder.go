package engine

import (
	"fmt"
)

// ============================================================================
// TABLE BUILDER: Produces TableData from a RecordView
// ============================================================================
// Column discovery uses view.Columns(); numeric columns align right.
// ============================================================================

// BuildTable produces a TableData with one row per record, at most limit
// rows (limit <= 0 means all).
func BuildTable(title string, view RecordView, limit int, opts ...Option) *TableData {
	cfg := applyOptions(opts)

	names := view.Columns()
	columns := make([]Column, 0, len(names))
	for _, name := range names {
		col := Column{Key: name, Label: name, Type: "text", Align: "left"}
		if cfg.NumericColumns[name] {
			col.Type, col.Align = "number", "right"
		}
		columns = append(columns, col)
	}

	shown := view.Len()
	if limit > 0 && limit < shown {
		shown = limit
	}

	rows := make([][]string, 0, shown)
	for i := 0; i < shown; i++ {
		row := make([]string, len(names))
		for c := range names {
			row[c] = view.Value(i, c)
		}
		rows = append(rows, row)
	}

	label := fmt.Sprintf("%d rows", view.Len())
	if shown < view.Len() {
		label = fmt.Sprintf("%d of %d rows", shown, view.Len())
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:     label,
			TotalRows: view.Len(),
			Shown:     shown,
		},
	}
}
