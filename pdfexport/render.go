package pdfexport

import (
	"fmt"

	"github.com/spektr-org/indikator/engine"
)

// ============================================================================
// PAGE RENDERER: title, wrapped header block, bordered rows
// ============================================================================

// ColumnLayout is the computed geometry of one column on a page.
type ColumnLayout struct {
	Name   string
	Width  float64
	Header []string // wrapped header lines
}

// Layout is the computed geometry of one column group.
type Layout struct {
	Group      int
	Title      string
	Columns    []ColumnLayout
	MaxLines   int
	LineHeight float64
}

// HeaderHeight is the shared height of every header cell in the group.
func (l *Layout) HeaderHeight() float64 {
	return float64(l.MaxLines) * l.LineHeight
}

// TotalWidth sums the column widths.
func (l *Layout) TotalWidth() float64 {
	var total float64
	for _, c := range l.Columns {
		total += c.Width
	}
	return total
}

// BuildLayout measures view (one group's projection) with m and wraps its
// headers.
func BuildLayout(group Group, view engine.RecordView, m Measurer, cfg Config) (*Layout, error) {
	widths, err := EstimateWidths(view, m, cfg)
	if err != nil {
		if re, ok := err.(*RenderError); ok {
			re.Group = group.Index
		}
		return nil, err
	}

	headers := view.Columns()
	wrapped, maxLines := WrapHeaders(headers, cfg.WrapWidth)

	layout := &Layout{
		Group:      group.Index,
		Title:      cfg.Title,
		Columns:    make([]ColumnLayout, len(headers)),
		MaxLines:   maxLines,
		LineHeight: cfg.LineHeight,
	}
	for i, name := range headers {
		layout.Columns[i] = ColumnLayout{Name: name, Width: widths[i], Header: wrapped[i]}
	}
	return layout, nil
}

// cursor is the renderer's drawing position. It is threaded through the
// draw steps instead of living on the surface.
type cursor struct {
	x, y float64
}

func cursorAt(s Surface) cursor {
	x, y := s.GetXY()
	return cursor{x: x, y: y}
}

func (c cursor) right(w float64) cursor { return cursor{x: c.x + w, y: c.y} }
func (c cursor) down(h float64) cursor  { return cursor{x: c.x, y: c.y + h} }

// RenderPage draws one column group onto a fresh page of s: the title, the
// header block, then one bordered row per record. Rows that overflow the
// page continue on the next one without repeating the header.
func RenderPage(s Surface, layout *Layout, view engine.RecordView, cfg Config) error {
	if err := checkLayout(layout, view); err != nil {
		return err
	}

	s.AddPage()
	s.SetFont(cfg.FontFamily, "B", cfg.TitleFontSize)
	s.Cell(0, cfg.TitleHeight, layout.Title, "", 1, "C")

	s.SetFont(cfg.FontFamily, "B", cfg.HeaderFontSize)
	origin := cursorAt(s)
	cur := drawHeader(s, layout, origin)
	s.SetXY(cur.x, cur.y)

	s.SetFont(cfg.FontFamily, "", cfg.BodyFontSize)
	for r := 0; r < view.Len(); r++ {
		for c, col := range layout.Columns {
			s.Cell(col.Width, cfg.RowHeight, view.Value(r, c), "1", 0, "")
		}
		s.Ln(cfg.RowHeight)
	}

	if err := s.Err(); err != nil {
		return &RenderError{Group: layout.Group, Reason: "drawing failed", Err: err}
	}
	return nil
}

// drawHeader stacks each column's wrapped lines from origin and outlines the
// full header block. It returns the cursor below the block.
func drawHeader(s Surface, layout *Layout, origin cursor) cursor {
	height := layout.HeaderHeight()
	cur := origin
	for _, col := range layout.Columns {
		line := cur
		for _, text := range col.Header {
			s.SetXY(line.x, line.y)
			s.Cell(col.Width, layout.LineHeight, text, "", 0, "C")
			line = line.down(layout.LineHeight)
		}
		s.Rect(cur.x, cur.y, col.Width, height)
		cur = cur.right(col.Width)
	}
	return origin.down(height)
}

func checkLayout(layout *Layout, view engine.RecordView) error {
	columns := view.Columns()
	if len(columns) != len(layout.Columns) {
		return &RenderError{
			Group:  layout.Group,
			Reason: fmt.Sprintf("layout has %d columns, rows have %d", len(layout.Columns), len(columns)),
		}
	}
	for i, col := range layout.Columns {
		if col.Width <= 0 {
			return &RenderError{Group: layout.Group, Column: col.Name, Reason: fmt.Sprintf("non-positive width %g", col.Width)}
		}
		if columns[i] != col.Name {
			return &RenderError{Group: layout.Group, Column: col.Name, Reason: fmt.Sprintf("rows carry column %q in its slot", columns[i])}
		}
	}
	return nil
}
