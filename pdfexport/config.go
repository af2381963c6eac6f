package pdfexport

import (
	"time"

	"github.com/spektr-org/indikator/engine"
)

// ============================================================================
// LAYOUT CONFIG: page geometry, column budget, fonts
// ============================================================================
// All lengths are in page units (millimetres by default).
// ============================================================================

// Config holds the constants of the paginated document export.
type Config struct {
	Title     string
	KeyColumn string // repeated as the first column of every page

	MaxColsPerPage int     // non-key columns per page
	MinColWidth    float64 // clamp floor, applied before scaling
	MaxColWidth    float64 // clamp ceiling, applied before scaling
	UsableWidth    float64 // horizontal budget for one page of columns
	CellPadding    float64 // added to the measured text width

	WrapWidth   int     // header characters per line
	LineHeight  float64 // header line height
	RowHeight   float64 // body row height
	TitleHeight float64

	FontFamily     string
	TitleFontSize  float64
	HeaderFontSize float64
	BodyFontSize   float64

	Orientation string // "L" or "P"
	Unit        string // "mm", "pt", "cm", "in"
	PageSize    string // "A4", "A3", "Letter", ...
	BreakMargin float64

	// CreationDate is stamped into the document metadata when set.
	CreationDate time.Time
}

// DefaultConfig returns the landscape A4 layout used for the indicator
// report.
func DefaultConfig() Config {
	return Config{
		Title:     "Laporan Data Terfilter",
		KeyColumn: engine.DefaultKeyColumn,

		MaxColsPerPage: 9,
		MinColWidth:    20,
		MaxColWidth:    50,
		UsableWidth:    270,
		CellPadding:    4,

		WrapWidth:   20,
		LineHeight:  4,
		RowHeight:   6,
		TitleHeight: 10,

		FontFamily:     "Arial",
		TitleFontSize:  12,
		HeaderFontSize: 7,
		BodyFontSize:   6,

		Orientation: "L",
		Unit:        "mm",
		PageSize:    "A4",
		BreakMargin: 10,
	}
}

// Validate reports the first constant that makes the layout impossible.
func (c Config) Validate() error {
	switch {
	case c.KeyColumn == "":
		return configErrorf("key column is empty")
	case c.MaxColsPerPage <= 0:
		return configErrorf("page capacity must be positive, got %d", c.MaxColsPerPage)
	case c.MinColWidth <= 0:
		return configErrorf("minimum column width must be positive, got %g", c.MinColWidth)
	case c.MaxColWidth < c.MinColWidth:
		return configErrorf("maximum column width %g is below minimum %g", c.MaxColWidth, c.MinColWidth)
	case c.UsableWidth <= 0:
		return configErrorf("usable page width must be positive, got %g", c.UsableWidth)
	case c.CellPadding < 0:
		return configErrorf("cell padding must not be negative, got %g", c.CellPadding)
	case c.WrapWidth <= 0:
		return configErrorf("header wrap width must be positive, got %d", c.WrapWidth)
	case c.LineHeight <= 0 || c.RowHeight <= 0:
		return configErrorf("line and row heights must be positive")
	case c.TitleFontSize <= 0 || c.HeaderFontSize <= 0 || c.BodyFontSize <= 0:
		return configErrorf("font sizes must be positive")
	}
	return nil
}
