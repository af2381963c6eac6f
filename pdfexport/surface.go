package pdfexport

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// ============================================================================
// SURFACE: drawing primitives the page renderer emits
// ============================================================================
// fpdfSurface draws into a real document. Recorder collects the same calls
// as Commands so layout can be tested without a PDF backend.
// ============================================================================

// Surface is a paginated drawing target with a flow cursor.
//
// Cell draws text in a w×h box at the cursor. ln selects where the cursor
// goes afterwards: 0 to the right, 1 to the start of the next line, 2 below.
// A w of 0 extends the cell to the right margin.
type Surface interface {
	Measurer

	AddPage()
	SetFont(family, style string, size float64)
	SetXY(x, y float64)
	GetXY() (float64, float64)
	Cell(w, h float64, text, border string, ln int, align string)
	Rect(x, y, w, h float64)
	Ln(h float64)

	PageCount() int
	Err() error
	Output(w io.Writer) error
}

type fpdfSurface struct {
	pdf *fpdf.Fpdf
}

// newFpdfSurface creates an empty document with automatic page breaks.
func newFpdfSurface(cfg Config) *fpdfSurface {
	pdf := fpdf.New(cfg.Orientation, cfg.Unit, cfg.PageSize, "")
	pdf.SetAutoPageBreak(true, cfg.BreakMargin)
	pdf.SetTitle(cfg.Title, true)
	pdf.SetCreator("indikator", true)
	if !cfg.CreationDate.IsZero() {
		pdf.SetCreationDate(cfg.CreationDate)
	}
	return &fpdfSurface{pdf: pdf}
}

func (s *fpdfSurface) AddPage() { s.pdf.AddPage() }

func (s *fpdfSurface) SetFont(family, style string, size float64) {
	s.pdf.SetFont(family, style, size)
}

func (s *fpdfSurface) SetXY(x, y float64)        { s.pdf.SetXY(x, y) }
func (s *fpdfSurface) GetXY() (float64, float64) { return s.pdf.GetXY() }

func (s *fpdfSurface) Cell(w, h float64, text, border string, ln int, align string) {
	s.pdf.CellFormat(w, h, encodeText(text), border, ln, align, false, 0, "")
}

func (s *fpdfSurface) Rect(x, y, w, h float64) { s.pdf.Rect(x, y, w, h, "D") }
func (s *fpdfSurface) Ln(h float64)            { s.pdf.Ln(h) }

func (s *fpdfSurface) StringWidth(text string) (float64, error) {
	w := s.pdf.GetStringWidth(encodeText(text))
	return w, s.pdf.Error()
}

func (s *fpdfSurface) PageCount() int { return s.pdf.PageCount() }
func (s *fpdfSurface) Err() error     { return s.pdf.Error() }

func (s *fpdfSurface) Output(w io.Writer) error { return s.pdf.Output(w) }
