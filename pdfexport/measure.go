package pdfexport

import (
	"unicode/utf8"
)

// Measurer reports the rendered width of a string in page units, using
// whatever font the implementation is currently set to.
type Measurer interface {
	StringWidth(s string) (float64, error)
}

// Helvetica advance of "W" in em units; the core font fpdf substitutes for
// Arial.
const helveticaW = 0.944

// GlyphMeasurer measures every rune with the same advance. It stands in for
// a font-metrics backend in tests and headless layout.
type GlyphMeasurer struct {
	Advance  float64 // em units per rune
	FontSize float64 // points
	Scale    float64 // points per page unit
}

// NewGlyphMeasurer returns a measurer for Helvetica "W" at size points
// in the given unit ("mm", "pt", "cm", "in").
func NewGlyphMeasurer(size float64, unit string) GlyphMeasurer {
	return GlyphMeasurer{Advance: helveticaW, FontSize: size, Scale: pointsPerUnit(unit)}
}

func (m GlyphMeasurer) StringWidth(s string) (float64, error) {
	if m.FontSize <= 0 || m.Scale <= 0 || m.Advance <= 0 {
		return 0, &RenderError{Group: -1, Reason: "glyph measurer has no font size"}
	}
	em := m.FontSize / m.Scale
	return float64(utf8.RuneCountInString(s)) * m.Advance * em, nil
}

func pointsPerUnit(unit string) float64 {
	switch unit {
	case "pt":
		return 1
	case "cm":
		return 72 / 2.54
	case "in", "inch":
		return 72
	}
	return 72 / 25.4
}
