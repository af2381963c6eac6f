package pdfexport

import (
	"strings"
	"unicode/utf8"

	"github.com/spektr-org/indikator/engine"
)

// EstimateWidths computes one display width per column of view.
//
// A column is as wide as "W" repeated to the rune length of its longest
// value or header, plus padding, clamped to [MinColWidth, MaxColWidth].
// Counting runes instead of measuring the real text over-estimates narrow
// glyphs.
// When the clamped widths overrun UsableWidth they are scaled down together.
func EstimateWidths(view engine.RecordView, m Measurer, cfg Config) ([]float64, error) {
	columns := view.Columns()
	widths := make([]float64, len(columns))

	for c, name := range columns {
		longest := utf8.RuneCountInString(name)
		for r := 0; r < view.Len(); r++ {
			if n := utf8.RuneCountInString(view.Value(r, c)); n > longest {
				longest = n
			}
		}

		w, err := m.StringWidth(strings.Repeat("W", longest))
		if err != nil {
			return nil, &RenderError{Group: -1, Column: name, Reason: "text measurement failed", Err: err}
		}
		widths[c] = clamp(w+cfg.CellPadding, cfg.MinColWidth, cfg.MaxColWidth)
	}

	scaled, _ := ScaleToFit(widths, cfg.UsableWidth)
	return scaled, nil
}

// ScaleToFit multiplies every width by usable/sum when the sum exceeds
// usable. It never scales up; the returned factor is always <= 1.
func ScaleToFit(widths []float64, usable float64) ([]float64, float64) {
	var total float64
	for _, w := range widths {
		total += w
	}
	scale := 1.0
	if total > usable {
		scale = usable / total
	}

	out := make([]float64, len(widths))
	for i, w := range widths {
		out[i] = w * scale
	}
	return out, scale
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
