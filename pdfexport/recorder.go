package pdfexport

import (
	"fmt"
	"io"
	"strings"
)

// Recorder operations.
const (
	OpPage = "page"
	OpFont = "font"
	OpMove = "move"
	OpCell = "cell"
	OpRect = "rect"
	OpLine = "ln"
)

// Command is one recorded drawing call, with the cursor position it was
// drawn at.
type Command struct {
	Op     string
	X, Y   float64
	W, H   float64
	Text   string
	Border string
	Align  string
	Font   string // "family/style/size" for OpFont
	Auto   bool   // OpPage triggered by overflow
}

// Recorder is a Surface that records commands and simulates fpdf's flow
// cursor, margins and automatic page breaks.
type Recorder struct {
	Commands []Command

	width, height float64
	margin        float64
	breakMargin   float64
	fontSize      float64
	unit          string

	x, y  float64
	pages int
}

// Page sizes in millimetres, portrait.
var pageSizesMM = map[string][2]float64{
	"A3":     {297, 420},
	"A4":     {210, 297},
	"A5":     {148, 210},
	"Letter": {215.9, 279.4},
	"Legal":  {215.9, 355.6},
}

// NewRecorder returns a Recorder with the page geometry of cfg and fpdf's
// default 10mm margins.
func NewRecorder(cfg Config) *Recorder {
	size, ok := pageSizesMM[cfg.PageSize]
	if !ok {
		size = pageSizesMM["A4"]
	}
	w, h := size[0], size[1]
	if strings.EqualFold(cfg.Orientation, "L") || strings.EqualFold(cfg.Orientation, "landscape") {
		w, h = h, w
	}
	k := (72 / 25.4) / pointsPerUnit(cfg.Unit)
	return &Recorder{
		width:       w * k,
		height:      h * k,
		margin:      10 * k,
		breakMargin: cfg.BreakMargin,
		unit:        cfg.Unit,
	}
}

func (r *Recorder) AddPage() {
	r.newPage(false)
}

func (r *Recorder) newPage(auto bool) {
	r.pages++
	r.x, r.y = r.margin, r.margin
	r.Commands = append(r.Commands, Command{Op: OpPage, X: r.x, Y: r.y, Auto: auto})
}

func (r *Recorder) SetFont(family, style string, size float64) {
	r.fontSize = size
	r.Commands = append(r.Commands, Command{Op: OpFont, Font: fmt.Sprintf("%s/%s/%g", family, style, size)})
}

func (r *Recorder) SetXY(x, y float64) {
	r.x, r.y = x, y
	r.Commands = append(r.Commands, Command{Op: OpMove, X: x, Y: y})
}

func (r *Recorder) GetXY() (float64, float64) { return r.x, r.y }

func (r *Recorder) Cell(w, h float64, text, border string, ln int, align string) {
	if r.breakMargin > 0 && r.y+h > r.height-r.breakMargin && r.y > r.margin {
		x := r.x
		r.newPage(true)
		r.x = x
	}
	if w == 0 {
		w = r.width - r.margin - r.x
	}
	r.Commands = append(r.Commands, Command{
		Op: OpCell, X: r.x, Y: r.y, W: w, H: h,
		Text: text, Border: border, Align: align,
	})
	switch ln {
	case 0:
		r.x += w
	case 1:
		r.x = r.margin
		r.y += h
	default:
		r.y += h
	}
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.Commands = append(r.Commands, Command{Op: OpRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Ln(h float64) {
	r.x = r.margin
	r.y += h
	r.Commands = append(r.Commands, Command{Op: OpLine, X: r.x, Y: r.y, H: h})
}

func (r *Recorder) StringWidth(s string) (float64, error) {
	return NewGlyphMeasurer(r.fontSize, r.unit).StringWidth(s)
}

func (r *Recorder) PageCount() int { return r.pages }
func (r *Recorder) Err() error     { return nil }

// Output writes the recorded commands, one per line.
func (r *Recorder) Output(w io.Writer) error {
	for _, c := range r.Commands {
		var err error
		switch c.Op {
		case OpFont:
			_, err = fmt.Fprintf(w, "%s %s\n", c.Op, c.Font)
		case OpCell:
			_, err = fmt.Fprintf(w, "%s %.2f,%.2f %.2fx%.2f %q border=%q align=%q\n", c.Op, c.X, c.Y, c.W, c.H, c.Text, c.Border, c.Align)
		default:
			_, err = fmt.Fprintf(w, "%s %.2f,%.2f %.2fx%.2f\n", c.Op, c.X, c.Y, c.W, c.H)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Filter returns the recorded commands with the given op.
func (r *Recorder) Filter(op string) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
