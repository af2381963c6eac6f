package pdfexport

import (
	"bytes"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spektr-org/indikator/engine"
)

// ============================================================================
// DOCUMENT ASSEMBLER: Partition → (Layout → Render) per group → bytes
// ============================================================================
// Every call allocates its own surface; nothing is shared between exports.
// Output is all-or-nothing: the first failing group aborts the document.
// ============================================================================

// Option configures an Exporter.
type Option func(*Exporter)

// WithConfig replaces the whole layout configuration.
func WithConfig(cfg Config) Option {
	return func(e *Exporter) { e.config = cfg }
}

// WithTitle sets the title printed at the top of every column group.
func WithTitle(title string) Option {
	return func(e *Exporter) { e.config.Title = title }
}

// WithKeyColumn sets the column repeated on every page.
func WithKeyColumn(column string) Option {
	return func(e *Exporter) { e.config.KeyColumn = column }
}

// WithMaxColsPerPage sets how many non-key columns share a page.
func WithMaxColsPerPage(n int) Option {
	return func(e *Exporter) { e.config.MaxColsPerPage = n }
}

// WithCreationDate stamps the document metadata with t.
func WithCreationDate(t time.Time) Option {
	return func(e *Exporter) { e.config.CreationDate = t }
}

// WithLogger sets the logger for export diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// withSurface swaps the drawing backend.
func withSurface(fn func(Config) Surface) Option {
	return func(e *Exporter) { e.newSurface = fn }
}

// Exporter renders Record Sets as paginated documents.
type Exporter struct {
	config     Config
	logger     logrus.FieldLogger
	newSurface func(Config) Surface
}

// NewExporter builds an Exporter and validates its configuration.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		config: DefaultConfig(),
		logger: logrus.StandardLogger(),
		newSurface: func(cfg Config) Surface {
			return newFpdfSurface(cfg)
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.config.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Config returns the layout configuration in effect.
func (e *Exporter) Config() Config { return e.config }

// Export renders view to a document and returns its bytes.
func (e *Exporter) Export(view engine.RecordView) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders view and writes the serialized document to w. Nothing is
// written unless every group renders.
func (e *Exporter) Write(w io.Writer, view engine.RecordView) error {
	surface, err := e.Render(view)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := surface.Output(&buf); err != nil {
		return &RenderError{Group: -1, Reason: "serialization failed", Err: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Group: -1, Reason: "write failed", Err: err}
	}
	return nil
}

// Render draws every column group of view onto a new surface.
func (e *Exporter) Render(view engine.RecordView) (Surface, error) {
	cfg := e.config

	groups, err := Partition(view.Columns(), cfg.KeyColumn, cfg.MaxColsPerPage)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		// Only the key column: it still gets a page.
		groups = []Group{{Index: 0, Columns: []string{cfg.KeyColumn}}}
	}

	surface := e.newSurface(cfg)
	for _, g := range groups {
		if err := e.renderGroup(surface, g, view); err != nil {
			return nil, err
		}
	}
	if err := surface.Err(); err != nil {
		return nil, &RenderError{Group: -1, Reason: "document failed", Err: err}
	}

	e.logger.WithFields(logrus.Fields{
		"groups": len(groups),
		"pages":  surface.PageCount(),
		"rows":   view.Len(),
	}).Info("Rendered document")
	return surface, nil
}

func (e *Exporter) renderGroup(s Surface, g Group, view engine.RecordView) error {
	cfg := e.config

	projection, err := engine.Project(view, g.Columns)
	if err != nil {
		return &RenderError{Group: g.Index, Reason: "column projection failed", Err: err}
	}

	s.SetFont(cfg.FontFamily, "", cfg.BodyFontSize)
	layout, err := BuildLayout(g, projection, s, cfg)
	if err != nil {
		return err
	}

	e.logger.WithFields(logrus.Fields{
		"group":    g.Index + 1,
		"columns":  len(g.Columns),
		"width":    layout.TotalWidth(),
		"maxLines": layout.MaxLines,
		"header":   layout.HeaderHeight(),
	}).Debug("Laid out column group")

	return RenderPage(s, layout, projection, cfg)
}

// Export renders view with a one-off Exporter.
func Export(view engine.RecordView, opts ...Option) ([]byte, error) {
	e, err := NewExporter(opts...)
	if err != nil {
		return nil, err
	}
	return e.Export(view)
}
