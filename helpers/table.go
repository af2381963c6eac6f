package helpers

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/spektr-org/indikator/engine"
)

// ============================================================================
// TABLE DISPLAY: Renders a filtered view to a terminal
// ============================================================================

// RenderTable writes data as a bordered text table followed by a row-count
// footer line.
func RenderTable(w io.Writer, data *engine.TableData) {
	if data.Title != "" {
		fmt.Fprintln(w, data.Title)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	header := make([]string, len(data.Columns))
	alignment := make([]int, len(data.Columns))
	for i, col := range data.Columns {
		header[i] = col.Label
		alignment[i] = tablewriter.ALIGN_LEFT
		if col.Align == "right" {
			alignment[i] = tablewriter.ALIGN_RIGHT
		}
	}
	table.SetHeader(header)
	table.SetColumnAlignment(alignment)
	table.AppendBulk(data.Rows)
	table.Render()

	if data.Summary != nil {
		fmt.Fprintln(w, data.Summary.Label)
	}
}
