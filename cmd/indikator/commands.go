package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/indikator/engine"
	"github.com/spektr-org/indikator/helpers"
	"github.com/spektr-org/indikator/pdfexport"
)

// ============================================================================
// COMMANDS
// ============================================================================

func showData(cmd *cobra.Command, _ []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	ds, view, err := a.filteredView()
	if err != nil {
		return err
	}

	data := engine.BuildTable(title(a.filters()), view, a.getInt("limit"), ds.Options(a.logger)...)
	helpers.RenderTable(a.stdout(), data)
	return nil
}

func listChoices(cmd *cobra.Command, _ []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	ds, err := a.loadDataset()
	if err != nil {
		return err
	}

	for _, column := range []string{engine.DefaultKeyColumn, engine.DefaultClusterColumn} {
		if ds.Table.ColumnIndex(column) < 0 {
			a.logger.WithField("column", column).Warn("Column missing from dataset")
			continue
		}
		values, err := engine.Choices(ds.Table, column, ds.Options(a.logger)...)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout(), "%s: %s\n", column, strings.Join(values, ", "))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, _ []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	_, view, err := a.filteredView()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := helpers.WriteCSV(&buf, view); err != nil {
		return err
	}
	return a.write(buf.Bytes())
}

func exportPDF(cmd *cobra.Command, _ []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	_, view, err := a.filteredView()
	if err != nil {
		return err
	}

	opts := []pdfexport.Option{pdfexport.WithLogger(a.logger)}
	if t := a.getString("title"); t != "" {
		opts = append(opts, pdfexport.WithTitle(t))
	}
	if n := a.getInt("max-cols"); n > 0 {
		opts = append(opts, pdfexport.WithMaxColsPerPage(n))
	}

	data, err := pdfexport.Export(view, opts...)
	if err != nil {
		return err
	}
	return a.write(data)
}

// title names the dataset and the active filters.
func title(f engine.Filters) string {
	var parts []string
	for _, column := range []string{engine.DefaultKeyColumn, engine.DefaultClusterColumn} {
		if f.HasFilter(column) {
			parts = append(parts, fmt.Sprintf("%s: %s", column, f.Equals[column]))
		}
	}
	if len(parts) == 0 {
		return "Data Indikator"
	}
	return "Data Indikator (" + strings.Join(parts, " | ") + ")"
}
