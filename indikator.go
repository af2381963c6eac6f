// Package indikator filters a provincial indicator dataset and exports it.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/indikator/engine"
//	    "github.com/spektr-org/indikator/pdfexport"
//	)
//
//	view, err := engine.ApplyFilters(table,
//	    engine.Filters{}.Set("Cluster", "2"),
//	    engine.WithNumericColumns("Cluster"),
//	)
//	pdf, err := pdfexport.Export(view, pdfexport.WithTitle("Cluster 2"))
//
// The source package fetches the published sheet, schema classifies its
// columns, engine filters rows without copying them, helpers reads and
// writes CSV, and pdfexport lays wide tables out across landscape pages
// with the Provinsi column repeated on each one.
package indikator
