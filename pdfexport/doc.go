// Package pdfexport lays a wide table out across fixed-width document pages.
//
// The export pipeline is:
//
//	Partition     split the columns into page groups, key column first in each
//	EstimateWidths size each column from its longest value, clamp, shrink to fit
//	WrapHeaders   word-wrap headers and find the tallest one
//	RenderPage    draw title, header block and bordered rows onto a Surface
//
// An Exporter drives the pipeline once per group and serializes the result:
//
//	data, err := pdfexport.Export(view, pdfexport.WithTitle("Laporan"))
//
// Drawing goes through the Surface interface. The default surface is an
// fpdf document; Recorder captures the same calls for inspection.
package pdfexport
