package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// ============================================================================
// INDIKATOR CLI: filter the indicator sheet, export CSV or PDF
// ============================================================================

const version = "0.3.0"

// Default output files for the export commands.
const (
	defaultCSVFile = "data_terfilter.csv"
	defaultPDFFile = "data_terfilter.pdf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "indikator",
		Short: "Browse and export the provincial indicator dataset",
		Long: `Indikator loads the published indicator sheet, filters it by
Provinsi and Cluster, and exports the result as CSV or as a paginated PDF
with the Provinsi column repeated on every page.

Every flag can also be set with an INDIKATOR_<FLAG> environment variable
or in the file named by --config.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: bindEnvironment,
	}

	flags := root.PersistentFlags()
	flags.String("source", "", "published sheet CSV URL (default: the indicator sheet)")
	flags.String("file", "", "read the dataset from a local CSV file instead of --source")
	flags.Duration("timeout", defaultTimeout, "HTTP timeout for --source")
	flags.String("log-level", "warning", "log level: debug, info, warning, error")
	flags.String("config", "", "config file (yaml, toml or json)")

	addCommands(root)
	return root
}

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the filtered dataset as a table",
		Args:  cobra.NoArgs,
		RunE:  showData}
	addFilterFlags(cmd)
	cmd.Flags().Int("limit", 20, "maximum rows to print (0: all)")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "choices",
		Short: "List the filter options for Provinsi and Cluster",
		Args:  cobra.NoArgs,
		RunE:  listChoices}
	root.AddCommand(cmd)

	export := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered dataset"}
	root.AddCommand(export)

	cmd = &cobra.Command{
		Use:   "csv",
		Short: "Export the filtered dataset as CSV",
		Args:  cobra.NoArgs,
		RunE:  exportCSV}
	addFilterFlags(cmd)
	cmd.Flags().StringP("out", "o", defaultCSVFile, "output file ('-' for stdout)")
	export.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "pdf",
		Short: "Export the filtered dataset as a paginated PDF",
		Args:  cobra.NoArgs,
		RunE:  exportPDF}
	addFilterFlags(cmd)
	cmd.Flags().StringP("out", "o", defaultPDFFile, "output file ('-' for stdout)")
	cmd.Flags().String("title", "", "document title (default: Laporan Data Terfilter)")
	cmd.Flags().Int("max-cols", 0, "non-key columns per page (default: 9)")
	export.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "indikator %s\n", version)
		}}
	root.AddCommand(cmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("provinsi", "", "keep only this Provinsi (default: all)")
	cmd.Flags().String("cluster", "", "keep only this Cluster (default: all)")
}
