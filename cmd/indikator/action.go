package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spektr-org/indikator/engine"
	"github.com/spektr-org/indikator/schema"
	"github.com/spektr-org/indikator/source"
)

const defaultTimeout = 30 * time.Second

// Action is the state used while processing one command.
type Action struct {
	cmd    *cobra.Command
	logger *logrus.Logger
	start  time.Time
}

func newAction(cmd *cobra.Command) (*Action, error) {
	a := &Action{cmd: cmd, start: time.Now()}

	level, err := logrus.ParseLevel(a.getString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid --log-level")
	}
	a.logger = logrus.New()
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetLevel(level)
	a.logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return a, nil
}

func (a *Action) Context() context.Context {
	if ctx := a.cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (a *Action) getInt(name string) int {
	result, _ := a.cmd.Flags().GetInt(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) getDuration(name string) time.Duration {
	result, _ := a.cmd.Flags().GetDuration(name)
	return result
}

// ── Dataset ──────────────────────────────────────────────────────────────────

// Dataset is the loaded Record Set with its discovered column metadata.
type Dataset struct {
	Table  *engine.Table
	Schema *schema.Config
}

// Options returns the engine options derived from the column metadata.
func (d *Dataset) Options(logger logrus.FieldLogger) []engine.Option {
	return []engine.Option{
		engine.WithNumericColumns(d.Schema.NumericColumns()...),
		engine.WithLogger(logger),
	}
}

func (a *Action) loadDataset() (*Dataset, error) {
	cfg := source.DefaultConfig()
	if url := a.getString("source"); url != "" {
		cfg.URL = url
	}
	cfg.Path = a.getString("file")
	if timeout := a.getDuration("timeout"); timeout > 0 {
		cfg.Timeout = timeout
	}

	table, err := source.NewFetcher(cfg, a.logger).Fetch(a.Context())
	if err != nil {
		return nil, err
	}

	origin := cfg.URL
	if cfg.Path != "" {
		origin = cfg.Path
	}
	sch, err := schema.Discover(table, schema.DiscoverOptions{
		SampleSize: 1000,
		Name:       "Indikator Provinsi",
		Source:     origin,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to classify columns")
	}

	a.logger.WithFields(logrus.Fields{
		"rows":    table.Len(),
		"columns": len(table.Columns()),
		"numeric": len(sch.NumericColumns()),
	}).Debug("Loaded dataset")
	return &Dataset{Table: table, Schema: sch}, nil
}

// filters reads the --provinsi and --cluster selections.
func (a *Action) filters() engine.Filters {
	var f engine.Filters
	f = f.Set(engine.DefaultKeyColumn, a.getString("provinsi"))
	f = f.Set(engine.DefaultClusterColumn, a.getString("cluster"))
	return f
}

// filteredView loads the dataset and applies the command's filters.
func (a *Action) filteredView() (*Dataset, engine.RecordView, error) {
	ds, err := a.loadDataset()
	if err != nil {
		return nil, nil, err
	}
	view, err := engine.ApplyFilters(ds.Table, a.filters(), ds.Options(a.logger)...)
	if err != nil {
		return nil, nil, err
	}
	return ds, view, nil
}

// write sends data to the file named by --out, or stdout for "-".
func (a *Action) write(data []byte) error {
	out := a.getString("out")
	if out == "-" {
		_, err := a.cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", out)
	}
	a.logger.WithFields(logrus.Fields{
		"file":    out,
		"bytes":   len(data),
		"elapsed": time.Since(a.start).Round(time.Millisecond),
	}).Info("Export written")
	return nil
}

func (a *Action) stdout() io.Writer { return a.cmd.OutOrStdout() }
