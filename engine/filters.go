package engine

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ============================================================================
// FILTERS: Column-equality filtering via RecordView
// ============================================================================
// Single-pass filter: checks ALL column constraints per row in one loop.
// Returns a SubView (index list into parent) without copying data.
// ============================================================================

// ApplyFilters returns a view of rows matching every column filter.
// Empty filter = no restriction (returns original view). A filter that
// matches nothing yields an empty view, not an error.
func ApplyFilters(view RecordView, filters Filters, opts ...Option) (RecordView, error) {
	cfg := applyOptions(opts)

	type constraint struct {
		col     int
		text    string
		number  float64
		numeric bool
	}

	var constraints []constraint
	for name, want := range filters.Equals {
		if !filters.HasFilter(name) {
			continue
		}
		idx := view.ColumnIndex(name)
		if idx < 0 {
			return nil, errors.Wrapf(ErrUnknownColumn, "filter on %q", name)
		}
		c := constraint{col: idx, text: strings.TrimSpace(want)}
		if cfg.NumericColumns[name] {
			n, err := strconv.ParseFloat(c.text, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "filter on numeric column %q", name)
			}
			c.number, c.numeric = n, true
		}
		constraints = append(constraints, c)
	}

	if len(constraints) == 0 {
		return view, nil
	}

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for _, c := range constraints {
			val := strings.TrimSpace(view.Value(i, c.col))
			if c.numeric {
				got, err := strconv.ParseFloat(val, 64)
				pass = err == nil && got == c.number
			} else {
				pass = val == c.text
			}
			if !pass {
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	cfg.Logger.WithFields(logrus.Fields{
		"filters": filters.Equals,
		"rows":    len(indices),
		"from":    n,
	}).Debug("Applied filters")

	return newSubView(view, indices), nil
}
