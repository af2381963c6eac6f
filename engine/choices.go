package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ============================================================================
// CHOICES: Filter options for a dimension column
// ============================================================================

// Choices returns the selectable values for column: AllValues first, then
// every distinct non-empty value, sorted. Numeric columns sort by value.
func Choices(view RecordView, column string, opts ...Option) ([]string, error) {
	cfg := applyOptions(opts)

	values, err := UniqueValues(view, column)
	if err != nil {
		return nil, err
	}

	if cfg.NumericColumns[column] {
		sort.SliceStable(values, func(i, j int) bool {
			a, errA := strconv.ParseFloat(values[i], 64)
			b, errB := strconv.ParseFloat(values[j], 64)
			switch {
			case errA == nil && errB == nil:
				return a < b
			case errA == nil:
				return true
			case errB == nil:
				return false
			}
			return values[i] < values[j]
		})
	} else {
		sort.Strings(values)
	}

	return append([]string{AllValues}, values...), nil
}

// UniqueValues returns distinct non-empty values of column in first-seen order.
func UniqueValues(view RecordView, column string) ([]string, error) {
	idx := view.ColumnIndex(column)
	if idx < 0 {
		return nil, errors.Wrapf(ErrUnknownColumn, "column %q", column)
	}
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := strings.TrimSpace(view.Value(i, idx))
		if isNull(val) || seen[val] {
			continue
		}
		seen[val] = true
		result = append(result, val)
	}
	return result, nil
}

func isNull(s string) bool {
	switch s {
	case "", "nan", "NaN", "null", "NULL", "N/A", "n/a":
		return true
	}
	return false
}
