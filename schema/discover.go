package schema

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"

	"github.com/spektr-org/indikator/engine"
)

// ============================================================================
// AUTO-DISCOVERY: Heuristic Column Classification
// ============================================================================
// Inspects a loaded Record Set and generates a schema.Config.
//
// Classification pipeline per column:
//   1. Sample values → detect kind (numeric, text)
//   2. Kind + cardinality → classify role (dimension, measure, identifier)
//   3. Dimensions become filterable
// ============================================================================

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	SampleSize int    // Max rows to inspect (0 = all). Default: 1000
	Name       string // Dataset name override
	Source     string // Recorded as DiscoveredFrom
}

// DefaultDiscoverOptions returns sensible defaults.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{
		SampleSize: 1000,
		Source:     "CSV",
	}
}

// Discover generates a schema.Config by inspecting view.
func Discover(view engine.RecordView, opts ...DiscoverOptions) (*Config, error) {
	opt := DefaultDiscoverOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	headers := view.Columns()
	if len(headers) == 0 {
		return nil, errors.New("dataset has no columns")
	}

	limit := view.Len()
	if opt.SampleSize > 0 && opt.SampleSize < limit {
		limit = opt.SampleSize
	}

	config := &Config{
		Name:           opt.Name,
		Rows:           view.Len(),
		DiscoveredFrom: opt.Source,
		DiscoveredAt:   time.Now().Format(time.RFC3339),
	}
	if config.Name == "" {
		config.Name = "Auto-discovered Dataset"
	}

	for i, header := range headers {
		col := analyzeColumn(header, i, view, limit)
		config.Columns = append(config.Columns, col.toMeta())
	}

	return config, nil
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

type columnAnalysis struct {
	header string
	key    string
	kind   string
	role   string

	uniqueCount int
	totalCount  int
	nullCount   int
	hasDecimals bool
	sampleVals  []string
}

// analyzeColumn inspects the first rows values of column index.
func analyzeColumn(header string, index int, view engine.RecordView, rows int) columnAnalysis {
	col := columnAnalysis{
		header:     header,
		key:        toSnakeCase(header),
		totalCount: rows,
		kind:       KindText,
	}

	values := make([]string, 0, rows)
	uniqueSet := make(map[string]bool)
	for r := 0; r < rows; r++ {
		val := strings.TrimSpace(view.Value(r, index))
		if isNull(val) {
			col.nullCount++
			continue
		}
		values = append(values, val)
		uniqueSet[val] = true
	}
	col.uniqueCount = len(uniqueSet)
	col.sampleVals = collectSamples(uniqueSet, 10)

	if len(values) == 0 {
		col.role = RoleDimension
		return col
	}

	if detectNumeric(values) {
		col.kind = KindNumeric
		for _, v := range values {
			if strings.Contains(v, ".") {
				col.hasDecimals = true
				break
			}
		}
	}

	col.classifyRole()
	return col
}

// classifyRole determines dimension vs measure vs identifier.
func (col *columnAnalysis) classifyRole() {
	nonNull := col.totalCount - col.nullCount
	switch col.kind {
	case KindNumeric:
		if col.hasDecimals {
			col.role = RoleMeasure
			return
		}
		// Few distinct integers relative to rows → coded dimension (e.g. cluster 1-5)
		uniqueRatio := float64(col.uniqueCount) / float64(nonNull)
		if col.uniqueCount < 20 && uniqueRatio < 0.3 {
			col.role = RoleDimension
			return
		}
		col.role = RoleMeasure

	default:
		if col.uniqueCount == nonNull && nonNull > 10 {
			col.role = RoleIdentifier
			return
		}
		if col.uniqueCount > nonNull/2 && col.uniqueCount > 50 {
			col.role = RoleIdentifier
			return
		}
		col.role = RoleDimension
	}
}

func (col *columnAnalysis) toMeta() ColumnMeta {
	hint := "high"
	switch {
	case col.uniqueCount <= 10:
		hint = "low"
	case col.uniqueCount <= 100:
		hint = "medium"
	}
	return ColumnMeta{
		Key:             col.key,
		Header:          col.header,
		Kind:            col.kind,
		Role:            col.role,
		Filterable:      col.role == RoleDimension,
		HasDecimals:     col.hasDecimals,
		NullCount:       col.nullCount,
		UniqueCount:     col.uniqueCount,
		CardinalityHint: hint,
		SampleValues:    col.sampleVals,
	}
}

// ============================================================================
// TYPE DETECTION
// ============================================================================

// detectNumeric requires 80%+ of non-null values to parse as numbers.
func detectNumeric(values []string) bool {
	numCount := 0
	for _, v := range values {
		if isNumeric(v) {
			numCount++
		}
	}
	threshold := int(float64(len(values)) * 0.8)
	return numCount > 0 && numCount >= threshold
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isNull(s string) bool {
	switch s {
	case "", "null", "NULL", "N/A", "n/a", "nan", "NaN":
		return true
	}
	return false
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// toSnakeCase converts "Column Name" or "columnName" → "column_name".
func toSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}

	s = strings.ToLower(result.String())
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// collectSamples picks up to maxSamples representative values.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}

	// Sort for deterministic output
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
