package schema

// ============================================================================
// SCHEMA: Describes the columns of a loaded dataset
// ============================================================================
// Auto-discovered from the Record Set. The filter stage uses it to decide
// which columns compare numerically; display surfaces use it for alignment.
// ============================================================================

// Column kinds.
const (
	KindNumeric = "numeric"
	KindText    = "text"
)

// Column roles.
const (
	RoleDimension  = "dimension"  // low-cardinality, usable as a filter
	RoleMeasure    = "measure"    // numeric indicator value
	RoleIdentifier = "identifier" // unique per row
)

// Config describes the complete shape of a dataset.
type Config struct {
	Name    string       `json:"name"`
	Columns []ColumnMeta `json:"columns"`
	Rows    int          `json:"rows"`

	// Auto-discovery metadata
	DiscoveredFrom string `json:"discoveredFrom,omitempty"`
	DiscoveredAt   string `json:"discoveredAt,omitempty"`
}

// ColumnMeta describes one column.
type ColumnMeta struct {
	Key             string   `json:"key"`
	Header          string   `json:"header"`
	Kind            string   `json:"kind"`
	Role            string   `json:"role"`
	Filterable      bool     `json:"filterable"`
	HasDecimals     bool     `json:"hasDecimals,omitempty"`
	NullCount       int      `json:"nullCount"`
	UniqueCount     int      `json:"uniqueCount"`
	CardinalityHint string   `json:"cardinalityHint,omitempty"` // "low", "medium", "high"
	SampleValues    []string `json:"sampleValues"`
}

// Column returns the metadata for header, or false if absent.
func (c Config) Column(header string) (ColumnMeta, bool) {
	for _, col := range c.Columns {
		if col.Header == header {
			return col, true
		}
	}
	return ColumnMeta{}, false
}

// NumericColumns returns the headers of all numeric columns.
func (c Config) NumericColumns() []string {
	var out []string
	for _, col := range c.Columns {
		if col.Kind == KindNumeric {
			out = append(out, col.Header)
		}
	}
	return out
}

// FilterableColumns returns the headers of all filterable columns.
func (c Config) FilterableColumns() []string {
	var out []string
	for _, col := range c.Columns {
		if col.Filterable {
			out = append(out, col.Header)
		}
	}
	return out
}
