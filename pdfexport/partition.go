package pdfexport

// Group is one page worth of columns: the key column followed by a
// contiguous slice of the remaining columns.
type Group struct {
	Index   int
	Columns []string
}

// Key returns the anchor column.
func (g Group) Key() string { return g.Columns[0] }

// DataColumns returns the non-key slice of the group.
func (g Group) DataColumns() []string { return g.Columns[1:] }

// Partition splits columns into groups of at most capacity non-key columns,
// in original order, prepending key to each group. The key column must be
// present in columns. Zero non-key columns yield zero groups.
func Partition(columns []string, key string, capacity int) ([]Group, error) {
	if capacity <= 0 {
		return nil, configErrorf("page capacity must be positive, got %d", capacity)
	}

	others := make([]string, 0, len(columns))
	found := false
	for _, col := range columns {
		if col == key {
			found = true
			continue
		}
		others = append(others, col)
	}
	if !found {
		return nil, configErrorf("key column %q not found in dataset", key)
	}

	groups := make([]Group, 0, (len(others)+capacity-1)/capacity)
	for start := 0; start < len(others); start += capacity {
		end := start + capacity
		if end > len(others) {
			end = len(others)
		}
		cols := make([]string, 0, end-start+1)
		cols = append(cols, key)
		cols = append(cols, others[start:end]...)
		groups = append(groups, Group{Index: len(groups), Columns: cols})
	}
	return groups, nil
}
