package schema

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spektr-org/indikator/engine"
)

// ============================================================================
// DISCOVERY TESTS
// ============================================================================

var provinces = []string{
	"Aceh", "Sumatera Utara", "Sumatera Barat", "Riau", "Jambi", "Sumatera Selatan",
	"Bengkulu", "Lampung", "Bangka Belitung", "Kepulauan Riau", "DKI Jakarta", "Jawa Barat",
}

func indicatorTable(t *testing.T) *engine.Table {
	t.Helper()
	columns := []string{"Kode", "Provinsi", "Cluster", "Air Minum Layak (%)", "Keterangan"}
	var rows [][]string
	for i, p := range provinces {
		rows = append(rows, []string{
			fmt.Sprintf("%d", 1100+i*100),
			p,
			fmt.Sprintf("%d", i%3+1),
			fmt.Sprintf("%d.%d", 70+i, i),
			"",
		})
	}
	table, err := engine.NewTable(columns, rows)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

func mustColumn(t *testing.T, config *Config, header string) ColumnMeta {
	t.Helper()
	col, ok := config.Column(header)
	if !ok {
		t.Fatalf("column %q not discovered", header)
	}
	return col
}

func TestDiscoverIndicatorTable(t *testing.T) {
	config, err := Discover(indicatorTable(t))
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if config.Rows != len(provinces) {
		t.Errorf("rows = %d, want %d", config.Rows, len(provinces))
	}

	cluster := mustColumn(t, config, "Cluster")
	if cluster.Kind != KindNumeric || cluster.Role != RoleDimension || !cluster.Filterable {
		t.Errorf("Cluster should be a filterable numeric dimension, got %+v", cluster)
	}

	air := mustColumn(t, config, "Air Minum Layak (%)")
	if air.Kind != KindNumeric || air.Role != RoleMeasure || !air.HasDecimals {
		t.Errorf("Air Minum Layak should be a decimal measure, got %+v", air)
	}
	if air.Key != "air_minum_layak_(%)" {
		t.Errorf("unexpected key %q", air.Key)
	}

	prov := mustColumn(t, config, "Provinsi")
	if prov.Kind != KindText || prov.Role != RoleIdentifier {
		t.Errorf("Provinsi (unique per row, >10 rows) should be an identifier, got %+v", prov)
	}

	empty := mustColumn(t, config, "Keterangan")
	if empty.NullCount != len(provinces) {
		t.Errorf("Keterangan null count = %d", empty.NullCount)
	}

	want := []string{"Kode", "Cluster", "Air Minum Layak (%)"}
	if diff := cmp.Diff(want, config.NumericColumns()); diff != "" {
		t.Errorf("numeric columns (-want +got):\n%s", diff)
	}
}

func TestDiscoverSampleSize(t *testing.T) {
	config, err := Discover(indicatorTable(t), DiscoverOptions{SampleSize: 3, Name: "Indikator"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if config.Name != "Indikator" {
		t.Errorf("name = %q", config.Name)
	}
	prov := mustColumn(t, config, "Provinsi")
	if prov.UniqueCount != 3 {
		t.Errorf("sampled unique count = %d, want 3", prov.UniqueCount)
	}
}

func TestDiscoverNoColumns(t *testing.T) {
	table, err := engine.NewTable(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Discover(table); err == nil {
		t.Error("expected error for dataset without columns")
	}
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Provinsi":         "provinsi",
		"Air Minum Layak":  "air_minum_layak",
		"storyPoints":      "story_points",
		"Sanitasi - Layak": "sanitasi_layak",
		"  Cluster ":       "cluster",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
