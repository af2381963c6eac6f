package helpers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spektr-org/indikator/engine"
)

// ============================================================================
// CSV + DISPLAY TESTS
// ============================================================================

var sheetCSV = []byte("\ufeffProvinsi, Cluster ,Air Minum Layak (%)\n" +
	"Aceh,1,88.1\n" +
	"\"Nusa Tenggara Barat\",2,\"90,5\"\n" +
	"Papua,3\n")

func TestParseCSV(t *testing.T) {
	table, err := ParseCSVBytes(sheetCSV)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Provinsi", "Cluster", "Air Minum Layak (%)"}, table.Columns()); diff != "" {
		t.Errorf("headers (-want +got):\n%s", diff)
	}
	if table.Len() != 3 {
		t.Fatalf("rows = %d, want 3", table.Len())
	}
	if got := table.Value(1, 2); got != "90,5" {
		t.Errorf("quoted cell = %q", got)
	}
	if got := table.Value(2, 2); got != "" {
		t.Errorf("short row should be padded, got %q", got)
	}
}

func TestParseCSVEmpty(t *testing.T) {
	if _, err := ParseCSVBytes(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	table, err := ParseCSVBytes([]byte("Provinsi,Cluster\n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if table.Len() != 0 || len(table.Columns()) != 2 {
		t.Errorf("unexpected table shape: %d rows, %d cols", table.Len(), len(table.Columns()))
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	table, err := ParseCSVBytes(sheetCSV)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "Provinsi,Cluster,Air Minum Layak (%)\n" +
		"Aceh,1,88.1\n" +
		"Nusa Tenggara Barat,2,\"90,5\"\n" +
		"Papua,3,\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("CSV output (-want +got):\n%s", diff)
	}
}

func TestWriteCSVFilteredView(t *testing.T) {
	table, err := ParseCSVBytes(sheetCSV)
	if err != nil {
		t.Fatal(err)
	}
	view, err := engine.ApplyFilters(table, engine.Filters{}.Set("Provinsi", "Papua"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, view); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("expected header + 1 row, got %d lines", got)
	}
}

func TestRenderTable(t *testing.T) {
	table, err := ParseCSVBytes(sheetCSV)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	RenderTable(&buf, engine.BuildTable("Data Indikator", table, 2))
	out := buf.String()

	for _, want := range []string{"Data Indikator", "Provinsi", "Air Minum Layak (%)", "Aceh", "2 of 3 rows"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Papua") {
		t.Errorf("row beyond limit rendered:\n%s", out)
	}
}
