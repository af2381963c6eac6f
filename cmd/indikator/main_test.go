package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCSV = `Provinsi,Cluster,Air Minum Layak (%)
Aceh,1,88.1
Bali,2,97.4
Papua,3,60.2
Jawa Barat,2,91.0
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "indikator.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func assertNotContains(t *testing.T, out string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(out, w) {
			t.Errorf("output should not contain %q:\n%s", w, out)
		}
	}
}

func TestShowFiltersByProvinsi(t *testing.T) {
	out, err := run(t, "show", "--file", writeDataset(t), "--provinsi", "Bali")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out, "Data Indikator (Provinsi: Bali)", "97.4", "1 rows")
	assertNotContains(t, out, "Aceh", "Papua")
}

func TestShowLimit(t *testing.T) {
	out, err := run(t, "show", "--file", writeDataset(t), "--limit", "2")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out, "Aceh", "Bali", "2 of 4 rows")
	assertNotContains(t, out, "Papua")
}

func TestShowRejectsBadCluster(t *testing.T) {
	if _, err := run(t, "show", "--file", writeDataset(t), "--cluster", "dua"); err == nil {
		t.Fatal("expected an error for a non-numeric cluster")
	}
}

func TestChoices(t *testing.T) {
	out, err := run(t, "choices", "--file", writeDataset(t))
	if err != nil {
		t.Fatalf("choices failed: %v", err)
	}
	assertContains(t, out,
		"Provinsi: Semua, Aceh, Bali, Jawa Barat, Papua\n",
		"Cluster: Semua, 1, 2, 3\n",
	)
}

func TestExportCSV(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	if _, err := run(t, "export", "csv", "--file", writeDataset(t), "--cluster", "2", "--out", dest); err != nil {
		t.Fatalf("export csv failed: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	want := "Provinsi,Cluster,Air Minum Layak (%)\nBali,2,97.4\nJawa Barat,2,91.0\n"
	if string(got) != want {
		t.Errorf("csv = %q, want %q", got, want)
	}
}

func TestExportCSVStdout(t *testing.T) {
	out, err := run(t, "export", "csv", "--file", writeDataset(t), "--provinsi", "Aceh", "--out", "-")
	if err != nil {
		t.Fatalf("export csv failed: %v", err)
	}
	if out != "Provinsi,Cluster,Air Minum Layak (%)\nAceh,1,88.1\n" {
		t.Errorf("unexpected csv %q", out)
	}
}

func TestExportPDF(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")
	if _, err := run(t, "export", "pdf", "--file", writeDataset(t), "--title", "Uji", "--out", dest); err != nil {
		t.Fatalf("export pdf failed: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF-")) {
		t.Errorf("output is not a PDF")
	}
}

func TestExportPDFEmptySelection(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")
	if _, err := run(t, "export", "pdf", "--file", writeDataset(t), "--provinsi", "Maluku", "--out", dest); err != nil {
		t.Fatalf("export pdf of an empty selection failed: %v", err)
	}
	if info, err := os.Stat(dest); err != nil || info.Size() == 0 {
		t.Errorf("expected a non-empty document, got %v", err)
	}
}

func TestEnvironmentFillsFlags(t *testing.T) {
	t.Setenv("INDIKATOR_FILE", writeDataset(t))
	t.Setenv("INDIKATOR_PROVINSI", "Papua")

	out, err := run(t, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out, "Papua")
	assertNotContains(t, out, "Aceh")
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("INDIKATOR_PROVINSI", "Papua")

	out, err := run(t, "show", "--file", writeDataset(t), "--provinsi", "Aceh")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out, "Aceh")
	assertNotContains(t, out, "Papua")
}

func TestConfigFile(t *testing.T) {
	dataset := writeDataset(t)
	config := filepath.Join(t.TempDir(), "indikator.yaml")
	body := "file: " + dataset + "\ncluster: 3\n"
	if err := os.WriteFile(config, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "show", "--config", config)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out, "Papua", "1 rows")
	assertNotContains(t, out, "Bali")
}

func TestMissingConfigFile(t *testing.T) {
	if _, err := run(t, "show", "--config", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, err := run(t, "show", "--file", writeDataset(t), "--log-level", "loud"); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "indikator "+version+"\n" {
		t.Errorf("version output %q", out)
	}
}
