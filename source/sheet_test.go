package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// ============================================================================
// FETCHER TESTS
// ============================================================================

const indicatorCSV = "Provinsi,Cluster,Air Minum Layak (%)\nAceh,1,88.1\nBali,2,97.4\n"

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "indikator-test" {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte(indicatorCSV))
	}))
	defer srv.Close()

	f := NewFetcher(Config{URL: srv.URL, UserAgent: "indikator-test"}, quietLogger())
	table, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("rows = %d, want 2", table.Len())
	}
	if table.ColumnIndex("Cluster") != 1 {
		t.Errorf("Cluster column index = %d", table.ColumnIndex("Cluster"))
	}
}

func TestFetchURLLatin1(t *testing.T) {
	// Body is ISO-8859-1; the cell must come back as UTF-8.
	body := []byte("Provinsi,Keterangan\nAceh,Caf\xe9\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=iso-8859-1")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	table, err := NewFetcher(Config{URL: srv.URL}, quietLogger()).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got := table.Value(0, 1); got != "Café" {
		t.Errorf("decoded cell = %q, want %q", got, "Café")
	}
}

func TestFetchURLStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sheet not published", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher(Config{URL: srv.URL}, quietLogger()).Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestFetchURLCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(indicatorCSV))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFetcher(Config{URL: srv.URL}, quietLogger()).Fetch(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(indicatorCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := NewFetcher(Config{Path: path, URL: "http://unused.invalid"}, quietLogger()).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("rows = %d, want 2", table.Len())
	}
}

func TestFetchFileMissing(t *testing.T) {
	_, err := NewFetcher(Config{Path: filepath.Join(t.TempDir(), "nope.csv")}, quietLogger()).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewFetcherDefaults(t *testing.T) {
	f := NewFetcher(Config{}, nil)
	if f.config.URL != DefaultSheetURL {
		t.Errorf("default URL = %q", f.config.URL)
	}
	if f.client.Timeout <= 0 {
		t.Error("default timeout should be positive")
	}
}
