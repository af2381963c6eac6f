package source

import (
	"time"
)

// ============================================================================
// SOURCE: Where the Record Set comes from
// ============================================================================
// A published spreadsheet fetched as CSV over HTTP, or a local CSV file.
// This is the ONLY package that performs I/O against the outside world.
// ============================================================================

// DefaultSheetURL is the published indicator sheet.
const DefaultSheetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSbaeltz8dJKOJ5zUt4FqggdFZPPqfFiJAiIVnS8zdLhbAPQjK1LGQWoqAO0WAYlaiOG2EeUfB32EMI/pub?output=csv"

// Config holds fetch configuration.
type Config struct {
	URL       string        // Published CSV URL (empty = DefaultSheetURL)
	Path      string        // Local CSV file; takes precedence over URL
	Timeout   time.Duration // HTTP timeout (0 = 30s)
	UserAgent string        // Sent with HTTP requests
}

// DefaultConfig returns a Config reading the published indicator sheet.
func DefaultConfig() Config {
	return Config{
		URL:       DefaultSheetURL,
		Timeout:   30 * time.Second,
		UserAgent: "indikator",
	}
}
