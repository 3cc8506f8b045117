package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// Load errors. A missing or malformed catalog is not fatal to resolution:
// callers receive an empty Catalog alongside the error and the matching
// pipeline degrades to heuristic-only behavior.
var (
	ErrCatalogNotFound = errors.New("catalog file not found")
	ErrCatalogEmpty    = errors.New("catalog contains no titles")
)

// catalogRow is one record of the catalog file: a single quoted title
// per row, header row first.
type catalogRow struct {
	Title string `csv:"title"`
}

func init() {
	// Catalog files come from scraped exports with occasional sloppy
	// quoting and trailing columns; be lenient rather than dropping the
	// whole file over one record.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.LazyQuotes = true
		r.FieldsPerRecord = -1
		return r
	})
}

// Load reads the reference catalog from path. The first row is a header
// and is skipped. On any failure it returns an empty (non-nil) Catalog
// together with the error so the pipeline can continue degraded.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newCatalog(nil), ErrCatalogNotFound
		}
		return newCatalog(nil), fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads catalog records from r. Exposed separately so tests and
// embedded catalogs can bypass the filesystem.
func Parse(r io.Reader) (*Catalog, error) {
	var rows []catalogRow
	if err := gocsv.UnmarshalWithoutHeaders(r, &rows); err != nil {
		return newCatalog(nil), fmt.Errorf("parsing catalog: %w", err)
	}

	// First record is the header row.
	if len(rows) > 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return newCatalog(nil), ErrCatalogEmpty
	}

	titles := make([]string, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, row.Title)
	}
	return newCatalog(titles), nil
}
