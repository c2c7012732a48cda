// Package fileset preloads on-disk CSV, Parquet, and JSON files into a
// DuckDB instance as named tables, the way original_source preloads
// penguins.parquet at startup (original_source/src/reader/data.rs) so a
// query's data portion can name it as an ordinary table.
package fileset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvsql/vvsql/pkg/adapters/duckdb"
	"github.com/vvsql/vvsql/pkg/vzerr"
)

// Format is the on-disk file format a Preloader knows how to read.
type Format string

// Recognized Format values.
const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatJSON    Format = "json"
)

// DetectFormat infers a Format from a file's extension.
func DetectFormat(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, true
	case ".parquet":
		return FormatParquet, true
	case ".json", ".ndjson", ".jsonl":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Preloader materializes files as tables in a shared DuckDB connection.
type Preloader struct {
	adapter *duckdb.Adapter
}

// NewPreloader wraps a DuckDB adapter for use as a file preloader.
func NewPreloader(adapter *duckdb.Adapter) *Preloader {
	return &Preloader{adapter: adapter}
}

// Preload creates or replaces a table named alias in connectionURI's
// DuckDB instance, backed by the file at path. The file format is
// inferred from its extension unless format is non-empty.
func (p *Preloader) Preload(ctx context.Context, connectionURI, alias, path string, format Format) error {
	if format == "" {
		f, ok := DetectFormat(path)
		if !ok {
			return vzerr.IO(fmt.Errorf("cannot infer file format for %q; pass an explicit format", path))
		}
		format = f
	}

	reader, ok := readerExpr(format, path)
	if !ok {
		return vzerr.IO(fmt.Errorf("unsupported preload format %q", format))
	}

	stmt := fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM %s", quoteIdent(alias), reader)
	return p.adapter.Exec(ctx, connectionURI, stmt)
}

// PreloadDir loads every recognized file directly under dir as a table
// named after its file stem (spec.md §6: "file stem becomes table name"),
// skipping subdirectories and files whose extension DetectFormat doesn't
// recognize.
func PreloadDir(ctx context.Context, p *Preloader, connectionURI, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return vzerr.IO(fmt.Errorf("read preload directory %q: %w", dir, err))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, ok := DetectFormat(path); !ok {
			continue
		}
		alias := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if err := p.Preload(ctx, connectionURI, alias, path, ""); err != nil {
			return err
		}
	}
	return nil
}

func readerExpr(format Format, path string) (string, bool) {
	quoted := quoteLiteral(path)
	switch format {
	case FormatCSV:
		return fmt.Sprintf("read_csv_auto(%s, header=true)", quoted), true
	case FormatParquet:
		return fmt.Sprintf("read_parquet(%s)", quoted), true
	case FormatJSON:
		return fmt.Sprintf("read_json_auto(%s)", quoted), true
	default:
		return "", false
	}
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
