// Package duckdb provides the default vvSQL Data Adapter, executing the
// data sub-language against an embedded DuckDB instance.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"sync"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/vvsql/vvsql/pkg/tableio"
	"github.com/vvsql/vvsql/pkg/vzerr"
)

func init() {
	tableio.Register("duckdb", func() tableio.Adapter { return New() })
}

// Adapter implements tableio.Adapter for DuckDB connection URIs of the
// form "duckdb://memory" (in-memory) or "duckdb:///absolute/path.db"
// (file-backed). A bare path with no scheme is also accepted.
type Adapter struct {
	mu  sync.Mutex
	dbs map[string]*sql.DB
}

// New creates an unconnected DuckDB adapter. Connections are opened lazily
// per distinct connection URI and cached for reuse.
func New() *Adapter {
	return &Adapter{dbs: make(map[string]*sql.DB)}
}

// Name implements tableio.Adapter.
func (a *Adapter) Name() string { return "duckdb" }

// Supports implements tableio.Adapter: any URI with the duckdb:// scheme,
// the bare tokens "memory"/":memory:", or an empty URI (defaulting to an
// in-memory instance) are accepted.
func (a *Adapter) Supports(_ string, connectionURI string) bool {
	uri := strings.TrimSpace(connectionURI)
	return uri == "" || strings.HasPrefix(uri, "duckdb://") || uri == "memory" || uri == ":memory:"
}

// Execute implements tableio.Adapter.
func (a *Adapter) Execute(ctx context.Context, dataText, connectionURI string) (*tableio.Table, error) {
	db, err := a.open(connectionURI)
	if err != nil {
		return nil, vzerr.Backend("duckdb", snippet(dataText), err)
	}

	rows, err := db.QueryContext(ctx, dataText)
	if err != nil {
		return nil, vzerr.Backend("duckdb", snippet(dataText), err)
	}
	defer func() { _ = rows.Close() }()

	table, err := scanRows(rows)
	if err != nil {
		return nil, vzerr.Backend("duckdb", snippet(dataText), err)
	}
	return table, nil
}

// Exec runs a statement that produces no rows (DDL, table preload) against
// the given connection. Used by pkg/adapters/fileset to materialize
// on-disk files as tables before a query runs.
func (a *Adapter) Exec(ctx context.Context, connectionURI, statement string) error {
	db, err := a.open(connectionURI)
	if err != nil {
		return vzerr.Backend("duckdb", snippet(statement), err)
	}
	if _, err := db.ExecContext(ctx, statement); err != nil {
		return vzerr.Backend("duckdb", snippet(statement), err)
	}
	return nil
}

// Close closes every cached connection.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var first error
	for _, db := range a.dbs {
		if err := db.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.dbs = make(map[string]*sql.DB)
	return first
}

func (a *Adapter) open(connectionURI string) (*sql.DB, error) {
	path, params := parseConnectionURI(connectionURI)

	a.mu.Lock()
	defer a.mu.Unlock()

	if db, ok := a.dbs[connectionURI]; ok {
		return db, nil
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb %q: %w", path, err)
	}
	if err := applyParams(db, params); err != nil {
		_ = db.Close()
		return nil, err
	}

	a.dbs[connectionURI] = db
	return db, nil
}

// parseConnectionURI splits a vvSQL connection URI into the DSN go-duckdb
// expects and the DuckDB-specific Params encoded in its query string, e.g.
// "duckdb:///data.db?extension=httpfs&setting.memory_limit=4GB".
func parseConnectionURI(connectionURI string) (string, Params) {
	uri := strings.TrimSpace(connectionURI)

	body, query, hasQuery := strings.Cut(uri, "?")

	path := body
	switch {
	case body == "", body == "memory", body == ":memory:", body == "duckdb://memory":
		path = ""
	case strings.HasPrefix(body, "duckdb://"):
		path = strings.TrimPrefix(body, "duckdb://")
	}

	params := Params{Settings: map[string]string{}}
	if !hasQuery {
		return path, params
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return path, params
	}
	params.Extensions = values["extension"]
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if name, ok := strings.CutPrefix(key, "setting."); ok {
			params.Settings[name] = vals[0]
		}
	}

	return path, params
}

// applyParams installs/loads requested extensions and applies session
// settings on a freshly opened connection.
func applyParams(db *sql.DB, params Params) error {
	for _, ext := range params.Extensions {
		if ext == "" {
			continue
		}
		if _, err := db.Exec(fmt.Sprintf("INSTALL %s; LOAD %s;", ext, ext)); err != nil {
			return fmt.Errorf("load duckdb extension %q: %w", ext, err)
		}
	}
	for name, value := range params.Settings {
		if _, err := db.Exec(fmt.Sprintf("SET %s = '%s';", name, value)); err != nil {
			return fmt.Errorf("apply duckdb setting %q: %w", name, err)
		}
	}
	return nil
}

func snippet(dataText string) string {
	const maxLen = 200
	s := strings.TrimSpace(dataText)
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

var _ tableio.Adapter = (*Adapter)(nil)
