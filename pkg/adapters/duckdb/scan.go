package duckdb

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vvsql/vvsql/pkg/tableio"
)

// scanRows drains rows into a tableio.Table, inferring each column's
// LogicalType from DuckDB's reported database type name.
func scanRows(rows *sql.Rows) (*tableio.Table, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("read column types: %w", err)
	}

	table := &tableio.Table{Columns: make([]tableio.Column, len(colTypes))}
	for i, ct := range colTypes {
		table.Columns[i] = tableio.Column{Name: ct.Name(), Type: logicalType(ct.DatabaseTypeName())}
	}

	scanDest := make([]any, len(colTypes))
	scanPtrs := make([]any, len(colTypes))
	for i := range scanDest {
		scanPtrs[i] = &scanDest[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanPtrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make([]any, len(colTypes))
		for i, col := range table.Columns {
			row[i] = normalizeValue(col.Type, scanDest[i])
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return table, nil
}

// logicalType maps DuckDB's DATABASE_TYPE_NAME to a tableio.LogicalType.
func logicalType(dbType string) tableio.LogicalType {
	t := strings.ToUpper(dbType)
	switch {
	case strings.Contains(t, "TIMESTAMP"):
		return tableio.TypeDatetime
	case t == "DATE":
		return tableio.TypeDate
	case t == "TIME":
		return tableio.TypeTime
	case strings.Contains(t, "BOOL"):
		return tableio.TypeBoolean
	case containsAny(t, "INT", "HUGEINT", "SERIAL"):
		return tableio.TypeInteger
	case containsAny(t, "FLOAT", "DOUBLE", "DECIMAL", "NUMERIC", "REAL"):
		return tableio.TypeFloat
	case containsAny(t, "VARCHAR", "CHAR", "TEXT", "STRING", "UUID", "ENUM"):
		return tableio.TypeString
	default:
		return tableio.TypeUnknown
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// normalizeValue renders a scanned driver value into the shape the rest of
// the pipeline expects: temporal columns as ISO-8601 strings, everything
// else passed through as-is (spec.md §4.5).
func normalizeValue(t tableio.LogicalType, v any) any {
	if v == nil {
		return nil
	}
	switch t {
	case tableio.TypeDate, tableio.TypeDatetime, tableio.TypeTime:
		if ts, ok := asTime(v); ok {
			return tableio.NormalizeTemporal(t, ts)
		}
	}
	return v
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	default:
		return time.Time{}, false
	}
}
