package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vvsql/vvsql/pkg/tableio"
)

// scanRows drains rows into a tableio.Table, inferring each column's
// LogicalType from Postgres's reported database type name.
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

func logicalType(dbType string) tableio.LogicalType {
	t := strings.ToUpper(dbType)
	switch {
	case strings.Contains(t, "TIMESTAMP"):
		return tableio.TypeDatetime
	case t == "DATE":
		return tableio.TypeDate
	case t == "TIME":
		return tableio.TypeTime
	case t == "BOOL":
		return tableio.TypeBoolean
	case containsAny(t, "INT2", "INT4", "INT8", "SERIAL"):
		return tableio.TypeInteger
	case containsAny(t, "FLOAT4", "FLOAT8", "NUMERIC", "DECIMAL"):
		return tableio.TypeFloat
	case containsAny(t, "VARCHAR", "TEXT", "BPCHAR", "UUID"):
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

func normalizeValue(t tableio.LogicalType, v any) any {
	if v == nil {
		return nil
	}
	if ts, ok := v.(time.Time); ok {
		switch t {
		case tableio.TypeDate, tableio.TypeDatetime, tableio.TypeTime:
			return tableio.NormalizeTemporal(t, ts)
		}
	}
	return v
}
