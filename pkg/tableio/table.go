// Package tableio defines the Data Adapter contract of spec.md §4.5: a
// uniform Table shape that every backend (DuckDB, Postgres, a preloaded
// file set) normalizes its results into before the Emitter ever sees them.
package tableio

// LogicalType is the column type the rest of the pipeline reasons about,
// independent of any backend's native type system.
type LogicalType string

// Recognized LogicalType values.
const (
	TypeString   LogicalType = "string"
	TypeInteger  LogicalType = "integer"
	TypeFloat    LogicalType = "float"
	TypeBoolean  LogicalType = "boolean"
	TypeDate     LogicalType = "date"
	TypeDatetime LogicalType = "datetime"
	TypeTime     LogicalType = "time"
	TypeUnknown  LogicalType = "unknown"
)

// Column describes one output column of a Table.
type Column struct {
	Name string
	Type LogicalType
}

// Table is the normalized result of running a data sub-language query
// against a backend. Every temporal value has already been rendered as an
// ISO-8601 string by the adapter that produced this Table (spec.md §4.5).
type Table struct {
	Columns []Column
	Rows    [][]any
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnType returns the logical type of the named column, or TypeUnknown
// if the table has no such column.
func (t *Table) ColumnType(name string) LogicalType {
	i := t.ColumnIndex(name)
	if i < 0 {
		return TypeUnknown
	}
	return t.Columns[i].Type
}

// Values returns every value in the named column, in row order, or nil if
// the table has no such column.
func (t *Table) Values(name string) []any {
	i := t.ColumnIndex(name)
	if i < 0 {
		return nil
	}
	out := make([]any, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out
}

// AsRecords renders the table as a slice of column-name-to-value maps, the
// shape the Emitter's "values" array and the HTTP API's JSON responses use.
func (t *Table) AsRecords() []map[string]any {
	records := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			rec[col.Name] = row[i]
		}
		records = append(records, rec)
	}
	return records
}
