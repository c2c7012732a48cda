package tableio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vvsql/vvsql/pkg/tableio"
)

func TestTable_ColumnIndexAndValues(t *testing.T) {
	tbl := &tableio.Table{
		Columns: []tableio.Column{{Name: "x", Type: tableio.TypeFloat}, {Name: "region", Type: tableio.TypeString}},
		Rows: [][]any{
			{1.0, "east"},
			{2.0, "west"},
		},
	}

	assert.Equal(t, 0, tbl.ColumnIndex("x"))
	assert.Equal(t, -1, tbl.ColumnIndex("missing"))
	assert.Equal(t, tableio.TypeFloat, tbl.ColumnType("x"))
	assert.Equal(t, tableio.TypeUnknown, tbl.ColumnType("missing"))
	assert.Equal(t, []any{1.0, 2.0}, tbl.Values("x"))
}

func TestTable_AsRecords(t *testing.T) {
	tbl := &tableio.Table{
		Columns: []tableio.Column{{Name: "a", Type: tableio.TypeInteger}},
		Rows:    [][]any{{1}, {2}},
	}
	records := tbl.AsRecords()
	assert.Equal(t, []map[string]any{{"a": 1}, {"a": 2}}, records)
}

func TestNormalizeTemporal(t *testing.T) {
	ts := time.Date(2024, 3, 15, 13, 45, 30, 500_000_000, time.UTC)
	assert.Equal(t, "2024-03-15", tableio.NormalizeTemporal(tableio.TypeDate, ts))
	assert.Equal(t, "2024-03-15T13:45:30.500Z", tableio.NormalizeTemporal(tableio.TypeTime, ts))
	assert.Equal(t, "2024-03-15T13:45:30.500Z", tableio.NormalizeTemporal(tableio.TypeDatetime, ts))
}
