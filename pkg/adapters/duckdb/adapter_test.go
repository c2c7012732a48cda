package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvsql/vvsql/pkg/tableio"
)

func TestSupports(t *testing.T) {
	a := New()
	cases := map[string]bool{
		"":                  true,
		"memory":            true,
		":memory:":          true,
		"duckdb://memory":   true,
		"duckdb:///x.db":    true,
		"postgres://host/db": false,
	}
	for uri, want := range cases {
		assert.Equal(t, want, a.Supports("SELECT 1", uri), uri)
	}
}

func TestParseConnectionURI_PathAndParams(t *testing.T) {
	path, params := parseConnectionURI("duckdb:///data/warehouse.db?extension=httpfs&extension=json&setting.memory_limit=4GB")
	assert.Equal(t, "/data/warehouse.db", path)
	assert.ElementsMatch(t, []string{"httpfs", "json"}, params.Extensions)
	assert.Equal(t, "4GB", params.Settings["memory_limit"])
}

func TestParseConnectionURI_MemoryVariants(t *testing.T) {
	for _, uri := range []string{"", "memory", ":memory:", "duckdb://memory"} {
		path, _ := parseConnectionURI(uri)
		assert.Equal(t, "", path, uri)
	}
}

func TestLogicalType(t *testing.T) {
	cases := map[string]tableio.LogicalType{
		"VARCHAR":         tableio.TypeString,
		"BIGINT":          tableio.TypeInteger,
		"DOUBLE":          tableio.TypeFloat,
		"BOOLEAN":         tableio.TypeBoolean,
		"DATE":            tableio.TypeDate,
		"TIME":            tableio.TypeTime,
		"TIMESTAMP":       tableio.TypeDatetime,
		"TIMESTAMP WITH TIME ZONE": tableio.TypeDatetime,
		"BLOB":            tableio.TypeUnknown,
	}
	for dbType, want := range cases {
		assert.Equal(t, want, logicalType(dbType), dbType)
	}
}

func TestSnippetTruncatesLongQueries(t *testing.T) {
	long := ""
	for i := 0; i < 500; i++ {
		long += "a"
	}
	s := snippet(long)
	assert.LessOrEqual(t, len(s), 210)
	assert.Contains(t, s, "...")
}
