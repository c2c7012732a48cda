package vizql

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvsql/vvsql/pkg/adapters/duckdb"
	"github.com/vvsql/vvsql/pkg/tableio"
)

func TestParse_SplitsAndCompiles(t *testing.T) {
	res, err := Parse(`SELECT 1 AS x, 2 AS y VISUALISE AS PLOT WITH point USING x=x, y=y`)
	require.NoError(t, err)
	assert.Contains(t, res.SQLPortion, "SELECT 1")
	assert.NotEmpty(t, res.VizPortion)
	require.Len(t, res.Specs, 1)
}

func TestParse_NoVizPortionYieldsNoSpecs(t *testing.T) {
	res, err := Parse(`SELECT 1`)
	require.NoError(t, err)
	assert.Empty(t, res.VizPortion)
	assert.Empty(t, res.Specs)
}

func TestRun_EndToEndAgainstDuckDB(t *testing.T) {
	registry := tableio.NewRegistry(duckdb.New())

	query := `SELECT * FROM (VALUES (1, 10), (2, 20)) AS t(x, y) ` +
		`VISUALISE AS PLOT WITH line USING x=x, y=y`

	got, err := Run(context.Background(), registry, query, "duckdb://memory")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(got.Result.Document, &doc))
	assert.Equal(t, "line", doc["mark"])
	assert.Equal(t, 2, got.Result.Metadata.Rows)
}

func TestRun_NoVisualiseClauseIsModelError(t *testing.T) {
	registry := tableio.NewRegistry(duckdb.New())

	_, err := Run(context.Background(), registry, "SELECT 1", "duckdb://memory")
	assert.Error(t, err)
}

func TestRun_UnsupportedReaderIsBackendError(t *testing.T) {
	registry := tableio.NewRegistry(duckdb.New())

	query := `SELECT 1 AS x VISUALISE AS PLOT WITH point USING x=x, y=x`
	_, err := Run(context.Background(), registry, query, "mysql://nope")
	assert.Error(t, err)
}
