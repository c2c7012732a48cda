package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvsql/vvsql/pkg/split"
)

func TestSplit_EmptyQuery(t *testing.T) {
	res, err := split.Split("   ")
	require.NoError(t, err)
	assert.Empty(t, res.SQL)
	assert.Empty(t, res.Viz)
}

func TestSplit_NoVisualiseIsAllSQL(t *testing.T) {
	res, err := split.Split("SELECT * FROM penguins")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM penguins", res.SQL)
	assert.Empty(t, res.Viz)
}

func TestSplit_BasicBoundary(t *testing.T) {
	q := "SELECT * FROM penguins VISUALISE AS PLOT WITH point USING x = a, y = b"
	res, err := split.Split(q)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM penguins", res.SQL)
	assert.Equal(t, "VISUALISE AS PLOT WITH point USING x = a, y = b", res.Viz)
}

func TestSplit_IgnoresKeywordInsideStringLiteral(t *testing.T) {
	q := `SELECT 'VISUALISE AS is not a keyword here' AS note VISUALISE AS TABLE`
	res, err := split.Split(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT 'VISUALISE AS is not a keyword here' AS note`, res.SQL)
	assert.Equal(t, "VISUALISE AS TABLE", res.Viz)
}

func TestSplit_IgnoresKeywordInsideLineComment(t *testing.T) {
	q := "SELECT * FROM t -- VISUALISE AS PLOT (not real)\nVISUALISE AS TABLE"
	res, err := split.Split(q)
	require.NoError(t, err)
	assert.Contains(t, res.SQL, "SELECT * FROM t")
	assert.Equal(t, "VISUALISE AS TABLE", res.Viz)
}

func TestSplit_IgnoresKeywordInsideBlockComment(t *testing.T) {
	q := "SELECT 1 /* VISUALISE AS PLOT */ VISUALISE AS TABLE"
	res, err := split.Split(q)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 /* VISUALISE AS PLOT */", res.SQL)
	assert.Equal(t, "VISUALISE AS TABLE", res.Viz)
}

func TestSplit_VisualiseFromStandaloneInjection(t *testing.T) {
	res, err := split.Split("VISUALISE FROM penguins AS PLOT WITH point USING x = a, y = b")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM penguins", res.SQL)
	assert.Contains(t, res.Viz, "VISUALISE FROM penguins AS PLOT")
}

func TestSplit_VisualiseFromAfterWithInjection(t *testing.T) {
	q := "WITH sales AS (SELECT * FROM raw) VISUALISE FROM sales AS PLOT WITH bar USING x = region, y = total"
	res, err := split.Split(q)
	require.NoError(t, err)
	assert.Equal(t, "WITH sales AS (SELECT * FROM raw) SELECT * FROM sales", res.SQL)
}

func TestSplit_VisualiseFromAfterNonWithSQLIsError(t *testing.T) {
	q := "SELECT * FROM raw VISUALISE FROM raw AS PLOT WITH point USING x = a, y = b"
	_, err := split.Split(q)
	require.Error(t, err)
}

func TestSplit_VisualiseFromQuotedFilePath(t *testing.T) {
	res, err := split.Split("VISUALISE FROM 'penguins.parquet' AS PLOT WITH point USING x = a, y = b")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM 'penguins.parquet'", res.SQL)
}

func TestSplit_MultipleVisualiseBlocks(t *testing.T) {
	q := "SELECT * FROM t VISUALISE AS PLOT WITH point USING x = a, y = b VISUALISE AS TABLE"
	res, err := split.Split(q)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t", res.SQL)
	assert.Contains(t, res.Viz, "VISUALISE AS PLOT")
	assert.Contains(t, res.Viz, "VISUALISE AS TABLE")
}

func TestSplit_TrimsTrailingSemicolon(t *testing.T) {
	res, err := split.Split("SELECT * FROM t; VISUALISE AS TABLE")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t", res.SQL)
}
