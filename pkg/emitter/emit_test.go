package emitter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvsql/vvsql/pkg/tableio"
	"github.com/vvsql/vvsql/pkg/vizparser"
)

func revenueTable() *tableio.Table {
	return &tableio.Table{
		Columns: []tableio.Column{
			{Name: "d", Type: tableio.TypeDate},
			{Name: "r", Type: tableio.TypeInteger},
		},
		Rows: [][]any{
			{"2024-01-01", 0},
			{"2024-01-02", 10},
		},
	}
}

func unmarshalDoc(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

// S1 — Single line, temporal x.
func TestEmit_S1_SingleLineTemporalX(t *testing.T) {
	specs, err := vizparser.Compile(`VISUALISE AS PLOT WITH line USING x=d,y=r SCALE x USING type='date'`)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	res, err := Emit(specs[0], revenueTable(), nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	require.Equal(t, "line", m["mark"])
	encoding := m["encoding"].(map[string]any)
	x := encoding["x"].(map[string]any)
	require.Equal(t, "d", x["field"])
	require.Equal(t, "temporal", x["type"])
	y := encoding["y"].(map[string]any)
	require.Equal(t, "r", y["field"])
	require.Equal(t, "quantitative", y["type"])

	require.Equal(t, 2, res.Metadata.Rows)
	require.Equal(t, []string{"d", "r"}, res.Metadata.Columns)
	require.Equal(t, "PLOT", res.Metadata.VizType)
	require.Equal(t, 1, res.Metadata.Layers)
}

func TestEmit_CategoricalColorGetsDefaultPaletteRange(t *testing.T) {
	table := &tableio.Table{
		Columns: []tableio.Column{
			{Name: "d", Type: tableio.TypeDate},
			{Name: "r", Type: tableio.TypeInteger},
			{Name: "region", Type: tableio.TypeString},
		},
		Rows: [][]any{
			{"2024-01-01", 0, "East"},
			{"2024-01-02", 10, "West"},
		},
	}

	specs, err := vizparser.Compile(`VISUALISE AS PLOT WITH line USING x=d,y=r,color=region`)
	require.NoError(t, err)

	res, err := Emit(specs[0], table, nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	encoding := m["encoding"].(map[string]any)
	color := encoding["color"].(map[string]any)
	require.Equal(t, "nominal", color["type"])
	scale := color["scale"].(map[string]any)
	require.Equal(t, DefaultColorPalette(), toStringSlice(scale["range"]))
}

func toStringSlice(v any) []string {
	raw := v.([]any)
	out := make([]string, len(raw))
	for i, e := range raw {
		out[i] = e.(string)
	}
	return out
}

// S2 — Multi-layer with labels.
func TestEmit_S2_MultiLayerWithLabels(t *testing.T) {
	src := `VISUALISE AS PLOT
WITH line USING x=d,y=r
WITH point USING x=d,y=r
LABEL x='Date', y='Revenue'`
	specs, err := vizparser.Compile(src)
	require.NoError(t, err)

	res, err := Emit(specs[0], revenueTable(), nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	layers := m["layer"].([]any)
	require.Len(t, layers, 2)

	marks := []string{}
	for _, l := range layers {
		ld := l.(map[string]any)
		marks = append(marks, ld["mark"].(string))
		encoding := ld["encoding"].(map[string]any)
		require.Equal(t, "Date", encoding["x"].(map[string]any)["title"])
		require.Equal(t, "Revenue", encoding["y"].(map[string]any)["title"])
	}
	require.ElementsMatch(t, []string{"line", "point"}, marks)
}

// S3 — Facet wrap, free_y.
func TestEmit_S3_FacetWrapFreeY(t *testing.T) {
	src := `VISUALISE AS PLOT WITH point USING x=d,y=r FACET WRAP region USING scales='free_y'`
	specs, err := vizparser.Compile(src)
	require.NoError(t, err)

	table := &tableio.Table{
		Columns: []tableio.Column{
			{Name: "d", Type: tableio.TypeDate},
			{Name: "r", Type: tableio.TypeInteger},
			{Name: "region", Type: tableio.TypeString},
		},
		Rows: [][]any{{"2024-01-01", 0, "west"}},
	}

	res, err := Emit(specs[0], table, nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	facet := m["facet"].(map[string]any)
	require.Equal(t, "region", facet["field"])
	require.Equal(t, "nominal", facet["type"])

	resolve := m["resolve"].(map[string]any)
	scale := resolve["scale"].(map[string]any)
	require.Equal(t, "independent", scale["y"])
	require.NotContains(t, scale, "x")

	require.Contains(t, m, "spec")
}

// S4 — Coord flip preserves labels.
func TestEmit_S4_CoordFlipPreservesLabels(t *testing.T) {
	src := `VISUALISE AS PLOT WITH bar USING x=category,y=value COORD flip LABEL x='Category', y='Count'`
	specs, err := vizparser.Compile(src)
	require.NoError(t, err)

	table := &tableio.Table{
		Columns: []tableio.Column{
			{Name: "category", Type: tableio.TypeString},
			{Name: "value", Type: tableio.TypeInteger},
		},
		Rows: [][]any{{"a", 1}},
	}

	res, err := Emit(specs[0], table, nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	encoding := m["encoding"].(map[string]any)
	x := encoding["x"].(map[string]any)
	require.Equal(t, "category", x["field"])
	require.Equal(t, "Category", x["title"])
	y := encoding["y"].(map[string]any)
	require.Equal(t, "value", y["field"])
	require.Equal(t, "Count", y["title"])

	mark := m["mark"].(map[string]any)
	require.Equal(t, "bar", mark["type"])
	require.Equal(t, "horizontal", mark["orient"])
}

// S6 — Reversed xlim normalized.
func TestEmit_S6_ReversedXlimNormalized(t *testing.T) {
	src := `VISUALISE AS PLOT WITH point USING x=d,y=r COORD cartesian USING xlim=[100,0]`
	specs, err := vizparser.Compile(src)
	require.NoError(t, err)

	table := &tableio.Table{
		Columns: []tableio.Column{
			{Name: "d", Type: tableio.TypeInteger},
			{Name: "r", Type: tableio.TypeInteger},
		},
		Rows: [][]any{{1, 2}},
	}

	res, err := Emit(specs[0], table, nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	encoding := m["encoding"].(map[string]any)
	x := encoding["x"].(map[string]any)
	scale := x["scale"].(map[string]any)
	domain := scale["domain"].([]any)
	require.Equal(t, []any{float64(0), float64(100)}, domain)
}

func TestEmit_LiteralAestheticEmitsValueNoFieldType(t *testing.T) {
	specs, err := vizparser.Compile(`VISUALISE AS PLOT WITH point USING x=d,y=r,color='steelblue'`)
	require.NoError(t, err)

	res, err := Emit(specs[0], revenueTable(), nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	encoding := m["encoding"].(map[string]any)
	color := encoding["color"].(map[string]any)
	require.Equal(t, "steelblue", color["value"])
	require.NotContains(t, color, "field")
	require.NotContains(t, color, "type")
}

func TestEmit_UnknownGeomFallsBackToPointWithWarning(t *testing.T) {
	// The grammar accepts any bare identifier as a geom name; only the
	// emitter judges it unknown.
	specs, err := vizparser.Compile(`VISUALISE AS PLOT WITH blob USING x=d,y=r`)
	require.NoError(t, err)

	res, err := Emit(specs[0], revenueTable(), nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	require.Equal(t, "point", m["mark"])
	require.NotEmpty(t, res.Metadata.Warnings)
}

func TestEmit_DocumentHasFixedDefaults(t *testing.T) {
	specs, err := vizparser.Compile(`VISUALISE AS PLOT WITH point USING x=d,y=r`)
	require.NoError(t, err)

	res, err := Emit(specs[0], revenueTable(), nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	require.Equal(t, vegaLiteSchema, m["$schema"])
	require.Equal(t, float64(600), m["width"])
	autosize := m["autosize"].(map[string]any)
	require.Equal(t, "fit", autosize["type"])
	require.Equal(t, "padding", autosize["contains"])

	values := m["data"].(map[string]any)["values"].([]any)
	require.Len(t, values, 2)
}

func TestEmit_ThemeDefaultsToMinimalForPlot(t *testing.T) {
	specs, err := vizparser.Compile(`VISUALISE AS PLOT WITH point USING x=d,y=r`)
	require.NoError(t, err)

	res, err := Emit(specs[0], revenueTable(), nil)
	require.NoError(t, err)

	m := unmarshalDoc(t, res.Document)
	require.Contains(t, m, "config")
}
