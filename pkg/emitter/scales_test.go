package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvsql/vvsql/pkg/vizmodel"
)

func TestLowerScale_LimitsBecomeDomain(t *testing.T) {
	sc := vizmodel.Scale{
		Properties: map[string]any{"limits": []any{0.0, 100.0}},
	}
	scale, _ := lowerScale(sc, "x")
	assert.Equal(t, []any{0.0, 100.0}, scale.values["domain"])
}

func TestLowerScale_BreaksBecomeAxisValues(t *testing.T) {
	sc := vizmodel.Scale{
		Properties: map[string]any{"breaks": []any{1.0, 2.0, 3.0}},
	}
	_, axis := lowerScale(sc, "x")
	assert.Equal(t, []any{1.0, 2.0, 3.0}, axis.values["values"])
}

func TestLowerScale_KnownVegaLiteSchemeUsesScheme(t *testing.T) {
	sc := vizmodel.Scale{
		Properties: map[string]any{"palette": "viridis"},
	}
	scale, _ := lowerScale(sc, "color")
	assert.Equal(t, "viridis", scale.values["scheme"])
	assert.NotContains(t, scale.values, "range")
}

func TestLowerScale_ShapePaletteUsesRange(t *testing.T) {
	sc := vizmodel.Scale{
		Properties: map[string]any{"palette": "shapes"},
	}
	scale, _ := lowerScale(sc, "shape")
	assert.Equal(t, shapes, scale.values["range"])
}

func TestLowerScale_LogTypeSetsBase(t *testing.T) {
	sc := vizmodel.Scale{ScaleType: vizmodel.ScaleLog2, HasScaleType: true}
	scale, _ := lowerScale(sc, "y")
	assert.Equal(t, "log", scale.values["type"])
	assert.Equal(t, 2, scale.values["base"])
}

func TestVlFieldTypeForScaleType(t *testing.T) {
	cases := map[vizmodel.ScaleType]string{
		vizmodel.ScaleLinear:  "quantitative",
		vizmodel.ScaleOrdinal: "nominal",
		vizmodel.ScaleDate:    "temporal",
		vizmodel.ScaleViridis: "nominal",
	}
	for st, want := range cases {
		got, ok := vlFieldTypeForScaleType(st)
		assert.True(t, ok, st)
		assert.Equal(t, want, got, st)
	}
}
