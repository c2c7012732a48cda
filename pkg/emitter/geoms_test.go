package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvsql/vvsql/pkg/vizmodel"
)

func TestMarkFor_KnownGeoms(t *testing.T) {
	cases := map[vizmodel.Geom]string{
		vizmodel.GeomPoint:     "point",
		vizmodel.GeomLine:      "line",
		vizmodel.GeomBar:       "bar",
		vizmodel.GeomTile:      "rect",
		vizmodel.GeomSegment:   "rule",
		vizmodel.GeomHLine:     "rule",
		vizmodel.GeomVLine:     "rule",
		vizmodel.GeomHistogram: "bar",
		vizmodel.GeomDensity:   "area",
		vizmodel.GeomSmooth:    "line",
		vizmodel.GeomBoxplot:   "boxplot",
		vizmodel.GeomRibbon:    "area",
	}
	for geom, want := range cases {
		mark, warn := markFor(geom)
		assert.Equal(t, want, mark, geom)
		assert.Empty(t, warn, geom)
	}
}

func TestMarkFor_UnknownGeomWarns(t *testing.T) {
	mark, warn := markFor(vizmodel.Geom("nonsense"))
	assert.Equal(t, "point", mark)
	assert.NotEmpty(t, warn)
}

func TestApplyGeomExtras_HistogramAddsBinAndCount(t *testing.T) {
	channels := map[string]*doc{
		"x": func() *doc { d := newDoc(); d.set("field", "amount"); d.set("type", "quantitative"); return d }(),
	}
	applyGeomExtras(vizmodel.GeomHistogram, channels)

	assert.Equal(t, true, channels["x"].values["bin"])
	assert.Equal(t, "count", channels["y"].values["aggregate"])
}

func TestApplyGeomExtras_SmoothAddsRegressionTransform(t *testing.T) {
	channels := map[string]*doc{
		"x": func() *doc { d := newDoc(); d.set("field", "d"); return d }(),
		"y": func() *doc { d := newDoc(); d.set("field", "r"); return d }(),
	}
	transform := applyGeomExtras(vizmodel.GeomSmooth, channels)
	assert.Len(t, transform, 1)
}

func TestApplyGeomExtras_SmoothWithMissingAestheticDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		transform := applyGeomExtras(vizmodel.GeomSmooth, map[string]*doc{
			"x": func() *doc { d := newDoc(); d.set("field", "d"); return d }(),
		})
		assert.Nil(t, transform)
	})

	assert.NotPanics(t, func() {
		transform := applyGeomExtras(vizmodel.GeomSmooth, map[string]*doc{})
		assert.Nil(t, transform)
	})
}

func TestApplyGeomExtras_DensityWithMissingXDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		transform := applyGeomExtras(vizmodel.GeomDensity, map[string]*doc{})
		assert.Nil(t, transform)
	})
}
