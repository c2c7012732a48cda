package emitter

import "github.com/vvsql/vvsql/pkg/vizmodel"

// markFor implements spec.md §4.6's geom-to-mark lowering table. An unknown
// geom falls back to "point" and reports a non-fatal diagnostic.
func markFor(g vizmodel.Geom) (mark string, warning string) {
	switch g {
	case vizmodel.GeomPoint:
		return "point", ""
	case vizmodel.GeomLine:
		return "line", ""
	case vizmodel.GeomBar:
		return "bar", ""
	case vizmodel.GeomArea:
		return "area", ""
	case vizmodel.GeomTile:
		return "rect", ""
	case vizmodel.GeomText:
		return "text", ""
	case vizmodel.GeomSegment, vizmodel.GeomHLine, vizmodel.GeomVLine:
		return "rule", ""
	case vizmodel.GeomHistogram:
		return "bar", ""
	case vizmodel.GeomDensity:
		return "area", ""
	case vizmodel.GeomSmooth:
		return "line", ""
	case vizmodel.GeomBoxplot:
		return "boxplot", ""
	case vizmodel.GeomRibbon:
		return "area", ""
	default:
		return "point", "unknown geom " + string(g) + "; falling back to point mark"
	}
}

// orientableGeoms are the marks for which COORD FLIP is expressed as an
// explicit mark orient rather than a channel swap (see coord.go).
var orientableGeoms = map[vizmodel.Geom]bool{
	vizmodel.GeomBar:       true,
	vizmodel.GeomArea:      true,
	vizmodel.GeomHistogram: true,
	vizmodel.GeomBoxplot:   true,
	vizmodel.GeomRibbon:    true,
}

// applyGeomExtras adds the implicit bin/aggregate/transform behavior that
// spec.md §4.6 calls out for histogram, density, and smooth geoms.
func applyGeomExtras(g vizmodel.Geom, channels map[string]*doc) []any {
	switch g {
	case vizmodel.GeomHistogram:
		if x, ok := channels["x"]; ok {
			x.set("bin", true)
		}
		if _, ok := channels["y"]; !ok {
			y := newDoc()
			y.set("aggregate", "count")
			y.set("type", "quantitative")
			channels["y"] = y
		}
		return nil
	case vizmodel.GeomDensity:
		x, ok := channels["x"]
		if !ok {
			return nil
		}
		field, _ := x.values["field"].(string)
		if field == "" {
			return nil
		}
		transform := newDoc()
		transform.set("density", field)
		transform.set("as", []string{field, "density"})
		if _, ok := channels["y"]; !ok {
			y := newDoc()
			y.set("field", "density")
			y.set("type", "quantitative")
			channels["y"] = y
		}
		return []any{transform}
	case vizmodel.GeomSmooth:
		x, xOK := channels["x"]
		y, yOK := channels["y"]
		if !xOK || !yOK {
			return nil
		}
		xField, _ := x.values["field"].(string)
		yField, _ := y.values["field"].(string)
		if xField == "" || yField == "" {
			return nil
		}
		transform := newDoc()
		transform.set("regression", yField)
		transform.set("on", xField)
		return []any{transform}
	default:
		return nil
	}
}
