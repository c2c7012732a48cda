package emitter

import "github.com/vvsql/vvsql/pkg/vizmodel"

// vlScaleType maps a declared Scale's type to an explicit Vega-Lite
// scale.type override. Types that already match Vega-Lite's own inference
// from the field type (the common case) return ok=false so the emitter
// leaves scale.type unset and lets Vega-Lite infer it.
func vlScaleType(t vizmodel.ScaleType) (vlType string, extra map[string]any, ok bool) {
	switch t {
	case vizmodel.ScaleLog10:
		return "log", map[string]any{"base": 10}, true
	case vizmodel.ScaleLog2:
		return "log", map[string]any{"base": 2}, true
	case vizmodel.ScaleSqrt:
		return "sqrt", nil, true
	case vizmodel.ScaleReverse:
		return "linear", map[string]any{"reverse": true}, true
	case vizmodel.ScaleDate, vizmodel.ScaleDatetime, vizmodel.ScaleTime:
		return "time", nil, true
	case vizmodel.ScaleOrdinal, vizmodel.ScaleCategorial:
		return "ordinal", nil, true
	default:
		return "", nil, false
	}
}

// schemeForScaleType names the Vega-Lite color scheme for a Scale whose
// type is itself a named sequential palette (viridis, plasma, ...), as
// opposed to a palette=<name> property.
func schemeForScaleType(t vizmodel.ScaleType) (string, bool) {
	switch t {
	case vizmodel.ScaleViridis:
		return "viridis", true
	case vizmodel.ScalePlasma:
		return "plasma", true
	case vizmodel.ScaleMagma:
		return "magma", true
	case vizmodel.ScaleInferno:
		return "inferno", true
	case vizmodel.ScaleDiverging:
		return "redblue", true
	default:
		return "", false
	}
}

// lowerScale builds the encoding.scale and encoding.axis sub-documents for
// an aesthetic's declared Scale, per spec.md §4.6's scale-properties table:
// limits/domain -> scale.domain, breaks -> axis.values, palette -> scale.scheme.
func lowerScale(sc vizmodel.Scale, channel string) (scale *doc, axis *doc) {
	scale = newDoc()
	axis = newDoc()

	if sc.HasScaleType {
		if vlType, extra, ok := vlScaleType(sc.ScaleType); ok {
			scale.set("type", vlType)
			for k, v := range extra {
				scale.set(k, v)
			}
		}
		if scheme, ok := schemeForScaleType(sc.ScaleType); ok {
			scale.set("scheme", scheme)
		}
	}

	if limits, ok := sc.Properties["limits"]; ok {
		scale.set("domain", limits)
	}
	if domain, ok := sc.Properties["domain"]; ok {
		scale.set("domain", domain)
	}
	if breaks, ok := sc.Properties["breaks"]; ok {
		axis.set("values", breaks)
	}
	if palette, ok := sc.Properties["palette"]; ok {
		lowerPalette(palette, channel, scale)
	}

	return scale, axis
}

// lowerPalette resolves a palette= property to either a named Vega-Lite
// color scheme or, for palettes with no native Vega-Lite scheme
// equivalent, an explicit expanded range of literal values.
func lowerPalette(palette any, channel string, scale *doc) {
	name, ok := palette.(string)
	if !ok {
		return
	}
	if channel == "shape" {
		if shapes, ok := ShapePalette(name); ok {
			scale.set("range", shapes)
		}
		return
	}
	if scheme, ok := vlColorScheme(name); ok {
		scale.set("scheme", scheme)
		return
	}
	if colors, ok := ColorPalette(name); ok {
		scale.set("range", colors)
	}
}

// applyDefaultPalette fills scale.range with the default color or shape
// palette when a categorical (nominal) color/fill/shape channel declares no
// explicit palette= property, so every categorical scale gets deterministic
// colors instead of Vega-Lite's own default scheme.
func applyDefaultPalette(scale *doc, channel string) {
	if scale.has("scheme") || scale.has("range") {
		return
	}
	switch channel {
	case "color", "fill":
		scale.set("range", DefaultColorPalette())
	case "shape":
		scale.set("range", DefaultShapePalette())
	}
}

// vlColorScheme names Vega-Lite's own built-in scheme identifier for
// palettes it ships natively, avoiding an explicit range array for those.
func vlColorScheme(name string) (string, bool) {
	switch name {
	case "tableau10", "tableau":
		return "tableau10", true
	case "category10":
		return "category10", true
	case "set1":
		return "set1", true
	case "set2":
		return "set2", true
	case "set3":
		return "set3", true
	case "pastel1":
		return "pastel1", true
	case "pastel2":
		return "pastel2", true
	case "dark2":
		return "dark2", true
	case "paired":
		return "paired", true
	case "accent":
		return "accent", true
	case "viridis":
		return "viridis", true
	case "plasma":
		return "plasma", true
	case "magma":
		return "magma", true
	case "inferno":
		return "inferno", true
	case "cividis":
		return "cividis", true
	case "blues":
		return "blues", true
	case "greens":
		return "greens", true
	case "oranges":
		return "oranges", true
	case "reds":
		return "reds", true
	case "purples":
		return "purples", true
	case "rdbu":
		return "redblue", true
	case "rdylbu":
		return "redyellowblue", true
	case "rdylgn":
		return "redyellowgreen", true
	case "spectral":
		return "spectral", true
	case "brbg":
		return "browngreen", true
	case "prgn":
		return "purplegreen", true
	case "piyg":
		return "pinkyellowgreen", true
	default:
		return "", false
	}
}
