package emitter

import "github.com/vvsql/vvsql/pkg/vizmodel"

// applyCoord lowers a Coord onto the already-built per-layer mark/encoding
// documents, per spec.md §4.6. It mutates layers in place and returns any
// non-fatal diagnostics.
func applyCoord(coord *vizmodel.Coord, layers []*builtLayer) []string {
	if coord == nil {
		return nil
	}
	if !vizmodel.ActiveCoordKinds[coord.Kind] {
		return []string{"unsupported coord kind " + string(coord.Kind) + "; emitted without coordinate lowering"}
	}

	var warnings []string

	switch coord.Kind {
	case vizmodel.CoordCartesian, vizmodel.CoordFlip:
		applyCartesianDomains(coord, layers)
		if coord.Kind == vizmodel.CoordFlip {
			applyFlipOrient(layers)
		}
	case vizmodel.CoordPolar:
		applyPolar(coord, layers)
	}

	return warnings
}

// applyCartesianDomains lowers xlim/ylim and any per-aesthetic domain
// property in Coord.Properties onto the matching encoding channel's
// scale.domain. Invariant 6 (reversed xlim/ylim swap) has already been
// applied by the Validator, so xlim/ylim arrive in ascending order; other
// per-aesthetic domain arrays keep their declared order.
func applyCartesianDomains(coord *vizmodel.Coord, layers []*builtLayer) {
	for key, value := range coord.Properties {
		var channel string
		switch key {
		case "xlim":
			channel = "x"
		case "ylim":
			channel = "y"
		case "theta":
			continue // polar-only, not a domain
		default:
			channel = channelFor(key)
		}
		for _, layer := range layers {
			chDoc, ok := layer.Channels[channel]
			if !ok {
				continue
			}
			scale, ok := chDoc.values["scale"].(*doc)
			if !ok {
				scale = newDoc()
				chDoc.set("scale", scale)
			}
			scale.set("domain", value)
		}
	}
}

// applyFlipOrient marks every orientable layer's mark as horizontal.
// Rather than swapping the x/y encoding channels (which would require
// re-homing LABEL bindings that are keyed by original aesthetic name), the
// field each channel carries is left untouched and only the mark's
// rendering orientation changes; a LABEL bound to "x" therefore always
// stays on the encoding channel named "x".
func applyFlipOrient(layers []*builtLayer) {
	for _, layer := range layers {
		if !orientableGeoms[layer.Geom] {
			continue
		}
		layer.Mark = withOrient(layer.Mark, "horizontal")
	}
}

func withOrient(mark any, orient string) any {
	switch m := mark.(type) {
	case string:
		d := newDoc()
		d.set("type", m)
		d.set("orient", orient)
		return d
	case *doc:
		m.set("orient", orient)
		return m
	default:
		return mark
	}
}

// applyPolar lowers COORD POLAR. A sole bar layer becomes an arc mark
// (a pie/donut chart); anything else keeps its own mark and instead
// relabels the channel chosen by theta (default y) as "theta" and its
// complement as "radius".
func applyPolar(coord *vizmodel.Coord, layers []*builtLayer) {
	if len(layers) == 1 && layers[0].Geom == vizmodel.GeomBar {
		d := newDoc()
		d.set("type", "arc")
		layers[0].Mark = d
		return
	}

	thetaAes := "y"
	if v, ok := coord.Properties["theta"]; ok {
		if s, ok := v.(string); ok && (s == "x" || s == "y") {
			thetaAes = s
		}
	}
	radiusAes := "x"
	if thetaAes == "x" {
		radiusAes = "y"
	}

	for _, layer := range layers {
		if chDoc, ok := layer.Channels[thetaAes]; ok {
			delete(layer.Channels, thetaAes)
			layer.Channels["theta"] = chDoc
		}
		if chDoc, ok := layer.Channels[radiusAes]; ok {
			delete(layer.Channels, radiusAes)
			layer.Channels["radius"] = chDoc
		}
	}
}
