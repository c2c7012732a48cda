package vizmodel

import (
	"github.com/vvsql/vvsql/pkg/vzerr"
)

// requiredAesthetics lists the aesthetics that must be present on a layer
// of the given geom (spec.md §4.4).
var requiredAesthetics = map[Geom][]string{
	GeomPoint:     {"x", "y"},
	GeomLine:      {"x", "y"},
	GeomArea:      {"x", "y"},
	GeomBar:       {"x", "y"},
	GeomTile:      {"x", "y"},
	GeomHLine:     {"y"},
	GeomVLine:     {"x"},
	GeomSegment:   {"x", "y", "xend", "yend"},
	GeomHistogram: {"x"},
	GeomDensity:   {"x"},
	GeomText:      {"x", "y", "label"},
	GeomRibbon:    {"x", "ymin", "ymax"},
}

// knownPalettes are the palette identifiers recognized by the emitter
// (pkg/emitter/palettes.go). Kept here too so the validator can reject an
// unknown palette= property before the emitter ever sees the spec.
var knownPalettes = map[string]bool{
	"tableau10": true, "tableau": true, "category10": true,
	"set1": true, "set2": true, "set3": true,
	"pastel1": true, "pastel2": true, "dark2": true, "paired": true, "accent": true,
	"viridis": true, "plasma": true, "magma": true, "inferno": true, "cividis": true,
	"blues": true, "greens": true, "oranges": true, "reds": true, "purples": true,
	"rdbu": true, "rdylbu": true, "rdylgn": true, "spectral": true,
	"brbg": true, "prgn": true, "piyg": true,
	"shapes": true, "default": true,
}

// Validate resolves defaults and enforces the invariants of spec.md §3
// against spec, mutating it in place (default resolution) and freezing it.
// Calling Validate a second time on an already-validated spec is a no-op
// (Testable Property 4).
func Validate(spec *VizSpec) error {
	if spec.resolved {
		return nil
	}

	if len(spec.Layers) < 1 {
		return vzerr.Model(spec.Pos, "VISUALISE", "at least one layer is required")
	}

	resolveDefaults(spec)

	if err := checkScaleAesthetics(spec); err != nil {
		return err
	}
	if err := checkRequiredAesthetics(spec); err != nil {
		return err
	}
	if err := checkDomainConflict(spec); err != nil {
		return err
	}
	if err := checkPolarTheta(spec); err != nil {
		return err
	}
	if err := checkFacetScales(spec); err != nil {
		return err
	}
	if err := checkMapCoordRestriction(spec); err != nil {
		return err
	}
	if err := checkScaleProperties(spec); err != nil {
		return err
	}
	if err := checkCoordProperties(spec); err != nil {
		return err
	}

	swapReversedLimits(spec)

	spec.resolved = true
	return nil
}

func resolveDefaults(spec *VizSpec) {
	if spec.Coord == nil {
		spec.Coord = &Coord{Kind: CoordCartesian, Properties: map[string]any{}}
	}
	if spec.Facet != nil && spec.Facet.Scales == "" {
		spec.Facet.Scales = ScalesFixed
	}
	if spec.Theme == nil && spec.VizType == VizPlot {
		spec.Theme = &Theme{Name: ThemeMinimal, Overrides: map[string]any{}}
	}
	if spec.Labels == nil {
		spec.Labels = Labels{}
	}
	if spec.Scales == nil {
		spec.Scales = map[string]Scale{}
	}
	if spec.Guides == nil {
		spec.Guides = map[string]Guide{}
	}
}

// checkScaleAesthetics enforces invariant 2: a scale's aesthetic must
// appear on at least one layer, or be x/y (always legal).
func checkScaleAesthetics(spec *VizSpec) error {
	for aes, scale := range spec.Scales {
		if aes == "x" || aes == "y" {
			continue
		}
		if !aestheticUsedByAnyLayer(spec, aes) {
			return vzerr.Model(scale.Pos, "SCALE "+aes,
				"scale aesthetic %q is not used by any layer", aes)
		}
	}
	return nil
}

func aestheticUsedByAnyLayer(spec *VizSpec, aes string) bool {
	for _, l := range spec.Layers {
		if _, ok := l.Aesthetics[aes]; ok {
			return true
		}
	}
	return false
}

func checkRequiredAesthetics(spec *VizSpec) error {
	for _, l := range spec.Layers {
		required, ok := requiredAesthetics[l.Geom]
		if !ok {
			continue // unknown geoms fall back to point at emission time, not a model error
		}
		for _, aes := range required {
			if _, ok := l.Aesthetics[aes]; !ok {
				return vzerr.Model(l.Pos, "WITH "+string(l.Geom),
					"geom %q requires aesthetic %q", l.Geom, aes)
			}
		}
	}
	return nil
}

// checkDomainConflict enforces invariant 4: no aesthetic may have a
// domain property in both its Scale and in Coord.properties.
func checkDomainConflict(spec *VizSpec) error {
	if spec.Coord == nil {
		return nil
	}
	for aes, scale := range spec.Scales {
		if _, hasScaleDomain := scale.Properties["domain"]; !hasScaleDomain {
			continue
		}
		if _, hasCoordDomain := spec.Coord.Properties[aes]; hasCoordDomain {
			return vzerr.Model(scale.Pos, "SCALE "+aes,
				"aesthetic %q has a domain declared in both SCALE %s and COORD", aes, aes)
		}
	}
	return nil
}

// checkPolarTheta enforces invariant 5.
func checkPolarTheta(spec *VizSpec) error {
	if spec.Coord == nil || spec.Coord.Kind != CoordPolar {
		return nil
	}
	theta, ok := spec.Coord.Properties["theta"]
	if !ok {
		return nil // defaults to y per spec.md §3
	}
	s, ok := theta.(string)
	if !ok || (s != "x" && s != "y") {
		return vzerr.Model(spec.Coord.Pos, "COORD polar", "theta must be one of x, y")
	}
	return nil
}

// checkFacetScales enforces invariant 7.
func checkFacetScales(spec *VizSpec) error {
	if spec.Facet == nil {
		return nil
	}
	if !spec.Facet.Scales.IsValid() {
		return vzerr.Model(spec.Facet.Pos, "FACET", "invalid scales mode %q", spec.Facet.Scales)
	}
	return nil
}

// checkMapCoordRestriction enforces invariant 8.
func checkMapCoordRestriction(spec *VizSpec) error {
	if spec.VizType != VizMap || spec.Coord == nil {
		return nil
	}
	switch spec.Coord.Kind {
	case CoordMap, CoordQuickmap, CoordCartesian:
		return nil
	default:
		return vzerr.Model(spec.Coord.Pos, "COORD",
			"viz_type MAP requires coord kind map, quickmap, or cartesian, got %q", spec.Coord.Kind)
	}
}

func checkScaleProperties(spec *VizSpec) error {
	for aes, scale := range spec.Scales {
		if limits, ok := scale.Properties["limits"]; ok {
			if !isTwoElementNumericArray(limits) {
				return vzerr.Model(scale.Pos, "SCALE "+aes, "limits must be a 2-element numeric array")
			}
		}
		if palette, ok := scale.Properties["palette"]; ok {
			name, ok := palette.(string)
			if !ok || !knownPalettes[lower(name)] {
				return vzerr.Model(scale.Pos, "SCALE "+aes, "unknown palette %v", palette)
			}
		}
		if domain, ok := scale.Properties["domain"]; ok {
			if _, isArray := domain.([]any); !isArray {
				return vzerr.Model(scale.Pos, "SCALE "+aes, "domain must be an array")
			}
		}
	}
	return nil
}

func checkCoordProperties(spec *VizSpec) error {
	if spec.Coord == nil {
		return nil
	}
	for _, key := range []string{"xlim", "ylim"} {
		if v, ok := spec.Coord.Properties[key]; ok {
			if !isTwoElementNumericArray(v) {
				return vzerr.Model(spec.Coord.Pos, "COORD", "%s must be a 2-element numeric array", key)
			}
		}
	}
	return nil
}

// swapReversedLimits enforces invariant 6: xlim/ylim arrays [a,b] with a >
// b are silently swapped; other domain arrays preserve declared order.
func swapReversedLimits(spec *VizSpec) {
	if spec.Coord == nil {
		return
	}
	for _, key := range []string{"xlim", "ylim"} {
		v, ok := spec.Coord.Properties[key]
		if !ok {
			continue
		}
		arr, ok := v.([]any)
		if !ok || len(arr) != 2 {
			continue
		}
		a, aok := toFloat(arr[0])
		b, bok := toFloat(arr[1])
		if aok && bok && a > b {
			spec.Coord.Properties[key] = []any{arr[1], arr[0]}
		}
	}
}

func isTwoElementNumericArray(v any) bool {
	arr, ok := v.([]any)
	if !ok || len(arr) != 2 {
		return false
	}
	_, aok := toFloat(arr[0])
	_, bok := toFloat(arr[1])
	return aok && bok
}

func toFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
