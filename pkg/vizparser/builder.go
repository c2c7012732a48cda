package vizparser

import (
	"strings"

	"github.com/vvsql/vvsql/pkg/vizmodel"
	"github.com/vvsql/vvsql/pkg/vzerr"
)

// BuildSpecs lifts a parsed Program's concrete syntax into a slice of typed
// vizmodel.VizSpec values (spec.md §4.3, AST Builder). Each returned spec is
// unvalidated; callers run vizmodel.Validate before using it.
func BuildSpecs(prog *Program) ([]*vizmodel.VizSpec, error) {
	specs := make([]*vizmodel.VizSpec, 0, len(prog.Specs))
	for _, sn := range prog.Specs {
		spec, err := buildSpec(sn)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func buildSpec(sn *SpecNode) (*vizmodel.VizSpec, error) {
	vt, ok := vizmodel.ParseVizType(sn.VizType)
	if !ok {
		return nil, vzerr.Model(sn.Pos, "VISUALISE AS", "unknown viz_type %q", sn.VizType)
	}

	spec := &vizmodel.VizSpec{
		VizType: vt,
		Scales:  map[string]vizmodel.Scale{},
		Guides:  map[string]vizmodel.Guide{},
		Labels:  vizmodel.Labels{},
		Pos:     sn.Pos,
	}

	if sn.Source != nil {
		spec.Source = buildSource(sn.Source)
	}

	var (
		haveFacet, haveCoord, haveLabel, haveTheme bool
	)

	for _, clause := range sn.Clauses {
		switch c := clause.(type) {
		case *WithClause:
			layer, err := buildLayer(c)
			if err != nil {
				return nil, err
			}
			spec.Layers = append(spec.Layers, layer)

		case *ScaleClause:
			aes := strings.ToLower(c.Aesthetic)
			if _, dup := spec.Scales[aes]; dup {
				return nil, vzerr.Model(c.Pos, "SCALE "+c.Aesthetic, "duplicate SCALE clause for aesthetic %q", aes)
			}
			scale, err := buildScale(c)
			if err != nil {
				return nil, err
			}
			spec.Scales[aes] = scale

		case *FacetClause:
			if haveFacet {
				return nil, vzerr.Model(c.Pos, "FACET", "at most one FACET clause is allowed")
			}
			haveFacet = true
			facet, err := buildFacet(c)
			if err != nil {
				return nil, err
			}
			spec.Facet = facet

		case *CoordClause:
			if haveCoord {
				return nil, vzerr.Model(c.Pos, "COORD", "at most one COORD clause is allowed")
			}
			haveCoord = true
			coord, err := buildCoord(c)
			if err != nil {
				return nil, err
			}
			spec.Coord = coord

		case *LabelClause:
			if haveLabel {
				return nil, vzerr.Model(c.Pos, "LABEL", "at most one LABEL clause is allowed")
			}
			haveLabel = true
			labels, err := buildLabels(c)
			if err != nil {
				return nil, err
			}
			spec.Labels = labels

		case *GuideClause:
			aes := strings.ToLower(c.Aesthetic)
			guide, err := buildGuide(c)
			if err != nil {
				return nil, err
			}
			// Repeated GUIDE for the same aesthetic overwrites, matching the
			// WITH-aesthetic overwrite semantics of spec.md §4.3.
			spec.Guides[aes] = guide

		case *ThemeClause:
			if haveTheme {
				return nil, vzerr.Model(c.Pos, "THEME", "at most one THEME clause is allowed")
			}
			haveTheme = true
			theme, err := buildTheme(c)
			if err != nil {
				return nil, err
			}
			spec.Theme = theme
		}
	}

	return spec, nil
}

func buildSource(sn *SourceNode) *vizmodel.DataSource {
	kind := vizmodel.SourceIdentifier
	if sn.Kind == SourceFilePath {
		kind = vizmodel.SourceFilePath
	}
	return &vizmodel.DataSource{Kind: kind, Text: sn.Text, Pos: sn.Pos}
}

func buildLayer(c *WithClause) (vizmodel.Layer, error) {
	geom := vizmodel.CanonicalGeom(c.Geom)

	layer := vizmodel.Layer{
		Geom:       geom,
		Aesthetics: map[string]vizmodel.AestheticValue{},
		Pos:        c.Pos,
	}

	if c.HasAlias {
		layer.Name = c.Alias
		layer.HasName = true
	}
	if c.Source != nil {
		layer.Source = buildSource(c.Source)
	}

	for _, kv := range c.KVs {
		aes := strings.ToLower(kv.Key)
		val, err := buildAestheticValue(kv.Value)
		if err != nil {
			return vizmodel.Layer{}, err
		}
		// Repeated aesthetic keys within a single WITH silently overwrite
		// (spec.md §4.3, "later keys win").
		layer.Aesthetics[aes] = val
	}

	return layer, nil
}

// buildAestheticValue classifies a WITH clause value: a bare identifier is
// a Column reference; every other surface form is a Literal (spec.md §4.3).
func buildAestheticValue(v Value) (vizmodel.AestheticValue, error) {
	switch v.Kind {
	case ValueBareIdent:
		return vizmodel.AestheticValue{Kind: vizmodel.AestheticColumn, Column: v.Ident, Pos: v.Pos}, nil
	case ValueString:
		return vizmodel.AestheticValue{Kind: vizmodel.AestheticLiteral, Literal: v.Str, Pos: v.Pos}, nil
	case ValueNumber:
		return vizmodel.AestheticValue{Kind: vizmodel.AestheticLiteral, Literal: v.Num, Pos: v.Pos}, nil
	case ValueBool:
		return vizmodel.AestheticValue{Kind: vizmodel.AestheticLiteral, Literal: v.Bool, Pos: v.Pos}, nil
	case ValueArray:
		arr, err := buildLiteralArray(v.Array)
		if err != nil {
			return vizmodel.AestheticValue{}, err
		}
		return vizmodel.AestheticValue{Kind: vizmodel.AestheticLiteral, Literal: arr, Pos: v.Pos}, nil
	default:
		return vizmodel.AestheticValue{}, vzerr.Model(v.Pos, "WITH", "unrecognized value form")
	}
}

// buildPropertyValue lowers a kv value into the "any" representation used
// by Scale/Coord/Guide/Theme Properties maps: bare identifiers become plain
// strings there (they never denote column references outside WITH).
func buildPropertyValue(v Value) (any, error) {
	switch v.Kind {
	case ValueBareIdent:
		return v.Ident, nil
	case ValueString:
		return v.Str, nil
	case ValueNumber:
		return v.Num, nil
	case ValueBool:
		return v.Bool, nil
	case ValueArray:
		return buildLiteralArray(v.Array)
	default:
		return nil, vzerr.Model(v.Pos, "property", "unrecognized value form")
	}
}

func buildLiteralArray(vals []Value) ([]any, error) {
	out := make([]any, 0, len(vals))
	for _, v := range vals {
		pv, err := buildPropertyValue(v)
		if err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, nil
}

func buildProperties(kvs []KV) (map[string]any, error) {
	props := map[string]any{}
	for _, kv := range kvs {
		key := strings.ToLower(kv.Key)
		v, err := buildPropertyValue(kv.Value)
		if err != nil {
			return nil, err
		}
		// Later keys win, matching WITH's overwrite semantics.
		props[key] = v
	}
	return props, nil
}

func buildScale(c *ScaleClause) (vizmodel.Scale, error) {
	props, err := buildProperties(c.KVs)
	if err != nil {
		return vizmodel.Scale{}, err
	}

	scale := vizmodel.Scale{
		Aesthetic:  strings.ToLower(c.Aesthetic),
		Properties: props,
		Pos:        c.Pos,
	}

	if raw, ok := props["type"]; ok {
		s, ok := raw.(string)
		if !ok {
			return vizmodel.Scale{}, vzerr.Model(c.Pos, "SCALE "+c.Aesthetic, "type must be a string")
		}
		st := vizmodel.CanonicalScaleType(s)
		if !st.IsKnown() {
			return vizmodel.Scale{}, vzerr.Model(c.Pos, "SCALE "+c.Aesthetic, "unknown scale type %q", s)
		}
		scale.ScaleType = st
		scale.HasScaleType = true
		delete(props, "type")
	}

	return scale, nil
}

func buildFacet(c *FacetClause) (*vizmodel.Facet, error) {
	props, err := buildProperties(c.KVs)
	if err != nil {
		return nil, err
	}

	facet := &vizmodel.Facet{Pos: c.Pos}

	if c.IsWrap {
		facet.Shape = vizmodel.FacetWrap
		facet.Vars = c.Vars
	} else {
		facet.Shape = vizmodel.FacetGrid
		facet.RowVars = c.RowVars
		facet.ColVars = c.ColVars
	}

	if raw, ok := props["scales"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, vzerr.Model(c.Pos, "FACET", "scales must be a string")
		}
		facet.Scales = vizmodel.FacetScales(strings.ToLower(s))
		delete(props, "scales")
	}

	if raw, ok := props["columns"]; ok {
		n, ok := raw.(float64)
		if !ok {
			return nil, vzerr.Model(c.Pos, "FACET", "columns must be a number")
		}
		facet.Columns = int(n)
		facet.HasCols = true
		delete(props, "columns")
	}

	return facet, nil
}

func buildCoord(c *CoordClause) (*vizmodel.Coord, error) {
	props, err := buildProperties(c.KVs)
	if err != nil {
		return nil, err
	}

	coord := &vizmodel.Coord{Properties: props, Pos: c.Pos}
	if c.HasKind {
		coord.Kind = vizmodel.CanonicalCoordKind(c.Kind)
	} else {
		coord.Kind = vizmodel.CoordCartesian
	}

	return coord, nil
}

func buildLabels(c *LabelClause) (vizmodel.Labels, error) {
	labels := vizmodel.Labels{}
	for _, kv := range c.KVs {
		if kv.Value.Kind != ValueString {
			return nil, vzerr.Model(kv.KeyPos, "LABEL", "label %q must be a string", kv.Key)
		}
		labels[strings.ToLower(kv.Key)] = kv.Value.Str
	}
	return labels, nil
}

func buildGuide(c *GuideClause) (vizmodel.Guide, error) {
	props, err := buildProperties(c.KVs)
	if err != nil {
		return vizmodel.Guide{}, err
	}
	return vizmodel.Guide{Aesthetic: strings.ToLower(c.Aesthetic), Properties: props, Pos: c.Pos}, nil
}

func buildTheme(c *ThemeClause) (*vizmodel.Theme, error) {
	props, err := buildProperties(c.KVs)
	if err != nil {
		return nil, err
	}
	return &vizmodel.Theme{Name: vizmodel.CanonicalThemeName(c.Name), Overrides: props, Pos: c.Pos}, nil
}
