package emitter

import "github.com/vvsql/vvsql/pkg/vizmodel"

// lowerFacet builds the top-level "facet" document and, when the facet's
// scales mode requests independent axes, the "resolve" document, per
// spec.md §4.6.
func lowerFacet(f *vizmodel.Facet) (facet *doc, resolve *doc, warnings []string) {
	facet = newDoc()

	switch f.Shape {
	case vizmodel.FacetWrap:
		if len(f.Vars) == 0 {
			return facet, nil, []string{"FACET WRAP declared with no columns"}
		}
		facet.set("field", f.Vars[0])
		facet.set("type", "nominal")
		if len(f.Vars) > 1 {
			warnings = append(warnings, "FACET WRAP with multiple columns is lowered using only the first column")
		}
		if f.HasCols {
			facet.set("columns", f.Columns)
		}
	case vizmodel.FacetGrid:
		if len(f.RowVars) > 0 {
			row := newDoc()
			row.set("field", f.RowVars[0])
			row.set("type", "nominal")
			facet.set("row", row)
		}
		if len(f.ColVars) > 0 {
			col := newDoc()
			col.set("field", f.ColVars[0])
			col.set("type", "nominal")
			facet.set("column", col)
		}
		if len(f.RowVars) > 1 || len(f.ColVars) > 1 {
			warnings = append(warnings, "FACET ... BY with multiple columns per side is lowered using only the first column of each")
		}
	}

	if f.Scales == vizmodel.ScalesFixed || f.Scales == "" {
		return facet, nil, warnings
	}

	scaleResolve := newDoc()
	switch f.Scales {
	case vizmodel.ScalesFree:
		scaleResolve.set("x", "independent")
		scaleResolve.set("y", "independent")
	case vizmodel.ScalesFreeX:
		scaleResolve.set("x", "independent")
	case vizmodel.ScalesFreeY:
		scaleResolve.set("y", "independent")
	}
	resolve = newDoc()
	resolve.set("scale", scaleResolve)

	return facet, resolve, warnings
}
