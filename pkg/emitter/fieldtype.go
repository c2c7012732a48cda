package emitter

import (
	"github.com/vvsql/vvsql/pkg/tableio"
	"github.com/vvsql/vvsql/pkg/vizmodel"
)

// vlFieldTypeForScaleType maps a declared Scale's type to a Vega-Lite field
// type, per spec.md §4.6.
func vlFieldTypeForScaleType(t vizmodel.ScaleType) (string, bool) {
	switch t {
	case vizmodel.ScaleLinear, vizmodel.ScaleLog10, vizmodel.ScaleLog2, vizmodel.ScaleSqrt, vizmodel.ScaleReverse:
		return "quantitative", true
	case vizmodel.ScaleOrdinal, vizmodel.ScaleCategorial:
		return "nominal", true
	case vizmodel.ScaleDate, vizmodel.ScaleDatetime, vizmodel.ScaleTime:
		return "temporal", true
	case vizmodel.ScaleViridis, vizmodel.ScalePlasma, vizmodel.ScaleMagma, vizmodel.ScaleInferno, vizmodel.ScaleDiverging:
		return "nominal", true
	default:
		return "", false
	}
}

// vlFieldTypeForLogicalType infers a Vega-Lite field type from a table
// column's logical type, used when no Scale declares an explicit type.
func vlFieldTypeForLogicalType(t tableio.LogicalType) string {
	switch t {
	case tableio.TypeDate, tableio.TypeDatetime, tableio.TypeTime:
		return "temporal"
	case tableio.TypeInteger, tableio.TypeFloat:
		return "quantitative"
	default:
		return "nominal"
	}
}

// resolveFieldType implements spec.md §4.6's field-type resolution rule for
// a Column aesthetic value: an explicit Scale type wins; otherwise the
// column's logical type in table is consulted; an unresolvable column (not
// present in table, e.g. a computed alias the adapter didn't echo back)
// falls back to nominal.
func resolveFieldType(sc vizmodel.Scale, hasScale bool, table *tableio.Table, column string) string {
	if hasScale && sc.HasScaleType {
		if t, ok := vlFieldTypeForScaleType(sc.ScaleType); ok {
			return t
		}
	}
	if table == nil {
		return "nominal"
	}
	return vlFieldTypeForLogicalType(table.ColumnType(column))
}
