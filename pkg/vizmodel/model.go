// Package vizmodel defines the typed abstract model of a vvSQL
// visualization program: VizSpec and its constituent entities, plus the
// validator that enforces cross-clause invariants once a spec has been
// built from the concrete syntax tree.
package vizmodel

import (
	"strings"

	"github.com/vvsql/vvsql/pkg/token"
)

// VizType is the terminal operation kind of a visualization spec.
type VizType string

// Recognized VizType values.
const (
	VizPlot  VizType = "PLOT"
	VizTable VizType = "TABLE"
	VizMap   VizType = "MAP"
)

// ParseVizType canonicalizes a viz_type token into a VizType.
func ParseVizType(s string) (VizType, bool) {
	switch strings.ToUpper(s) {
	case "PLOT":
		return VizPlot, true
	case "TABLE":
		return VizTable, true
	case "MAP":
		return VizMap, true
	default:
		return "", false
	}
}

// Geom is the geometric primitive rendered per row by a Layer.
type Geom string

// Recognized Geom values.
const (
	GeomPoint     Geom = "point"
	GeomLine      Geom = "line"
	GeomBar       Geom = "bar"
	GeomArea      Geom = "area"
	GeomTile      Geom = "tile"
	GeomRibbon    Geom = "ribbon"
	GeomHistogram Geom = "histogram"
	GeomDensity   Geom = "density"
	GeomSmooth    Geom = "smooth"
	GeomBoxplot   Geom = "boxplot"
	GeomText      Geom = "text"
	GeomSegment   Geom = "segment"
	GeomHLine     Geom = "hline"
	GeomVLine     Geom = "vline"
)

var knownGeoms = map[Geom]bool{
	GeomPoint: true, GeomLine: true, GeomBar: true, GeomArea: true,
	GeomTile: true, GeomRibbon: true, GeomHistogram: true, GeomDensity: true,
	GeomSmooth: true, GeomBoxplot: true, GeomText: true, GeomSegment: true,
	GeomHLine: true, GeomVLine: true,
}

// IsKnown reports whether g is one of the geoms enumerated in the grammar.
func (g Geom) IsKnown() bool {
	return knownGeoms[g]
}

// CanonicalGeom folds a surface geom token to its canonical lower-case form.
func CanonicalGeom(s string) Geom {
	return Geom(strings.ToLower(s))
}

// AestheticValueKind tags an AestheticValue as a column reference or a
// literal applied uniformly to every row.
type AestheticValueKind int

// AestheticValueKind values.
const (
	AestheticColumn AestheticValueKind = iota
	AestheticLiteral
)

// AestheticValue is a tagged variant of exactly one of Column(name) or
// Literal(value), per spec §3.
type AestheticValue struct {
	Kind    AestheticValueKind
	Column  string // valid when Kind == AestheticColumn
	Literal any    // valid when Kind == AestheticLiteral: string, float64, bool, or []any
	Pos     token.Position
}

// IsColumn reports whether this value references a table column.
func (v AestheticValue) IsColumn() bool { return v.Kind == AestheticColumn }

// Layer is a (geom, aesthetics) pair composed over a shared or
// layer-specific data source.
type Layer struct {
	Geom       Geom
	Aesthetics map[string]AestheticValue
	Name       string
	HasName    bool
	Source     *DataSource // set only when this layer names its own source (VISUALISE FROM supplement)
	Pos        token.Position
}

// AestheticKeys returns the layer's aesthetic names in a stable, sorted order.
func (l Layer) AestheticKeys() []string {
	keys := make([]string, 0, len(l.Aesthetics))
	for k := range l.Aesthetics {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys
}

// DataSourceKind distinguishes an identifier/CTE source from a quoted file path.
type DataSourceKind int

// DataSourceKind values.
const (
	SourceIdentifier DataSourceKind = iota
	SourceFilePath
)

// DataSource names an explicit data source for VISUALISE FROM (§11 of
// SPEC_FULL.md, supplemented from original_source/src/parser/splitter.rs).
type DataSource struct {
	Kind DataSourceKind
	Text string
	Pos  token.Position
}

// ScaleType is the transform applied when lowering a Scale to Vega-Lite.
type ScaleType string

// Recognized ScaleType values.
const (
	ScaleLinear     ScaleType = "linear"
	ScaleLog10      ScaleType = "log10"
	ScaleLog2       ScaleType = "log2"
	ScaleSqrt       ScaleType = "sqrt"
	ScaleReverse    ScaleType = "reverse"
	ScaleOrdinal    ScaleType = "ordinal"
	ScaleCategorial ScaleType = "categorical"
	ScaleDate       ScaleType = "date"
	ScaleDatetime   ScaleType = "datetime"
	ScaleTime       ScaleType = "time"
	ScaleViridis    ScaleType = "viridis"
	ScalePlasma     ScaleType = "plasma"
	ScaleMagma      ScaleType = "magma"
	ScaleInferno    ScaleType = "inferno"
	ScaleDiverging  ScaleType = "diverging"
)

var knownScaleTypes = map[ScaleType]bool{
	ScaleLinear: true, ScaleLog10: true, ScaleLog2: true, ScaleSqrt: true,
	ScaleReverse: true, ScaleOrdinal: true, ScaleCategorial: true,
	ScaleDate: true, ScaleDatetime: true, ScaleTime: true,
	ScaleViridis: true, ScalePlasma: true, ScaleMagma: true,
	ScaleInferno: true, ScaleDiverging: true,
}

// IsKnown reports whether t is one of the scale types enumerated in the grammar.
func (t ScaleType) IsKnown() bool { return knownScaleTypes[t] }

// CanonicalScaleType folds a surface scale-type token to canonical lower case.
func CanonicalScaleType(s string) ScaleType {
	return ScaleType(strings.ToLower(s))
}

// Scale is the transformation from data domain to visual range for one aesthetic.
type Scale struct {
	Aesthetic    string
	ScaleType    ScaleType
	HasScaleType bool
	Properties   map[string]any
	Pos          token.Position
}

// FacetShape distinguishes FACET WRAP from FACET ... BY ....
type FacetShape int

// FacetShape values.
const (
	FacetWrap FacetShape = iota
	FacetGrid
)

// FacetScales controls whether facet panels share axis scales.
type FacetScales string

// Recognized FacetScales values.
const (
	ScalesFixed  FacetScales = "fixed"
	ScalesFree   FacetScales = "free"
	ScalesFreeX  FacetScales = "free_x"
	ScalesFreeY  FacetScales = "free_y"
)

// IsValid reports whether s is one of the four recognized facet-scales modes.
func (s FacetScales) IsValid() bool {
	switch s {
	case ScalesFixed, ScalesFree, ScalesFreeX, ScalesFreeY:
		return true
	default:
		return false
	}
}

// Facet is the decomposition of a plot into small multiples.
type Facet struct {
	Shape    FacetShape
	Vars     []string // FacetWrap
	RowVars  []string // FacetGrid
	ColVars  []string // FacetGrid
	Scales   FacetScales
	Columns  int // optional "columns" property for FacetWrap; 0 means unset
	HasCols  bool
	Pos      token.Position
}

// CoordKind is the coordinate system named by a COORD clause.
type CoordKind string

// Recognized CoordKind values.
const (
	CoordCartesian CoordKind = "cartesian"
	CoordFlip      CoordKind = "flip"
	CoordPolar     CoordKind = "polar"
	CoordFixed     CoordKind = "fixed"
	CoordTrans     CoordKind = "trans"
	CoordMap       CoordKind = "map"
	CoordQuickmap  CoordKind = "quickmap"
)

// ActiveCoordKinds are semantically lowered; the rest parse but emit a
// non-fatal "unsupported" diagnostic (spec §3, Coord).
var ActiveCoordKinds = map[CoordKind]bool{
	CoordCartesian: true,
	CoordFlip:      true,
	CoordPolar:     true,
}

// CanonicalCoordKind folds a surface coord-kind token to canonical lower case.
func CanonicalCoordKind(s string) CoordKind {
	return CoordKind(strings.ToLower(s))
}

// Coord is the coordinate system and any axis-level limits/domains.
type Coord struct {
	Kind       CoordKind
	Properties map[string]any
	Pos        token.Position
}

// Labels maps a label slot name (title, subtitle, x, y, caption, tag, or
// any aesthetic name) to display text.
type Labels map[string]string

// Guide carries opaque legend/axis presentation properties for one aesthetic.
type Guide struct {
	Aesthetic  string
	Properties map[string]any
	Pos        token.Position
}

// ThemeName is one of the six built-in theme presets.
type ThemeName string

// Recognized ThemeName values.
const (
	ThemeMinimal ThemeName = "minimal"
	ThemeClassic ThemeName = "classic"
	ThemeGray    ThemeName = "gray"
	ThemeBW      ThemeName = "bw"
	ThemeDark    ThemeName = "dark"
	ThemeVoid    ThemeName = "void"
)

// CanonicalThemeName folds a surface theme-name token to canonical lower case.
func CanonicalThemeName(s string) ThemeName {
	return ThemeName(strings.ToLower(s))
}

// Theme is the visual preset and opaque per-key overrides applied on top.
type Theme struct {
	Name      ThemeName
	Overrides map[string]any
	Pos       token.Position
}

// VizSpec is the root model produced by the AST Builder and consumed
// read-only by the Emitter once frozen by Validate.
type VizSpec struct {
	VizType VizType
	Layers  []Layer
	Scales  map[string]Scale // keyed by aesthetic name
	Facet   *Facet
	Coord   *Coord
	Labels  Labels
	Guides  map[string]Guide // keyed by aesthetic name
	Theme   *Theme
	Source  *DataSource // VISUALISE FROM supplement, spec-level source override
	Pos     token.Position

	// resolved is set by Validate; a spec cannot be re-validated except as
	// a documented no-op (Testable Property 4).
	resolved bool
}

// Resolved reports whether Validate has already run on this spec.
func (s *VizSpec) Resolved() bool { return s.resolved }

func sortStrings(s []string) {
	// small insertion sort; slices are never large (aesthetic counts are single digits)
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
