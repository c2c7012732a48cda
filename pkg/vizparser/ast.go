// Package vizparser implements the concrete-syntax grammar for the vvSQL
// visualization sub-language (spec.md §4.2) and the AST Builder that lifts
// its concrete syntax tree into a typed vizmodel.VizSpec (spec.md §4.3).
package vizparser

import "github.com/vvsql/vvsql/pkg/token"

// Program is the root of a parsed viz_program: one or more viz_spec blocks
// in source order (spec.md §4.2, "Multiple visualization blocks").
type Program struct {
	Specs []*SpecNode
}

// SourceKind distinguishes an identifier/CTE source from a quoted file path
// in a VISUALISE FROM clause (SPEC_FULL.md §11).
type SourceKind int

// SourceKind values.
const (
	SourceIdentifier SourceKind = iota
	SourceFilePath
)

// SourceNode is the optional FROM <source> naming a data source directly
// on a viz_header or with_clause.
type SourceNode struct {
	Kind SourceKind
	Text string
	Pos  token.Position
}

// SpecNode is one viz_spec: a header naming the terminal viz_type,
// followed by zero or more clauses.
type SpecNode struct {
	VizType    string // raw surface token, canonicalized by the builder
	Source     *SourceNode
	Clauses    []Clause
	Pos        token.Position
}

// Clause is implemented by every clause production.
type Clause interface {
	clauseNode()
	Position() token.Position
}

// KV is one "ident = value" pair from a kv_list.
type KV struct {
	Key    string
	KeyPos token.Position
	Value  Value
}

// ValueKind tags the surface form of a parsed value.
type ValueKind int

// ValueKind values.
const (
	ValueBareIdent ValueKind = iota
	ValueString
	ValueNumber
	ValueBool
	ValueArray
)

// Value is a parsed kv value: a bare identifier, string, number, boolean,
// or array (spec.md §4.2, value production). Classification into
// AestheticValue::Column vs Literal happens in the AST Builder, not here —
// the grammar layer stays syntax-only.
type Value struct {
	Kind    ValueKind
	Ident   string  // ValueBareIdent
	Str     string  // ValueString
	Num     float64 // ValueNumber
	Bool    bool    // ValueBool
	Array   []Value // ValueArray
	Pos     token.Position
}

// WithClause is `WITH geom (USING kv_list)? (AS string)?`.
type WithClause struct {
	Geom    string
	GeomPos token.Position
	KVs     []KV
	Alias   string
	HasAlias bool
	Source  *SourceNode
	Pos     token.Position
}

func (*WithClause) clauseNode()                {}
func (c *WithClause) Position() token.Position { return c.Pos }

// ScaleClause is `SCALE ident USING kv_list`.
type ScaleClause struct {
	Aesthetic string
	KVs       []KV
	Pos       token.Position
}

func (*ScaleClause) clauseNode()                {}
func (c *ScaleClause) Position() token.Position { return c.Pos }

// FacetClause is `FACET (WRAP ident_list | ident_list BY ident_list) (USING kv_list)?`.
type FacetClause struct {
	IsWrap  bool
	Vars    []string // WRAP form
	RowVars []string // BY form (left of BY)
	ColVars []string // BY form (right of BY)
	KVs     []KV
	Pos     token.Position
}

func (*FacetClause) clauseNode()                {}
func (c *FacetClause) Position() token.Position { return c.Pos }

// CoordClause is `COORD (coord_kind)? (USING kv_list)?`.
type CoordClause struct {
	Kind    string
	HasKind bool
	KVs     []KV
	Pos     token.Position
}

func (*CoordClause) clauseNode()                {}
func (c *CoordClause) Position() token.Position { return c.Pos }

// LabelClause is `LABEL kv_list`.
type LabelClause struct {
	KVs []KV
	Pos token.Position
}

func (*LabelClause) clauseNode()                {}
func (c *LabelClause) Position() token.Position { return c.Pos }

// GuideClause is `GUIDE ident USING kv_list`.
type GuideClause struct {
	Aesthetic string
	KVs       []KV
	Pos       token.Position
}

func (*GuideClause) clauseNode()                {}
func (c *GuideClause) Position() token.Position { return c.Pos }

// ThemeClause is `THEME theme_name (USING kv_list)?`.
type ThemeClause struct {
	Name string
	KVs  []KV
	Pos  token.Position
}

func (*ThemeClause) clauseNode()                {}
func (c *ThemeClause) Position() token.Position { return c.Pos }
