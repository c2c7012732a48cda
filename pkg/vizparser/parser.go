package vizparser

import (
	"strings"

	"github.com/vvsql/vvsql/pkg/token"
	"github.com/vvsql/vvsql/pkg/vzerr"
)

// parser is a recursive-descent parser over the token stream produced by
// lexer, implementing the viz_program grammar of spec.md §4.2.
type parser struct {
	l    *lexer
	cur  token.Token
	peek token.Token
}

func newParser(input string) *parser {
	p := &parser{l: newLexer(input)}
	p.next()
	p.next()
	return p
}

func (p *parser) next() {
	p.cur = p.peek
	p.peek = p.l.nextToken()
}

// Parse parses viz_text (the output of pkg/split.Split) into a Program.
// An empty or all-whitespace input yields an empty Program (spec.md §4.1:
// "an empty viz_text downstream produces no specs, non-error").
func Parse(vizText string) (*Program, error) {
	if strings.TrimSpace(vizText) == "" {
		return &Program{}, nil
	}

	p := newParser(vizText)
	prog := &Program{}

	for p.cur.Type != token.EOF {
		spec, err := p.parseSpec()
		if err != nil {
			return nil, err
		}
		prog.Specs = append(prog.Specs, spec)
	}

	return prog, nil
}

func (p *parser) parseSpec() (*SpecNode, error) {
	pos := p.cur.Pos

	if p.cur.Type != token.VISUALISE && p.cur.Type != token.VISUALIZE {
		return nil, vzerr.Parse(pos, "VISUALISE", "expected VISUALISE or VISUALIZE, got %s", p.cur.Type)
	}
	p.next()

	spec := &SpecNode{Pos: pos}

	// Supplement: VISUALISE FROM <source> AS <type> ... (SPEC_FULL.md §11)
	if p.cur.Type == token.FROM {
		p.next()
		src, err := p.parseSource()
		if err != nil {
			return nil, err
		}
		spec.Source = src
	}

	if p.cur.Type != token.AS {
		return nil, vzerr.Parse(p.cur.Pos, "VISUALISE", "expected AS, got %s", p.cur.Type)
	}
	p.next()

	if p.cur.Type != token.IDENT {
		return nil, vzerr.Parse(p.cur.Pos, "VISUALISE AS", "expected viz_type (PLOT, TABLE, or MAP), got %s", p.cur.Type)
	}
	spec.VizType = p.cur.Literal
	p.next()

	for isClauseStart(p.cur.Type) {
		clause, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		spec.Clauses = append(spec.Clauses, clause)
	}

	return spec, nil
}

func (p *parser) parseSource() (*SourceNode, error) {
	pos := p.cur.Pos
	switch p.cur.Type {
	case token.IDENT:
		src := &SourceNode{Kind: SourceIdentifier, Text: p.cur.Literal, Pos: pos}
		p.next()
		return src, nil
	case token.STRING:
		src := &SourceNode{Kind: SourceFilePath, Text: p.cur.Literal, Pos: pos}
		p.next()
		return src, nil
	default:
		return nil, vzerr.Parse(pos, "VISUALISE FROM", "expected identifier or string source, got %s", p.cur.Type)
	}
}

func isClauseStart(t token.TokenType) bool {
	switch t {
	case token.WITH, token.SCALE, token.FACET, token.COORD, token.LABEL, token.GUIDE, token.THEME:
		return true
	default:
		return false
	}
}

func (p *parser) parseClause() (Clause, error) {
	switch p.cur.Type {
	case token.WITH:
		return p.parseWithClause()
	case token.SCALE:
		return p.parseScaleClause()
	case token.FACET:
		return p.parseFacetClause()
	case token.COORD:
		return p.parseCoordClause()
	case token.LABEL:
		return p.parseLabelClause()
	case token.GUIDE:
		return p.parseGuideClause()
	case token.THEME:
		return p.parseThemeClause()
	default:
		return nil, vzerr.Parse(p.cur.Pos, "clause", "unexpected token %s", p.cur.Type)
	}
}

func (p *parser) parseWithClause() (*WithClause, error) {
	pos := p.cur.Pos
	p.next() // consume WITH

	if p.cur.Type != token.IDENT {
		return nil, vzerr.Parse(p.cur.Pos, "WITH", "expected geom identifier, got %s", p.cur.Type)
	}
	c := &WithClause{Geom: p.cur.Literal, GeomPos: p.cur.Pos, Pos: pos}
	p.next()

	if p.cur.Type == token.USING {
		p.next()
		kvs, err := p.parseKVList()
		if err != nil {
			return nil, err
		}
		c.KVs = kvs
	}

	if p.cur.Type == token.FROM {
		p.next()
		src, err := p.parseSource()
		if err != nil {
			return nil, err
		}
		c.Source = src
	}

	if p.cur.Type == token.AS {
		p.next()
		if p.cur.Type != token.STRING {
			return nil, vzerr.Parse(p.cur.Pos, "WITH ... AS", "expected string alias, got %s", p.cur.Type)
		}
		c.Alias = p.cur.Literal
		c.HasAlias = true
		p.next()
	}

	return c, nil
}

func (p *parser) parseScaleClause() (*ScaleClause, error) {
	pos := p.cur.Pos
	p.next() // SCALE

	if p.cur.Type != token.IDENT {
		return nil, vzerr.Parse(p.cur.Pos, "SCALE", "expected aesthetic identifier, got %s", p.cur.Type)
	}
	aes := p.cur.Literal
	p.next()

	if p.cur.Type != token.USING {
		return nil, vzerr.Parse(p.cur.Pos, "SCALE "+aes, "expected USING, got %s", p.cur.Type)
	}
	p.next()

	kvs, err := p.parseKVList()
	if err != nil {
		return nil, err
	}

	return &ScaleClause{Aesthetic: aes, KVs: kvs, Pos: pos}, nil
}

func (p *parser) parseFacetClause() (*FacetClause, error) {
	pos := p.cur.Pos
	p.next() // FACET

	c := &FacetClause{Pos: pos}

	if p.cur.Type == token.WRAP {
		p.next()
		vars, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		c.IsWrap = true
		c.Vars = vars
	} else {
		left, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != token.BY {
			return nil, vzerr.Parse(p.cur.Pos, "FACET", "expected BY, got %s", p.cur.Type)
		}
		p.next()
		right, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		c.IsWrap = false
		c.RowVars = left
		c.ColVars = right
	}

	if p.cur.Type == token.USING {
		p.next()
		kvs, err := p.parseKVList()
		if err != nil {
			return nil, err
		}
		c.KVs = kvs
	}

	return c, nil
}

func (p *parser) parseCoordClause() (*CoordClause, error) {
	pos := p.cur.Pos
	p.next() // COORD

	c := &CoordClause{Pos: pos}

	if p.cur.Type == token.IDENT {
		c.Kind = p.cur.Literal
		c.HasKind = true
		p.next()
	}

	if p.cur.Type == token.USING {
		p.next()
		kvs, err := p.parseKVList()
		if err != nil {
			return nil, err
		}
		c.KVs = kvs
	}

	return c, nil
}

func (p *parser) parseLabelClause() (*LabelClause, error) {
	pos := p.cur.Pos
	p.next() // LABEL

	kvs, err := p.parseKVList()
	if err != nil {
		return nil, err
	}
	return &LabelClause{KVs: kvs, Pos: pos}, nil
}

func (p *parser) parseGuideClause() (*GuideClause, error) {
	pos := p.cur.Pos
	p.next() // GUIDE

	if p.cur.Type != token.IDENT {
		return nil, vzerr.Parse(p.cur.Pos, "GUIDE", "expected aesthetic identifier, got %s", p.cur.Type)
	}
	aes := p.cur.Literal
	p.next()

	if p.cur.Type != token.USING {
		return nil, vzerr.Parse(p.cur.Pos, "GUIDE "+aes, "expected USING, got %s", p.cur.Type)
	}
	p.next()

	kvs, err := p.parseKVList()
	if err != nil {
		return nil, err
	}

	return &GuideClause{Aesthetic: aes, KVs: kvs, Pos: pos}, nil
}

func (p *parser) parseThemeClause() (*ThemeClause, error) {
	pos := p.cur.Pos
	p.next() // THEME

	if p.cur.Type != token.IDENT {
		return nil, vzerr.Parse(p.cur.Pos, "THEME", "expected theme name, got %s", p.cur.Type)
	}
	name := p.cur.Literal
	p.next()

	c := &ThemeClause{Name: name, Pos: pos}

	if p.cur.Type == token.USING {
		p.next()
		kvs, err := p.parseKVList()
		if err != nil {
			return nil, err
		}
		c.KVs = kvs
	}

	return c, nil
}

// parseIdentList parses a comma-separated list of identifiers, used by
// FACET's ident_list production. Requires at least one identifier.
func (p *parser) parseIdentList() ([]string, error) {
	if p.cur.Type != token.IDENT {
		return nil, vzerr.Parse(p.cur.Pos, "FACET", "expected identifier, got %s", p.cur.Type)
	}
	idents := []string{p.cur.Literal}
	p.next()

	for p.cur.Type == token.COMMA {
		p.next()
		if p.cur.Type != token.IDENT {
			return nil, vzerr.Parse(p.cur.Pos, "FACET", "expected identifier after comma, got %s", p.cur.Type)
		}
		idents = append(idents, p.cur.Literal)
		p.next()
	}

	return idents, nil
}

func (p *parser) parseKVList() ([]KV, error) {
	kv, err := p.parseKV()
	if err != nil {
		return nil, err
	}
	kvs := []KV{kv}

	for p.cur.Type == token.COMMA {
		p.next()
		kv, err := p.parseKV()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, kv)
	}

	return kvs, nil
}

func (p *parser) parseKV() (KV, error) {
	if p.cur.Type != token.IDENT {
		return KV{}, vzerr.Parse(p.cur.Pos, "kv", "expected identifier key, got %s", p.cur.Type)
	}
	key := p.cur.Literal
	keyPos := p.cur.Pos
	p.next()

	if p.cur.Type != token.EQ {
		return KV{}, vzerr.Parse(p.cur.Pos, key, "expected '=', got %s", p.cur.Type)
	}
	p.next()

	val, err := p.parseValue()
	if err != nil {
		return KV{}, err
	}

	return KV{Key: key, KeyPos: keyPos, Value: val}, nil
}

func (p *parser) parseValue() (Value, error) {
	pos := p.cur.Pos
	switch p.cur.Type {
	case token.IDENT:
		v := Value{Kind: ValueBareIdent, Ident: p.cur.Literal, Pos: pos}
		p.next()
		return v, nil
	case token.STRING:
		v := Value{Kind: ValueString, Str: p.cur.Literal, Pos: pos}
		p.next()
		return v, nil
	case token.NUMBER:
		v := Value{Kind: ValueNumber, Num: parseNumberLiteral(p.cur.Literal), Pos: pos}
		p.next()
		return v, nil
	case token.TRUE:
		v := Value{Kind: ValueBool, Bool: true, Pos: pos}
		p.next()
		return v, nil
	case token.FALSE:
		v := Value{Kind: ValueBool, Bool: false, Pos: pos}
		p.next()
		return v, nil
	case token.LBRACKET:
		return p.parseArray()
	default:
		return Value{}, vzerr.Parse(pos, "value", "unexpected token %s", p.cur.Type)
	}
}

func (p *parser) parseArray() (Value, error) {
	pos := p.cur.Pos
	p.next() // [

	arr := Value{Kind: ValueArray, Pos: pos}

	if p.cur.Type == token.RBRACKET {
		p.next()
		return arr, nil
	}

	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	arr.Array = append(arr.Array, v)

	for p.cur.Type == token.COMMA {
		p.next()
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr.Array = append(arr.Array, v)
	}

	if p.cur.Type != token.RBRACKET {
		return Value{}, vzerr.Parse(p.cur.Pos, "array", "expected ']', got %s", p.cur.Type)
	}
	p.next()

	return arr, nil
}
