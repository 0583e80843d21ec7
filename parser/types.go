package parser

import (
	"strings"

	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/source"
	"gqlfront/token"
)

// parseType parses a value type with its postfix forms:
//
//	type := primary ((LIST | ARRAY) ['[' max ']'])* [NOT NULL]
func (p *Parser) parseType() ast.Type {
	defer p.leave()
	if !p.enter() {
		return &ast.BadType{Base: ast.At(p.skipDeep()), Reason: "nesting too deep"}
	}
	t := p.parseTypePrimary()
	for {
		switch {
		case p.atKwOr(token.KwList, token.KwArray) && p.peek(1).Kind != token.Lt:
			kw := p.advance()
			lt := &ast.ListType{Keyword: kw.Kw, Elem: t}
			lt.Max = p.parseListMax()
			lt.Loc = t.Span().Cover(p.s.PrevSpan())
			t = lt
		case p.atKw(token.KwNot) && p.peekKw(1, token.KwNull):
			p.advance()
			end := p.advance()
			setNotNull(t)
			setTypeSpan(t, t.Span().Cover(end.Span))
			return t
		default:
			return t
		}
	}
}

func (p *Parser) parseListMax() ast.Expr {
	open, ok := p.eat(token.LBracket)
	if !ok {
		return nil
	}
	n := p.parseExpr()
	p.expectCloser(open)
	return n
}

func setNotNull(t ast.Type) {
	switch t := t.(type) {
	case *ast.NamedType:
		t.NotNull = true
	case *ast.ListType:
		t.NotNull = true
	case *ast.RecordType:
		t.NotNull = true
	case *ast.UnionType:
		t.NotNull = true
	}
}

func setTypeSpan(t ast.Type, sp source.Span) {
	switch t := t.(type) {
	case *ast.NamedType:
		t.Loc = sp
	case *ast.ListType:
		t.Loc = sp
	case *ast.RecordType:
		t.Loc = sp
	case *ast.UnionType:
		t.Loc = sp
	case *ast.BadType:
		t.Loc = sp
	}
}

func isIntTypeKw(kw token.Keyword) bool {
	switch kw {
	case token.KwInt, token.KwInteger, token.KwSmallint, token.KwBigint,
		token.KwInt8, token.KwInteger8, token.KwInt16, token.KwInteger16,
		token.KwInt32, token.KwInteger32, token.KwInt64, token.KwInteger64,
		token.KwInt128, token.KwInteger128, token.KwInt256, token.KwInteger256:
		return true
	}
	return false
}

// parseTypePrimary parses one predefined, constructed or dynamic union
// type.
func (p *Parser) parseTypePrimary() ast.Type {
	tok := p.tok()
	if tok.Kind != token.Word || tok.Kw == token.KwNone {
		if tok.Kind == token.Invalid {
			p.advance()
			return &ast.BadType{Base: ast.At(tok.Span), Reason: "invalid input"}
		}
		if tok.IsIdentLike() {
			p.advance()
			p.errAt(diag.SynExpectType, tok.Span, "unknown type "+tok.Describe())
			return &ast.BadType{Base: ast.At(tok.Span), Reason: "unknown type"}
		}
		p.expected(diag.SynExpectType, "type")
		return &ast.BadType{Base: ast.At(p.here()), Reason: "expected type"}
	}

	switch tok.Kw {
	case token.KwList, token.KwArray:
		return p.parseListTypePrefix()
	case token.KwRecord:
		p.advance()
		if p.at(token.LBrace) {
			return p.parseRecordType(tok.Span)
		}
		return &ast.RecordType{Base: ast.At(tok.Span), Any: true}
	case token.KwAny:
		return p.parseAnyType()
	case token.KwValue:
		if p.peek(1).Kind == token.Lt {
			p.advance()
			return p.parseUnionType(tok.Span)
		}
	case token.KwSigned, token.KwUnsigned:
		p.advance()
		words := []string{tok.Kw.String()}
		if next := p.tok(); next.Kind == token.Word && (isIntTypeKw(next.Kw) || next.Kw == token.KwSmall || next.Kw == token.KwBig) {
			words = append(words, p.typeWords()...)
		}
		return p.namedType(tok, words)
	case token.KwSmall, token.KwBig:
		p.advance()
		if !p.atKwOr(token.KwInteger, token.KwInt) {
			p.expected(diag.SynExpectType, "INTEGER")
			return p.namedType(tok, []string{tok.Kw.String()})
		}
		return p.namedType(tok, []string{tok.Kw.String(), p.advance().Kw.String()})
	case token.KwDouble:
		p.advance()
		words := []string{"DOUBLE"}
		if _, ok := p.eatKw(token.KwPrecision); ok {
			words = append(words, "PRECISION")
		}
		return p.namedType(tok, words)
	case token.KwLocal, token.KwZoned:
		p.advance()
		if !p.atKwOr(token.KwTime, token.KwDatetime, token.KwTimestamp) {
			p.expected(diag.SynExpectType, "TIME, DATETIME or TIMESTAMP")
			return p.namedType(tok, []string{tok.Kw.String()})
		}
		return p.namedType(tok, []string{tok.Kw.String(), p.advance().Kw.String()})
	case token.KwTime, token.KwTimestamp:
		p.advance()
		words := []string{tok.Kw.String()}
		if p.atKwOr(token.KwWith, token.KwWithout) && p.peekKw(1, token.KwTime) {
			words = append(words, p.advance().Kw.String(), p.advance().Kw.String())
			if _, ok := p.expectKw(token.KwZone); ok {
				words = append(words, "ZONE")
			}
		}
		return p.namedType(tok, words)
	case token.KwDuration:
		p.advance()
		nt := p.namedType(tok, []string{"DURATION"})
		if open, ok := p.eat(token.LParen); ok {
			for !p.at(token.RParen) && p.tok().Kind == token.Word && !p.at(token.EOF) {
				nt.Name += " " + p.advance().Text
			}
			p.expectCloser(open)
			nt.Name = strings.ToUpper(nt.Name)
			nt.Loc = p.spanFrom(tok.Span)
		}
		return nt
	case token.KwProperty, token.KwGraph:
		p.advance()
		if tok.Kw == token.KwProperty {
			p.expectKw(token.KwGraph)
		}
		return p.namedType(tok, []string{"GRAPH"})
	case token.KwBinding, token.KwTable:
		p.advance()
		if tok.Kw == token.KwBinding {
			p.expectKw(token.KwTable)
		}
		return p.namedType(tok, []string{"TABLE"})
	}

	if tok.Kw.IsPredefinedType() {
		p.advance()
		nt := p.namedType(tok, []string{tok.Kw.String()})
		if p.at(token.LParen) && takesTypeParams(tok.Kw) {
			open := p.advance()
			nt.Params = p.parseExprListUntil(token.RParen)
			p.expectCloser(open)
			nt.Loc = p.spanFrom(tok.Span)
		}
		return nt
	}
	p.expected(diag.SynExpectType, "type")
	return &ast.BadType{Base: ast.At(p.here()), Reason: "expected type"}
}

func takesTypeParams(kw token.Keyword) bool {
	switch kw {
	case token.KwString, token.KwChar, token.KwVarchar, token.KwBytes, token.KwBinary,
		token.KwVarbinary, token.KwInt, token.KwInteger, token.KwFloat,
		token.KwDecimal, token.KwDec:
		return true
	}
	return false
}

// typeWords consumes an integer type name, possibly "SMALL INTEGER".
func (p *Parser) typeWords() []string {
	first := p.advance()
	words := []string{first.Kw.String()}
	if (first.Kw == token.KwSmall || first.Kw == token.KwBig) && p.atKwOr(token.KwInteger, token.KwInt) {
		words = append(words, p.advance().Kw.String())
	}
	return words
}

func (p *Parser) namedType(first token.Token, words []string) *ast.NamedType {
	return &ast.NamedType{
		Base: ast.At(p.spanFrom(first.Span)),
		Name: strings.Join(words, " "),
		Kw:   first.Kw,
	}
}

// parseListTypePrefix parses LIST<T> [ '[' max ']' ].
func (p *Parser) parseListTypePrefix() ast.Type {
	kw := p.advance()
	lt := &ast.ListType{Keyword: kw.Kw}
	open, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "'<'")
	if !ok {
		lt.Loc = kw.Span
		return &ast.BadType{Base: ast.At(kw.Span), Partial: []ast.Node{lt}, Reason: "missing element type"}
	}
	lt.Elem = p.parseType()
	if _, ok := p.expectCloser(open); !ok {
		lt.Loc = p.spanFrom(kw.Span)
		return &ast.BadType{Base: ast.At(lt.Loc), Partial: []ast.Node{lt}, Reason: "unclosed element type"}
	}
	lt.Max = p.parseListMax()
	lt.Loc = p.spanFrom(kw.Span)
	return lt
}

// parseRecordType parses "{ name [::] type, … }" after RECORD.
func (p *Parser) parseRecordType(start source.Span) ast.Type {
	open := p.advance()
	rt := &ast.RecordType{}
	if !p.at(token.RBrace) {
		rt.Fields = p.parseFieldTypes(syncRecord)
	}
	if _, ok := p.expectCloser(open); !ok {
		rt.Loc = p.spanFrom(start)
		return &ast.BadType{Base: ast.At(rt.Loc), Partial: []ast.Node{rt}, Reason: "unclosed record type"}
	}
	rt.Loc = p.spanFrom(start)
	return rt
}

// parseFieldTypes parses "name [::|TYPED] type, …" for record types and
// property declarations.
func (p *Parser) parseFieldTypes(ctx syncContext) []*ast.FieldType {
	var out []*ast.FieldType
	for {
		fstart := p.tok().Span
		name := p.parseName("field name")
		if name == nil {
			p.recover(ctx)
		} else {
			if _, ok := p.eat(token.ColonColon); !ok {
				p.eatKw(token.KwTyped)
			}
			ft := &ast.FieldType{Name: name, Type: p.parseType()}
			ft.Loc = p.spanFrom(fstart)
			out = append(out, ft)
		}
		if !p.nextItem(ctx) {
			break
		}
	}
	return out
}

// parseAnyType parses the ANY family:
//
//	ANY | ANY VALUE | ANY [VALUE] <T | U …> | ANY RECORD | ANY NODE | ANY EDGE
//	| ANY [PROPERTY] GRAPH
func (p *Parser) parseAnyType() ast.Type {
	tok := p.advance()
	switch {
	case p.atKw(token.KwValue):
		p.advance()
		if p.at(token.Lt) {
			return p.parseUnionType(tok.Span)
		}
		return p.namedType(tok, []string{"ANY", "VALUE"})
	case p.at(token.Lt):
		return p.parseUnionType(tok.Span)
	case p.atKw(token.KwRecord):
		p.advance()
		return &ast.RecordType{Base: ast.At(p.spanFrom(tok.Span)), Any: true}
	case p.atKwOr(token.KwNode, token.KwVertex, token.KwEdge, token.KwRelationship):
		return p.namedType(tok, []string{"ANY", p.advance().Kw.String()})
	case p.atKwOr(token.KwProperty, token.KwGraph):
		p.eatKw(token.KwProperty)
		p.expectKw(token.KwGraph)
		return p.namedType(tok, []string{"ANY", "GRAPH"})
	}
	return p.namedType(tok, []string{"ANY"})
}

// parseUnionType parses "< T | U | … >".
func (p *Parser) parseUnionType(start source.Span) ast.Type {
	open := p.advance()
	ut := &ast.UnionType{}
	for {
		pos := p.s.Pos()
		ut.Members = append(ut.Members, p.parseType())
		if _, ok := p.eat(token.Pipe); !ok {
			break
		}
		if !p.guardProgress(pos) {
			break
		}
	}
	if !p.at(token.Gt) && !p.atAnyCloser() {
		p.expected(diag.SynUnexpectedToken, "'|' or '>'")
		p.recover(syncTypeArgs)
	}
	if _, ok := p.expectCloser(open); !ok {
		ut.Loc = p.spanFrom(start)
		return &ast.BadType{Base: ast.At(ut.Loc), Partial: []ast.Node{ut}, Reason: "unclosed union type"}
	}
	ut.Loc = p.spanFrom(start)
	return ut
}
