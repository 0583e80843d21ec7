package parser

import (
	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/source"
	"gqlfront/token"
)

func isPredefinedRef(kw token.Keyword) bool {
	switch kw {
	case token.KwHomeGraph, token.KwHomePropertyGraph, token.KwHomeSchema,
		token.KwCurrentGraph, token.KwCurrentPropertyGraph, token.KwCurrentSchema:
		return true
	}
	return false
}

// parseCatalogRef parses a reference to a schema, graph, graph type or
// procedure:
//
//	$param | HOME_GRAPH | CURRENT_SCHEMA | …
//	/ | /a/b | ../../a/b | a | a.b | a::b
//
// It returns nil after reporting when no reference is present.
func (p *Parser) parseCatalogRef(what string) *ast.CatalogRef {
	tok := p.tok()
	ref := &ast.CatalogRef{}
	switch {
	case tok.Kind == token.Param:
		ref.Kind = ast.RefParam
		ref.Param = p.parseParam()
		ref.Loc = tok.Span
		return ref
	case tok.Kind == token.Word && isPredefinedRef(tok.Kw):
		p.advance()
		ref.Kind = ast.RefPredefined
		ref.Predefined = tok.Kw
		ref.Loc = tok.Span
		return ref
	case tok.Kind == token.Slash:
		p.advance()
		ref.Absolute = true
		if !p.tok().IsIdentLike() {
			// "/" alone names the root directory.
			ref.Loc = tok.Span
			return ref
		}
	case tok.Kind == token.DotDot:
		for p.at(token.DotDot) {
			p.advance()
			ref.Up++
			if _, ok := p.expect(token.Slash, diag.SynUnexpectedToken, "'/'"); !ok {
				ref.Loc = p.spanFrom(tok.Span)
				return ref
			}
		}
	case tok.IsIdentLike():
	default:
		p.expected(diag.SynExpectGraphRef, what)
		return nil
	}
	p.parseRefParts(ref, what)
	ref.Loc = p.spanFrom(tok.Span)
	return ref
}

func (p *Parser) parseRefParts(ref *ast.CatalogRef, what string) {
	for {
		id := p.parseIdent(what)
		if id == nil {
			return
		}
		ref.Parts = append(ref.Parts, id)
		if !p.atOr(token.Slash, token.Dot, token.ColonColon) || !p.peek(1).IsIdentLike() {
			return
		}
		if p.at(token.ColonColon) && !p.procNameAhead() {
			return
		}
		p.advance()
	}
}

func (p *Parser) parseIfNotExists() bool {
	if !p.atKw(token.KwIf) {
		return false
	}
	p.advance()
	p.expectKw(token.KwNot)
	p.expectKw(token.KwExists)
	return true
}

func (p *Parser) parseIfExists() bool {
	if !p.atKw(token.KwIf) {
		return false
	}
	p.advance()
	p.expectKw(token.KwExists)
	return true
}

// parseCreate parses CREATE SCHEMA, CREATE GRAPH and CREATE GRAPH TYPE.
func (p *Parser) parseCreate() ast.Stmt {
	start := p.advance().Span
	orReplace := false
	if _, ok := p.eatKw(token.KwOr); ok {
		p.expectKw(token.KwReplace)
		orReplace = true
	}
	if p.atKw(token.KwSchema) {
		p.advance()
		if orReplace {
			p.errAt(diag.SynUnsupportedSyntax, start, "OR REPLACE is not allowed for schemas")
		}
		st := &ast.CreateSchemaStmt{IfNotExists: p.parseIfNotExists()}
		st.Path = p.parseCatalogRef("schema path")
		st.Loc = p.spanFrom(start)
		return st
	}
	_, property := p.eatKw(token.KwProperty)
	if _, ok := p.expectKw(token.KwGraph); !ok {
		p.recover(syncTop)
		return &ast.BadStmt{Base: ast.At(p.spanFrom(start)), Reason: "incomplete CREATE"}
	}
	if _, ok := p.eatKw(token.KwType); ok {
		return p.parseCreateGraphType(start, orReplace, property)
	}
	return p.parseCreateGraph(start, orReplace, property)
}

// parseCreateGraph parses the tail of
//
//	CREATE [OR REPLACE] [PROPERTY] GRAPH [IF NOT EXISTS] name
//	    ( [TYPED|::] ANY [[PROPERTY] GRAPH]
//	    | LIKE ref
//	    | [TYPED|::] ref
//	    | [TYPED|::] [[PROPERTY] GRAPH] { element types } )
//	    [AS COPY OF ref]
func (p *Parser) parseCreateGraph(start source.Span, orReplace, property bool) ast.Stmt {
	st := &ast.CreateGraphStmt{OrReplace: orReplace, Property: property}
	st.IfNotExists = p.parseIfNotExists()
	st.Name = p.parseCatalogRef("graph name")

	if _, ok := p.eatKw(token.KwTyped); ok {
		st.Typed = true
	} else if _, ok := p.eat(token.ColonColon); ok {
		st.Typed = true
	}
	switch {
	case p.atKw(token.KwAny):
		p.advance()
		st.AnyType = true
		p.eatKw(token.KwProperty)
		p.eatKw(token.KwGraph)
	case p.atKw(token.KwLike):
		p.advance()
		st.Like = p.parseCatalogRef("graph reference")
	case p.at(token.LBrace) || p.atKwOr(token.KwProperty, token.KwGraph):
		p.eatKw(token.KwProperty)
		p.eatKw(token.KwGraph)
		st.Spec = p.parseGraphTypeSpec()
	case p.atKw(token.KwAs):
	default:
		if p.startsCatalogRef() {
			st.TypeRef = p.parseCatalogRef("graph type reference")
		} else {
			p.expected(diag.SynExpectType, "graph type")
		}
	}
	if p.atKw(token.KwAs) {
		p.advance()
		p.expectKw(token.KwCopy)
		p.expectKw(token.KwOf)
		st.CopyOf = p.parseCatalogRef("graph reference")
	}
	st.Loc = p.spanFrom(start)
	return st
}

// parseCreateGraphType parses the tail of
//
//	CREATE [OR REPLACE] [PROPERTY] GRAPH TYPE [IF NOT EXISTS] name
//	    ( [AS] COPY OF ref | LIKE ref | [AS] { element types } )
func (p *Parser) parseCreateGraphType(start source.Span, orReplace, property bool) ast.Stmt {
	st := &ast.CreateGraphTypeStmt{OrReplace: orReplace, Property: property}
	st.IfNotExists = p.parseIfNotExists()
	st.Name = p.parseCatalogRef("graph type name")
	_, as := p.eatKw(token.KwAs)
	switch {
	case p.atKw(token.KwCopy):
		p.advance()
		p.expectKw(token.KwOf)
		st.CopyOf = p.parseCatalogRef("graph type reference")
	case p.atKw(token.KwLike) && !as:
		p.advance()
		st.Like = p.parseCatalogRef("graph reference")
	case p.at(token.LBrace):
		st.Spec = p.parseGraphTypeSpec()
	default:
		p.expected(diag.SynExpectType, "graph type specification")
	}
	st.Loc = p.spanFrom(start)
	return st
}

// parseDrop parses DROP SCHEMA, DROP GRAPH and DROP GRAPH TYPE.
func (p *Parser) parseDrop() ast.Stmt {
	start := p.advance().Span
	if p.atKw(token.KwSchema) {
		p.advance()
		st := &ast.DropSchemaStmt{IfExists: p.parseIfExists()}
		st.Path = p.parseCatalogRef("schema path")
		st.Loc = p.spanFrom(start)
		return st
	}
	_, property := p.eatKw(token.KwProperty)
	if _, ok := p.expectKw(token.KwGraph); !ok {
		p.recover(syncTop)
		return &ast.BadStmt{Base: ast.At(p.spanFrom(start)), Reason: "incomplete DROP"}
	}
	if _, ok := p.eatKw(token.KwType); ok {
		st := &ast.DropGraphTypeStmt{Property: property, IfExists: p.parseIfExists()}
		st.Name = p.parseCatalogRef("graph type name")
		st.Loc = p.spanFrom(start)
		return st
	}
	st := &ast.DropGraphStmt{Property: property, IfExists: p.parseIfExists()}
	st.Name = p.parseCatalogRef("graph name")
	st.Loc = p.spanFrom(start)
	return st
}

func (p *Parser) startsCatalogRef() bool {
	tok := p.tok()
	switch tok.Kind {
	case token.Param, token.Slash, token.DotDot, token.QuotedIdent:
		return true
	case token.Word:
		return tok.Tier != token.Reserved || isPredefinedRef(tok.Kw)
	}
	return false
}

// procNameAhead reports whether the '::' under the cursor joins the parts of
// a procedure name, which always ends in an argument list.
func (p *Parser) procNameAhead() bool {
	k := p.peek(2).Kind
	return k == token.ColonColon || k == token.LParen
}
