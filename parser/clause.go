package parser

import (
	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/source"
	"gqlfront/token"
)

// parseClause dispatches on a clause keyword. The caller has checked
// startsClause.
func (p *Parser) parseClause() ast.Clause {
	tok := p.tok()
	switch tok.Kw {
	case token.KwMatch:
		return p.parseMatch(tok.Span, false)
	case token.KwOptional:
		return p.parseOptional()
	case token.KwUse:
		return p.parseUse()
	case token.KwLet:
		return p.parseLet()
	case token.KwFor:
		return p.parseFor()
	case token.KwFilter:
		p.advance()
		p.eatKw(token.KwWhere)
		cond := p.parseExpr()
		return &ast.FilterClause{Base: ast.At(p.spanFrom(tok.Span)), Cond: cond}
	case token.KwOrder:
		return p.parseOrderBy()
	case token.KwOffset, token.KwSkip:
		return p.parseOffset()
	case token.KwLimit:
		return p.parseLimit()
	case token.KwCall:
		return p.parseCall(tok.Span, false)
	case token.KwInsert:
		p.advance()
		pats := p.parsePatternList()
		return &ast.InsertClause{Base: ast.At(p.spanFrom(tok.Span)), Patterns: pats}
	case token.KwSet:
		return p.parseSet()
	case token.KwRemove:
		return p.parseRemove()
	case token.KwDelete, token.KwDetach, token.KwNodetach:
		return p.parseDelete()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwFinish:
		p.advance()
		return &ast.FinishClause{Base: ast.At(tok.Span)}
	case token.KwSelect:
		return p.parseSelect()
	}
	p.expected(diag.SynExpectClause, "clause")
	return &ast.BadClause{Base: ast.At(p.here()), Reason: "expected clause"}
}

// nextItem consumes the ',' between list elements and reports whether
// another element follows. Junk before the next separator or the end of
// the list is reported and skipped up to the context's sync set.
func (p *Parser) nextItem(ctx syncContext) bool {
	if _, ok := p.eat(token.Comma); ok {
		return true
	}
	if ctx.has(p.tok()) || p.atAnyCloser() {
		return false
	}
	p.expected(diag.SynUnexpectedToken, "',' or end of "+ctx.String())
	p.recover(ctx)
	_, ok := p.eat(token.Comma)
	return ok
}

func (p *Parser) atAnyCloser() bool {
	return p.atOr(token.RParen, token.RBracket, token.RBrace, token.EOF)
}

func (p *Parser) parseUse() *ast.UseClause {
	start := p.advance().Span
	ref := p.parseCatalogRef("graph reference")
	return &ast.UseClause{Base: ast.At(p.spanFrom(start)), Graph: ref}
}

// parseMatch parses
//
//	MATCH [REPEATABLE ELEMENTS | DIFFERENT EDGES] patterns [KEEP prefix]
//	    [WHERE expr] [YIELD items]
func (p *Parser) parseMatch(start source.Span, optional bool) *ast.MatchClause {
	p.expectKw(token.KwMatch)
	mc := &ast.MatchClause{Optional: optional}
	mc.Mode = p.parseMatchMode()
	mc.Patterns = p.parsePatternList()
	if _, ok := p.eatKw(token.KwKeep); ok {
		if mc.Keep = p.parsePathPrefix(); mc.Keep == nil {
			p.expected(diag.SynExpectKeyword, "path search prefix or mode after KEEP")
		}
	}
	if _, ok := p.eatKw(token.KwWhere); ok {
		mc.Where = p.parseExpr()
	}
	if p.atKw(token.KwYield) {
		mc.Yield = p.parseYield()
	}
	mc.Loc = p.spanFrom(start)
	return mc
}

func (p *Parser) parseMatchMode() ast.MatchMode {
	switch {
	case p.atKw(token.KwRepeatable):
		p.advance()
		if _, ok := p.eatKw(token.KwElement); !ok {
			if _, ok := p.eatKw(token.KwElements); !ok {
				p.expected(diag.SynExpectKeyword, "ELEMENTS")
			}
		}
		return ast.MatchRepeatableElements
	case p.atKw(token.KwDifferent):
		p.advance()
		if !p.atKwOr(token.KwEdge, token.KwEdges, token.KwRelationship, token.KwRelationships) {
			p.expected(diag.SynExpectKeyword, "EDGES")
		} else {
			p.advance()
		}
		return ast.MatchDifferentEdges
	}
	return ast.MatchModeNone
}

// parseOptional parses OPTIONAL MATCH, OPTIONAL CALL and the OPTIONAL
// block forms "OPTIONAL { query }" and "OPTIONAL ( query )".
func (p *Parser) parseOptional() ast.Clause {
	start := p.advance().Span
	switch {
	case p.atKw(token.KwMatch):
		return p.parseMatch(start, true)
	case p.atKw(token.KwCall):
		return p.parseCall(start, true)
	case p.at(token.LBrace):
		body := p.parseNestedQuery()
		return &ast.OptionalClause{Base: ast.At(p.spanFrom(start)), Body: body}
	case p.at(token.LParen):
		open := p.advance()
		body := p.parseQuery()
		if _, ok := p.expectCloser(open); !ok {
			return &ast.BadClause{
				Base:    ast.At(p.spanFrom(start)),
				Partial: []ast.Node{body},
				Reason:  "unclosed OPTIONAL block",
			}
		}
		return &ast.OptionalClause{Base: ast.At(p.spanFrom(start)), Body: body}
	}
	p.expected(diag.SynExpectKeyword, "MATCH, CALL or a query block after OPTIONAL")
	return &ast.BadClause{Base: ast.At(start), Reason: "incomplete OPTIONAL"}
}

// parseLet parses LET [VALUE] v [::type | TYPED type] = expr, ….
func (p *Parser) parseLet() ast.Clause {
	start := p.advance().Span
	lc := &ast.LetClause{}
	for {
		bstart := p.tok().Span
		p.eatKw(token.KwValue)
		b := &ast.LetBinding{Var: p.parseIdent("variable name")}
		if _, ok := p.eat(token.ColonColon); ok {
			b.Type = p.parseType()
		} else if _, ok := p.eatKw(token.KwTyped); ok {
			b.Type = p.parseType()
		}
		if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "'='"); ok {
			b.Value = p.parseExpr()
		}
		b.Loc = p.spanFrom(bstart)
		lc.Bindings = append(lc.Bindings, b)
		if !p.nextItem(syncItems) {
			break
		}
	}
	lc.Loc = p.spanFrom(start)
	return lc
}

// parseFor parses FOR v IN expr [WITH ORDINALITY v | WITH OFFSET v].
func (p *Parser) parseFor() ast.Clause {
	start := p.advance().Span
	fc := &ast.ForClause{Var: p.parseIdent("variable name")}
	if _, ok := p.expectKw(token.KwIn); ok {
		fc.Source = p.parseExpr()
	}
	if _, ok := p.eatKw(token.KwWith); ok {
		switch {
		case p.atKw(token.KwOrdinality):
			p.advance()
			fc.WithOrdinality = true
		case p.atKw(token.KwOffset):
			p.advance()
		default:
			p.expected(diag.SynExpectKeyword, "ORDINALITY or OFFSET")
		}
		fc.WithVar = p.parseIdent("variable name")
	}
	fc.Loc = p.spanFrom(start)
	return fc
}

// parseOrderBy parses ORDER BY key [ASC|DESC] [NULLS FIRST|LAST], ….
func (p *Parser) parseOrderBy() *ast.OrderByClause {
	start := p.advance().Span
	ob := &ast.OrderByClause{}
	if _, ok := p.expectKw(token.KwBy); !ok {
		ob.Loc = p.spanFrom(start)
		return ob
	}
	for {
		kstart := p.tok().Span
		key := &ast.SortKey{Expr: p.parseExpr()}
		switch {
		case p.atKwOr(token.KwAsc, token.KwAscending):
			p.advance()
			key.Dir = ast.SortAsc
		case p.atKwOr(token.KwDesc, token.KwDescending):
			p.advance()
			key.Dir = ast.SortDesc
		}
		if _, ok := p.eatKw(token.KwNulls); ok {
			switch {
			case p.atKw(token.KwFirst):
				p.advance()
				key.Nulls = ast.NullsFirst
			case p.atKw(token.KwLast):
				p.advance()
				key.Nulls = ast.NullsLast
			default:
				p.expected(diag.SynExpectKeyword, "FIRST or LAST")
			}
		}
		key.Loc = p.spanFrom(kstart)
		ob.Keys = append(ob.Keys, key)
		if !p.nextItem(syncItems) {
			break
		}
	}
	ob.Loc = p.spanFrom(start)
	return ob
}

func (p *Parser) parseOffset() *ast.OffsetClause {
	tok := p.advance()
	oc := &ast.OffsetClause{Skip: tok.IsKeyword(token.KwSkip), Count: p.parseExpr()}
	oc.Loc = p.spanFrom(tok.Span)
	return oc
}

func (p *Parser) parseLimit() *ast.LimitClause {
	start := p.advance().Span
	lc := &ast.LimitClause{Count: p.parseExpr()}
	lc.Loc = p.spanFrom(start)
	return lc
}

// parseCall parses a procedure call:
//
//	CALL ref ( args ) [YIELD items]
//	CALL [( vars )] { query }
func (p *Parser) parseCall(start source.Span, optional bool) ast.Clause {
	p.expectKw(token.KwCall)
	cc := &ast.CallClause{Optional: optional}
	switch {
	case p.at(token.LBrace):
		cc.Body = p.parseNestedQuery()
	case p.at(token.LParen):
		open := p.advance()
		if !p.at(token.RParen) {
			cc.Vars = p.parseIdentList(token.Comma, "variable name")
		}
		p.expectCloser(open)
		if p.at(token.LBrace) {
			cc.Body = p.parseNestedQuery()
		} else {
			p.expected(diag.SynUnexpectedToken, "'{'")
		}
	default:
		cc.Proc = p.parseCatalogRef("procedure name")
		if open, ok := p.eat(token.LParen); ok {
			cc.Args = p.parseExprListUntil(token.RParen)
			p.expectCloser(open)
		} else if cc.Proc != nil {
			p.expected(diag.SynUnexpectedToken, "'('")
		}
		if p.atKw(token.KwYield) {
			cc.Yield = p.parseYield()
		}
	}
	cc.Loc = p.spanFrom(start)
	return cc
}

// parseYield parses YIELD name [AS alias], ….
func (p *Parser) parseYield() *ast.YieldClause {
	start := p.advance().Span
	yc := &ast.YieldClause{}
	for {
		istart := p.tok().Span
		name := p.parseIdent("yield item")
		if name == nil {
			break
		}
		item := &ast.YieldItem{Name: name}
		if _, ok := p.eatKw(token.KwAs); ok {
			item.Alias = p.parseIdent("alias")
		}
		item.Loc = p.spanFrom(istart)
		yc.Items = append(yc.Items, item)
		if !p.nextItem(syncItems) {
			break
		}
	}
	yc.Loc = p.spanFrom(start)
	return yc
}

// parseSet parses SET items:
//
//	v.prop = expr | v = { record } | v :Label | v IS Label
func (p *Parser) parseSet() ast.Clause {
	start := p.advance().Span
	sc := &ast.SetClause{}
	for {
		istart := p.tok().Span
		v := p.parseIdent("variable name")
		if v == nil {
			break
		}
		item := &ast.SetItem{Var: v}
		switch {
		case p.at(token.Dot):
			p.advance()
			item.Kind = ast.SetProperty
			item.Prop = p.parseName("property name")
			if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "'='"); ok {
				item.Value = p.parseExpr()
			}
		case p.at(token.Eq):
			p.advance()
			item.Kind = ast.SetAllProperties
			item.Value = p.parseExpr()
		case p.at(token.Colon) || p.atKw(token.KwIs):
			p.advance()
			item.Kind = ast.SetLabel
			item.Label = p.parseIdent("label name")
		default:
			p.expected(diag.SynUnexpectedToken, "'.', '=', ':' or IS")
		}
		item.Loc = p.spanFrom(istart)
		sc.Items = append(sc.Items, item)
		if !p.nextItem(syncItems) {
			break
		}
	}
	sc.Loc = p.spanFrom(start)
	return sc
}

// parseRemove parses REMOVE v.prop | v :Label | v IS Label, ….
func (p *Parser) parseRemove() ast.Clause {
	start := p.advance().Span
	rc := &ast.RemoveClause{}
	for {
		istart := p.tok().Span
		v := p.parseIdent("variable name")
		if v == nil {
			break
		}
		item := &ast.RemoveItem{Var: v}
		switch {
		case p.at(token.Dot):
			p.advance()
			item.Kind = ast.RemoveProperty
			item.Prop = p.parseName("property name")
		case p.at(token.Colon) || p.atKw(token.KwIs):
			p.advance()
			item.Kind = ast.RemoveLabel
			item.Label = p.parseIdent("label name")
		default:
			p.expected(diag.SynUnexpectedToken, "'.', ':' or IS")
		}
		item.Loc = p.spanFrom(istart)
		rc.Items = append(rc.Items, item)
		if !p.nextItem(syncItems) {
			break
		}
	}
	rc.Loc = p.spanFrom(start)
	return rc
}

// parseDelete parses [DETACH | NODETACH] DELETE expr, ….
func (p *Parser) parseDelete() ast.Clause {
	start := p.tok().Span
	dc := &ast.DeleteClause{}
	switch {
	case p.atKw(token.KwDetach):
		p.advance()
		dc.Detach = ast.DetachYes
	case p.atKw(token.KwNodetach):
		p.advance()
		dc.Detach = ast.DetachNo
	}
	if _, ok := p.expectKw(token.KwDelete); ok {
		for {
			dc.Items = append(dc.Items, p.parseExpr())
			if !p.nextItem(syncItems) {
				break
			}
		}
	}
	dc.Loc = p.spanFrom(start)
	return dc
}

func (p *Parser) parseSetQuantifier() ast.SetQuantifier {
	if _, ok := p.eatKw(token.KwDistinct); ok {
		return ast.QuantDistinct
	}
	if _, ok := p.eatKw(token.KwAll); ok {
		return ast.QuantAll
	}
	return ast.QuantNone
}

// parseProjection parses "* | item, …" for RETURN and SELECT. It reports
// whether '*' was used.
func (p *Parser) parseProjection() (bool, []*ast.ReturnItem) {
	if _, ok := p.eat(token.Star); ok {
		return true, nil
	}
	var items []*ast.ReturnItem
	for {
		istart := p.tok().Span
		item := &ast.ReturnItem{Expr: p.parseExpr()}
		if _, ok := p.eatKw(token.KwAs); ok {
			item.Alias = p.parseIdent("alias")
		}
		item.Loc = p.spanFrom(istart)
		items = append(items, item)
		if !p.nextItem(syncItems) {
			break
		}
	}
	return false, items
}

func (p *Parser) parseGroupBy() []ast.Expr {
	p.advance()
	if _, ok := p.expectKw(token.KwBy); !ok {
		return nil
	}
	// GROUP BY () is the empty grouping set.
	if p.at(token.LParen) && p.peek(1).Kind == token.RParen {
		p.advance()
		p.advance()
		return nil
	}
	var keys []ast.Expr
	for {
		keys = append(keys, p.parseExpr())
		if !p.nextItem(syncItems) {
			break
		}
	}
	return keys
}

// parseReturn parses
//
//	RETURN [DISTINCT|ALL] (* | items | NO BINDINGS) [GROUP BY keys]
//	    [ORDER BY keys] [OFFSET n] [LIMIT n]
//
// ORDER BY, OFFSET and LIMIT directly after RETURN belong to it.
func (p *Parser) parseReturn() ast.Clause {
	start := p.advance().Span
	rc := &ast.ReturnClause{Quantifier: p.parseSetQuantifier()}
	if p.atKw(token.KwNo) && p.peekKw(1, token.KwBindings) {
		p.advance()
		p.advance()
	} else {
		rc.Star, rc.Items = p.parseProjection()
	}
	if p.atKw(token.KwGroup) {
		rc.GroupBy = p.parseGroupBy()
	}
	rc.OrderBy, rc.Offset, rc.Limit = p.parseResultModifiers()
	rc.Loc = p.spanFrom(start)
	return rc
}

func (p *Parser) parseResultModifiers() (*ast.OrderByClause, *ast.OffsetClause, *ast.LimitClause) {
	var (
		ob  *ast.OrderByClause
		off *ast.OffsetClause
		lim *ast.LimitClause
	)
	if p.atKw(token.KwOrder) {
		ob = p.parseOrderBy()
	}
	if p.atKwOr(token.KwOffset, token.KwSkip) {
		off = p.parseOffset()
	}
	if p.atKw(token.KwLimit) {
		lim = p.parseLimit()
	}
	return ob, off, lim
}

// parseSelect parses
//
//	SELECT [DISTINCT|ALL] (* | items) [FROM source] [WHERE expr]
//	    [GROUP BY keys] [HAVING expr] [ORDER BY keys] [OFFSET n] [LIMIT n]
//
// where source is "{ query }", a list of MATCH clauses, or a graph
// reference followed by MATCH clauses.
func (p *Parser) parseSelect() ast.Clause {
	start := p.advance().Span
	sc := &ast.SelectClause{Quantifier: p.parseSetQuantifier()}
	sc.Star, sc.Items = p.parseProjection()
	if fromTok, ok := p.eatKw(token.KwFrom); ok {
		from := &ast.SelectFrom{}
		switch {
		case p.at(token.LBrace):
			from.Query = p.parseNestedQuery()
		case p.atKw(token.KwMatch):
		default:
			from.Graph = p.parseCatalogRef("graph reference")
		}
		if from.Query == nil {
			for p.atKw(token.KwMatch) {
				from.Matches = append(from.Matches, p.parseMatch(p.tok().Span, false))
				p.eat(token.Comma)
			}
			if len(from.Matches) == 0 && from.Graph != nil {
				p.expected(diag.SynExpectKeyword, "MATCH")
			}
		}
		from.Loc = p.spanFrom(fromTok.Span)
		sc.From = from
	}
	if _, ok := p.eatKw(token.KwWhere); ok {
		sc.Where = p.parseExpr()
	}
	if p.atKw(token.KwGroup) {
		sc.GroupBy = p.parseGroupBy()
	}
	if _, ok := p.eatKw(token.KwHaving); ok {
		sc.Having = p.parseExpr()
	}
	sc.OrderBy, sc.Offset, sc.Limit = p.parseResultModifiers()
	sc.Loc = p.spanFrom(start)
	return sc
}
