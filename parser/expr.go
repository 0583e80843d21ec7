package parser

import (
	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/source"
	"gqlfront/token"
)

// parseExpr parses a value expression. It always returns a node; on error
// the node is a BadExpr.
func (p *Parser) parseExpr() ast.Expr {
	defer p.leave()
	if !p.enter() {
		return &ast.BadExpr{Base: ast.At(p.skipDeep()), Reason: "nesting too deep"}
	}
	return p.parseBinary(precOr)
}

// parseBinary is a precedence climber over getBinaryOperatorPrec. NOT is
// accepted as a prefix only where its precedence allows it.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	var left ast.Expr
	if minPrec <= precNot && p.atKw(token.KwNot) {
		left = p.parseNot()
	} else {
		left = p.parseUnary()
	}
	return p.parseBinaryRest(left, minPrec)
}

func (p *Parser) parseNot() ast.Expr {
	var nots []token.Token
	for p.atKw(token.KwNot) {
		nots = append(nots, p.advance())
	}
	x := p.parseBinary(precIs)
	for i := len(nots) - 1; i >= 0; i-- {
		x = &ast.Unary{Base: ast.At(nots[i].Span.Cover(x.Span())), Op: ast.OpNot, X: x}
	}
	return x
}

func (p *Parser) parseBinaryRest(left ast.Expr, minPrec int) ast.Expr {
	for {
		tok := p.tok()
		if minPrec <= precIs {
			if tok.IsKeyword(token.KwIs) {
				left = p.parseIsPredicate(left)
				continue
			}
			if tok.Kind == token.Colon && p.atLabelAfterColon() {
				p.advance()
				label := p.parseLabelExpr()
				left = &ast.IsPredicate{
					Base:  ast.At(left.Span().Cover(label.Span())),
					X:     left,
					Kind:  ast.IsLabeled,
					Label: label,
				}
				continue
			}
		}

		op, prec, ok := getBinaryOperatorPrec(tok)
		if !ok || prec < minPrec {
			return left
		}
		p.advance()

		var right ast.Expr
		if tok.Kind == token.LeftArrow {
			// "a <-1" is "a < -1": the lexer saw an arrow.
			minus := source.Span{File: tok.Span.File, Start: tok.Span.Start + 1, End: tok.Span.End}
			operand := p.parseUnary()
			neg := &ast.Unary{Base: ast.At(minus.Cover(operand.Span())), Op: ast.OpNeg, X: operand}
			right = p.parseBinaryRest(neg, prec+1)
		} else {
			right = p.parseBinary(prec + 1)
		}
		left = &ast.Binary{
			Base:  ast.At(left.Span().Cover(right.Span())),
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
}

func (p *Parser) atLabelAfterColon() bool {
	next := p.peek(1)
	return next.IsIdentLike() || next.Kind == token.Percent || next.Kind == token.Bang ||
		next.Kind == token.LParen
}

// parseIsPredicate parses the suffix of "x IS [NOT] …".
func (p *Parser) parseIsPredicate(left ast.Expr) ast.Expr {
	isTok := p.advance()
	pred := &ast.IsPredicate{X: left}
	if _, ok := p.eatKw(token.KwNot); ok {
		pred.Not = true
	}
	tok := p.tok()
	switch {
	case tok.IsKeyword(token.KwNull):
		p.advance()
		pred.Kind = ast.IsNull
	case tok.IsKeyword(token.KwTrue):
		p.advance()
		pred.Kind = ast.IsTrue
	case tok.IsKeyword(token.KwFalse):
		p.advance()
		pred.Kind = ast.IsFalse
	case tok.IsKeyword(token.KwUnknown):
		p.advance()
		pred.Kind = ast.IsUnknown
	case tok.Kind == token.Word && (tok.Kw == token.KwNfc || tok.Kw == token.KwNfd ||
		tok.Kw == token.KwNfkc || tok.Kw == token.KwNfkd):
		p.advance()
		pred.Form = tok.Kw
		pred.Kind = ast.IsNormalized
		p.expectKw(token.KwNormalized)
	case tok.IsKeyword(token.KwNormalized):
		p.advance()
		pred.Kind = ast.IsNormalized
	case tok.IsKeyword(token.KwDirected):
		p.advance()
		pred.Kind = ast.IsDirected
	case tok.IsKeyword(token.KwLabeled):
		p.advance()
		pred.Kind = ast.IsLabeled
		p.eat(token.Colon)
		pred.Label = p.parseLabelExpr()
	case tok.IsKeyword(token.KwTyped) || tok.Kind == token.ColonColon:
		p.advance()
		pred.Kind = ast.IsTyped
		pred.Type = p.parseType()
	case tok.IsKeyword(token.KwSource) || tok.IsKeyword(token.KwDestination):
		p.advance()
		pred.Kind = ast.IsSourceOf
		if tok.Kw == token.KwDestination {
			pred.Kind = ast.IsDestinationOf
		}
		p.expectKw(token.KwOf)
		pred.Edge = p.parseUnary()
	case tok.IsIdentLike() || tok.Kind == token.Percent || tok.Kind == token.Bang || tok.Kind == token.LParen:
		pred.Kind = ast.IsLabeled
		pred.Label = p.parseLabelExpr()
	default:
		p.expected(diag.SynExpectKeyword, "NULL, TRUE, FALSE, UNKNOWN, NORMALIZED, DIRECTED, LABELED, TYPED, SOURCE, DESTINATION or a label")
		return &ast.BadExpr{
			Base:    ast.At(left.Span().Cover(isTok.Span)),
			Partial: []ast.Node{left},
			Reason:  "incomplete IS predicate",
		}
	}
	pred.Loc = left.Span().Cover(p.s.PrevSpan())
	return pred
}

// parseUnary parses prefix '+' and '-'. The prefixes are collected
// iteratively so a long run of signs costs no stack.
func (p *Parser) parseUnary() ast.Expr {
	var ops []token.Token
	for p.atOr(token.Plus, token.Minus) {
		ops = append(ops, p.advance())
	}
	x := p.parsePostfix()
	for i := len(ops) - 1; i >= 0; i-- {
		op := ast.OpPlus
		if ops[i].Kind == token.Minus {
			op = ast.OpNeg
		}
		x = &ast.Unary{Base: ast.At(ops[i].Span.Cover(x.Span())), Op: op, X: x}
	}
	return x
}

// parsePostfix parses property access, subscripts and "::type"
// annotations.
func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	for {
		switch {
		case p.at(token.Dot):
			dot := p.advance()
			name := p.parseName("property name")
			if name == nil {
				return &ast.BadExpr{Base: ast.At(x.Span().Cover(dot.Span)), Partial: []ast.Node{x}, Reason: "missing property name"}
			}
			x = &ast.PropertyAccess{Base: ast.At(x.Span().Cover(name.Loc)), X: x, Name: name}
		case p.at(token.LBracket):
			open := p.advance()
			idx := p.parseExpr()
			if _, ok := p.expectCloser(open); !ok {
				return &ast.BadExpr{Base: ast.At(p.spanFrom(x.Span())), Partial: []ast.Node{x, idx}, Reason: "unclosed subscript"}
			}
			x = &ast.IndexExpr{Base: ast.At(p.spanFrom(x.Span())), X: x, Index: idx}
		case p.atTypeAfterColonColon():
			p.advance()
			typ := p.parseType()
			x = &ast.TypeAnnotation{Base: ast.At(x.Span().Cover(typ.Span())), X: x, Type: typ}
		default:
			return x
		}
	}
}

func isTemporalLitKw(kw token.Keyword) bool {
	switch kw {
	case token.KwDate, token.KwTime, token.KwTimestamp, token.KwDatetime,
		token.KwLocalTime, token.KwLocalDatetime, token.KwLocalTimestamp,
		token.KwZonedTime, token.KwZonedDatetime, token.KwDuration:
		return true
	}
	return false
}

// Functions that may be called without parentheses.
func isNiladicKw(kw token.Keyword) bool {
	switch kw {
	case token.KwCurrentDate, token.KwCurrentTime, token.KwCurrentTimestamp,
		token.KwLocalTime, token.KwLocalTimestamp, token.KwLocalDatetime,
		token.KwCurrentUser, token.KwSessionUser, token.KwSystemUser, token.KwCurrentRole:
		return true
	}
	return false
}

// parsePrimary parses literals, variables, parameters, calls and the
// bracketed and keyword-introduced expression forms.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.tok()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.ByteStringLit:
		p.advance()
		return p.literal(tok, literalKinds[tok.Kind])
	case token.Param, token.SubstParam:
		return p.parseParam()
	case token.LParen:
		return p.parseParenExpr()
	case token.LBracket:
		return p.parseListLit(tok.Span, token.KwNone)
	case token.LBrace:
		return p.parseRecordLit(tok.Span, false)
	case token.QuotedIdent:
		if n := p.qualifiedCallAhead(); n > 0 {
			return p.parseQualifiedCall(n)
		}
		p.advance()
		if p.at(token.LParen) {
			return p.parseCallArgs([]*ast.Ident{identFromToken(tok)}, tok.Span)
		}
		return identFromToken(tok)
	case token.Invalid:
		p.advance()
		return &ast.BadExpr{Base: ast.At(tok.Span), Reason: "invalid input"}
	case token.Word:
		return p.parseWordPrimary(tok)
	}
	p.expected(diag.SynExpectExpression, "expression")
	return &ast.BadExpr{Base: ast.At(p.here()), Reason: "expected expression"}
}

var literalKinds = map[token.Kind]ast.LitKind{
	token.IntLit:        ast.LitInt,
	token.FloatLit:      ast.LitFloat,
	token.StringLit:     ast.LitString,
	token.ByteStringLit: ast.LitByteString,
}

func (p *Parser) literal(tok token.Token, kind ast.LitKind) *ast.Literal {
	return &ast.Literal{
		Base:  ast.At(tok.Span),
		Kind:  kind,
		Raw:   p.file.Text(tok.Span),
		Value: tok.Text,
	}
}

func (p *Parser) parseWordPrimary(tok token.Token) ast.Expr {
	next := p.peek(1).Kind
	switch tok.Kw {
	case token.KwTrue:
		p.advance()
		return p.literal(tok, ast.LitTrue)
	case token.KwFalse:
		p.advance()
		return p.literal(tok, ast.LitFalse)
	case token.KwUnknown:
		p.advance()
		return p.literal(tok, ast.LitUnknown)
	case token.KwNull:
		p.advance()
		return p.literal(tok, ast.LitNull)
	case token.KwCase:
		return p.parseCase()
	case token.KwCast:
		if next == token.LParen {
			return p.parseCast()
		}
	case token.KwExists:
		if next == token.LBrace || next == token.LParen {
			return p.parseExists()
		}
	case token.KwValue:
		if next == token.LBrace {
			p.advance()
			q := p.parseNestedQuery()
			return &ast.ValueQuery{Base: ast.At(p.spanFrom(tok.Span)), Query: q}
		}
	case token.KwPath:
		if next == token.LBracket {
			return p.parsePathValue()
		}
	case token.KwList, token.KwArray:
		if next == token.LBracket {
			p.advance()
			return p.parseListLit(tok.Span, tok.Kw)
		}
	case token.KwRecord:
		if next == token.LBrace {
			p.advance()
			return p.parseRecordLit(tok.Span, true)
		}
	}

	if isTemporalLitKw(tok.Kw) && next == token.StringLit {
		p.advance()
		str := p.advance()
		lit := p.literal(str, ast.LitTemporal)
		lit.Loc = tok.Span.Cover(str.Span)
		lit.Raw = p.file.Text(lit.Loc)
		lit.TypeKw = tok.Kw
		return lit
	}
	if next == token.LParen && !isStructural(tok) {
		p.advance()
		return p.parseCallArgs([]*ast.Ident{identFromToken(tok)}, tok.Span)
	}
	if isNiladicKw(tok.Kw) {
		p.advance()
		return &ast.Call{Base: ast.At(tok.Span), Name: []*ast.Ident{identFromToken(tok)}}
	}
	if tok.IsIdentLike() {
		if n := p.qualifiedCallAhead(); n > 0 {
			return p.parseQualifiedCall(n)
		}
		return p.parseIdent("variable")
	}
	if !isStructural(tok) {
		// A reserved word where a value was expected: keep it as a
		// variable so the tree stays complete.
		return p.parseIdent("variable")
	}
	p.expected(diag.SynExpectExpression, "expression")
	return &ast.BadExpr{Base: ast.At(p.here()), Reason: "expected expression"}
}

// qualifiedCallAhead reports how many name parts precede the '(' of a
// call written "a::b::f(", or 0 if the input is not such a call.
func (p *Parser) qualifiedCallAhead() int {
	parts := 1
	for i := 1; ; i += 2 {
		sep := p.peek(i)
		if sep.Kind == token.LParen {
			if parts > 1 {
				return parts
			}
			return 0
		}
		name := p.peek(i + 1)
		if sep.Kind != token.ColonColon || !name.IsIdentLike() {
			return 0
		}
		if name.Kind == token.Word && name.Kw.IsPredefinedType() {
			return 0
		}
		parts++
	}
}

func (p *Parser) parseQualifiedCall(parts int) ast.Expr {
	start := p.tok().Span
	var name []*ast.Ident
	for i := 0; i < parts; i++ {
		if i > 0 {
			p.advance()
		}
		name = append(name, identFromToken(p.advance()))
	}
	return p.parseCallArgs(name, start)
}

// parseCallArgs parses "( [DISTINCT|ALL] (* | args) )" after a function
// name.
func (p *Parser) parseCallArgs(name []*ast.Ident, start source.Span) ast.Expr {
	open := p.advance()
	call := &ast.Call{Name: name}
	call.Quantifier = p.parseSetQuantifier()
	if _, ok := p.eat(token.Star); ok {
		call.Star = true
	} else {
		call.Args = p.parseExprListUntil(token.RParen)
	}
	if _, ok := p.expectCloser(open); !ok {
		call.Loc = p.spanFrom(start)
		return &ast.BadExpr{Base: ast.At(call.Loc), Partial: []ast.Node{call}, Reason: "unclosed argument list"}
	}
	call.Loc = p.spanFrom(start)
	return call
}

func listContext(closer token.Kind) syncContext {
	switch closer {
	case token.RBracket:
		return syncList
	case token.RBrace:
		return syncRecord
	}
	return syncExprList
}

// parseExprListUntil parses comma-separated expressions up to, not
// including, closer. A trailing comma is reported.
func (p *Parser) parseExprListUntil(closer token.Kind) []ast.Expr {
	if p.at(closer) {
		return nil
	}
	ctx := listContext(closer)
	var out []ast.Expr
	for {
		pos := p.s.Pos()
		out = append(out, p.parseExpr())
		if comma, ok := p.eat(token.Comma); ok {
			if p.at(closer) {
				p.errAt(diag.SynTrailingComma, comma.Span, "trailing comma")
				break
			}
			continue
		}
		if p.at(closer) || p.atAnyCloser() || ctx.has(p.tok()) {
			break
		}
		p.expected(diag.SynUnexpectedToken, "',' or "+closer.String())
		p.recover(ctx)
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
		if !p.guardProgress(pos) {
			break
		}
	}
	return out
}

func (p *Parser) parseParam() *ast.Param {
	tok := p.advance()
	return &ast.Param{
		Base:        ast.At(tok.Span),
		Name:        tok.Text,
		Substituted: tok.Kind == token.SubstParam,
	}
}

func (p *Parser) parseParenExpr() ast.Expr {
	open := p.advance()
	x := p.parseExpr()
	if _, ok := p.expectCloser(open); !ok {
		return &ast.BadExpr{Base: ast.At(p.spanFrom(open.Span)), Partial: []ast.Node{x}, Reason: "unclosed parenthesis"}
	}
	return &ast.Paren{Base: ast.At(p.spanFrom(open.Span)), X: x}
}

// parseListLit parses "[ elems ]". start covers an optional LIST or ARRAY
// keyword already consumed.
func (p *Parser) parseListLit(start source.Span, kw token.Keyword) ast.Expr {
	open := p.advance()
	lit := &ast.ListLit{Keyword: kw, Elems: p.parseExprListUntil(token.RBracket)}
	if _, ok := p.expectCloser(open); !ok {
		lit.Loc = p.spanFrom(start)
		return &ast.BadExpr{Base: ast.At(lit.Loc), Partial: []ast.Node{lit}, Reason: "unclosed list"}
	}
	lit.Loc = p.spanFrom(start)
	return lit
}

func (p *Parser) parseRecordLit(start source.Span, keyword bool) ast.Expr {
	rec, closed := p.parseRecord(p.advance(), start, keyword)
	if !closed {
		return &ast.BadExpr{Base: ast.At(rec.Loc), Partial: []ast.Node{rec}, Reason: "unclosed record"}
	}
	return rec
}

// parseRecordBody parses a property map after its '{'. An unclosed map is
// reported and returned as far as it got.
func (p *Parser) parseRecordBody(open token.Token, keyword bool) *ast.RecordLit {
	rec, _ := p.parseRecord(open, open.Span, keyword)
	return rec
}

// parseRecord parses "name: expr, …}" after the '{'.
func (p *Parser) parseRecord(open token.Token, start source.Span, keyword bool) (*ast.RecordLit, bool) {
	rec := &ast.RecordLit{Keyword: keyword}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		pos := p.s.Pos()
		fstart := p.tok().Span
		name := p.parseName("field name")
		if name == nil {
			p.recover(syncRecord)
		} else {
			f := &ast.Field{Name: name}
			if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "':'"); ok {
				f.Value = p.parseExpr()
			} else {
				p.recover(syncRecord)
			}
			f.Loc = p.spanFrom(fstart)
			rec.Fields = append(rec.Fields, f)
		}
		if comma, ok := p.eat(token.Comma); ok {
			if p.at(token.RBrace) {
				p.errAt(diag.SynTrailingComma, comma.Span, "trailing comma")
			}
			continue
		}
		if !p.at(token.RBrace) && !p.atAnyCloser() && !p.at(token.Semicolon) {
			p.expected(diag.SynUnexpectedToken, "',' or '}'")
			p.recover(syncRecord)
			p.eat(token.Comma)
		}
		if !p.guardProgress(pos) {
			break
		}
		if p.at(token.Semicolon) || (p.atAnyCloser() && !p.at(token.RBrace)) {
			break
		}
	}
	_, closed := p.expectCloser(open)
	rec.Loc = p.spanFrom(start)
	return rec, closed
}

// parseCase parses simple and searched CASE expressions.
func (p *Parser) parseCase() ast.Expr {
	start := p.advance().Span
	ce := &ast.CaseExpr{}
	if !p.atKw(token.KwWhen) {
		ce.Operand = p.parseExpr()
	}
	for p.atKw(token.KwWhen) {
		wstart := p.advance().Span
		w := &ast.When{Cond: p.parseExpr()}
		if _, ok := p.expectKw(token.KwThen); ok {
			w.Result = p.parseExpr()
		}
		w.Loc = p.spanFrom(wstart)
		ce.Whens = append(ce.Whens, w)
	}
	if len(ce.Whens) == 0 {
		p.expected(diag.SynExpectKeyword, "WHEN")
	}
	if _, ok := p.eatKw(token.KwElse); ok {
		ce.Else = p.parseExpr()
	}
	if _, ok := p.expectKw(token.KwEnd); !ok {
		ce.Loc = p.spanFrom(start)
		return &ast.BadExpr{Base: ast.At(ce.Loc), Partial: []ast.Node{ce}, Reason: "CASE without END"}
	}
	ce.Loc = p.spanFrom(start)
	return ce
}

// parseCast parses CAST ( expr AS type ).
func (p *Parser) parseCast() ast.Expr {
	start := p.advance().Span
	open := p.advance()
	ce := &ast.CastExpr{X: p.parseExpr()}
	if _, ok := p.expectKw(token.KwAs); ok {
		ce.Type = p.parseType()
	}
	if _, ok := p.expectCloser(open); !ok {
		ce.Loc = p.spanFrom(start)
		return &ast.BadExpr{Base: ast.At(ce.Loc), Partial: []ast.Node{ce}, Reason: "unclosed CAST"}
	}
	ce.Loc = p.spanFrom(start)
	return ce
}

// parseExists parses EXISTS followed by a braced or parenthesized body
// that is either a query or a graph pattern with an optional WHERE.
func (p *Parser) parseExists() ast.Expr {
	start := p.advance().Span
	open := p.advance()
	ex := &ast.ExistsExpr{}
	if p.startsClause() || open.Kind == token.LBrace && p.at(token.LBrace) {
		ex.Query = p.parseQuery()
	} else {
		ex.Patterns = p.parsePatternList()
		if _, ok := p.eatKw(token.KwWhere); ok {
			ex.Where = p.parseExpr()
		}
	}
	if _, ok := p.expectCloser(open); !ok {
		ex.Loc = p.spanFrom(start)
		return &ast.BadExpr{Base: ast.At(ex.Loc), Partial: []ast.Node{ex}, Reason: "unclosed EXISTS"}
	}
	ex.Loc = p.spanFrom(start)
	return ex
}

// parsePathValue parses PATH [ node, edge, node, … ].
func (p *Parser) parsePathValue() ast.Expr {
	start := p.advance().Span
	open := p.advance()
	pv := &ast.PathValue{Elems: p.parseExprListUntil(token.RBracket)}
	if _, ok := p.expectCloser(open); !ok {
		pv.Loc = p.spanFrom(start)
		return &ast.BadExpr{Base: ast.At(pv.Loc), Partial: []ast.Node{pv}, Reason: "unclosed PATH constructor"}
	}
	pv.Loc = p.spanFrom(start)
	return pv
}
