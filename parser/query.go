package parser

import (
	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/token"
)

var setOpByKw = map[token.Keyword]ast.SetOp{
	token.KwUnion:     ast.SetUnion,
	token.KwExcept:    ast.SetExcept,
	token.KwIntersect: ast.SetIntersect,
	token.KwOtherwise: ast.SetOtherwise,
	token.KwNext:      ast.SetNext,
}

// parseQuery parses a composite query:
//
//	query := primary ((UNION|EXCEPT|INTERSECT) [ALL|DISTINCT] | OTHERWISE | NEXT [YIELD …]) primary)*
//
// Set operators are left-associative and share one precedence level.
func (p *Parser) parseQuery() ast.Query {
	defer p.leave()
	if !p.enter() {
		return &ast.BadStmt{Base: ast.At(p.skipDeep()), Reason: "nesting too deep"}
	}

	left := p.parseQueryPrimary()
	for p.atSetOperator() {
		start := p.s.Pos()
		opTok := p.advance()
		cq := &ast.CompositeQuery{Op: setOpByKw[opTok.Kw], Left: left}
		switch cq.Op {
		case ast.SetUnion, ast.SetExcept, ast.SetIntersect:
			if _, ok := p.eatKw(token.KwAll); ok {
				cq.Quantifier = ast.QuantAll
			} else if _, ok := p.eatKw(token.KwDistinct); ok {
				cq.Quantifier = ast.QuantDistinct
			}
		case ast.SetNext:
			if p.atKw(token.KwYield) {
				cq.Yield = p.parseYield()
			}
		}
		if p.at(token.LBrace) || p.startsClause() {
			cq.Right = p.parseQueryPrimary()
		} else {
			p.expected(diag.SynExpectClause, "query after "+opTok.Kw.String())
			cq.Right = &ast.BadStmt{Base: ast.At(p.here()), Reason: "missing query operand"}
		}
		cq.Loc = ast.CoverNodes(opTok.Span, left, cq.Right)
		left = cq
		if !p.guardProgress(start) {
			break
		}
	}
	return left
}

func (p *Parser) parseQueryPrimary() ast.Query {
	if p.at(token.LBrace) {
		return p.parseNestedQuery()
	}
	return p.parseLinearQuery()
}

// parseNestedQuery parses "{ query }".
func (p *Parser) parseNestedQuery() ast.Query {
	open := p.advance()
	nq := &ast.NestedQuery{}
	if p.at(token.RBrace) {
		p.errAt(diag.SynExpectClause, p.tok().Span, "empty query block")
	} else {
		nq.Query = p.parseQuery()
	}
	if !p.at(token.RBrace) && !p.at(token.EOF) {
		p.expected(diag.SynUnexpectedToken, "'}'")
		p.recover(syncClause)
	}
	if _, ok := p.expectCloser(open); !ok {
		return &ast.BadStmt{
			Base:    ast.At(p.spanFrom(open.Span)),
			Partial: []ast.Node{nq.Query},
			Reason:  "unclosed query block",
		}
	}
	nq.Loc = p.spanFrom(open.Span)
	return nq
}

// parseLinearQuery parses an optional leading USE followed by clauses.
// RETURN and FINISH end the query; a clause after them is reported and
// kept.
func (p *Parser) parseLinearQuery() ast.Query {
	start := p.tok().Span
	q := &ast.LinearQuery{}
	if p.atKw(token.KwUse) {
		q.Use = p.parseUse()
	}
	endedBy := token.KwNone
	for p.startsClause() {
		pos := p.s.Pos()
		if endedBy != token.KwNone {
			p.errAt(diag.SynClauseOrder, p.tok().Span,
				p.tok().Kw.String()+" cannot follow "+endedBy.String())
			endedBy = token.KwNone
		}
		kw := p.tok().Kw
		q.Clauses = append(q.Clauses, p.parseClause())
		if kw == token.KwReturn || kw == token.KwFinish {
			endedBy = kw
		}
		if !p.startsClause() && !p.atQueryEnd() {
			if bad := p.skipBetweenClauses(); bad != nil {
				q.Clauses = append(q.Clauses, bad)
			}
		}
		if !p.guardProgress(pos) {
			break
		}
	}
	if q.Use == nil && len(q.Clauses) == 0 {
		p.expected(diag.SynExpectClause, "query clause")
	}
	q.Loc = p.spanFrom(start)
	return q
}

// atQueryEnd reports a token that legitimately follows a linear query.
func (p *Parser) atQueryEnd() bool {
	switch p.tok().Kind {
	case token.Semicolon, token.EOF, token.RBrace, token.RParen:
		return true
	}
	tok := p.tok()
	return tok.Kind == token.Word && (isOneOf(tok.Kw, setOperators) || isOneOf(tok.Kw, statementStarters))
}

// skipBetweenClauses reports junk after a clause and skips to the next
// clause or query boundary, so the rest of the query stays intact.
func (p *Parser) skipBetweenClauses() ast.Clause {
	tok := p.tok()
	if tok.Kind != token.Invalid {
		p.errAt(diag.SynUnexpectedToken, tok.Span, "unexpected "+tok.Describe()+" after clause")
	}
	sp, ok := p.recover(syncClause)
	if !ok {
		return nil
	}
	return &ast.BadClause{Base: ast.At(sp), Reason: "unexpected input after clause"}
}
