package parser

import (
	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/source"
	"gqlfront/token"
)

// parseStatement dispatches on the first token of a statement.
func (p *Parser) parseStatement() ast.Stmt {
	tok := p.tok()
	switch {
	case tok.IsKeyword(token.KwSession):
		return p.parseSession()
	case tok.IsKeyword(token.KwStart):
		return p.parseStartTx()
	case tok.IsKeyword(token.KwCommit):
		p.advance()
		_, work := p.eatKw(token.KwWork)
		return &ast.CommitStmt{Base: ast.At(p.spanFrom(tok.Span)), Work: work}
	case tok.IsKeyword(token.KwRollback):
		p.advance()
		_, work := p.eatKw(token.KwWork)
		return &ast.RollbackStmt{Base: ast.At(p.spanFrom(tok.Span)), Work: work}
	case tok.IsKeyword(token.KwCreate):
		return p.parseCreate()
	case tok.IsKeyword(token.KwDrop):
		return p.parseDrop()
	case tok.Kind == token.LBrace || p.startsClause():
		return p.parseQuery()
	}

	p.expected(diag.SynExpectStatement, "statement")
	if tok.Kind == token.Invalid {
		p.advance()
	}
	p.recover(syncTop)
	return &ast.BadStmt{Base: ast.At(p.spanFrom(tok.Span)), Reason: "expected statement"}
}

// Session statements:
//
//	SESSION SET SCHEMA ref
//	SESSION SET [PROPERTY] GRAPH ref
//	SESSION SET TIME ZONE expr
//	SESSION SET [VALUE|BINDING TABLE|TABLE|[PROPERTY] GRAPH] [PARAMETER]
//	    [IF NOT EXISTS] $p [::type | TYPED type] = expr
//	SESSION RESET [ALL] [SCHEMA|[PROPERTY] GRAPH|TIME ZONE|PARAMETERS|[PARAMETER] $p]
//	SESSION CLOSE
func (p *Parser) parseSession() ast.Stmt {
	start := p.advance().Span
	switch {
	case p.atKw(token.KwSet):
		p.advance()
		return p.parseSessionSet(start)
	case p.atKw(token.KwReset):
		p.advance()
		return p.parseSessionReset(start)
	case p.atKw(token.KwClose):
		p.advance()
		return &ast.SessionCloseStmt{Base: ast.At(p.spanFrom(start))}
	}
	p.expected(diag.SynExpectKeyword, "SET, RESET or CLOSE")
	p.recover(syncTop)
	return &ast.BadStmt{Base: ast.At(p.spanFrom(start)), Reason: "incomplete session statement"}
}

func (p *Parser) parseSessionSet(start source.Span) ast.Stmt {
	st := &ast.SessionSetStmt{}
	switch {
	case p.atKw(token.KwSchema):
		p.advance()
		st.Kind = ast.SetSchema
		st.Ref = p.parseCatalogRef("schema reference")
	case p.atKw(token.KwTime):
		p.advance()
		p.expectKw(token.KwZone)
		st.Kind = ast.SetTimeZone
		st.Value = p.parseExpr()
	default:
		if p.atSessionGraphRef() {
			p.eatKw(token.KwProperty)
			p.advance()
			st.Kind = ast.SetGraph
			st.Ref = p.parseCatalogRef("graph reference")
			break
		}
		if !p.parseSessionParam(st) {
			st.Loc = p.spanFrom(start)
			p.recover(syncTop)
			return &ast.BadStmt{
				Base:    ast.At(p.spanFrom(start)),
				Partial: []ast.Node{st},
				Reason:  "incomplete SESSION SET",
			}
		}
	}
	st.Loc = p.spanFrom(start)
	return st
}

// atSessionGraphRef separates "SET GRAPH ref" from "SET GRAPH $p = …".
func (p *Parser) atSessionGraphRef() bool {
	n := 0
	if p.atKw(token.KwProperty) {
		n = 1
	}
	if !p.peekKw(n, token.KwGraph) {
		return false
	}
	next := p.peek(n + 1)
	return !next.IsKeyword(token.KwParameter) && !next.IsKeyword(token.KwIf) && next.Kind != token.Param
}

func (p *Parser) parseSessionParam(st *ast.SessionSetStmt) bool {
	st.Kind = ast.SetParameter
	switch {
	case p.atKw(token.KwValue):
		st.ParamKind = p.advance().Kw
	case p.atKw(token.KwBinding):
		p.advance()
		p.expectKw(token.KwTable)
		st.ParamKind = token.KwBinding
	case p.atKw(token.KwTable):
		st.ParamKind = p.advance().Kw
	case p.atKwOr(token.KwProperty, token.KwGraph):
		p.eatKw(token.KwProperty)
		p.expectKw(token.KwGraph)
		st.ParamKind = token.KwGraph
	}
	p.eatKw(token.KwParameter)
	if p.atKw(token.KwIf) {
		p.advance()
		p.expectKw(token.KwNot)
		p.expectKw(token.KwExists)
		st.IfNotExists = true
	}
	if !p.at(token.Param) {
		p.expected(diag.SynExpectKeyword, "SCHEMA, GRAPH, TIME ZONE or a parameter")
		return false
	}
	st.Param = p.parseParam()
	if _, ok := p.eat(token.ColonColon); ok {
		st.Type = p.parseType()
	} else if _, ok := p.eatKw(token.KwTyped); ok {
		st.Type = p.parseType()
	}
	if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "'='"); ok {
		st.Value = p.parseExpr()
	}
	return true
}

func (p *Parser) parseSessionReset(start source.Span) ast.Stmt {
	st := &ast.SessionResetStmt{}
	if _, ok := p.eatKw(token.KwAll); ok {
		st.All = true
	}
	switch {
	case p.atKw(token.KwSchema):
		st.Target = p.advance().Kw
	case p.atKwOr(token.KwProperty, token.KwGraph):
		p.eatKw(token.KwProperty)
		p.expectKw(token.KwGraph)
		st.Target = token.KwGraph
	case p.atKw(token.KwTime):
		p.advance()
		p.expectKw(token.KwZone)
		st.Target = token.KwTime
	case p.atKw(token.KwParameters):
		st.Target = p.advance().Kw
	case p.atKw(token.KwParameter):
		p.advance()
		st.Target = token.KwParameter
		if p.at(token.Param) {
			st.Param = p.parseParam()
		} else {
			p.expected(diag.SynExpectIdentifier, "parameter")
		}
	case p.at(token.Param):
		st.Target = token.KwParameter
		st.Param = p.parseParam()
	}
	st.Loc = p.spanFrom(start)
	return st
}

// parseStartTx parses START TRANSACTION [READ ONLY | READ WRITE].
func (p *Parser) parseStartTx() ast.Stmt {
	start := p.advance().Span
	st := &ast.StartTxStmt{}
	p.expectKw(token.KwTransaction)
	for p.atKw(token.KwRead) {
		p.advance()
		switch {
		case p.atKw(token.KwOnly):
			p.advance()
			st.Mode = ast.TxReadOnly
		case p.atKw(token.KwWrite):
			p.advance()
			st.Mode = ast.TxReadWrite
		default:
			p.expected(diag.SynExpectKeyword, "ONLY or WRITE")
		}
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	st.Loc = p.spanFrom(start)
	return st
}
