package parser

import (
	"gqlfront/token"
)

// The helpers in this file decide between grammar alternatives by looking
// at a bounded number of tokens ahead. None of them consume input.

func isOneOf(kw token.Keyword, list []token.Keyword) bool {
	for _, k := range list {
		if kw == k {
			return true
		}
	}
	return false
}

func (p *Parser) startsStatement() bool {
	tok := p.tok()
	if tok.Kind == token.LBrace {
		return true
	}
	if tok.Kind != token.Word {
		return false
	}
	return isOneOf(tok.Kw, statementStarters) || isOneOf(tok.Kw, clauseStarters)
}

func (p *Parser) startsClause() bool {
	tok := p.tok()
	return tok.Kind == token.Word && isOneOf(tok.Kw, clauseStarters)
}

func (p *Parser) atSetOperator() bool {
	tok := p.tok()
	return tok.Kind == token.Word && isOneOf(tok.Kw, setOperators)
}

// startsQueryBody reports whether a '{' or '(' body holds a query rather
// than a pattern or an expression.
func (p *Parser) startsQueryBody(n int) bool {
	tok := p.peek(n)
	if tok.Kind == token.LBrace {
		return true
	}
	return tok.Kind == token.Word && isOneOf(tok.Kw, clauseStarters)
}

// isEdgeStart reports whether kind opens an edge pattern, abbreviated or
// full.
func isEdgeStart(k token.Kind) bool {
	switch k {
	case token.Minus, token.RightArrow, token.LeftArrow, token.BothArrow,
		token.Tilde, token.LeftTilde, token.RightTilde:
		return true
	}
	return false
}

func (p *Parser) startsPathPrimary() bool {
	return p.at(token.LParen) || isEdgeStart(p.tok().Kind)
}

func isPathModeKw(kw token.Keyword) bool {
	switch kw {
	case token.KwWalk, token.KwTrail, token.KwSimple, token.KwAcyclic:
		return true
	}
	return false
}

// atParenPath decides whether the '(' under the cursor opens a
// parenthesized path rather than a node pattern. A node pattern holds only
// a filler, so a nested path start, a path variable declaration or a path
// mode keyword after the '(' selects the path form.
func (p *Parser) atParenPath() bool {
	if !p.at(token.LParen) {
		return false
	}
	next := p.peek(1)
	switch {
	case next.Kind == token.LParen || isEdgeStart(next.Kind):
		return true
	case next.IsIdentLike() && p.peek(2).Kind == token.Eq:
		return true
	case next.Kind == token.Word && isPathModeKw(next.Kw):
		after := p.peek(2)
		return after.Kind == token.LParen || after.IsKeyword(token.KwPath) ||
			after.IsKeyword(token.KwPaths) || (after.IsIdentLike() && p.peek(3).Kind == token.Eq)
	}
	return false
}

// atPathVarDecl reports "name =" at the start of a path pattern.
func (p *Parser) atPathVarDecl() bool {
	return p.tok().IsIdentLike() && p.peek(1).Kind == token.Eq
}

// atPathPrefix reports a search prefix or path mode before a path pattern.
func (p *Parser) atPathPrefix() bool {
	tok := p.tok()
	if tok.Kind != token.Word {
		return false
	}
	switch tok.Kw {
	case token.KwAll, token.KwAny, token.KwShortest:
		return true
	}
	return isPathModeKw(tok.Kw) && !(p.peek(1).Kind == token.Eq)
}

// atQuantifier reports a graph pattern quantifier. A '{' only starts one
// when an integer or ',' follows.
func (p *Parser) atQuantifier() bool {
	switch p.tok().Kind {
	case token.Star, token.Plus, token.Question:
		return true
	case token.LBrace:
		next := p.peek(1).Kind
		return next == token.IntLit || next == token.Comma
	}
	return false
}

// atTypeAfterColonColon reports whether '::' introduces a value type. If it
// does not, the '::' continues a qualified name.
func (p *Parser) atTypeAfterColonColon() bool {
	if !p.at(token.ColonColon) {
		return false
	}
	next := p.peek(1)
	return next.Kind == token.Word && next.Kw.IsPredefinedType()
}

// startsElementTypeAt reports whether the token n ahead starts a graph
// element type: a pattern-form '(' or a NODE/EDGE keyword form.
func (p *Parser) startsElementTypeAt(n int) bool {
	tok := p.peek(n)
	if tok.Kind == token.LParen {
		return true
	}
	if tok.Kind != token.Word {
		return false
	}
	switch tok.Kw {
	case token.KwNode, token.KwVertex, token.KwEdge, token.KwRelationship,
		token.KwDirected, token.KwUndirected:
		return true
	}
	return false
}

func (p *Parser) startsExpr() bool {
	tok := p.tok()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.ByteStringLit,
		token.Param, token.SubstParam, token.QuotedIdent,
		token.LParen, token.LBracket, token.LBrace, token.Plus, token.Minus:
		return true
	case token.Word:
		if tok.Tier != token.Reserved {
			return true
		}
		return !isOneOf(tok.Kw, statementStarters) && !isOneOf(tok.Kw, clauseStarters) &&
			!isOneOf(tok.Kw, setOperators)
	}
	return false
}
