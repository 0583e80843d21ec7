package parser

import (
	"gqlfront/ast"
	"gqlfront/token"
)

// Binary operator precedence, loosest first. NOT and IS are not binary
// but take their place in the ladder.
const (
	precLowest = iota
	precOr
	precXor
	precAnd
	precNot
	precIs
	precCompare
	precConcat
	precAdd
	precMul
)

// getBinaryOperatorPrec returns the operator and precedence of tok as an
// infix operator, or ok=false.
func getBinaryOperatorPrec(tok token.Token) (op ast.BinaryOp, prec int, ok bool) {
	switch tok.Kind {
	case token.Word:
		switch tok.Kw {
		case token.KwOr:
			return ast.OpOr, precOr, true
		case token.KwXor:
			return ast.OpXor, precXor, true
		case token.KwAnd:
			return ast.OpAnd, precAnd, true
		}
	case token.Eq:
		return ast.OpEq, precCompare, true
	case token.NotEq:
		return ast.OpNotEq, precCompare, true
	case token.Lt, token.LeftArrow:
		return ast.OpLt, precCompare, true
	case token.Gt:
		return ast.OpGt, precCompare, true
	case token.LtEq:
		return ast.OpLtEq, precCompare, true
	case token.GtEq:
		return ast.OpGtEq, precCompare, true
	case token.Concat:
		return ast.OpConcat, precConcat, true
	case token.Plus:
		return ast.OpAdd, precAdd, true
	case token.Minus:
		return ast.OpSub, precAdd, true
	case token.Star:
		return ast.OpMul, precMul, true
	case token.Slash:
		return ast.OpDiv, precMul, true
	case token.Percent:
		return ast.OpMod, precMul, true
	}
	return 0, 0, false
}
