package parser

import (
	"gqlfront/source"
	"gqlfront/token"
)

// syncContext names a recovery point. Each context has a fixed set of
// tokens at which skipping stops; the table below is the single source of
// truth for recovery.
type syncContext uint8

const (
	syncTop syncContext = iota
	syncClause
	syncPatternList
	syncItems
	syncExprList
	syncRecord
	syncList
	syncElementTypes
	syncParentList
	syncTypeArgs
	syncCount
)

type syncSet struct {
	name     string
	kinds    []token.Kind
	keywords []token.Keyword
}

var statementStarters = []token.Keyword{
	token.KwSession, token.KwStart, token.KwCommit, token.KwRollback,
	token.KwCreate, token.KwDrop,
}

var clauseStarters = []token.Keyword{
	token.KwMatch, token.KwOptional, token.KwLet, token.KwFor, token.KwFilter,
	token.KwOrder, token.KwOffset, token.KwSkip, token.KwLimit, token.KwCall,
	token.KwInsert, token.KwSet, token.KwRemove, token.KwDelete, token.KwDetach,
	token.KwNodetach, token.KwReturn, token.KwFinish, token.KwSelect, token.KwUse,
}

var setOperators = []token.Keyword{
	token.KwUnion, token.KwExcept, token.KwIntersect, token.KwOtherwise, token.KwNext,
}

func concatKw(lists ...[]token.Keyword) []token.Keyword {
	var out []token.Keyword
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

var syncSets = [syncCount]syncSet{
	syncTop: {
		name:     "statement",
		kinds:    []token.Kind{token.Semicolon, token.EOF},
		keywords: concatKw(statementStarters, clauseStarters),
	},
	syncClause: {
		name:     "clause",
		kinds:    []token.Kind{token.Semicolon, token.EOF, token.RBrace, token.RParen},
		keywords: concatKw(statementStarters, clauseStarters, setOperators),
	},
	syncPatternList: {
		name:     "pattern list",
		kinds:    []token.Kind{token.Comma, token.Semicolon, token.EOF, token.RBrace, token.RParen},
		keywords: concatKw(clauseStarters, setOperators, []token.Keyword{token.KwWhere, token.KwKeep, token.KwYield}),
	},
	syncItems: {
		name:  "item list",
		kinds: []token.Kind{token.Comma, token.Semicolon, token.EOF, token.LBrace, token.RBrace, token.RParen},
		keywords: concatKw(clauseStarters, setOperators, []token.Keyword{
			token.KwGroup, token.KwHaving, token.KwFrom, token.KwWhere,
		}),
	},
	syncExprList: {
		name:     "argument list",
		kinds:    []token.Kind{token.Comma, token.RParen, token.RBracket, token.Semicolon, token.EOF},
		keywords: clauseStarters,
	},
	syncRecord: {
		name:  "record",
		kinds: []token.Kind{token.Comma, token.RBrace, token.Semicolon, token.EOF},
	},
	syncList: {
		name:  "list",
		kinds: []token.Kind{token.Comma, token.RBracket, token.Semicolon, token.EOF},
	},
	syncElementTypes: {
		name:  "element type list",
		kinds: []token.Kind{token.Comma, token.RBrace, token.Semicolon, token.EOF},
	},
	syncParentList: {
		name:  "parent list",
		kinds: []token.Kind{token.Comma, token.RBrace, token.Semicolon, token.EOF},
		keywords: []token.Keyword{
			token.KwNode, token.KwVertex, token.KwEdge, token.KwRelationship,
			token.KwDirected, token.KwUndirected,
		},
	},
	syncTypeArgs: {
		name:  "type arguments",
		kinds: []token.Kind{token.Comma, token.Gt, token.RParen, token.Semicolon, token.EOF},
	},
}

func (c syncContext) String() string {
	if c < syncCount {
		return syncSets[c].name
	}
	return "unknown"
}

func (c syncContext) has(tok token.Token) bool {
	set := &syncSets[c]
	for _, k := range set.kinds {
		if tok.Kind == k {
			return true
		}
	}
	if tok.Kind != token.Word || tok.Kw == token.KwNone {
		return false
	}
	for _, kw := range set.keywords {
		if tok.Kw == kw {
			return true
		}
	}
	return false
}

// recover skips tokens until one in the context's sync set, an unmatched
// closing delimiter or end of input. Bracketed groups are skipped whole so
// a separator inside them does not stop recovery. It reports the skipped
// span and whether anything was skipped.
func (p *Parser) recover(ctx syncContext) (source.Span, bool) {
	start := p.s.Pos()
	first := p.tok().Span
	depth := 0
scan:
	for !p.at(token.EOF) {
		tok := p.tok()
		if depth == 0 && ctx.has(tok) {
			break
		}
		switch tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth == 0 {
				break scan
			}
			depth--
		}
		p.advance()
	}
	if p.s.Pos() == start {
		return first.ZeroideToStart(), false
	}
	return p.spanFrom(first), true
}
