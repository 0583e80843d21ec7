package parser

import (
	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/token"
)

// Reserved words that delimit constructs. They are never taken as a
// misused identifier, so recovery can still see them.
var structuralKeywords = []token.Keyword{
	token.KwWhere, token.KwYield, token.KwKeep, token.KwAs, token.KwThen,
	token.KwElse, token.KwEnd, token.KwWhen, token.KwFrom, token.KwGroup,
	token.KwHaving, token.KwBy, token.KwIs, token.KwAnd, token.KwOr,
	token.KwXor, token.KwNot, token.KwIn, token.KwOf, token.KwOn, token.KwTo,
}

func isStructural(tok token.Token) bool {
	if tok.Kind != token.Word || tok.Kw == token.KwNone {
		return false
	}
	return isOneOf(tok.Kw, structuralKeywords) || isOneOf(tok.Kw, statementStarters) ||
		isOneOf(tok.Kw, clauseStarters) || isOneOf(tok.Kw, setOperators)
}

func identFromToken(tok token.Token) *ast.Ident {
	return &ast.Ident{
		Base:   ast.At(tok.Span),
		Name:   tok.Text,
		Quoted: tok.Kind == token.QuotedIdent,
	}
}

// parseIdent parses a required identifier. A pre-reserved word is accepted
// with a warning. A reserved word is accepted with an error, unless it
// delimits a construct; then nothing is consumed. It returns nil when no
// identifier is present.
func (p *Parser) parseIdent(what string) *ast.Ident {
	tok := p.tok()
	switch {
	case tok.Kind == token.QuotedIdent:
		p.advance()
		return identFromToken(tok)
	case tok.Kind == token.Word && tok.Tier != token.Reserved:
		p.advance()
		if tok.Tier == token.PreReserved {
			p.warnAt(diag.SynPreReservedIdent, tok.Span,
				"'"+tok.Text+"' is reserved for future use; delimit it to use it as "+what)
		}
		return identFromToken(tok)
	case tok.Kind == token.Word && !isStructural(tok):
		p.advance()
		p.reservedIdent(tok, what)
		return identFromToken(tok)
	}
	p.expected(diag.SynExpectIdentifier, what)
	return nil
}

// reservedIdent reports a reserved word in an identifier position and
// offers the delimited spelling as a fix.
func (p *Parser) reservedIdent(tok token.Token, what string) {
	d := diag.NewError(diag.SynReservedIdent, tok.Span,
		"reserved word "+tok.Kw.String()+" cannot be used as "+what).
		WithSuggestion(diag.ReplaceSpan("delimit the identifier", tok.Span, `"`+tok.Text+`"`, tok.Text, diag.Preferred()))
	p.emitSyntax(d)
}

// parseOptIdent consumes an identifier if one is present.
func (p *Parser) parseOptIdent(what string) *ast.Ident {
	if p.tok().IsIdentLike() {
		return p.parseIdent(what)
	}
	return nil
}

// parseName parses a property or field name. Any word is accepted there,
// reserved or not, since the position is unambiguous.
func (p *Parser) parseName(what string) *ast.Ident {
	tok := p.tok()
	if tok.Kind == token.Word || tok.Kind == token.QuotedIdent {
		p.advance()
		return identFromToken(tok)
	}
	p.expected(diag.SynExpectPropertyName, what)
	return nil
}

// parseIdentList parses "ident (sep ident)*".
func (p *Parser) parseIdentList(sep token.Kind, what string) []*ast.Ident {
	var out []*ast.Ident
	for {
		id := p.parseIdent(what)
		if id == nil {
			break
		}
		out = append(out, id)
		if _, ok := p.eat(sep); !ok {
			break
		}
	}
	return out
}
