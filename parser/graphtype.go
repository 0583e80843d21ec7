package parser

import (
	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/token"
)

// parseGraphTypeSpec parses "{ element type, … }".
func (p *Parser) parseGraphTypeSpec() *ast.GraphTypeSpec {
	spec := &ast.GraphTypeSpec{}
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "'{'")
	if !ok {
		spec.Loc = p.here()
		return spec
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		pos := p.s.Pos()
		spec.Elements = append(spec.Elements, p.parseElementType())
		if !p.nextItem(syncElementTypes) {
			break
		}
		if !p.guardProgress(pos) {
			break
		}
	}
	p.expectCloser(open)
	spec.Loc = p.spanFrom(open.Span)
	return spec
}

func (p *Parser) parseElementType() ast.ElementType {
	defer p.leave()
	if !p.enter() {
		return &ast.BadElementType{Base: ast.At(p.skipDeep()), Reason: "nesting too deep"}
	}
	tok := p.tok()
	switch {
	case tok.Kind == token.LParen:
		return p.parsePatternElementType()
	case tok.IsKeyword(token.KwNode) || tok.IsKeyword(token.KwVertex):
		return p.parseNodeTypeKw()
	case tok.IsKeyword(token.KwDirected) || tok.IsKeyword(token.KwUndirected) ||
		tok.IsKeyword(token.KwEdge) || tok.IsKeyword(token.KwRelationship):
		return p.parseEdgeTypeKw()
	}
	p.expected(diag.SynExpectElementType, "node or edge type")
	p.recover(syncElementTypes)
	return &ast.BadElementType{Base: ast.At(p.spanFrom(tok.Span)), Reason: "expected element type"}
}

// elementParts is what node and edge types share: a name, a label set
// and property declarations.
type elementParts struct {
	name   *ast.Ident
	labels []*ast.Ident
	props  []*ast.FieldType
}

func (p *Parser) atElementTypeName() bool {
	tok := p.tok()
	if !tok.IsIdentLike() {
		return false
	}
	return !tok.IsKeyword(token.KwLabel) && !tok.IsKeyword(token.KwLabels) &&
		!tok.IsKeyword(token.KwInherits) && !tok.IsKeyword(token.KwConnecting)
}

func (p *Parser) parseElementParts() elementParts {
	var ep elementParts
	if p.atElementTypeName() {
		ep.name = p.parseIdent("type name")
	}
	switch {
	case p.at(token.Colon) || p.atKw(token.KwIs) || p.atKwOr(token.KwLabel, token.KwLabels):
		p.advance()
		ep.labels = p.parseIdentList(token.Amp, "label name")
	}
	if open, ok := p.eat(token.LBrace); ok {
		if !p.at(token.RBrace) {
			ep.props = p.parseFieldTypes(syncRecord)
		}
		p.expectCloser(open)
	}
	return ep
}

// parseParents parses "INHERITS a, b". A ',' followed by the start of an
// element type ends the list: it separates element types instead.
func (p *Parser) parseParents() []*ast.Ident {
	if _, ok := p.eatKw(token.KwInherits); !ok {
		return nil
	}
	var out []*ast.Ident
	for {
		id := p.parseIdent("parent type name")
		if id == nil {
			break
		}
		out = append(out, id)
		if !p.at(token.Comma) || p.startsElementTypeAt(1) {
			break
		}
		p.advance()
	}
	return out
}

// parseNodeTypeKw parses NODE [TYPE] [name] [labels] [{props}] [INHERITS …].
func (p *Parser) parseNodeTypeKw() ast.ElementType {
	start := p.advance().Span
	p.eatKw(token.KwType)
	ep := p.parseElementParts()
	nt := &ast.NodeType{KeywordForm: true, Name: ep.name, Labels: ep.labels, Props: ep.props}
	nt.Parents = p.parseParents()
	nt.Loc = p.spanFrom(start)
	return nt
}

// parseEdgeTypeKw parses
//
//	[DIRECTED|UNDIRECTED] EDGE [TYPE] [name] [labels] [{props}]
//	    CONNECTING ( src (-> | ~ | TO) dst ) [INHERITS …]
func (p *Parser) parseEdgeTypeKw() ast.ElementType {
	start := p.tok().Span
	et := &ast.EdgeType{KeywordForm: true, Directed: true}
	if _, ok := p.eatKw(token.KwUndirected); ok {
		et.Directed = false
	} else {
		p.eatKw(token.KwDirected)
	}
	if !p.atKwOr(token.KwEdge, token.KwRelationship) {
		p.expected(diag.SynExpectKeyword, "EDGE")
		p.recover(syncElementTypes)
		return &ast.BadElementType{Base: ast.At(p.spanFrom(start)), Reason: "incomplete edge type"}
	}
	p.advance()
	p.eatKw(token.KwType)
	ep := p.parseElementParts()
	et.Name, et.Labels, et.Props = ep.name, ep.labels, ep.props
	if _, ok := p.expectKw(token.KwConnecting); ok {
		if open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "'('"); ok {
			et.Source = p.parseEndpointName()
			switch {
			case p.atOr(token.RightArrow, token.Minus):
				p.advance()
			case p.at(token.Tilde):
				p.advance()
				et.Directed = false
			case p.atKw(token.KwTo):
				p.advance()
			default:
				p.expected(diag.SynUnexpectedToken, "'->', '~' or TO")
			}
			et.Dest = p.parseEndpointName()
			if _, ok := p.expectCloser(open); !ok {
				et.Loc = p.spanFrom(start)
				return &ast.BadElementType{Base: ast.At(et.Loc), Partial: []ast.Node{et}, Reason: "unclosed endpoint list"}
			}
		}
	}
	et.Parents = p.parseParents()
	et.Loc = p.spanFrom(start)
	return et
}

func (p *Parser) parseEndpointName() *ast.Endpoint {
	start := p.tok().Span
	id := p.parseIdent("node type name")
	if id == nil {
		return nil
	}
	ep := &ast.Endpoint{Name: id}
	if _, ok := p.eat(token.Colon); ok {
		ep.Labels = p.parseIdentList(token.Amp, "label name")
	}
	ep.Loc = p.spanFrom(start)
	return ep
}

// parsePatternElementType parses the pattern form: a node type "(a :L {…})"
// optionally followed by an edge "-[e :L {…}]->(b)" which turns the whole
// element into an edge type.
func (p *Parser) parsePatternElementType() ast.ElementType {
	open := p.advance()
	ep := p.parseElementParts()
	if _, ok := p.expectCloser(open); !ok {
		nt := &ast.NodeType{Name: ep.name, Labels: ep.labels, Props: ep.props, Base: ast.At(p.spanFrom(open.Span))}
		return &ast.BadElementType{Base: nt.Base, Partial: []ast.Node{nt}, Reason: "unclosed node type"}
	}
	node := &ast.NodeType{Name: ep.name, Labels: ep.labels, Props: ep.props}
	node.Loc = p.spanFrom(open.Span)

	if !isEdgeStart(p.tok().Kind) || p.peek(1).Kind != token.LBracket {
		node.Parents = p.parseParents()
		node.Loc = p.spanFrom(open.Span)
		return node
	}

	src := &ast.Endpoint{Base: node.Base, Name: node.Name, Labels: node.Labels}
	opener := p.advance()
	bracket := p.advance()
	et := &ast.EdgeType{Directed: opener.Kind != token.Tilde}
	edge := p.parseElementParts()
	et.Name, et.Labels, et.Props = edge.name, edge.labels, edge.props
	if _, ok := p.expectCloser(bracket); !ok {
		et.Loc = p.spanFrom(open.Span)
		return &ast.BadElementType{Base: ast.At(et.Loc), Partial: []ast.Node{node, et}, Reason: "unclosed edge type"}
	}
	closer := p.tok()
	if !validEdgeTypeArrow(opener.Kind, closer.Kind) {
		p.errAt(diag.SynBadEdge, opener.Span.Cover(closer.Span), "malformed edge type arrow")
	}
	if closer.Kind == token.RightArrow || closer.Kind == token.Minus || closer.Kind == token.Tilde {
		p.advance()
	}
	dst := p.parseEndpointPattern()
	if opener.Kind == token.LeftArrow {
		src, dst = dst, src
	}
	et.Source, et.Dest = src, dst
	et.Parents = p.parseParents()
	et.Loc = p.spanFrom(open.Span)
	return et
}

func validEdgeTypeArrow(open, close token.Kind) bool {
	switch open {
	case token.Minus:
		return close == token.RightArrow
	case token.LeftArrow:
		return close == token.Minus
	case token.Tilde:
		return close == token.Tilde
	}
	return false
}

// parseEndpointPattern parses "( name [:labels] )" at the far end of an
// edge type.
func (p *Parser) parseEndpointPattern() *ast.Endpoint {
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "'('")
	if !ok {
		return nil
	}
	ep := &ast.Endpoint{}
	if p.tok().IsIdentLike() {
		ep.Name = p.parseIdent("node type name")
	}
	if p.at(token.Colon) || p.atKw(token.KwIs) {
		p.advance()
		ep.Labels = p.parseIdentList(token.Amp, "label name")
	}
	p.expectCloser(open)
	ep.Loc = p.spanFrom(open.Span)
	return ep
}
