package parser

import (
	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/token"
)

// parsePatternList parses path patterns separated by ','.
func (p *Parser) parsePatternList() []*ast.PathPattern {
	var out []*ast.PathPattern
	for {
		out = append(out, p.parsePathPattern())
		if !p.nextItem(syncPatternList) {
			break
		}
	}
	return out
}

// parsePathPattern parses [var =] [prefix] path.
func (p *Parser) parsePathPattern() *ast.PathPattern {
	start := p.tok().Span
	pp := &ast.PathPattern{}
	if p.atPathVarDecl() {
		pp.Var = p.parseIdent("path variable")
		p.advance()
	}
	if p.atPathPrefix() {
		pp.Prefix = p.parsePathPrefix()
	}
	pp.Expr = p.parsePathExpr()
	pp.Loc = p.spanFrom(start)
	return pp
}

func pathModeOf(kw token.Keyword) ast.PathMode {
	switch kw {
	case token.KwWalk:
		return ast.ModeWalk
	case token.KwTrail:
		return ast.ModeTrail
	case token.KwSimple:
		return ast.ModeSimple
	case token.KwAcyclic:
		return ast.ModeAcyclic
	}
	return ast.ModeNone
}

// parsePathPrefix parses a search prefix and/or path mode:
//
//	ALL [SHORTEST] | ANY [SHORTEST | n] | SHORTEST n [GROUP|GROUPS]
//	followed by [WALK|TRAIL|SIMPLE|ACYCLIC] [PATH|PATHS]
//
// It returns nil when neither is present.
func (p *Parser) parsePathPrefix() *ast.PathPrefix {
	start := p.tok().Span
	pre := &ast.PathPrefix{}
	switch {
	case p.atKw(token.KwAll):
		p.advance()
		pre.Search = ast.SearchAll
		if _, ok := p.eatKw(token.KwShortest); ok {
			pre.Search = ast.SearchAllShortest
		}
	case p.atKw(token.KwAny):
		p.advance()
		pre.Search = ast.SearchAny
		if _, ok := p.eatKw(token.KwShortest); ok {
			pre.Search = ast.SearchAnyShortest
		} else if p.atOr(token.IntLit, token.Param) {
			pre.Count = p.parsePrimary()
		}
	case p.atKw(token.KwShortest):
		p.advance()
		pre.Search = ast.SearchCountedShortest
		if p.atOr(token.IntLit, token.Param) {
			pre.Count = p.parsePrimary()
		}
		if p.atKwOr(token.KwGroup, token.KwGroups) {
			p.advance()
			pre.Search = ast.SearchCountedShortestGroups
		}
	}
	if tok := p.tok(); tok.Kind == token.Word && isPathModeKw(tok.Kw) {
		p.advance()
		pre.Mode = pathModeOf(tok.Kw)
	}
	p.eatPathNoise()
	if pre.Search == ast.SearchNone && pre.Mode == ast.ModeNone {
		return nil
	}
	pre.Loc = p.spanFrom(start)
	return pre
}

func (p *Parser) eatPathNoise() {
	if p.atKwOr(token.KwPath, token.KwPaths) {
		p.advance()
	}
}

// parsePathExpr parses path alternatives:
//
//	path := concat (('|' | '|+|') concat)*
//
// A change of operator starts a new union with the previous one as its
// first alternative.
func (p *Parser) parsePathExpr() ast.PathExpr {
	defer p.leave()
	if !p.enter() {
		return &ast.BadPattern{Base: ast.At(p.skipDeep()), Reason: "nesting too deep"}
	}
	first := p.parsePathConcat()
	if !p.atOr(token.Pipe, token.MultisetAlt) {
		return first
	}
	var u *ast.PathUnion
	cur := ast.PathExpr(first)
	for p.atOr(token.Pipe, token.MultisetAlt) {
		pos := p.s.Pos()
		multiset := p.advance().Kind == token.MultisetAlt
		if u == nil || u.Multiset != multiset {
			u = &ast.PathUnion{Multiset: multiset, Alts: []ast.PathExpr{cur}}
			cur = u
		}
		u.Alts = append(u.Alts, p.parsePathConcat())
		u.Loc = ast.CoverNodes(u.Alts[0].Span(), nodesOf(u.Alts)...)
		if !p.guardProgress(pos) {
			break
		}
	}
	return cur
}

func nodesOf[T ast.Node](xs []T) []ast.Node {
	out := make([]ast.Node, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

// parsePathConcat parses a sequence of path factors.
func (p *Parser) parsePathConcat() ast.PathExpr {
	start := p.tok().Span
	if !p.startsPathPrimary() {
		p.expected(diag.SynExpectPattern, "graph pattern")
		return &ast.BadPattern{Base: ast.At(p.here()), Reason: "expected graph pattern"}
	}
	var elems []ast.PathExpr
	for p.startsPathPrimary() {
		pos := p.s.Pos()
		elems = append(elems, p.parsePathFactor())
		if !p.guardProgress(pos) {
			break
		}
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.PathConcat{Base: ast.At(p.spanFrom(start)), Elems: elems}
}

// parsePathFactor parses a path primary with an optional quantifier.
func (p *Parser) parsePathFactor() ast.PathExpr {
	prim := p.parsePathPrimary()
	if !p.atQuantifier() {
		return prim
	}
	q := p.parseQuantifier()
	if _, isNode := prim.(*ast.NodePattern); isNode {
		p.errAt(diag.SynBadQuantifier, q.Loc, "a node pattern cannot be quantified")
	}
	return &ast.Quantified{Base: ast.At(prim.Span().Cover(q.Loc)), Inner: prim, Quant: q}
}

// parseQuantifier parses '*', '+', '?' or "{n}", "{n,}", "{,m}", "{n,m}".
func (p *Parser) parseQuantifier() *ast.Quantifier {
	tok := p.advance()
	q := &ast.Quantifier{Base: ast.At(tok.Span)}
	switch tok.Kind {
	case token.Star:
		q.Kind = ast.QuantStar
		return q
	case token.Plus:
		q.Kind = ast.QuantPlus
		return q
	case token.Question:
		q.Kind = ast.QuantQuestion
		return q
	}
	q.Kind = ast.QuantRange
	if p.at(token.IntLit) {
		q.Min = p.parsePrimary()
	}
	if _, ok := p.eat(token.Comma); ok {
		if p.at(token.IntLit) {
			q.Max = p.parsePrimary()
		}
	} else {
		q.Max = q.Min
	}
	if q.Min == nil && q.Max == nil {
		p.errAt(diag.SynBadQuantifier, p.spanFrom(tok.Span), "quantifier needs a lower or upper bound")
	}
	p.expectCloser(tok)
	q.Loc = p.spanFrom(tok.Span)
	return q
}

// parsePathPrimary parses a node pattern, an edge pattern or a
// parenthesized path.
func (p *Parser) parsePathPrimary() ast.PathExpr {
	if p.at(token.LParen) {
		if p.atParenPath() {
			return p.parseParenPath()
		}
		return p.parseNodePattern()
	}
	return p.parseEdgePattern()
}

// parseNodePattern parses "( filler )". A missing ')' turns the node
// into a placeholder holding the partial filler.
func (p *Parser) parseNodePattern() ast.PathExpr {
	open := p.advance()
	filler := p.parseFiller()
	if !p.at(token.RParen) && !p.at(token.EOF) && !p.atSyncForPattern() {
		p.expected(diag.SynUnexpectedToken, "')'")
		p.recover(syncPatternList)
		p.eat(token.RParen)
		return &ast.BadPattern{
			Base:    ast.At(p.spanFrom(open.Span)),
			Partial: []ast.Node{filler},
			Reason:  "malformed node pattern",
		}
	}
	if _, ok := p.expectCloser(open); !ok {
		return &ast.BadPattern{
			Base:    ast.At(p.spanFrom(open.Span)),
			Partial: []ast.Node{filler},
			Reason:  "unclosed node pattern",
		}
	}
	return &ast.NodePattern{Base: ast.At(p.spanFrom(open.Span)), Filler: filler}
}

// atSyncForPattern reports a token where an unclosed pattern should give
// up rather than skip: a clause keyword or a statement boundary.
func (p *Parser) atSyncForPattern() bool {
	tok := p.tok()
	if tok.Kind == token.Semicolon {
		return true
	}
	return tok.Kind == token.Word && (isOneOf(tok.Kw, clauseStarters) || isOneOf(tok.Kw, statementStarters))
}

// parseParenPath parses "( [var =] [mode] path [WHERE expr] )".
func (p *Parser) parseParenPath() ast.PathExpr {
	open := p.advance()
	pp := &ast.ParenPath{}
	if p.atPathVarDecl() {
		pp.Var = p.parseIdent("path variable")
		p.advance()
	}
	if tok := p.tok(); tok.Kind == token.Word && isPathModeKw(tok.Kw) {
		p.advance()
		pp.Mode = pathModeOf(tok.Kw)
		p.eatPathNoise()
	}
	pp.Expr = p.parsePathExpr()
	if _, ok := p.eatKw(token.KwWhere); ok {
		pp.Where = p.parseExpr()
	}
	if _, ok := p.expectCloser(open); !ok {
		return &ast.BadPattern{
			Base:    ast.At(p.spanFrom(open.Span)),
			Partial: []ast.Node{pp.Expr, pp.Where},
			Reason:  "unclosed parenthesized path",
		}
	}
	pp.Loc = p.spanFrom(open.Span)
	return pp
}

// parseFiller parses the inside of a node or edge pattern:
//
//	[var] [(':' | IS) labels] [{ props } | WHERE expr]
func (p *Parser) parseFiller() *ast.ElementFiller {
	first := p.tok().Span
	pos := p.s.Pos()
	f := &ast.ElementFiller{}
	if p.tok().IsIdentLike() {
		f.Var = p.parseIdent("element variable")
	}
	if p.at(token.Colon) || p.atKw(token.KwIs) {
		f.IsForm = p.advance().Kind == token.Word
		f.Labels = p.parseLabelExpr()
	}
	switch {
	case p.at(token.LBrace):
		f.Props = p.parseRecordBody(p.advance(), false)
		if p.atKw(token.KwWhere) {
			p.errAt(diag.SynUnsupportedSyntax, p.tok().Span,
				"an element pattern cannot have both a property map and WHERE")
			p.advance()
			f.Where = p.parseExpr()
		}
	case p.atKw(token.KwWhere):
		p.advance()
		f.Where = p.parseExpr()
	}
	f.Loc = p.here()
	if p.s.Pos() > pos {
		f.Loc = p.spanFrom(first)
	}
	return f
}

type edgeOpen struct {
	kind    token.Kind
	allowed []token.Kind
}

var fullEdgeOpeners = []edgeOpen{
	{token.Minus, []token.Kind{token.RightArrow, token.Minus}},
	{token.LeftArrow, []token.Kind{token.Minus, token.RightArrow}},
	{token.Tilde, []token.Kind{token.Tilde, token.RightTilde}},
	{token.LeftTilde, []token.Kind{token.Tilde}},
}

var abbreviatedEdges = map[token.Kind]ast.EdgeDir{
	token.Minus:      ast.EdgeAny,
	token.RightArrow: ast.EdgeRight,
	token.LeftArrow:  ast.EdgeLeft,
	token.BothArrow:  ast.EdgeLeftOrRight,
	token.Tilde:      ast.EdgeUndirected,
	token.LeftTilde:  ast.EdgeLeftOrUndirected,
	token.RightTilde: ast.EdgeRightOrUndirected,
}

// edgeDir maps an opener and closer of a full edge pattern to its
// direction.
func edgeDir(open, close token.Kind) ast.EdgeDir {
	switch {
	case open == token.Minus && close == token.RightArrow:
		return ast.EdgeRight
	case open == token.Minus:
		return ast.EdgeAny
	case open == token.LeftArrow && close == token.RightArrow:
		return ast.EdgeLeftOrRight
	case open == token.LeftArrow:
		return ast.EdgeLeft
	case open == token.Tilde && close == token.RightTilde:
		return ast.EdgeRightOrUndirected
	case open == token.Tilde:
		return ast.EdgeUndirected
	default:
		return ast.EdgeLeftOrUndirected
	}
}

// parseEdgePattern parses a full edge "-[ filler ]->" or an abbreviated
// edge such as "->" or "~".
func (p *Parser) parseEdgePattern() ast.PathExpr {
	open := p.advance()
	if !p.at(token.LBracket) {
		dir, ok := abbreviatedEdges[open.Kind]
		if !ok {
			p.errAt(diag.SynBadEdge, open.Span, "malformed edge pattern")
			return &ast.BadPattern{Base: ast.At(open.Span), Reason: "malformed edge"}
		}
		return &ast.EdgePattern{Base: ast.At(open.Span), Dir: dir}
	}

	var allowed []token.Kind
	for _, eo := range fullEdgeOpeners {
		if eo.kind == open.Kind {
			allowed = eo.allowed
		}
	}
	bracket := p.advance()
	if allowed == nil {
		p.errAt(diag.SynBadEdge, open.Span, open.Kind.String()+" cannot open an edge pattern")
	}
	filler := p.parseFiller()
	if _, ok := p.expectCloser(bracket); !ok {
		return &ast.BadPattern{
			Base:    ast.At(p.spanFrom(open.Span)),
			Partial: []ast.Node{filler},
			Reason:  "unclosed edge pattern",
		}
	}
	closeTok := p.tok()
	valid := false
	for _, k := range allowed {
		if closeTok.Kind == k {
			valid = true
		}
	}
	if !valid {
		if closeTok.Kind == token.RightArrow || closeTok.Kind == token.Minus ||
			closeTok.Kind == token.Tilde || closeTok.Kind == token.RightTilde {
			p.advance()
			p.errAt(diag.SynBadEdge, open.Span.Cover(closeTok.Span),
				"edge opened with "+open.Kind.String()+" cannot close with "+closeTok.Kind.String())
		} else {
			p.expected(diag.SynBadEdge, "edge direction after ']'")
		}
		return &ast.EdgePattern{
			Base:   ast.At(p.spanFrom(open.Span)),
			Dir:    edgeDir(open.Kind, closeTok.Kind),
			Filler: filler,
		}
	}
	p.advance()
	return &ast.EdgePattern{
		Base:   ast.At(p.spanFrom(open.Span)),
		Dir:    edgeDir(open.Kind, closeTok.Kind),
		Filler: filler,
	}
}

// Label expressions:
//
//	label := and ('|' and)*
//	and   := unary ('&' unary)*
//	unary := '!' unary | '%' | name | '(' label ')'
func (p *Parser) parseLabelExpr() ast.LabelExpr {
	defer p.leave()
	if !p.enter() {
		return &ast.BadPattern{Base: ast.At(p.skipDeep()), Reason: "nesting too deep"}
	}
	left := p.parseLabelAnd()
	for p.at(token.Pipe) {
		p.advance()
		right := p.parseLabelAnd()
		left = &ast.LabelBinary{Base: ast.At(left.Span().Cover(right.Span())), Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLabelAnd() ast.LabelExpr {
	left := p.parseLabelUnary()
	for p.at(token.Amp) {
		p.advance()
		right := p.parseLabelUnary()
		left = &ast.LabelBinary{Base: ast.At(left.Span().Cover(right.Span())), And: true, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLabelUnary() ast.LabelExpr {
	var nots []token.Token
	for p.at(token.Bang) {
		nots = append(nots, p.advance())
	}
	x := p.parseLabelPrimary()
	for i := len(nots) - 1; i >= 0; i-- {
		x = &ast.LabelNot{Base: ast.At(nots[i].Span.Cover(x.Span())), X: x}
	}
	return x
}

func (p *Parser) parseLabelPrimary() ast.LabelExpr {
	tok := p.tok()
	switch {
	case tok.Kind == token.Percent:
		p.advance()
		return &ast.LabelWildcard{Base: ast.At(tok.Span)}
	case tok.Kind == token.LParen:
		p.advance()
		x := p.parseLabelExpr()
		if _, ok := p.expectCloser(tok); !ok {
			return &ast.BadPattern{Base: ast.At(p.spanFrom(tok.Span)), Partial: []ast.Node{x}, Reason: "unclosed label expression"}
		}
		return &ast.LabelParen{Base: ast.At(p.spanFrom(tok.Span)), X: x}
	case tok.IsIdentLike() || tok.Kind == token.Word && !isStructural(tok):
		id := p.parseIdent("label name")
		return &ast.LabelName{Base: ast.At(id.Loc), Name: id}
	}
	p.expected(diag.SynExpectLabel, "label")
	return &ast.BadPattern{Base: ast.At(p.here()), Reason: "expected label"}
}
