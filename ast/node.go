package ast

import "gqlfront/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

// Base carries the span every node owns. It is embedded in all node types.
type Base struct {
	Loc source.Span
}

// Span returns the byte range the node covers.
func (b *Base) Span() source.Span { return b.Loc }

// At builds a Base for sp.
func At(sp source.Span) Base { return Base{Loc: sp} }

func (b *Base) base() *Base { return b }

type hasBase interface {
	base() *Base
}

// Enclose grows every span in the tree rooted at n so that it covers the
// spans of its children, and returns the span of n. A placeholder for a
// missing construct sits at the recovery point, which may lie just outside
// the node that owns it.
func Enclose(n Node) source.Span {
	if isNil(n) {
		return source.Span{}
	}
	sp := n.Span()
	for _, c := range Children(n) {
		sp = sp.Cover(Enclose(c))
	}
	if b, ok := n.(hasBase); ok {
		b.base().Loc = sp
	}
	return sp
}

type (
	// Stmt is a top-level statement.
	Stmt interface {
		Node
		stmtNode()
	}
	// Query is a statement that produces a result: linear, composite or nested.
	Query interface {
		Stmt
		queryNode()
	}
	// Clause is one step of a linear query.
	Clause interface {
		Node
		clauseNode()
	}
	// Expr is a value expression.
	Expr interface {
		Node
		exprNode()
	}
	// PathExpr is an element of a graph pattern.
	PathExpr interface {
		Node
		pathNode()
	}
	// LabelExpr is a label expression inside an element pattern.
	LabelExpr interface {
		Node
		labelNode()
	}
	// Type is a value type.
	Type interface {
		Node
		typeNode()
	}
	// ElementType is a node or edge type inside a graph type specification.
	ElementType interface {
		Node
		elementTypeNode()
	}
)

// Program is the root of the tree.
type Program struct {
	Base
	Stmts []Stmt
}

// Ident is a name. Quoted is set for delimited identifiers, whose Name is
// the unescaped text and never acts as a keyword.
type Ident struct {
	Base
	Name   string
	Quoted bool
}

func (*Ident) exprNode() {}

// Placeholders mark positions where the parser recovered. They keep the
// partial children it managed to build and a short reason; they never
// invent semantics.
type (
	BadStmt struct {
		Base
		Partial []Node
		Reason  string
	}
	BadClause struct {
		Base
		Partial []Node
		Reason  string
	}
	BadExpr struct {
		Base
		Partial []Node
		Reason  string
	}
	// BadPattern stands in for path elements and label expressions.
	BadPattern struct {
		Base
		Partial []Node
		Reason  string
	}
	BadType struct {
		Base
		Partial []Node
		Reason  string
	}
	BadElementType struct {
		Base
		Partial []Node
		Reason  string
	}
)

func (*BadStmt) stmtNode()               {}
func (*BadStmt) queryNode()              {}
func (*BadClause) clauseNode()           {}
func (*BadExpr) exprNode()               {}
func (*BadPattern) pathNode()            {}
func (*BadPattern) labelNode()           {}
func (*BadType) typeNode()               {}
func (*BadElementType) elementTypeNode() {}

// IsBad reports whether n is an error placeholder.
func IsBad(n Node) bool {
	switch n.(type) {
	case *BadStmt, *BadClause, *BadExpr, *BadPattern, *BadType, *BadElementType:
		return true
	default:
		return false
	}
}

// CoverNodes returns the smallest span covering every non-nil node, or
// fallback when there is none.
func CoverNodes(fallback source.Span, nodes ...Node) source.Span {
	var (
		out source.Span
		ok  bool
	)
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		if !ok {
			out, ok = n.Span(), true
			continue
		}
		out = out.Cover(n.Span())
	}
	if !ok {
		return fallback
	}
	return out
}
