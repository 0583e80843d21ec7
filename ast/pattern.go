package ast

// PathPattern is one comma-separated entry of a MATCH or INSERT pattern list.
type PathPattern struct {
	Base
	Var    *Ident
	Prefix *PathPrefix
	Expr   PathExpr
}

// PathPrefix is a search prefix and/or a path mode:
// ALL SHORTEST TRAIL, ANY 2 WALK PATHS, SHORTEST 3 GROUPS, ACYCLIC, …
type PathPrefix struct {
	Base
	Search SearchKind
	Count  Expr
	Mode   PathMode
}

type (
	// PathUnion is "a | b" (Multiset false) or "a |+| b" (Multiset true).
	PathUnion struct {
		Base
		Multiset bool
		Alts     []PathExpr
	}

	// PathConcat is a juxtaposition of path factors: (a)-[e]->(b).
	PathConcat struct {
		Base
		Elems []PathExpr
	}

	// Quantified applies a quantifier to an edge or parenthesized path.
	Quantified struct {
		Base
		Inner PathExpr
		Quant *Quantifier
	}

	NodePattern struct {
		Base
		Filler *ElementFiller
	}

	// EdgePattern is a full edge "-[…]->" (Filler set) or an abbreviated
	// edge "->" (Filler nil).
	EdgePattern struct {
		Base
		Dir    EdgeDir
		Filler *ElementFiller
	}

	// ParenPath is a parenthesized sub-path: ( [p =] [mode] expr [WHERE c] ).
	ParenPath struct {
		Base
		Var   *Ident
		Mode  PathMode
		Expr  PathExpr
		Where Expr
	}
)

func (*PathUnion) pathNode()   {}
func (*PathConcat) pathNode()  {}
func (*Quantified) pathNode()  {}
func (*NodePattern) pathNode() {}
func (*EdgePattern) pathNode() {}
func (*ParenPath) pathNode()   {}

// Quantifier bounds repetition. Min and Max are nil when unbounded; '?' is
// {0,1}, '*' is {0,} and '+' is {1,}.
type Quantifier struct {
	Base
	Kind QuantKind
	Min  Expr
	Max  Expr
}

// ElementFiller is the inside of a node or edge pattern.
type ElementFiller struct {
	Base
	Var    *Ident
	Labels LabelExpr
	// IsForm records "IS Label" instead of ": Label".
	IsForm bool
	Props  *RecordLit
	Where  Expr
}

// Label expressions.
type (
	LabelName struct {
		Base
		Name *Ident
	}
	// LabelWildcard is '%', any label.
	LabelWildcard struct {
		Base
	}
	LabelNot struct {
		Base
		X LabelExpr
	}
	// LabelBinary is '&' (And) or '|' (Or, And false).
	LabelBinary struct {
		Base
		And   bool
		Left  LabelExpr
		Right LabelExpr
	}
	LabelParen struct {
		Base
		X LabelExpr
	}
)

func (*LabelName) labelNode()     {}
func (*LabelWildcard) labelNode() {}
func (*LabelNot) labelNode()      {}
func (*LabelBinary) labelNode()   {}
func (*LabelParen) labelNode()    {}
