package ast

import "gqlfront/token"

type (
	// Literal is a constant. Raw is the source text; Value is the decoded
	// payload for strings. TypeKw names the temporal type for LitTemporal.
	Literal struct {
		Base
		Kind   LitKind
		Raw    string
		Value  string
		TypeKw token.Keyword
	}

	// Param is $name, or $$name when Substituted.
	Param struct {
		Base
		Name        string
		Substituted bool
	}

	Unary struct {
		Base
		Op UnaryOp
		X  Expr
	}

	Binary struct {
		Base
		Op    BinaryOp
		Left  Expr
		Right Expr
	}

	// IsPredicate is X IS [NOT] <predicate>. Label is set for LABELED and
	// the label form "x IS Label"; Type for TYPED; Edge for SOURCE OF and
	// DESTINATION OF; Form for NORMALIZED (NFC, NFD, …).
	IsPredicate struct {
		Base
		X     Expr
		Not   bool
		Kind  IsKind
		Label LabelExpr
		Type  Type
		Edge  Expr
		Form  token.Keyword
	}

	PropertyAccess struct {
		Base
		X    Expr
		Name *Ident
	}

	IndexExpr struct {
		Base
		X     Expr
		Index Expr
	}

	// TypeAnnotation is X :: Type.
	TypeAnnotation struct {
		Base
		X    Expr
		Type Type
	}

	Paren struct {
		Base
		X Expr
	}

	ListLit struct {
		Base
		// Keyword is LIST or ARRAY when the literal was spelled with one.
		Keyword token.Keyword
		Elems   []Expr
	}

	RecordLit struct {
		Base
		Keyword bool
		Fields  []*Field
	}

	Field struct {
		Base
		Name  *Ident
		Value Expr
	}

	// Call is a function or aggregate call. Name parts come from a
	// qualified name such as a::b::f. Star is COUNT(*).
	Call struct {
		Base
		Name       []*Ident
		Quantifier SetQuantifier
		Star       bool
		Args       []Expr
	}

	// CaseExpr is CASE [Operand] WHEN … THEN … [ELSE …] END.
	CaseExpr struct {
		Base
		Operand Expr
		Whens   []*When
		Else    Expr
	}

	When struct {
		Base
		Cond   Expr
		Result Expr
	}

	CastExpr struct {
		Base
		X    Expr
		Type Type
	}

	// ExistsExpr is EXISTS { query }, EXISTS { pattern } or EXISTS ( pattern ).
	ExistsExpr struct {
		Base
		Patterns []*PathPattern
		Where    Expr
		Query    Query
	}

	// ValueQuery is VALUE { query }.
	ValueQuery struct {
		Base
		Query Query
	}

	// PathValue is PATH [ n1, e1, n2, … ].
	PathValue struct {
		Base
		Elems []Expr
	}
)

func (*Literal) exprNode()        {}
func (*Param) exprNode()          {}
func (*Unary) exprNode()          {}
func (*Binary) exprNode()         {}
func (*IsPredicate) exprNode()    {}
func (*PropertyAccess) exprNode() {}
func (*IndexExpr) exprNode()      {}
func (*TypeAnnotation) exprNode() {}
func (*Paren) exprNode()          {}
func (*ListLit) exprNode()        {}
func (*RecordLit) exprNode()      {}
func (*Call) exprNode()           {}
func (*CaseExpr) exprNode()       {}
func (*CastExpr) exprNode()       {}
func (*ExistsExpr) exprNode()     {}
func (*ValueQuery) exprNode()     {}
func (*PathValue) exprNode()      {}
