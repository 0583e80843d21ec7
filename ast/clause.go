package ast

type (
	UseClause struct {
		Base
		Graph *CatalogRef
	}

	MatchClause struct {
		Base
		Optional bool
		Mode     MatchMode
		Patterns []*PathPattern
		Keep     *PathPrefix
		Where    Expr
		Yield    *YieldClause
	}

	// OptionalClause is OPTIONAL { query } or OPTIONAL ( query ).
	OptionalClause struct {
		Base
		Body Query
	}

	LetClause struct {
		Base
		Bindings []*LetBinding
	}

	ForClause struct {
		Base
		Var    *Ident
		Source Expr
		// WithOrdinality distinguishes WITH ORDINALITY from WITH OFFSET when
		// WithVar is set.
		WithOrdinality bool
		WithVar        *Ident
	}

	FilterClause struct {
		Base
		Cond Expr
	}

	OrderByClause struct {
		Base
		Keys []*SortKey
	}

	// OffsetClause is OFFSET n or its synonym SKIP n.
	OffsetClause struct {
		Base
		Skip  bool
		Count Expr
	}

	LimitClause struct {
		Base
		Count Expr
	}

	// CallClause is a named procedure call (Proc set) or an inline call
	// (Body set).
	CallClause struct {
		Base
		Optional bool
		Proc     *CatalogRef
		Args     []Expr
		Vars     []*Ident
		Body     Query
		Yield    *YieldClause
	}

	InsertClause struct {
		Base
		Patterns []*PathPattern
	}

	SetClause struct {
		Base
		Items []*SetItem
	}

	RemoveClause struct {
		Base
		Items []*RemoveItem
	}

	DeleteClause struct {
		Base
		Detach DetachMode
		Items  []Expr
	}

	// ReturnClause owns the ORDER BY, OFFSET and LIMIT that follow it.
	ReturnClause struct {
		Base
		Quantifier SetQuantifier
		Star       bool
		Items      []*ReturnItem
		GroupBy    []Expr
		OrderBy    *OrderByClause
		Offset     *OffsetClause
		Limit      *LimitClause
	}

	FinishClause struct {
		Base
	}

	SelectClause struct {
		Base
		Quantifier SetQuantifier
		Star       bool
		Items      []*ReturnItem
		From       *SelectFrom
		Where      Expr
		GroupBy    []Expr
		Having     Expr
		OrderBy    *OrderByClause
		Offset     *OffsetClause
		Limit      *LimitClause
	}
)

func (*UseClause) clauseNode()      {}
func (*MatchClause) clauseNode()    {}
func (*OptionalClause) clauseNode() {}
func (*LetClause) clauseNode()      {}
func (*ForClause) clauseNode()      {}
func (*FilterClause) clauseNode()   {}
func (*OrderByClause) clauseNode()  {}
func (*OffsetClause) clauseNode()   {}
func (*LimitClause) clauseNode()    {}
func (*CallClause) clauseNode()     {}
func (*InsertClause) clauseNode()   {}
func (*SetClause) clauseNode()      {}
func (*RemoveClause) clauseNode()   {}
func (*DeleteClause) clauseNode()   {}
func (*ReturnClause) clauseNode()   {}
func (*FinishClause) clauseNode()   {}
func (*SelectClause) clauseNode()   {}

// Clause parts.
type (
	YieldClause struct {
		Base
		Items []*YieldItem
	}

	YieldItem struct {
		Base
		Name  *Ident
		Alias *Ident
	}

	LetBinding struct {
		Base
		Var   *Ident
		Type  Type
		Value Expr
	}

	SortKey struct {
		Base
		Expr  Expr
		Dir   SortDir
		Nulls NullsOrder
	}

	ReturnItem struct {
		Base
		Expr  Expr
		Alias *Ident
	}

	// SelectFrom is the FROM part of SELECT: a graph with match list, a
	// bare match list, or a nested query.
	SelectFrom struct {
		Base
		Graph   *CatalogRef
		Matches []*MatchClause
		Query   Query
	}

	SetItemKind uint8

	// SetItem is v.p = e, v = {record}, v :Label or v IS Label.
	SetItem struct {
		Base
		Kind  SetItemKind
		Var   *Ident
		Prop  *Ident
		Label *Ident
		Value Expr
	}

	RemoveItemKind uint8

	// RemoveItem is v.p, v :Label or v IS Label.
	RemoveItem struct {
		Base
		Kind  RemoveItemKind
		Var   *Ident
		Prop  *Ident
		Label *Ident
	}
)

const (
	SetProperty SetItemKind = iota
	SetAllProperties
	SetLabel
)

const (
	RemoveProperty RemoveItemKind = iota
	RemoveLabel
)
