package ast

import "gqlfront/token"

// RefKind tells how a catalog reference was written.
type RefKind uint8

const (
	RefPath       RefKind = iota // name, a.b, /abs/path, ../rel/path, a::b
	RefParam                     // $name
	RefPredefined                // HOME_GRAPH, CURRENT_SCHEMA, …
)

// CatalogRef names a schema, graph, graph type or procedure.
type CatalogRef struct {
	Base
	Kind RefKind
	// Absolute is set for paths starting with '/'.
	Absolute bool
	// Up counts leading "../" steps of a relative path.
	Up         int
	Parts      []*Ident
	Param      *Param
	Predefined token.Keyword
}

func (*CatalogRef) exprNode() {}

// Linear, composite and nested queries.
type (
	// LinearQuery is a sequence of clauses, optionally preceded by USE.
	LinearQuery struct {
		Base
		Use     *UseClause
		Clauses []Clause
	}
	// CompositeQuery joins two queries with a set operator, OTHERWISE or
	// NEXT. Yield is only set for NEXT YIELD.
	CompositeQuery struct {
		Base
		Op         SetOp
		Quantifier SetQuantifier
		Left       Query
		Right      Query
		Yield      *YieldClause
	}
	// NestedQuery is a braced query "{ … }".
	NestedQuery struct {
		Base
		Query Query
	}
)

func (*LinearQuery) stmtNode()     {}
func (*LinearQuery) queryNode()    {}
func (*CompositeQuery) stmtNode()  {}
func (*CompositeQuery) queryNode() {}
func (*NestedQuery) stmtNode()     {}
func (*NestedQuery) queryNode()    {}

// Session statements.
type (
	SessionSetKind uint8

	// SessionSetStmt is SESSION SET SCHEMA|GRAPH|TIME ZONE|… PARAMETER.
	SessionSetStmt struct {
		Base
		Kind SessionSetKind
		// Ref is the schema or graph for SetSchema and SetGraph.
		Ref *CatalogRef
		// Value is the time zone string or the parameter initializer.
		Value Expr
		// ParamKind is BINDING, VALUE, GRAPH or TABLE, or KwNone.
		ParamKind   token.Keyword
		IfNotExists bool
		Param       *Param
		Type        Type
	}

	SessionResetStmt struct {
		Base
		All bool
		// Target is KwSchema, KwGraph, KwTime, KwParameters, KwParameter or
		// KwNone for a bare RESET.
		Target token.Keyword
		Param  *Param
	}

	SessionCloseStmt struct {
		Base
	}
)

const (
	SetSchema SessionSetKind = iota
	SetGraph
	SetTimeZone
	SetParameter
)

func (*SessionSetStmt) stmtNode()   {}
func (*SessionResetStmt) stmtNode() {}
func (*SessionCloseStmt) stmtNode() {}

// Transaction statements.
type (
	StartTxStmt struct {
		Base
		Mode TxMode
	}
	CommitStmt struct {
		Base
		Work bool
	}
	RollbackStmt struct {
		Base
		Work bool
	}
)

func (*StartTxStmt) stmtNode()  {}
func (*CommitStmt) stmtNode()   {}
func (*RollbackStmt) stmtNode() {}

// Catalog statements.
type (
	CreateSchemaStmt struct {
		Base
		IfNotExists bool
		Path        *CatalogRef
	}
	DropSchemaStmt struct {
		Base
		IfExists bool
		Path     *CatalogRef
	}
	// CreateGraphStmt declares a graph. Exactly one of AnyType, TypeRef,
	// Spec or Like is set on a well-formed statement.
	CreateGraphStmt struct {
		Base
		OrReplace   bool
		Property    bool
		IfNotExists bool
		Name        *CatalogRef
		AnyType     bool
		Typed       bool
		TypeRef     *CatalogRef
		Spec        *GraphTypeSpec
		Like        *CatalogRef
		CopyOf      *CatalogRef
	}
	DropGraphStmt struct {
		Base
		Property bool
		IfExists bool
		Name     *CatalogRef
	}
	CreateGraphTypeStmt struct {
		Base
		OrReplace   bool
		Property    bool
		IfNotExists bool
		Name        *CatalogRef
		Spec        *GraphTypeSpec
		Like        *CatalogRef
		CopyOf      *CatalogRef
	}
	DropGraphTypeStmt struct {
		Base
		Property bool
		IfExists bool
		Name     *CatalogRef
	}
)

func (*CreateSchemaStmt) stmtNode()    {}
func (*DropSchemaStmt) stmtNode()      {}
func (*CreateGraphStmt) stmtNode()     {}
func (*DropGraphStmt) stmtNode()       {}
func (*CreateGraphTypeStmt) stmtNode() {}
func (*DropGraphTypeStmt) stmtNode()   {}
