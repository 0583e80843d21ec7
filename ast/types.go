package ast

import "gqlfront/token"

type (
	// NamedType is a predefined scalar or reference type. Name is the
	// canonical spelling ("DOUBLE PRECISION", "TIMESTAMP WITH TIME ZONE",
	// "ANY NODE"), Kw its first keyword and Params the (n) or (p, s)
	// arguments.
	NamedType struct {
		Base
		Name    string
		Kw      token.Keyword
		Params  []Expr
		NotNull bool
	}

	// ListType is LIST<T>, ARRAY<T>, T LIST or T ARRAY, with optional [max].
	ListType struct {
		Base
		Keyword token.Keyword
		Elem    Type
		Max     Expr
		NotNull bool
	}

	// RecordType is RECORD {f T, …} or ANY RECORD (Any set, no fields).
	RecordType struct {
		Base
		Any     bool
		Fields  []*FieldType
		NotNull bool
	}

	// UnionType is ANY <T | U | …> or a bare T | U in closed unions.
	UnionType struct {
		Base
		Members []Type
		NotNull bool
	}
)

func (*NamedType) typeNode()  {}
func (*ListType) typeNode()   {}
func (*RecordType) typeNode() {}
func (*UnionType) typeNode()  {}

// FieldType is a "name Type" pair in record and property types.
type FieldType struct {
	Base
	Name *Ident
	Type Type
}

// GraphTypeSpec is the braced list of element types in a graph type.
type GraphTypeSpec struct {
	Base
	Elements []ElementType
}

type (
	// NodeType is either the pattern form "(name :L {p T})" or the keyword
	// form "NODE [TYPE] name LABEL … {…}". Parents lists INHERITS targets.
	NodeType struct {
		Base
		KeywordForm bool
		Name        *Ident
		Labels      []*Ident
		Props       []*FieldType
		Parents     []*Ident
	}

	// EdgeType is the pattern form "(a)-[name :L {…}]->(b)" or the keyword
	// form "[DIRECTED|UNDIRECTED] EDGE [TYPE] name … CONNECTING (a -> b)".
	EdgeType struct {
		Base
		KeywordForm bool
		Directed    bool
		Name        *Ident
		Labels      []*Ident
		Props       []*FieldType
		Source      *Endpoint
		Dest        *Endpoint
		Parents     []*Ident
	}

	// Endpoint names the node type at one end of an edge type.
	Endpoint struct {
		Base
		Name   *Ident
		Labels []*Ident
	}
)

func (*NodeType) elementTypeNode() {}
func (*EdgeType) elementTypeNode() {}
