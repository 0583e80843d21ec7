package ast

import "reflect"

// Visitor mirrors go/ast: Visit is called for each node; a nil result
// skips the node's children. Visit(nil) is called after the children.
type Visitor interface {
	Visit(n Node) Visitor
}

// Walk traverses the tree rooted at n in depth-first order.
func Walk(v Visitor, n Node) {
	if isNil(n) {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range Children(n) {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if n != nil && f(n) {
		return f
	}
	return nil
}

// Inspect calls f for every node in depth-first order; returning false
// skips the node's children.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

type children []Node

func (c *children) add(nodes ...Node) {
	for _, n := range nodes {
		if !isNil(n) {
			*c = append(*c, n)
		}
	}
}

func addAll[T Node](c *children, nodes []T) {
	for _, n := range nodes {
		c.add(n)
	}
}

// Children returns the direct, non-nil children of n in source order.
func Children(n Node) []Node {
	var c children
	switch n := n.(type) {
	case *Program:
		addAll(&c, n.Stmts)
	case *Ident, *Literal, *Param, *LabelWildcard, *FinishClause,
		*SessionCloseStmt, *StartTxStmt, *CommitStmt, *RollbackStmt:
	case *BadStmt:
		c.add(n.Partial...)
	case *BadClause:
		c.add(n.Partial...)
	case *BadExpr:
		c.add(n.Partial...)
	case *BadPattern:
		c.add(n.Partial...)
	case *BadType:
		c.add(n.Partial...)
	case *BadElementType:
		c.add(n.Partial...)

	case *CatalogRef:
		c.add(n.Param)
		addAll(&c, n.Parts)
	case *LinearQuery:
		c.add(n.Use)
		addAll(&c, n.Clauses)
	case *CompositeQuery:
		c.add(n.Left, n.Yield, n.Right)
	case *NestedQuery:
		c.add(n.Query)
	case *SessionSetStmt:
		c.add(n.Ref, n.Param, n.Type, n.Value)
	case *SessionResetStmt:
		c.add(n.Param)
	case *CreateSchemaStmt:
		c.add(n.Path)
	case *DropSchemaStmt:
		c.add(n.Path)
	case *CreateGraphStmt:
		c.add(n.Name, n.TypeRef, n.Spec, n.Like, n.CopyOf)
	case *DropGraphStmt:
		c.add(n.Name)
	case *CreateGraphTypeStmt:
		c.add(n.Name, n.Spec, n.Like, n.CopyOf)
	case *DropGraphTypeStmt:
		c.add(n.Name)

	case *UseClause:
		c.add(n.Graph)
	case *MatchClause:
		addAll(&c, n.Patterns)
		c.add(n.Keep, n.Where, n.Yield)
	case *OptionalClause:
		c.add(n.Body)
	case *LetClause:
		addAll(&c, n.Bindings)
	case *LetBinding:
		c.add(n.Var, n.Type, n.Value)
	case *ForClause:
		c.add(n.Var, n.Source, n.WithVar)
	case *FilterClause:
		c.add(n.Cond)
	case *OrderByClause:
		addAll(&c, n.Keys)
	case *SortKey:
		c.add(n.Expr)
	case *OffsetClause:
		c.add(n.Count)
	case *LimitClause:
		c.add(n.Count)
	case *CallClause:
		addAll(&c, n.Vars)
		c.add(n.Proc)
		addAll(&c, n.Args)
		c.add(n.Body, n.Yield)
	case *InsertClause:
		addAll(&c, n.Patterns)
	case *SetClause:
		addAll(&c, n.Items)
	case *SetItem:
		c.add(n.Var, n.Prop, n.Label, n.Value)
	case *RemoveClause:
		addAll(&c, n.Items)
	case *RemoveItem:
		c.add(n.Var, n.Prop, n.Label)
	case *DeleteClause:
		addAll(&c, n.Items)
	case *ReturnClause:
		addAll(&c, n.Items)
		addAll(&c, n.GroupBy)
		c.add(n.OrderBy, n.Offset, n.Limit)
	case *ReturnItem:
		c.add(n.Expr, n.Alias)
	case *SelectClause:
		addAll(&c, n.Items)
		c.add(n.From, n.Where)
		addAll(&c, n.GroupBy)
		c.add(n.Having, n.OrderBy, n.Offset, n.Limit)
	case *SelectFrom:
		c.add(n.Graph)
		addAll(&c, n.Matches)
		c.add(n.Query)
	case *YieldClause:
		addAll(&c, n.Items)
	case *YieldItem:
		c.add(n.Name, n.Alias)

	case *PathPattern:
		c.add(n.Var, n.Prefix, n.Expr)
	case *PathPrefix:
		c.add(n.Count)
	case *PathUnion:
		addAll(&c, n.Alts)
	case *PathConcat:
		addAll(&c, n.Elems)
	case *Quantified:
		c.add(n.Inner, n.Quant)
	case *Quantifier:
		c.add(n.Min, n.Max)
	case *NodePattern:
		c.add(n.Filler)
	case *EdgePattern:
		c.add(n.Filler)
	case *ParenPath:
		c.add(n.Var, n.Expr, n.Where)
	case *ElementFiller:
		c.add(n.Var, n.Labels, n.Props, n.Where)
	case *LabelName:
		c.add(n.Name)
	case *LabelNot:
		c.add(n.X)
	case *LabelBinary:
		c.add(n.Left, n.Right)
	case *LabelParen:
		c.add(n.X)

	case *Unary:
		c.add(n.X)
	case *Binary:
		c.add(n.Left, n.Right)
	case *IsPredicate:
		c.add(n.X, n.Label, n.Type, n.Edge)
	case *PropertyAccess:
		c.add(n.X, n.Name)
	case *IndexExpr:
		c.add(n.X, n.Index)
	case *TypeAnnotation:
		c.add(n.X, n.Type)
	case *Paren:
		c.add(n.X)
	case *ListLit:
		addAll(&c, n.Elems)
	case *RecordLit:
		addAll(&c, n.Fields)
	case *Field:
		c.add(n.Name, n.Value)
	case *Call:
		addAll(&c, n.Name)
		addAll(&c, n.Args)
	case *CaseExpr:
		c.add(n.Operand)
		addAll(&c, n.Whens)
		c.add(n.Else)
	case *When:
		c.add(n.Cond, n.Result)
	case *CastExpr:
		c.add(n.X, n.Type)
	case *ExistsExpr:
		addAll(&c, n.Patterns)
		c.add(n.Where, n.Query)
	case *ValueQuery:
		c.add(n.Query)
	case *PathValue:
		addAll(&c, n.Elems)

	case *NamedType:
		addAll(&c, n.Params)
	case *ListType:
		c.add(n.Elem, n.Max)
	case *RecordType:
		addAll(&c, n.Fields)
	case *UnionType:
		addAll(&c, n.Members)
	case *FieldType:
		c.add(n.Name, n.Type)
	case *GraphTypeSpec:
		addAll(&c, n.Elements)
	case *NodeType:
		c.add(n.Name)
		addAll(&c, n.Labels)
		addAll(&c, n.Props)
		addAll(&c, n.Parents)
	case *EdgeType:
		if n.KeywordForm {
			c.add(n.Name)
			addAll(&c, n.Labels)
			addAll(&c, n.Props)
			c.add(n.Source, n.Dest)
		} else {
			c.add(n.Source, n.Name)
			addAll(&c, n.Labels)
			addAll(&c, n.Props)
			c.add(n.Dest)
		}
		addAll(&c, n.Parents)
	case *Endpoint:
		c.add(n.Name)
		addAll(&c, n.Labels)
	}
	return c
}
