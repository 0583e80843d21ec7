// Package ast declares the GQL syntax tree.
//
// The tree is a set of sealed interfaces, one per syntactic category (Stmt,
// Query, Clause, Expr, PathExpr, LabelExpr, Type, ElementType), implemented
// by pointer node types. Every node embeds Base and therefore carries the
// byte span it covers; a parent's span always contains its children's.
//
// Positions where the parser recovered hold a Bad* placeholder with the
// partial children that survived. The tree is self-describing: consumers
// need no parser state to interpret it.
package ast
