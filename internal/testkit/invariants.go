package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/source"
)

// CheckSpanInvariants runs the span invariants on a parsed program:
// 1) the program span lies within the file content
// 2) every node span belongs to the file and lies within the content
// 3) every child span is contained in its parent's span
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Loc.End > size || prog.Loc.Start > prog.Loc.End {
		return fmt.Errorf("program span %v outside content of %d bytes", prog.Loc, size)
	}

	type frame struct {
		node   ast.Node
		parent source.Span
	}
	stack := []frame{{node: prog, parent: prog.Loc}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sp := top.node.Span()
		if sp.File != sf.ID {
			return fmt.Errorf("%T span file mismatch: got=%d want=%d", top.node, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("%T span %v outside content of %d bytes", top.node, sp, size)
		}
		if !top.parent.Contains(sp) {
			return fmt.Errorf("%T span %v is outside its parent span %v", top.node, sp, top.parent)
		}
		for _, c := range ast.Children(top.node) {
			stack = append(stack, frame{node: c, parent: sp})
		}
	}
	return nil
}

// CheckDiagnostics verifies that every diagnostic points into sf and that
// its primary span lies within the content.
func CheckDiagnostics(diags []diag.Diagnostic, sf *source.File) error {
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	for i, d := range diags {
		sp := d.Primary
		if sp.File != sf.ID {
			return fmt.Errorf("diagnostic %d (%s) points to file %d, want %d", i, d.Code.ID(), sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("diagnostic %d (%s) span %v outside content of %d bytes", i, d.Code.ID(), sp, size)
		}
		if d.Message == "" {
			return fmt.Errorf("diagnostic %d (%s) has no message", i, d.Code.ID())
		}
	}
	return nil
}

// CountBad returns the number of placeholder nodes in the tree.
func CountBad(root ast.Node) int {
	n := 0
	ast.Inspect(root, func(x ast.Node) bool {
		if ast.IsBad(x) {
			n++
		}
		return true
	})
	return n
}
