package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gqlfront/ast"
	"gqlfront/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Span     source.Span     `json:"span"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

var (
	nodeType = reflect.TypeFor[ast.Node]()
	spanType = reflect.TypeFor[source.Span]()
)

// isNodeField reports whether values of t are walked as children rather
// than printed as attributes.
func isNodeField(t reflect.Type) bool {
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t.Implements(nodeType)
}

type attr struct {
	name  string
	value any
}

// nodeAttrs lists the non-zero scalar fields of n in declaration order.
func nodeAttrs(n ast.Node) []attr {
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	var out []attr
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous || f.Type == spanType || isNodeField(f.Type) {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		var val any
		switch x := fv.Interface().(type) {
		case fmt.Stringer:
			val = x.String()
		case bool, string:
			val = x
		default:
			val = fmt.Sprint(x)
		}
		out = append(out, attr{name: f.Name, value: val})
	}
	return out
}

func nodeName(n ast.Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func nodeLabel(n ast.Node, fs *source.FileSet) string {
	var b strings.Builder
	b.WriteString(nodeName(n))
	for _, a := range nodeAttrs(n) {
		switch v := a.value.(type) {
		case bool:
			b.WriteString(" " + a.name)
		case string:
			fmt.Fprintf(&b, " %s=%q", a.name, v)
		default:
			fmt.Fprintf(&b, " %s=%v", a.name, v)
		}
	}
	fmt.Fprintf(&b, " (span: %s)", formatSpan(n.Span(), fs))
	return b.String()
}

// formatSpan renders "startLine:startCol-endLine:endCol" when fs is known
// and the raw offsets otherwise.
func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}

// FormatASTPretty prints the tree with box-drawing connectors, one node
// per line.
func FormatASTPretty(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	var b strings.Builder
	header := "Program"
	if fs != nil {
		if f := fs.Get(prog.Span().File); f != nil {
			header = f.FormatPath("auto", fs.BaseDir())
		}
	}
	fmt.Fprintf(&b, "%s (span: %s)\n", header, formatSpan(prog.Span(), fs))
	writeChildren(&b, prog, fs, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeChildren(b *strings.Builder, n ast.Node, fs *source.FileSet, prefix string) {
	kids := ast.Children(n)
	for i, c := range kids {
		branch, next := "├─ ", "│  "
		if i == len(kids)-1 {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix + branch + nodeLabel(c, fs) + "\n")
		writeChildren(b, c, fs, prefix+next)
	}
}

// BuildASTOutput converts the tree into its JSON form.
func BuildASTOutput(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Type: nodeName(n), Span: n.Span()}
	if attrs := nodeAttrs(n); len(attrs) > 0 {
		out.Fields = make(map[string]any, len(attrs))
		for _, a := range attrs {
			out.Fields[a.name] = a.value
		}
	}
	for _, c := range ast.Children(n) {
		out.Children = append(out.Children, BuildASTOutput(c))
	}
	return out
}

// FormatASTJSON writes the tree as indented JSON.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(prog))
}
