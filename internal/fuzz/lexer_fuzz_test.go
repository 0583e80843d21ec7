package fuzztests

import (
	"testing"

	"gqlfront/lexer"
	"gqlfront/source"
	"gqlfront/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.gql", input))
		toks := lexer.Tokenize(file, lexer.Options{})
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end in EOF")
		}
		var prev uint32
		for i, tok := range toks {
			if tok.Span.Start < prev || tok.Span.End < tok.Span.Start || int(tok.Span.End) > len(input) {
				t.Fatalf("token %d span %v out of order or bounds", i, tok.Span)
			}
			if tok.Kind != token.EOF && tok.Span.Empty() {
				t.Fatalf("token %d (%s) is empty", i, tok.Kind)
			}
			prev = tok.Span.End
		}

		again := lexer.Tokenize(file, lexer.Options{})
		if len(again) != len(toks) {
			t.Fatalf("tokenization is not deterministic: %d vs %d tokens", len(toks), len(again))
		}
	})
}
